package company

import (
	"strings"
	"time"

	"github.com/paulamunoz06/gestionproyectos/internal/domain/user"
)

// Sector is the industry a company declares on registration.
type Sector string

const (
	SectorTechnology Sector = "TECHNOLOGY"
	SectorHealth     Sector = "HEALTH"
	SectorEducation  Sector = "EDUCATION"
	SectorServices   Sector = "SERVICES"
	SectorOther      Sector = "OTHER"
)

// ParseSector maps free input to a known sector. Unknown values degrade to
// SectorOther rather than failing registration.
func ParseSector(value string) Sector {
	switch s := Sector(strings.ToUpper(strings.TrimSpace(value))); s {
	case SectorTechnology, SectorHealth, SectorEducation, SectorServices:
		return s
	default:
		return SectorOther
	}
}

type Company struct {
	user.Identity

	NIT             string `gorm:"column:nit;size:30;uniqueIndex" json:"nit"`
	Sector          Sector `gorm:"size:20;not null;default:'OTHER'" json:"sector"`
	ContactName     string `gorm:"column:contact_name;size:150" json:"contactName"`
	ContactPosition string `gorm:"column:contact_position;size:100" json:"contactPosition"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
}

func (Company) TableName() string {
	return "companies"
}
