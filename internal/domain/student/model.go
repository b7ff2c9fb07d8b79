package student

import (
	"slices"
	"time"

	"gorm.io/datatypes"

	"github.com/paulamunoz06/gestionproyectos/internal/domain/project"
	"github.com/paulamunoz06/gestionproyectos/internal/domain/user"
)

// Student is owned by the student service and replicated read-only into the
// company and coordinator services.
type Student struct {
	user.Identity

	PostulatedProjectIDs datatypes.JSONSlice[string] `gorm:"column:postulated_project_ids" json:"postulatedProjectIds"`
	ApprovedProjectIDs   datatypes.JSONSlice[string] `gorm:"column:approved_project_ids" json:"approvedProjectIds"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Student) TableName() string {
	return "students"
}

func (s *Student) HasPostulated(projectID string) bool {
	return slices.Contains(s.PostulatedProjectIDs, projectID)
}

func (s *Student) IsApprovedIn(projectID string) bool {
	return slices.Contains(s.ApprovedProjectIDs, projectID)
}

func (s *Student) AddPostulation(projectID string) {
	s.PostulatedProjectIDs = project.AddID(s.PostulatedProjectIDs, projectID)
}
