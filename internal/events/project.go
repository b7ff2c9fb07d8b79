package events

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/paulamunoz06/gestionproyectos/internal/domain/project"
)

// ProjectSnapshot is the full Project carried by creation and update
// messages. It is a snapshot, never a diff.
type ProjectSnapshot struct {
	ID                   string    `json:"id"`
	Title                string    `json:"title"`
	Description          string    `json:"description"`
	Abstract             string    `json:"abstract"`
	Goals                string    `json:"goals"`
	DeadlineMonths       int       `json:"deadlineMonths"`
	Budget               float64   `json:"budget"`
	RegistrationDate     time.Time `json:"registrationDate"`
	State                string    `json:"state"`
	OwnerCompanyID       string    `json:"ownerCompanyId"`
	CoordinatorID        *string   `json:"coordinatorId"`
	Comments             string    `json:"comments,omitempty"`
	PostulatedStudentIDs []string  `json:"postulatedStudentIds"`
	ApprovedStudentIDs   []string  `json:"approvedStudentIds"`
}

func NewProjectSnapshot(p *project.Project) ProjectSnapshot {
	return ProjectSnapshot{
		ID:                   p.ID,
		Title:                p.Title,
		Description:          p.Description,
		Abstract:             p.Abstract,
		Goals:                p.Goals,
		DeadlineMonths:       p.DeadlineMonths,
		Budget:               p.Budget,
		RegistrationDate:     p.RegistrationDate,
		State:                string(p.State),
		OwnerCompanyID:       p.OwnerCompanyID,
		CoordinatorID:        p.CoordinatorID,
		Comments:             p.Comments,
		PostulatedStudentIDs: nonNil(p.PostulatedStudentIDs),
		ApprovedStudentIDs:   nonNil(p.ApprovedStudentIDs),
	}
}

// ToProject maps the snapshot to a Project. It fails on a missing id or an
// unknown state name; such messages are poison.
func (s ProjectSnapshot) ToProject() (*project.Project, error) {
	if s.ID == "" {
		return nil, errors.New("project snapshot has no id")
	}
	state, ok := project.ParseState(s.State)
	if !ok {
		return nil, fmt.Errorf("project snapshot %s has unknown state %q", s.ID, s.State)
	}
	return &project.Project{
		ID:                   s.ID,
		Title:                s.Title,
		Description:          s.Description,
		Abstract:             s.Abstract,
		Goals:                s.Goals,
		DeadlineMonths:       s.DeadlineMonths,
		Budget:               s.Budget,
		RegistrationDate:     s.RegistrationDate,
		State:                state,
		OwnerCompanyID:       s.OwnerCompanyID,
		CoordinatorID:        s.CoordinatorID,
		Comments:             s.Comments,
		PostulatedStudentIDs: nonNil(s.PostulatedStudentIDs),
		ApprovedStudentIDs:   nonNil(s.ApprovedStudentIDs),
	}, nil
}

func DecodeProjectSnapshot(body []byte) (ProjectSnapshot, error) {
	var s ProjectSnapshot
	if err := json.Unmarshal(body, &s); err != nil {
		return s, fmt.Errorf("decode project snapshot: %w", err)
	}
	return s, nil
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
