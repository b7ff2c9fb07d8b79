package events

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/paulamunoz06/gestionproyectos/internal/domain/student"
	"github.com/paulamunoz06/gestionproyectos/internal/domain/user"
)

// StudentPostulation is published by the student service after a successful
// postulation. It carries the student's full membership lists.
type StudentPostulation struct {
	StudentID            string   `json:"studentId"`
	ProjectID            string   `json:"projectId"`
	Name                 string   `json:"name,omitempty"`
	Email                string   `json:"email,omitempty"`
	PostulatedProjectIDs []string `json:"postulatedProjectIds"`
	ApprovedProjectIDs   []string `json:"approvedProjectIds"`
}

func NewStudentPostulation(s *student.Student, projectID string) StudentPostulation {
	return StudentPostulation{
		StudentID:            s.ID,
		ProjectID:            projectID,
		Name:                 s.Name,
		Email:                s.Email,
		PostulatedProjectIDs: nonNil(s.PostulatedProjectIDs),
		ApprovedProjectIDs:   nonNil(s.ApprovedProjectIDs),
	}
}

func (m StudentPostulation) Validate() error {
	if m.StudentID == "" {
		return errors.New("postulation has no student id")
	}
	if m.ProjectID == "" {
		return errors.New("postulation has no project id")
	}
	return nil
}

// ToStudent maps the message to a student replica record.
func (m StudentPostulation) ToStudent() *student.Student {
	return &student.Student{
		Identity:             user.Identity{ID: m.StudentID, Name: m.Name, Email: m.Email},
		PostulatedProjectIDs: nonNil(m.PostulatedProjectIDs),
		ApprovedProjectIDs:   nonNil(m.ApprovedProjectIDs),
	}
}

func DecodeStudentPostulation(body []byte) (StudentPostulation, error) {
	var m StudentPostulation
	if err := json.Unmarshal(body, &m); err != nil {
		return m, fmt.Errorf("decode student postulation: %w", err)
	}
	return m, m.Validate()
}
