package application

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/paulamunoz06/gestionproyectos/internal/application/registration"
	"github.com/paulamunoz06/gestionproyectos/internal/domain/student"
	"github.com/paulamunoz06/gestionproyectos/internal/domain/user"
	"github.com/paulamunoz06/gestionproyectos/internal/repository"
	"github.com/paulamunoz06/gestionproyectos/pkg/apperrors"
)

type StudentRegistration = registration.Pipeline[student.RegisterStudentDTO, *student.Student]

func NewStudentRegistration(repos *repository.Repos, log *zap.Logger) *StudentRegistration {
	return registration.New[student.RegisterStudentDTO, *student.Student](repos, studentSteps{}, log)
}

type studentSteps struct {
	registration.BaseSteps[student.RegisterStudentDTO, *student.Student]
}

func (studentSteps) Validate(_ context.Context, in student.RegisterStudentDTO) error {
	if err := required("id", in.ID); err != nil {
		return err
	}
	if err := required("name", in.Name); err != nil {
		return err
	}
	return required("email", in.Email)
}

func (studentSteps) CheckNotExists(ctx context.Context, repos *repository.Repos, in student.RegisterStudentDTO) error {
	exists, err := repos.Student.StudentExists(ctx, in.ID)
	if err != nil {
		return storeErr(err)
	}
	if exists {
		return apperrors.DuplicateEntity("student", in.ID)
	}
	return nil
}

func (studentSteps) Map(_ context.Context, in student.RegisterStudentDTO) (*student.Student, error) {
	return &student.Student{
		Identity: user.Identity{
			ID:    strings.TrimSpace(in.ID),
			Name:  strings.TrimSpace(in.Name),
			Email: strings.TrimSpace(in.Email),
			Phone: strings.TrimSpace(in.Phone),
		},
		PostulatedProjectIDs: []string{},
		ApprovedProjectIDs:   []string{},
	}, nil
}

func (studentSteps) Persist(ctx context.Context, repos *repository.Repos, s *student.Student) error {
	return insertErr(repos.Student.CreateStudent(ctx, s), "student", s.ID)
}
