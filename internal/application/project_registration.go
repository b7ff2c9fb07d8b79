package application

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/paulamunoz06/gestionproyectos/internal/application/registration"
	"github.com/paulamunoz06/gestionproyectos/internal/bus"
	"github.com/paulamunoz06/gestionproyectos/internal/domain/project"
	"github.com/paulamunoz06/gestionproyectos/internal/events"
	"github.com/paulamunoz06/gestionproyectos/internal/repository"
	"github.com/paulamunoz06/gestionproyectos/pkg/apperrors"
)

type ProjectRegistration = registration.Pipeline[project.RegisterProjectDTO, *project.Project]

// NewProjectRegistration registers projects on behalf of companies and
// announces them on project-creation.
func NewProjectRegistration(repos *repository.Repos, pub bus.Publisher, log *zap.Logger) *ProjectRegistration {
	steps := &projectSteps{pub: pub, now: time.Now}
	return registration.New[project.RegisterProjectDTO, *project.Project](repos, steps, log)
}

type projectSteps struct {
	registration.BaseSteps[project.RegisterProjectDTO, *project.Project]
	pub bus.Publisher
	now func() time.Time
}

func (s *projectSteps) Validate(_ context.Context, in project.RegisterProjectDTO) error {
	if in.ID != "" {
		if _, err := uuid.Parse(in.ID); err != nil {
			return apperrors.InvalidArgument("id", "project id must be a UUID")
		}
	}
	if strings.TrimSpace(in.CompanyID) == "" {
		return apperrors.InvalidArgument("companyId", "company id is required")
	}
	if strings.TrimSpace(in.Title) == "" {
		return apperrors.InvalidArgument("title", "title is required")
	}
	if err := maxLength("title", in.Title, project.MaxTitleLength); err != nil {
		return err
	}
	if err := maxLength("description", in.Description, project.MaxDescriptionLength); err != nil {
		return err
	}
	if err := maxLength("abstract", in.Abstract, project.MaxAbstractLength); err != nil {
		return err
	}
	if err := maxLength("goals", in.Goals, project.MaxGoalsLength); err != nil {
		return err
	}
	if in.DeadlineMonths < project.MinDeadlineMonths || in.DeadlineMonths > project.MaxDeadlineMonths {
		return apperrors.InvalidArgument("deadlineMonths",
			fmt.Sprintf("deadline must be between %d and %d months", project.MinDeadlineMonths, project.MaxDeadlineMonths))
	}
	if in.Budget < 0 || in.Budget > project.MaxBudget {
		return apperrors.InvalidArgument("budget", "budget must be between 0 and 1000000000")
	}
	return nil
}

func (s *projectSteps) CheckNotExists(ctx context.Context, repos *repository.Repos, in project.RegisterProjectDTO) error {
	if in.ID == "" {
		return nil
	}
	exists, err := repos.Project.ProjectExists(ctx, in.ID)
	if err != nil {
		return storeErr(err)
	}
	if exists {
		return apperrors.DuplicateEntity("project", in.ID)
	}
	return nil
}

// PreRegister requires the owning company to be registered locally.
func (s *projectSteps) PreRegister(ctx context.Context, repos *repository.Repos, in project.RegisterProjectDTO) error {
	exists, err := repos.Company.CompanyExists(ctx, in.CompanyID)
	if err != nil {
		return storeErr(err)
	}
	if !exists {
		return apperrors.NotFound("company", in.CompanyID)
	}
	return nil
}

func (s *projectSteps) Map(_ context.Context, in project.RegisterProjectDTO) (*project.Project, error) {
	id := in.ID
	if id == "" {
		id = uuid.NewString()
	}
	return &project.Project{
		ID:                   id,
		Title:                strings.TrimSpace(in.Title),
		Description:          strings.TrimSpace(in.Description),
		Abstract:             strings.TrimSpace(in.Abstract),
		Goals:                strings.TrimSpace(in.Goals),
		DeadlineMonths:       in.DeadlineMonths,
		Budget:               in.Budget,
		RegistrationDate:     s.now().UTC(),
		State:                project.StateReceived,
		OwnerCompanyID:       in.CompanyID,
		PostulatedStudentIDs: []string{},
		ApprovedStudentIDs:   []string{},
	}, nil
}

func (s *projectSteps) Persist(ctx context.Context, repos *repository.Repos, p *project.Project) error {
	return insertErr(repos.Project.CreateProject(ctx, p), "project", p.ID)
}

func (s *projectSteps) PostRegister(ctx context.Context, p *project.Project) error {
	return bus.PublishJSON(ctx, s.pub, events.QueueProjectCreation, events.NewProjectSnapshot(p))
}

// maxLength measures value as it will be stored, without surrounding space.
func maxLength(field, value string, limit int) error {
	if utf8.RuneCountInString(strings.TrimSpace(value)) > limit {
		return apperrors.InvalidArgument(field, fmt.Sprintf("%s must be at most %d characters", field, limit))
	}
	return nil
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return apperrors.InvalidArgument(field, field+" is required")
	}
	return nil
}
