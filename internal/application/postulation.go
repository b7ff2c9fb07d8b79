package application

import (
	"context"

	"go.uber.org/zap"

	"github.com/paulamunoz06/gestionproyectos/internal/bus"
	"github.com/paulamunoz06/gestionproyectos/internal/domain/project"
	"github.com/paulamunoz06/gestionproyectos/internal/domain/student"
	"github.com/paulamunoz06/gestionproyectos/internal/events"
	"github.com/paulamunoz06/gestionproyectos/internal/metrics"
	"github.com/paulamunoz06/gestionproyectos/internal/repository"
	"github.com/paulamunoz06/gestionproyectos/pkg/apperrors"
)

const (
	ReasonNotOpen           = "project is not open for postulation"
	ReasonAlreadyPostulated = "already postulated"
	ReasonAlreadyApproved   = "already approved"
)

// PostulationService applies student postulations against the student
// service's local project replica. The replica may be stale; it is still the
// authority for the decision.
type PostulationService struct {
	Repos     *repository.Repos
	publisher bus.Publisher
	metrics   *metrics.Metrics
	log       *zap.Logger
}

func NewPostulationService(repos *repository.Repos, pub bus.Publisher, m *metrics.Metrics, log *zap.Logger) *PostulationService {
	if log == nil {
		log = zap.NewNop()
	}
	return &PostulationService{
		Repos:     repos,
		publisher: pub,
		metrics:   m,
		log:       log,
	}
}

// Postulate records studentID as a candidate for projectID.
func (s *PostulationService) Postulate(ctx context.Context, studentID, projectID string) (*student.Student, error) {
	st, err := s.postulate(ctx, studentID, projectID)
	s.metrics.ObservePostulation(err)
	if err != nil {
		return nil, err
	}

	msg := events.NewStudentPostulation(st, projectID)
	if err := bus.PublishJSON(ctx, s.publisher, events.QueueStudentPostulation, msg); err != nil {
		s.log.Error("publish student postulation",
			zap.String("student_id", studentID),
			zap.String("project_id", projectID),
			zap.Error(err))
	}
	return st, nil
}

func (s *PostulationService) postulate(ctx context.Context, studentID, projectID string) (*student.Student, error) {
	if err := required("studentId", studentID); err != nil {
		return nil, err
	}
	if err := required("projectId", projectID); err != nil {
		return nil, err
	}

	var result student.Student
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		// Project row first, then student row. Both stay locked until commit.
		p, err := tx.Project.GetProjectForUpdate(ctx, projectID)
		if err != nil {
			return lookupErr(err, "project", projectID)
		}
		if !p.AcceptsPostulations() {
			return apperrors.PostulationRejected(ReasonNotOpen)
		}
		st, err := tx.Student.GetStudentForUpdate(ctx, studentID)
		if err != nil {
			return lookupErr(err, "student", studentID)
		}

		if p.IsPostulated(studentID) || st.HasPostulated(projectID) {
			return apperrors.PostulationRejected(ReasonAlreadyPostulated)
		}
		if p.IsApproved(studentID) || st.IsApprovedIn(projectID) {
			return apperrors.PostulationRejected(ReasonAlreadyApproved)
		}

		p.AddPostulation(studentID)
		st.AddPostulation(projectID)
		if err := tx.Project.UpdateProject(ctx, &p); err != nil {
			return storeErr(err)
		}
		if err := tx.Student.UpdateStudent(ctx, &st); err != nil {
			return storeErr(err)
		}
		result = st
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ListAvailable returns the accepted projects the student has neither
// postulated to nor been approved in.
func (s *PostulationService) ListAvailable(ctx context.Context, studentID string) ([]project.Project, error) {
	if err := required("studentId", studentID); err != nil {
		return nil, err
	}
	st, err := s.Repos.Student.GetStudentByID(ctx, studentID)
	if err != nil {
		return nil, lookupErr(err, "student", studentID)
	}
	open, err := s.Repos.Project.ListProjectsByState(ctx, project.StateAccepted)
	if err != nil {
		return nil, storeErr(err)
	}

	available := make([]project.Project, 0, len(open))
	for _, p := range open {
		if p.IsPostulated(studentID) || p.IsApproved(studentID) ||
			st.HasPostulated(p.ID) || st.IsApprovedIn(p.ID) {
			continue
		}
		available = append(available, p)
	}
	return available, nil
}

// ListByStudent returns the projects the student has postulated to or been
// approved in.
func (s *PostulationService) ListByStudent(ctx context.Context, studentID string) ([]project.Project, error) {
	st, err := s.Repos.Student.GetStudentByID(ctx, studentID)
	if err != nil {
		return nil, lookupErr(err, "student", studentID)
	}
	ids := append([]string{}, st.PostulatedProjectIDs...)
	for _, id := range st.ApprovedProjectIDs {
		ids = project.AddID(ids, id)
	}
	projects, err := s.Repos.Project.ListProjectsByIDs(ctx, ids)
	return projects, storeErr(err)
}

func (s *PostulationService) GetStudent(ctx context.Context, studentID string) (*student.Student, error) {
	st, err := s.Repos.Student.GetStudentByID(ctx, studentID)
	if err != nil {
		return nil, lookupErr(err, "student", studentID)
	}
	return &st, nil
}
