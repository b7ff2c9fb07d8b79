package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/paulamunoz06/gestionproyectos/internal/bus"
	"github.com/paulamunoz06/gestionproyectos/internal/domain/project"
	"github.com/paulamunoz06/gestionproyectos/internal/events"
	"github.com/paulamunoz06/gestionproyectos/internal/metrics"
	"github.com/paulamunoz06/gestionproyectos/internal/repository"
	"github.com/paulamunoz06/gestionproyectos/pkg/apperrors"
)

// ProjectListener is notified after a lifecycle change has been committed.
type ProjectListener interface {
	ProjectChanged(snapshot events.ProjectSnapshot)
}

// Review identifies who performs a lifecycle operation and why.
type Review struct {
	CoordinatorID string
	Comments      string
}

// StateMachineService owns the canonical project lifecycle. Only the
// coordinator service constructs it.
type StateMachineService struct {
	Repos     *repository.Repos
	publisher bus.Publisher
	metrics   *metrics.Metrics
	log       *zap.Logger
	listeners []ProjectListener
}

func NewStateMachineService(repos *repository.Repos, pub bus.Publisher, m *metrics.Metrics, log *zap.Logger, listeners ...ProjectListener) *StateMachineService {
	if log == nil {
		log = zap.NewNop()
	}
	return &StateMachineService{
		Repos:     repos,
		publisher: pub,
		metrics:   m,
		log:       log,
		listeners: listeners,
	}
}

func (s *StateMachineService) Accept(ctx context.Context, projectID string, r Review) (*project.Project, error) {
	return s.apply(ctx, projectID, project.OpAccept, r)
}

func (s *StateMachineService) Reject(ctx context.Context, projectID string, r Review) (*project.Project, error) {
	return s.apply(ctx, projectID, project.OpReject, r)
}

func (s *StateMachineService) Execute(ctx context.Context, projectID string, r Review) (*project.Project, error) {
	return s.apply(ctx, projectID, project.OpExecute, r)
}

func (s *StateMachineService) Close(ctx context.Context, projectID string, r Review) (*project.Project, error) {
	return s.apply(ctx, projectID, project.OpClose, r)
}

// Apply runs op, which must be one of the review operations.
func (s *StateMachineService) Apply(ctx context.Context, projectID string, op project.Operation, r Review) (*project.Project, error) {
	if _, ok := project.ParseOperation(string(op)); !ok {
		return nil, apperrors.InvalidArgument("operation", fmt.Sprintf("unknown operation %q", op))
	}
	return s.apply(ctx, projectID, op, r)
}

// ApplyStatus moves a project to the named target state through the
// operation that reaches it.
func (s *StateMachineService) ApplyStatus(ctx context.Context, in project.UpdateStatusDTO, coordinatorID string) (*project.Project, error) {
	if in.ProjectID == "" {
		return nil, apperrors.InvalidArgument("projectId", "project id is required")
	}
	target, ok := project.ParseState(in.Status)
	if !ok {
		return nil, apperrors.InvalidArgument("status", fmt.Sprintf("unknown project state %q", in.Status))
	}
	op, ok := project.OperationFor(target)
	if !ok {
		return nil, apperrors.New(apperrors.KindInvalidTransition,
			fmt.Sprintf("no operation moves a project to state %s", target))
	}
	return s.apply(ctx, in.ProjectID, op, Review{CoordinatorID: coordinatorID, Comments: in.Comments})
}

func (s *StateMachineService) apply(ctx context.Context, projectID string, op project.Operation, r Review) (*project.Project, error) {
	var (
		updated project.Project
		changed bool
	)
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		p, err := tx.Project.GetProjectForUpdate(ctx, projectID)
		if err != nil {
			return lookupErr(err, "project", projectID)
		}

		next, err := project.Transition(p.State, op)
		if err != nil {
			return err
		}
		if next == p.State {
			updated = p
			return nil
		}

		p.State = next
		if p.CoordinatorID == nil && r.CoordinatorID != "" {
			id := r.CoordinatorID
			p.CoordinatorID = &id
		}
		if r.Comments != "" {
			p.Comments = r.Comments
		}
		if err := tx.Project.UpdateProject(ctx, &p); err != nil {
			return storeErr(err)
		}
		updated = p
		changed = true
		return nil
	})
	s.metrics.ObserveTransition(string(op), err)
	if err != nil {
		return nil, err
	}

	if changed {
		s.log.Info("project state changed",
			zap.String("project_id", updated.ID),
			zap.String("operation", string(op)),
			zap.String("state", string(updated.State)))
		s.announce(ctx, &updated)
	}
	return &updated, nil
}

// announce publishes the committed snapshot. A publish failure leaves the
// other services stale but does not undo the change.
func (s *StateMachineService) announce(ctx context.Context, p *project.Project) {
	snapshot := events.NewProjectSnapshot(p)
	if err := bus.PublishJSON(ctx, s.publisher, events.QueueProjectUpdate, snapshot); err != nil {
		s.log.Error("publish project update",
			zap.String("project_id", p.ID), zap.Error(err))
	}
	for _, l := range s.listeners {
		l.ProjectChanged(snapshot)
	}
}

func (s *StateMachineService) GetProject(ctx context.Context, projectID string) (*project.Project, error) {
	p, err := s.Repos.Project.GetProjectByID(ctx, projectID)
	if err != nil {
		return nil, lookupErr(err, "project", projectID)
	}
	return &p, nil
}

// ListProjects returns every canonical project, or those in state when it is
// non-empty.
func (s *StateMachineService) ListProjects(ctx context.Context, state string) ([]project.Project, error) {
	if state == "" {
		projects, err := s.Repos.Project.ListProjects(ctx)
		return projects, storeErr(err)
	}
	st, ok := project.ParseState(state)
	if !ok {
		return nil, apperrors.InvalidArgument("state", fmt.Sprintf("unknown project state %q", state))
	}
	projects, err := s.Repos.Project.ListProjectsByState(ctx, st)
	return projects, storeErr(err)
}
