package application_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/paulamunoz06/gestionproyectos/internal/application"
	"github.com/paulamunoz06/gestionproyectos/internal/bus"
	busmock "github.com/paulamunoz06/gestionproyectos/internal/bus/mock"
	"github.com/paulamunoz06/gestionproyectos/internal/domain/project"
	"github.com/paulamunoz06/gestionproyectos/internal/events"
	"github.com/paulamunoz06/gestionproyectos/internal/repository"
	"github.com/paulamunoz06/gestionproyectos/internal/repository/mock"
	"github.com/paulamunoz06/gestionproyectos/pkg/apperrors"
)

type listenerFunc func(events.ProjectSnapshot)

func (f listenerFunc) ProjectChanged(s events.ProjectSnapshot) { f(s) }

func setupStateMachine(t *testing.T, listeners ...application.ProjectListener) (*application.StateMachineService,
	*mock.MockProjectRepo,
	*busmock.MockPublisher) {

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockProject := mock.NewMockProjectRepo(ctrl)
	mockPub := busmock.NewMockPublisher(ctrl)
	repos := &repository.Repos{Project: mockProject}

	return application.NewStateMachineService(repos, mockPub, nil, nil, listeners...), mockProject, mockPub
}

func receivedProject(id string) project.Project {
	return project.Project{
		ID:               id,
		Title:            "Inventory app",
		DeadlineMonths:   6,
		RegistrationDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		State:            project.StateReceived,
		OwnerCompanyID:   "c1",
	}
}

func TestStateMachineAccept(t *testing.T) {
	var notified []events.ProjectSnapshot
	svc, mockProject, mockPub := setupStateMachine(t, listenerFunc(func(s events.ProjectSnapshot) {
		notified = append(notified, s)
	}))
	ctx := context.Background()

	mockProject.EXPECT().GetProjectForUpdate(ctx, "p1").Return(receivedProject("p1"), nil)
	mockProject.EXPECT().UpdateProject(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *project.Project) error {
		assert.Equal(t, project.StateAccepted, p.State)
		return nil
	})
	mockPub.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, msg bus.Message) error {
		assert.Equal(t, events.QueueProjectUpdate, msg.Queue)
		var snap events.ProjectSnapshot
		require.NoError(t, json.Unmarshal(msg.Body, &snap))
		assert.Equal(t, "p1", snap.ID)
		assert.Equal(t, "ACCEPTED", snap.State)
		require.NotNil(t, snap.CoordinatorID)
		assert.Equal(t, "k1", *snap.CoordinatorID)
		return nil
	})

	p, err := svc.Accept(ctx, "p1", application.Review{CoordinatorID: "k1", Comments: "looks good"})
	require.NoError(t, err)
	assert.Equal(t, project.StateAccepted, p.State)
	assert.Equal(t, "looks good", p.Comments)
	require.Len(t, notified, 1)
	assert.Equal(t, "p1", notified[0].ID)
}

func TestStateMachineKeepsFirstCoordinator(t *testing.T) {
	svc, mockProject, mockPub := setupStateMachine(t)
	ctx := context.Background()

	first := "k1"
	accepted := receivedProject("p1")
	accepted.State = project.StateAccepted
	accepted.CoordinatorID = &first

	mockProject.EXPECT().GetProjectForUpdate(ctx, "p1").Return(accepted, nil)
	mockProject.EXPECT().UpdateProject(ctx, gomock.Any()).Return(nil)
	mockPub.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	p, err := svc.Execute(ctx, "p1", application.Review{CoordinatorID: "k2"})
	require.NoError(t, err)
	assert.Equal(t, project.StateInExecution, p.State)
	assert.Equal(t, "k1", *p.CoordinatorID)
}

func TestStateMachineRejectIsIdempotent(t *testing.T) {
	svc, mockProject, _ := setupStateMachine(t)
	ctx := context.Background()

	rejected := receivedProject("p1")
	rejected.State = project.StateRejected
	mockProject.EXPECT().GetProjectForUpdate(ctx, "p1").Return(rejected, nil)

	// no UpdateProject and no Publish expected
	p, err := svc.Reject(ctx, "p1", application.Review{CoordinatorID: "k1"})
	require.NoError(t, err)
	assert.Equal(t, project.StateRejected, p.State)
}

func TestStateMachineInvalidTransitions(t *testing.T) {
	cases := []struct {
		name string
		from project.State
		run  func(*application.StateMachineService, context.Context) (*project.Project, error)
	}{
		{"accept rejected", project.StateRejected, func(s *application.StateMachineService, ctx context.Context) (*project.Project, error) {
			return s.Accept(ctx, "p1", application.Review{})
		}},
		{"execute rejected", project.StateRejected, func(s *application.StateMachineService, ctx context.Context) (*project.Project, error) {
			return s.Execute(ctx, "p1", application.Review{})
		}},
		{"close received", project.StateReceived, func(s *application.StateMachineService, ctx context.Context) (*project.Project, error) {
			return s.Close(ctx, "p1", application.Review{})
		}},
		{"accept closed", project.StateClosed, func(s *application.StateMachineService, ctx context.Context) (*project.Project, error) {
			return s.Accept(ctx, "p1", application.Review{})
		}},
		{"reject in execution", project.StateInExecution, func(s *application.StateMachineService, ctx context.Context) (*project.Project, error) {
			return s.Reject(ctx, "p1", application.Review{})
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, mockProject, _ := setupStateMachine(t)
			ctx := context.Background()

			p := receivedProject("p1")
			p.State = tc.from
			mockProject.EXPECT().GetProjectForUpdate(ctx, "p1").Return(p, nil)

			_, err := tc.run(svc, ctx)
			assert.True(t, apperrors.Is(err, apperrors.KindInvalidTransition), "got %v", err)
		})
	}
}

func TestStateMachineProjectNotFound(t *testing.T) {
	svc, mockProject, _ := setupStateMachine(t)
	ctx := context.Background()

	mockProject.EXPECT().GetProjectForUpdate(ctx, "missing").Return(project.Project{}, gorm.ErrRecordNotFound)

	_, err := svc.Accept(ctx, "missing", application.Review{})
	assert.True(t, apperrors.Is(err, apperrors.KindEntityNotFound))
}

func TestStateMachineStorageFailure(t *testing.T) {
	svc, mockProject, _ := setupStateMachine(t)
	ctx := context.Background()

	mockProject.EXPECT().GetProjectForUpdate(ctx, "p1").Return(receivedProject("p1"), nil)
	mockProject.EXPECT().UpdateProject(ctx, gomock.Any()).Return(errors.New("connection reset"))

	_, err := svc.Accept(ctx, "p1", application.Review{})
	assert.True(t, apperrors.Is(err, apperrors.KindInternal))
}

func TestStateMachinePublishFailureKeepsChange(t *testing.T) {
	svc, mockProject, mockPub := setupStateMachine(t)
	ctx := context.Background()

	mockProject.EXPECT().GetProjectForUpdate(ctx, "p1").Return(receivedProject("p1"), nil)
	mockProject.EXPECT().UpdateProject(ctx, gomock.Any()).Return(nil)
	mockPub.EXPECT().Publish(ctx, gomock.Any()).Return(bus.ErrClosed)

	p, err := svc.Reject(ctx, "p1", application.Review{})
	require.NoError(t, err)
	assert.Equal(t, project.StateRejected, p.State)
}

func TestStateMachineApplyStatus(t *testing.T) {
	t.Run("maps target state to operation", func(t *testing.T) {
		svc, mockProject, mockPub := setupStateMachine(t)
		ctx := context.Background()

		mockProject.EXPECT().GetProjectForUpdate(ctx, "p1").Return(receivedProject("p1"), nil)
		mockProject.EXPECT().UpdateProject(ctx, gomock.Any()).Return(nil)
		mockPub.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

		p, err := svc.ApplyStatus(ctx, project.UpdateStatusDTO{ProjectID: "p1", Status: "accepted"}, "k1")
		require.NoError(t, err)
		assert.Equal(t, project.StateAccepted, p.State)
	})

	t.Run("unknown status", func(t *testing.T) {
		svc, _, _ := setupStateMachine(t)
		_, err := svc.ApplyStatus(context.Background(), project.UpdateStatusDTO{ProjectID: "p1", Status: "DONE"}, "k1")
		assert.True(t, apperrors.Is(err, apperrors.KindInvalidArgument))
	})

	t.Run("received is not a target", func(t *testing.T) {
		svc, _, _ := setupStateMachine(t)
		_, err := svc.ApplyStatus(context.Background(), project.UpdateStatusDTO{ProjectID: "p1", Status: "RECEIVED"}, "k1")
		assert.True(t, apperrors.Is(err, apperrors.KindInvalidTransition))
	})

	t.Run("missing project id", func(t *testing.T) {
		svc, _, _ := setupStateMachine(t)
		_, err := svc.ApplyStatus(context.Background(), project.UpdateStatusDTO{Status: "ACCEPTED"}, "k1")
		assert.True(t, apperrors.Is(err, apperrors.KindInvalidArgument))
	})
}

func TestStateMachineApplyRejectsUnknownOperation(t *testing.T) {
	svc, _, _ := setupStateMachine(t)
	_, err := svc.Apply(context.Background(), "p1", project.Operation("archive"), application.Review{})
	assert.True(t, apperrors.Is(err, apperrors.KindInvalidArgument))
}

func TestStateMachineListProjects(t *testing.T) {
	svc, mockProject, _ := setupStateMachine(t)
	ctx := context.Background()

	t.Run("all", func(t *testing.T) {
		mockProject.EXPECT().ListProjects(ctx).Return([]project.Project{receivedProject("p1")}, nil)
		got, err := svc.ListProjects(ctx, "")
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("by state", func(t *testing.T) {
		mockProject.EXPECT().ListProjectsByState(ctx, project.StateAccepted).Return(nil, nil)
		_, err := svc.ListProjects(ctx, "ACCEPTED")
		require.NoError(t, err)
	})

	t.Run("unknown state", func(t *testing.T) {
		_, err := svc.ListProjects(ctx, "ARCHIVED")
		assert.True(t, apperrors.Is(err, apperrors.KindInvalidArgument))
	})
}
