package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/paulamunoz06/gestionproyectos/internal/application"
	"github.com/paulamunoz06/gestionproyectos/internal/bus"
	"github.com/paulamunoz06/gestionproyectos/internal/config"
	"github.com/paulamunoz06/gestionproyectos/internal/domain/project"
	"github.com/paulamunoz06/gestionproyectos/internal/domain/student"
	"github.com/paulamunoz06/gestionproyectos/internal/events"
	"github.com/paulamunoz06/gestionproyectos/internal/repository"
	"github.com/paulamunoz06/gestionproyectos/internal/repository/mock"
)

func setupReplica(t *testing.T) (*application.ReplicaConsumer,
	*mock.MockProjectRepo,
	*mock.MockStudentRepo) {

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockProject := mock.NewMockProjectRepo(ctrl)
	mockStudent := mock.NewMockStudentRepo(ctrl)
	repos := &repository.Repos{Project: mockProject, Student: mockStudent}

	return application.NewReplicaConsumer(repos, nil), mockProject, mockStudent
}

func snapshotMessage(t *testing.T, queue string, p project.Project) bus.Message {
	t.Helper()
	msg, err := bus.NewJSONMessage(queue, events.NewProjectSnapshot(&p))
	require.NoError(t, err)
	return msg
}

func TestApplyProjectSnapshot(t *testing.T) {
	consumer, mockProject, _ := setupReplica(t)
	ctx := context.Background()

	p := openProject("p1")
	msg := snapshotMessage(t, events.QueueProjectUpdate, p)

	// applying the same snapshot twice leaves the same row
	mockProject.EXPECT().UpsertProject(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, got *project.Project) error {
		assert.Equal(t, "p1", got.ID)
		assert.Equal(t, project.StateAccepted, got.State)
		assert.True(t, p.RegistrationDate.Equal(got.RegistrationDate))
		return nil
	}).Times(2)

	require.NoError(t, consumer.ApplyProjectSnapshot(ctx, msg))
	require.NoError(t, consumer.ApplyProjectSnapshot(ctx, msg))
}

func TestApplyProjectSnapshotPoison(t *testing.T) {
	consumer, _, _ := setupReplica(t)
	ctx := context.Background()

	cases := map[string]string{
		"not json":      `{"id":`,
		"missing id":    `{"title":"x","state":"ACCEPTED"}`,
		"unknown state": `{"id":"p1","state":"ARCHIVED"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			err := consumer.ApplyProjectSnapshot(ctx, bus.Message{Queue: events.QueueProjectUpdate, Body: []byte(body)})
			assert.ErrorIs(t, err, bus.ErrPoison)
		})
	}
}

func TestApplyProjectSnapshotStoreFailureIsRetryable(t *testing.T) {
	consumer, mockProject, _ := setupReplica(t)
	ctx := context.Background()

	mockProject.EXPECT().UpsertProject(ctx, gomock.Any()).Return(errors.New("connection refused"))

	err := consumer.ApplyProjectSnapshot(ctx, snapshotMessage(t, events.QueueProjectUpdate, openProject("p1")))
	require.Error(t, err)
	assert.NotErrorIs(t, err, bus.ErrPoison)
}

func TestIntakeProjectCreation(t *testing.T) {
	consumer, mockProject, _ := setupReplica(t)
	ctx := context.Background()
	msg := snapshotMessage(t, events.QueueProjectCreation, receivedProject("p1"))

	mockProject.EXPECT().InsertProjectIfAbsent(ctx, gomock.Any()).Return(true, nil)
	require.NoError(t, consumer.IntakeProjectCreation(ctx, msg))

	mockProject.EXPECT().InsertProjectIfAbsent(ctx, gomock.Any()).Return(false, nil)
	require.NoError(t, consumer.IntakeProjectCreation(ctx, msg))
}

func postulationMessage(t *testing.T, m events.StudentPostulation) bus.Message {
	t.Helper()
	msg, err := bus.NewJSONMessage(events.QueueStudentPostulation, m)
	require.NoError(t, err)
	return msg
}

func TestApplyStudentPostulation(t *testing.T) {
	consumer, mockProject, mockStudent := setupReplica(t)
	ctx := context.Background()

	msg := postulationMessage(t, events.StudentPostulation{
		StudentID:            "s1",
		ProjectID:            "p1",
		Name:                 "Ana",
		PostulatedProjectIDs: []string{"p1"},
	})

	mockStudent.EXPECT().UpsertStudent(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s *student.Student) error {
		assert.Equal(t, "s1", s.ID)
		assert.Equal(t, datatypes.JSONSlice[string]{"p1"}, s.PostulatedProjectIDs)
		return nil
	})
	mockProject.EXPECT().GetProjectForUpdate(ctx, "p1").Return(openProject("p1"), nil)
	mockProject.EXPECT().UpdateProject(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *project.Project) error {
		assert.True(t, p.IsPostulated("s1"))
		assert.False(t, p.IsApproved("s1"))
		return nil
	})

	require.NoError(t, consumer.ApplyStudentPostulation(ctx, msg))
}

func TestApplyStudentPostulationUnknownProject(t *testing.T) {
	consumer, mockProject, mockStudent := setupReplica(t)
	ctx := context.Background()

	msg := postulationMessage(t, events.StudentPostulation{StudentID: "s1", ProjectID: "ghost", PostulatedProjectIDs: []string{"ghost"}})

	mockStudent.EXPECT().UpsertStudent(ctx, gomock.Any()).Return(nil)
	mockProject.EXPECT().GetProjectForUpdate(ctx, "ghost").Return(project.Project{}, gorm.ErrRecordNotFound)

	require.NoError(t, consumer.ApplyStudentPostulation(ctx, msg))
}

func TestApplyStudentPostulationPoison(t *testing.T) {
	consumer, _, _ := setupReplica(t)
	ctx := context.Background()

	for name, body := range map[string]string{
		"not json":        `[1,2`,
		"missing student": `{"projectId":"p1"}`,
		"missing project": `{"studentId":"s1"}`,
	} {
		t.Run(name, func(t *testing.T) {
			err := consumer.ApplyStudentPostulation(ctx, bus.Message{Body: []byte(body)})
			assert.ErrorIs(t, err, bus.ErrPoison)
		})
	}
}

func TestBindings(t *testing.T) {
	consumer, _, _ := setupReplica(t)

	keys := func(service string) []string {
		var out []string
		for q := range consumer.Bindings(service) {
			out = append(out, q)
		}
		return out
	}

	assert.ElementsMatch(t, []string{events.QueueProjectUpdate, events.QueueStudentPostulation}, keys(config.ServiceCompany))
	assert.ElementsMatch(t, []string{events.QueueProjectCreation, events.QueueStudentPostulation}, keys(config.ServiceCoordinator))
	assert.ElementsMatch(t, []string{events.QueueProjectCreation, events.QueueProjectUpdate}, keys(config.ServiceStudent))
	assert.Empty(t, consumer.Bindings("unknown"))
}

func TestReplicaStartSubscribesBindings(t *testing.T) {
	consumer, _, _ := setupReplica(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b := bus.NewMemory()
	defer b.Close()
	require.NoError(t, consumer.Start(ctx, b, config.ServiceStudent))
}
