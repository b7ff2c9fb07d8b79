package application_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulamunoz06/gestionproyectos/internal/application"
	"github.com/paulamunoz06/gestionproyectos/internal/bus"
	"github.com/paulamunoz06/gestionproyectos/internal/domain/inbox"
	"github.com/paulamunoz06/gestionproyectos/internal/events"
	"github.com/paulamunoz06/gestionproyectos/internal/repository"
	"github.com/paulamunoz06/gestionproyectos/internal/repository/mock"
)

func TestRecordDrop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFailure := mock.NewMockFailureRepo(ctrl)
	svc := application.NewFailureService(&repository.Repos{Failure: mockFailure}, nil)

	body := []byte(strings.Repeat("x", inbox.MaxPayloadBytes+100))
	msg := bus.Message{ID: "m1", Queue: events.QueueProjectUpdate, Body: body}

	mockFailure.EXPECT().CreateFailure(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, f *inbox.Failure) error {
		assert.Equal(t, events.QueueProjectUpdate, f.Queue)
		assert.Equal(t, "m1", f.MessageID)
		assert.Len(t, f.Payload, inbox.MaxPayloadBytes)
		assert.Contains(t, f.Error, "unknown state")
		return nil
	})

	svc.RecordDrop(context.Background(), msg, bus.Poison(errors.New("unknown state")))
}

func TestRecordDropSurvivesStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFailure := mock.NewMockFailureRepo(ctrl)
	svc := application.NewFailureService(&repository.Repos{Failure: mockFailure}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mockFailure.EXPECT().CreateFailure(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, _ *inbox.Failure) error {
		// a cancelled consumer still gets its drop recorded
		assert.NoError(t, ctx.Err())
		return errors.New("disk full")
	})

	assert.NotPanics(t, func() {
		svc.RecordDrop(ctx, bus.Message{ID: "m1", Queue: "q"}, errors.New("boom"))
	})
}

func TestQueryAndCleanupFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFailure := mock.NewMockFailureRepo(ctrl)
	svc := application.NewFailureService(&repository.Repos{Failure: mockFailure}, nil)
	ctx := context.Background()

	queue := events.QueueStudentPostulation
	params := repository.FailureQueryParams{Queue: &queue, Limit: 10}
	mockFailure.EXPECT().ListFailures(ctx, params).Return([]inbox.Failure{{ID: 1, Queue: queue}}, nil)
	mockFailure.EXPECT().DeleteOldFailures(ctx, 30).Return(nil)

	got, err := svc.QueryFailures(ctx, params)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	require.NoError(t, svc.CleanupOldFailures(ctx, 30))
}
