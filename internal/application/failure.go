package application

import (
	"context"

	"go.uber.org/zap"

	"github.com/paulamunoz06/gestionproyectos/internal/bus"
	"github.com/paulamunoz06/gestionproyectos/internal/domain/inbox"
	"github.com/paulamunoz06/gestionproyectos/internal/repository"
)

// FailureService keeps the record of messages the bus dropped.
type FailureService struct {
	Repos *repository.Repos
	log   *zap.Logger
}

func NewFailureService(repos *repository.Repos, log *zap.Logger) *FailureService {
	if log == nil {
		log = zap.NewNop()
	}
	return &FailureService{
		Repos: repos,
		log:   log,
	}
}

// RecordDrop is a bus.DropFunc. It never fails: a message that cannot be
// recorded is still logged.
func (s *FailureService) RecordDrop(ctx context.Context, msg bus.Message, cause error) {
	s.log.Warn("message dropped",
		zap.String("queue", msg.Queue),
		zap.String("message_id", msg.ID),
		zap.Error(cause))

	f := inbox.NewFailure(msg.Queue, msg.ID, msg.Body, cause)
	if err := s.Repos.Failure.CreateFailure(context.WithoutCancel(ctx), f); err != nil {
		s.log.Error("record dropped message", zap.String("message_id", msg.ID), zap.Error(err))
	}
}

func (s *FailureService) QueryFailures(ctx context.Context, params repository.FailureQueryParams) ([]inbox.Failure, error) {
	failures, err := s.Repos.Failure.ListFailures(ctx, params)
	return failures, storeErr(err)
}

func (s *FailureService) CleanupOldFailures(ctx context.Context, days int) error {
	return s.Repos.Failure.DeleteOldFailures(ctx, days)
}
