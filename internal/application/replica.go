package application

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/paulamunoz06/gestionproyectos/internal/bus"
	"github.com/paulamunoz06/gestionproyectos/internal/config"
	"github.com/paulamunoz06/gestionproyectos/internal/events"
	"github.com/paulamunoz06/gestionproyectos/internal/repository"
)

// ReplicaConsumer keeps a service's local copies of projects and students in
// step with the messages other services publish. Every handler is an upsert
// by id, so redelivery is harmless.
type ReplicaConsumer struct {
	Repos *repository.Repos
	log   *zap.Logger
}

func NewReplicaConsumer(repos *repository.Repos, log *zap.Logger) *ReplicaConsumer {
	if log == nil {
		log = zap.NewNop()
	}
	return &ReplicaConsumer{
		Repos: repos,
		log:   log,
	}
}

// ApplyProjectSnapshot upserts the project carried by msg. Snapshots are
// applied in delivery order with no version check, so a late older snapshot
// overwrites a newer one.
func (c *ReplicaConsumer) ApplyProjectSnapshot(ctx context.Context, msg bus.Message) error {
	snapshot, err := events.DecodeProjectSnapshot(msg.Body)
	if err != nil {
		return bus.Poison(err)
	}
	p, err := snapshot.ToProject()
	if err != nil {
		return bus.Poison(err)
	}

	if err := c.Repos.Project.UpsertProject(ctx, p); err != nil {
		return fmt.Errorf("upsert project %s: %w", p.ID, err)
	}
	c.log.Debug("project replica updated",
		zap.String("queue", msg.Queue),
		zap.String("project_id", p.ID),
		zap.String("state", string(p.State)))
	return nil
}

// IntakeProjectCreation stores a newly registered project in the canonical
// store. An existing row is never overwritten: the canonical copy does not
// take state from the bus.
func (c *ReplicaConsumer) IntakeProjectCreation(ctx context.Context, msg bus.Message) error {
	snapshot, err := events.DecodeProjectSnapshot(msg.Body)
	if err != nil {
		return bus.Poison(err)
	}
	p, err := snapshot.ToProject()
	if err != nil {
		return bus.Poison(err)
	}

	inserted, err := c.Repos.Project.InsertProjectIfAbsent(ctx, p)
	if err != nil {
		return fmt.Errorf("insert project %s: %w", p.ID, err)
	}
	if !inserted {
		c.log.Debug("project already known, creation ignored", zap.String("project_id", p.ID))
	}
	return nil
}

// ApplyStudentPostulation upserts the postulating student and mirrors the
// student's membership into the project replica, when that project is known.
func (c *ReplicaConsumer) ApplyStudentPostulation(ctx context.Context, msg bus.Message) error {
	m, err := events.DecodeStudentPostulation(msg.Body)
	if err != nil {
		return bus.Poison(err)
	}

	return c.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Student.UpsertStudent(ctx, m.ToStudent()); err != nil {
			return fmt.Errorf("upsert student %s: %w", m.StudentID, err)
		}

		p, err := tx.Project.GetProjectForUpdate(ctx, m.ProjectID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.log.Info("postulation for unknown project, membership not recorded",
				zap.String("student_id", m.StudentID),
				zap.String("project_id", m.ProjectID))
			return nil
		}
		if err != nil {
			return fmt.Errorf("load project %s: %w", m.ProjectID, err)
		}
		p.SetStudentMembership(m.StudentID,
			slices.Contains(m.PostulatedProjectIDs, m.ProjectID),
			slices.Contains(m.ApprovedProjectIDs, m.ProjectID))
		if err := tx.Project.UpdateProject(ctx, &p); err != nil {
			return fmt.Errorf("update project %s: %w", p.ID, err)
		}
		return nil
	})
}

// Bindings returns the queue handlers service subscribes to.
func (c *ReplicaConsumer) Bindings(service string) map[string]bus.Handler {
	switch service {
	case config.ServiceCompany:
		return map[string]bus.Handler{
			events.QueueProjectUpdate:      c.ApplyProjectSnapshot,
			events.QueueStudentPostulation: c.ApplyStudentPostulation,
		}
	case config.ServiceCoordinator:
		return map[string]bus.Handler{
			events.QueueProjectCreation:    c.IntakeProjectCreation,
			events.QueueStudentPostulation: c.ApplyStudentPostulation,
		}
	case config.ServiceStudent:
		return map[string]bus.Handler{
			events.QueueProjectCreation: c.ApplyProjectSnapshot,
			events.QueueProjectUpdate:   c.ApplyProjectSnapshot,
		}
	}
	return nil
}

// Start subscribes every binding of service on sub.
func (c *ReplicaConsumer) Start(ctx context.Context, sub bus.Subscriber, service string) error {
	bindings := c.Bindings(service)
	for _, queue := range events.Queues {
		h, ok := bindings[queue]
		if !ok {
			continue
		}
		if err := sub.Subscribe(ctx, queue, h); err != nil {
			return fmt.Errorf("subscribe %s: %w", queue, err)
		}
	}
	return nil
}
