// Package registration runs entity registration as a fixed sequence of
// overridable steps.
package registration

import (
	"context"

	"go.uber.org/zap"

	"github.com/paulamunoz06/gestionproyectos/internal/repository"
)

// Steps are the hooks of a registration. Validate through Persist run inside
// one local transaction, in declaration order. PostRegister runs after commit
// and cannot fail the registration.
type Steps[In, E any] interface {
	Validate(ctx context.Context, in In) error
	CheckNotExists(ctx context.Context, repos *repository.Repos, in In) error
	PreRegister(ctx context.Context, repos *repository.Repos, in In) error
	Map(ctx context.Context, in In) (E, error)
	Persist(ctx context.Context, repos *repository.Repos, entity E) error
	PostRegister(ctx context.Context, entity E) error
}

// BaseSteps supplies no-op CheckNotExists, PreRegister and PostRegister.
// Embed it and implement the rest.
type BaseSteps[In, E any] struct{}

func (BaseSteps[In, E]) CheckNotExists(context.Context, *repository.Repos, In) error { return nil }

func (BaseSteps[In, E]) PreRegister(context.Context, *repository.Repos, In) error { return nil }

func (BaseSteps[In, E]) PostRegister(context.Context, E) error { return nil }

type Pipeline[In, E any] struct {
	repos *repository.Repos
	steps Steps[In, E]
	log   *zap.Logger
}

func New[In, E any](repos *repository.Repos, steps Steps[In, E], log *zap.Logger) *Pipeline[In, E] {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline[In, E]{repos: repos, steps: steps, log: log}
}

// Register runs every step and returns the persisted entity.
func (p *Pipeline[In, E]) Register(ctx context.Context, in In) (E, error) {
	var entity E
	err := p.repos.ExecTx(func(tx *repository.Repos) error {
		if err := p.steps.Validate(ctx, in); err != nil {
			return err
		}
		if err := p.steps.CheckNotExists(ctx, tx, in); err != nil {
			return err
		}
		if err := p.steps.PreRegister(ctx, tx, in); err != nil {
			return err
		}
		mapped, err := p.steps.Map(ctx, in)
		if err != nil {
			return err
		}
		if err := p.steps.Persist(ctx, tx, mapped); err != nil {
			return err
		}
		entity = mapped
		return nil
	})
	if err != nil {
		var zero E
		return zero, err
	}

	if err := p.steps.PostRegister(ctx, entity); err != nil {
		p.log.Error("post-registration step failed", zap.Error(err))
	}
	return entity, nil
}
