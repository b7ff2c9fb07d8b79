package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/paulamunoz06/gestionproyectos/internal/domain/inbox"
)

type FailureQueryParams struct {
	Queue     *string
	StartTime *time.Time
	Limit     int
	Offset    int
}

type FailureRepo interface {
	CreateFailure(ctx context.Context, f *inbox.Failure) error
	ListFailures(ctx context.Context, params FailureQueryParams) ([]inbox.Failure, error)
	DeleteOldFailures(ctx context.Context, retentionDays int) error
	WithTx(tx *gorm.DB) FailureRepo
}

type DBFailureRepo struct {
	db *gorm.DB
}

func NewFailureRepo(db *gorm.DB) *DBFailureRepo {
	return &DBFailureRepo{
		db: db,
	}
}

func (r *DBFailureRepo) CreateFailure(ctx context.Context, f *inbox.Failure) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *DBFailureRepo) ListFailures(ctx context.Context, params FailureQueryParams) ([]inbox.Failure, error) {
	var failures []inbox.Failure
	query := r.db.WithContext(ctx).Model(&inbox.Failure{})

	if params.Queue != nil {
		query = query.Where("queue = ?", *params.Queue)
	}
	if params.StartTime != nil {
		query = query.Where("created_at >= ?", *params.StartTime)
	}

	query = query.Order("created_at DESC")
	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	}
	if params.Offset > 0 {
		query = query.Offset(params.Offset)
	}

	err := query.Find(&failures).Error
	return failures, err
}

func (r *DBFailureRepo) DeleteOldFailures(ctx context.Context, retentionDays int) error {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	return r.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&inbox.Failure{}).Error
}

func (r *DBFailureRepo) WithTx(tx *gorm.DB) FailureRepo {
	if tx == nil {
		return r
	}
	return &DBFailureRepo{
		db: tx,
	}
}
