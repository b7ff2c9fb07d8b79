package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/paulamunoz06/gestionproyectos/internal/domain/project"
)

// projectMutableColumns are overwritten when a snapshot is applied to an
// existing row. registration_date and owner_company_id are set on insert only.
var projectMutableColumns = []string{
	"title", "description", "abstract", "goals", "deadline_months", "budget",
	"state", "coordinator_id", "comments",
	"postulated_student_ids", "approved_student_ids", "updated_at",
}

type ProjectRepo interface {
	GetProjectByID(ctx context.Context, id string) (project.Project, error)
	// GetProjectForUpdate reads the row under SELECT ... FOR UPDATE. Use it
	// inside ExecTx before writing the project back.
	GetProjectForUpdate(ctx context.Context, id string) (project.Project, error)
	ProjectExists(ctx context.Context, id string) (bool, error)
	CreateProject(ctx context.Context, p *project.Project) error
	UpdateProject(ctx context.Context, p *project.Project) error
	UpsertProject(ctx context.Context, p *project.Project) error
	// InsertProjectIfAbsent reports whether a row was inserted.
	InsertProjectIfAbsent(ctx context.Context, p *project.Project) (bool, error)
	ListProjects(ctx context.Context) ([]project.Project, error)
	ListProjectsByState(ctx context.Context, state project.State) ([]project.Project, error)
	ListProjectsByCompany(ctx context.Context, companyID string) ([]project.Project, error)
	ListProjectsByIDs(ctx context.Context, ids []string) ([]project.Project, error)
	WithTx(tx *gorm.DB) ProjectRepo
}

type DBProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *DBProjectRepo {
	return &DBProjectRepo{
		db: db,
	}
}

func (r *DBProjectRepo) GetProjectByID(ctx context.Context, id string) (project.Project, error) {
	var p project.Project
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	return p, err
}

func (r *DBProjectRepo) GetProjectForUpdate(ctx context.Context, id string) (project.Project, error) {
	var p project.Project
	err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).First(&p).Error
	return p, err
}

func (r *DBProjectRepo) ProjectExists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&project.Project{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *DBProjectRepo) CreateProject(ctx context.Context, p *project.Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *DBProjectRepo) UpdateProject(ctx context.Context, p *project.Project) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *DBProjectRepo) UpsertProject(ctx context.Context, p *project.Project) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(projectMutableColumns),
	}).Create(p).Error
}

func (r *DBProjectRepo) InsertProjectIfAbsent(ctx context.Context, p *project.Project) (bool, error) {
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(p)
	return res.RowsAffected > 0, res.Error
}

func (r *DBProjectRepo) ListProjects(ctx context.Context) ([]project.Project, error) {
	var projects []project.Project
	err := r.db.WithContext(ctx).Order("registration_date DESC").Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) ListProjectsByState(ctx context.Context, state project.State) ([]project.Project, error) {
	var projects []project.Project
	if err := r.db.WithContext(ctx).Where("state = ?", state).
		Order("registration_date DESC").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *DBProjectRepo) ListProjectsByCompany(ctx context.Context, companyID string) ([]project.Project, error) {
	var projects []project.Project
	if err := r.db.WithContext(ctx).Where("owner_company_id = ?", companyID).
		Order("registration_date DESC").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *DBProjectRepo) ListProjectsByIDs(ctx context.Context, ids []string) ([]project.Project, error) {
	if len(ids) == 0 {
		return []project.Project{}, nil
	}
	var projects []project.Project
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).
		Order("registration_date DESC").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *DBProjectRepo) WithTx(tx *gorm.DB) ProjectRepo {
	if tx == nil {
		return r
	}
	return &DBProjectRepo{
		db: tx,
	}
}
