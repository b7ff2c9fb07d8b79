package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/paulamunoz06/gestionproyectos/internal/domain/student"
)

type StudentRepo interface {
	GetStudentByID(ctx context.Context, id string) (student.Student, error)
	GetStudentForUpdate(ctx context.Context, id string) (student.Student, error)
	StudentExists(ctx context.Context, id string) (bool, error)
	CreateStudent(ctx context.Context, s *student.Student) error
	UpdateStudent(ctx context.Context, s *student.Student) error
	UpsertStudent(ctx context.Context, s *student.Student) error
	WithTx(tx *gorm.DB) StudentRepo
}

type DBStudentRepo struct {
	db *gorm.DB
}

func NewStudentRepo(db *gorm.DB) *DBStudentRepo {
	return &DBStudentRepo{db: db}
}

func (r *DBStudentRepo) GetStudentByID(ctx context.Context, id string) (student.Student, error) {
	var s student.Student
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	return s, err
}

func (r *DBStudentRepo) GetStudentForUpdate(ctx context.Context, id string) (student.Student, error) {
	var s student.Student
	err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).First(&s).Error
	return s, err
}

func (r *DBStudentRepo) StudentExists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&student.Student{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *DBStudentRepo) CreateStudent(ctx context.Context, s *student.Student) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *DBStudentRepo) UpdateStudent(ctx context.Context, s *student.Student) error {
	return r.db.WithContext(ctx).Save(s).Error
}

// UpsertStudent writes a replicated student. Empty name or email in the
// incoming record keep whatever the replica already has.
func (r *DBStudentRepo) UpsertStudent(ctx context.Context, s *student.Student) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"name":                   gorm.Expr("COALESCE(NULLIF(EXCLUDED.name, ''), students.name)"),
			"email":                  gorm.Expr("COALESCE(NULLIF(EXCLUDED.email, ''), students.email)"),
			"postulated_project_ids": gorm.Expr("EXCLUDED.postulated_project_ids"),
			"approved_project_ids":   gorm.Expr("EXCLUDED.approved_project_ids"),
			"updated_at":             gorm.Expr("EXCLUDED.updated_at"),
		}),
	}).Create(s).Error
}

func (r *DBStudentRepo) WithTx(tx *gorm.DB) StudentRepo {
	if tx == nil {
		return r
	}
	return &DBStudentRepo{db: tx}
}
