package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/paulamunoz06/gestionproyectos/internal/domain/company"
)

type CompanyRepo interface {
	GetCompanyByID(ctx context.Context, id string) (company.Company, error)
	CompanyExists(ctx context.Context, id string) (bool, error)
	CompanyExistsByNIT(ctx context.Context, nit string) (bool, error)
	CreateCompany(ctx context.Context, c *company.Company) error
	WithTx(tx *gorm.DB) CompanyRepo
}

type DBCompanyRepo struct {
	db *gorm.DB
}

func NewCompanyRepo(db *gorm.DB) *DBCompanyRepo {
	return &DBCompanyRepo{db: db}
}

func (r *DBCompanyRepo) GetCompanyByID(ctx context.Context, id string) (company.Company, error) {
	var c company.Company
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	return c, err
}

func (r *DBCompanyRepo) CompanyExists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&company.Company{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *DBCompanyRepo) CompanyExistsByNIT(ctx context.Context, nit string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&company.Company{}).Where("nit = ?", nit).Count(&count).Error
	return count > 0, err
}

func (r *DBCompanyRepo) CreateCompany(ctx context.Context, c *company.Company) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *DBCompanyRepo) WithTx(tx *gorm.DB) CompanyRepo {
	if tx == nil {
		return r
	}
	return &DBCompanyRepo{db: tx}
}
