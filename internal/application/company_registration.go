package application

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/paulamunoz06/gestionproyectos/internal/application/registration"
	"github.com/paulamunoz06/gestionproyectos/internal/domain/company"
	"github.com/paulamunoz06/gestionproyectos/internal/domain/user"
	"github.com/paulamunoz06/gestionproyectos/internal/repository"
	"github.com/paulamunoz06/gestionproyectos/pkg/apperrors"
)

type CompanyRegistration = registration.Pipeline[company.RegisterCompanyDTO, *company.Company]

func NewCompanyRegistration(repos *repository.Repos, log *zap.Logger) *CompanyRegistration {
	return registration.New[company.RegisterCompanyDTO, *company.Company](repos, companySteps{}, log)
}

type companySteps struct {
	registration.BaseSteps[company.RegisterCompanyDTO, *company.Company]
}

func (companySteps) Validate(_ context.Context, in company.RegisterCompanyDTO) error {
	for _, f := range []struct{ name, value string }{
		{"id", in.ID},
		{"name", in.Name},
		{"email", in.Email},
		{"nit", in.NIT},
	} {
		if err := required(f.name, f.value); err != nil {
			return err
		}
	}
	return nil
}

func (companySteps) CheckNotExists(ctx context.Context, repos *repository.Repos, in company.RegisterCompanyDTO) error {
	exists, err := repos.Company.CompanyExists(ctx, in.ID)
	if err != nil {
		return storeErr(err)
	}
	if exists {
		return apperrors.DuplicateEntity("company", in.ID)
	}

	exists, err = repos.Company.CompanyExistsByNIT(ctx, in.NIT)
	if err != nil {
		return storeErr(err)
	}
	if exists {
		return apperrors.DuplicateEntity("company with nit", in.NIT)
	}
	return nil
}

func (companySteps) Map(_ context.Context, in company.RegisterCompanyDTO) (*company.Company, error) {
	return &company.Company{
		Identity: user.Identity{
			ID:    strings.TrimSpace(in.ID),
			Name:  strings.TrimSpace(in.Name),
			Email: strings.TrimSpace(in.Email),
			Phone: strings.TrimSpace(in.Phone),
		},
		NIT:             strings.TrimSpace(in.NIT),
		Sector:          company.ParseSector(in.Sector),
		ContactName:     strings.TrimSpace(in.ContactName),
		ContactPosition: strings.TrimSpace(in.ContactPosition),
	}, nil
}

func (companySteps) Persist(ctx context.Context, repos *repository.Repos, c *company.Company) error {
	return insertErr(repos.Company.CreateCompany(ctx, c), "company", c.ID)
}
