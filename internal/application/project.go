package application

import (
	"context"

	"github.com/paulamunoz06/gestionproyectos/internal/domain/company"
	"github.com/paulamunoz06/gestionproyectos/internal/domain/project"
	"github.com/paulamunoz06/gestionproyectos/internal/repository"
	"github.com/paulamunoz06/gestionproyectos/pkg/apperrors"
)

// ProjectService answers the company service's project queries from its
// local replica.
type ProjectService struct {
	Repos *repository.Repos
}

func NewProjectService(repos *repository.Repos) *ProjectService {
	return &ProjectService{
		Repos: repos,
	}
}

func (s *ProjectService) GetProject(ctx context.Context, id string) (*project.Project, error) {
	p, err := s.Repos.Project.GetProjectByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "project", id)
	}
	return &p, nil
}

func (s *ProjectService) ProjectExists(ctx context.Context, id string) (bool, error) {
	exists, err := s.Repos.Project.ProjectExists(ctx, id)
	return exists, storeErr(err)
}

// GetProjectCompany returns the company that registered the project.
func (s *ProjectService) GetProjectCompany(ctx context.Context, id string) (*company.Company, error) {
	p, err := s.Repos.Project.GetProjectByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "project", id)
	}
	c, err := s.Repos.Company.GetCompanyByID(ctx, p.OwnerCompanyID)
	if err != nil {
		return nil, lookupErr(err, "company", p.OwnerCompanyID)
	}
	return &c, nil
}

func (s *ProjectService) GetCompany(ctx context.Context, id string) (*company.Company, error) {
	c, err := s.Repos.Company.GetCompanyByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "company", id)
	}
	return &c, nil
}

func (s *ProjectService) ListCompanyProjects(ctx context.Context, companyID string) ([]project.Project, error) {
	exists, err := s.Repos.Company.CompanyExists(ctx, companyID)
	if err != nil {
		return nil, storeErr(err)
	}
	if !exists {
		return nil, apperrors.NotFound("company", companyID)
	}
	projects, err := s.Repos.Project.ListProjectsByCompany(ctx, companyID)
	return projects, storeErr(err)
}
