package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/paulamunoz06/gestionproyectos/internal/application"
	"github.com/paulamunoz06/gestionproyectos/internal/domain/company"
	"github.com/paulamunoz06/gestionproyectos/internal/domain/project"
	"github.com/paulamunoz06/gestionproyectos/internal/domain/user"
	"github.com/paulamunoz06/gestionproyectos/internal/repository"
	"github.com/paulamunoz06/gestionproyectos/internal/repository/mock"
	"github.com/paulamunoz06/gestionproyectos/pkg/apperrors"
)

func setupProjectService(t *testing.T) (*application.ProjectService,
	*mock.MockProjectRepo,
	*mock.MockCompanyRepo) {

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockProject := mock.NewMockProjectRepo(ctrl)
	mockCompany := mock.NewMockCompanyRepo(ctrl)
	repos := &repository.Repos{Project: mockProject, Company: mockCompany}

	return application.NewProjectService(repos), mockProject, mockCompany
}

func TestProjectServiceQueries(t *testing.T) {
	svc, mockProject, mockCompany := setupProjectService(t)
	ctx := context.Background()
	acme := company.Company{Identity: user.Identity{ID: "c1", Name: "Acme"}}

	t.Run("GetProjectCompany", func(t *testing.T) {
		mockProject.EXPECT().GetProjectByID(ctx, "p1").Return(receivedProject("p1"), nil)
		mockCompany.EXPECT().GetCompanyByID(ctx, "c1").Return(acme, nil)

		c, err := svc.GetProjectCompany(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, "Acme", c.Name)
	})

	t.Run("GetProjectCompany unknown project", func(t *testing.T) {
		mockProject.EXPECT().GetProjectByID(ctx, "nope").Return(project.Project{}, gorm.ErrRecordNotFound)

		_, err := svc.GetProjectCompany(ctx, "nope")
		assert.True(t, apperrors.Is(err, apperrors.KindEntityNotFound))
	})

	t.Run("ProjectExists", func(t *testing.T) {
		mockProject.EXPECT().ProjectExists(ctx, "p1").Return(true, nil)
		mockProject.EXPECT().ProjectExists(ctx, "p2").Return(false, nil)

		ok, err := svc.ProjectExists(ctx, "p1")
		require.NoError(t, err)
		assert.True(t, ok)
		ok, err = svc.ProjectExists(ctx, "p2")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("ProjectExists storage failure", func(t *testing.T) {
		mockProject.EXPECT().ProjectExists(ctx, "p1").Return(false, errors.New("timeout"))

		_, err := svc.ProjectExists(ctx, "p1")
		assert.True(t, apperrors.Is(err, apperrors.KindInternal))
	})

	t.Run("ListCompanyProjects", func(t *testing.T) {
		mockCompany.EXPECT().CompanyExists(ctx, "c1").Return(true, nil)
		mockProject.EXPECT().ListProjectsByCompany(ctx, "c1").Return([]project.Project{receivedProject("p1")}, nil)

		got, err := svc.ListCompanyProjects(ctx, "c1")
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("ListCompanyProjects unknown company", func(t *testing.T) {
		mockCompany.EXPECT().CompanyExists(ctx, "c9").Return(false, nil)

		_, err := svc.ListCompanyProjects(ctx, "c9")
		assert.True(t, apperrors.Is(err, apperrors.KindEntityNotFound))
	})
}
