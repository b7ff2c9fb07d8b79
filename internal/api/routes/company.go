package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/paulamunoz06/gestionproyectos/internal/api/handlers"
	"github.com/paulamunoz06/gestionproyectos/internal/api/middleware"
	"github.com/paulamunoz06/gestionproyectos/pkg/types"
)

func RegisterCompanyRoutes(auth *gin.RouterGroup, h *handlers.Handlers) {
	companyOnly := middleware.RequireRole(types.RoleCompany)

	companies := auth.Group("/company")
	{
		companies.POST("/register", companyOnly, h.Company.RegisterCompany)
		companies.GET("/:id", h.Company.GetCompany)
		companies.GET("/:id/projects", h.Company.ListCompanyProjects)
	}

	projects := auth.Group("/project")
	{
		projects.POST("/register", companyOnly, h.Company.RegisterProject)
		projects.GET("/:id", h.Company.GetProject)
		projects.GET("/:id/exists", h.Company.ProjectExists)
		projects.GET("/:id/company", h.Company.GetProjectCompany)
	}
}
