package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paulamunoz06/gestionproyectos/internal/api/middleware"
	"github.com/paulamunoz06/gestionproyectos/internal/application"
	"github.com/paulamunoz06/gestionproyectos/internal/domain/company"
	"github.com/paulamunoz06/gestionproyectos/internal/domain/project"
	"github.com/paulamunoz06/gestionproyectos/pkg/response"
	"github.com/paulamunoz06/gestionproyectos/pkg/types"
)

// CompanyHandler serves the company service: company and project
// registration plus queries over the local project replica.
type CompanyHandler struct {
	projects     *application.ProjectService
	companies    *application.CompanyRegistration
	registration *application.ProjectRegistration
}

func NewCompanyHandler(projects *application.ProjectService, companies *application.CompanyRegistration, registration *application.ProjectRegistration) *CompanyHandler {
	return &CompanyHandler{projects: projects, companies: companies, registration: registration}
}

// RegisterCompany godoc
// @Summary Register a company
// @Tags company
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body company.RegisterCompanyDTO true "Company"
// @Success 201 {object} company.Company
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Company already exists"
// @Router /company/register [post]
func (h *CompanyHandler) RegisterCompany(c *gin.Context) {
	var input company.RegisterCompanyDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	if p, ok := middleware.PrincipalFrom(c); ok && p.Role == types.RoleCompany {
		if input.ID == "" {
			input.ID = p.UserID
		} else if input.ID != p.UserID {
			forbidden(c, "cannot register another company")
			return
		}
	}

	created, err := h.companies.Register(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// RegisterProject godoc
// @Summary Register a project
// @Description The project starts in state RECEIVED and is announced to the other services.
// @Tags projects
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body project.RegisterProjectDTO true "Project"
// @Success 201 {object} project.Project
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Company not found"
// @Failure 409 {object} response.ErrorResponse "Project already exists"
// @Router /project/register [post]
func (h *CompanyHandler) RegisterProject(c *gin.Context) {
	var input project.RegisterProjectDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	if p, ok := middleware.PrincipalFrom(c); ok && p.Role == types.RoleCompany {
		if input.CompanyID == "" {
			input.CompanyID = p.UserID
		} else if input.CompanyID != p.UserID {
			forbidden(c, "cannot register a project for another company")
			return
		}
	}

	created, err := h.registration.Register(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ProjectExists godoc
// @Summary Check whether a project exists
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} response.ExistsResponse
// @Router /project/{id}/exists [get]
func (h *CompanyHandler) ProjectExists(c *gin.Context) {
	id := c.Param("id")
	exists, err := h.projects.ProjectExists(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ExistsResponse{ID: id, Exists: exists})
}

// GetProjectCompany godoc
// @Summary Get the company that registered a project
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} company.Company
// @Failure 404 {object} response.ErrorResponse
// @Router /project/{id}/company [get]
func (h *CompanyHandler) GetProjectCompany(c *gin.Context) {
	owner, err := h.projects.GetProjectCompany(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, owner)
}

// GetProject godoc
// @Summary Get a project from the company replica
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} project.Project
// @Failure 404 {object} response.ErrorResponse
// @Router /project/{id} [get]
func (h *CompanyHandler) GetProject(c *gin.Context) {
	p, err := h.projects.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// ListCompanyProjects godoc
// @Summary List a company's projects
// @Tags company
// @Security BearerAuth
// @Produce json
// @Param id path string true "Company ID"
// @Success 200 {array} project.Project
// @Failure 404 {object} response.ErrorResponse
// @Router /company/{id}/projects [get]
func (h *CompanyHandler) ListCompanyProjects(c *gin.Context) {
	projects, err := h.projects.ListCompanyProjects(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if projects == nil {
		projects = []project.Project{}
	}
	c.JSON(http.StatusOK, projects)
}

// GetCompany godoc
// @Summary Get a company
// @Tags company
// @Security BearerAuth
// @Produce json
// @Param id path string true "Company ID"
// @Success 200 {object} company.Company
// @Failure 404 {object} response.ErrorResponse
// @Router /company/{id} [get]
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	co, err := h.projects.GetCompany(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, co)
}
