package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paulamunoz06/gestionproyectos/internal/api/middleware"
	"github.com/paulamunoz06/gestionproyectos/internal/application"
	"github.com/paulamunoz06/gestionproyectos/internal/domain/project"
	"github.com/paulamunoz06/gestionproyectos/internal/domain/student"
	"github.com/paulamunoz06/gestionproyectos/pkg/types"
)

type StudentHandler struct {
	postulations *application.PostulationService
	registration *application.StudentRegistration
}

func NewStudentHandler(postulations *application.PostulationService, registration *application.StudentRegistration) *StudentHandler {
	return &StudentHandler{postulations: postulations, registration: registration}
}

// RegisterStudent godoc
// @Summary Register a student
// @Tags student
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body student.RegisterStudentDTO true "Student"
// @Success 201 {object} student.Student
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /student/register [post]
func (h *StudentHandler) RegisterStudent(c *gin.Context) {
	var input student.RegisterStudentDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	if !h.actingAs(c, &input.ID) {
		forbidden(c, "cannot register another student")
		return
	}

	created, err := h.registration.Register(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Postulate godoc
// @Summary Postulate a student to a project
// @Description Only projects in state ACCEPTED take postulations.
// @Tags student
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body student.PostulateDTO true "Postulation"
// @Success 201 {object} student.Student
// @Failure 404 {object} response.ErrorResponse "Project or student not found"
// @Failure 422 {object} response.ErrorResponse "Postulation rejected"
// @Router /student/postulations [post]
func (h *StudentHandler) Postulate(c *gin.Context) {
	var input student.PostulateDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	if !h.actingAs(c, &input.StudentID) {
		forbidden(c, "cannot postulate on behalf of another student")
		return
	}

	st, err := h.postulations.Postulate(c.Request.Context(), input.StudentID, input.ProjectID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, st)
}

// ListAvailable godoc
// @Summary List projects open to the student
// @Tags student
// @Security BearerAuth
// @Produce json
// @Param studentId query string true "Student ID"
// @Success 200 {array} project.Project
// @Failure 404 {object} response.ErrorResponse
// @Router /student/projects/available [get]
func (h *StudentHandler) ListAvailable(c *gin.Context) {
	studentID := c.Query("studentId")
	if !h.actingAs(c, &studentID) {
		forbidden(c, "cannot list projects for another student")
		return
	}
	projects, err := h.postulations.ListAvailable(c.Request.Context(), studentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// ListStudentProjects godoc
// @Summary List the projects a student postulated to or was approved in
// @Tags student
// @Security BearerAuth
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {array} project.Project
// @Failure 404 {object} response.ErrorResponse
// @Router /student/{id}/projects [get]
func (h *StudentHandler) ListStudentProjects(c *gin.Context) {
	projects, err := h.postulations.ListByStudent(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if projects == nil {
		projects = []project.Project{}
	}
	c.JSON(http.StatusOK, projects)
}

// GetStudent godoc
// @Summary Get a student
// @Tags student
// @Security BearerAuth
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} student.Student
// @Failure 404 {object} response.ErrorResponse
// @Router /student/{id} [get]
func (h *StudentHandler) GetStudent(c *gin.Context) {
	st, err := h.postulations.GetStudent(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// actingAs fills an empty id from a student principal and reports false when
// a student tries to act for someone else.
func (h *StudentHandler) actingAs(c *gin.Context, id *string) bool {
	p, ok := middleware.PrincipalFrom(c)
	if !ok || p.Role != types.RoleStudent {
		return true
	}
	if *id == "" {
		*id = p.UserID
	}
	return *id == p.UserID
}
