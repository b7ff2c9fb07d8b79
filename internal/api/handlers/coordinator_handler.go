package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paulamunoz06/gestionproyectos/internal/api/middleware"
	"github.com/paulamunoz06/gestionproyectos/internal/application"
	"github.com/paulamunoz06/gestionproyectos/internal/domain/project"
)

// CoordinatorHandler exposes the canonical project lifecycle.
type CoordinatorHandler struct {
	svc *application.StateMachineService
}

func NewCoordinatorHandler(svc *application.StateMachineService) *CoordinatorHandler {
	return &CoordinatorHandler{svc: svc}
}

// UpdateStatus godoc
// @Summary Move a project to a target state
// @Description The target state is reached through its review operation; illegal moves are rejected.
// @Tags coordinator
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body project.UpdateStatusDTO true "Target state"
// @Success 200 {object} project.Project
// @Failure 400 {object} response.ErrorResponse "Unknown state"
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Failure 409 {object} response.ErrorResponse "Invalid transition"
// @Router /coordinator/projects/update-status [put]
func (h *CoordinatorHandler) UpdateStatus(c *gin.Context) {
	var input project.UpdateStatusDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	p, err := h.svc.ApplyStatus(c.Request.Context(), input, coordinatorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Review returns the handler for one review operation.
//
// @Summary Accept, reject, execute or close a project
// @Tags coordinator
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param input body project.ReviewDTO false "Comments"
// @Success 200 {object} project.Project
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Invalid transition"
// @Router /coordinator/projects/{id}/{operation} [post]
func (h *CoordinatorHandler) Review(op project.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input project.ReviewDTO
		if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
			badRequest(c, "invalid request body: "+err.Error())
			return
		}

		review := application.Review{CoordinatorID: coordinatorID(c), Comments: input.Comments}
		p, err := h.svc.Apply(c.Request.Context(), c.Param("id"), op, review)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// ListProjects godoc
// @Summary List canonical projects
// @Tags coordinator
// @Security BearerAuth
// @Produce json
// @Param state query string false "Filter by state"
// @Success 200 {array} project.Project
// @Failure 400 {object} response.ErrorResponse
// @Router /coordinator/projects [get]
func (h *CoordinatorHandler) ListProjects(c *gin.Context) {
	projects, err := h.svc.ListProjects(c.Request.Context(), c.Query("state"))
	if err != nil {
		respondError(c, err)
		return
	}
	if projects == nil {
		projects = []project.Project{}
	}
	c.JSON(http.StatusOK, projects)
}

// GetProject godoc
// @Summary Get a canonical project
// @Tags coordinator
// @Security BearerAuth
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} project.Project
// @Failure 404 {object} response.ErrorResponse
// @Router /coordinator/projects/{id} [get]
func (h *CoordinatorHandler) GetProject(c *gin.Context) {
	p, err := h.svc.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func coordinatorID(c *gin.Context) string {
	if p, ok := middleware.PrincipalFrom(c); ok {
		return p.UserID
	}
	return ""
}
