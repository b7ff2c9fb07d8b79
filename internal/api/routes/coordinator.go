package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/paulamunoz06/gestionproyectos/internal/api/handlers"
	"github.com/paulamunoz06/gestionproyectos/internal/api/middleware"
	"github.com/paulamunoz06/gestionproyectos/internal/domain/project"
	"github.com/paulamunoz06/gestionproyectos/pkg/types"
)

func RegisterCoordinatorRoutes(auth *gin.RouterGroup, h *handlers.Handlers) {
	coordinators := auth.Group("/coordinator")
	coordinators.Use(middleware.RequireRole(types.RoleCoordinator))
	{
		coordinators.GET("/projects", h.Coordinator.ListProjects)
		coordinators.GET("/projects/:id", h.Coordinator.GetProject)
		coordinators.PUT("/projects/update-status", h.Coordinator.UpdateStatus)
		for _, op := range []project.Operation{project.OpAccept, project.OpReject, project.OpExecute, project.OpClose} {
			coordinators.POST("/projects/:id/"+string(op), h.Coordinator.Review(op))
		}
	}

	if h.Feed != nil {
		auth.GET("/ws/projects", middleware.RequireRole(types.RoleCoordinator), h.Feed.Serve)
	}
}
