package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/paulamunoz06/gestionproyectos/internal/api/handlers"
	"github.com/paulamunoz06/gestionproyectos/internal/api/middleware"
	"github.com/paulamunoz06/gestionproyectos/pkg/types"
)

func RegisterStudentRoutes(auth *gin.RouterGroup, h *handlers.Handlers) {
	studentOnly := middleware.RequireRole(types.RoleStudent)

	students := auth.Group("/student")
	{
		students.POST("/register", studentOnly, h.Student.RegisterStudent)
		students.POST("/postulations", studentOnly, h.Student.Postulate)
		students.GET("/projects/available", h.Student.ListAvailable)
		students.GET("/:id", h.Student.GetStudent)
		students.GET("/:id/projects", h.Student.ListStudentProjects)
	}
}
