package middleware

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/paulamunoz06/gestionproyectos/pkg/response"
	"github.com/paulamunoz06/gestionproyectos/pkg/types"
)

// RequireRole lets the request through only if the authenticated caller has
// one of roles. Admins always pass.
func RequireRole(roles ...types.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "authorization required"})
			return
		}
		if !p.HasRole(roles...) {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "permission denied"})
			return
		}
		c.Next()
	}
}

func CORS(origins []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	})
}
