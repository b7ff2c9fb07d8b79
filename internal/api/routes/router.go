package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/paulamunoz06/gestionproyectos/internal/api/handlers"
	"github.com/paulamunoz06/gestionproyectos/internal/api/middleware"
	"github.com/paulamunoz06/gestionproyectos/internal/config"
	"github.com/paulamunoz06/gestionproyectos/pkg/types"
)

type Options struct {
	Service     string
	JWT         *middleware.JWT
	Logger      *zap.Logger
	CORSOrigins []string
	Ping        handlers.Pinger
	// Metrics serves /metrics when set.
	Metrics http.Handler
}

// NewRouter builds the gin engine for one service.
func NewRouter(h *handlers.Handlers, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if opts.Logger != nil {
		r.Use(middleware.RequestLogger(opts.Logger))
	}
	if len(opts.CORSOrigins) > 0 {
		r.Use(middleware.CORS(opts.CORSOrigins))
	}

	r.GET("/healthz", handlers.Healthz(opts.Service, opts.Ping))
	if opts.Metrics != nil {
		r.GET("/metrics", gin.WrapH(opts.Metrics))
	}

	auth := r.Group("/")
	auth.Use(opts.JWT.Authenticate())
	auth.GET("/admin/message-failures", middleware.RequireRole(types.RoleAdmin), h.Failure.ListFailures)

	switch opts.Service {
	case config.ServiceCompany:
		RegisterCompanyRoutes(auth, h)
	case config.ServiceCoordinator:
		RegisterCoordinatorRoutes(auth, h)
	case config.ServiceStudent:
		RegisterStudentRoutes(auth, h)
	}
	return r
}
