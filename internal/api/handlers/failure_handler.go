package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/paulamunoz06/gestionproyectos/internal/application"
	"github.com/paulamunoz06/gestionproyectos/internal/domain/inbox"
	"github.com/paulamunoz06/gestionproyectos/internal/repository"
)

type FailureHandler struct {
	svc *application.FailureService
}

func NewFailureHandler(svc *application.FailureService) *FailureHandler {
	return &FailureHandler{svc: svc}
}

// ListFailures godoc
// @Summary List dropped bus messages
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param queue query string false "Logical queue"
// @Param limit query int false "Max results" default(100)
// @Param offset query int false "Offset"
// @Success 200 {array} inbox.Failure
// @Router /admin/message-failures [get]
func (h *FailureHandler) ListFailures(c *gin.Context) {
	params := repository.FailureQueryParams{Limit: 100}
	if q := c.Query("queue"); q != "" {
		params.Queue = &q
	}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			badRequest(c, "limit must be a positive integer")
			return
		}
		params.Limit = n
	}
	if v := c.Query("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			badRequest(c, "offset must be a non-negative integer")
			return
		}
		params.Offset = n
	}

	failures, err := h.svc.QueryFailures(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	if failures == nil {
		failures = []inbox.Failure{}
	}
	c.JSON(http.StatusOK, failures)
}
