package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paulamunoz06/gestionproyectos/pkg/apperrors"
	"github.com/paulamunoz06/gestionproyectos/pkg/response"
)

// StatusOf maps an error kind to its HTTP status.
func StatusOf(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindInvalidArgument:
		return http.StatusBadRequest
	case apperrors.KindEntityNotFound:
		return http.StatusNotFound
	case apperrors.KindDuplicateEntity, apperrors.KindInvalidTransition:
		return http.StatusConflict
	case apperrors.KindPostulationRejected:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as an ErrorResponse. Internal errors are logged
// through the gin context and answered with a generic message.
func respondError(c *gin.Context, err error) {
	kind := apperrors.KindOf(err)
	status := StatusOf(kind)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		c.JSON(status, response.ErrorResponse{Error: "internal server error", Reason: string(apperrors.KindInternal)})
		return
	}

	body := response.ErrorResponse{Error: err.Error(), Reason: string(kind)}
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		body.Error = appErr.Message
		body.Field = appErr.Field
	}
	c.JSON(status, body)
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: msg, Reason: string(apperrors.KindInvalidArgument)})
}

func forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, response.ErrorResponse{Error: msg})
}
