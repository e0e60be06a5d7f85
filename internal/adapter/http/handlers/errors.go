package handlers

import (
	"errors"
	"net/http"

	"erp_vendas/internal/domain/entities"
	"erp_vendas/internal/logger"
	"erp_vendas/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple(string(entities.KindValidation), "Invalid JSON payload", http.StatusBadRequest)
	errInvalidID      = pkg.NewDomainErrorSimple(string(entities.KindValidation), "Invalid id", http.StatusBadRequest)
)

var kindStatus = map[entities.ErrorKind]int{
	entities.KindValidation:             http.StatusBadRequest,
	entities.KindInvalidOrderState:      http.StatusConflict,
	entities.KindDuplicateInvoiceNumber: http.StatusConflict,
	entities.KindAlreadySettled:         http.StatusConflict,
	entities.KindNotFound:               http.StatusNotFound,
	entities.KindConflict:               http.StatusConflict,
	entities.KindUnauthorized:           http.StatusForbidden,
}

// mapError translates a use case error into the HTTP envelope. The error kind
// becomes the code so clients can branch on it without parsing the message.
func mapError(err error) *pkg.AppError {
	kind := entities.KindOf(err)
	switch kind {
	case entities.KindStorageFailure:
		return pkg.NewRetryableError(string(kind), "Storage temporarily unavailable", err, http.StatusServiceUnavailable)
	case entities.KindInternal:
		return pkg.NewDomainError(string(kind), "An internal error occurred", err, http.StatusInternalServerError)
	}
	message := err.Error()
	var ve *entities.ValidationError
	if errors.As(err, &ve) {
		message = ve.Error()
	}
	return pkg.NewDomainError(string(kind), message, err, kindStatus[kind])
}

func respondError(c *gin.Context, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log := logger.WithComponent("http.handler")
		log.Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg("request failed")
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// bindJSON decodes the body, answering 400 on malformed input.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondAppError(c, errInvalidPayload)
		return false
	}
	return true
}

func pathID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if id == "" {
		respondAppError(c, errInvalidID)
		return "", false
	}
	return id, true
}
