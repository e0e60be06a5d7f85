package middleware

import (
	"net/http"
	"time"

	"erp_vendas/internal/domain/entities"
	"erp_vendas/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RequestLogger replaces gin.Logger with one structured line per request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		c.Next()

		status := c.Writer.Status()
		event := log.Info()
		switch {
		case status >= http.StatusInternalServerError:
			event = log.Error()
		case status >= http.StatusBadRequest:
			event = log.Warn()
		}
		event = event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP())
		if claims, ok := ClaimsFrom(c); ok {
			event = event.Str("user", claims.Subject)
		}
		if len(c.Errors) > 0 {
			event = event.Str("errors", c.Errors.String())
		}
		event.Msg("request")
	}
}

// Recovery logs the panic and answers with the internal error envelope.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	internal := pkg.NewDomainErrorSimple(string(entities.KindInternal), "An internal error occurred", http.StatusInternalServerError)
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("recovered from panic")
		c.AbortWithStatusJSON(internal.HTTPStatus, internal.ToHTTPError())
	})
}
