package middleware

import (
	"errors"
	"net/http"

	"agronat/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ErrorHandler translates errors attached by handlers into the JSON error
// envelope. Typed errors map to their status; anything else becomes a 500
// with the cause kept server-side.
func ErrorHandler(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		var ae *apierror.Error
		if errors.As(err, &ae) {
			if ae.Status() >= 500 {
				log.Error().Err(errors.Unwrap(ae)).
					Str("path", c.Request.URL.Path).
					Str("request_id", c.GetString(RequestIDKey)).
					Msg("error interno")
			}
			c.JSON(ae.Status(), apierror.New(ae.Message))
			return
		}

		log.Error().Err(err).
			Str("path", c.Request.URL.Path).
			Str("request_id", c.GetString(RequestIDKey)).
			Msg("error no tipado")
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
	}
}
