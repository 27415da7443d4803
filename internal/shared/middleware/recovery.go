package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"book-management-backend/internal/shared/apierror"
)

// Recovery turns panics into the ServerError payload instead of killing
// the connection. The payload is built here rather than through the
// responder to avoid an import cycle with the response package.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("request_id", c.GetString(RequestIDKey)).
					Interface("error", err).
					Msg("panic recovered")

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code":    apierror.ServerError.Code(),
					"error_message": "internal server error",
				})
			}
		}()

		c.Next()
	}
}
