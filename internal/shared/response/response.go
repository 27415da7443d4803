// Package response converts raised domain failures into the stable error
// payload {"error_code", "error_message"} with a per-kind HTTP status.
package response

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"book-management-backend/internal/shared/apierror"
	"book-management-backend/internal/shared/i18n"
	"book-management-backend/internal/shared/middleware"
)

// ErrorBody is the wire shape of every failure. Field order is stable.
type ErrorBody struct {
	Code    string `json:"error_code"`
	Message string `json:"error_message"`
}

// Responder localizes failures at the HTTP boundary.
type Responder struct {
	catalog *i18n.Catalog
}

func NewResponder(catalog *i18n.Catalog) *Responder {
	return &Responder{catalog: catalog}
}

// Error writes the localized error payload for err. Errors outside the
// taxonomy are logged with full detail server-side and surface only as the
// generic ServerError message.
func (r *Responder) Error(c *gin.Context, err error) {
	apiErr, ok := apierror.From(err)
	if !ok {
		log.Error().
			Err(err).
			Str("request_id", c.GetString(middleware.RequestIDKey)).
			Str("path", c.Request.URL.Path).
			Msg("unclassified failure")

		apiErr = apierror.New(apierror.ServerError, "")
	} else {
		log.Warn().
			Err(apiErr).
			Str("request_id", c.GetString(middleware.RequestIDKey)).
			Str("path", c.Request.URL.Path).
			Msg("request failed")
	}

	tag := middleware.LocaleFrom(c, r.catalog)

	c.AbortWithStatusJSON(apiErr.Kind.HTTPStatus(), ErrorBody{
		Code:    apiErr.Kind.Code(),
		Message: r.catalog.Message(tag, apiErr.Kind.Code(), apiErr.Detail),
	})
}
