package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"book-management-backend/internal/shared/i18n"
)

// LocaleKey is the gin context key carrying the resolved language tag.
const LocaleKey = "locale"

// Locale resolves the request's Accept-Language header against the
// supported message languages and stores the result for the responder.
func Locale(catalog *i18n.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		tag := catalog.Resolve(c.GetHeader("Accept-Language"))
		c.Set(LocaleKey, tag)
		c.Next()
	}
}

// LocaleFrom reads the resolved language tag back out of the context,
// falling back to the catalog default when the middleware did not run.
func LocaleFrom(c *gin.Context, catalog *i18n.Catalog) language.Tag {
	if v, ok := c.Get(LocaleKey); ok {
		if tag, ok := v.(language.Tag); ok {
			return tag
		}
	}
	return catalog.Default()
}
