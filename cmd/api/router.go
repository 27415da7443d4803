package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"book-management-backend/internal/shared/middleware"
	"book-management-backend/pkg/container"
)

// SetupRouter mounts middleware and the author/book route groups.
func SetupRouter(c *container.Container) *gin.Engine {
	if c.Config.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Locale(c.Catalog),
	)

	router.GET("/health", healthCheckHandler(c))

	authors := router.Group("/authors")
	{
		authors.POST("", c.AuthorHandler.CreateAuthor)
		authors.GET("", c.AuthorHandler.GetAuthorList)
		authors.GET("/:id", c.AuthorHandler.GetAuthorDetail)
		authors.PATCH("/:id", c.AuthorHandler.UpdateAuthor)
		authors.DELETE("/:id", c.AuthorHandler.DeleteAuthor)
	}

	books := router.Group("/books")
	{
		books.POST("", c.BookHandler.CreateBook)
		books.GET("", c.BookHandler.GetBookList)
		books.GET("/:id", c.BookHandler.GetBookDetails)
		books.PATCH("/:id", c.BookHandler.UpdateBook)
		books.DELETE("/:id", c.BookHandler.DeleteBook)
	}

	return router
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}

		ctx.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"name":    c.Config.App.Name,
			"version": c.Config.App.Version,
		})
	}
}
