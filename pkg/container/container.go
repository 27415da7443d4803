// Package container wires the application's dependency graph: config,
// database, locale catalog, then per-domain repository → service → handler.
package container

import (
	"context"
	"fmt"

	"book-management-backend/internal/config"
	"book-management-backend/internal/infrastructure/database"
	"book-management-backend/internal/shared/i18n"
	"book-management-backend/internal/shared/response"

	authorHandler "book-management-backend/internal/domains/author/handler"
	authorRepo "book-management-backend/internal/domains/author/repository"
	authorService "book-management-backend/internal/domains/author/service"
	bookHandler "book-management-backend/internal/domains/book/handler"
	bookRepo "book-management-backend/internal/domains/book/repository"
	bookService "book-management-backend/internal/domains/book/service"
)

// Container holds every application dependency. All components are
// stateless singletons living for the process lifetime.
type Container struct {
	Config    *config.Config
	DB        *database.Postgres
	Catalog   *i18n.Catalog
	Responder *response.Responder

	AuthorService authorService.Service
	BookService   bookService.Service

	AuthorHandler *authorHandler.AuthorHandler
	BookHandler   *bookHandler.BookHandler
}

// NewContainer builds the full dependency graph; any failure aborts
// startup.
func NewContainer(ctx context.Context) (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	catalog := i18n.NewCatalog(cfg.Locale.Default)
	responder := response.NewResponder(catalog)

	authors := authorService.NewAuthorService(authorRepo.NewPostgresRepository(db.Pool))
	books := bookService.NewBookService(authors, bookRepo.NewPostgresRepository(db.Pool))

	return &Container{
		Config:        cfg,
		DB:            db,
		Catalog:       catalog,
		Responder:     responder,
		AuthorService: authors,
		BookService:   books,
		AuthorHandler: authorHandler.NewAuthorHandler(authors, responder),
		BookHandler:   bookHandler.NewBookHandler(books, responder),
	}, nil
}

// Cleanup releases held resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
}
