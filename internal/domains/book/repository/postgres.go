package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"book-management-backend/internal/domains/book/model"
)

const (
	pgUniqueViolation = "23505"
	dialectPostgres   = "postgres"
	tableBooks        = "books"
)

var bookColumns = []interface{}{
	"id", "title", "description", "isbn", "publication_date", "author_id", "created_at", "updated_at",
}

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates the pgx-backed book repository.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, b *model.Book) (*model.Book, error) {
	query := `
        INSERT INTO books (title, description, isbn, publication_date, author_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, title, description, isbn, publication_date, author_id, created_at, updated_at
    `

	var created model.Book
	err := r.pool.QueryRow(ctx, query,
		b.Title,
		b.Description,
		b.ISBN,
		b.PublicationDate,
		b.AuthorID,
	).Scan(
		&created.ID,
		&created.Title,
		&created.Description,
		&created.ISBN,
		&created.PublicationDate,
		&created.AuthorID,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation && strings.Contains(pgErr.ConstraintName, "isbn") {
			return nil, model.ErrISBNTaken
		}
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	query := `
        SELECT id, title, description, isbn, publication_date, author_id, created_at, updated_at
        FROM books
        WHERE id = $1
    `

	var b model.Book
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID,
		&b.Title,
		&b.Description,
		&b.ISBN,
		&b.PublicationDate,
		&b.AuthorID,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	return &b, nil
}

// List builds the filtered page query with goqu: optional case-insensitive
// title containment, whitelisted sort column (validated by the service),
// limit/offset paging, plus a matching count query for the total.
func (r *postgresRepository) List(ctx context.Context, filter model.ListFilter) ([]model.Book, int64, error) {
	ds := goqu.Dialect(dialectPostgres).
		From(tableBooks).
		Select(bookColumns...)

	if filter.Title != "" {
		ds = ds.Where(goqu.C("title").ILike("%" + escapeLikePattern(filter.Title) + "%"))
	}

	order := goqu.I(filter.Page.Sort).Desc()
	if !filter.Page.Descending {
		order = goqu.I(filter.Page.Sort).Asc()
	}

	ds = ds.
		Order(order).
		Limit(uint(filter.Page.Limit())).
		Offset(uint(filter.Page.Offset()))

	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build book list query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	var books []model.Book
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(
			&b.ID,
			&b.Title,
			&b.Description,
			&b.ISBN,
			&b.PublicationDate,
			&b.AuthorID,
			&b.CreatedAt,
			&b.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating books: %w", err)
	}

	total, err := r.count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return books, total, nil
}

func (r *postgresRepository) count(ctx context.Context, filter model.ListFilter) (int64, error) {
	ds := goqu.Dialect(dialectPostgres).
		From(tableBooks).
		Select(goqu.COUNT(goqu.Star()))

	if filter.Title != "" {
		ds = ds.Where(goqu.C("title").ILike("%" + escapeLikePattern(filter.Title) + "%"))
	}

	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return 0, fmt.Errorf("failed to build book count query: %w", err)
	}

	var total int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count books: %w", err)
	}

	return total, nil
}

func (r *postgresRepository) Update(ctx context.Context, b *model.Book) error {
	query := `
        UPDATE books
        SET title = $1, description = $2, publication_date = $3, updated_at = NOW()
        WHERE id = $4
    `

	cmdTag, err := r.pool.Exec(ctx, query, b.Title, b.Description, b.PublicationDate, b.ID)
	if err != nil {
		return fmt.Errorf("failed to update book: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *postgresRepository) ExistsByISBN(ctx context.Context, isbnCode string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM books WHERE isbn = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, isbnCode).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check isbn existence: %w", err)
	}

	return exists, nil
}

// escapeLikePattern neutralizes user-supplied LIKE wildcards so the title
// filter is a literal containment match.
func escapeLikePattern(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}
