package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"book-management-backend/internal/domains/author/model"
	bookmodel "book-management-backend/internal/domains/book/model"
	"book-management-backend/pkg/database"
)

const pgUniqueViolation = "23505"

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates the pgx-backed author repository.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	query := `
        INSERT INTO authors (name, email)
        VALUES ($1, $2)
        RETURNING id, name, email, created_at, updated_at
    `

	var created model.Author
	err := r.pool.QueryRow(ctx, query, a.Name, a.Email).Scan(
		&created.ID,
		&created.Name,
		&created.Email,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation && strings.Contains(pgErr.ConstraintName, "email") {
			return nil, model.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	query := `
        SELECT id, name, email, created_at, updated_at
        FROM authors
        WHERE id = $1
    `

	var a model.Author
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.Name,
		&a.Email,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	return &a, nil
}

func (r *postgresRepository) List(ctx context.Context, limit, offset int) ([]model.Author, error) {
	query := `
        SELECT id, name, email, created_at, updated_at
        FROM authors
        ORDER BY id ASC
        LIMIT $1 OFFSET $2
    `

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	var authors []model.Author
	for rows.Next() {
		var a model.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}

	return authors, nil
}

// BooksByAuthors eagerly loads book rows for a page of authors in a single
// round trip, avoiding one query per author.
func (r *postgresRepository) BooksByAuthors(ctx context.Context, authorIDs []int64) (map[int64][]bookmodel.Book, error) {
	result := make(map[int64][]bookmodel.Book, len(authorIDs))
	if len(authorIDs) == 0 {
		return result, nil
	}

	query := `
        SELECT id, title, description, isbn, publication_date, author_id, created_at, updated_at
        FROM books
        WHERE author_id = ANY($1)
        ORDER BY id ASC
    `

	rows, err := r.pool.Query(ctx, query, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query books by authors: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var b bookmodel.Book
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
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		result[b.AuthorID] = append(result[b.AuthorID], b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}

	return result, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *model.Author) error {
	query := `
        UPDATE authors
        SET name = $1, updated_at = NOW()
        WHERE id = $2
    `

	cmdTag, err := r.pool.Exec(ctx, query, a.Name, a.ID)
	if err != nil {
		return fmt.Errorf("failed to update author: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *postgresRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM authors WHERE email = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}

	return exists, nil
}

// DeleteWithBooks removes the author's books and the author in one
// transaction; either both deletions commit or neither does.
func (r *postgresRepository) DeleteWithBooks(ctx context.Context, id int64) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM books WHERE author_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete author's books: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete author: %w", err)
		}

		if cmdTag.RowsAffected() == 0 {
			return model.ErrNotFound
		}

		return nil
	})
}
