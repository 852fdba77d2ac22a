package book

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"bookshelf/internal/apperr"
)

// PageSize is the fixed number of rows returned per list call.
const PageSize = 10

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

// List returns one page of books in insertion order, starting at offset.
func (r *PostgresRepo) List(ctx context.Context, offset int) ([]Book, error) {
	const query = `
		SELECT id, title, authors, published_date
		FROM books
		ORDER BY id
		OFFSET $1 LIMIT $2`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, offset, PageSize)
	if err != nil {
		return nil, apperr.Store(err)
	}
	defer rows.Close()

	var out []Book
	for rows.Next() {
		var b Book
		var published time.Time
		if err := rows.Scan(&b.ID, &b.Title, &b.Authors, &published); err != nil {
			return nil, apperr.Store(err)
		}
		b.PublishedDate = Date{published}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Store(err)
	}
	return out, nil
}

// Insert writes a new row and returns the assigned id.
func (r *PostgresRepo) Insert(ctx context.Context, b Book) (int, error) {
	const query = `
		INSERT INTO books (title, authors, published_date)
		VALUES ($1, $2, $3)
		RETURNING id`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	var id int
	if err := r.db.QueryRow(timeoutCtx, query, b.Title, b.Authors, b.PublishedDate.Time).Scan(&id); err != nil {
		return 0, apperr.Store(err)
	}
	return id, nil
}

// Delete removes at most one row and reports how many rows matched.
func (r *PostgresRepo) Delete(ctx context.Context, id int) (int64, error) {
	const query = `DELETE FROM books WHERE id = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, query, id)
	if err != nil {
		return 0, apperr.Store(err)
	}
	return tag.RowsAffected(), nil
}
