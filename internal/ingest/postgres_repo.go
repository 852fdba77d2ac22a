package ingest

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	CreateRun(ctx context.Context, run *Run) (string, error)
	UpdateRun(ctx context.Context, run *Run) error
}

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) CreateRun(ctx context.Context, run *Run) (string, error) {
	const sql = `
		INSERT INTO import_runs (query, status, started_at)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id string
	err := r.db.QueryRow(ctx, sql, run.Query, run.Status, run.StartedAt).Scan(&id)
	return id, err
}

func (r *PostgresRepo) UpdateRun(ctx context.Context, run *Run) error {
	const sql = `
		UPDATE import_runs SET
			status = $1,
			books_fetched = $2,
			books_imported = $3,
			records_skipped = $4,
			error = $5,
			finished_at = $6
		WHERE id = $7`

	_, err := r.db.Exec(ctx, sql, run.Status, run.BooksFetched, run.BooksImported, run.RecordsSkipped, run.Error, run.FinishedAt, run.ID)
	return err
}
