package ingest

import (
	"time"
)

// Run is the bookkeeping row recorded for every import call.
type Run struct {
	ID             string
	Query          string
	Status         string // RUNNING, COMPLETED, FAILED
	BooksFetched   int
	BooksImported  int
	RecordsSkipped int
	Error          string
	StartedAt      time.Time
	FinishedAt     *time.Time
}
