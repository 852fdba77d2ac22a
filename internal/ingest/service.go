package ingest

import (
	"context"
	"log"
	"strings"
	"time"

	"bookshelf/internal/apperr"
	"bookshelf/internal/book"
	"bookshelf/internal/platform/googlebooks"
)

// CatalogClient is the outbound volumes-search dependency.
type CatalogClient interface {
	Search(ctx context.Context, query string) ([]googlebooks.Volume, error)
}

type Service struct {
	client CatalogClient
	books  book.Repository
	runs   Repository
}

func NewService(client CatalogClient, books book.Repository, runs Repository) *Service {
	return &Service{client: client, books: books, runs: runs}
}

// Run fetches volumes matching query and persists them one by one. A record
// whose published date fails to parse, or that carries no title, is skipped
// and logged; a failed fetch or insert aborts the whole run. Bookkeeping
// failures never fail the import itself.
func (s *Service) Run(ctx context.Context, query string) (err error) {
	if strings.TrimSpace(query) == "" {
		return apperr.Validation("import query must not be empty")
	}

	run := &Run{Query: query, Status: "RUNNING", StartedAt: time.Now()}
	if runID, rErr := s.runs.CreateRun(ctx, run); rErr != nil {
		log.Printf("failed to record import run: %v", rErr)
	} else {
		run.ID = runID
	}

	defer func() {
		if run.ID == "" {
			return
		}
		now := time.Now()
		run.FinishedAt = &now
		if err != nil {
			run.Status = "FAILED"
			run.Error = err.Error()
		} else {
			run.Status = "COMPLETED"
		}
		if uErr := s.runs.UpdateRun(ctx, run); uErr != nil {
			log.Printf("failed to update import run %s: %v", run.ID, uErr)
		}
	}()

	volumes, err := s.client.Search(ctx, query)
	if err != nil {
		return err
	}
	run.BooksFetched = len(volumes)

	for _, v := range volumes {
		publishedDate, perr := book.NormalizePublishedDate(v.VolumeInfo.PublishedDate)
		if perr != nil {
			run.RecordsSkipped++
			log.Printf("skipping volume %s: %v", v.ID, perr)
			continue
		}
		if v.VolumeInfo.Title == "" {
			run.RecordsSkipped++
			log.Printf("skipping volume %s: no title", v.ID)
			continue
		}

		b := book.New(0, v.VolumeInfo.Title, v.VolumeInfo.Authors, publishedDate)
		id, ierr := s.books.Insert(ctx, b)
		if ierr != nil {
			err = ierr
			return err
		}
		run.BooksImported++
		log.Printf("imported book id=%d title=%q", id, b.Title)
	}

	return nil
}
