package ingest

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"bookshelf/internal/apperr"
	"bookshelf/internal/platform/googlebooks"
	"bookshelf/internal/testutil"
)

func TestHTTPHandler_Import(t *testing.T) {
	t.Run("empty q", func(t *testing.T) {
		mClient := new(mockCatalogClient)
		mBooks := new(mockBookRepo)
		mRuns := new(mockRunRepo)
		handler := NewHTTPHandler(NewService(mClient, mBooks, mRuns))

		w := httptest.NewRecorder()
		handler.Import(w, testutil.NewRequest(http.MethodGet, "/import/books", nil))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.NotEmpty(t, resp.Body["message"])
		mClient.AssertNotCalled(t, "Search")
	})

	t.Run("success is an empty 200", func(t *testing.T) {
		mClient := new(mockCatalogClient)
		mBooks := new(mockBookRepo)
		mRuns := new(mockRunRepo)
		handler := NewHTTPHandler(NewService(mClient, mBooks, mRuns))

		mRuns.On("CreateRun", mock.Anything, mock.Anything).Return("run-1", nil)
		mClient.On("Search", mock.Anything, "hobbit").Return([]googlebooks.Volume{}, nil)
		mRuns.On("UpdateRun", mock.Anything, mock.Anything).Return(nil)

		w := httptest.NewRecorder()
		handler.Import(w, testutil.NewRequest(http.MethodGet, "/import/books?q=hobbit", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.Bytes())
	})

	t.Run("fetch failure surfaces as 500", func(t *testing.T) {
		mClient := new(mockCatalogClient)
		mBooks := new(mockBookRepo)
		mRuns := new(mockRunRepo)
		handler := NewHTTPHandler(NewService(mClient, mBooks, mRuns))

		mRuns.On("CreateRun", mock.Anything, mock.Anything).Return("run-2", nil)
		mClient.On("Search", mock.Anything, "hobbit").Return(nil, apperr.Import("volumes search", errors.New("boom")))
		mRuns.On("UpdateRun", mock.Anything, mock.Anything).Return(nil)

		w := httptest.NewRecorder()
		handler.Import(w, testutil.NewRequest(http.MethodGet, "/import/books?q=hobbit", nil))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusInternalServerError, resp.Code)
		// Upstream detail is not echoed to the client.
		assert.Equal(t, "internal server error", resp.Body["message"])
	})
}
