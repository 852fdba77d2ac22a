package ingest

import (
	"net/http"

	"bookshelf/internal/httpx"
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

// Import handles GET /import/books.
func (h *HTTPHandler) Import(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	if err := h.svc.Run(r.Context(), query); err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	// Success is an empty 200; counts live in import_runs.
	w.WriteHeader(http.StatusOK)
}
