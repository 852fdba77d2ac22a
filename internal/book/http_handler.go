package book

import (
	"encoding/json"
	"net/http"
	"strconv"

	"bookshelf/internal/apperr"
	"bookshelf/internal/httpx"
)

type HTTPHandler struct {
	repo Repository
}

func NewHTTPHandler(repo Repository) *HTTPHandler {
	return &HTTPHandler{repo: repo}
}

// List handles GET /books.
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	offset := 0
	if raw := r.URL.Query().Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			httpx.WriteError(w, r, apperr.Validation("offset must be a non-negative integer"))
			return
		}
		offset = n
	}

	books, err := h.repo.List(r.Context(), offset)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	if books == nil {
		books = []Book{}
	}
	httpx.JSON(w, http.StatusOK, books)
}

type createBookRequest struct {
	Title         string   `json:"title" validate:"required"`
	Authors       []string `json:"authors" validate:"required,min=1,dive,required"`
	PublishedDate string   `json:"published_date" validate:"required,datetime=2006-01-02"`
}

// Create handles POST /books.
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, r, apperr.Validation("invalid JSON body"))
		return
	}
	if err := httpx.ValidateStruct(req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	// PublishedDate passed the datetime tag, so this cannot fail.
	publishedDate, err := ParseDate(req.PublishedDate)
	if err != nil {
		httpx.WriteError(w, r, apperr.Validation(err.Error()))
		return
	}

	b := New(0, req.Title, req.Authors, publishedDate)
	id, err := h.repo.Insert(r.Context(), b)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	b.ID = id

	httpx.JSON(w, http.StatusCreated, b)
}

// Delete handles DELETE /books/{id}. Deleting an id twice reports 404 the
// second time.
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httpx.WriteError(w, r, apperr.NotFound("book not found"))
		return
	}

	affected, err := h.repo.Delete(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	if affected == 0 {
		httpx.WriteError(w, r, apperr.NotFound("book not found"))
		return
	}
	httpx.NoContent(w)
}
