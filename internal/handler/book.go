package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bhujbalpratik/Bookstore-RESTAPI/internal/auth"
	"github.com/bhujbalpratik/Bookstore-RESTAPI/internal/handler/dto"
	"github.com/bhujbalpratik/Bookstore-RESTAPI/internal/service"
	"github.com/bhujbalpratik/Bookstore-RESTAPI/internal/validation"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

// BookHandler handles HTTP requests for the book catalog.
type BookHandler struct {
	svc       *service.BookService
	validator *validation.Validator
	logger    *slog.Logger
}

// NewBookHandler creates a new BookHandler.
func NewBookHandler(svc *service.BookService, validator *validation.Validator, logger *slog.Logger) *BookHandler {
	return &BookHandler{
		svc:       svc,
		validator: validator,
		logger:    logger,
	}
}

// Create handles POST /api/v1/books.
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if err := h.validator.Validate(req); err != nil {
		h.handleServiceError(w, err)
		return
	}

	book, err := h.svc.CreateBook(r.Context(), service.CreateBookInput{
		Title:         req.Title,
		Author:        req.Author,
		Genre:         req.Genre,
		PublishedYear: req.PublishedYear,
		OwnerID:       auth.UserIDFromContext(r.Context()),
	})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("book_created",
		"book_id", book.ID,
		"user_id", book.UserID,
	)

	writeJSON(w, http.StatusCreated, dto.ToBookResponse(book))
}

// List handles GET /api/v1/books with optional filter and pagination params.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := parseIntParam(q.Get("page"), "page", defaultPage)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	pageSize, err := parseIntParam(q.Get("limit"), "limit", defaultPageSize)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	result, err := h.svc.ListBooks(r.Context(), service.ListBooksInput{
		Genre:    q.Get("genre"),
		Author:   q.Get("author"),
		Title:    q.Get("title"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBookListResponse(result))
}

// Get handles GET /api/v1/books/{id}.
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	book, err := h.svc.GetBook(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBookResponse(book))
}

// Update handles PATCH /api/v1/books/{id}.
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.UpdateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if err := h.validator.Validate(req); err != nil {
		h.handleServiceError(w, err)
		return
	}

	book, err := h.svc.UpdateBook(r.Context(), service.UpdateBookInput{
		ID:            id,
		CallerID:      auth.UserIDFromContext(r.Context()),
		Title:         req.Title,
		Author:        req.Author,
		Genre:         req.Genre,
		PublishedYear: req.PublishedYear,
	})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("book_updated", "book_id", book.ID)

	writeJSON(w, http.StatusOK, dto.ToBookResponse(book))
}

// Delete handles DELETE /api/v1/books/{id}.
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.svc.DeleteBook(r.Context(), id, auth.UserIDFromContext(r.Context())); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("book_deleted", "book_id", id)

	w.WriteHeader(http.StatusNoContent)
}

// handleServiceError maps service errors to HTTP responses.
func (h *BookHandler) handleServiceError(w http.ResponseWriter, err error) {
	if verr, ok := asValidationError(err); ok {
		writeValidationError(w, verr)
		return
	}

	switch {
	case errors.Is(err, service.ErrBookNotFound):
		writeError(w, http.StatusNotFound, "BOOK_NOT_FOUND", "Book not found")
	case errors.Is(err, service.ErrNotOwner):
		writeError(w, http.StatusForbidden, "FORBIDDEN", "You do not own this book")
	default:
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}

// parseIntParam parses a query parameter as an integer, falling back to def
// when absent. A non-numeric value is reported as a validation failure.
func parseIntParam(raw, field string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, validation.NewError(field, "must be a positive integer")
	}
	return n, nil
}
