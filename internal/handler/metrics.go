package handler

import (
	"fmt"
	"net/http"

	"github.com/bhujbalpratik/Bookstore-RESTAPI/internal/metrics"
)

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns metrics in Prometheus exposition format.
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	writeMetric(w, "bookstore_users_registered_total %d\n", snap.UsersRegistered)
	writeMetric(w, "bookstore_logins_total{status=\"success\"} %d\n", snap.LoginSuccesses)
	writeMetric(w, "bookstore_logins_total{status=\"failure\"} %d\n", snap.LoginFailures)

	writeMetric(w, "bookstore_books_created_total %d\n", snap.BooksCreated)
	writeMetric(w, "bookstore_books_updated_total %d\n", snap.BooksUpdated)
	writeMetric(w, "bookstore_books_deleted_total %d\n", snap.BooksDeleted)

	writeMetric(w, "bookstore_book_searches_total %d\n", snap.BookSearches)
	writeMetric(w, "bookstore_search_duration_seconds_count %d\n", snap.SearchDurationCount)
	writeMetric(w, "bookstore_search_duration_seconds_sum %.6f\n", float64(snap.SearchDurationTotalNs)/1e9)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
