package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/user/extraction-console/internal/service/pdfinfo"
	"github.com/user/extraction-console/internal/usecase"
)

// Deps bundles the use cases and settings the handler needs.
type Deps struct {
	Documents   usecase.DocumentManager
	Templates   usecase.TemplateManager
	Jobs        usecase.JobManager
	Extractions usecase.ExtractionViewer
	Tenants     usecase.TenantManager
	Dashboard   usecase.DashboardViewer
	Prober      *pdfinfo.Prober

	DefaultPerPage int
	MaxPerPage     int
}

type Handler struct {
	deps Deps
}

func NewHandler(deps Deps) *Handler {
	return &Handler{deps: deps}
}

func (h *Handler) HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}

func (h *Handler) writeJSONError(w http.ResponseWriter, message string, status int) {
	h.writeJSON(w, status, map[string]string{"error": message})
}

// writeDomainError maps use-case errors onto HTTP statuses. Anything
// unrecognized is a 500 and gets logged; known errors surface verbatim.
func (h *Handler) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrDocumentNotFound),
		errors.Is(err, usecase.ErrTemplateNotFound),
		errors.Is(err, usecase.ErrJobNotFound),
		errors.Is(err, usecase.ErrExtractionNotFound),
		errors.Is(err, usecase.ErrTenantNotFound):
		h.writeJSONError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, usecase.ErrDuplicateDocument):
		h.writeJSONError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTemplate),
		errors.Is(err, usecase.ErrInvalidTenant):
		h.writeJSONError(w, err.Error(), http.StatusBadRequest)
	default:
		slog.Error("Unhandled use case error", "error", err)
		h.writeJSONError(w, "Internal server error", http.StatusInternalServerError)
	}
}

// formatBytes renders a size for table cells, binary units.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
