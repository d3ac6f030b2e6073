package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/user/extraction-console/internal/delivery/http/request"
	"github.com/user/extraction-console/internal/delivery/http/response"
	"github.com/user/extraction-console/internal/delivery/http/tableview"
	"github.com/user/extraction-console/internal/entity"
	"github.com/user/extraction-console/internal/service/pdfinfo"
	"github.com/user/extraction-console/internal/table"
	"github.com/user/extraction-console/internal/usecase"
)

func documentColumns() []table.Column[*entity.Document] {
	return []table.Column[*entity.Document]{
		{Key: "filename", Label: "Filename", Sortable: true, Width: "2fr"},
		{Key: "size_bytes", Label: "Size", Sortable: true, Align: table.AlignRight,
			Render: func(doc *entity.Document, _ int) string { return formatBytes(doc.SizeBytes) }},
		{Key: "page_count", Label: "Pages", Sortable: true, Width: "80px", Align: table.AlignRight},
		{Key: "status", Label: "Status", Sortable: true},
		{Key: "uploaded_at", Label: "Uploaded", Sortable: true},
	}
}

var documentsEmptyState = &table.EmptyState{
	Icon:        "document",
	Title:       "No documents yet",
	Description: "Upload a document to start extracting data from it.",
}

func (h *Handler) HandleListDocuments(w http.ResponseWriter, r *http.Request) {
	tenantID := r.PathValue("tenantID")
	params := tableview.Parse(r, h.deps.DefaultPerPage, h.deps.MaxPerPage)

	docs, total, err := h.deps.Documents.List(r.Context(), tenantID, params.ListParams())
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	view := tableview.Server(documentColumns(), docs, total, params, documentsEmptyState)
	h.writeJSON(w, http.StatusOK, response.TableResponse{Table: view})
}

func (h *Handler) HandleRegisterDocument(w http.ResponseWriter, r *http.Request) {
	tenantID := r.PathValue("tenantID")

	var req request.RegisterDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Filename == "" || req.ContentHash == "" {
		h.writeJSONError(w, "filename and content_hash are required", http.StatusBadRequest)
		return
	}

	doc, err := h.deps.Documents.Register(r.Context(), tenantID, usecase.RegisterDocumentInput{
		Filename:    req.Filename,
		ContentHash: req.ContentHash,
		SizeBytes:   req.SizeBytes,
		PageCount:   req.PageCount,
		Force:       req.Force,
	})
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, response.FromDocument(doc))
}

// HandleInspectDocument probes a raw PDF body for metadata before the client
// registers it. The body is not stored.
func (h *Handler) HandleInspectDocument(w http.ResponseWriter, r *http.Request) {
	pages, err := h.deps.Prober.PageCount(r.Body)
	if err != nil {
		if errors.Is(err, pdfinfo.ErrNotPDF) {
			h.writeJSONError(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		h.writeJSONError(w, "Failed to read request body", http.StatusBadRequest)
		return
	}
	h.writeJSON(w, http.StatusOK, response.InspectDocumentResponse{PageCount: pages})
}

func (h *Handler) HandleGetDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := h.deps.Documents.Get(r.Context(), r.PathValue("tenantID"), r.PathValue("documentID"))
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, response.FromDocument(doc))
}

func (h *Handler) HandleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.Documents.Delete(r.Context(), r.PathValue("tenantID"), r.PathValue("documentID")); err != nil {
		h.writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
