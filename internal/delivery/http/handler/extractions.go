package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/user/extraction-console/internal/delivery/http/request"
	"github.com/user/extraction-console/internal/delivery/http/response"
	"github.com/user/extraction-console/internal/delivery/http/tableview"
	"github.com/user/extraction-console/internal/entity"
	"github.com/user/extraction-console/internal/table"
)

func extractionColumns() []table.Column[*entity.Extraction] {
	return []table.Column[*entity.Extraction]{
		{Key: "id", Label: "Extraction", Width: "2fr"},
		{Key: "status", Label: "Status", Sortable: true},
		{Key: "fields", Label: "Fields", Align: table.AlignRight, Width: "80px",
			Render: func(ex *entity.Extraction, _ int) string { return fmt.Sprintf("%d", len(ex.Fields)) }},
		{Key: "extracted_at", Label: "Extracted", Sortable: true},
	}
}

// fieldResultColumns renders one extraction's field results. The whole
// collection is in memory, so the table sorts and slices it locally.
func fieldResultColumns() []table.Column[entity.FieldResult] {
	return []table.Column[entity.FieldResult]{
		{Key: "name", Label: "Field", Sortable: true},
		{Key: "value", Label: "Value", Width: "2fr"},
		{Key: "confidence", Label: "Confidence", Sortable: true, Align: table.AlignRight,
			Render: func(f entity.FieldResult, _ int) string {
				if f.Confidence == nil {
					return "—"
				}
				return fmt.Sprintf("%.0f%%", *f.Confidence*100)
			}},
	}
}

var extractionsEmptyState = &table.EmptyState{
	Icon:        "extraction",
	Title:       "No extractions yet",
	Description: "Run the job to produce extraction results.",
}

var fieldsEmptyState = &table.EmptyState{
	Icon:        "field",
	Title:       "No fields extracted",
	Description: "This run finished without any field results.",
}

func (h *Handler) HandleListExtractions(w http.ResponseWriter, r *http.Request) {
	tenantID := r.PathValue("tenantID")
	jobID := r.PathValue("jobID")
	params := tableview.Parse(r, h.deps.DefaultPerPage, h.deps.MaxPerPage)

	extractions, total, err := h.deps.Extractions.ListByJob(r.Context(), tenantID, jobID, params.ListParams())
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	view := tableview.Server(extractionColumns(), extractions, total, params, extractionsEmptyState)
	h.writeJSON(w, http.StatusOK, response.TableResponse{Table: view})
}

// HandleGetExtraction returns one extraction with its field results shaped by
// a client-mode table honoring the same page/sort query parameters as the
// list endpoints.
func (h *Handler) HandleGetExtraction(w http.ResponseWriter, r *http.Request) {
	ex, err := h.deps.Extractions.Get(r.Context(), r.PathValue("extractionID"))
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	params := tableview.Parse(r, h.deps.DefaultPerPage, h.deps.MaxPerPage)
	fieldsTable := tableview.Client(fieldResultColumns(), ex.Fields, params, fieldsEmptyState)
	h.writeJSON(w, http.StatusOK, response.FromExtraction(ex, fieldsTable))
}

// HandleIngestExtraction records a finished run posted back by the runner.
func (h *Handler) HandleIngestExtraction(w http.ResponseWriter, r *http.Request) {
	var req request.IngestExtractionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.TenantID == "" || req.JobID == "" {
		h.writeJSONError(w, "tenant_id and job_id are required", http.StatusBadRequest)
		return
	}

	ex := &entity.Extraction{
		TenantID:   req.TenantID,
		JobID:      req.JobID,
		DocumentID: req.DocumentID,
		Status:     req.Status,
		Fields:     req.Fields,
	}
	if req.ExtractedAt != nil {
		ex.ExtractedAt = *req.ExtractedAt
	}

	created, err := h.deps.Extractions.Ingest(r.Context(), ex)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, response.FromExtraction(created, tableview.Client(fieldResultColumns(), created.Fields, tableview.Params{Page: 1, PerPage: h.deps.DefaultPerPage}, fieldsEmptyState)))
}
