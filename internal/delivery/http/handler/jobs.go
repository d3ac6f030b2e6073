package handler

import (
	"encoding/json"
	"net/http"

	"github.com/user/extraction-console/internal/delivery/http/request"
	"github.com/user/extraction-console/internal/delivery/http/response"
	"github.com/user/extraction-console/internal/delivery/http/tableview"
	"github.com/user/extraction-console/internal/entity"
	"github.com/user/extraction-console/internal/table"
	"github.com/user/extraction-console/internal/usecase"
)

func jobColumns() []table.Column[*entity.ExtractionJob] {
	return []table.Column[*entity.ExtractionJob]{
		{Key: "name", Label: "Job", Sortable: true, Width: "2fr"},
		{Key: "schedule", Label: "Schedule"},
		{Key: "status", Label: "Status", Sortable: true},
		{Key: "last_run_at", Label: "Last run", Sortable: true},
		{Key: "next_run_at", Label: "Next run", Sortable: true},
	}
}

var jobsEmptyState = &table.EmptyState{
	Icon:        "job",
	Title:       "No extraction jobs",
	Description: "Create a job to run a template against a document.",
}

func (h *Handler) HandleListJobs(w http.ResponseWriter, r *http.Request) {
	tenantID := r.PathValue("tenantID")
	params := tableview.Parse(r, h.deps.DefaultPerPage, h.deps.MaxPerPage)

	jobs, total, err := h.deps.Jobs.List(r.Context(), tenantID, params.ListParams())
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	view := tableview.Server(jobColumns(), jobs, total, params, jobsEmptyState)
	h.writeJSON(w, http.StatusOK, response.TableResponse{Table: view})
}

func (h *Handler) HandleCreateJob(w http.ResponseWriter, r *http.Request) {
	var req request.JobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.TemplateID == "" || req.DocumentID == "" {
		h.writeJSONError(w, "name, template_id and document_id are required", http.StatusBadRequest)
		return
	}

	job, err := h.deps.Jobs.Create(r.Context(), r.PathValue("tenantID"), usecase.JobInput{
		Name:       req.Name,
		TemplateID: req.TemplateID,
		DocumentID: req.DocumentID,
		Schedule:   req.Schedule,
	})
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, response.FromJob(job))
}

func (h *Handler) HandleGetJob(w http.ResponseWriter, r *http.Request) {
	job, err := h.deps.Jobs.Get(r.Context(), r.PathValue("tenantID"), r.PathValue("jobID"))
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, response.FromJob(job))
}

func (h *Handler) HandleRunJobNow(w http.ResponseWriter, r *http.Request) {
	tenantID := r.PathValue("tenantID")
	jobID := r.PathValue("jobID")

	if err := h.deps.Jobs.RunNow(r.Context(), tenantID, jobID); err != nil {
		h.writeDomainError(w, err)
		return
	}
	h.writeJSON(w, http.StatusAccepted, response.RunNowResponse{
		Status:  "success",
		Message: "Extraction run enqueued",
		JobID:   jobID,
	})
}

func (h *Handler) HandleDeleteJob(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.Jobs.Delete(r.Context(), r.PathValue("tenantID"), r.PathValue("jobID")); err != nil {
		h.writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
