package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/user/extraction-console/internal/delivery/http/request"
	"github.com/user/extraction-console/internal/delivery/http/response"
	"github.com/user/extraction-console/internal/delivery/http/tableview"
	"github.com/user/extraction-console/internal/entity"
	"github.com/user/extraction-console/internal/table"
	"github.com/user/extraction-console/internal/usecase"
)

func templateColumns() []table.Column[*entity.Template] {
	return []table.Column[*entity.Template]{
		{Key: "name", Label: "Name", Sortable: true, Width: "2fr"},
		{Key: "description", Label: "Description", Width: "3fr"},
		{Key: "fields", Label: "Fields", Align: table.AlignRight, Width: "80px",
			Render: func(tpl *entity.Template, _ int) string { return strconv.Itoa(len(tpl.Fields)) }},
		{Key: "updated_at", Label: "Updated", Sortable: true},
	}
}

var templatesEmptyState = &table.EmptyState{
	Icon:        "template",
	Title:       "No templates yet",
	Description: "Define a template to describe the fields you want extracted.",
}

func (h *Handler) HandleListTemplates(w http.ResponseWriter, r *http.Request) {
	tenantID := r.PathValue("tenantID")
	params := tableview.Parse(r, h.deps.DefaultPerPage, h.deps.MaxPerPage)

	templates, total, err := h.deps.Templates.List(r.Context(), tenantID, params.ListParams())
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	view := tableview.Server(templateColumns(), templates, total, params, templatesEmptyState)
	h.writeJSON(w, http.StatusOK, response.TableResponse{Table: view})
}

func (h *Handler) HandleCreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req request.TemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	tpl, err := h.deps.Templates.Create(r.Context(), r.PathValue("tenantID"), usecase.TemplateInput{
		Name:        req.Name,
		Description: req.Description,
		Fields:      req.Fields,
	})
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, response.FromTemplate(tpl))
}

func (h *Handler) HandleGetTemplate(w http.ResponseWriter, r *http.Request) {
	tpl, err := h.deps.Templates.Get(r.Context(), r.PathValue("tenantID"), r.PathValue("templateID"))
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, response.FromTemplate(tpl))
}

func (h *Handler) HandleUpdateTemplate(w http.ResponseWriter, r *http.Request) {
	var req request.TemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	tpl, err := h.deps.Templates.Update(r.Context(), r.PathValue("tenantID"), r.PathValue("templateID"), usecase.TemplateInput{
		Name:        req.Name,
		Description: req.Description,
		Fields:      req.Fields,
	})
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, response.FromTemplate(tpl))
}

func (h *Handler) HandleDeleteTemplate(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.Templates.Delete(r.Context(), r.PathValue("tenantID"), r.PathValue("templateID")); err != nil {
		h.writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
