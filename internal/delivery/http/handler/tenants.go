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

func tenantColumns() []table.Column[*entity.Tenant] {
	return []table.Column[*entity.Tenant]{
		{Key: "name", Label: "Tenant", Sortable: true, Width: "2fr"},
		{Key: "slug", Label: "Slug", Sortable: true},
		{Key: "plan", Label: "Plan", Sortable: true},
		{Key: "active", Label: "Active", Align: table.AlignCenter, Width: "80px"},
		{Key: "created_at", Label: "Created", Sortable: true},
	}
}

var tenantsEmptyState = &table.EmptyState{
	Icon:        "tenant",
	Title:       "No tenants",
	Description: "Create a tenant to onboard an organization.",
}

func (h *Handler) HandleListTenants(w http.ResponseWriter, r *http.Request) {
	params := tableview.Parse(r, h.deps.DefaultPerPage, h.deps.MaxPerPage)

	tenants, total, err := h.deps.Tenants.List(r.Context(), params.ListParams())
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	view := tableview.Server(tenantColumns(), tenants, total, params, tenantsEmptyState)
	h.writeJSON(w, http.StatusOK, response.TableResponse{Table: view})
}

func (h *Handler) HandleCreateTenant(w http.ResponseWriter, r *http.Request) {
	var req request.TenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	tenant, err := h.deps.Tenants.Create(r.Context(), usecase.TenantInput{
		Name: req.Name,
		Slug: req.Slug,
		Plan: req.Plan,
	})
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, response.FromTenant(tenant))
}

func (h *Handler) HandleGetTenant(w http.ResponseWriter, r *http.Request) {
	tenant, err := h.deps.Tenants.Get(r.Context(), r.PathValue("tenantID"))
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, response.FromTenant(tenant))
}

func (h *Handler) HandleDeactivateTenant(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.Tenants.Deactivate(r.Context(), r.PathValue("tenantID")); err != nil {
		h.writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.deps.Dashboard.Stats(r.Context(), r.PathValue("tenantID"))
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, response.DashboardResponse{Stats: *stats})
}
