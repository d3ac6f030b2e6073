package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/user/extraction-console/internal/delivery/http/handler"
	"github.com/user/extraction-console/internal/delivery/http/middleware"
)

func New(h *handler.Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", h.HandleHealthCheck)

	mux.HandleFunc("GET /api/tenants", h.HandleListTenants)
	mux.HandleFunc("POST /api/tenants", h.HandleCreateTenant)
	mux.HandleFunc("GET /api/tenants/{tenantID}", h.HandleGetTenant)
	mux.HandleFunc("POST /api/tenants/{tenantID}/deactivate", h.HandleDeactivateTenant)
	mux.HandleFunc("GET /api/tenants/{tenantID}/dashboard", h.HandleDashboard)

	mux.HandleFunc("GET /api/tenants/{tenantID}/documents", h.HandleListDocuments)
	mux.HandleFunc("POST /api/tenants/{tenantID}/documents", h.HandleRegisterDocument)
	mux.HandleFunc("POST /api/tenants/{tenantID}/documents/inspect", h.HandleInspectDocument)
	mux.HandleFunc("GET /api/tenants/{tenantID}/documents/{documentID}", h.HandleGetDocument)
	mux.HandleFunc("DELETE /api/tenants/{tenantID}/documents/{documentID}", h.HandleDeleteDocument)

	mux.HandleFunc("GET /api/tenants/{tenantID}/templates", h.HandleListTemplates)
	mux.HandleFunc("POST /api/tenants/{tenantID}/templates", h.HandleCreateTemplate)
	mux.HandleFunc("GET /api/tenants/{tenantID}/templates/{templateID}", h.HandleGetTemplate)
	mux.HandleFunc("PUT /api/tenants/{tenantID}/templates/{templateID}", h.HandleUpdateTemplate)
	mux.HandleFunc("DELETE /api/tenants/{tenantID}/templates/{templateID}", h.HandleDeleteTemplate)

	mux.HandleFunc("GET /api/tenants/{tenantID}/jobs", h.HandleListJobs)
	mux.HandleFunc("POST /api/tenants/{tenantID}/jobs", h.HandleCreateJob)
	mux.HandleFunc("GET /api/tenants/{tenantID}/jobs/{jobID}", h.HandleGetJob)
	mux.HandleFunc("POST /api/tenants/{tenantID}/jobs/{jobID}/run", h.HandleRunJobNow)
	mux.HandleFunc("DELETE /api/tenants/{tenantID}/jobs/{jobID}", h.HandleDeleteJob)
	mux.HandleFunc("GET /api/tenants/{tenantID}/jobs/{jobID}/extractions", h.HandleListExtractions)

	mux.HandleFunc("POST /api/extractions", h.HandleIngestExtraction)
	mux.HandleFunc("GET /api/extractions/{extractionID}", h.HandleGetExtraction)

	// Prometheus metrics endpoint
	mux.Handle("/metrics", promhttp.Handler())

	// Apply middlewares
	var chainedHandler http.Handler = mux
	chainedHandler = middleware.Metrics(chainedHandler)
	chainedHandler = middleware.Logging(chainedHandler)

	return chainedHandler
}
