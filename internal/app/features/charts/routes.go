// internal/app/features/charts/routes.go
package charts

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the dashboard; it is mounted under
// /dashboard.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeDashboard)
	r.Post("/company", h.HandleSelectCompany)
	r.Get("/charts/{slot}", h.ServeChartImage)
	r.Get("/export/{slot}", h.ServeExport)
	r.Get("/stats", h.ServeStatsJSON)
	return r
}
