// internal/app/features/charts/dashboard.go
package charts

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/pathakkushagra03/crm-app-sub001/internal/app/system/charting"
	"github.com/pathakkushagra03/crm-app-sub001/internal/app/system/timeouts"
)

/*─────────────────────────────────────────────────────────────────────────────*
| GET /dashboard – charts dashboard                                            |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "dashboard snapshot")
	defer cancel()

	snap := h.snapshot(ctx, r)
	usable := h.Initialize(snap)

	selected, hasSelection := snap.SelectedCompany()

	data := dashboardData{
		Title:           "Dashboard",
		CurrentPath:     r.URL.Path,
		Companies:       h.companyOptions(ctx, selected),
		SelectedCompany: selected,
		HasSelection:    hasSelection,
		Validation:      h.ValidateConfig(snap),
		Charts:          h.chartViews(),
		StatsHTML:       template.HTML(h.RenderStatsSummary(snap)),
	}
	if !usable {
		h.Log.Warn("dashboard rendered in degraded state",
			zap.String("company", selected))
	}

	templates.Render(w, r, "charts_dashboard", data)
}

// chartViews builds the per-slot view models from whatever the registry
// currently holds. A slot with no live chart still appears, so the page
// layout is stable.
func (h *Handler) chartViews() []chartView {
	views := make([]chartView, 0, len(charting.Slots()))
	for _, slot := range charting.Slots() {
		v := chartView{Slot: string(slot), Title: slotTitle(slot), Status: "empty"}
		if handle, ok := h.Charts.Handle(slot); ok {
			uri, err := handle.ToBase64Image()
			if err != nil {
				h.Log.Warn("chart image unavailable", zap.String("slot", string(slot)), zap.Error(err))
				v.Status = "failed"
				v.Reason = "image unavailable"
			} else {
				v.Status = "rendered"
				v.ImageURI = template.URL(uri)
			}
		}
		views = append(views, v)
	}
	return views
}

func (h *Handler) companyOptions(ctx context.Context, selected string) []companyOption {
	if h.Loader == nil {
		return nil
	}
	companies := h.Loader.Companies(ctx)
	opts := make([]companyOption, 0, len(companies))
	for _, c := range companies {
		opts = append(opts, companyOption{
			ID:       c.ID,
			Name:     c.Name,
			Selected: c.ID == selected,
		})
	}
	return opts
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /dashboard/company – switch company                                     |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleSelectCompany(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	companyID := r.PostFormValue("company_id")

	if err := h.Tenant.Select(w, r, companyID); err != nil {
		h.Log.Error("company selection failed", zap.Error(err))
		http.Error(w, "could not save selection", http.StatusInternalServerError)
		return
	}

	// Charts for the previous company are stale now.
	h.DestroyAll()
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /dashboard/charts/{slot} – raw chart image                               |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeChartImage(w http.ResponseWriter, r *http.Request) {
	slot := charting.Slot(chi.URLParam(r, "slot"))

	handle, ok := h.Charts.Handle(slot)
	if !ok {
		http.NotFound(w, r)
		return
	}
	uri, err := handle.ToBase64Image()
	if err != nil {
		http.NotFound(w, r)
		return
	}
	mime, data, err := decodeDataURI(uri)
	if err != nil {
		h.Log.Error("stored chart image malformed", zap.String("slot", string(slot)), zap.Error(err))
		http.Error(w, "chart image unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /dashboard/export/{slot} – download chart image                          |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeExport(w http.ResponseWriter, r *http.Request) {
	slot := charting.Slot(chi.URLParam(r, "slot"))

	artifact, ok := h.ExportChart(slot, r.URL.Query().Get("filename"))
	if !ok {
		http.Error(w, "chart export unavailable", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", artifact.MIME)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	_, _ = w.Write(artifact.Data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /dashboard/stats – stats as JSON                                         |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeStatsJSON(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "stats snapshot")
	defer cancel()

	stats := h.GetStats(h.snapshot(ctx, r))

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(stats)
}
