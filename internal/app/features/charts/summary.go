// internal/app/features/charts/summary.go
package charts

import (
	"bytes"
	"html/template"

	"go.uber.org/zap"

	"github.com/pathakkushagra03/crm-app-sub001/internal/app/store/appstate"
	"github.com/pathakkushagra03/crm-app-sub001/internal/app/system/chartutil"
	"github.com/pathakkushagra03/crm-app-sub001/internal/app/system/htmlsanitize"
	"github.com/pathakkushagra03/crm-app-sub001/internal/domain/models"
)

// GetStats computes the numeric dashboard summary for the selected
// company. It never fails: with no selection, a nil snapshot, or any
// internal panic it returns the zero Stats.
func (h *Handler) GetStats(snap *appstate.Snapshot) (stats Stats) {
	defer func() {
		if r := recover(); r != nil {
			h.Log.Error("stats computation panic", zap.Any("panic", r))
			stats = Stats{}
		}
	}()

	if snap == nil {
		return Stats{}
	}
	if _, ok := snap.SelectedCompany(); !ok {
		h.Log.Debug("no company selected; stats are zero")
		return Stats{}
	}

	clients := chartutil.ComputeStats(snap.Clients(), map[string]func(models.Client) bool{
		"active": func(c models.Client) bool { return c.Status == models.ClientStatusActive },
		"vip":    func(c models.Client) bool { return c.Status == models.ClientStatusVIP },
	})
	leads := chartutil.ComputeStats(snap.Leads(), map[string]func(models.Lead) bool{
		"new":       func(l models.Lead) bool { return l.Status == models.LeadStatusNew },
		"qualified": func(l models.Lead) bool { return l.Status == models.LeadStatusQualified },
		"won":       func(l models.Lead) bool { return l.Status == models.LeadStatusWon },
	})
	tasks := chartutil.ComputeStats(snap.Tasks(), map[string]func(models.Task) bool{
		"completed": func(t models.Task) bool { return t.Status == models.TaskStatusCompleted },
		"pending":   func(t models.Task) bool { return t.Status == models.TaskStatusPending },
	})

	return Stats{
		Clients: ClientStats{
			Total:      clients.Total,
			Active:     clients.Count("active"),
			VIP:        clients.Count("vip"),
			ActiveRate: clients.RateOf("active"),
		},
		Leads: LeadStats{
			Total:          leads.Total,
			New:            leads.Count("new"),
			Qualified:      leads.Count("qualified"),
			Won:            leads.Count("won"),
			ConversionRate: leads.RateOf("won"),
		},
		Tasks: TaskStats{
			Total:          tasks.Total,
			Completed:      tasks.Count("completed"),
			Pending:        tasks.Count("pending"),
			CompletionRate: tasks.RateOf("completed"),
		},
	}
}

var statsTemplate = template.Must(template.New("stats").Parse(`<div class="row">
  <div class="col stats-card">
    <h6>Clients</h6>
    <p class="stats-total">{{.Clients.Total}}</p>
    <p class="stats-detail">{{.Clients.Active}} active / {{.Clients.VIP}} VIP ({{.Clients.ActiveRate}}% active)</p>
  </div>
  <div class="col stats-card">
    <h6>Leads</h6>
    <p class="stats-total">{{.Leads.Total}}</p>
    <p class="stats-detail">{{.Leads.Won}} won of {{.Leads.Total}} ({{.Leads.ConversionRate}}% conversion)</p>
  </div>
  <div class="col stats-card">
    <h6>Tasks</h6>
    <p class="stats-total">{{.Tasks.Total}}</p>
    <p class="stats-detail">{{.Tasks.Completed}} done / {{.Tasks.Pending}} pending ({{.Tasks.CompletionRate}}% complete)</p>
  </div>
</div>`))

// RenderStatsSummary renders the stats as a sanitized HTML fragment for
// embedding in the dashboard. On any failure it returns the empty
// string rather than partial markup.
func (h *Handler) RenderStatsSummary(snap *appstate.Snapshot) string {
	stats := h.GetStats(snap)

	var buf bytes.Buffer
	if err := statsTemplate.Execute(&buf, stats); err != nil {
		h.Log.Error("stats summary render failed", zap.Error(err))
		return ""
	}
	return htmlsanitize.Sanitize(buf.String())
}
