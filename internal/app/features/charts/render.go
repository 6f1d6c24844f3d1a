// internal/app/features/charts/render.go
package charts

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/pathakkushagra03/crm-app-sub001/internal/app/store/appstate"
	"github.com/pathakkushagra03/crm-app-sub001/internal/app/system/alerts"
	"github.com/pathakkushagra03/crm-app-sub001/internal/app/system/charting"
	"github.com/pathakkushagra03/crm-app-sub001/internal/app/system/chartutil"
	"github.com/pathakkushagra03/crm-app-sub001/internal/domain/models"
)

// RenderClientsChart renders the client-status donut into its slot.
func (h *Handler) RenderClientsChart(snap *appstate.Snapshot) RenderResult {
	return h.render(snap, charting.SlotClients, charting.MountClients, func() charting.Config {
		series := clientStatusSeries(snap.Clients(), h.Log)
		return charting.Config{
			Kind:   charting.KindDonut,
			Title:  titleClients,
			Labels: series.Labels,
			Values: series.Values,
			Colors: chartutil.ColorsFor(series.Labels),
		}
	})
}

// RenderLeadsChart renders the lead-status pie into its slot.
func (h *Handler) RenderLeadsChart(snap *appstate.Snapshot) RenderResult {
	return h.render(snap, charting.SlotLeads, charting.MountLeads, func() charting.Config {
		series := leadStatusSeries(snap.Leads(), h.Log)
		return charting.Config{
			Kind:   charting.KindPie,
			Title:  titleLeads,
			Labels: series.Labels,
			Values: series.Values,
			Colors: chartutil.ColorsFor(series.Labels),
		}
	})
}

// RenderTasksChart renders the task-priority bar chart into its slot.
func (h *Handler) RenderTasksChart(snap *appstate.Snapshot) RenderResult {
	return h.render(snap, charting.SlotTasks, charting.MountTasks, func() charting.Config {
		series := taskPrioritySeries(snap.Tasks(), h.Log)
		return charting.Config{
			Kind:   charting.KindBar,
			Title:  titleTasks,
			Labels: series.Labels,
			Values: series.Values,
			Colors: chartutil.ColorsFor(series.Labels),
		}
	})
}

// render is the shared renderer pipeline: check preconditions in order
// (mount, selection, data), then construct and install. Construction and
// installation failures are reported here at low severity, silently,
// since a missing chart leaves the dashboard degraded but usable. They
// never propagate past the returned RenderResult.
func (h *Handler) render(snap *appstate.Snapshot, slot charting.Slot, mountName string, build func() charting.Config) RenderResult {
	mount, mountFound := h.Mounts.Lookup(mountName)
	if !mountFound {
		h.Log.Warn("chart mount point missing", zap.String("mount", mountName))
		return RenderResult{Slot: slot, Status: RenderSkipped, Reason: "mount point not found"}
	}

	if _, ok := snap.SelectedCompany(); !ok {
		h.Log.Warn("no company selected; chart not rendered", zap.String("slot", string(slot)))
		return RenderResult{Slot: slot, Status: RenderSkipped, Reason: "no company selected"}
	}

	cfg := build()
	if (chartutil.Series{Labels: cfg.Labels, Values: cfg.Values}).Empty() {
		// An empty chart is worse than no chart.
		h.Log.Debug("no data for chart", zap.String("slot", string(slot)))
		return RenderResult{Slot: slot, Status: RenderSkipped, Reason: "no data"}
	}

	if h.Engine == nil {
		err := fmt.Errorf("charting engine unavailable")
		h.reportRenderFailure(slot, err, false, mountFound)
		return RenderResult{Slot: slot, Status: RenderFailed, Reason: "charting engine unavailable", Err: err}
	}

	handle, err := h.Engine.Construct(mount, cfg)
	if err != nil {
		h.reportRenderFailure(slot, err, true, mountFound)
		return RenderResult{Slot: slot, Status: RenderFailed, Reason: "chart construction failed", Err: err}
	}

	h.Charts.Install(slot, handle)
	h.Log.Debug("chart installed", zap.String("slot", string(slot)), zap.Int("categories", len(cfg.Labels)))
	return RenderResult{Slot: slot, Status: RenderInstalled}
}

func (h *Handler) reportRenderFailure(slot charting.Slot, err error, engineAvailable, mountFound bool) {
	h.Reporter.Handle(err, alerts.Options{
		Context:  fmt.Sprintf("render %s chart", slot),
		Severity: alerts.SeverityLow,
		Silent:   true,
		Metadata: map[string]any{
			"slot":            string(slot),
			"engineAvailable": engineAvailable,
			"mountFound":      mountFound,
		},
	})
}

// clientStatusSeries counts clients by status in first-seen order, with
// empty statuses bucketed under "Unknown".
func clientStatusSeries(clients []models.Client, log *zap.Logger) chartutil.Series {
	series, skipped := chartutil.CountByKey(clients, func(c models.Client) (string, error) {
		if c.Status == "" {
			return models.StatusUnknown, nil
		}
		return c.Status, nil
	})
	logSkipped(log, "clients", skipped)
	return series
}

// leadStatusSeries counts leads by status in first-seen order.
func leadStatusSeries(leads []models.Lead, log *zap.Logger) chartutil.Series {
	series, skipped := chartutil.CountByKey(leads, func(l models.Lead) (string, error) {
		if l.Status == "" {
			return models.StatusUnknown, nil
		}
		return l.Status, nil
	})
	logSkipped(log, "leads", skipped)
	return series
}

// taskPrioritySeries counts tasks over the fixed High/Medium/Low set so
// the bar layout is stable even at zero. A missing priority defaults to
// Medium; a priority outside the set is silently not counted.
func taskPrioritySeries(tasks []models.Task, log *zap.Logger) chartutil.Series {
	series, skipped := chartutil.FixedCountByKey(tasks, func(t models.Task) (string, error) {
		if t.Priority == "" {
			return models.PriorityMedium, nil
		}
		return t.Priority, nil
	}, priorityLabels)
	logSkipped(log, "tasks", skipped)

	for i, l := range series.Labels {
		series.Labels[i] = l + " Priority"
	}
	return series
}

func logSkipped(log *zap.Logger, collection string, skipped int) {
	if skipped > 0 && log != nil {
		log.Warn("skipped malformed records during aggregation",
			zap.String("collection", collection),
			zap.Int("skipped", skipped))
	}
}
