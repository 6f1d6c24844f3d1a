// internal/app/features/charts/orchestrator.go
package charts

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/pathakkushagra03/crm-app-sub001/internal/app/store/appstate"
	"github.com/pathakkushagra03/crm-app-sub001/internal/app/system/alerts"
	"github.com/pathakkushagra03/crm-app-sub001/internal/app/system/charting"
)

// Initialize validates the environment and, when usable, renders every
// chart. It reports whether the dashboard is in a usable state. An
// invalid configuration surfaces the first validation error to the user
// and leaves the charts untouched.
func (h *Handler) Initialize(snap *appstate.Snapshot) (ok bool) {
	defer h.guard("initialize", &ok)

	v := h.ValidateConfig(snap)
	for _, w := range v.Warnings {
		h.Log.Warn("dashboard configuration warning", zap.String("warning", w))
	}
	if !v.Valid {
		h.Log.Error("dashboard configuration invalid", zap.Strings("errors", v.Errors))
		if h.Notifier != nil && len(v.Errors) > 0 {
			h.Notifier.Show(v.Errors[0], "error")
		}
		return false
	}

	h.UpdateAll(snap)
	return true
}

// UpdateAll re-renders all three charts from the snapshot. Each chart
// succeeds or fails on its own; one chart's failure never blocks the
// others. With no company selected it emits a single diagnostic and
// renders nothing. A missing engine is systemic, so it is reported once
// here rather than three times by the renderers.
func (h *Handler) UpdateAll(snap *appstate.Snapshot) []RenderResult {
	defer h.guardAny("update all charts")

	if snap == nil {
		snap = &appstate.Snapshot{}
	}
	if _, ok := snap.SelectedCompany(); !ok {
		h.Log.Warn("no company selected; charts not updated")
		return nil
	}
	if h.Engine == nil {
		h.Reporter.Handle(fmt.Errorf("charting engine unavailable"), alerts.Options{
			Context:     "update dashboard charts",
			UserMessage: "Charts are unavailable right now. Please try again later.",
			Severity:    alerts.SeverityMedium,
			Metadata:    map[string]any{"engineAvailable": false},
		})
		return nil
	}

	results := make([]RenderResult, 0, 3)
	for _, fn := range []func(*appstate.Snapshot) RenderResult{
		h.RenderClientsChart,
		h.RenderLeadsChart,
		h.RenderTasksChart,
	} {
		results = append(results, h.renderGuarded(snap, fn))
	}
	return results
}

// renderGuarded runs one renderer, converting a panic into a failed
// result so the remaining charts still get their turn.
func (h *Handler) renderGuarded(snap *appstate.Snapshot, fn func(*appstate.Snapshot) RenderResult) (res RenderResult) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("chart render panic: %v", r)
			h.Reporter.Handle(err, alerts.Options{
				Context:  "render chart",
				Severity: alerts.SeverityLow,
				Silent:   true,
			})
			res = RenderResult{Slot: res.Slot, Status: RenderFailed, Reason: "render panic", Err: err}
		}
	}()
	return fn(snap)
}

// ValidateConfig checks whether the dashboard has what it needs to
// render. Missing engine, store, or selection are errors; a missing
// mount point only degrades one chart, so it is a warning.
func (h *Handler) ValidateConfig(snap *appstate.Snapshot) ValidationResult {
	var v ValidationResult

	if h.Engine == nil {
		v.Errors = append(v.Errors, "charting engine is not available")
	}
	if snap == nil {
		v.Errors = append(v.Errors, "application state is not available")
	} else if _, ok := snap.SelectedCompany(); !ok {
		v.Errors = append(v.Errors, "no company is selected")
	}

	for _, name := range []string{charting.MountClients, charting.MountLeads, charting.MountTasks} {
		if _, ok := h.Mounts.Lookup(name); !ok {
			v.Warnings = append(v.Warnings, fmt.Sprintf("mount point %q not found", name))
		}
	}

	v.Valid = len(v.Errors) == 0
	return v
}

// guard recovers a panic out of a public operation, reporting it and
// forcing the boolean result to false.
func (h *Handler) guard(operation string, ok *bool) {
	if r := recover(); r != nil {
		h.Reporter.Handle(fmt.Errorf("%s panic: %v", operation, r), alerts.Options{
			Context:  operation,
			Severity: alerts.SeverityHigh,
			Silent:   true,
		})
		*ok = false
	}
}

// guardAny is guard for operations without a boolean result.
func (h *Handler) guardAny(operation string) {
	if r := recover(); r != nil {
		h.Reporter.Handle(fmt.Errorf("%s panic: %v", operation, r), alerts.Options{
			Context:  operation,
			Severity: alerts.SeverityHigh,
			Silent:   true,
		})
	}
}
