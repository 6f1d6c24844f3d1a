// internal/app/features/charts/handler.go

// Package charts renders the dashboard's three summary charts (client
// status, lead status, task priority) and stats summary for the selected
// company, from a read-only application-state snapshot.
//
// Every collaborator the feature depends on (snapshot loader, charting
// engine, error reporter, notifier) is injected and optional; a missing
// collaborator degrades the dashboard instead of crashing it, and a
// failure in one chart never blocks the others.
package charts

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/pathakkushagra03/crm-app-sub001/internal/app/store/appstate"
	"github.com/pathakkushagra03/crm-app-sub001/internal/app/system/alerts"
	"github.com/pathakkushagra03/crm-app-sub001/internal/app/system/charting"
	"github.com/pathakkushagra03/crm-app-sub001/internal/app/system/tenant"
)

// Handler owns the dashboard chart pipeline: it drives the renderers,
// owns the slot registry, and exposes the HTTP surface.
type Handler struct {
	Loader   *appstate.Loader // nil when the store is absent
	Tenant   *tenant.Selector
	Engine   charting.Engine // nil when the charting capability is absent
	Mounts   charting.MountSet
	Charts   *charting.Registry
	Reporter alerts.Reporter
	Notifier alerts.Notifier
	Log      *zap.Logger
}

// NewHandler creates the charts Handler. loader, engine, reporter, and
// notifier may be nil: the reporter and notifier are replaced by
// log-backed fallbacks, while a nil loader or engine is kept as-is and
// runtime-checked before use.
func NewHandler(loader *appstate.Loader, sel *tenant.Selector, engine charting.Engine, mounts charting.MountSet, reporter alerts.Reporter, notifier alerts.Notifier, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if notifier == nil {
		notifier = alerts.NewLogNotifier(logger)
	}
	if reporter == nil {
		reporter = alerts.NewLogReporter(logger, notifier)
	}
	if mounts == nil {
		mounts = charting.DefaultMounts(0, 0)
	}
	return &Handler{
		Loader:   loader,
		Tenant:   sel,
		Engine:   engine,
		Mounts:   mounts,
		Charts:   charting.NewRegistry(logger),
		Reporter: reporter,
		Notifier: notifier,
		Log:      logger,
	}
}

// DestroyAll releases every chart slot. Used on teardown.
func (h *Handler) DestroyAll() {
	h.Charts.DestroyAll()
}

// IsActive reports whether a slot currently holds a live chart.
func (h *Handler) IsActive(slot charting.Slot) bool {
	return h.Charts.IsActive(slot)
}

// ActiveSlots returns the slots holding live charts.
func (h *Handler) ActiveSlots() []charting.Slot {
	return h.Charts.ActiveSlots()
}

// snapshot materializes the application state for this request: the
// session's selected company plus the record collections. A nil loader
// yields a snapshot with empty collections.
func (h *Handler) snapshot(ctx context.Context, r *http.Request) *appstate.Snapshot {
	company := ""
	if h.Tenant != nil {
		company = h.Tenant.Selected(r)
	}
	if h.Loader == nil {
		return &appstate.Snapshot{SelectedCompanyID: company}
	}
	return h.Loader.Snapshot(ctx, company)
}
