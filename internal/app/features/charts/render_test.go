package charts_test

import (
	"reflect"
	"testing"

	"github.com/pathakkushagra03/crm-app-sub001/internal/app/features/charts"
	"github.com/pathakkushagra03/crm-app-sub001/internal/app/store/appstate"
	"github.com/pathakkushagra03/crm-app-sub001/internal/app/system/charting"
	"github.com/pathakkushagra03/crm-app-sub001/internal/domain/models"
)

func TestRenderClientsChart_UnknownBucket(t *testing.T) {
	engine := &fakeEngine{}
	h, _, _ := newTestHandler(t, engine)

	snap := &appstate.Snapshot{
		SelectedCompanyID: "acme",
		ClientRecords: []models.Client{
			{CompanyID: "acme", Name: "A", Status: models.ClientStatusActive},
			{CompanyID: "acme", Name: "B"}, // no status
			{CompanyID: "acme", Name: "C", Status: models.ClientStatusActive},
		},
	}

	res := h.RenderClientsChart(snap)
	if !res.Installed() {
		t.Fatalf("render failed: %+v", res)
	}

	cfg, _ := engine.configFor(charting.KindDonut)
	wantLabels := []string{"Active", "Unknown"}
	wantValues := []int{2, 1}
	if !reflect.DeepEqual(cfg.Labels, wantLabels) || !reflect.DeepEqual(cfg.Values, wantValues) {
		t.Errorf("got %v/%v, want %v/%v", cfg.Labels, cfg.Values, wantLabels, wantValues)
	}
}

func TestRenderLeadsChart_InsertionOrder(t *testing.T) {
	engine := &fakeEngine{}
	h, _, _ := newTestHandler(t, engine)

	snap := &appstate.Snapshot{
		SelectedCompanyID: "acme",
		LeadRecords: []models.Lead{
			{CompanyID: "acme", Status: models.LeadStatusWon},
			{CompanyID: "acme", Status: models.LeadStatusNew},
			{CompanyID: "acme", Status: models.LeadStatusWon},
		},
	}

	res := h.RenderLeadsChart(snap)
	if !res.Installed() {
		t.Fatalf("render failed: %+v", res)
	}

	cfg, _ := engine.configFor(charting.KindPie)
	// First-seen order, not pipeline order.
	wantLabels := []string{"Won", "New"}
	wantValues := []int{2, 1}
	if !reflect.DeepEqual(cfg.Labels, wantLabels) || !reflect.DeepEqual(cfg.Values, wantValues) {
		t.Errorf("got %v/%v, want %v/%v", cfg.Labels, cfg.Values, wantLabels, wantValues)
	}
}

func TestRenderTasksChart_MissingPriorityDefaultsMedium(t *testing.T) {
	engine := &fakeEngine{}
	h, _, _ := newTestHandler(t, engine)

	snap := &appstate.Snapshot{
		SelectedCompanyID: "acme",
		TaskRecords: []models.Task{
			{CompanyID: "acme", Title: "A", Priority: models.PriorityHigh},
			{CompanyID: "acme", Title: "B"}, // no priority
		},
	}

	res := h.RenderTasksChart(snap)
	if !res.Installed() {
		t.Fatalf("render failed: %+v", res)
	}

	cfg, _ := engine.configFor(charting.KindBar)
	wantValues := []int{1, 1, 0}
	if !reflect.DeepEqual(cfg.Values, wantValues) {
		t.Errorf("values: got %v, want %v", cfg.Values, wantValues)
	}
}

func TestRender_NoSelectionSkips(t *testing.T) {
	engine := &fakeEngine{}
	h, reporter, _ := newTestHandler(t, engine)

	res := h.RenderClientsChart(&appstate.Snapshot{})
	if res.Status != charts.RenderSkipped {
		t.Errorf("status: got %s, want %s", res.Status, charts.RenderSkipped)
	}
	if len(engine.constructed) != 0 {
		t.Error("no chart should be constructed without a selection")
	}
	if reporter.count() != 0 {
		t.Errorf("skips are not reported, got %d", reporter.count())
	}
}

func TestRender_FailureLeavesSlotEmpty(t *testing.T) {
	engine := &fakeEngine{failKinds: map[charting.Kind]bool{charting.KindDonut: true}}
	h, reporter, _ := newTestHandler(t, engine)

	res := h.RenderClientsChart(acmeSnapshot())
	if res.Status != charts.RenderFailed {
		t.Fatalf("status: got %s, want %s", res.Status, charts.RenderFailed)
	}
	if res.Err == nil {
		t.Error("failed result should carry the error")
	}
	if h.IsActive(charting.SlotClients) {
		t.Error("slot should stay empty after a failure")
	}
	if reporter.count() != 1 {
		t.Errorf("expected 1 report, got %d", reporter.count())
	}
	md := reporter.reports[0].Metadata
	if md["slot"] != "clients" || md["engineAvailable"] != true || md["mountFound"] != true {
		t.Errorf("unexpected metadata %v", md)
	}
}
