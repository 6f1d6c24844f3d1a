package appstate_test

import (
	"testing"

	"github.com/pathakkushagra03/crm-app-sub001/internal/app/store/appstate"
	"github.com/pathakkushagra03/crm-app-sub001/internal/domain/models"
	"github.com/pathakkushagra03/crm-app-sub001/internal/testutil"
)

func TestSnapshot_NilIsSafe(t *testing.T) {
	var snap *appstate.Snapshot

	if _, ok := snap.SelectedCompany(); ok {
		t.Error("nil snapshot should report no selection")
	}
	if got := snap.Clients(); len(got) != 0 {
		t.Errorf("nil snapshot Clients() = %d records, want 0", len(got))
	}
	if got := snap.Leads(); len(got) != 0 {
		t.Errorf("nil snapshot Leads() = %d records, want 0", len(got))
	}
	if got := snap.Tasks(); len(got) != 0 {
		t.Errorf("nil snapshot Tasks() = %d records, want 0", len(got))
	}
	if got := snap.CollectionLen(appstate.CollectionClients); got != 0 {
		t.Errorf("nil snapshot CollectionLen = %d, want 0", got)
	}
}

func TestSnapshot_NoSelectionReturnsNothing(t *testing.T) {
	snap := &appstate.Snapshot{
		ClientRecords: []models.Client{
			{CompanyID: "acme", Status: models.ClientStatusActive},
		},
	}

	if _, ok := snap.SelectedCompany(); ok {
		t.Error("empty SelectedCompanyID should report no selection")
	}
	if got := snap.Clients(); len(got) != 0 {
		t.Errorf("Clients() without selection = %d records, want 0", len(got))
	}
	// The raw collection is still visible for introspection.
	if got := snap.CollectionLen(appstate.CollectionClients); got != 1 {
		t.Errorf("CollectionLen = %d, want 1", got)
	}
}

func TestSnapshot_FiltersByExactCompanyMatch(t *testing.T) {
	snap := &appstate.Snapshot{
		SelectedCompanyID: "acme",
		ClientRecords: []models.Client{
			{CompanyID: "acme", Name: "A", Status: models.ClientStatusActive},
			{CompanyID: "acme", Name: "B", Status: models.ClientStatusVIP},
			{CompanyID: "globex", Name: "C", Status: models.ClientStatusActive},
			{CompanyID: "ACME", Name: "D", Status: models.ClientStatusActive}, // case differs, no match
		},
		LeadRecords: []models.Lead{
			{CompanyID: "globex", Status: models.LeadStatusNew},
		},
		TaskRecords: []models.Task{
			{CompanyID: "acme", Priority: models.PriorityHigh},
		},
	}

	if got := len(snap.Clients()); got != 2 {
		t.Errorf("Clients() = %d records, want 2", got)
	}
	if got := len(snap.Leads()); got != 0 {
		t.Errorf("Leads() = %d records, want 0", got)
	}
	if got := len(snap.Tasks()); got != 1 {
		t.Errorf("Tasks() = %d records, want 1", got)
	}
}

func TestSnapshot_UnknownCollectionLenIsZero(t *testing.T) {
	snap := &appstate.Snapshot{SelectedCompanyID: "acme"}
	if got := snap.CollectionLen("invoices"); got != 0 {
		t.Errorf("CollectionLen(invoices) = %d, want 0", got)
	}
}

func TestSnapshot_FixtureBuilders(t *testing.T) {
	snap := testutil.Snapshot("acme",
		[]models.Client{
			testutil.Client("acme", "North Co", models.ClientStatusActive),
			testutil.Client("globex", "Other Co", models.ClientStatusActive),
		},
		[]models.Lead{
			testutil.Lead("acme", "Lead One", models.LeadStatusQualified),
		},
		[]models.Task{
			testutil.Task("acme", "Call back", models.PriorityHigh, models.TaskStatusPending),
		},
	)

	if got := len(snap.Clients()); got != 1 {
		t.Errorf("Clients() = %d records, want 1", got)
	}
	if got := len(snap.Leads()); got != 1 {
		t.Errorf("Leads() = %d records, want 1", got)
	}
	if snap.Tasks()[0].Priority != models.PriorityHigh {
		t.Errorf("task priority = %q, want %q", snap.Tasks()[0].Priority, models.PriorityHigh)
	}
}
