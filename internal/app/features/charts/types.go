// internal/app/features/charts/types.go
package charts

import (
	"html/template"

	"github.com/pathakkushagra03/crm-app-sub001/internal/app/system/charting"
	"github.com/pathakkushagra03/crm-app-sub001/internal/domain/models"
)

// Chart titles shown above each mount.
const (
	titleClients = "Clients by Status"
	titleLeads   = "Leads by Status"
	titleTasks   = "Tasks by Priority"
)

// RenderStatus classifies the outcome of one chart render.
type RenderStatus string

const (
	// RenderInstalled means a new handle was installed in the slot.
	RenderInstalled RenderStatus = "installed"
	// RenderSkipped means a precondition was missing (no mount, no
	// selection, no data); the slot was left untouched.
	RenderSkipped RenderStatus = "skipped"
	// RenderFailed means construction or installation failed; the
	// failure was reported and did not propagate.
	RenderFailed RenderStatus = "failed"
)

// RenderResult is the explicit outcome of a renderer. Callers branch on
// Status instead of catching anything.
type RenderResult struct {
	Slot   charting.Slot
	Status RenderStatus
	Reason string
	Err    error
}

// Installed reports whether the render produced a live chart.
func (r RenderResult) Installed() bool {
	return r.Status == RenderInstalled
}

// ValidationResult is the pre-flight check outcome for Initialize.
// Errors block the dashboard; warnings degrade single charts.
type ValidationResult struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

// ClientStats summarizes the client collection for the selected company.
type ClientStats struct {
	Total      int     `json:"total"`
	Active     int     `json:"active"`
	VIP        int     `json:"vip"`
	ActiveRate float64 `json:"activeRate"`
}

// LeadStats summarizes the lead pipeline.
type LeadStats struct {
	Total          int     `json:"total"`
	New            int     `json:"new"`
	Qualified      int     `json:"qualified"`
	Won            int     `json:"won"`
	ConversionRate float64 `json:"conversionRate"`
}

// TaskStats summarizes the task list.
type TaskStats struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	Pending        int     `json:"pending"`
	CompletionRate float64 `json:"completionRate"`
}

// Stats is the dashboard's summary snapshot. It is always fully
// populated: any failure produces zeroed fields, never holes.
type Stats struct {
	Clients ClientStats `json:"clients"`
	Leads   LeadStats   `json:"leads"`
	Tasks   TaskStats   `json:"tasks"`
}

// ExportArtifact is a downloadable chart image.
type ExportArtifact struct {
	Filename string
	MIME     string
	Data     []byte
}

// companyOption is a tenant entry for the picker dropdown.
type companyOption struct {
	ID       string
	Name     string
	Selected bool
}

// chartView is one rendered chart on the dashboard page.
type chartView struct {
	Slot     string
	Title    string
	ImageURI template.URL // base64 data URI; empty when the slot is inactive
	Status   string       // rendered, failed, or empty
	Reason   string
}

// dashboardData is the view model for the dashboard page.
type dashboardData struct {
	Title           string
	CurrentPath     string
	Companies       []companyOption
	SelectedCompany string
	HasSelection    bool
	Validation      ValidationResult
	Charts          []chartView
	StatsHTML       template.HTML // sanitized markup from RenderStatsSummary
}

// slotTitle maps a slot to its display title.
func slotTitle(slot charting.Slot) string {
	switch slot {
	case charting.SlotClients:
		return titleClients
	case charting.SlotLeads:
		return titleLeads
	case charting.SlotTasks:
		return titleTasks
	default:
		return string(slot)
	}
}

// priorityLabels are the fixed task-priority categories, in bar order.
var priorityLabels = []string{models.PriorityHigh, models.PriorityMedium, models.PriorityLow}
