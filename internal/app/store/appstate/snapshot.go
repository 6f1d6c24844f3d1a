// internal/app/store/appstate/snapshot.go
package appstate

import (
	"github.com/pathakkushagra03/crm-app-sub001/internal/domain/models"
)

// Collection names in the backing store. Tasks live in "generalTodos"
// because that is what the original front end called them; renaming the
// collection would orphan existing data.
const (
	CollectionClients   = "clients"
	CollectionLeads     = "leads"
	CollectionTasks     = "generalTodos"
	CollectionCompanies = "companies"
)

// Snapshot is a read-only, already-materialized view of the application
// state: the selected company plus the record collections the dashboard
// reads. It is built per request and never written back.
//
// Every accessor is nil-safe and degrades to an empty result. The store is
// an external dependency that may not be initialized yet, so downstream
// code only ever needs to ask "is this empty", never "is this valid".
type Snapshot struct {
	SelectedCompanyID string

	ClientRecords []models.Client
	LeadRecords   []models.Lead
	TaskRecords   []models.Task
}

// SelectedCompany returns the current tenant selection, or false when no
// company is selected (or the snapshot itself is absent). Without a
// selection no aggregation is performed and no charts are updated.
func (s *Snapshot) SelectedCompany() (string, bool) {
	if s == nil || s.SelectedCompanyID == "" {
		return "", false
	}
	return s.SelectedCompanyID, true
}

// Clients returns the client records for the selected company.
// Returns an empty slice when the snapshot is absent, the collection is
// missing, or no company is selected.
func (s *Snapshot) Clients() []models.Client {
	if s == nil {
		return nil
	}
	company, ok := s.SelectedCompany()
	if !ok {
		return nil
	}
	var out []models.Client
	for _, c := range s.ClientRecords {
		if c.CompanyID == company {
			out = append(out, c)
		}
	}
	return out
}

// Leads returns the lead records for the selected company.
func (s *Snapshot) Leads() []models.Lead {
	if s == nil {
		return nil
	}
	company, ok := s.SelectedCompany()
	if !ok {
		return nil
	}
	var out []models.Lead
	for _, l := range s.LeadRecords {
		if l.CompanyID == company {
			out = append(out, l)
		}
	}
	return out
}

// Tasks returns the task records for the selected company.
func (s *Snapshot) Tasks() []models.Task {
	if s == nil {
		return nil
	}
	company, ok := s.SelectedCompany()
	if !ok {
		return nil
	}
	var out []models.Task
	for _, t := range s.TaskRecords {
		if t.CompanyID == company {
			out = append(out, t)
		}
	}
	return out
}

// CollectionLen reports how many records a named collection holds, across
// all companies. Unknown collection names report zero.
func (s *Snapshot) CollectionLen(name string) int {
	if s == nil {
		return 0
	}
	switch name {
	case CollectionClients:
		return len(s.ClientRecords)
	case CollectionLeads:
		return len(s.LeadRecords)
	case CollectionTasks:
		return len(s.TaskRecords)
	default:
		return 0
	}
}
