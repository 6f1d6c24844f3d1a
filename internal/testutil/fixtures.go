package testutil

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pathakkushagra03/crm-app-sub001/internal/app/store/appstate"
	"github.com/pathakkushagra03/crm-app-sub001/internal/domain/models"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// TestContext returns a context with a generous timeout for test
// operations.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}

// Client builds a client record for the given company and status.
func Client(companyID, name, status string) models.Client {
	now := time.Now().UTC()
	return models.Client{
		CompanyID: companyID,
		Name:      name,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Lead builds a lead record for the given company and pipeline status.
func Lead(companyID, name, status string) models.Lead {
	now := time.Now().UTC()
	return models.Lead{
		CompanyID: companyID,
		Name:      name,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Task builds a task record for the given company, priority, and status.
func Task(companyID, title, priority, status string) models.Task {
	now := time.Now().UTC()
	return models.Task{
		CompanyID: companyID,
		Title:     title,
		Priority:  priority,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Snapshot builds an in-memory application-state snapshot with the
// given selected company and records. It never touches a database.
func Snapshot(companyID string, clients []models.Client, leads []models.Lead, tasks []models.Task) *appstate.Snapshot {
	return &appstate.Snapshot{
		SelectedCompanyID: companyID,
		ClientRecords:     clients,
		LeadRecords:       leads,
		TaskRecords:       tasks,
	}
}
