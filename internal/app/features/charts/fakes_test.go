package charts_test

import (
	"encoding/base64"
	"fmt"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/pathakkushagra03/crm-app-sub001/internal/app/features/charts"
	"github.com/pathakkushagra03/crm-app-sub001/internal/app/store/appstate"
	"github.com/pathakkushagra03/crm-app-sub001/internal/app/system/alerts"
	"github.com/pathakkushagra03/crm-app-sub001/internal/app/system/charting"
	"github.com/pathakkushagra03/crm-app-sub001/internal/domain/models"
)

// fakeEngine records every constructed config and hands out fakeHandles.
type fakeEngine struct {
	mu          sync.Mutex
	constructed []charting.Config
	failKinds   map[charting.Kind]bool
	panicKinds  map[charting.Kind]bool
}

func (e *fakeEngine) Construct(mount charting.Mount, cfg charting.Config) (charting.Handle, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.panicKinds[cfg.Kind] {
		panic("construct blew up")
	}
	if e.failKinds[cfg.Kind] {
		return nil, fmt.Errorf("construct %s failed", cfg.Kind)
	}
	e.constructed = append(e.constructed, cfg)
	return &fakeHandle{
		image: "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("img-"+cfg.Title)),
	}, nil
}

func (e *fakeEngine) configFor(kind charting.Kind) (charting.Config, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, c := range e.constructed {
		if c.Kind == kind {
			return c, true
		}
	}
	return charting.Config{}, false
}

type fakeHandle struct {
	mu        sync.Mutex
	image     string
	destroyed bool
	badImage  bool
}

func (h *fakeHandle) Destroy() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.destroyed = true
	return nil
}

func (h *fakeHandle) ToBase64Image() (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.destroyed {
		return "", fmt.Errorf("handle destroyed")
	}
	if h.badImage {
		return "not-a-data-uri", nil
	}
	return h.image, nil
}

// captureReporter remembers every reported error with its options.
type captureReporter struct {
	mu      sync.Mutex
	reports []alerts.Options
	errs    []error
}

func (r *captureReporter) Handle(err error, opts alerts.Options) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
	r.reports = append(r.reports, opts)
}

func (r *captureReporter) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reports)
}

// captureNotifier remembers every user-facing message.
type captureNotifier struct {
	mu       sync.Mutex
	messages []string
	levels   []string
}

func (n *captureNotifier) Show(message, level string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
	n.levels = append(n.levels, level)
}

// chiRouterFor mounts the feature routes the way bootstrap does.
func chiRouterFor(h *charts.Handler) chi.Router {
	r := chi.NewRouter()
	r.Mount("/dashboard", charts.Routes(h))
	return r
}

func newTestHandler(t *testing.T, engine charting.Engine) (*charts.Handler, *captureReporter, *captureNotifier) {
	t.Helper()
	reporter := &captureReporter{}
	notifier := &captureNotifier{}
	h := charts.NewHandler(nil, nil, engine, charting.DefaultMounts(400, 300), reporter, notifier, zap.NewNop())
	return h, reporter, notifier
}

// acmeSnapshot mirrors a small two-company data set: three acme clients
// (two active, one VIP), two acme leads, and acme tasks including one
// with an unrecognized priority.
func acmeSnapshot() *appstate.Snapshot {
	return &appstate.Snapshot{
		SelectedCompanyID: "acme",
		ClientRecords: []models.Client{
			{CompanyID: "acme", Name: "North Co", Status: models.ClientStatusActive},
			{CompanyID: "acme", Name: "South Co", Status: models.ClientStatusActive},
			{CompanyID: "acme", Name: "East Co", Status: models.ClientStatusVIP},
			{CompanyID: "globex", Name: "Other Co", Status: models.ClientStatusActive},
		},
		LeadRecords: []models.Lead{
			{CompanyID: "acme", Name: "Lead One", Status: models.LeadStatusNew},
			{CompanyID: "acme", Name: "Lead Two", Status: models.LeadStatusWon},
		},
		TaskRecords: []models.Task{
			{CompanyID: "acme", Title: "Call back", Priority: models.PriorityHigh, Status: models.TaskStatusPending},
			{CompanyID: "acme", Title: "Send quote", Priority: models.PriorityLow, Status: models.TaskStatusCompleted},
			{CompanyID: "acme", Title: "Mystery", Priority: "Bogus", Status: models.TaskStatusPending},
		},
	}
}
