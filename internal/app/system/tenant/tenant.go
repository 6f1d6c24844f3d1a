// internal/app/system/tenant/tenant.go

// Package tenant persists the dashboard's selected company across requests
// using a signed cookie session. Selection is the multi-tenancy partition
// key: without one, no aggregation runs and no charts are updated.
package tenant

import (
	"fmt"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const selectedCompanyKey = "selected_company"

// Selector reads and writes the selected company for a request.
type Selector struct {
	store          *sessions.CookieStore
	cookieName     string
	defaultCompany string
	log            *zap.Logger
}

// NewSelector builds a cookie-backed Selector. An empty sessionKey gets a
// random key, which is fine for dev but resets selections on restart, so
// it is logged loudly. defaultCompany, when non-empty, is the selection
// used by requests that have not picked a company yet (single-tenant
// deployments set this so the dashboard renders without any picker).
func NewSelector(sessionKey, cookieName, domain string, secure bool, defaultCompany string, logger *zap.Logger) *Selector {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cookieName == "" {
		cookieName = "crmapp-session"
	}

	key := []byte(sessionKey)
	if len(key) == 0 {
		key = securecookie.GenerateRandomKey(32)
		logger.Warn("no session key configured; using a random key, selections reset on restart")
	} else if len(key) < 32 {
		logger.Warn("session key is short; 32+ chars recommended", zap.Int("length", len(key)))
	}

	store := sessions.NewCookieStore(key)
	opts := &sessions.Options{
		Domain:   domain,
		Path:     "/",
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if secure {
		opts.SameSite = http.SameSiteNoneMode
	}
	store.Options = opts

	return &Selector{
		store:          store,
		cookieName:     cookieName,
		defaultCompany: defaultCompany,
		log:            logger,
	}
}

// Selected returns the company chosen by this request's session, falling
// back to the configured default. Empty string means no selection. Session
// decode failures degrade to the default rather than erroring: a stale or
// tampered cookie must never break the dashboard.
func (s *Selector) Selected(r *http.Request) string {
	if s == nil {
		return ""
	}
	sess, err := s.store.Get(r, s.cookieName)
	if err != nil {
		s.log.Debug("session decode failed, using default selection", zap.Error(err))
		return s.defaultCompany
	}
	if v, ok := sess.Values[selectedCompanyKey].(string); ok && v != "" {
		return v
	}
	return s.defaultCompany
}

// Select stores companyID as this session's selection. An empty companyID
// clears the selection.
func (s *Selector) Select(w http.ResponseWriter, r *http.Request, companyID string) error {
	if s == nil {
		return fmt.Errorf("tenant selector not configured")
	}
	sess, _ := s.store.Get(r, s.cookieName)
	if companyID == "" {
		delete(sess.Values, selectedCompanyKey)
	} else {
		sess.Values[selectedCompanyKey] = companyID
	}
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("save selection: %w", err)
	}
	return nil
}
