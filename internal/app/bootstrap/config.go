// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the CRM dashboard.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, session_name, etc.
//   - Environment variables: CRMAPP_MONGO_URI, CRMAPP_SESSION_NAME, etc.
//   - Command-line flags: --mongo_uri, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "crm_app", Desc: "MongoDB database name"},
	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "crmapp-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},

	// Tenant selection
	{Name: "default_company", Default: "", Desc: "Company preselected when the session has no choice yet"},

	// Chart rendering
	{Name: "chart_width", Default: 640, Desc: "Rendered chart width in pixels"},
	{Name: "chart_height", Default: 400, Desc: "Rendered chart height in pixels"},
	{Name: "chart_format", Default: "svg", Desc: "Chart image format: 'svg' or 'png'"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "CRMAPP", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:      appValues.String("mongo_uri"),
		MongoDatabase: appValues.String("mongo_database"),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),

		DefaultCompany: appValues.String("default_company"),

		ChartWidth:  appValues.Int("chart_width"),
		ChartHeight: appValues.Int("chart_height"),
		ChartFormat: appValues.String("chart_format"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// The MongoDB URI format is checked here to catch configuration errors
// before attempting to connect.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.ChartFormat != "svg" && appCfg.ChartFormat != "png" {
		return fmt.Errorf("chart_format must be 'svg' or 'png', got %q", appCfg.ChartFormat)
	}
	if appCfg.ChartWidth <= 0 || appCfg.ChartHeight <= 0 {
		return fmt.Errorf("chart dimensions must be positive, got %dx%d", appCfg.ChartWidth, appCfg.ChartHeight)
	}

	return nil
}
