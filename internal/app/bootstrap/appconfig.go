// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS,
// logging level, request limits); AppConfig is everything specific to
// this application. The struct is passed to most lifecycle hooks, so
// any configuration needed during startup, request handling, or
// shutdown lives here.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI      string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase string // Database name within MongoDB

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: crmapp-session)
	SessionDomain string // Cookie domain (blank means current host)

	// Tenant configuration
	DefaultCompany string // Company preselected for sessions with no choice yet (blank means none)

	// Chart rendering configuration
	ChartWidth  int    // Rendered chart width in pixels
	ChartHeight int    // Rendered chart height in pixels
	ChartFormat string // Image format: "svg" or "png"
}
