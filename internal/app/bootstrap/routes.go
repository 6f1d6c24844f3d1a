// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	chartsfeature "github.com/pathakkushagra03/crm-app-sub001/internal/app/features/charts"
	healthfeature "github.com/pathakkushagra03/crm-app-sub001/internal/app/features/health"
	homefeature "github.com/pathakkushagra03/crm-app-sub001/internal/app/features/home"
	"github.com/pathakkushagra03/crm-app-sub001/internal/app/store/appstate"
	"github.com/pathakkushagra03/crm-app-sub001/internal/app/system/charting"
	"github.com/pathakkushagra03/crm-app-sub001/internal/app/system/tenant"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE
// app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and any Startup hooks have completed. It boots the template engine,
// builds the tenant selector and charting engine from config, and mounts
// the feature routers: home, health, and the charts dashboard.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	selector := tenant.NewSelector(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, appCfg.DefaultCompany, logger)

	loader := appstate.NewLoader(deps.CRMMongoDatabase, logger)
	engine := charting.NewGoChartEngine(appCfg.ChartFormat)
	mounts := charting.DefaultMounts(appCfg.ChartWidth, appCfg.ChartHeight)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.CRMMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	homeHandler := homefeature.NewHandler(logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	chartsHandler := chartsfeature.NewHandler(loader, selector, engine, mounts, nil, nil, logger)
	r.Mount("/dashboard", chartsfeature.Routes(chartsHandler))

	return r, nil
}
