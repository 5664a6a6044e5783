// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	consultationsfeature "github.com/dalemusser/consulthub/internal/app/features/consultations"
	dashboardfeature "github.com/dalemusser/consulthub/internal/app/features/dashboard"
	errorsfeature "github.com/dalemusser/consulthub/internal/app/features/errors"
	feedbackfeature "github.com/dalemusser/consulthub/internal/app/features/feedback"
	groupsfeature "github.com/dalemusser/consulthub/internal/app/features/groups"
	healthfeature "github.com/dalemusser/consulthub/internal/app/features/health"
	startfeature "github.com/dalemusser/consulthub/internal/app/features/startconsultation"
	"github.com/dalemusser/consulthub/internal/app/system/metrics"
	"github.com/dalemusser/consulthub/internal/app/system/navigation"
	"github.com/dalemusser/consulthub/internal/app/system/notify"
	"github.com/dalemusser/consulthub/internal/app/system/ratelimit"
	"github.com/dalemusser/consulthub/internal/app/system/viewdata"
	"github.com/dalemusser/consulthub/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. It boots the template engine once and
// then builds the router.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Secure cookies are enabled in production mode.
	return Router(appCfg, deps, coreCfg.Env == "prod", logger)
}

// Router mounts every feature over deps.Catalog. It needs no template
// engine, so the CLI audit can build it to inspect the route surface.
func Router(appCfg AppConfig, deps DBDeps, secure bool, logger *zap.Logger) (chi.Router, error) {
	store, err := notify.NewCookieStore(appCfg.SessionKey, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session store init failed", zap.Error(err))
		return nil, err
	}
	queue := notify.NewQueue(store, appCfg.SessionName, logger)

	site := models.DefaultSiteSettings()
	if appCfg.SiteName != "" {
		site.SiteName = appCfg.SiteName
	}
	viewdata.Init(site, queue)

	m := metrics.New()
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// gorilla/csrf treats every request as TLS unless told otherwise.
	if !secure {
		r.Use(plaintextHTTP)
	}
	r.Use(csrf.Protect([]byte(appCfg.CSRFKey),
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.CookieName(appCfg.SessionName+"-csrf"),
	))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.Catalog, deps.Backend, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Prometheus exposition
	r.Handle("/metrics", m.Handler())

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// The five named views
	dashboardHandler := dashboardfeature.NewHandler(deps.Catalog, appCfg.EndingSoonDays, errLog, logger)
	r.Get(navigation.PathDashboard, dashboardHandler.ServeDashboard)

	startHandler := startfeature.NewHandler(deps.Catalog, queue, m, appCfg.UploadMaxBytes(), errLog, logger)
	startHandler.Limiter = ratelimit.New(appCfg.SubmitPerMinute, time.Minute)
	r.Mount(navigation.PathStartConsultation, startfeature.Routes(startHandler))

	consultationsHandler := consultationsfeature.NewHandler(deps.Catalog, m, errLog, logger)
	r.Mount(navigation.PathConsultations, consultationsfeature.Routes(consultationsHandler))

	groupsHandler := groupsfeature.NewHandler(deps.Catalog, m, errLog, logger)
	r.Mount(navigation.PathGroups, groupsfeature.Routes(groupsHandler))

	feedbackHandler := feedbackfeature.NewHandler(deps.Catalog, m, errLog, logger)
	r.Mount(navigation.PathFeedback, feedbackfeature.Routes(feedbackHandler))

	// Unknown paths
	errorsHandler := errorsfeature.NewHandler()
	r.NotFound(errorsHandler.NotFound)

	return r, nil
}

// plaintextHTTP marks requests as plain http so gorilla/csrf skips its
// TLS-only Referer checks in development.
func plaintextHTTP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
	})
}
