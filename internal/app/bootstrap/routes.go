// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	adminfeature "github.com/dalemusser/ukrconnect/internal/app/features/admin"
	communityfeature "github.com/dalemusser/ukrconnect/internal/app/features/community"
	errorsfeature "github.com/dalemusser/ukrconnect/internal/app/features/errors"
	eventsfeature "github.com/dalemusser/ukrconnect/internal/app/features/events"
	healthfeature "github.com/dalemusser/ukrconnect/internal/app/features/health"
	heritagefeature "github.com/dalemusser/ukrconnect/internal/app/features/heritage"
	homefeature "github.com/dalemusser/ukrconnect/internal/app/features/home"
	lessonsfeature "github.com/dalemusser/ukrconnect/internal/app/features/lessons"
	resourcesfeature "github.com/dalemusser/ukrconnect/internal/app/features/resources"
	searchfeature "github.com/dalemusser/ukrconnect/internal/app/features/search"
	translatorfeature "github.com/dalemusser/ukrconnect/internal/app/features/translator"
	"github.com/dalemusser/ukrconnect/internal/app/store/queries/sitesearch"
	"github.com/dalemusser/ukrconnect/internal/app/system/auth"
	"github.com/dalemusser/ukrconnect/internal/app/system/ratelimit"
	"github.com/dalemusser/ukrconnect/internal/app/system/requestid"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed.
//
// The template engine is booted here, session middleware is applied
// globally so the admin flag is known on every page, and every feature
// router is mounted. Only the admin area carries CSRF protection since it
// is the only place with state-changing forms.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, appCfg.SessionMaxAge, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}
	if appCfg.AdminPasswordHash != "" {
		if err := sessionMgr.RequireAdminPassword(appCfg.AdminPasswordHash); err != nil {
			return nil, err
		}
	} else {
		logger.Warn("admin_password_hash not set; /admin is open to every visitor")
	}

	proxies, err := ratelimit.ParseTrustedProxies(appCfg.TrustedProxies)
	if err != nil {
		return nil, err
	}

	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	return newRouter(appCfg, deps, sessionMgr, proxies, secure, logger), nil
}

// newRouter mounts every feature. Split from BuildHandler so the route
// table can be exercised without booting templates.
func newRouter(appCfg AppConfig, deps DBDeps, sessionMgr *auth.SessionManager, proxies ratelimit.TrustedProxies, secure bool, logger *zap.Logger) chi.Router {
	db := deps.MongoDatabase
	errLog := errorsfeature.NewErrorLogger(logger)
	errorsHandler := errorsfeature.NewHandler()

	r := chi.NewRouter()
	r.Use(proxies.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(sessionMgr.LoadAdmin)

	r.NotFound(errorsHandler.NotFound)
	r.MethodNotAllowed(errorsHandler.MethodNotAllowed)

	// Health check endpoint for load balancers and orchestrators
	r.Mount("/health", healthfeature.Routes(healthfeature.NewHandler(deps.MongoClient, logger)))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Public pages
	r.Mount("/", homefeature.Routes(homefeature.NewHandler(db, errLog, logger)))

	translatorHandler := translatorfeature.NewHandler(db, errLog, logger)
	r.Mount("/translator", translatorfeature.Routes(translatorHandler))
	r.Mount("/api/translations", translatorfeature.APIRoutes(translatorHandler))

	r.Mount("/lessons", lessonsfeature.Routes(lessonsfeature.NewHandler(db, errLog, logger)))
	r.Mount("/community", communityfeature.Routes(communityfeature.NewHandler(db, errLog, logger)))
	r.Mount("/heritage", heritagefeature.Routes(heritagefeature.NewHandler(db, errLog, logger)))
	r.Mount("/resources", resourcesfeature.Routes(resourcesfeature.NewHandler(db, errLog, logger)))
	r.Mount("/events", eventsfeature.Routes(eventsfeature.NewHandler(db, appCfg.PastEventsLimit, errLog, logger)))

	searchSvc := sitesearch.New(db, appCfg.SearchPerTypeLimit)
	r.Mount("/search", searchfeature.Routes(searchfeature.NewHandler(searchSvc, errLog, logger)))

	// Admin area
	adminHandler := adminfeature.NewHandler(db, sessionMgr, errLog, logger)
	r.Route("/admin", func(ar chi.Router) {
		ar.Use(auth.CSRF(appCfg.SessionKey, secure))
		ar.Mount("/", adminfeature.Routes(adminHandler, sessionMgr))
	})

	return r
}
