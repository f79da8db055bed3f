// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	coursesfeature "github.com/atoengine/portal/internal/app/features/courses"
	delegatesfeature "github.com/atoengine/portal/internal/app/features/delegates"
	healthfeature "github.com/atoengine/portal/internal/app/features/health"
	instancesfeature "github.com/atoengine/portal/internal/app/features/instances"
	loginfeature "github.com/atoengine/portal/internal/app/features/login"
	logoutfeature "github.com/atoengine/portal/internal/app/features/logout"
	organisationsfeature "github.com/atoengine/portal/internal/app/features/organisations"
	quotesfeature "github.com/atoengine/portal/internal/app/features/quotes"
	settingsfeature "github.com/atoengine/portal/internal/app/features/settings"
	trainersfeature "github.com/atoengine/portal/internal/app/features/trainers"

	"github.com/atoengine/portal/internal/app/engine/autoquote"
	"github.com/atoengine/portal/internal/app/engine/travel"
	coursestore "github.com/atoengine/portal/internal/app/store/courses"
	delegatestore "github.com/atoengine/portal/internal/app/store/delegates"
	instancestore "github.com/atoengine/portal/internal/app/store/instances"
	organisationstore "github.com/atoengine/portal/internal/app/store/organisations"
	quotestore "github.com/atoengine/portal/internal/app/store/quotes"
	settingsstore "github.com/atoengine/portal/internal/app/store/settings"
	trainerstore "github.com/atoengine/portal/internal/app/store/trainers"
	userstore "github.com/atoengine/portal/internal/app/store/users"
	"github.com/atoengine/portal/internal/app/system/auth"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. Everything except /health and /login
// requires a signed-in session; quote deletion and settings writes
// additionally require the admin role.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	db := deps.MongoDatabase

	organisations := organisationstore.New(db)
	delegates := delegatestore.New(db)
	courses := coursestore.New(db)
	trainers := trainerstore.New(db)
	instances := instancestore.New(db)
	quotes := quotestore.New(db)
	settings := settingsstore.New(db)
	users := userstore.New(db)

	generator := autoquote.New(instances, delegates, courses, quotes, logger)
	travelResolver := travel.NewResolver(
		travel.NewPostcodesClient(appCfg.PostcodesBaseURL),
		travel.NewOSRMClient(appCfg.OSRMBaseURL),
	)

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Authentication
	loginHandler := loginfeature.NewHandler(users, sessionMgr, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler))

	// Everything below requires a signed-in operator or admin.
	r.Group(func(api chi.Router) {
		api.Use(sessionMgr.RequireSignedIn)

		orgHandler := organisationsfeature.NewHandler(organisations, logger)
		api.Mount("/organisations", organisationsfeature.Routes(orgHandler))

		delegateHandler := delegatesfeature.NewHandler(delegates, logger)
		api.Mount("/delegates", delegatesfeature.Routes(delegateHandler))

		courseHandler := coursesfeature.NewHandler(courses, logger)
		api.Mount("/courses", coursesfeature.Routes(courseHandler))

		trainerHandler := trainersfeature.NewHandler(trainers, logger)
		api.Mount("/trainers", trainersfeature.Routes(trainerHandler))

		instanceHandler := instancesfeature.NewHandler(instances, courses, generator, logger)
		api.Mount("/instances", instancesfeature.Routes(instanceHandler))

		quoteHandler := quotesfeature.NewHandler(quotes, organisations, instances, settings, travelResolver, logger)
		api.Mount("/quotes", quotesfeature.Routes(quoteHandler, sessionMgr))

		settingsHandler := settingsfeature.NewHandler(settings, logger)
		api.Mount("/settings", settingsfeature.Routes(settingsHandler, sessionMgr))
	})

	return r, nil
}
