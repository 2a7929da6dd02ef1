package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/careerdesk/job-portal/internal/config"
	"github.com/careerdesk/job-portal/internal/handler"
	"github.com/careerdesk/job-portal/internal/middleware"
)

// RegisterRoutes registers routes that carry no application dependencies.
// Currently it exposes only a health check, which load balancers and
// monitoring systems use to verify that the service is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAPI wires the job-portal endpoints.  Public routes (the feed,
// single-listing lookup and login) take no middleware beyond the optional
// response cache; write routes are guarded by the JWT middleware so a
// missing or invalid bearer token is rejected with 401 before the handler
// runs.  Route paths mirror the original API surface, including the
// POST-served feed at "/".
func RegisterAPI(e *echo.Echo, a *handler.AuthHandler, l *handler.ListingHandler, cfg config.Config, cache echo.MiddlewareFunc) {
	guard := middleware.JWTAuth(cfg.JWTSecret, cfg.JWTAlg)

	// Public surface.
	e.POST("/", l.Home, cache)
	e.POST("/auth", a.Login)
	e.GET("/:company_id", l.GetByID, cache)

	// Token-guarded surface.
	e.POST("/add_admin", a.AddAdmin, guard)
	e.POST("/details", l.Create, guard)
	e.PUT("/update/:company_id", l.Update, guard)
}
