package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/collabhub/partner-directory/internal/api/handler"
	"github.com/collabhub/partner-directory/internal/api/middleware"
	"github.com/collabhub/partner-directory/internal/core/ports"
)

// Deps carries everything the router wires into handlers. Mongo and Redis may
// be nil when the corresponding backends are not configured; the readiness
// probe skips them.
type Deps struct {
	Sessions  handler.SessionOps
	Catalog   ports.CatalogService
	Inquiries handler.InquiryDispatcher
	JWTSecret string
	Mongo     *mongo.Database
	Redis     *redis.Client
	Log       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("directory"))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(deps.Sessions)
	businessHandler := handler.NewBusinessHandler(deps.Catalog)
	inquiryHandler := handler.NewInquiryHandler(deps.Inquiries)
	authMiddleware := middleware.Auth(deps.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	session := e.Group("/auth", authMiddleware)
	session.GET("/session", authHandler.Session)
	session.POST("/logout", authHandler.Logout)
	session.PATCH("/profile", authHandler.UpdateProfile)

	// --- Directory routes ---
	v1 := e.Group("/v1")
	v1.GET("/businesses", businessHandler.List)
	v1.GET("/businesses/stats", businessHandler.Stats)
	v1.GET("/businesses/suggest", businessHandler.Suggest)
	v1.GET("/businesses/:id", businessHandler.Get)
	v1.GET("/businesses/:id/recommendations", businessHandler.Recommendations)
	v1.POST("/businesses/:id/inquiries", inquiryHandler.Submit)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e
}
