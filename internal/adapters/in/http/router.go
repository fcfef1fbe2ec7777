package http

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// RouterConfig carries what NewRouter needs besides the server.
type RouterConfig struct {
	Logger   zerolog.Logger
	Tokens   SessionTokens
	Actors   GetActorUseCase
	Database Pinger
	// Registerer and Gatherer default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds the echo instance with every route registered.
func NewRouter(server *Server, cfg RouterConfig) *echo.Echo {
	if cfg.Registerer == nil {
		cfg.Registerer = prometheus.DefaultRegisterer
	}
	if cfg.Gatherer == nil {
		cfg.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(cfg.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "fieldops",
		Registerer: cfg.Registerer,
	}))

	// --- Probes and metrics (no auth required) ---
	health := NewHealthHandler(cfg.Database)
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: cfg.Gatherer}))

	// --- API ---
	api := e.Group("/api", Session(cfg.Tokens, cfg.Actors))
	api.GET("/me", server.Me)

	api.GET("/orders", server.ListOrders)
	api.POST("/orders", server.CreateOrder)
	api.GET("/orders/:id", server.GetOrder)
	api.POST("/orders/:id/assign", server.AssignOrder)
	api.POST("/orders/:id/status", server.SetOrderStatus)
	api.GET("/orders/:id/updates", server.ListJobUpdates)
	api.POST("/orders/:id/updates", server.AppendJobUpdate)

	api.GET("/teams", server.ListTeams)
	api.POST("/teams", server.CreateTeam)
	api.POST("/users", server.CreateInstaller)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
