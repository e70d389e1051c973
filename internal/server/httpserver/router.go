package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/yndnr/mergington-go/internal/core/service"
	"github.com/yndnr/mergington-go/internal/server/httpserver/handler"
	"github.com/yndnr/mergington-go/internal/telemetry/metric"
)

// RouterConfig holds configuration for the HTTP router.
type RouterConfig struct {
	// AuthService handles login, logout and identity resolution.
	AuthService *service.AuthService

	// EnrollmentService handles activity listing and enrollment.
	EnrollmentService *service.EnrollmentService

	// Metrics, when set, records per-route metrics and serves GET /metrics.
	Metrics *metric.Registry

	// Logger for request logging.
	Logger *slog.Logger

	// CORSAllowedOrigins is the list of allowed CORS origins (empty = no CORS headers).
	CORSAllowedOrigins []string

	// EnableAudit enables audit logging for all requests.
	EnableAudit bool
}

// NewRouter creates and configures the HTTP router with all routes and middleware.
//
// Order: RequestID -> Recover -> CORS -> Audit -> mux -> Metrics -> Identity -> Handler
func NewRouter(cfg *RouterConfig) http.Handler {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	h := handler.New(cfg.AuthService, cfg.EnrollmentService, log)

	mux := http.NewServeMux()
	for _, pattern := range handler.Routes() {
		var perRoute []Middleware
		if cfg.Metrics != nil {
			perRoute = append(perRoute, Metrics(cfg.Metrics, pattern))
		}
		perRoute = append(perRoute, Identity(cfg.AuthService))
		mux.Handle(pattern, Chain(h, perRoute...))
	}

	if cfg.Metrics != nil {
		mux.Handle("GET /metrics", cfg.Metrics.Handler())
	}

	outer := []Middleware{
		RequestID(),
		Recover(log),
	}
	if len(cfg.CORSAllowedOrigins) > 0 {
		outer = append(outer, CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.EnableAudit {
		outer = append(outer, Audit(log))
	}

	return Chain(mux, outer...)
}
