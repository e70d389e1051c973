package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/yndnr/mergington-go/internal/core/domain"
	"github.com/yndnr/mergington-go/internal/core/service"
	"github.com/yndnr/mergington-go/internal/telemetry/logger"
)

// Handler is the main HTTP handler that routes requests to appropriate handlers.
type Handler struct {
	auth       *service.AuthService
	enrollment *service.EnrollmentService
	logger     *slog.Logger
	mux        *http.ServeMux
}

// New creates a new Handler with the given services.
func New(auth *service.AuthService, enrollment *service.EnrollmentService, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	h := &Handler{
		auth:       auth,
		enrollment: enrollment,
		logger:     log,
		mux:        http.NewServeMux(),
	}

	h.registerRoutes()
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// Routes lists the method-qualified patterns served by the handler.
func Routes() []string {
	return []string{
		"GET /health",
		"GET /ready",
		"POST /auth/login",
		"POST /auth/logout",
		"GET /auth/me",
		"GET /activities",
		"GET /activities/{name}",
		"POST /activities/{name}/signup",
		"DELETE /activities/{name}/unregister",
	}
}

func (h *Handler) registerRoutes() {
	h.mux.HandleFunc("GET /health", h.handleHealth)
	h.mux.HandleFunc("GET /ready", h.handleReady)

	h.mux.HandleFunc("POST /auth/login", h.handleLogin)
	h.mux.HandleFunc("POST /auth/logout", h.handleLogout)
	h.mux.HandleFunc("GET /auth/me", h.handleMe)

	h.mux.HandleFunc("GET /activities", h.handleListActivities)
	h.mux.HandleFunc("GET /activities/{name}", h.handleGetActivity)
	h.mux.HandleFunc("POST /activities/{name}/signup", h.handleSignup)
	h.mux.HandleFunc("DELETE /activities/{name}/unregister", h.handleUnregister)
}

// log returns the injected logger tagged with the request ID, if any.
func (h *Handler) log(r *http.Request) *slog.Logger {
	if id := logger.RequestIDFromContext(r.Context()); id != "" {
		return h.logger.With("request_id", id)
	}
	return h.logger
}

// writeJSON writes data as a JSON response.
func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	if id := logger.RequestIDFromContext(r.Context()); id != "" {
		w.Header().Set("X-Request-ID", id)
	}
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

// writeError writes an error response.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, code, detail string) {
	requestID := logger.RequestIDFromContext(r.Context())

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Error-Code", code)
	if requestID != "" {
		w.Header().Set("X-Request-ID", requestID)
	}
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(&ErrorResponse{
		Code:      code,
		Detail:    detail,
		RequestID: requestID,
	}); err != nil {
		h.logger.Error("failed to encode error response", "error", err)
	}
}

// handleServiceError converts service errors to HTTP responses.
func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	code := domain.GetErrorCode(err)
	status := errorCodeToHTTPStatus(code)

	if code == "" || status >= http.StatusInternalServerError {
		h.log(r).Error("internal error",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		h.writeError(w, r, http.StatusInternalServerError, domain.ErrInternalServer.Code, domain.ErrInternalServer.Message)
		return
	}

	h.writeError(w, r, status, code, domain.GetErrorMessage(err))
}

// errorCodeToHTTPStatus maps error codes to HTTP status codes.
func errorCodeToHTTPStatus(code string) int {
	switch {
	case strings.HasSuffix(code, "-4040"):
		return http.StatusNotFound
	case strings.HasSuffix(code, "-4010"), strings.HasSuffix(code, "-4011"), strings.HasSuffix(code, "-4012"):
		return http.StatusUnauthorized
	case strings.HasSuffix(code, "-4000"), strings.HasSuffix(code, "-4001"),
		strings.HasSuffix(code, "-4002"), strings.HasSuffix(code, "-4003"):
		return http.StatusBadRequest
	case strings.HasPrefix(code, "MH-ARG-"):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// requireParam returns the named query or form value, or a missing
// argument error naming it.
func requireParam(r *http.Request, name string) (string, error) {
	v := r.FormValue(name)
	if strings.TrimSpace(v) == "" {
		return "", domain.ErrMissingArgument.WithDetails(name + " is required")
	}
	return v, nil
}

// getClientIP extracts client IP from request.
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return strings.Trim(ip, "[]")
}
