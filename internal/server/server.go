package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/LondonTravel_Go/internal/alexa"
	"github.com/osse101/LondonTravel_Go/internal/database"
	"github.com/osse101/LondonTravel_Go/internal/handler"
	"github.com/osse101/LondonTravel_Go/internal/logger"
	"github.com/osse101/LondonTravel_Go/internal/metrics"
	"github.com/osse101/LondonTravel_Go/internal/session"
	"github.com/osse101/LondonTravel_Go/internal/user"
)

type Server struct {
	httpServer *http.Server
}

// Dependencies are the services the HTTP routes are served from
type Dependencies struct {
	DBPool      database.Pool
	Sessions    *session.Manager
	Users       user.Service
	Alexa       alexa.Service
	Providers   handler.IdentityProviders
	ServiceName string
	Version     string
}

// NewServer creates a new Server instance
func NewServer(port int, trustedProxies []string, deps Dependencies) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           NewRouter(trustedProxies, deps),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the route tree and middleware stack
func NewRouter(trustedProxies []string, deps Dependencies) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)
	r.Use(deps.Sessions.Middleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(handler.DatabaseCheck(deps.DBPool)))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion(deps.ServiceName, deps.Version))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle(metrics.ScrapePath, promhttp.Handler())

	// Alexa skill API, authenticated by the access token issued at link time
	r.Route("/api", func(r chi.Router) {
		r.With(FailedAuthMiddleware(trustedProxies, detector)).
			Get("/preferences", handler.HandleGetPreferences(deps.Users))
		r.Get("/lines", handler.HandleGetLines())
	})

	// External sign-in
	accountHandlers := handler.NewAccountHandlers(deps.Providers, deps.Users, deps.Sessions)
	r.Route("/account", func(r chi.Router) {
		r.Get("/signin", accountHandlers.HandleSignInOptions())
		r.Get("/signin/{provider}", accountHandlers.HandleSignIn())
		r.Get("/callback/{provider}", accountHandlers.HandleCallback())
		r.Post("/signout", accountHandlers.HandleSignOut())
	})

	// Routes for signed-in users
	alexaHandlers := handler.NewAlexaHandlers(deps.Alexa)
	manageHandlers := handler.NewManageHandlers(deps.Users, deps.Sessions)
	r.Group(func(r chi.Router) {
		r.Use(session.RequireAuth)

		r.Get("/alexa/authorize", alexaHandlers.HandleAuthorize())

		r.Route("/manage", func(r chi.Router) {
			r.Get("/", manageHandlers.HandleGetProfile())
			r.Post("/update-line-preferences", manageHandlers.HandleUpdateLinePreferences())
			r.Post("/remove-alexa-link", manageHandlers.HandleRemoveAlexaLink())
			r.Post("/delete-account", manageHandlers.HandleDeleteAccount())
		})
	})

	// Swagger documentation
	r.Get(SwaggerPathPrefix+"*", httpSwagger.WrapHandler)

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func isQuietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Bearer tokens and session cookies never reach the logs
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAuthorization) || strings.EqualFold(k, HeaderCookie) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
