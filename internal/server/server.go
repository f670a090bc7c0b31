package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/PhoneTycoon_Go/docs"
	"github.com/osse101/PhoneTycoon_Go/internal/concurrency"
	"github.com/osse101/PhoneTycoon_Go/internal/eventlog"
	"github.com/osse101/PhoneTycoon_Go/internal/handler"
	"github.com/osse101/PhoneTycoon_Go/internal/idempotency"
	"github.com/osse101/PhoneTycoon_Go/internal/logger"
	"github.com/osse101/PhoneTycoon_Go/internal/lootbox"
	"github.com/osse101/PhoneTycoon_Go/internal/market"
	"github.com/osse101/PhoneTycoon_Go/internal/metrics"
	"github.com/osse101/PhoneTycoon_Go/internal/user"
)

// Config holds the HTTP-facing settings
type Config struct {
	Port               int
	APIKey             string
	TrustedProxies     []string
	AllowedOrigins     []string
	RateLimitPerWindow int
}

// Services are the handlers' dependencies
type Services struct {
	Store       handler.Pinger
	Users       user.Service
	Cases       lootbox.Service
	Market      market.Service
	History     eventlog.Service
	Idempotency *idempotency.Cache
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(cfg Config, svc Services) *Server {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector(cfg.RateLimitPerWindow, RateLimitWindow)

	r.Use(loggingMiddleware)
	r.Use(SecurityHeadersMiddleware())
	r.Use(CORSMiddleware(cfg.AllowedOrigins))
	r.Use(RateLimitMiddleware(cfg.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)

	r.NotFound(handler.HandleNotFound())
	r.MethodNotAllowed(handler.HandleMethodNotAllowed())

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(svc.Store))
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	locks := concurrency.NewLockManager()
	api := func(r chi.Router) {
		r.Use(idempotency.Middleware(svc.Idempotency, locks, handler.UserIDFromRequest))
		apiRoutes(r, cfg, svc, detector)
	}
	r.Route("/api/v1", api)
	// Unversioned alias used by older Mini App builds
	r.Route("/api", api)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
			ReadTimeout:       ReadTimeout,
			WriteTimeout:      WriteTimeout,
			IdleTimeout:       IdleTimeout,
		},
	}
}

func apiRoutes(r chi.Router, cfg Config, svc Services, detector *SuspiciousActivityDetector) {
	r.Route("/user", func(r chi.Router) {
		r.Get("/", handler.HandleGetUser(svc.Users))
		r.Post("/profile", handler.HandleUpdateProfile(svc.Users))
		r.Get("/inventory", handler.HandleGetInventory(svc.Users))
	})
	r.Get("/inventory", handler.HandleGetInventory(svc.Users))

	r.Route("/cases", func(r chi.Router) {
		r.Get("/", handler.HandleListCases(svc.Cases))
		r.Get("/drops", handler.HandleRecentDrops(svc.History))
		r.Get("/{caseID}/odds", handler.HandleGetCaseOdds(svc.Cases))
		r.Post("/open", handler.HandleOpenCase(svc.Cases))
	})

	r.Route("/market", func(r chi.Router) {
		r.Get("/", handler.HandleListMarket(svc.Market))
		r.Get("/mine", handler.HandleListMine(svc.Market))
		r.Get("/history", handler.HandleMarketHistory(svc.History))
		r.Post("/sell", handler.HandleSell(svc.Market))
		r.Post("/buy", handler.HandleBuy(svc.Market))
		r.Post("/cancel", handler.HandleCancel(svc.Market))
		r.Post("/unlist", handler.HandleCancel(svc.Market))
	})

	r.Post("/logs", handler.HandleClientLog(""))
	r.Post("/logs/error", handler.HandleClientLog("error"))

	if cfg.APIKey == "" {
		slog.Default().Warn(LogMsgAdminDisabled)
		return
	}
	r.Route("/admin", func(r chi.Router) {
		r.Use(AdminAuthMiddleware(cfg.APIKey, cfg.TrustedProxies, detector))
		r.Post("/signals/grant", handler.HandleGrantSignals(svc.Users))
	})
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
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
		statusCode:     http.StatusOK,
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

// requestID reuses a client-supplied UUID so client and server logs line up
func requestID(r *http.Request) string {
	if id := r.Header.Get(HeaderRequestID); id != "" {
		if _, err := uuid.Parse(id); err == nil {
			return id
		}
	}
	return logger.GenerateRequestID()
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		id := requestID(r)
		w.Header().Set(HeaderRequestID, id)
		ctx := logger.WithRequestID(r.Context(), id)
		r = r.WithContext(ctx)

		for _, p := range QuietPaths {
			if strings.HasPrefix(r.URL.Path, p) {
				next.ServeHTTP(w, r)
				return
			}
		}

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
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
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
