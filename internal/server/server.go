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

	"github.com/hexlab-games/habitquest/internal/database"
	"github.com/hexlab-games/habitquest/internal/game"
	"github.com/hexlab-games/habitquest/internal/handler"
	"github.com/hexlab-games/habitquest/internal/logger"
	"github.com/hexlab-games/habitquest/internal/metrics"
	"github.com/hexlab-games/habitquest/internal/sse"
)

type Server struct {
	httpServer  *http.Server
	dbPool      database.Pool
	gameService game.Service
	hub         *sse.Hub
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, gameService game.Service, hub *sse.Hub) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// Live event stream for companion UIs
	r.Get("/events", sse.Handler(hub))

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Character routes
		r.Route("/character", func(r chi.Router) {
			r.Post("/", handler.HandleCreateCharacter(gameService))
			r.Get("/", handler.HandleGetCharacter(gameService))
			r.Get("/classes", handler.HandleListClasses(gameService))
			r.Get("/death", handler.HandleCheckDeath(gameService))
			r.Post("/resurrect", handler.HandleResurrect(gameService))
		})

		// Quest routes
		r.Route("/quests", func(r chi.Router) {
			r.Post("/", handler.HandleCreateQuest(gameService))
			r.Get("/", handler.HandleListQuests(gameService))

			r.Route("/{questID}", func(r chi.Router) {
				r.Delete("/", handler.HandleDeleteQuest(gameService))
				r.Post("/complete", handler.HandleCompleteQuest(gameService))
				r.Post("/fail", handler.HandleFailQuest(gameService))
				r.Post("/increment", handler.HandleIncrementHabit(gameService))
				r.Post("/decrement", handler.HandleDecrementHabit(gameService))
			})
		})

		// Inventory routes
		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", handler.HandleGetInventory(gameService))
			r.Get("/equipped", handler.HandleGetEquipped(gameService))

			r.Route("/{itemID}", func(r chi.Router) {
				r.Post("/equip", handler.HandleEquipItem(gameService))
				r.Post("/unequip", handler.HandleUnequipItem(gameService))
				r.Post("/use", handler.HandleUseConsumable(gameService))
			})
		})

		// Shop routes
		r.Route("/shop", func(r chi.Router) {
			r.Get("/", handler.HandleShopCatalog(gameService))
			r.Post("/buy", handler.HandleBuyItem(gameService))
		})

		// Maintenance trigger, also runs automatically at rollover
		r.Post("/maintenance/run", handler.HandleRunMaintenance(gameService))
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:      dbPool,
		gameService: gameService,
		hub:         hub,
	}
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

// Flush passes through so the event stream can push without buffering
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		// Wrap response writer to capture status code
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
