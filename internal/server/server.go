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

	"github.com/deremos/RealmBot_Go/internal/adventure"
	"github.com/deremos/RealmBot_Go/internal/content"
	"github.com/deremos/RealmBot_Go/internal/handler"
	"github.com/deremos/RealmBot_Go/internal/leveling"
	"github.com/deremos/RealmBot_Go/internal/logger"
	"github.com/deremos/RealmBot_Go/internal/metrics"
)

// Server is the HTTP API process. Bot clients talk to it with an API key;
// everything stateful lives behind the two game services.
type Server struct {
	httpServer       *http.Server
	levelingService  leveling.Service
	adventureService adventure.Service
}

// NewServer assembles the router and middleware stack.
func NewServer(port int, apiKey string, trustedProxies []string, levelingService leveling.Service, adventureService adventure.Service, catalog *content.Catalog, storeHealth handler.HealthChecker) *Server {
	r := chi.NewRouter()

	// Middleware executes in the order defined (outermost first).
	detector := NewSuspiciousActivityDetector()
	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(RateLimitMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Unversioned operational endpoints
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(storeHealth))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	levelsHandler := handler.NewLevelsHandler(levelingService)
	adventureHandler := handler.NewAdventureHandler(adventureService, catalog)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/message/handle", handler.HandleMessage(levelingService))

		r.Route("/levels", func(r chi.Router) {
			r.Get("/rank", levelsHandler.HandleGetRank)
			r.Get("/leaderboard", levelsHandler.HandleGetLeaderboard)
			r.Get("/progress", levelsHandler.HandleGetProgress)
			r.Post("/grant", levelsHandler.HandleGrantXP)
		})

		r.Route("/adventure", func(r chi.Router) {
			r.Get("/profile", adventureHandler.HandleGetProfile)
			r.Post("/hunt", adventureHandler.HandleHunt)
			r.Post("/train", adventureHandler.HandleTrain)
			r.Post("/daily", adventureHandler.HandleDaily)
			r.Post("/buy", adventureHandler.HandleBuy)
			r.Post("/equip", adventureHandler.HandleEquip)
			r.Post("/travel", adventureHandler.HandleTravel)
			r.Get("/shop", adventureHandler.HandleGetShop)
			r.Get("/locations", adventureHandler.HandleGetLocations)
			r.Route("/quests", func(r chi.Router) {
				r.Get("/", adventureHandler.HandleGetQuests)
				r.Post("/complete", adventureHandler.HandleCompleteQuest)
			})
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		levelingService:  levelingService,
		adventureService: adventureService,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
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

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Health and metrics endpoints are scraped constantly; skip them.
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
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
	return s.httpServer.Shutdown(ctx)
}
