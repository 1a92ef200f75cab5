package discord

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"
)

// HealthStatus represents the bot's health status
type HealthStatus struct {
	Status           string    `json:"status"`
	Uptime           string    `json:"uptime"`
	Connected        bool      `json:"connected"`
	CommandsReceived int64     `json:"commands_received"`
	LastCommandTime  time.Time `json:"last_command_time,omitempty"`
	APIReachable     bool      `json:"api_reachable"`
}

var (
	startTime       = time.Now()
	commandCounter  int64
	lastCommandTime atomic.Value // time.Time
)

// RecordCommand increments the command counter
func RecordCommand() {
	atomic.AddInt64(&commandCounter, 1)
	lastCommandTime.Store(time.Now())
}

// HTTPServer exposes a health endpoint for the bot process itself,
// separate from the game API's probes.
type HTTPServer struct {
	bot *Bot
	srv *http.Server
}

// NewHTTPServer creates the bot-side health server.
func NewHTTPServer(bot *Bot, port string) *HTTPServer {
	h := &HTTPServer{bot: bot}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", h.HandleHealth)

	h.srv = &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}
	return h
}

// Start begins serving in the background.
func (h *HTTPServer) Start() {
	go func() {
		slog.Info("Bot health server listening", "addr", h.srv.Addr)
		if err := h.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Bot health server failed", "error", err)
		}
	}()
}

// Stop shuts the server down gracefully.
func (h *HTTPServer) Stop(ctx context.Context) error {
	return h.srv.Shutdown(ctx)
}

// HandleHealth returns the bot's health status
func (h *HTTPServer) HandleHealth(w http.ResponseWriter, r *http.Request) {
	connected := h.bot.Session != nil && h.bot.Session.DataReady

	// Quick ping to check the game API
	apiReachable := false
	if h.bot.Client != nil {
		resp, err := http.Get(h.bot.Client.BaseURL + "/healthz")
		if err == nil {
			apiReachable = resp.StatusCode == http.StatusOK
			resp.Body.Close()
		}
	}

	status := "healthy"
	if !connected || !apiReachable {
		status = "degraded"
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	var lastCmd time.Time
	if v := lastCommandTime.Load(); v != nil {
		lastCmd = v.(time.Time)
	}

	health := HealthStatus{
		Status:           status,
		Uptime:           time.Since(startTime).String(),
		Connected:        connected,
		CommandsReceived: atomic.LoadInt64(&commandCounter),
		LastCommandTime:  lastCmd,
		APIReachable:     apiReachable,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(health); err != nil {
		slog.Error("Failed to encode health status", "error", err)
	}
}
