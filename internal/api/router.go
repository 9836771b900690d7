package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/salihsuliman/queue-up/internal/api/handler"
	"github.com/salihsuliman/queue-up/internal/api/middleware"
	"github.com/salihsuliman/queue-up/internal/services/directory"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger    *slog.Logger
	Directory *directory.Service
}

// NewRouter creates a new API router with all routes configured.
// Every endpoint is a read over the frozen directory snapshot, so the
// whole surface is GET and requires no authentication.
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	gamesHandler := handler.NewGamesHandler(cfg.Directory)
	playersHandler := handler.NewPlayersHandler(cfg.Directory)
	statsHandler := handler.NewStatsHandler(cfg.Directory)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Game catalog and per-game search routes
	api.HandleFunc("/games", gamesHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}", gamesHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}/players", gamesHandler.Players).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}/filters", gamesHandler.FilterOptions).Methods(http.MethodGet)

	// Directory-wide player routes
	api.HandleFunc("/players", playersHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}", playersHandler.Get).Methods(http.MethodGet)

	// Directory statistics
	api.HandleFunc("/directory/stats", statsHandler.Get).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
