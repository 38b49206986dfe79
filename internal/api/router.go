// Package api provides the HTTP API surface for the session lobby service.
package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/JunFolioGame/API-BackEnd/internal/api/handler"
	"github.com/JunFolioGame/API-BackEnd/internal/api/middleware"
	"github.com/JunFolioGame/API-BackEnd/internal/services/directory"
	"github.com/JunFolioGame/API-BackEnd/internal/services/session"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	Directory         *directory.Service
	SessionController session.ControllerInterface
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	playerHandler := handler.NewPlayerHandler(cfg.Directory)
	sessionHandler := handler.NewSessionHandler(cfg.SessionController)

	authMiddleware := middleware.Auth(cfg.Directory)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Player routes (no auth required for creating players/logging in)
	api.HandleFunc("/players/guest", playerHandler.CreateGuest).Methods(http.MethodPost)
	api.HandleFunc("/players/register", playerHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/players/login", playerHandler.Login).Methods(http.MethodPost)

	// Protected player routes
	playerProtected := api.PathPrefix("/players").Subrouter()
	playerProtected.Use(authMiddleware)
	playerProtected.HandleFunc("/me", playerHandler.GetMe).Methods(http.MethodGet)
	playerProtected.HandleFunc("/logout", playerHandler.Logout).Methods(http.MethodPost)

	// Session routes (all require auth)
	sessions := api.PathPrefix("/sessions").Subrouter()
	sessions.Use(authMiddleware)
	sessions.HandleFunc("", sessionHandler.Create).Methods(http.MethodPost)
	sessions.HandleFunc("/{code}", sessionHandler.Get).Methods(http.MethodGet)
	sessions.HandleFunc("/{code}/join", sessionHandler.Join).Methods(http.MethodPost)
	sessions.HandleFunc("/{code}/finalize", sessionHandler.Finalize).Methods(http.MethodPost)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
