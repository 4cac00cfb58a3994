package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

type Server struct {
	logger *slog.Logger
	server *http.Server
}

func New(logger *slog.Logger, port string, concentration concentrationService, set setService) *Server {
	return &Server{
		logger: logger.With("component", "rest"),
		server: &http.Server{
			Addr:         ":" + port,
			Handler:      NewHandler(logger, concentration, set),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  30 * time.Second,
		},
	}
}

// NewHandler routes the game API.
func NewHandler(logger *slog.Logger, concentration concentrationService, set setService) http.Handler {
	ping := NewPingHandler()
	games := &gameHandlers{
		logger:        logger.With("component", "rest"),
		concentration: concentration,
		set:           set,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", ping.PingHandler)

	mux.HandleFunc("POST /concentration", games.newConcentration)
	mux.HandleFunc("GET /concentration/{id}", games.getConcentration)
	mux.HandleFunc("POST /concentration/{id}/choose", games.chooseCard)
	mux.HandleFunc("GET /concentration/{id}/layout", games.concentrationLayout)

	mux.HandleFunc("POST /set", games.newSet)
	mux.HandleFunc("GET /set/{id}", games.getSet)
	mux.HandleFunc("POST /set/{id}/select", games.selectCard)
	mux.HandleFunc("POST /set/{id}/deal", games.dealMore)
	mux.HandleFunc("GET /set/{id}/cheat", games.cheat)
	mux.HandleFunc("GET /set/{id}/layout", games.setLayout)

	return mux
}

// Start blocks until the server stops; a graceful Shutdown is not an error.
func (that *Server) Start() error {
	that.logger.Info("Starting HTTP server", "addr", that.server.Addr)

	if err := that.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) Shutdown(ctx context.Context) error {
	if err := that.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
