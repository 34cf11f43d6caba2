package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nt-jambaa/toktok-mini-game/internal/farm"
	"github.com/nt-jambaa/toktok-mini-game/internal/handler"
	"github.com/nt-jambaa/toktok-mini-game/internal/metrics"
	"github.com/nt-jambaa/toktok-mini-game/internal/sse"
)

// Options carries everything the HTTP surface is wired to
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	Version        string

	Farm        farm.Service
	Mode        handler.ModeController
	Leaderboard handler.StandingsProvider
	Storage     handler.Pinger
	Hub         *sse.Hub
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the chi router with the middleware stack and all routes
func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(middleware.Recoverer)
	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(opts.Storage))
	r.Get("/version", handler.HandleVersion(opts.Version))
	r.Handle("/metrics", promhttp.Handler())

	farmHandler := handler.NewFarmHandler(opts.Farm, opts.Mode)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/animals", func(r chi.Router) {
			r.Get("/", farmHandler.HandleListAnimals)
			r.Get("/{id}", farmHandler.HandleGetAnimal)
		})

		r.Route("/farm", func(r chi.Router) {
			r.Get("/", farmHandler.HandleGetFarm)
			r.Post("/start", farmHandler.HandleStartGame)
			r.Post("/feed", farmHandler.HandleFeed)
			r.Post("/order", farmHandler.HandleOrder)
			r.Post("/harvest", farmHandler.HandleHarvest)
			r.Post("/poll", farmHandler.HandlePoll)
			r.Get("/mode", farmHandler.HandleGetMode)
			r.Post("/mode", farmHandler.HandleSetMode)
		})

		r.Get("/experience", farmHandler.HandleGetExperience)
		r.Get("/leaderboard", handler.HandleGetLeaderboard(opts.Farm, opts.Leaderboard))

		if opts.Hub != nil {
			r.Get("/events", sse.Handler(opts.Hub))
		}
	})

	return r
}

// Start serves until Stop is called. A graceful shutdown is not reported as an error.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
