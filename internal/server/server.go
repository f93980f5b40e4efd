package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/extra/redisprometheus/v9"

	"storefront/internal/config"
	"storefront/internal/gateway"
	"storefront/internal/metrics"
	"storefront/internal/middlewares"
	"storefront/internal/session"
	"storefront/internal/ui"
	"storefront/internal/web"
)

type Server struct {
	cfg         *config.Config
	logger      *slog.Logger
	appCtx      *middlewares.AppContext
	httpServer  *http.Server
	debugServer *http.Server
	store       *session.Store
	ctx         context.Context
	cancel      context.CancelFunc
}

func New(cfg *config.Config) (*Server, error) {
	logger := setupLogger(cfg)

	ctx, cancel := context.WithCancel(context.Background())

	creds, err := session.NewCredentialStore(cfg, logger)
	if err != nil {
		cancel()
		return nil, err
	}

	if cfg.Server.Debug != nil && cfg.Server.Debug.Enabled {
		if redisStore, ok := creds.(*session.RedisCredentialStore); ok {
			collector := redisprometheus.NewCollector(metrics.Namespace, "credentials", redisStore.Client())
			if err := prometheus.Register(collector); err != nil {
				logger.Debug("failed to register redis credentials collector: already registered", "error", err)
			}
		}
	}

	backend := gateway.NewClient(cfg, logger)

	store := session.NewStore(creds, backend, logger)
	backend.OnAuthFailure(creds, store)

	uiSession, err := ui.NewSessionManager(logger, cfg)
	if err != nil {
		cancel()
		return nil, err
	}

	renderer, err := web.NewRenderer()
	if err != nil {
		cancel()
		return nil, err
	}

	appCtx := middlewares.NewAppContext(ctx, cfg, logger, store, backend, uiSession, renderer)

	router := setupRouter(appCtx)
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	var debugServer *http.Server
	if cfg.Server.Debug != nil && cfg.Server.Debug.Enabled {
		debugRouter := setupDebugRouter()
		debugServer = &http.Server{
			Addr:    fmt.Sprintf("%s:%d", cfg.Server.Debug.Host, cfg.Server.Debug.Port),
			Handler: debugRouter,
		}
	}

	return &Server{
		cfg:         cfg,
		logger:      logger,
		appCtx:      appCtx,
		httpServer:  httpServer,
		debugServer: debugServer,
		store:       store,
		ctx:         ctx,
		cancel:      cancel,
	}, nil
}

func (s *Server) Start() error {
	// Pages render the loading placeholder until restoration settles.
	go s.store.Restore(s.ctx)

	go func() {
		s.logger.Info("Server Started", "port", s.cfg.Server.Port)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server failed to start", "error", err)
			s.cancel()
		}
	}()

	if s.debugServer != nil {
		go func() {
			s.logger.Info("Metrics server starting", "address", s.debugServer.Addr)
			if err := s.debugServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.logger.Error("Metrics server failed to start", "error", err)
				s.cancel()
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		s.logger.Info("Shutdown signal received")
	case <-s.ctx.Done():
		s.logger.Info("Context canceled")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	s.logger.Info("Shutting Down Server")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("Server forced to shutdown", "error", err)
		return err
	}

	if s.debugServer != nil {
		if err := s.debugServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Debug server forced to shutdown", "error", err)
		}
	}

	s.logger.Info("Server Exited")
	return nil
}
