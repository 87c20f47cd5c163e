package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"docmap/internal/config"
	"docmap/internal/handler"
	"docmap/internal/hub"
	"docmap/internal/observability"
	"docmap/internal/repository/sqlite"
	"docmap/internal/service"
	"docmap/internal/watcher"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the documentation graph over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runServe(cfg)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cfg *config.Config) error {
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	logger.Info("starting docmap server", zap.String("addr", cfg.Server.Addr))

	repo, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer repo.Close()
	logger.Info("database opened", zap.String("path", cfg.Database.Path))

	eventBus := service.NewEventBus()
	metrics := observability.New()

	sseHub := hub.New(logger)
	go sseHub.Run()

	// fan bus events out to SSE clients
	eventChan := make(chan service.Event, 100)
	eventBus.Subscribe(eventChan)
	go func() {
		for event := range eventChan {
			sseHub.Broadcast(event)
			metrics.SSEClients.Set(float64(sseHub.ClientCount()))
		}
	}()

	svc := service.NewGraphService(cfg, repo, eventBus, logger, metrics)
	if err := svc.Init(context.Background()); err != nil {
		return err
	}

	// rebuild on content changes; watching only applies to a real docs dir
	watchCtx, watchCancel := context.WithCancel(context.Background())
	defer watchCancel()
	if cfg.Docs.ManifestPath == "" {
		w := watcher.New(cfg.Docs.Dir, logger, func() {
			if err := svc.Rebuild(context.Background()); err != nil {
				logger.Error("rebuild after content change failed", zap.Error(err))
			}
		})
		go func() {
			if err := w.Watch(watchCtx); err != nil && watchCtx.Err() == nil {
				logger.Error("watcher stopped", zap.Error(err))
			}
		}()
	}

	graphHandler := handler.NewGraphHandler(svc, logger)
	router := handler.Router(graphHandler, sseHub, metrics.Handler(), logger)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  config.DurationOr(cfg.Server.ReadTimeout, 10*time.Second),
		WriteTimeout: config.DurationOr(cfg.Server.WriteTimeout, 30*time.Second),
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", cfg.Server.Addr))
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	watchCancel()

	ctx, cancel := context.WithTimeout(context.Background(),
		config.DurationOr(cfg.Server.ShutdownTimeout, 10*time.Second))
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped")
	return nil
}
