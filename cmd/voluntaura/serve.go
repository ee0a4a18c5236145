package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"voluntaura/internal/metrics"
	"voluntaura/internal/models"
	"voluntaura/internal/prefs"
	"voluntaura/internal/server"
	"voluntaura/internal/storage/sqlite"
	"voluntaura/internal/swipe"
	"voluntaura/internal/wizard"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	log.Info("voluntaura starting", zap.String("addr", cfg.Server.Addr), zap.String("storage", cfg.Storage.Path))

	cat, err := loadCatalog(cfg.Catalog.Path)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// Storage is a best-effort cache: if it cannot be opened the app runs in memory.
	var persister prefs.Persister
	store, err := sqlite.Open(cfg.Storage.Path, log)
	if err != nil {
		log.Warn("unable to open storage, state will not persist", zap.Error(err))
	} else {
		defer store.Close()
		persister = store
	}

	ctx := context.Background()
	container := prefs.New(ctx, persister, cfg.Storage.Key, log.Named("prefs"), prefs.WithPersistFailureHook(m.PersistFailed))

	celebration := swipe.NewCelebration(cfg.Swipe.Celebration, func(opp models.Opportunity) {
		log.Debug("celebration closed", zap.String("opportunity", opp.ID))
	})
	defer celebration.Close()

	session := swipe.NewSession(cat, container, celebration, log.Named("swipe"), swipe.Options{ResetOnRetake: cfg.Swipe.ResetOnRetake})
	wiz := wizard.New(container,
		func() {
			state := session.Retaken()
			log.Info("questionnaire completed", zap.String("swipe_state", string(state)))
		},
		func() { log.Debug("questionnaire closed") },
	)

	srv := server.New(server.Deps{
		Catalog:     cat,
		Prefs:       container,
		Session:     session,
		Celebration: celebration,
		Wizard:      wiz,
		Metrics:     m,
		Logger:      log.Named("http"),
		StaticDir:   cfg.Server.StaticDir,
		CORSOrigins: cfg.Server.CORSOrigins,
	})

	httpServer := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: srv.Engine(),
	}

	go func() {
		log.Info("starting server", zap.String("addr", httpServer.Addr), zap.Int("opportunities", cat.Len()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped unexpectedly", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", zap.Error(err))
	}

	log.Info("server stopped")
	return nil
}
