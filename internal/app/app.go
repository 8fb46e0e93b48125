package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/langlearn/langlearn-backend/internal/adapter/pebbledb"
	langrepo "github.com/langlearn/langlearn-backend/internal/adapter/pebbledb/language"
	topicrepo "github.com/langlearn/langlearn-backend/internal/adapter/pebbledb/topic"
	"github.com/langlearn/langlearn-backend/internal/config"
	"github.com/langlearn/langlearn-backend/internal/service/language"
	"github.com/langlearn/langlearn-backend/internal/service/stats"
	"github.com/langlearn/langlearn-backend/internal/service/topic"
	"github.com/langlearn/langlearn-backend/internal/transport/middleware"
	"github.com/langlearn/langlearn-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger and storage, wires the services behind a single store guard,
// and serves HTTP until ctx is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("storage_in_memory", cfg.Storage.InMemory),
	)

	var db *pebbledb.DB
	if cfg.Storage.InMemory {
		db, err = pebbledb.OpenMemory()
	} else {
		db, err = pebbledb.Open(cfg.Storage.Path)
	}
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("close storage", slog.String("error", err.Error()))
		}
	}()

	languages := langrepo.New(db.Map("lang/"))
	topics := topicrepo.New(db.Map("topic/"))

	// One guard across both stores: AddTopic and DeleteLanguage+cascade
	// are read-then-write sequences spanning both collections and must be
	// atomic with respect to each other.
	guard := &sync.RWMutex{}
	strict := cfg.Store.StrictTitles

	languageSvc := language.NewService(logger, languages, topics, guard, strict, uuid.NewString)
	topicSvc := topic.NewService(logger, topics, languages, guard, strict, uuid.NewString)
	statsSvc := stats.NewService(logger, languages, topics, guard)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		pebbledb.NewCollector(db),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metricsHandler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	router := rest.NewRouter(
		rest.NewLanguageHandler(languageSvc, logger),
		rest.NewTopicHandler(topicSvc, logger),
		rest.NewStatsHandler(statsSvc, logger),
		rest.NewHealthHandler(db, BuildVersion()),
		metricsHandler,
	)

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(router)

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
