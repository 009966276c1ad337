package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/justsplit/internal/config"
	"github.com/mmynk/justsplit/internal/middleware"
	"github.com/mmynk/justsplit/internal/service"
	"github.com/mmynk/justsplit/internal/storage/sqlite"
	"github.com/mmynk/justsplit/internal/timeline"
	"github.com/mmynk/justsplit/pkg/api"
	"github.com/mmynk/justsplit/pkg/logging"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_FILE"), "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Setup()
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		logging.Setup()
		slog.Error("Invalid config", "error", err)
		os.Exit(1)
	}

	level, _ := logging.ParseLevel(cfg.Log.Level)
	logging.SetupWithLevel(level)

	// Initialize SQLite storage
	store, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.Database.Path)

	loc, _ := cfg.Location()
	tl := timeline.New(
		timeline.WithLocation(loc),
		timeline.WithProximityThreshold(cfg.Timeline.ProximityThreshold),
	)

	interceptors := []connect.Interceptor{middleware.LoggingInterceptor()}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS)

	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		interceptors = append(interceptors, middleware.NewMetrics(reg).Interceptor())
		r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}

	// Register Connect services
	opts := connect.WithInterceptors(interceptors...)
	eventPath, eventHandler := api.NewEventServiceHandler(service.NewEventService(store, tl), opts)
	r.Handle(eventPath+"*", eventHandler)

	timelinePath, timelineHandler := api.NewTimelineServiceHandler(service.NewTimelineService(store, tl), opts)
	r.Handle(timelinePath+"*", timelineHandler)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h2c.NewHandler(r, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	idle := make(chan struct{})
	go func() {
		defer close(idle)
		<-ctx.Done()
		slog.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
	}()

	slog.Info("Connect server starting",
		"address", cfg.Addr(),
		"metrics", cfg.Metrics.Enabled,
		"location", loc.String(),
		"proximity_threshold", tl.Threshold(),
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}

	<-idle
	slog.Info("Server stopped")
}
