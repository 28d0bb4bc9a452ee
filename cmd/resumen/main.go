package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/your-org/comunidad/internal/config"
	"github.com/your-org/comunidad/internal/models"
	"github.com/your-org/comunidad/internal/observability"
	"github.com/your-org/comunidad/internal/queue"
	"github.com/your-org/comunidad/internal/storage"
)

// The resumen worker consumes attendance events and maintains the
// per-day rollup that backs the dashboard.
func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	observability.SetupLogger(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("starting comunidad resumen worker")

	// Connect to Postgres
	db, err := storage.NewPostgresStore(cfg.Database)
	if err != nil {
		slog.Error("connect to postgres", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Connect to NATS. The producer only ensures the stream exists.
	producer, err := queue.NewProducer(cfg.NATS.URL)
	if err != nil {
		slog.Error("connect to nats producer", "error", err)
		os.Exit(1)
	}
	defer producer.Close()

	if err := producer.EnsureStreams(context.Background()); err != nil {
		slog.Warn("ensure nats streams", "error", err)
	}

	consumer, err := queue.NewConsumer(cfg.NATS.URL)
	if err != nil {
		slog.Error("create consumer", "error", err)
		os.Exit(1)
	}
	defer consumer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err = consumer.ConsumeEventos(ctx, "resumen-worker", func(ctx context.Context, msg jetstream.Msg) error {
		if msg.Subject() != queue.SubjectAsistencia {
			return nil
		}

		var evento models.EventoAsistencia
		if err := json.Unmarshal(msg.Data(), &evento); err != nil {
			slog.Error("unmarshal asistencia event", "error", err)
			return nil // Don't retry on unmarshal errors
		}

		esVisita := evento.Rol == models.RolVisita
		if err := db.IncrementarResumen(ctx, evento.AsistenciaID, evento.IglesiaID, evento.Fecha, esVisita); err != nil {
			return fmt.Errorf("increment resumen %s: %w", evento.AsistenciaID, err)
		}

		return nil
	})
	if err != nil {
		slog.Error("start event consumer", "error", err)
		os.Exit(1)
	}

	// Metrics endpoint
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		})
		slog.Info("worker metrics listening", "addr", ":8082")
		if err := http.ListenAndServe(":8082", mux); err != nil {
			slog.Error("metrics server error", "error", err)
		}
	}()

	// Wait for shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down resumen worker...")
	cancel()
	time.Sleep(2 * time.Second)
	slog.Info("resumen worker stopped")
}
