package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/rl1809/retail-datagen/internal/adapter/storage"
	"github.com/rl1809/retail-datagen/internal/config"
	"github.com/rl1809/retail-datagen/internal/core/service"
	"github.com/rl1809/retail-datagen/internal/port"
)

func main() {
	if err := run(); err != nil {
		slog.Error("generation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := slog.With(slog.String("run_id", uuid.NewString()[:8]))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("starting generation",
		slog.Int64("seed", cfg.Seed),
		slog.String("start", cfg.StartDateStr),
		slog.String("end", cfg.EndDateStr),
		slog.String("sink", cfg.SinkDriver))

	ds, err := service.NewPipeline(cfg, log).Generate(ctx)
	if err != nil {
		return err
	}

	sink, cleanup, err := openSink(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	report := service.NewPublisher(sink, cfg.SinkMaxRetries, log).Publish(ctx, ds)
	for _, table := range report.Succeeded {
		log.Info("table confirmed", slog.String("table", table))
	}
	if !report.Ok() {
		for table, tableErr := range report.Failed {
			log.Error("table failed",
				slog.String("table", table),
				slog.String("error", tableErr.Error()))
		}
		return fmt.Errorf("%d of %d tables failed", len(report.Failed), len(service.TableOrder))
	}

	log.Info("generation complete", slog.Int("tables", len(report.Succeeded)))
	return nil
}

// openSink builds the configured destination adapter. The returned cleanup
// closes the underlying connection.
func openSink(ctx context.Context, cfg config.Config) (port.DatasetSink, func(), error) {
	switch cfg.SinkDriver {
	case "csv":
		sink, err := storage.NewCSVSink(cfg.CSVDir)
		if err != nil {
			return nil, nil, err
		}
		return sink, func() {}, nil

	case "mysql":
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open mysql: %w", err)
		}
		db.SetMaxOpenConns(10)
		db.SetConnMaxLifetime(5 * time.Minute)
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("ping mysql: %w", err)
		}
		sink := storage.NewMySQLSink(db)
		if err := sink.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return sink, func() { db.Close() }, nil

	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("ping postgres: %w", err)
		}
		sink := storage.NewPostgresSink(pool)
		if err := sink.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return sink, func() { pool.Close() }, nil

	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("ping redis: %w", err)
		}
		return storage.NewRedisSink(client), func() { client.Close() }, nil
	}
	return nil, nil, fmt.Errorf("unknown sink driver %q", cfg.SinkDriver)
}
