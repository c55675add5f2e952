package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/rl1809/retail-datagen/internal/port"
)

// TableOrder is the order in which tables are published. Referenced tables
// come before the tables that reference them.
var TableOrder = []string{
	"products", "suppliers", "customers", "inventory",
	"promotions", "sales", "shipments", "market_trends",
}

// Report names which tables reached the sink and which exhausted their
// retries. The dataset stays in memory either way.
type Report struct {
	Succeeded []string
	Failed    map[string]error
}

func (r *Report) Ok() bool { return len(r.Failed) == 0 }

// Publisher appends dataset batches to a sink with bounded exponential
// backoff per table.
type Publisher struct {
	sink     port.DatasetSink
	maxTries uint
	interval time.Duration
	log      *slog.Logger
}

func NewPublisher(sink port.DatasetSink, maxTries uint, log *slog.Logger) *Publisher {
	return &Publisher{sink: sink, maxTries: maxTries, interval: 250 * time.Millisecond, log: log}
}

// Publish appends every table in TableOrder and keeps going past per-table
// failures so the report covers the whole run.
func (p *Publisher) Publish(ctx context.Context, ds *Dataset) *Report {
	report := &Report{Failed: make(map[string]error)}
	for _, table := range TableOrder {
		if err := p.PublishTable(ctx, ds, table); err != nil {
			p.log.Error("table publish failed",
				slog.String("table", table),
				slog.String("error", err.Error()))
			report.Failed[table] = err
			continue
		}
		report.Succeeded = append(report.Succeeded, table)
	}
	return report
}

// PublishTable appends a single table, retrying with bounded backoff. It
// reads from the retained dataset, so a caller can retry one failed table
// without re-running generation.
func (p *Publisher) PublishTable(ctx context.Context, ds *Dataset, table string) error {
	batch, err := ds.Batch(table)
	if err != nil {
		return err
	}

	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = p.interval

	_, err = backoff.Retry(ctx, func() (struct{}, error) {
		return struct{}{}, p.sink.AppendRows(ctx, batch)
	}, backoff.WithBackOff(expo), backoff.WithMaxTries(p.maxTries))
	if err != nil {
		return fmt.Errorf("append %s after %d tries: %w", table, p.maxTries, err)
	}

	p.log.Info("table published",
		slog.String("table", table),
		slog.Int("rows", len(batch.Rows)))
	return nil
}
