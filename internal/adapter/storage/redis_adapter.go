package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rl1809/retail-datagen/internal/port"
)

const (
	streamKeyPrefix = "retail:"
	xaddChunkSize   = 1000
)

// RedisSink appends each table to its own Redis stream. The stream is
// deleted before appending so a retried batch does not duplicate rows.
type RedisSink struct {
	client *redis.Client
}

func NewRedisSink(client *redis.Client) *RedisSink {
	return &RedisSink{client: client}
}

func (r *RedisSink) AppendRows(ctx context.Context, batch port.Batch) error {
	stream := streamKeyPrefix + batch.Table

	if err := r.client.Del(ctx, stream).Err(); err != nil {
		return fmt.Errorf("reset stream %s: %w", stream, err)
	}

	for start := 0; start < len(batch.Rows); start += xaddChunkSize {
		end := start + xaddChunkSize
		if end > len(batch.Rows) {
			end = len(batch.Rows)
		}

		pipe := r.client.Pipeline()
		for _, row := range batch.Rows[start:end] {
			values := make(map[string]any, len(batch.Columns))
			for i, col := range batch.Columns {
				if s, ok := fieldValue(row[i]); ok {
					values[col] = s
				}
			}
			pipe.XAdd(ctx, &redis.XAddArgs{Stream: stream, Values: values})
		}
		if _, err := pipe.Exec(ctx); err != nil {
			return fmt.Errorf("append to stream %s: %w", stream, err)
		}
	}
	return nil
}

// fieldValue stringifies a cell for a stream entry. NULL cells are omitted
// from the entry entirely.
func fieldValue(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case time.Time:
		return formatTime(val), true
	case bool:
		if val {
			return "true", true
		}
		return "false", true
	default:
		return fmt.Sprint(val), true
	}
}
