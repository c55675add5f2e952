package storage

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rl1809/retail-datagen/internal/port"
)

// CSVSink writes each table to <dir>/<table>.csv with a header row. Files
// are rewritten whole, so a retried append replaces the previous attempt
// instead of duplicating rows.
type CSVSink struct {
	dir string
}

func NewCSVSink(dir string) (*CSVSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &CSVSink{dir: dir}, nil
}

func (c *CSVSink) AppendRows(ctx context.Context, batch port.Batch) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := filepath.Join(c.dir, batch.Table+".csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(batch.Columns); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}

	record := make([]string, len(batch.Columns))
	for _, row := range batch.Rows {
		for i, v := range row {
			record[i] = cellValue(v)
		}
		if err := w.Write(record); err != nil {
			f.Close()
			return fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return f.Close()
}

// cellValue renders one cell; NULL becomes the empty cell.
func cellValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		return formatTime(val)
	default:
		return fmt.Sprint(val)
	}
}

// formatTime keeps date columns as plain dates and timestamp columns in
// second precision.
func formatTime(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format("2006-01-02 15:04:05")
}
