package port

import "context"

// Batch is one ordered set of rows for a single table. Rows are appended in
// slice order; values are positional and match Columns.
type Batch struct {
	Table   string
	Columns []string
	Rows    [][]any
}

// DatasetSink persists generated batches. Implementations must append rows
// in the order given and may be called again with the same batch after a
// failure, so appends should tolerate retries.
type DatasetSink interface {
	// AppendRows persists one batch for one table.
	AppendRows(ctx context.Context, batch Batch) error
}
