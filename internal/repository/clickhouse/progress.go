package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/slotauction-indexer/internal/model"
)

// LastIndexedHeight returns the last committed height of a network. ok is false when nothing
// has been committed yet.
func (r *Repository) LastIndexedHeight(ctx context.Context, network model.Network) (height uint32, ok bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("last_indexed_height", network, err, start)
	}()

	const query = `
SELECT max(height), count()
FROM indexer_progress
WHERE network = ?`

	rows, err := r.conn.Query(ctx, query, string(network))
	if err != nil {
		return 0, false, fmt.Errorf("query indexed height: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		return 0, false, fmt.Errorf("indexed height not found")
	}
	var count uint64
	if err = rows.Scan(&height, &count); err != nil {
		return 0, false, fmt.Errorf("scan indexed height: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, false, fmt.Errorf("iterate indexed height: %w", err)
	}
	return height, count > 0, nil
}

// SaveProgress records height as the last committed block of a network.
func (r *Repository) SaveProgress(ctx context.Context, network model.Network, height uint32) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("save_progress", network, err, start)
	}()

	batch, err := r.conn.PrepareBatch(ctx, `
INSERT INTO indexer_progress (
	network,
	height,
	updated_at
) VALUES`)
	if err != nil {
		return fmt.Errorf("prepare progress batch: %w", err)
	}
	if err = batch.Append(string(network), height, time.Now().UTC()); err != nil {
		return fmt.Errorf("append progress: %w", err)
	}
	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert progress: %w", err)
	}
	return nil
}
