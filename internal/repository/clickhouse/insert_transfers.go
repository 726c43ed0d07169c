package clickhouse

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/goodnatureofminers/slotauction-indexer/internal/model"
)

const transferColumns = `
	network,
	id,
	block_height,
	block_hash,
	timestamp,
	event_index,
	extrinsic_hash,
	sender,
	recipient,
	amount,
	fee`

// InsertTransfers stores transfer rows. Rows are keyed by (network, id) so replaying a batch
// does not duplicate them.
func (r *Repository) InsertTransfers(ctx context.Context, network model.Network, transfers []model.Transfer) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_transfers", network, err, start)
	}()

	if len(transfers) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, `
INSERT INTO transfers (`+transferColumns+`
) VALUES`)
	if err != nil {
		return fmt.Errorf("prepare transfers batch: %w", err)
	}

	for _, t := range transfers {
		if err = batch.Append(
			string(t.Network),
			t.ID,
			t.BlockHeight,
			t.BlockHash,
			t.Timestamp,
			t.EventIndex,
			t.ExtrinsicHash,
			t.From,
			t.To,
			orZero(t.Amount),
			orZero(t.Fee),
		); err != nil {
			return fmt.Errorf("append transfer %s: %w", t.ID, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transfers: %w", err)
	}
	return nil
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}
