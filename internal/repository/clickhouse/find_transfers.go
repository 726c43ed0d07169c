package clickhouse

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/goodnatureofminers/slotauction-indexer/internal/model"
)

// FindTransfers returns the newest transfers of a network, optionally restricted to those sent
// or received by account.
func (r *Repository) FindTransfers(ctx context.Context, network model.Network, account string, limit uint32) (_ []model.Transfer, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("find_transfers", network, err, start)
	}()

	query := `
SELECT` + transferColumns + `
FROM transfers FINAL
WHERE network = ? AND (? = '' OR sender = ? OR recipient = ?)
ORDER BY block_height DESC, event_index DESC
LIMIT ?`

	rows, err := r.conn.Query(ctx, query, string(network), account, account, account, limit)
	if err != nil {
		return nil, fmt.Errorf("query transfers: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var transfers []model.Transfer
	for rows.Next() {
		var (
			t          model.Transfer
			rowNetwork string
			amount     big.Int
			fee        big.Int
		)
		if err = rows.Scan(
			&rowNetwork,
			&t.ID,
			&t.BlockHeight,
			&t.BlockHash,
			&t.Timestamp,
			&t.EventIndex,
			&t.ExtrinsicHash,
			&t.From,
			&t.To,
			&amount,
			&fee,
		); err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		t.Network = model.Network(rowNetwork)
		t.Amount = &amount
		t.Fee = &fee
		transfers = append(transfers, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transfers: %w", err)
	}
	return transfers, nil
}
