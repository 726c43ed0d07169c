package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/slotauction-indexer/internal/model"
)

// UpsertAuctions writes a new version of every auction. The newest version per (network, id)
// wins on read.
func (r *Repository) UpsertAuctions(ctx context.Context, network model.Network, auctions []model.Auction) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("upsert_auctions", network, err, start)
	}()

	if len(auctions) == 0 {
		return nil
	}

	query := `
INSERT INTO auctions (` + auctionColumns + `,
	updated_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare auctions batch: %w", err)
	}

	updatedAt := time.Now().UTC()
	for _, a := range auctions {
		if a.Network != network {
			return fmt.Errorf("auction %s belongs to %s, not %s", a.ID, a.Network, network)
		}
		row, err := newAuctionRow(a)
		if err != nil {
			return err
		}
		if err = batch.Append(
			row.Network,
			row.ID,
			row.Index,
			row.Status,
			row.StartBlock,
			row.EndPeriodBlock,
			row.BiddingStartBlock,
			row.BiddingEndsBlock,
			row.OnboardStartBlock,
			row.OnboardEndBlock,
			row.Timestamp,
			updatedAt,
		); err != nil {
			return fmt.Errorf("append auction: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert auctions: %w", err)
	}
	return nil
}
