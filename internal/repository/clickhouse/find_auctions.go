package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/goodnatureofminers/slotauction-indexer/internal/model"
)

// FindAuctions returns the latest version of every auction of a network ordered by index.
func (r *Repository) FindAuctions(ctx context.Context, network model.Network) (_ []model.Auction, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("find_auctions", network, err, start)
	}()

	query := `
SELECT` + auctionColumns + `
FROM auctions FINAL
WHERE network = ?
ORDER BY auction_index`

	rows, err := r.conn.Query(ctx, query, string(network))
	if err != nil {
		return nil, fmt.Errorf("query auctions: %w", err)
	}
	return scanAuctions(rows)
}

// FindAuction returns one auction by id or ErrNotFound.
func (r *Repository) FindAuction(ctx context.Context, network model.Network, id string) (_ model.Auction, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("find_auction", network, err, start)
	}()

	query := `
SELECT` + auctionColumns + `
FROM auctions FINAL
WHERE network = ? AND id = ?`

	rows, err := r.conn.Query(ctx, query, string(network), id)
	if err != nil {
		return model.Auction{}, fmt.Errorf("query auction: %w", err)
	}
	auctions, err := scanAuctions(rows)
	if err != nil {
		return model.Auction{}, err
	}
	if len(auctions) == 0 {
		return model.Auction{}, fmt.Errorf("auction %s: %w", id, ErrNotFound)
	}
	return auctions[0], nil
}

func scanAuctions(rows driver.Rows) (_ []model.Auction, err error) {
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var auctions []model.Auction
	for rows.Next() {
		var row auctionRow
		if err = rows.Scan(row.scanTargets()...); err != nil {
			return nil, fmt.Errorf("scan auction: %w", err)
		}
		a, err := row.auction()
		if err != nil {
			return nil, err
		}
		auctions = append(auctions, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate auctions: %w", err)
	}
	return auctions, nil
}
