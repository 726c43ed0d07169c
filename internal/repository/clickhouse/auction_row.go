package clickhouse

import (
	"encoding/json"
	"fmt"

	"github.com/goodnatureofminers/slotauction-indexer/internal/model"
)

const auctionColumns = `
	network,
	id,
	auction_index,
	status,
	start_block,
	end_period_block,
	bidding_start_block,
	bidding_ends_block,
	onboard_start_block,
	onboard_end_block,
	timestamp`

// auctionRow is the column layout of the auctions table. Block snapshots and the lifetime
// are stored as JSON documents.
type auctionRow struct {
	Network           string
	ID                string
	Index             uint32
	Status            string
	StartBlock        string
	EndPeriodBlock    string
	BiddingStartBlock string
	BiddingEndsBlock  string
	OnboardStartBlock string
	OnboardEndBlock   string
	Timestamp         string
}

func newAuctionRow(a model.Auction) (auctionRow, error) {
	row := auctionRow{
		Network: string(a.Network),
		ID:      a.ID,
		Index:   a.Index,
		Status:  string(a.Status),
	}
	fields := []struct {
		name string
		dst  *string
		v    any
	}{
		{"start_block", &row.StartBlock, a.StartBlock},
		{"end_period_block", &row.EndPeriodBlock, a.EndPeriodBlock},
		{"bidding_start_block", &row.BiddingStartBlock, a.BiddingStartBlock},
		{"bidding_ends_block", &row.BiddingEndsBlock, a.BiddingEndsBlock},
		{"onboard_start_block", &row.OnboardStartBlock, a.OnboardStartBlock},
		{"onboard_end_block", &row.OnboardEndBlock, a.OnboardEndBlock},
		{"timestamp", &row.Timestamp, a.Timestamp},
	}
	for _, f := range fields {
		raw, err := json.Marshal(f.v)
		if err != nil {
			return auctionRow{}, fmt.Errorf("encode %s of auction %s: %w", f.name, a.ID, err)
		}
		*f.dst = string(raw)
	}
	return row, nil
}

func (r auctionRow) auction() (model.Auction, error) {
	a := model.Auction{
		ID:      r.ID,
		Index:   r.Index,
		Network: model.Network(r.Network),
		Status:  model.AuctionStatus(r.Status),
	}
	fields := []struct {
		name string
		raw  string
		dst  any
	}{
		{"start_block", r.StartBlock, &a.StartBlock},
		{"end_period_block", r.EndPeriodBlock, &a.EndPeriodBlock},
		{"bidding_start_block", r.BiddingStartBlock, &a.BiddingStartBlock},
		{"bidding_ends_block", r.BiddingEndsBlock, &a.BiddingEndsBlock},
		{"onboard_start_block", r.OnboardStartBlock, &a.OnboardStartBlock},
		{"onboard_end_block", r.OnboardEndBlock, &a.OnboardEndBlock},
		{"timestamp", r.Timestamp, &a.Timestamp},
	}
	for _, f := range fields {
		if err := json.Unmarshal([]byte(f.raw), f.dst); err != nil {
			return model.Auction{}, fmt.Errorf("decode %s of auction %s: %w", f.name, r.ID, err)
		}
	}
	return a, nil
}

func (r *auctionRow) scanTargets() []any {
	return []any{
		&r.Network,
		&r.ID,
		&r.Index,
		&r.Status,
		&r.StartBlock,
		&r.EndPeriodBlock,
		&r.BiddingStartBlock,
		&r.BiddingEndsBlock,
		&r.OnboardStartBlock,
		&r.OnboardEndBlock,
		&r.Timestamp,
	}
}
