package ingester

import (
	"context"
	"time"

	"github.com/goodnatureofminers/slotauction-indexer/internal/chain"
	"github.com/goodnatureofminers/slotauction-indexer/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	HeightFetcher interface {
		Fetch(ctx context.Context) (BlockRange, bool, error)
	}
	BlockProcessor interface {
		Process(ctx context.Context, r BlockRange) error
	}
	BlockSource interface {
		Head(ctx context.Context) (uint32, error)
		Blocks(ctx context.Context, from, to uint32) ([]chain.Block, error)
	}
	AuctionIngesterMetrics interface {
		ObserveFetchRange(err error, started time.Time)
		ObserveProcessBatch(err error, blocks int, started time.Time)
		ObserveIndexedHeight(height uint32)
		ObserveTransfers(n int)
		ObserveTransition(outcome string)
	}
	ClickhouseRepository interface {
		FindAuctions(ctx context.Context, network model.Network) ([]model.Auction, error)
		UpsertAuctions(ctx context.Context, network model.Network, auctions []model.Auction) error
		InsertTransfers(ctx context.Context, network model.Network, transfers []model.Transfer) error
		LastIndexedHeight(ctx context.Context, network model.Network) (uint32, bool, error)
		SaveProgress(ctx context.Context, network model.Network, height uint32) error
	}
)

// BlockRange is an inclusive range of block heights.
type BlockRange struct {
	From uint32
	To   uint32
}

// Len is the number of heights in the range.
func (r BlockRange) Len() int {
	return int(uint64(r.To) - uint64(r.From) + 1)
}
