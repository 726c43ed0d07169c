package ingester

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/slotauction-indexer/internal/auction"
	"github.com/goodnatureofminers/slotauction-indexer/internal/chain"
	"github.com/goodnatureofminers/slotauction-indexer/internal/decoder"
	"github.com/goodnatureofminers/slotauction-indexer/internal/model"
	"github.com/goodnatureofminers/slotauction-indexer/internal/transfer"
	"go.uber.org/zap"
)

// batchProcessor applies one range of blocks and commits the result. Nothing is written unless
// every event of the range was applied.
type batchProcessor struct {
	source    BlockSource
	repo      ClickhouseRepository
	network   model.Network
	decoder   *decoder.Decoder
	engine    *auction.Engine
	projector *transfer.Projector
	metrics   AuctionIngesterMetrics
	logger    *zap.Logger
}

func (p *batchProcessor) Process(ctx context.Context, r BlockRange) error {
	blocks, err := p.source.Blocks(ctx, r.From, r.To)
	if err != nil {
		return fmt.Errorf("fetch blocks [%d, %d]: %w", r.From, r.To, err)
	}

	persisted, err := p.repo.FindAuctions(ctx, p.network)
	if err != nil {
		return fmt.Errorf("load auctions: %w", err)
	}
	ws := auction.NewWorkingSet(persisted)

	var transfers []model.Transfer
	for _, b := range blocks {
		ws.Observe(b.Header)
		for _, ev := range b.Events {
			t, err := p.apply(ws, b.Header, ev)
			if err != nil {
				return fmt.Errorf("block %d event %d %s: %w", b.Header.Height, ev.Index, ev.Name, err)
			}
			if t != nil {
				transfers = append(transfers, *t)
			}
		}
	}

	if err = p.repo.UpsertAuctions(ctx, p.network, ws.Auctions()); err != nil {
		return fmt.Errorf("save auctions: %w", err)
	}
	if err = p.repo.InsertTransfers(ctx, p.network, transfers); err != nil {
		return fmt.Errorf("save transfers: %w", err)
	}
	if err = p.repo.SaveProgress(ctx, p.network, r.To); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}

	p.metrics.ObserveTransfers(len(transfers))
	p.metrics.ObserveIndexedHeight(r.To)
	p.logger.Info("batch committed",
		zap.Uint32("from", r.From),
		zap.Uint32("to", r.To),
		zap.Int("blocks", len(blocks)),
		zap.Int("auctions", ws.Len()),
		zap.Int("transfers", len(transfers)),
	)
	return nil
}

func (p *batchProcessor) apply(ws *auction.WorkingSet, header chain.Header, ev chain.Event) (*model.Transfer, error) {
	switch ev.Name {
	case chain.EventAuctionStarted:
		started, err := p.decoder.AuctionStarted(ev, header.SpecVersion)
		if err != nil {
			return nil, err
		}
		return nil, p.engine.Start(ws, header, started)
	case chain.EventAuctionClosed:
		closed, err := p.decoder.AuctionClosed(ev, header.SpecVersion)
		if err != nil {
			return nil, err
		}
		return nil, p.engine.Close(ws, header, closed)
	case chain.EventTransfer:
		decoded, err := p.decoder.Transfer(ev, header.SpecVersion)
		if err != nil {
			return nil, err
		}
		t, err := p.projector.Project(header, ev, decoded)
		if err != nil {
			return nil, err
		}
		return &t, nil
	default:
		p.logger.Debug("ignoring event", zap.String("event", ev.Name), zap.Uint32("height", header.Height))
		return nil, nil
	}
}
