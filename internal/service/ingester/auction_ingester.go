package ingester

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/slotauction-indexer/internal/auction"
	"github.com/goodnatureofminers/slotauction-indexer/internal/chain"
	"github.com/goodnatureofminers/slotauction-indexer/internal/clock"
	"github.com/goodnatureofminers/slotauction-indexer/internal/decoder"
	"github.com/goodnatureofminers/slotauction-indexer/internal/model"
	"github.com/goodnatureofminers/slotauction-indexer/internal/transfer"
	"go.uber.org/zap"
)

// Config tunes the auction ingester.
type Config struct {
	StartHeight uint32
	BatchSize   uint32
	ClosePolicy auction.ClosePolicy
}

// AuctionIngesterService indexes auction lifecycle and transfer events of one network.
type AuctionIngesterService struct {
	logger            *zap.Logger
	network           model.Network
	metrics           AuctionIngesterMetrics
	sleep             func(context.Context, time.Duration) error
	sleepDuration     time.Duration
	idleSleepDuration time.Duration
	heightFetcher     HeightFetcher
	blockProcessor    BlockProcessor
}

// NewAuctionIngesterService builds an AuctionIngesterService with dependencies.
func NewAuctionIngesterService(
	repo ClickhouseRepository,
	source BlockSource,
	metrics AuctionIngesterMetrics,
	params chain.Parameters,
	cfg Config,
	logger *zap.Logger,
) (*AuctionIngesterService, error) {
	if repo == nil {
		return nil, errors.New("auction ingester repository is required")
	}
	if source == nil {
		return nil, errors.New("auction ingester block source is required")
	}
	if metrics == nil {
		return nil, errors.New("auction ingester metrics is required")
	}
	if cfg.BatchSize == 0 {
		cfg.BatchSize = defaultBatchSize
	}

	logger = logger.With(zap.String("network", string(params.Network)))
	engine := auction.NewEngine(params, logger.Named("engine"),
		auction.WithClosePolicy(cfg.ClosePolicy),
		auction.WithMetrics(metrics),
	)

	return &AuctionIngesterService{
		logger:            logger,
		network:           params.Network,
		metrics:           metrics,
		sleep:             clock.Sleep,
		sleepDuration:     sleepDuration,
		idleSleepDuration: idleSleepDuration,
		heightFetcher: &cursorHeightFetcher{
			source:      source,
			repository:  repo,
			network:     params.Network,
			startHeight: cfg.StartHeight,
			batchSize:   cfg.BatchSize,
		},
		blockProcessor: &batchProcessor{
			source:    source,
			repo:      repo,
			network:   params.Network,
			decoder:   decoder.New(),
			engine:    engine,
			projector: transfer.NewProjector(params),
			metrics:   metrics,
			logger:    logger.Named("blockProcessor"),
		},
	}, nil
}

// Run ingests batches until the context is canceled. A failed batch is retried from its first
// height after a pause.
func (s *AuctionIngesterService) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.run(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Warn("run iteration failed, backing off", zap.Error(err), zap.Duration("sleep", s.sleepDuration))
			if sleepErr := s.sleep(ctx, s.sleepDuration); sleepErr != nil {
				return sleepErr
			}
		}
	}
}

func (s *AuctionIngesterService) run(ctx context.Context) error {
	started := time.Now()
	r, ok, err := s.heightFetcher.Fetch(ctx)
	s.metrics.ObserveFetchRange(err, started)
	if err != nil {
		s.logger.Error("fetch block range failed", zap.Error(err))
		return err
	}

	if !ok {
		s.logger.Debug("caught up with archive head; sleeping", zap.Duration("sleep", s.idleSleepDuration))
		return s.sleep(ctx, s.idleSleepDuration)
	}

	s.logger.Info("processing blocks", zap.Uint32("from", r.From), zap.Uint32("to", r.To))
	started = time.Now()
	err = s.blockProcessor.Process(ctx, r)
	s.metrics.ObserveProcessBatch(err, r.Len(), started)
	return err
}
