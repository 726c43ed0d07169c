// Package auction derives slot auction records from auction lifecycle events.
package auction

import (
	"fmt"

	"github.com/goodnatureofminers/slotauction-indexer/internal/chain"
	"github.com/goodnatureofminers/slotauction-indexer/internal/decoder"
	"github.com/goodnatureofminers/slotauction-indexer/internal/model"
	"github.com/goodnatureofminers/slotauction-indexer/pkg/safe"
	"go.uber.org/zap"
)

// ClosePolicy decides what happens to a close event for an auction that is not in the
// working set.
type ClosePolicy int

const (
	// LenientClose logs the close and skips it.
	LenientClose ClosePolicy = iota
	// StrictClose fails the batch with an UnknownAuctionError.
	StrictClose
)

// Transition outcomes reported to Metrics.
const (
	OutcomeStarted         = "started"
	OutcomeClosed          = "closed"
	OutcomeDuplicateStart  = "duplicate_start"
	OutcomeStartAfterClose = "start_after_close"
	OutcomeUnknownClose    = "unknown_close"
	OutcomeRepeatedClose   = "repeated_close"
)

// Option configures an Engine.
type Option func(*Engine)

// WithClosePolicy sets the unknown-close policy. LenientClose is the default.
func WithClosePolicy(policy ClosePolicy) Option {
	return func(e *Engine) {
		e.closePolicy = policy
	}
}

// WithMetrics attaches a transition observer.
func WithMetrics(metrics Metrics) Option {
	return func(e *Engine) {
		e.metrics = metrics
	}
}

// Milestones are the block heights derived from a start event.
type Milestones struct {
	BiddingStart uint32
	BiddingEnds  uint32
	OnboardStart uint32
	OnboardEnd   uint32
}

// Engine applies AuctionStarted and AuctionClosed events to a WorkingSet.
type Engine struct {
	params      chain.Parameters
	closePolicy ClosePolicy
	metrics     Metrics
	logger      *zap.Logger
}

// NewEngine builds an Engine for one network's parameters.
func NewEngine(params chain.Parameters, logger *zap.Logger, opts ...Option) *Engine {
	e := &Engine{
		params:      params,
		closePolicy: LenientClose,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Milestones computes bidding and onboarding heights for an auction started at height.
func (e *Engine) Milestones(height, leasePeriod uint32) (Milestones, error) {
	p := e.params
	biddingStart := uint64(height) + uint64(p.StartingPhaseBlocks)
	biddingEnds := biddingStart + uint64(p.EndingPeriodBlocks)
	onboardStart := uint64(leasePeriod)*uint64(p.SlotLeasePeriodBlocks) + uint64(p.SlotLeaseOffsetBlocks)
	onboardEnd := onboardStart + p.LeaseDurationBlocks()

	var (
		m   Milestones
		err error
	)
	if m.BiddingStart, err = safe.Uint32(biddingStart); err != nil {
		return Milestones{}, fmt.Errorf("bidding start: %w", err)
	}
	if m.BiddingEnds, err = safe.Uint32(biddingEnds); err != nil {
		return Milestones{}, fmt.Errorf("bidding ends: %w", err)
	}
	if m.OnboardStart, err = safe.Uint32(onboardStart); err != nil {
		return Milestones{}, fmt.Errorf("onboard start: %w", err)
	}
	if m.OnboardEnd, err = safe.Uint32(onboardEnd); err != nil {
		return Milestones{}, fmt.Errorf("onboard end: %w", err)
	}
	return m, nil
}

// Start creates the auction announced by ev in the block described by header. A start for an
// ongoing index replaces it; a start for a completed index is ignored.
func (e *Engine) Start(ws *WorkingSet, header chain.Header, ev decoder.AuctionStarted) error {
	startBlock, ok := ws.ObservedBlock(header.Height)
	if !ok {
		return &MissingStartBlockError{Height: header.Height}
	}
	prev, exists := ws.auctions[ev.AuctionIndex]
	if exists && prev.IsCompleted() {
		e.observe(OutcomeStartAfterClose)
		e.logger.Warn("auction already completed, ignoring start",
			zap.Error(&DuplicateStartWarning{
				Index:          ev.AuctionIndex,
				Height:         header.Height,
				PreviousHeight: prev.StartBlock.Height,
				PreviousStatus: string(prev.Status),
			}),
		)
		return nil
	}

	m, err := e.Milestones(header.Height, ev.LeasePeriod)
	if err != nil {
		return fmt.Errorf("auction %d milestones: %w", ev.AuctionIndex, err)
	}

	predict := func(height uint32) model.BlockInfo {
		return e.params.Predict(height, startBlock.Height, startBlock.Timestamp)
	}
	next := &model.Auction{
		ID:                model.AuctionID(ev.AuctionIndex),
		Index:             ev.AuctionIndex,
		Network:           e.params.Network,
		Status:            model.AuctionOngoing,
		StartBlock:        startBlock,
		EndPeriodBlock:    startBlock,
		BiddingStartBlock: predict(m.BiddingStart),
		BiddingEndsBlock:  predict(m.BiddingEnds),
		OnboardStartBlock: predict(m.OnboardStart),
		OnboardEndBlock:   predict(m.OnboardEnd),
		Timestamp:         model.Timestamp{Start: startBlock.Timestamp},
	}

	outcome := OutcomeStarted
	if exists {
		outcome = OutcomeDuplicateStart
		e.logger.Warn("duplicate auction start, overwriting",
			zap.Error(&DuplicateStartWarning{
				Index:          ev.AuctionIndex,
				Height:         header.Height,
				PreviousHeight: prev.StartBlock.Height,
				PreviousStatus: string(prev.Status),
			}),
		)
	}
	ws.auctions[ev.AuctionIndex] = next
	e.observe(outcome)

	e.logger.Debug("auction started",
		zap.Uint32("auction_index", ev.AuctionIndex),
		zap.Uint32("lease_period", ev.LeasePeriod),
		zap.Uint32("height", header.Height),
		zap.String("encoding", string(ev.Version)),
	)
	return nil
}

// Close completes the auction named by ev. Closing an already completed auction is a no-op so
// the first close timestamp is kept.
func (e *Engine) Close(ws *WorkingSet, header chain.Header, ev decoder.AuctionClosed) error {
	a, ok := ws.auctions[ev.AuctionIndex]
	if !ok {
		err := &UnknownAuctionError{Index: ev.AuctionIndex, Height: header.Height}
		if e.closePolicy == StrictClose {
			return err
		}
		e.observe(OutcomeUnknownClose)
		e.logger.Warn("skipping close of unknown auction", zap.Error(err))
		return nil
	}

	if a.IsCompleted() {
		e.observe(OutcomeRepeatedClose)
		e.logger.Warn("auction already completed, ignoring close",
			zap.Uint32("auction_index", ev.AuctionIndex),
			zap.Uint32("height", header.Height),
			zap.Int64("closed_at", a.Timestamp.End),
		)
		return nil
	}

	a.Status = model.AuctionCompleted
	a.Timestamp.End = header.Timestamp
	e.observe(OutcomeClosed)

	e.logger.Debug("auction closed",
		zap.Uint32("auction_index", ev.AuctionIndex),
		zap.Uint32("height", header.Height),
		zap.String("encoding", string(ev.Version)),
	)
	return nil
}

func (e *Engine) observe(outcome string) {
	if e.metrics == nil {
		return
	}
	e.metrics.ObserveTransition(outcome)
}
