// Package chain holds relay chain constants, block time prediction and the block stream types
// consumed by the indexer.
package chain

import (
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/slotauction-indexer/internal/model"
)

// ErrUnknownNetwork is returned when no parameter set exists for a network.
var ErrUnknownNetwork = errors.New("unknown network")

const day = 24 * time.Hour

// Parameters are the auction constants of one relay chain. The value is selected once at
// startup and passed to every component that needs it.
type Parameters struct {
	Network               model.Network
	SlotLeasePeriodBlocks uint32
	SlotLeaseOffsetBlocks uint32
	LeasePeriodsPerSlot   uint32
	WeeksPerLeasePeriod   uint32
	StartingPhaseBlocks   uint32
	EndingPeriodBlocks    uint32
	BlockTime             time.Duration
	SS58Prefix            uint16
}

// ParametersFor returns the parameter set of a supported network.
func ParametersFor(network model.Network) (Parameters, error) {
	switch network {
	case model.Polkadot:
		return Parameters{
			Network:               model.Polkadot,
			SlotLeasePeriodBlocks: 1_209_600,
			SlotLeaseOffsetBlocks: 921_600,
			LeasePeriodsPerSlot:   8,
			WeeksPerLeasePeriod:   12,
			StartingPhaseBlocks:   27_000,
			EndingPeriodBlocks:    72_000,
			BlockTime:             6 * time.Second,
			SS58Prefix:            0,
		}, nil
	case model.Kusama:
		// Kusama indexers have used 72,000 and 0 as the lease offset depending on the
		// runtime era being indexed; 0 matches the current lease schedule.
		return Parameters{
			Network:               model.Kusama,
			SlotLeasePeriodBlocks: 604_800,
			SlotLeaseOffsetBlocks: 0,
			LeasePeriodsPerSlot:   8,
			WeeksPerLeasePeriod:   6,
			StartingPhaseBlocks:   27_000,
			EndingPeriodBlocks:    72_000,
			BlockTime:             6 * time.Second,
			SS58Prefix:            2,
		}, nil
	default:
		return Parameters{}, fmt.Errorf("%w: %q", ErrUnknownNetwork, network)
	}
}

// WithLeaseOffset returns a copy of p with the lease offset replaced.
func (p Parameters) WithLeaseOffset(offset uint32) Parameters {
	p.SlotLeaseOffsetBlocks = offset
	return p
}

// BlocksPerDay is the nominal number of blocks produced per day.
func (p Parameters) BlocksPerDay() uint64 {
	return uint64(day / p.BlockTime)
}

// DaysToBlocks converts a number of days into nominal block count.
func (p Parameters) DaysToBlocks(days uint64) uint64 {
	return days * p.BlocksPerDay()
}

// LeaseDurationBlocks is the length of a full slot lease in blocks.
func (p Parameters) LeaseDurationBlocks() uint64 {
	days := uint64(p.LeasePeriodsPerSlot) * uint64(p.WeeksPerLeasePeriod) * 7
	return p.DaysToBlocks(days)
}
