package chain

import (
	"strconv"
	"time"

	"github.com/goodnatureofminers/slotauction-indexer/internal/model"
)

// DefaultBlockTime is the nominal block production interval of both supported relay chains.
const DefaultBlockTime = 6 * time.Second

// Predict estimates the block at targetHeight from a known anchor block, assuming a constant
// DefaultBlockTime. The returned block has an empty hash.
func Predict(targetHeight, knownHeight uint32, knownTimestamp int64) model.BlockInfo {
	return predict(targetHeight, knownHeight, knownTimestamp, DefaultBlockTime)
}

// Predict estimates a block using the network block time.
func (p Parameters) Predict(targetHeight, knownHeight uint32, knownTimestamp int64) model.BlockInfo {
	blockTime := p.BlockTime
	if blockTime <= 0 {
		blockTime = DefaultBlockTime
	}
	return predict(targetHeight, knownHeight, knownTimestamp, blockTime)
}

func predict(targetHeight, knownHeight uint32, knownTimestamp int64, blockTime time.Duration) model.BlockInfo {
	// int64 keeps negative deltas and ~2.6e13 ms of offset well inside range.
	delta := int64(targetHeight) - int64(knownHeight)
	return model.BlockInfo{
		ID:        strconv.FormatUint(uint64(targetHeight), 10),
		Hash:      "",
		Height:    targetHeight,
		Timestamp: knownTimestamp + delta*blockTime.Milliseconds(),
	}
}
