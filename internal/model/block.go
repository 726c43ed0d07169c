package model

import "strconv"

// BlockInfo is an immutable snapshot of a relay chain block.
// Blocks synthesized by the time predictor carry an empty Hash.
type BlockInfo struct {
	ID        string `json:"id"`
	Hash      string `json:"hash"`
	Height    uint32 `json:"height"`
	Timestamp int64  `json:"timestamp,string"`
}

// NewBlockInfo builds an observed BlockInfo keyed by its height.
func NewBlockInfo(height uint32, hash string, timestamp int64) BlockInfo {
	return BlockInfo{
		ID:        strconv.FormatUint(uint64(height), 10),
		Hash:      hash,
		Height:    height,
		Timestamp: timestamp,
	}
}

// IsPredicted reports whether the block was computed rather than observed.
func (b BlockInfo) IsPredicted() bool {
	return b.Hash == ""
}
