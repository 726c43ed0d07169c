package auction

import (
	"sort"

	"github.com/goodnatureofminers/slotauction-indexer/internal/chain"
	"github.com/goodnatureofminers/slotauction-indexer/internal/model"
)

// WorkingSet holds the auctions of one batch keyed by index, together with the blocks observed
// in that batch. It is owned by a single batch and is not safe for concurrent use.
type WorkingSet struct {
	auctions map[uint32]*model.Auction
	observed map[uint32]model.BlockInfo
}

// NewWorkingSet seeds a working set with persisted auctions.
func NewWorkingSet(auctions []model.Auction) *WorkingSet {
	ws := &WorkingSet{
		auctions: make(map[uint32]*model.Auction, len(auctions)),
		observed: make(map[uint32]model.BlockInfo),
	}
	for i := range auctions {
		a := auctions[i]
		ws.auctions[a.Index] = &a
	}
	return ws
}

// Observe records a block of the batch so start events can reference it by height.
func (ws *WorkingSet) Observe(header chain.Header) {
	ws.observed[header.Height] = header.BlockInfo()
}

// ObservedBlock returns the observed block at height.
func (ws *WorkingSet) ObservedBlock(height uint32) (model.BlockInfo, bool) {
	b, ok := ws.observed[height]
	return b, ok
}

// Get returns a copy of the auction with the given index.
func (ws *WorkingSet) Get(index uint32) (model.Auction, bool) {
	a, ok := ws.auctions[index]
	if !ok {
		return model.Auction{}, false
	}
	return *a, true
}

// Len is the number of auctions in the set.
func (ws *WorkingSet) Len() int {
	return len(ws.auctions)
}

// Auctions returns every auction in the set ordered by index.
func (ws *WorkingSet) Auctions() []model.Auction {
	out := make([]model.Auction, 0, len(ws.auctions))
	for _, a := range ws.auctions {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}
