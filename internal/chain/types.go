package chain

import (
	"context"
	"encoding/json"

	"github.com/goodnatureofminers/slotauction-indexer/internal/model"
)

// Event names handled by the indexer.
const (
	EventAuctionStarted = "Auctions.AuctionStarted"
	EventAuctionClosed  = "Auctions.AuctionClosed"
	EventTransfer       = "Balances.Transfer"
)

// IndexedEvents lists the events requested from the block source.
var IndexedEvents = []string{EventAuctionStarted, EventAuctionClosed, EventTransfer}

// BlockSource delivers finalized blocks in ascending height order.
type BlockSource interface {
	Head(ctx context.Context) (uint32, error)
	Blocks(ctx context.Context, from, to uint32) ([]Block, error)
}

// Header is the part of a block header the indexer needs.
type Header struct {
	Height      uint32
	Hash        string
	Timestamp   int64
	SpecVersion uint32
}

// BlockInfo converts the header into an observed model.BlockInfo.
func (h Header) BlockInfo() model.BlockInfo {
	return model.NewBlockInfo(h.Height, h.Hash, h.Timestamp)
}

// Block is a header plus the selected events in emission order.
type Block struct {
	Header Header
	Events []Event
}

// Event is an emitted runtime event. TypeHash identifies the type signature of the event in
// the runtime that produced it; Args holds the decoded arguments as JSON.
type Event struct {
	Index     uint32
	Name      string
	TypeHash  string
	Args      json.RawMessage
	Extrinsic *Extrinsic
}

// Extrinsic is the call that emitted an event, when there is one.
type Extrinsic struct {
	Hash string
	Fee  string
}
