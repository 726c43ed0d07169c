package decoder

import (
	"encoding/json"
	"fmt"
)

// AuctionStarted is the normalized form of Auctions.AuctionStarted.
// The ending block carried by every encoding is not used downstream and is dropped.
type AuctionStarted struct {
	Version      Version
	AuctionIndex uint32
	LeasePeriod  uint32
}

// AuctionClosed is the normalized form of Auctions.AuctionClosed.
type AuctionClosed struct {
	Version      Version
	AuctionIndex uint32
}

// [auction_index, lease_period, ending]
func decodeAuctionStartedV9010(args json.RawMessage) (AuctionStarted, error) {
	var tuple []uint32
	if err := json.Unmarshal(args, &tuple); err != nil {
		return AuctionStarted{}, err
	}
	if len(tuple) != 3 {
		return AuctionStarted{}, fmt.Errorf("expected 3 positional args, got %d", len(tuple))
	}
	return AuctionStarted{Version: V9010, AuctionIndex: tuple[0], LeasePeriod: tuple[1]}, nil
}

func decodeAuctionStartedV9230(args json.RawMessage) (AuctionStarted, error) {
	var rec struct {
		AuctionIndex *uint32 `json:"auctionIndex"`
		LeasePeriod  *uint32 `json:"leasePeriod"`
		Ending       *uint32 `json:"ending"`
	}
	if err := json.Unmarshal(args, &rec); err != nil {
		return AuctionStarted{}, err
	}
	if rec.AuctionIndex == nil || rec.LeasePeriod == nil {
		return AuctionStarted{}, fmt.Errorf("missing auctionIndex or leasePeriod")
	}
	return AuctionStarted{Version: V9230, AuctionIndex: *rec.AuctionIndex, LeasePeriod: *rec.LeasePeriod}, nil
}

func decodeAuctionClosedV9010(args json.RawMessage) (AuctionClosed, error) {
	var index *uint32
	if err := json.Unmarshal(args, &index); err != nil {
		return AuctionClosed{}, err
	}
	if index == nil {
		return AuctionClosed{}, fmt.Errorf("missing auction index")
	}
	return AuctionClosed{Version: V9010, AuctionIndex: *index}, nil
}

func decodeAuctionClosedV9230(args json.RawMessage) (AuctionClosed, error) {
	var rec struct {
		AuctionIndex *uint32 `json:"auctionIndex"`
	}
	if err := json.Unmarshal(args, &rec); err != nil {
		return AuctionClosed{}, err
	}
	if rec.AuctionIndex == nil {
		return AuctionClosed{}, fmt.Errorf("missing auctionIndex")
	}
	return AuctionClosed{Version: V9230, AuctionIndex: *rec.AuctionIndex}, nil
}
