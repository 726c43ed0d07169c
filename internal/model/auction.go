package model

import "strconv"

// AuctionStatus describes the lifecycle state of an auction.
type AuctionStatus string

const (
	// AuctionOngoing marks an auction that has started and not been closed.
	AuctionOngoing AuctionStatus = "Ongoing"
	// AuctionCompleted marks an auction whose close event has been observed.
	AuctionCompleted AuctionStatus = "Completed"
)

// Timestamp bounds the observed lifetime of an auction in milliseconds.
// End is zero until the auction is closed.
type Timestamp struct {
	Start int64 `json:"start,string"`
	End   int64 `json:"end,string"`
}

// IsClosed reports whether the end of the lifetime has been recorded.
func (t Timestamp) IsClosed() bool {
	return t.End != 0
}

// Auction is a parachain slot auction keyed by its on-chain index.
type Auction struct {
	ID      string
	Index   uint32
	Network Network
	Status  AuctionStatus

	// StartBlock is the observed block that emitted AuctionStarted.
	StartBlock BlockInfo
	// EndPeriodBlock currently mirrors StartBlock. Earlier indexer revisions stored the
	// bidding start block or a bare height here; which milestone is intended is still open.
	EndPeriodBlock BlockInfo

	BiddingStartBlock BlockInfo
	BiddingEndsBlock  BlockInfo
	OnboardStartBlock BlockInfo
	OnboardEndBlock   BlockInfo

	Timestamp Timestamp
}

// AuctionID renders the natural key of an auction index.
func AuctionID(index uint32) string {
	return strconv.FormatUint(uint64(index), 10)
}

// IsCompleted reports whether the auction reached its terminal state.
func (a Auction) IsCompleted() bool {
	return a.Status == AuctionCompleted
}
