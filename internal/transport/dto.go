package transport

import (
	"github.com/goodnatureofminers/slotauction-indexer/internal/model"
)

type auctionResponse struct {
	ID                string              `json:"id"`
	Index             uint32              `json:"index"`
	Network           model.Network       `json:"network"`
	Status            model.AuctionStatus `json:"status"`
	StartBlock        model.BlockInfo     `json:"startBlock"`
	EndPeriodBlock    model.BlockInfo     `json:"endPeriodBlock"`
	BiddingStartBlock model.BlockInfo     `json:"biddingStartBlock"`
	BiddingEndsBlock  model.BlockInfo     `json:"biddingEndsBlock"`
	OnboardStartBlock model.BlockInfo     `json:"onboardStartBlock"`
	OnboardEndBlock   model.BlockInfo     `json:"onboardEndBlock"`
	Timestamp         model.Timestamp     `json:"timestamp"`
}

type auctionsResponse struct {
	Auctions []auctionResponse `json:"auctions"`
}

type transferResponse struct {
	ID            string `json:"id"`
	BlockHeight   uint32 `json:"blockHeight"`
	BlockHash     string `json:"blockHash"`
	Timestamp     int64  `json:"timestamp,string"`
	EventIndex    uint32 `json:"eventIndex"`
	ExtrinsicHash string `json:"extrinsicHash,omitempty"`
	From          string `json:"from"`
	To            string `json:"to"`
	Amount        string `json:"amount"`
	Fee           string `json:"fee"`
}

type transfersResponse struct {
	Transfers []transferResponse `json:"transfers"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status string `json:"status"`
}

func newAuctionResponse(a model.Auction) auctionResponse {
	return auctionResponse{
		ID:                a.ID,
		Index:             a.Index,
		Network:           a.Network,
		Status:            a.Status,
		StartBlock:        a.StartBlock,
		EndPeriodBlock:    a.EndPeriodBlock,
		BiddingStartBlock: a.BiddingStartBlock,
		BiddingEndsBlock:  a.BiddingEndsBlock,
		OnboardStartBlock: a.OnboardStartBlock,
		OnboardEndBlock:   a.OnboardEndBlock,
		Timestamp:         a.Timestamp,
	}
}

func newTransferResponse(t model.Transfer) transferResponse {
	resp := transferResponse{
		ID:            t.ID,
		BlockHeight:   t.BlockHeight,
		BlockHash:     t.BlockHash,
		Timestamp:     t.Timestamp,
		EventIndex:    t.EventIndex,
		ExtrinsicHash: t.ExtrinsicHash,
		From:          t.From,
		To:            t.To,
		Amount:        "0",
		Fee:           "0",
	}
	if t.Amount != nil {
		resp.Amount = t.Amount.String()
	}
	if t.Fee != nil {
		resp.Fee = t.Fee.String()
	}
	return resp
}
