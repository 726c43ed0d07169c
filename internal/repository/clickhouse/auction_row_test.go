package clickhouse

import (
	"testing"

	"github.com/goodnatureofminers/slotauction-indexer/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAuction() model.Auction {
	start := model.NewBlockInfo(7_914_237, "0xstart", 1_000_000_000_000)
	return model.Auction{
		ID:                "12",
		Index:             12,
		Network:           model.Kusama,
		Status:            model.AuctionCompleted,
		StartBlock:        start,
		EndPeriodBlock:    start,
		BiddingStartBlock: model.BlockInfo{ID: "7941237", Height: 7_941_237, Timestamp: 1_000_162_000_000},
		BiddingEndsBlock:  model.BlockInfo{ID: "8013237", Height: 8_013_237, Timestamp: 1_000_594_000_000},
		OnboardStartBlock: model.BlockInfo{ID: "604800", Height: 604_800, Timestamp: 956_143_378_000},
		OnboardEndBlock:   model.BlockInfo{ID: "5443200", Height: 5_443_200, Timestamp: 985_173_778_000},
		Timestamp:         model.Timestamp{Start: 1_000_000_000_000, End: 1_000_600_000_000},
	}
}

func TestAuctionRow_RoundTrip(t *testing.T) {
	want := sampleAuction()

	row, err := newAuctionRow(want)
	require.NoError(t, err)
	assert.Equal(t, "kusama", row.Network)
	assert.Equal(t, "Completed", row.Status)
	assert.JSONEq(t, `{"id":"7914237","hash":"0xstart","height":7914237,"timestamp":"1000000000000"}`, row.StartBlock)
	assert.JSONEq(t, `{"start":"1000000000000","end":"1000600000000"}`, row.Timestamp)

	got, err := row.auction()
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.True(t, got.OnboardEndBlock.IsPredicted())
}

func TestAuctionRow_DecodeError(t *testing.T) {
	row, err := newAuctionRow(sampleAuction())
	require.NoError(t, err)
	row.BiddingEndsBlock = "{not json"

	_, err = row.auction()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bidding_ends_block")
}

func TestOrZero(t *testing.T) {
	assert.Equal(t, 0, orZero(nil).Sign())
}
