package model

import (
	"fmt"
	"math/big"
)

// Transfer represents a Balances.Transfer event.
type Transfer struct {
	ID            string
	Network       Network
	BlockHeight   uint32
	BlockHash     string
	Timestamp     int64
	EventIndex    uint32
	ExtrinsicHash string
	From          string
	To            string
	Amount        *big.Int
	Fee           *big.Int
}

// TransferID builds a sortable key from the block height and the event position.
func TransferID(height, eventIndex uint32) string {
	return fmt.Sprintf("%010d-%06d", height, eventIndex)
}
