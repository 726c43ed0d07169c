// Package transfer turns decoded Balances.Transfer events into stored transfer rows.
package transfer

import (
	"fmt"
	"math/big"

	"github.com/goodnatureofminers/slotauction-indexer/internal/chain"
	"github.com/goodnatureofminers/slotauction-indexer/internal/decoder"
	"github.com/goodnatureofminers/slotauction-indexer/internal/model"
	"github.com/goodnatureofminers/slotauction-indexer/pkg/ss58"
)

// Projector renders transfers with network specific addresses.
type Projector struct {
	network model.Network
	prefix  uint16
}

// NewProjector builds a Projector for one network.
func NewProjector(params chain.Parameters) *Projector {
	return &Projector{network: params.Network, prefix: params.SS58Prefix}
}

// Project builds the transfer row for a decoded event. The fee carried by the event wins over
// the fee reported for the extrinsic.
func (p *Projector) Project(header chain.Header, ev chain.Event, t decoder.Transfer) (model.Transfer, error) {
	from, err := ss58.Encode(t.From, p.prefix)
	if err != nil {
		return model.Transfer{}, fmt.Errorf("encode sender: %w", err)
	}
	to, err := ss58.Encode(t.To, p.prefix)
	if err != nil {
		return model.Transfer{}, fmt.Errorf("encode recipient: %w", err)
	}

	out := model.Transfer{
		ID:          model.TransferID(header.Height, ev.Index),
		Network:     p.network,
		BlockHeight: header.Height,
		BlockHash:   header.Hash,
		Timestamp:   header.Timestamp,
		EventIndex:  ev.Index,
		From:        from,
		To:          to,
		Amount:      new(big.Int).Set(t.Amount),
		Fee:         t.Fee,
	}
	if ev.Extrinsic != nil {
		out.ExtrinsicHash = ev.Extrinsic.Hash
		if out.Fee == nil && ev.Extrinsic.Fee != "" {
			fee, ok := new(big.Int).SetString(ev.Extrinsic.Fee, 10)
			if !ok || fee.Sign() < 0 {
				return model.Transfer{}, fmt.Errorf("extrinsic %s: invalid fee %q", ev.Extrinsic.Hash, ev.Extrinsic.Fee)
			}
			out.Fee = fee
		}
	}
	if out.Fee == nil {
		out.Fee = new(big.Int)
	}
	return out, nil
}
