// Package transport exposes the indexed auctions and transfers over HTTP.
package transport

import (
	"context"

	"github.com/goodnatureofminers/slotauction-indexer/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		FindAuctions(ctx context.Context, network model.Network) ([]model.Auction, error)
		FindAuction(ctx context.Context, network model.Network, id string) (model.Auction, error)
		FindTransfers(ctx context.Context, network model.Network, account string, limit uint32) ([]model.Transfer, error)
	}
)
