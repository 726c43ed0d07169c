// Package decoder normalizes runtime events whose shape changed across runtime upgrades.
//
// Every event carries the hash of its type signature in the runtime that emitted it. The
// decoder resolves that hash to a known Version and returns a version independent value, so
// consumers never branch on runtime versions themselves.
package decoder

import (
	"encoding/json"

	"github.com/goodnatureofminers/slotauction-indexer/internal/chain"
)

// Version tags a known event encoding by the runtime spec that introduced it.
type Version string

const (
	V1020 Version = "v1020"
	V1050 Version = "v1050"
	V9010 Version = "v9010"
	V9130 Version = "v9130"
	V9230 Version = "v9230"
)

type encoding[T any] struct {
	version Version
	decode  func(args json.RawMessage) (T, error)
}

// Decoder maps type hashes to encodings. It is immutable after New and safe for concurrent use.
type Decoder struct {
	auctionStarted map[string]encoding[AuctionStarted]
	auctionClosed  map[string]encoding[AuctionClosed]
	transfer       map[string]encoding[Transfer]
}

// New builds a Decoder with every encoding known for Polkadot and Kusama.
func New() *Decoder {
	return &Decoder{
		auctionStarted: map[string]encoding[AuctionStarted]{
			"ee14df8652ec18f0202c95706dac25953673d4834fcfe21e7d7559cb96975c06": {version: V9010, decode: decodeAuctionStartedV9010},
			"8b2d1722dc0088981b41be544b21195e4f399c63086aae153946e56fab444698": {version: V9230, decode: decodeAuctionStartedV9230},
		},
		auctionClosed: map[string]encoding[AuctionClosed]{
			"0a0f30b1ade5af5fade6413c605719d59be71340cf4884f65ee9858eb1c38f6c": {version: V9010, decode: decodeAuctionClosedV9010},
			"b43a4f04c143465b1befbba20a53ad22053012b22824f10dc981cf180e36e10d": {version: V9230, decode: decodeAuctionClosedV9230},
		},
		transfer: map[string]encoding[Transfer]{
			"72e6f0d399a72f77551d560f52df25d757e0643d0192b3bc837cbd91b6f36b27": {version: V1020, decode: decodeTransferV1020},
			"dad2bcdca357505fa3c7832085d0db53ce6f902bd9f5b52823ee8791d351872c": {version: V1050, decode: decodeTransferV1050},
			"0ffdf35c495114c2d42a8bf6c241483fd5334ca0198662e14480ad040f1e3a66": {version: V9130, decode: decodeTransferV9130},
		},
	}
}

// AuctionStarted normalizes an Auctions.AuctionStarted event.
func (d *Decoder) AuctionStarted(ev chain.Event, specVersion uint32) (AuctionStarted, error) {
	return decode(d.auctionStarted, chain.EventAuctionStarted, ev, specVersion)
}

// AuctionClosed normalizes an Auctions.AuctionClosed event.
func (d *Decoder) AuctionClosed(ev chain.Event, specVersion uint32) (AuctionClosed, error) {
	return decode(d.auctionClosed, chain.EventAuctionClosed, ev, specVersion)
}

// Transfer normalizes a Balances.Transfer event.
func (d *Decoder) Transfer(ev chain.Event, specVersion uint32) (Transfer, error) {
	return decode(d.transfer, chain.EventTransfer, ev, specVersion)
}

func decode[T any](table map[string]encoding[T], name string, ev chain.Event, specVersion uint32) (T, error) {
	var zero T
	enc, ok := table[ev.TypeHash]
	if !ok || ev.Name != name {
		return zero, &UnsupportedEncodingError{Event: ev.Name, TypeHash: ev.TypeHash, SpecVersion: specVersion}
	}
	v, err := enc.decode(ev.Args)
	if err != nil {
		return zero, &PayloadError{Event: name, Version: enc.version, Err: err}
	}
	return v, nil
}
