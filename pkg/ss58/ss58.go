// Package ss58 encodes Substrate account ids as SS58 addresses.
package ss58

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
	"golang.org/x/crypto/blake2b"
)

const (
	accountIDLength = 32
	checksumLength  = 2
	maxPrefix       = 16383
)

var checksumPreimage = []byte("SS58PRE")

var (
	// ErrInvalidAddress is returned for strings that are not SS58 addresses.
	ErrInvalidAddress = errors.New("invalid ss58 address")
	// ErrChecksumMismatch is returned when the embedded checksum does not match the payload.
	ErrChecksumMismatch = errors.New("ss58 checksum mismatch")
)

// Encode renders a 32 byte account id for the network prefix.
func Encode(accountID []byte, prefix uint16) (string, error) {
	if len(accountID) != accountIDLength {
		return "", fmt.Errorf("account id has %d bytes, want %d", len(accountID), accountIDLength)
	}
	if prefix > maxPrefix {
		return "", fmt.Errorf("prefix %d out of range", prefix)
	}

	payload := make([]byte, 0, 2+accountIDLength+checksumLength)
	payload = append(payload, prefixBytes(prefix)...)
	payload = append(payload, accountID...)
	payload = append(payload, checksum(payload)...)
	return base58.Encode(payload), nil
}

// Decode returns the network prefix and account id of an address.
func Decode(address string) (uint16, []byte, error) {
	raw := base58.Decode(address)
	if len(raw) == 0 {
		return 0, nil, ErrInvalidAddress
	}

	var (
		prefix    uint16
		prefixLen int
	)
	switch {
	case raw[0] < 64:
		prefix, prefixLen = uint16(raw[0]), 1
	case raw[0] < 128 && len(raw) > 1:
		lower := (raw[0]<<2)&0xfc | raw[1]>>6
		upper := raw[1] & 0x3f
		prefix, prefixLen = uint16(lower)|uint16(upper)<<8, 2
	default:
		return 0, nil, ErrInvalidAddress
	}

	if len(raw) != prefixLen+accountIDLength+checksumLength {
		return 0, nil, ErrInvalidAddress
	}
	body := raw[:len(raw)-checksumLength]
	if !bytes.Equal(checksum(body), raw[len(body):]) {
		return 0, nil, ErrChecksumMismatch
	}
	return prefix, append([]byte(nil), body[prefixLen:]...), nil
}

func prefixBytes(prefix uint16) []byte {
	if prefix < 64 {
		return []byte{byte(prefix)}
	}
	first := byte((prefix&0xfc)>>2) | 0x40
	second := byte(prefix>>8) | byte(prefix&0x03)<<6
	return []byte{first, second}
}

func checksum(payload []byte) []byte {
	h := blake2b.Sum512(append(append([]byte{}, checksumPreimage...), payload...))
	return h[:checksumLength]
}
