package decoder

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
)

const accountIDLength = 32

// Transfer is the normalized form of Balances.Transfer. Fee is nil for encodings that do not
// carry it.
type Transfer struct {
	Version Version
	From    []byte
	To      []byte
	Amount  *big.Int
	Fee     *big.Int
}

// (from, to, value, fees)
func decodeTransferV1020(args json.RawMessage) (Transfer, error) {
	tuple, err := positional(args, 4)
	if err != nil {
		return Transfer{}, err
	}
	t, err := transferFromTuple(V1020, tuple[:3])
	if err != nil {
		return Transfer{}, err
	}
	if t.Fee, err = parseBalance(tuple[3]); err != nil {
		return Transfer{}, fmt.Errorf("fees: %w", err)
	}
	return t, nil
}

// (from, to, value)
func decodeTransferV1050(args json.RawMessage) (Transfer, error) {
	tuple, err := positional(args, 3)
	if err != nil {
		return Transfer{}, err
	}
	return transferFromTuple(V1050, tuple)
}

func decodeTransferV9130(args json.RawMessage) (Transfer, error) {
	var rec struct {
		From   json.RawMessage `json:"from"`
		To     json.RawMessage `json:"to"`
		Amount json.RawMessage `json:"amount"`
	}
	if err := json.Unmarshal(args, &rec); err != nil {
		return Transfer{}, err
	}
	return transferFromTuple(V9130, []json.RawMessage{rec.From, rec.To, rec.Amount})
}

func positional(args json.RawMessage, n int) ([]json.RawMessage, error) {
	var tuple []json.RawMessage
	if err := json.Unmarshal(args, &tuple); err != nil {
		return nil, err
	}
	if len(tuple) != n {
		return nil, fmt.Errorf("expected %d positional args, got %d", n, len(tuple))
	}
	return tuple, nil
}

func transferFromTuple(version Version, tuple []json.RawMessage) (Transfer, error) {
	from, err := parseAccountID(tuple[0])
	if err != nil {
		return Transfer{}, fmt.Errorf("from: %w", err)
	}
	to, err := parseAccountID(tuple[1])
	if err != nil {
		return Transfer{}, fmt.Errorf("to: %w", err)
	}
	amount, err := parseBalance(tuple[2])
	if err != nil {
		return Transfer{}, fmt.Errorf("amount: %w", err)
	}
	return Transfer{Version: version, From: from, To: to, Amount: amount}, nil
}

func parseAccountID(raw json.RawMessage) ([]byte, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	id, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return nil, err
	}
	if len(id) != accountIDLength {
		return nil, fmt.Errorf("account id has %d bytes, want %d", len(id), accountIDLength)
	}
	return id, nil
}

// parseBalance accepts u128 balances rendered either as JSON strings or bare numbers.
func parseBalance(raw json.RawMessage) (*big.Int, error) {
	raw = bytes.Trim(bytes.TrimSpace(raw), `"`)
	v, ok := new(big.Int).SetString(string(raw), 10)
	if !ok {
		return nil, fmt.Errorf("invalid balance %q", raw)
	}
	if v.Sign() < 0 {
		return nil, fmt.Errorf("negative balance %s", v)
	}
	return v, nil
}
