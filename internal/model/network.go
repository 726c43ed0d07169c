// Package model defines domain models for relay chain auction indexing.
package model

import "fmt"

// Network identifies a supported relay chain.
type Network string

const (
	Polkadot Network = "polkadot"
	Kusama   Network = "kusama"
)

// ParseNetwork validates a network name coming from configuration.
func ParseNetwork(s string) (Network, error) {
	switch n := Network(s); n {
	case Polkadot, Kusama:
		return n, nil
	default:
		return "", fmt.Errorf("unsupported network %q", s)
	}
}

// UnmarshalFlag lets go-flags parse the network directly into config structs.
func (n *Network) UnmarshalFlag(value string) error {
	parsed, err := ParseNetwork(value)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
