// Package network defines the closed set of chains the webapp can target and
// the parsing of the chain-id selector read from the environment.
package network

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnsupported is returned when a chain id is well-formed but not one of
// the supported networks.
var ErrUnsupported = errors.New("unsupported chain id")

// ID is an EIP-155 chain id restricted to the supported networks. The zero
// value is not a valid ID; obtain one from the constants or Parse.
type ID uint64

const (
	// Mainnet is Ethereum mainnet and the default network.
	Mainnet ID = 1
	// Rinkeby is the Rinkeby test network.
	Rinkeby ID = 4
	// Hardhat is a local development node.
	Hardhat ID = 31337
)

// Default is the network selected when no chain id is configured.
const Default = Mainnet

// All returns every supported network in ascending chain-id order.
func All() []ID {
	return []ID{Mainnet, Rinkeby, Hardhat}
}

// Valid reports whether id is one of the supported networks.
func (id ID) Valid() bool {
	switch id {
	case Mainnet, Rinkeby, Hardhat:
		return true
	}
	return false
}

// Name returns the lowercase network name used in endpoint hostnames and
// override keys, or an empty string for an unsupported id.
func (id ID) Name() string {
	switch id {
	case Mainnet:
		return "mainnet"
	case Rinkeby:
		return "rinkeby"
	case Hardhat:
		return "hardhat"
	}
	return ""
}

// ChainID returns the decimal chain id, the key format used by contract
// address books.
func (id ID) ChainID() string {
	return strconv.FormatUint(uint64(id), 10)
}

func (id ID) String() string {
	if name := id.Name(); name != "" {
		return fmt.Sprintf("%s(%d)", name, uint64(id))
	}
	return fmt.Sprintf("unknown(%d)", uint64(id))
}

// Parse converts a decimal chain id into an ID. An empty string selects
// Default. Malformed input and chain ids outside the supported set are
// rejected instead of being coerced.
func Parse(raw string) (ID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Default, nil
	}

	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse chain id %q: %w", raw, err)
	}

	id := ID(n)
	if !id.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnsupported, n)
	}
	return id, nil
}
