package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"github.com/lilnounsdao/webapp-config/pkg/address"
	"github.com/lilnounsdao/webapp-config/pkg/network"
)

// ErrUnknownNetwork is returned by Lookup when the book has no addresses for
// the requested network.
var ErrUnknownNetwork = errors.New("no contract addresses for network")

// networks mirrors the per-contract JSON payload (chain id -> deployment).
type networks map[string]struct {
	Address string `json:"address"`
}

// Book is an immutable, fully validated address book.
type Book struct {
	contracts []string
	byChain   map[string]map[string]common.Address
}

// FromNetworks decodes one networks payload per contract name. It fails on
// malformed JSON or on any address that is not a 20-byte hex string.
func FromNetworks(payloads map[string][]byte) (*Book, error) {
	b := newBook()

	for name, raw := range payloads {
		var nets networks
		if err := json.Unmarshal(raw, &nets); err != nil {
			return nil, fmt.Errorf("decode %s networks: %w", name, err)
		}

		for chainID, deployment := range nets {
			if err := b.add(chainID, name, deployment.Address); err != nil {
				return nil, err
			}
		}
		b.contracts = append(b.contracts, name)
	}

	sort.Strings(b.contracts)
	return b, nil
}

// FromAddresses decodes an addresses.json document as published by the
// Nouns SDK: chain id -> contract name -> address. The book knows every
// contract named on any chain.
func FromAddresses(raw []byte) (*Book, error) {
	var doc map[string]map[string]string
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode addresses: %w", err)
	}

	b := newBook()
	known := make(map[string]struct{})
	for chainID, byName := range doc {
		if b.byChain[chainID] == nil {
			b.byChain[chainID] = make(map[string]common.Address)
		}
		for name, hex := range byName {
			if err := b.add(chainID, name, hex); err != nil {
				return nil, err
			}
			known[name] = struct{}{}
		}
	}

	for name := range known {
		b.contracts = append(b.contracts, name)
	}
	sort.Strings(b.contracts)
	return b, nil
}

// FromAddressesFile is FromAddresses reading from path.
func FromAddressesFile(path string) (*Book, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read addresses: %w", err)
	}
	return FromAddresses(raw)
}

func newBook() *Book {
	return &Book{byChain: make(map[string]map[string]common.Address)}
}

func (b *Book) add(chainID, name, hex string) error {
	if !common.IsHexAddress(hex) {
		return fmt.Errorf("%s on chain %s: invalid address %q", name, chainID, hex)
	}
	if b.byChain[chainID] == nil {
		b.byChain[chainID] = make(map[string]common.Address)
	}
	b.byChain[chainID][name] = common.HexToAddress(hex)
	return nil
}

// MustFromNetworks is like FromNetworks but panics on error. It is meant for
// payloads compiled into the binary.
func MustFromNetworks(payloads map[string][]byte) *Book {
	b, err := FromNetworks(payloads)
	if err != nil {
		panic(err)
	}
	return b
}

// Contracts returns the contract names the book knows, sorted.
func (b *Book) Contracts() []string {
	return append([]string(nil), b.contracts...)
}

// Lookup returns every contract of the book for id. Contracts without a
// deployment on a known network are present with a nil address.
func (b *Book) Lookup(id network.ID) (address.Set, error) {
	deployed, ok := b.byChain[id.ChainID()]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownNetwork, id)
	}

	set := make(address.Set, len(b.contracts))
	for _, name := range b.contracts {
		addr, ok := deployed[name]
		if !ok {
			set[name] = nil
			continue
		}
		set[name] = &addr
	}
	return set, nil
}

// Func adapts a plain function to address.Registry.
type Func func(id network.ID) (address.Set, error)

// Lookup calls f(id).
func (f Func) Lookup(id network.ID) (address.Set, error) {
	return f(id)
}
