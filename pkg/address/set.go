package address

import (
	"encoding/json"
	"sort"

	"github.com/ethereum/go-ethereum/common"
)

// Logical contract names. The registry layer owns the Nouns protocol names;
// the overlay layer owns the names the webapp adds itself.
const (
	NounsToken                  = "nounsToken"
	NounsSeeder                 = "nounsSeeder"
	NounsDescriptor             = "nounsDescriptor"
	NFTDescriptor               = "nftDescriptor"
	NounsAuctionHouse           = "nounsAuctionHouse"
	NounsAuctionHouseProxy      = "nounsAuctionHouseProxy"
	NounsAuctionHouseProxyAdmin = "nounsAuctionHouseProxyAdmin"
	NounsDAOExecutor            = "nounsDaoExecutor"
	NounsDAOProxy               = "nounsDAOProxy"
	NounsDAOLogicV1             = "nounsDAOLogicV1"

	LidoToken = "lidoToken"
)

// Set maps a logical contract name to its address. A nil value means the
// contract is known but not deployed on the network; a missing key means
// the name is not known at all.
type Set map[string]*common.Address

// Get returns the address for name. ok is false when the name is missing
// or explicitly absent.
func (s Set) Get(name string) (common.Address, bool) {
	addr := s[name]
	if addr == nil {
		return common.Address{}, false
	}
	return *addr, true
}

// Has reports whether name has a deployed address.
func (s Set) Has(name string) bool {
	_, ok := s.Get(name)
	return ok
}

// LidoToken returns the stETH token address, or nil when it is absent.
func (s Set) LidoToken() *common.Address {
	return s[LidoToken]
}

// Names returns all keys, including explicitly absent ones, sorted.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a copy whose addresses do not alias s.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for name, addr := range s {
		if addr == nil {
			out[name] = nil
			continue
		}
		cp := *addr
		out[name] = &cp
	}
	return out
}

// hexMap renders the set with EIP-55 checksummed addresses and nil for
// absent entries.
func (s Set) hexMap() map[string]*string {
	out := make(map[string]*string, len(s))
	for name, addr := range s {
		if addr == nil {
			out[name] = nil
			continue
		}
		h := addr.Hex()
		out[name] = &h
	}
	return out
}

// MarshalJSON encodes absent entries as null.
func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.hexMap())
}

// MarshalYAML implements yaml.Marshaler.
func (s Set) MarshalYAML() (any, error) {
	return s.hexMap(), nil
}

func ptr(hex string) *common.Address {
	addr := common.HexToAddress(hex)
	return &addr
}
