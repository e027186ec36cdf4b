package registry

import (
	contracts "github.com/singnet/snet-ecosystem-contracts"
)

// Ecosystem returns the SingularityNET address book shipped with
// snet-ecosystem-contracts: Registry, MultiPartyEscrow and FetchToken.
// None of these are Lil Nouns contracts; the book only demonstrates the
// networks layout and must not back a webapp configuration.
func Ecosystem() (*Book, error) {
	return FromNetworks(map[string][]byte{
		"registry":         contracts.GetNetworks(contracts.Registry),
		"multiPartyEscrow": contracts.GetNetworks(contracts.MultiPartyEscrow),
		"fetchToken":       contracts.GetNetworks(contracts.FetchToken),
	})
}
