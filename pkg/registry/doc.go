// Package registry provides contract address books that satisfy
// address.Registry.
//
// Two layouts are understood. The addresses.json document of the Nouns SDK
// maps chain ids to contract names:
//
//	{
//	  "1": {"nounsToken": "0x4b10701Bfd7BFEdc47d50562b76b436fbB5BdB3B"},
//	  "4": {"nounsToken": "0x..."}
//	}
//
// The "networks" layout of truffle-style artifacts and
// snet-ecosystem-contracts holds one payload per contract:
//
//	{
//	  "1":        {"address": "0x..."},
//	  "11155111": {"address": "0x..."}
//	}
//
// Keys are decimal chain ids. All payloads are decoded and validated up front,
// so Lookup is a pure map read that either returns a complete set or fails
// with ErrUnknownNetwork.
//
// # Sources
//
//	registry.LilNouns()             - Lil Nouns mainnet contracts, embedded in the binary
//	registry.FromAddressesFile(p)   - an SDK addresses.json on disk, any network
//	registry.Ecosystem()            - SingularityNET contracts from snet-ecosystem-contracts
//	registry.Func(fn)               - adapter for custom lookups and tests
//
// Ecosystem exercises the networks layout against a published artifact set.
// Its contracts belong to SingularityNET, not to the webapp, so it is not a
// usable address book for a Lil Nouns configuration.
//
// A contract that is listed for some networks but not for the requested one
// is returned as an explicitly absent (nil) entry. A network that no payload
// mentions is unknown.
package registry
