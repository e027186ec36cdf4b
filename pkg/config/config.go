// Package config resolves the runtime configuration of the webapp for the
// selected network: RPC endpoints, subgraph endpoints, feature flags and
// contract addresses. The result is computed once and never mutated.
package config

import (
	"time"

	"github.com/lilnounsdao/webapp-config/pkg/address"
	"github.com/lilnounsdao/webapp-config/pkg/network"
)

// NetworkSettings holds the non-address settings of one network.
type NetworkSettings struct {
	// JSONRPCURI is the HTTP JSON-RPC endpoint.
	JSONRPCURI string `json:"jsonRpcUri" yaml:"jsonRpcUri"`
	// WSRPCURI is the WebSocket JSON-RPC endpoint.
	WSRPCURI string `json:"wsRpcUri" yaml:"wsRpcUri"`
	// SubgraphAPIURI is the Lil Nouns subgraph endpoint.
	SubgraphAPIURI string `json:"subgraphApiUri" yaml:"subgraphApiUri"`
	// NounsDAOSubgraphAPIURI is the Nouns DAO subgraph endpoint.
	NounsDAOSubgraphAPIURI string `json:"nounsDAOSubgraphApiUri" yaml:"nounsDAOSubgraphApiUri"`
	// EnableHistory turns on auction history views.
	EnableHistory bool `json:"enableHistory" yaml:"enableHistory"`
	// NounsAPIURI is the base URL of the Nouns API, empty when not configured.
	NounsAPIURI string `json:"nounsApiUri" yaml:"nounsApiUri"`
	// EnableRollbar turns on error reporting.
	EnableRollbar bool `json:"enableRollbar" yaml:"enableRollbar"`
	// ZoraKey is the Zora API key, empty when not configured.
	ZoraKey string `json:"zoraKey" yaml:"zoraKey"`
}

// AppConfig is the resolved configuration for the active network. Values
// returned by Build and Load are shared and must be treated as read-only,
// including the Addresses map.
type AppConfig struct {
	ChainID   network.ID      `json:"chainId" yaml:"chainId"`
	App       NetworkSettings `json:"app" yaml:"app"`
	Addresses address.Set     `json:"addresses" yaml:"addresses"`
	// IsPreLaunch is passed through as the raw string, "false" by default.
	IsPreLaunch     string `json:"isPreLaunch" yaml:"isPreLaunch"`
	EtherscanAPIKey string `json:"etherscanApiKey" yaml:"etherscanApiKey"`

	registry address.RegistryOutcome
}

// RegistryOutcome reports whether the registry layer of Addresses came from
// the registry or was degraded to empty.
func (c *AppConfig) RegistryOutcome() address.RegistryOutcome {
	return c.registry
}

// Timeouts controls the deadlines of the optional endpoint probe.
// Zero values will be replaced by defaults in WithDefaults.
type Timeouts struct {
	Dial      time.Duration // connect to the RPC endpoint
	ChainRead time.Duration // eth_chainId, eth_getCode
}

// WithDefaults returns a copy of t with zero values replaced by defaults:
//
//	Dial:      5s
//	ChainRead: 12s
func (t Timeouts) WithDefaults() Timeouts {
	tt := t
	if tt.Dial == 0 {
		tt.Dial = 5 * time.Second
	}
	if tt.ChainRead == 0 {
		tt.ChainRead = 12 * time.Second
	}
	return tt
}
