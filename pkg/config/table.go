package config

import (
	"fmt"

	"github.com/lilnounsdao/webapp-config/pkg/endpoint"
	"github.com/lilnounsdao/webapp-config/pkg/env"
	"github.com/lilnounsdao/webapp-config/pkg/network"
)

const subgraphBase = "https://api.thegraph.com/subgraphs/name/"

// SettingsFor returns the settings of id. Public networks take their RPC
// endpoints from the endpoint builder and their flags from s; the local
// Hardhat network is fully hardcoded. An unsupported id panics: callers
// obtain ids from network.Parse.
func SettingsFor(id network.ID, r env.Reader, s env.Settings) NetworkSettings {
	urls := endpoint.NewBuilder(r, s.InfuraProjectID)

	switch id {
	case network.Rinkeby:
		return NetworkSettings{
			JSONRPCURI:             urls.URL("rinkeby", endpoint.HTTP),
			WSRPCURI:               urls.URL("rinkeby", endpoint.WebSocket),
			SubgraphAPIURI:         subgraphBase + "lilnounsdao/lil-nouns-subgraph-rinkeby",
			NounsDAOSubgraphAPIURI: subgraphBase + "nounsdao/nouns-subgraph-rinkeby",
			EnableHistory:          bool(s.EnableHistory),
			NounsAPIURI:            env.Or(r, "RINKEBY_NOUNSAPI", ""),
			EnableRollbar:          bool(s.EnableRollbar),
			ZoraKey:                s.ZoraAPIKey,
		}
	case network.Mainnet:
		return NetworkSettings{
			JSONRPCURI:             urls.URL("mainnet", endpoint.HTTP),
			WSRPCURI:               urls.URL("mainnet", endpoint.WebSocket),
			SubgraphAPIURI:         subgraphBase + "lilnounsdao/lil-nouns-subgraph",
			NounsDAOSubgraphAPIURI: subgraphBase + "nounsdao/nouns-subgraph",
			EnableHistory:          bool(s.EnableHistory),
			NounsAPIURI:            env.Or(r, "MAINNET_NOUNSAPI", ""),
			EnableRollbar:          bool(s.EnableRollbar),
			ZoraKey:                s.ZoraAPIKey,
		}
	case network.Hardhat:
		return NetworkSettings{
			JSONRPCURI:             "http://localhost:8545",
			WSRPCURI:               "ws://localhost:8545",
			SubgraphAPIURI:         "",
			NounsDAOSubgraphAPIURI: "",
			EnableHistory:          false,
			NounsAPIURI:            "http://localhost:5001",
			EnableRollbar:          false,
			ZoraKey:                "",
		}
	}
	panic(fmt.Sprintf("config: no settings for %v", id))
}

// Table returns the settings of every supported network.
func Table(r env.Reader, s env.Settings) map[network.ID]NetworkSettings {
	out := make(map[network.ID]NetworkSettings, len(network.All()))
	for _, id := range network.All() {
		out[id] = SettingsFor(id, r, s)
	}
	return out
}
