// Package config provides the resolved runtime configuration of the Lil
// Nouns webapp.
//
// A configuration is resolved for exactly one network, selected by the
// CHAIN_ID override and defaulting to mainnet. It contains the endpoints and
// feature flags of that network (NetworkSettings), the contract addresses
// (address.Set) and a couple of pass-through values.
//
// # Basic Usage
//
// Most programs resolve the configuration once at startup, as the first
// statement of main:
//
//	func main() {
//		cfg := config.MustLoad()
//		fmt.Println(cfg.App.JSONRPCURI)
//	}
//
// Load and MustLoad compute the value on the first call and return the same
// pointer afterwards. Options given to any later call have no effect; they
// are reported in a debug log line. Build always computes a fresh value and is what tests
// and tools use:
//
//	snap, _ := env.FromOS("REACT_APP_", ".env")
//	cfg, err := config.Build(config.WithEnv(snap))
//
// # Environment
//
// All names are read with the snapshot prefix (REACT_APP_ by default):
//
//	CHAIN_ID           1 (mainnet), 4 (rinkeby) or 31337 (hardhat)
//	INFURA_PROJECT_ID  credential for the default RPC endpoints
//	MAINNET_JSONRPC    HTTP RPC override, one per network
//	MAINNET_WSRPC      WebSocket RPC override, one per network
//	MAINNET_NOUNSAPI   Nouns API base URL, one per network
//	ENABLE_HISTORY     "true" enables auction history
//	ENABLE_ROLLBAR     "true" enables error reporting
//	IS_PRELAUNCH       passed through as a string, "false" by default
//	ETHERSCAN_API_KEY  passed through
//	ADDRESSES_FILE     SDK addresses.json replacing the embedded address book
//
// ZORA_API_KEY is read without the prefix.
//
// # Networks
//
// The settings of each network come from an exhaustive switch in
// SettingsFor. Public networks use the endpoint builder (override first,
// then https://{network}.infura.io/v3/{credential}); the hardhat network is
// hardcoded to localhost and ignores the environment.
//
// # Addresses
//
// Addresses are the union of the registry layer and the webapp overlay
// (lidoToken). The registry layer is the embedded Lil Nouns mainnet book
// unless ADDRESSES_FILE or WithRegistry names another one. When the registry
// has no entry for the network, or the file cannot be read, the registry
// layer is empty and RegistryOutcome reports address.RegistryAbsorbed; Build
// does not fail.
//
// # Errors
//
// Build fails only when CHAIN_ID is malformed or not a supported network
// (errors.Is(err, network.ErrUnsupported)), or when the environment cannot
// be decoded.
//
// # Thread Safety
//
// An AppConfig is never mutated after Build returns and may be shared
// freely. Treat the Addresses map as read-only.
package config
