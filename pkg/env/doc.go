// Package env reads configuration overrides from the process environment.
//
// A Snapshot is taken once, eagerly, and every later lookup is served from
// it, so the resolved configuration cannot drift if the environment changes
// while the process runs.
//
// # Naming
//
// Every snapshot carries a name prefix. Frontends built with Create React
// App expose only variables starting with REACT_APP_, so a reader created
// with that prefix answers Lookup("CHAIN_ID") from REACT_APP_CHAIN_ID:
//
//	snap, err := env.FromOS("REACT_APP_")
//	id, _ := snap.Lookup("CHAIN_ID")
//
// Raw bypasses the prefix for the few variables that are conventionally
// unprefixed (ZORA_API_KEY).
//
// # Dotenv files
//
// FromOS accepts dotenv files that are layered under the process
// environment. Later files override earlier ones, and the process
// environment overrides them all. Files that do not exist are skipped:
//
//	snap, err := env.FromOS("REACT_APP_", ".env", ".env.local")
//
// # Typed settings
//
// LoadSettings decodes the network-independent settings (chain id,
// provider credential, feature flags, pre-launch flag, service keys) from a
// snapshot with caarlos0/env struct tags. Feature flags use the Flag type,
// which is true only for the literal string "true".
package env
