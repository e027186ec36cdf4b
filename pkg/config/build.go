package config

import (
	"fmt"
	"sync"

	"github.com/lilnounsdao/webapp-config/pkg/address"
	"github.com/lilnounsdao/webapp-config/pkg/env"
	"github.com/lilnounsdao/webapp-config/pkg/network"
	"github.com/lilnounsdao/webapp-config/pkg/registry"
	"go.uber.org/zap"
)

// DefaultPrefix is the environment prefix used when no snapshot is given.
// It matches the variables an existing webapp .env file defines.
const DefaultPrefix = "REACT_APP_"

type options struct {
	env         *env.Snapshot
	registry    address.Registry
	registrySet bool
}

// Option customises Build.
type Option func(*options)

// WithEnv makes Build read overrides from s instead of the process
// environment.
func WithEnv(s *env.Snapshot) Option {
	return func(o *options) {
		o.env = s
	}
}

// WithRegistry replaces the address book as the registry layer. It takes
// precedence over ADDRESSES_FILE. A nil registry leaves only the overlay
// layer.
func WithRegistry(r address.Registry) Option {
	return func(o *options) {
		o.registry = r
		o.registrySet = true
	}
}

// fileRegistry reads an SDK addresses.json. A file that cannot be read or
// decoded fails every lookup, so the resolver absorbs it like any other
// registry failure.
func fileRegistry(path string) address.Registry {
	book, err := registry.FromAddressesFile(path)
	if err != nil {
		return registry.Func(func(network.ID) (address.Set, error) {
			return nil, err
		})
	}
	return book
}

// Build resolves the configuration of the network selected by CHAIN_ID
// (mainnet when unset). The registry layer comes from WithRegistry, then
// from ADDRESSES_FILE, then from the embedded Lil Nouns book. The only
// failure is an unreadable environment or a chain id outside the supported
// set; registry failures degrade to overlay-only addresses.
func Build(opts ...Option) (*AppConfig, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.env == nil {
		snap, err := env.FromOS(DefaultPrefix)
		if err != nil {
			return nil, err
		}
		o.env = snap
	}

	settings, err := env.LoadSettings(o.env)
	if err != nil {
		return nil, err
	}

	id, err := network.Parse(settings.ChainID)
	if err != nil {
		return nil, fmt.Errorf("select network: %w", err)
	}

	reg := o.registry
	if !o.registrySet {
		reg = registry.LilNouns()
		if settings.AddressesFile != "" {
			reg = fileRegistry(settings.AddressesFile)
		}
	}

	res := address.Resolve(id, reg)

	cfg := &AppConfig{
		ChainID:         id,
		App:             SettingsFor(id, o.env, settings),
		Addresses:       res.Addresses,
		IsPreLaunch:     settings.IsPreLaunch,
		EtherscanAPIKey: settings.EtherscanAPIKey,
		registry:        res.Registry,
	}

	zap.L().Debug("config resolved",
		zap.Stringer("network", id),
		zap.Stringer("registry", res.Registry),
		zap.Int("addresses", len(cfg.Addresses)))

	return cfg, nil
}

var (
	loadOnce sync.Once
	loaded   *AppConfig
	loadErr  error
)

// Load builds the process-wide configuration on its first call and returns
// the same result afterwards. Call it (or MustLoad) first thing in main:
// options passed to later calls are ignored and only logged at debug level.
func Load(opts ...Option) (*AppConfig, error) {
	built := false
	loadOnce.Do(func() {
		built = true
		loaded, loadErr = Build(opts...)
	})
	if !built && len(opts) > 0 {
		zap.L().Debug("config already loaded, options ignored", zap.Int("options", len(opts)))
	}
	return loaded, loadErr
}

// MustLoad is like Load but aborts the process when the configuration cannot
// be resolved.
func MustLoad(opts ...Option) *AppConfig {
	cfg, err := Load(opts...)
	if err != nil {
		zap.L().Fatal("Invalid config", zap.Error(err))
	}
	return cfg
}
