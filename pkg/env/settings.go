package env

// Flag is a boolean feature flag that is enabled only by the exact string
// "true". Any other value, including "TRUE" or "1", leaves it disabled.
type Flag bool

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Flag) UnmarshalText(text []byte) error {
	*f = string(text) == "true"
	return nil
}

// Settings holds the overrides that do not depend on the selected network.
// Per-network overrides ({NETWORK}_JSONRPC and friends) are looked up by name
// when the settings table is built.
type Settings struct {
	// ChainID is the raw network selector. It is validated by network.Parse;
	// empty selects the default network.
	ChainID string `env:"CHAIN_ID"`
	// InfuraProjectID is the provider credential used in default RPC URLs.
	InfuraProjectID string `env:"INFURA_PROJECT_ID"`
	// EnableHistory turns on the auction history views.
	EnableHistory Flag `env:"ENABLE_HISTORY"`
	// EnableRollbar turns on error reporting.
	EnableRollbar Flag `env:"ENABLE_ROLLBAR"`
	// IsPreLaunch is kept as a string; consumers compare it themselves.
	IsPreLaunch string `env:"IS_PRELAUNCH" envDefault:"false"`
	// EtherscanAPIKey is passed through for block explorer lookups.
	EtherscanAPIKey string `env:"ETHERSCAN_API_KEY"`
	// AddressesFile points to an SDK addresses.json that replaces the
	// embedded address book.
	AddressesFile string `env:"ADDRESSES_FILE"`
	// ZoraAPIKey is read from the unprefixed ZORA_API_KEY variable.
	ZoraAPIKey string
}

// LoadSettings decodes Settings from the snapshot.
func LoadSettings(s *Snapshot) (Settings, error) {
	var out Settings
	if err := s.Decode(&out); err != nil {
		return Settings{}, err
	}
	if out.IsPreLaunch == "" {
		out.IsPreLaunch = "false"
	}
	out.ZoraAPIKey, _ = s.Raw("ZORA_API_KEY")
	return out, nil
}
