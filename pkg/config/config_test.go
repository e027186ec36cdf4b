package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/lilnounsdao/webapp-config/pkg/address"
	"github.com/lilnounsdao/webapp-config/pkg/env"
	"github.com/lilnounsdao/webapp-config/pkg/network"
	"github.com/lilnounsdao/webapp-config/pkg/registry"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func snapshot(vars map[string]string) *env.Snapshot {
	prefixed := make(map[string]string, len(vars))
	for k, v := range vars {
		prefixed[DefaultPrefix+k] = v
	}
	return env.FromMap(DefaultPrefix, prefixed)
}

func failingRegistry() address.Registry {
	return registry.Func(func(network.ID) (address.Set, error) {
		return nil, errors.New("registry unavailable")
	})
}

func TestBuild_MainnetDefaults(t *testing.T) {
	cfg, err := Build(WithEnv(snapshot(map[string]string{
		"INFURA_PROJECT_ID": "abc123",
	})))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if cfg.ChainID != network.Mainnet {
		t.Errorf("ChainID = %v, want mainnet", cfg.ChainID)
	}
	if cfg.App.JSONRPCURI != "https://mainnet.infura.io/v3/abc123" {
		t.Errorf("JSONRPCURI = %q", cfg.App.JSONRPCURI)
	}
	if cfg.App.WSRPCURI != "wss://mainnet.infura.io/ws/v3/abc123" {
		t.Errorf("WSRPCURI = %q", cfg.App.WSRPCURI)
	}
	lido := cfg.Addresses.LidoToken()
	if lido == nil || *lido != common.HexToAddress("0xae7ab96520DE3A18E5e111B5EaAb095312D7fE84") {
		t.Errorf("lidoToken = %v", lido)
	}
	token, ok := cfg.Addresses.Get(address.NounsToken)
	if !ok || token != common.HexToAddress("0x4b10701Bfd7BFEdc47d50562b76b436fbB5BdB3B") {
		t.Errorf("nounsToken = %s, %v; want the Lil Nouns token", token.Hex(), ok)
	}
	if cfg.RegistryOutcome() != address.RegistryFound {
		t.Errorf("RegistryOutcome = %v, want found", cfg.RegistryOutcome())
	}
	if cfg.IsPreLaunch != "false" {
		t.Errorf("IsPreLaunch = %q, want \"false\"", cfg.IsPreLaunch)
	}
}

func TestBuild_Hardhat(t *testing.T) {
	cfg, err := Build(WithEnv(snapshot(map[string]string{
		"CHAIN_ID":          "31337",
		"INFURA_PROJECT_ID": "abc123",
		"ENABLE_HISTORY":    "true",
		"HARDHAT_JSONRPC":   "http://ignored:1",
	})))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := NetworkSettings{
		JSONRPCURI:  "http://localhost:8545",
		WSRPCURI:    "ws://localhost:8545",
		NounsAPIURI: "http://localhost:5001",
	}
	if cfg.App != want {
		t.Errorf("App = %+v, want %+v", cfg.App, want)
	}
	if cfg.Addresses.LidoToken() != nil {
		t.Errorf("lidoToken = %v, want absent", cfg.Addresses.LidoToken())
	}
	if cfg.RegistryOutcome() != address.RegistryAbsorbed {
		t.Errorf("RegistryOutcome = %v, want absorbed", cfg.RegistryOutcome())
	}
}

func TestBuild_RinkebyOverrides(t *testing.T) {
	cfg, err := Build(WithEnv(snapshot(map[string]string{
		"CHAIN_ID":          "4",
		"RINKEBY_JSONRPC":   "http://node.internal:8545",
		"RINKEBY_NOUNSAPI":  "https://api.example",
		"ENABLE_HISTORY":    "true",
		"ENABLE_ROLLBAR":    "1",
		"IS_PRELAUNCH":      "true",
		"ETHERSCAN_API_KEY": "scan",
	})))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if cfg.App.JSONRPCURI != "http://node.internal:8545" {
		t.Errorf("JSONRPCURI = %q", cfg.App.JSONRPCURI)
	}
	if cfg.App.WSRPCURI != "wss://rinkeby.infura.io/ws/v3/" {
		t.Errorf("WSRPCURI = %q", cfg.App.WSRPCURI)
	}
	if cfg.App.SubgraphAPIURI != "https://api.thegraph.com/subgraphs/name/lilnounsdao/lil-nouns-subgraph-rinkeby" {
		t.Errorf("SubgraphAPIURI = %q", cfg.App.SubgraphAPIURI)
	}
	if cfg.App.NounsAPIURI != "https://api.example" {
		t.Errorf("NounsAPIURI = %q", cfg.App.NounsAPIURI)
	}
	if !cfg.App.EnableHistory {
		t.Error("EnableHistory should be on")
	}
	if cfg.App.EnableRollbar {
		t.Error("EnableRollbar should only accept the literal \"true\"")
	}
	if cfg.IsPreLaunch != "true" || cfg.EtherscanAPIKey != "scan" {
		t.Errorf("IsPreLaunch = %q, EtherscanAPIKey = %q", cfg.IsPreLaunch, cfg.EtherscanAPIKey)
	}
}

func TestBuild_UnsupportedChain(t *testing.T) {
	tests := []struct {
		name    string
		chainID string
		wantErr error
	}{
		{name: "unsupported", chainID: "5", wantErr: network.ErrUnsupported},
		{name: "malformed", chainID: "goerli"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Build(WithEnv(snapshot(map[string]string{"CHAIN_ID": tt.chainID})))
			if err == nil {
				t.Fatalf("expected error, got %+v", cfg)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBuild_EveryNetwork(t *testing.T) {
	for _, id := range network.All() {
		t.Run(id.Name(), func(t *testing.T) {
			cfg, err := Build(
				WithEnv(snapshot(map[string]string{"CHAIN_ID": id.ChainID()})),
				WithRegistry(failingRegistry()),
			)
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if cfg.ChainID != id {
				t.Fatalf("ChainID = %v, want %v", cfg.ChainID, id)
			}
			if cfg.App.JSONRPCURI == "" || cfg.App.WSRPCURI == "" {
				t.Fatalf("endpoints not populated: %+v", cfg.App)
			}
			if !reflect.DeepEqual(cfg.Addresses, address.OverlayFor(id).Set()) {
				t.Fatalf("Addresses = %v, want overlay only", cfg.Addresses)
			}
		})
	}
}

func TestBuild_Idempotent(t *testing.T) {
	snap := snapshot(map[string]string{"INFURA_PROJECT_ID": "abc123", "ENABLE_HISTORY": "true"})

	first, err := Build(WithEnv(snap))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	second, err := Build(WithEnv(snap))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if first == second {
		t.Fatal("Build should return a fresh value")
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Build is not deterministic:\n%+v\n%+v", first, second)
	}
}

func TestBuild_ProcessEnvironment(t *testing.T) {
	t.Setenv(DefaultPrefix+"CHAIN_ID", "4")
	t.Setenv(DefaultPrefix+"INFURA_PROJECT_ID", "from-os")

	cfg, err := Build(WithRegistry(nil))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if cfg.ChainID != network.Rinkeby {
		t.Fatalf("ChainID = %v, want rinkeby", cfg.ChainID)
	}
	if cfg.App.JSONRPCURI != "https://rinkeby.infura.io/v3/from-os" {
		t.Fatalf("JSONRPCURI = %q", cfg.App.JSONRPCURI)
	}
}

func writeAddresses(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "addresses.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestBuild_AddressesFile(t *testing.T) {
	sdk := writeAddresses(t, `{
		"1": {"nounsToken": "0x4b10701Bfd7BFEdc47d50562b76b436fbB5BdB3B"},
		"4": {"nounsToken": "0x0000000000000000000000000000000000000004"}
	}`)

	tests := []struct {
		name      string
		vars      map[string]string
		opts      []Option
		outcome   address.RegistryOutcome
		wantToken string
	}{
		{
			name:      "rinkeby from file",
			vars:      map[string]string{"CHAIN_ID": "4", "ADDRESSES_FILE": sdk},
			outcome:   address.RegistryFound,
			wantToken: "0x0000000000000000000000000000000000000004",
		},
		{
			name:    "rinkeby without file",
			vars:    map[string]string{"CHAIN_ID": "4"},
			outcome: address.RegistryAbsorbed,
		},
		{
			name:    "unreadable file is absorbed",
			vars:    map[string]string{"CHAIN_ID": "1", "ADDRESSES_FILE": filepath.Join(t.TempDir(), "missing.json")},
			outcome: address.RegistryAbsorbed,
		},
		{
			name:    "explicit registry wins over file",
			vars:    map[string]string{"CHAIN_ID": "4", "ADDRESSES_FILE": sdk},
			opts:    []Option{WithRegistry(failingRegistry())},
			outcome: address.RegistryAbsorbed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Build(append([]Option{WithEnv(snapshot(tt.vars))}, tt.opts...)...)
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if cfg.RegistryOutcome() != tt.outcome {
				t.Fatalf("RegistryOutcome = %v, want %v", cfg.RegistryOutcome(), tt.outcome)
			}
			token, ok := cfg.Addresses.Get(address.NounsToken)
			if tt.wantToken == "" {
				if ok {
					t.Fatalf("nounsToken = %s, want none", token.Hex())
				}
				return
			}
			if !ok || token != common.HexToAddress(tt.wantToken) {
				t.Fatalf("nounsToken = %s, %v; want %s", token.Hex(), ok, tt.wantToken)
			}
			if !cfg.Addresses.Has(address.LidoToken) {
				t.Fatal("overlay missing")
			}
		})
	}
}

func TestLoad_ComputedOnce(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	defer zap.ReplaceGlobals(zap.New(core))()

	first, err := Load(WithEnv(snapshot(map[string]string{"CHAIN_ID": "31337"})))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if n := logs.FilterMessage("config already loaded, options ignored").Len(); n != 0 {
		t.Fatalf("first Load logged %d ignored-options lines", n)
	}

	second, err := Load(WithEnv(snapshot(map[string]string{"CHAIN_ID": "1"})))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if n := logs.FilterMessage("config already loaded, options ignored").Len(); n != 1 {
		t.Fatalf("second Load logged %d ignored-options lines, want 1", n)
	}

	if first != second {
		t.Fatal("Load should return the cached configuration")
	}
	if second.ChainID != network.Hardhat {
		t.Fatalf("ChainID = %v, want hardhat from the first call", second.ChainID)
	}
	if MustLoad() != first {
		t.Fatal("MustLoad should return the cached configuration")
	}
}

func TestTimeouts_WithDefaults(t *testing.T) {
	tests := []struct {
		name     string
		timeouts Timeouts
		want     Timeouts
	}{
		{
			name:     "empty timeouts",
			timeouts: Timeouts{},
			want:     Timeouts{Dial: 5 * time.Second, ChainRead: 12 * time.Second},
		},
		{
			name:     "partial timeouts",
			timeouts: Timeouts{Dial: time.Second},
			want:     Timeouts{Dial: time.Second, ChainRead: 12 * time.Second},
		},
		{
			name:     "all custom timeouts",
			timeouts: Timeouts{Dial: time.Second, ChainRead: 2 * time.Second},
			want:     Timeouts{Dial: time.Second, ChainRead: 2 * time.Second},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.timeouts.WithDefaults()
			if got != tt.want {
				t.Errorf("WithDefaults() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
