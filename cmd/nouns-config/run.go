package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/lilnounsdao/webapp-config/internal/logger"
	"github.com/lilnounsdao/webapp-config/pkg/blockchain"
	"github.com/lilnounsdao/webapp-config/pkg/config"
	"github.com/lilnounsdao/webapp-config/pkg/env"
	"github.com/lilnounsdao/webapp-config/pkg/network"
	"github.com/lilnounsdao/webapp-config/pkg/registry"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// stringList is a repeatable string flag.
type stringList []string

func (l *stringList) String() string {
	return strings.Join(*l, ",")
}

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

type options struct {
	envFiles stringList
	prefix   string
	registry string
	format   string
	all      bool
	check    bool
	timeouts config.Timeouts
	debug    bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	o := &options{}
	fs := flag.NewFlagSet("nouns-config", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.Var(&o.envFiles, "env-file", "dotenv file layered under the process environment (repeatable)")
	fs.StringVar(&o.prefix, "prefix", config.DefaultPrefix, "environment variable prefix")
	fs.StringVar(&o.registry, "registry", "lilnouns",
		"address registry: lilnouns (embedded book, or the ADDRESSES_FILE override), "+
			"ecosystem (SingularityNET contracts, a format demonstration only, not Lil Nouns addresses) or none")
	fs.StringVar(&o.format, "format", "json", "output format: json or yaml")
	fs.BoolVar(&o.all, "all", false, "print the settings of every supported network")
	fs.BoolVar(&o.check, "check", false, "verify chain id and contract code against the HTTP RPC endpoint")
	fs.DurationVar(&o.timeouts.Dial, "dial-timeout", 0, "RPC dial timeout for -check (default 5s)")
	fs.DurationVar(&o.timeouts.ChainRead, "read-timeout", 0, "RPC read timeout for -check (default 12s)")
	fs.BoolVar(&o.debug, "debug", false, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	o.timeouts = o.timeouts.WithDefaults()

	switch o.format {
	case "json", "yaml":
	default:
		return nil, fmt.Errorf("unknown format %q", o.format)
	}
	return o, nil
}

// registryOptions maps the -registry flag to Build options. lilnouns keeps
// the Build defaults so ADDRESSES_FILE is honoured.
func registryOptions(name string) ([]config.Option, error) {
	switch name {
	case "lilnouns":
		return nil, nil
	case "ecosystem":
		book, err := registry.Ecosystem()
		if err != nil {
			return nil, err
		}
		return []config.Option{config.WithRegistry(book)}, nil
	case "none":
		return []config.Option{config.WithRegistry(nil)}, nil
	}
	return nil, fmt.Errorf("unknown registry %q", name)
}

func encode(w io.Writer, format string, v any) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func run(args []string, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	log, err := logger.Init(o.debug)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	snap, err := env.FromOS(o.prefix, o.envFiles...)
	if err != nil {
		log.Error("Failed to read environment", zap.Error(err))
		return 1
	}

	if o.all {
		return printTable(stdout, o.format, snap)
	}

	regOpts, err := registryOptions(o.registry)
	if err != nil {
		log.Error("Invalid registry", zap.Error(err))
		return 2
	}

	cfg, err := config.Build(append([]config.Option{config.WithEnv(snap)}, regOpts...)...)
	if err != nil {
		log.Error("Invalid config", zap.Error(err))
		return 1
	}

	if err := encode(stdout, o.format, cfg); err != nil {
		log.Error("Failed to write config", zap.Error(err))
		return 1
	}

	if o.check {
		if err := check(cfg, o.timeouts); err != nil {
			log.Error("Endpoint check failed", zap.Error(err))
			return 1
		}
		log.Info("Endpoint check passed", zap.Stringer("network", cfg.ChainID))
	}
	return 0
}

func printTable(w io.Writer, format string, snap *env.Snapshot) int {
	settings, err := env.LoadSettings(snap)
	if err != nil {
		zap.L().Error("Invalid config", zap.Error(err))
		return 1
	}

	byName := make(map[string]config.NetworkSettings, len(network.All()))
	for id, s := range config.Table(snap, settings) {
		byName[id.Name()] = s
	}

	if err := encode(w, format, byName); err != nil {
		zap.L().Error("Failed to write table", zap.Error(err))
		return 1
	}
	return 0
}

func check(cfg *config.AppConfig, timeouts config.Timeouts) error {
	dialCtx, cancel := context.WithTimeout(context.Background(), timeouts.Dial)
	defer cancel()

	evm, err := blockchain.Dial(dialCtx, cfg.App.JSONRPCURI)
	if err != nil {
		return err
	}
	defer evm.Close()

	ctx, cancel := context.WithTimeout(context.Background(), timeouts.ChainRead)
	defer cancel()

	if err := evm.VerifyChain(ctx, cfg.ChainID); err != nil {
		return err
	}

	missing, err := evm.MissingCode(ctx, cfg.Addresses)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("no contract code at %s", strings.Join(missing, ", "))
	}
	return nil
}
