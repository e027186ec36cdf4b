// Package endpoint builds RPC endpoint URLs for a network, preferring an
// operator override and falling back to a hosted provider template.
package endpoint

import (
	"fmt"
	"strings"

	"github.com/lilnounsdao/webapp-config/pkg/env"
)

// Kind selects the RPC transport.
type Kind int

const (
	// HTTP is a JSON-RPC over HTTPS endpoint.
	HTTP Kind = iota
	// WebSocket is a JSON-RPC over WSS endpoint.
	WebSocket
)

// DefaultProvider is the hosted provider used when no override is set.
const DefaultProvider = "infura.io"

func (k Kind) String() string {
	switch k {
	case HTTP:
		return "http"
	case WebSocket:
		return "websocket"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// OverrideKey returns the environment name that overrides the endpoint of
// the given kind, e.g. MAINNET_JSONRPC or RINKEBY_WSRPC. Readers add their
// own prefix.
func OverrideKey(network string, kind Kind) string {
	suffix := "_JSONRPC"
	if kind == WebSocket {
		suffix = "_WSRPC"
	}
	return strings.ToUpper(network) + suffix
}

// Builder produces endpoint URLs from a reader and a provider credential.
// The zero Provider means DefaultProvider.
type Builder struct {
	Reader     env.Reader
	Credential string
	Provider   string
}

// NewBuilder returns a Builder for the default provider.
func NewBuilder(r env.Reader, credential string) Builder {
	return Builder{Reader: r, Credential: credential, Provider: DefaultProvider}
}

// URL returns the override for (network, kind) verbatim when it is set and
// non-empty, and the provider template otherwise:
//
//	https://{network}.{provider}/v3/{credential}
//	wss://{network}.{provider}/ws/v3/{credential}
//
// It never fails. An empty credential leaves the last path segment empty.
func (b Builder) URL(network string, kind Kind) string {
	if b.Reader != nil {
		if custom, ok := b.Reader.Lookup(OverrideKey(network, kind)); ok && custom != "" {
			return custom
		}
	}

	provider := b.Provider
	if provider == "" {
		provider = DefaultProvider
	}

	if kind == WebSocket {
		return fmt.Sprintf("wss://%s.%s/ws/v3/%s", network, provider, b.Credential)
	}
	return fmt.Sprintf("https://%s.%s/v3/%s", network, provider, b.Credential)
}

// Build is a shorthand for NewBuilder(r, credential).URL(network, kind).
func Build(r env.Reader, network string, kind Kind, credential string) string {
	return NewBuilder(r, credential).URL(network, kind)
}
