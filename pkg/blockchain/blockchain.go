// Package blockchain checks a resolved configuration against a live chain:
// that an RPC endpoint serves the selected network and that the resolved
// contract addresses have code deployed.
package blockchain

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/lilnounsdao/webapp-config/pkg/address"
	"github.com/lilnounsdao/webapp-config/pkg/network"
	"go.uber.org/zap"
)

// ErrChainMismatch is returned by VerifyChain when the endpoint serves a
// different chain than the selected network.
var ErrChainMismatch = errors.New("endpoint serves a different chain")

// EVMClient holds a connected ethclient.Client.
type EVMClient struct {
	Client *ethclient.Client
}

// Dial connects to an HTTP or WebSocket JSON-RPC endpoint. For WebSocket
// endpoints ctx bounds the handshake.
func Dial(ctx context.Context, endpoint string) (*EVMClient, error) {
	client, err := ethclient.DialContext(ctx, endpoint)
	if err != nil {
		zap.L().Error("Failed to ethdial", zap.Error(err))
		return nil, err
	}
	return &EVMClient{Client: client}, nil
}

// Close releases the underlying connection.
func (eth *EVMClient) Close() {
	eth.Client.Close()
}

// VerifyChain compares the endpoint's chain id with want.
func (eth *EVMClient) VerifyChain(ctx context.Context, want network.ID) error {
	got, err := eth.Client.ChainID(ctx)
	if err != nil {
		zap.L().Error("Failed to get chain id", zap.Error(err))
		return fmt.Errorf("get chain id: %w", err)
	}
	if !got.IsUint64() || got.Uint64() != uint64(want) {
		return fmt.Errorf("%w: got %s, want %d (%s)", ErrChainMismatch, got, uint64(want), want.Name())
	}
	return nil
}

// MissingCode returns, sorted, the names in set whose address has no
// deployed bytecode at the latest block. Absent entries are skipped.
func (eth *EVMClient) MissingCode(ctx context.Context, set address.Set) ([]string, error) {
	var missing []string
	for _, name := range set.Names() {
		addr, ok := set.Get(name)
		if !ok {
			continue
		}

		code, err := eth.Client.CodeAt(ctx, addr, nil)
		if err != nil {
			zap.L().Error("Failed to get code", zap.String("contract", name), zap.Error(err))
			return nil, fmt.Errorf("get code of %s: %w", name, err)
		}
		if len(code) == 0 {
			missing = append(missing, name)
		}
	}
	return missing, nil
}
