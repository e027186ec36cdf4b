// Package blockchain provides a live sanity check of a resolved
// configuration.
//
// Resolution itself never touches the network. Operators who want to make
// sure that an RPC override points at the right chain, or that the
// registry addresses are actually deployed there, can probe the endpoint:
//
//	ctx, cancel := context.WithTimeout(context.Background(), timeouts.Dial)
//	defer cancel()
//
//	evm, err := blockchain.Dial(ctx, cfg.App.JSONRPCURI)
//	if err != nil {
//		return err
//	}
//	defer evm.Close()
//
//	if err := evm.VerifyChain(ctx, cfg.ChainID); err != nil {
//		// errors.Is(err, blockchain.ErrChainMismatch)
//	}
//	missing, err := evm.MissingCode(ctx, cfg.Addresses)
//
// Both checks are read-only JSON-RPC calls (eth_chainId, eth_getCode).
package blockchain
