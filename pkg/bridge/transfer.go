package bridge

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"

	"stargate-bridger/config"
	"stargate-bridger/pkg/chains"
	"stargate-bridger/pkg/contracts"
	"stargate-bridger/pkg/wallet"
)

// Transfer binds a route to the connected chain profiles on both ends.
type Transfer struct {
	Route   chains.Route
	Source  *chains.Profile
	Dest    *chains.Profile
	Binding *chains.TokenBinding
	// Differs from Binding on routes that cross between the USDC and
	// USDT pools.
	DstBinding *chains.TokenBinding
}

// NewTransfer resolves a route against the chain registry.
func NewTransfer(reg *chains.Registry, route chains.Route) (*Transfer, error) {
	source, err := reg.Profile(route.Source)
	if err != nil {
		return nil, err
	}
	dest, err := reg.Profile(route.Dest)
	if err != nil {
		return nil, err
	}

	binding, err := source.Token(route.SourceToken)
	if err != nil {
		return nil, err
	}
	destBinding, err := dest.Token(route.DestToken)
	if err != nil {
		return nil, err
	}

	return &Transfer{
		Route:      route,
		Source:     source,
		Dest:       dest,
		Binding:    binding,
		DstBinding: destBinding,
	}, nil
}

// Task builds the bridging task for one wallet on this transfer.
func (tr *Transfer) Task(w *wallet.Wallet, cfg *config.Config, log zerolog.Logger) *Task {
	return &Task{
		Wallet:      w,
		FromChain:   tr.Source.Name,
		ToChain:     tr.Dest.Name,
		Token:       tr.Route.SourceToken,
		Explorer:    tr.Source.Explorer,
		DstChainID:  tr.Dest.LayerZeroChainID,
		SrcPoolID:   tr.Binding.PoolID,
		DstPoolID:   tr.DstBinding.PoolID,
		TokenReader: tr.Binding.Contract,
		Submitter:   &routerSubmitter{source: tr.Source, binding: tr.Binding},
		Policy: Policy{
			AmountUnits:  cfg.AmountToSwap,
			Slippage:     cfg.Slippage,
			JitterMin:    cfg.StartJitterMin,
			JitterMax:    cfg.StartJitterMax,
			PollInterval: cfg.PollInterval,
			WaitTimeout:  cfg.WaitTimeout,
		},
		Log: log,
	}
}

// routerSubmitter drives the on-chain leg of a transfer: router allowance,
// LayerZero fee quote, then the swap itself.
type routerSubmitter struct {
	source  *chains.Profile
	binding *chains.TokenBinding
}

func (s *routerSubmitter) Submit(ctx context.Context, req *Request) (common.Hash, error) {
	if err := s.ensureAllowance(ctx, req); err != nil {
		return common.Hash{}, err
	}

	fee, err := s.source.Router.QuoteLayerZeroFee(ctx, req.DstChainID, req.Recipient)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to quote LayerZero fee: %w", err)
	}

	return s.source.Router.Swap(ctx, req.Wallet.PrivateKey, s.swapParams(req, fee), s.source.TxOpts())
}

// ensureAllowance approves the router for the swap amount when the current
// allowance is short.
func (s *routerSubmitter) ensureAllowance(ctx context.Context, req *Request) error {
	allowance, err := s.binding.Contract.Allowance(ctx, req.Wallet.Address, s.source.Router.Address())
	if err != nil {
		return fmt.Errorf("failed to get router allowance: %w", err)
	}
	if allowance.Cmp(req.AmountIn) >= 0 {
		return nil
	}

	_, err = s.binding.Contract.Approve(
		ctx, req.Wallet.PrivateKey, s.source.Router.Address(), req.AmountIn, s.source.TxOpts(),
	)
	if err != nil {
		return fmt.Errorf("failed to approve router: %w", err)
	}
	return nil
}

func (s *routerSubmitter) swapParams(req *Request, fee *big.Int) contracts.SwapParams {
	return contracts.SwapParams{
		DstChainID:    req.DstChainID,
		SrcPoolID:     req.SrcPoolID,
		DstPoolID:     req.DstPoolID,
		RefundAddress: req.Recipient,
		AmountIn:      req.AmountIn,
		MinAmountOut:  req.MinAmountOut,
		LzTxParams:    req.LzTxParams,
		To:            req.Recipient,
		Fee:           fee,
	}
}
