package contracts

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

// TypeSwapRemote is the Stargate function type used when quoting the
// LayerZero messaging fee for a swap.
const TypeSwapRemote = 1

var parsedRouterABI = mustParseABI(stargateRouterABI)

// LzTxObj mirrors the router's lzTxObj tuple. The tool always submits the
// zero-gas variant with the protocol's placeholder destination address.
type LzTxObj struct {
	DstGasForCall   *big.Int
	DstNativeAmount *big.Int
	DstNativeAddr   []byte
}

// DefaultLzTxObj returns the fixed auxiliary parameter tuple submitted with
// every swap: no extra destination gas, no native airdrop, placeholder addr.
func DefaultLzTxObj() LzTxObj {
	return LzTxObj{
		DstGasForCall:   big.NewInt(0),
		DstNativeAmount: big.NewInt(0),
		DstNativeAddr:   common.HexToAddress("0x0000000000000000000000000000000000000001").Bytes(),
	}
}

// SwapParams carries the arguments of a single router swap call.
type SwapParams struct {
	DstChainID    uint16
	SrcPoolID     *big.Int
	DstPoolID     *big.Int
	RefundAddress common.Address
	AmountIn      *big.Int
	MinAmountOut  *big.Int
	LzTxParams    LzTxObj
	To            common.Address
	Fee           *big.Int
}

// Router wraps a Stargate Finance: Router contract on one chain.
type Router struct {
	client  *ethclient.Client
	address common.Address
}

// NewRouter creates a wrapper for the router at the given address.
func NewRouter(client *ethclient.Client, address common.Address) *Router {
	return &Router{client: client, address: address}
}

// Address returns the router contract address.
func (r *Router) Address() common.Address {
	return r.address
}

// QuoteLayerZeroFee asks the router for the native fee of delivering a swap
// message to the destination chain.
func (r *Router) QuoteLayerZeroFee(ctx context.Context, dstChainID uint16, to common.Address) (*big.Int, error) {
	data, err := parsedRouterABI.Pack(
		"quoteLayerZeroFee",
		dstChainID,
		uint8(TypeSwapRemote),
		to.Bytes(),
		[]byte{},
		DefaultLzTxObj(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to pack quoteLayerZeroFee data: %w", err)
	}

	result, err := r.client.CallContract(ctx, ethereum.CallMsg{To: &r.address, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call quoteLayerZeroFee: %w", err)
	}

	values, err := parsedRouterABI.Unpack("quoteLayerZeroFee", result)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack quoteLayerZeroFee result: %w", err)
	}

	return values[0].(*big.Int), nil
}

// Swap submits the cross-chain transfer and waits for it to be mined. The
// LayerZero messaging fee rides along as the transaction value.
func (r *Router) Swap(ctx context.Context, key *ecdsa.PrivateKey, params SwapParams, opts TxOpts) (common.Hash, error) {
	data, err := parsedRouterABI.Pack(
		"swap",
		params.DstChainID,
		params.SrcPoolID,
		params.DstPoolID,
		params.RefundAddress,
		params.AmountIn,
		params.MinAmountOut,
		params.LzTxParams,
		params.To.Bytes(),
		[]byte{},
	)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to pack swap data: %w", err)
	}

	opts.Value = params.Fee
	return transact(ctx, r.client, key, r.address, data, opts)
}
