// Package bridge implements the per-wallet bridging task and the fan-out
// runner that drives one task per configured wallet.
package bridge

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"stargate-bridger/pkg/contracts"
	"stargate-bridger/pkg/wallet"
)

// TokenReader is the read-only slice of a token contract the task depends on.
type TokenReader interface {
	Decimals(ctx context.Context) (uint8, error)
	BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error)
}

// Submitter submits one bridge transaction and reports its hash once mined.
type Submitter interface {
	Submit(ctx context.Context, req *Request) (common.Hash, error)
}

// Request describes one cross-chain transfer. It is built once per wallet,
// submitted at most once, and never mutated.
type Request struct {
	Wallet       *wallet.Wallet
	FromChain    string
	ToChain      string
	Token        string
	DstChainID   uint16
	SrcPoolID    *big.Int
	DstPoolID    *big.Int
	AmountIn     *big.Int
	MinAmountOut *big.Int
	// Refund and destination address; both are the wallet itself.
	Recipient  common.Address
	LzTxParams contracts.LzTxObj
}

// Result is the terminal state of one wallet task.
type Result struct {
	Wallet  common.Address
	TxHash  common.Hash
	Err     error
	Elapsed time.Duration
}

// Policy carries the tunable coordination parameters of a task.
type Policy struct {
	AmountUnits  int
	Slippage     float64
	JitterMin    time.Duration
	JitterMax    time.Duration
	PollInterval time.Duration
	// WaitTimeout bounds the balance wait; zero waits indefinitely.
	WaitTimeout time.Duration
}
