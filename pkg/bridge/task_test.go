package bridge

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stargate-bridger/pkg/wallet"
)

// Hardhat's first well-known development key.
const testKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

type fakeToken struct {
	mu       sync.Mutex
	decimals uint8
	balances []*big.Int
	calls    int
}

func (f *fakeToken) Decimals(ctx context.Context) (uint8, error) {
	return f.decimals, nil
}

func (f *fakeToken) BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	idx := f.calls
	f.calls++
	if idx >= len(f.balances) {
		idx = len(f.balances) - 1
	}
	return f.balances[idx], nil
}

type fakeSubmitter struct {
	mu      sync.Mutex
	submits int
	lastReq *Request
	err     error
}

func (f *fakeSubmitter) Submit(ctx context.Context, req *Request) (common.Hash, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.submits++
	f.lastReq = req
	if f.err != nil {
		return common.Hash{}, f.err
	}
	return common.HexToHash("0xabc123"), nil
}

func newTestTask(t *testing.T, token TokenReader, sub Submitter) *Task {
	t.Helper()

	w, err := wallet.FromKey(testKey)
	require.NoError(t, err)

	return &Task{
		Wallet:      w,
		FromChain:   "POLYGON",
		ToChain:     "FANTOM",
		Token:       "USDC",
		Explorer:    "polygonscan.com",
		DstChainID:  112,
		SrcPoolID:   big.NewInt(1),
		DstPoolID:   big.NewInt(1),
		TokenReader: token,
		Submitter:   sub,
		Policy: Policy{
			AmountUnits:  10,
			Slippage:     0.005,
			PollInterval: time.Millisecond,
		},
		Log: zerolog.Nop(),
	}
}

func TestTaskWaitsForBalanceThenSubmitsOnce(t *testing.T) {
	token := &fakeToken{
		decimals: 6,
		balances: []*big.Int{big.NewInt(0), big.NewInt(0), big.NewInt(10_000_000)},
	}
	sub := &fakeSubmitter{}

	res := newTestTask(t, token, sub).Run(context.Background())

	require.NoError(t, res.Err)
	assert.Equal(t, 3, token.calls, "loop should terminate on the third balance check")
	assert.Equal(t, 1, sub.submits, "exactly one submission")
	assert.Equal(t, common.HexToHash("0xabc123"), res.TxHash)

	require.NotNil(t, sub.lastReq)
	assert.Equal(t, big.NewInt(10_000_000), sub.lastReq.AmountIn)
	assert.Equal(t, big.NewInt(9_950_000), sub.lastReq.MinAmountOut)
	assert.Equal(t, sub.lastReq.Wallet.Address, sub.lastReq.Recipient)
}

func TestTaskReportsSubmissionFailure(t *testing.T) {
	token := &fakeToken{decimals: 6, balances: []*big.Int{big.NewInt(1)}}
	sub := &fakeSubmitter{err: errors.New("execution reverted")}

	res := newTestTask(t, token, sub).Run(context.Background())

	require.Error(t, res.Err)
	assert.ErrorContains(t, res.Err, "execution reverted")
	assert.Equal(t, 1, sub.submits)
	assert.Equal(t, common.Hash{}, res.TxHash)
}

func TestTaskBalanceWaitHonorsTimeout(t *testing.T) {
	token := &fakeToken{decimals: 6, balances: []*big.Int{big.NewInt(0)}}
	sub := &fakeSubmitter{}

	task := newTestTask(t, token, sub)
	task.Policy.WaitTimeout = 20 * time.Millisecond

	res := task.Run(context.Background())

	require.Error(t, res.Err)
	assert.ErrorIs(t, res.Err, context.DeadlineExceeded)
	assert.Zero(t, sub.submits, "no submission when the balance never arrives")
}

func TestTaskStopsOnContextCancellation(t *testing.T) {
	token := &fakeToken{decimals: 6, balances: []*big.Int{big.NewInt(0)}}
	sub := &fakeSubmitter{}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	res := newTestTask(t, token, sub).Run(ctx)

	require.Error(t, res.Err)
	assert.ErrorIs(t, res.Err, context.Canceled)
	assert.Zero(t, sub.submits)
}

func TestStartDelayStaysWithinBounds(t *testing.T) {
	task := newTestTask(t, &fakeToken{decimals: 6, balances: []*big.Int{big.NewInt(1)}}, &fakeSubmitter{})
	task.Policy.JitterMin = 5 * time.Millisecond
	task.Policy.JitterMax = 9 * time.Millisecond

	for i := 0; i < 100; i++ {
		delay := task.startDelay()
		assert.GreaterOrEqual(t, delay, task.Policy.JitterMin)
		assert.LessOrEqual(t, delay, task.Policy.JitterMax)
	}
}
