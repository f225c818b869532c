package bridge

import (
	"context"
	"fmt"
	"math/big"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"stargate-bridger/pkg/contracts"
	"stargate-bridger/pkg/wallet"
)

// Task bridges one wallet over one route. It sleeps a random startup delay,
// waits for the source-chain balance to arrive, then submits a single swap.
type Task struct {
	Wallet    *wallet.Wallet
	FromChain string
	ToChain   string
	Token     string
	Explorer  string

	DstChainID uint16
	SrcPoolID  *big.Int
	DstPoolID  *big.Int

	TokenReader TokenReader
	Submitter   Submitter

	Policy Policy
	Log    zerolog.Logger
}

// Run executes the task to a terminal state. Errors end up in the Result and
// never cross wallet boundaries.
func (t *Task) Run(ctx context.Context) Result {
	start := time.Now()
	res := Result{Wallet: t.Wallet.Address}

	log := t.Log.With().Str("wallet", t.Wallet.Address.Hex()).Logger()

	amountIn, minAmountOut, err := Amounts(ctx, t.TokenReader, t.Policy.AmountUnits, t.Policy.Slippage)
	if err != nil {
		res.Err = err
		res.Elapsed = time.Since(start)
		return res
	}

	delay := t.startDelay()
	log.Info().Dur("delay", delay).Msg("START DELAY | waiting before first balance check")
	if err := sleepCtx(ctx, delay); err != nil {
		res.Err = err
		res.Elapsed = time.Since(start)
		return res
	}

	if err := t.waitForBalance(ctx, log); err != nil {
		res.Err = err
		res.Elapsed = time.Since(start)
		return res
	}

	log.Info().Msgf(
		"BRIDGING | trying to bridge %d %s from %s to %s",
		t.Policy.AmountUnits, t.Token, t.FromChain, t.ToChain,
	)

	req := &Request{
		Wallet:       t.Wallet,
		FromChain:    t.FromChain,
		ToChain:      t.ToChain,
		Token:        t.Token,
		DstChainID:   t.DstChainID,
		SrcPoolID:    t.SrcPoolID,
		DstPoolID:    t.DstPoolID,
		AmountIn:     amountIn,
		MinAmountOut: minAmountOut,
		Recipient:    t.Wallet.Address,
		LzTxParams:   contracts.DefaultLzTxObj(),
	}

	txHash, err := t.Submitter.Submit(ctx, req)
	if err != nil {
		res.Err = fmt.Errorf("failed to bridge %s from %s: %w", t.Token, t.FromChain, err)
		res.Elapsed = time.Since(start)
		return res
	}

	log.Info().Msgf("%s | transaction: https://%s/tx/%s", t.FromChain, t.Explorer, txHash.Hex())
	log.Info().Msgf("LAYERZEROSCAN | transaction: https://layerzeroscan.com/tx/%s", txHash.Hex())

	res.TxHash = txHash
	res.Elapsed = time.Since(start)
	return res
}

// startDelay draws the jittered startup delay. The jitter desynchronizes
// submission across the wallet batch.
func (t *Task) startDelay() time.Duration {
	if t.Policy.JitterMax <= t.Policy.JitterMin {
		return t.Policy.JitterMin
	}
	return t.Policy.JitterMin + time.Duration(rand.Int63n(int64(t.Policy.JitterMax-t.Policy.JitterMin)+1))
}

// waitForBalance polls the source-chain token balance until it is non-zero.
// With a zero WaitTimeout the loop is unbounded and stops only on context
// cancellation, matching the historical behavior.
func (t *Task) waitForBalance(ctx context.Context, log zerolog.Logger) error {
	if t.Policy.WaitTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.Policy.WaitTimeout)
		defer cancel()
	}

	ticker := time.NewTicker(t.Policy.PollInterval)
	defer ticker.Stop()

	polls := 0
	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("gave up waiting for %s balance on %s: %w", t.Token, t.FromChain, ctx.Err())
		case <-ticker.C:
		}

		if polls%3 == 0 {
			log.Info().Msgf("BALANCE | checking %s %s balance", t.FromChain, t.Token)
		}
		polls++

		balance, err := t.TokenReader.BalanceOf(ctx, t.Wallet.Address)
		if err != nil {
			return fmt.Errorf("failed to get %s balance on %s: %w", t.Token, t.FromChain, err)
		}
		if balance.Sign() > 0 {
			return nil
		}
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
