package cmd

import (
	"context"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"stargate-bridger/config"
	"stargate-bridger/pkg/bridge"
	"stargate-bridger/pkg/chains"
	"stargate-bridger/pkg/wallet"
)

// Inter-leg delays. BSC finishes the cycle, so its cooldown is short.
const (
	legDelayMin = 1200 * time.Second
	legDelayMax = 1500 * time.Second
	bscDelayMin = 100 * time.Second
	bscDelayMax = 300 * time.Second
)

// cycleLegs is the fixed transfer triangle: USDC leaves Polygon, reaches BSC
// as USDT and comes back to Polygon as USDC.
var cycleLegs = []string{"pa", "ab", "bp"}

var cycleCmd = &cobra.Command{
	Use:   "cycle",
	Short: "Run polygon→avalanche→bsc→polygon transfer cycles for every wallet",
	Long: `Run full transfer cycles for every configured wallet: USDC from Polygon to
Avalanche, on to BSC as USDT, then back to Polygon as USDC. The number of
cycles comes from the times configuration value.`,
	Run: runCycle,
}

func init() {
	rootCmd.AddCommand(cycleCmd)
}

func runCycle(cmd *cobra.Command, args []string) {
	log := newLogger(cmd)

	cfg, err := config.Load()
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	wallets, err := wallet.FromKeys(cfg.PrivateKeys)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	registry, err := chains.Connect()
	if err != nil {
		printError(err)
		os.Exit(1)
	}
	defer registry.Close()

	transfers := make([]*bridge.Transfer, 0, len(cycleLegs))
	for _, code := range cycleLegs {
		route, err := chains.ResolveMode(code)
		if err != nil {
			printError(err)
			os.Exit(1)
		}
		transfer, err := bridge.NewTransfer(registry, route)
		if err != nil {
			printError(err)
			os.Exit(1)
		}
		transfers = append(transfers, transfer)
	}

	ctx := context.Background()

	var wg sync.WaitGroup
	for _, w := range wallets {
		wg.Add(1)
		go func(w *wallet.Wallet) {
			defer wg.Done()
			runWalletCycles(ctx, log, w, transfers, cfg)
		}(w)
	}
	wg.Wait()

	log.Info().Msg("*** FINISHED ***")
}

func runWalletCycles(
	ctx context.Context,
	log zerolog.Logger,
	w *wallet.Wallet,
	transfers []*bridge.Transfer,
	cfg *config.Config,
) {
	walletLog := log.With().Str("wallet", w.Address.Hex()).Logger()

	for cycle := 1; cycle <= cfg.Times; cycle++ {
		for _, transfer := range transfers {
			res := transfer.Task(w, cfg, log).Run(ctx)
			if res.Err != nil {
				walletLog.Error().Err(res.Err).
					Str("route", transfer.Route.Describe()).
					Int("cycle", cycle).
					Msg("cycle aborted")
				return
			}

			delay := legDelay(transfer.Route.Source)
			walletLog.Info().Dur("delay", delay).
				Msgf("%s DELAY | waiting before next leg", transfer.Source.Name)
			if err := sleepCtx(ctx, delay); err != nil {
				return
			}
		}
	}

	walletLog.Info().Msg("DONE")
}

func legDelay(sourceChain string) time.Duration {
	min, max := legDelayMin, legDelayMax
	if sourceChain == "bsc" {
		min, max = bscDelayMin, bscDelayMax
	}
	return min + time.Duration(rand.Int63n(int64(max-min)+1))
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
