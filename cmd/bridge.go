package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"stargate-bridger/config"
	"stargate-bridger/pkg/bridge"
	"stargate-bridger/pkg/chains"
	"stargate-bridger/pkg/wallet"
)

var bridgeMode string

var bridgeCmd = &cobra.Command{
	Use:   "bridge --mode <code>",
	Short: "Bridge tokens once for every configured wallet",
	Long: `Bridge the configured amount from one chain to another, once per wallet.
Each wallet waits for its source-chain balance to arrive before submitting.

Route codes:
  ` + strings.Join(chains.Modes(), ", ") + `

Usage example: 'pa' bridges polygon-avalanche.`,
	Run: runBridge,
}

func init() {
	rootCmd.AddCommand(bridgeCmd)

	bridgeCmd.Flags().StringVar(&bridgeMode, "mode", "", "Bridging route code (e.g. pf = polygon-fantom)")
}

func runBridge(cmd *cobra.Command, args []string) {
	// Usage errors exit with status 2 before any network activity.
	if bridgeMode == "" {
		fmt.Fprintln(os.Stderr, "Error: the --mode argument is required")
		os.Exit(2)
	}
	route, err := chains.ResolveMode(bridgeMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

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

	transfer, err := bridge.NewTransfer(registry, route)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	tasks := make([]*bridge.Task, 0, len(wallets))
	for _, w := range wallets {
		tasks = append(tasks, transfer.Task(w, cfg, log))
	}

	log.Info().
		Int("wallets", len(tasks)).
		Int("amount", cfg.AmountToSwap).
		Msgf("Bridging %s.", route.Describe())

	bridge.RunAll(context.Background(), log, tasks)
}
