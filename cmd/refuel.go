package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"stargate-bridger/config"
	"stargate-bridger/pkg/chains"
	"stargate-bridger/pkg/refuel"
	"stargate-bridger/pkg/wallet"
)

var (
	refuelFrom string
	refuelTo   string
)

var refuelCmd = &cobra.Command{
	Use:   "refuel --from <chain> --to <chain>",
	Short: "Top up destination-chain gas via the Socket refuel bridge",
	Long: `Send a small amount of native gas from one chain to another for every
configured wallet, using the Socket (Bungee) refuel contracts. The dollar
value of the deposit comes from the refuel_usd configuration value.

Example:
  stargate-bridger refuel --from polygon --to avalanche`,
	Run: runRefuel,
}

func init() {
	rootCmd.AddCommand(refuelCmd)

	refuelCmd.Flags().StringVar(&refuelFrom, "from", "", "Source chain (polygon, fantom, avalanche, bsc)")
	refuelCmd.Flags().StringVar(&refuelTo, "to", "", "Destination chain (polygon, fantom, avalanche, bsc)")
}

func runRefuel(cmd *cobra.Command, args []string) {
	if refuelFrom == "" || refuelTo == "" {
		fmt.Fprintln(os.Stderr, "Error: the --from and --to arguments are required")
		os.Exit(2)
	}
	if refuelFrom == refuelTo {
		fmt.Fprintln(os.Stderr, "Error: source and destination chain must differ")
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

	from, err := registry.Profile(refuelFrom)
	if err != nil {
		printError(err)
		os.Exit(2)
	}
	to, err := registry.Profile(refuelTo)
	if err != nil {
		printError(err)
		os.Exit(2)
	}

	service := refuel.NewService(log)
	ctx := context.Background()

	failed := 0
	for _, w := range wallets {
		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Suffix = fmt.Sprintf(" Refueling %s...", w.Address.Hex())
		s.Start()

		txHash, err := service.Refuel(ctx, from, to, w, cfg.RefuelUSD)
		s.Stop()

		if err != nil {
			failed++
			color.Red("✗ %s: %v", w.Address.Hex(), err)
			continue
		}
		color.Green("✓ %s: %s", w.Address.Hex(), from.ExplorerTxURL(txHash))
	}

	log.Info().Int("wallets", len(wallets)).Int("failed", failed).Msg("*** FINISHED ***")
}
