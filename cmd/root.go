package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stargate-bridger",
	Short: "A CLI for batch cross-chain stablecoin bridging over Stargate",
	Long: `stargate-bridger drives Stargate Finance router swaps for a batch of
wallets. Pick a route, and every configured wallet waits for its balance to
arrive on the source chain and bridges it to the destination chain.

Examples:
  stargate-bridger bridge --mode pf
  stargate-bridger cycle
  stargate-bridger balances
  stargate-bridger refuel --from polygon --to avalanche
  stargate-bridger new-wallet`,
	Version: "0.1.0",
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
}

func newLogger(cmd *cobra.Command) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = zerolog.DebugLevel
	}

	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "\nError: %v\n\n", err)
}
