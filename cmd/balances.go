package cmd

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"sort"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"stargate-bridger/config"
	"stargate-bridger/pkg/chains"
	"stargate-bridger/pkg/wallet"
)

var balancesCmd = &cobra.Command{
	Use:   "balances",
	Short: "Show stable-token balances for every wallet on every chain",
	Run:   runBalances,
}

func init() {
	rootCmd.AddCommand(balancesCmd)
}

func runBalances(cmd *cobra.Command, args []string) {
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

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " Fetching balances..."
	s.Start()

	type line struct {
		chain, token, amount string
		err                  error
	}
	ctx := context.Background()

	chainKeys := chains.Names()
	sort.Strings(chainKeys)

	report := make(map[*wallet.Wallet][]line, len(wallets))
	for _, w := range wallets {
		for _, key := range chainKeys {
			profile, err := registry.Profile(key)
			if err != nil {
				continue
			}
			for _, symbol := range []string{"USDC", "USDT"} {
				binding, err := profile.Token(symbol)
				if err != nil {
					continue
				}
				amount, err := formatBalance(ctx, binding, w)
				report[w] = append(report[w], line{chain: profile.Name, token: symbol, amount: amount, err: err})
			}
		}
	}
	s.Stop()

	for _, w := range wallets {
		fmt.Printf("\n%s\n", color.CyanString(w.Address.Hex()))
		for _, l := range report[w] {
			if l.err != nil {
				color.Red("  %-10s %-5s error: %v", l.chain, l.token, l.err)
				continue
			}
			fmt.Printf("  %-10s %-5s %s\n", l.chain, l.token, color.GreenString(l.amount))
		}
	}
	fmt.Println()
}

func formatBalance(ctx context.Context, binding *chains.TokenBinding, w *wallet.Wallet) (string, error) {
	balance, err := binding.Contract.BalanceOf(ctx, w.Address)
	if err != nil {
		return "", err
	}
	decimals, err := binding.Contract.Decimals(ctx)
	if err != nil {
		return "", err
	}

	scale := new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil))
	units := new(big.Float).Quo(new(big.Float).SetInt(balance), scale)
	return units.Text('f', 2), nil
}
