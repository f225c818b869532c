package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"stargate-bridger/pkg/wallet"
)

var newWalletCmd = &cobra.Command{
	Use:   "new-wallet",
	Short: "Generate a fresh wallet key pair",
	Run:   runNewWallet,
}

func init() {
	rootCmd.AddCommand(newWalletCmd)
}

func runNewWallet(cmd *cobra.Command, args []string) {
	w, privateKey, err := wallet.Generate()
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	fmt.Printf("PRIVATE KEY: %s\n", color.HiMagentaString(privateKey))
	fmt.Printf("ADDRESS:     %s\n", color.HiCyanString(w.Address.Hex()))
}
