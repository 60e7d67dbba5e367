package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lako/internal"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Dump the token stream of a source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := setup(); err != nil {
			return err
		}
		b, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read file: %v\n", err)
			os.Exit(5)
		}
		if !internal.ScanSource(string(b), os.Stdout, os.Stderr) {
			os.Exit(127)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
