package main

import (
	"os"

	"github.com/spf13/cobra"

	"go-bank-ledger/app"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "go-bank-ledger",
		Short: "Single-operator banking ledger over a relational store",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run()
		},
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
