package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Bazar-Sodai storefront backend",
	Long: `Bazar-Sodai storefront backend serves a hierarchical product catalog
over a REST API and turns submitted shopping carts into priced order
notifications delivered through a configurable notifier (email, telegram
or webhook).`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
