// Package cli provides the command-line interface for the tracker.
package cli

import (
	"github.com/spf13/cobra"
)

// Version information
const Version = "0.1.0"

// DefaultSymbols is used when --symbols is not given.
const DefaultSymbols = "AAPL,MSFT,UBER,GOOG"

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(app *App) *cobra.Command {
	var symbols, from string

	rootCmd := &cobra.Command{
		Use:   "tracker",
		Short: "Track stock prices with ease!",
		Long: `tracker prints the latest price, change, minimum, maximum and 30-day
simple moving average of each symbol's daily adjusted closes since --from.`,
		Example:       "  tracker --from 2020-07-01T00:00:00Z --symbols AAPL,MSFT",
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), cmd.OutOrStdout(), symbols, from)
		},
	}

	rootCmd.Flags().StringVarP(&symbols, "symbols", "s", DefaultSymbols, "comma-separated ticker symbols, no spaces")
	rootCmd.Flags().StringVarP(&from, "from", "f", "", "start of the period as an RFC 3339 timestamp")
	_ = rootCmd.MarkFlagRequired("from")

	return rootCmd
}
