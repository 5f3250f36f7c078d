package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/fretsvg/internal/cli"
	"github.com/example/fretsvg/internal/version"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "fretsvg",
		Short:   "fretsvg - guitar chord and scale diagram renderer",
		Version: version.String(),
		Long: `fretsvg renders guitar chord boxes and scale fretboard maps as SVG or PNG.
It runs as an HTTP service (fretsvg serve) or renders directly from the command line.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.LoadConfig(configPath)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default .fretsvg/config.yaml)")

	// Add subcommands
	rootCmd.AddCommand(cli.ServeCmd())
	rootCmd.AddCommand(cli.ChordCmd())
	rootCmd.AddCommand(cli.ScaleCmd())
	rootCmd.AddCommand(cli.ProgressionCmd())
	rootCmd.AddCommand(cli.ConfigCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
