package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "muckpond",
		Short: "A terminal pond where foragers clean up spreading muck",
		Long: `muckpond runs a small idle ecosystem in the terminal.

Feeders drift and cluster to ripen algae, foragers hop between cells eating it,
and muck spreads from cell to cell. Click a forager to make it spread muck.
The board resets once the muck is gone or covers most of the pond.`,
		SilenceUsage: true,
		RunE:         runPond,
	}

	rootCmd.PersistentFlags().String("config", "", "Config file path (default: user config dir)")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Random seed, 0 draws one")
	rootCmd.PersistentFlags().Bool("debug", false, "Write a debug log under the log directory")
	rootCmd.PersistentFlags().Bool("mute", false, "Start with audio muted")

	rootCmd.AddCommand(
		newRunCmd(),
		newVersionCmd(),
		newConfigCmd(),
	)
	return rootCmd
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the pond (default)",
		RunE:  runPond,
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "muckpond version %s\n", version)
		},
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			return s.cfg.Encode(cmd.OutOrStdout())
		},
	}
}
