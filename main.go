package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"nimbus-ctl/app"
	"nimbus-ctl/config"
	"nimbus-ctl/log"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	version = "0.3.2"

	rootCmd = &cobra.Command{
		Use:   "nimbus-ctl",
		Short: "nimbus-ctl - A terminal dashboard for AWS resources with a context-aware command palette",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			log.Initialize()
			defer log.Close()

			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("nimbus-ctl must be run from a terminal")
			}

			return app.Run(ctx)
		},
	}

	resetCmd = &cobra.Command{
		Use:   "reset",
		Short: "Reset stored favorites, activity and UI state",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			for _, name := range []string{config.StateFileName, config.LockFileName} {
				if err := os.Remove(filepath.Join(configDir, name)); err != nil && !os.IsNotExist(err) {
					return fmt.Errorf("failed to remove %s: %w", name, err)
				}
			}
			fmt.Println("State has been reset successfully")
			return nil
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := config.ConfigPath()
			if err != nil {
				return fmt.Errorf("failed to get config path: %w", err)
			}
			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}

			fmt.Printf("Config: %s\n", configPath)
			fmt.Printf("State:  %s\n", filepath.Join(configDir, config.StateFileName))
			fmt.Println()
			return toml.NewEncoder(os.Stdout).Encode(config.LoadConfig())
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of nimbus-ctl",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("nimbus-ctl version %s\n", version)
		},
	}
)

func init() {
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	// ANSI256 renders consistently across terminal emulators.
	lipgloss.SetColorProfile(termenv.ANSI256)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
