// SPDX-License-Identifier: Apache-2.0

// Package cli implements the wm command tree.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"wol-manager/internal/config"
	"wol-manager/internal/logger"
	"wol-manager/internal/wake"
	"wol-manager/internal/wol"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	dimColor     = color.New(color.Faint)
)

var (
	flagVerbose    bool
	flagQuiet      bool
	flagConfigPath string

	logLevel = &slog.LevelVar{}

	// Shared state assembled in PersistentPreRunE.
	log        *slog.Logger
	registry   *wol.Registry
	dispatcher *wake.Dispatcher
)

var rootCmd = &cobra.Command{
	Use:   "wm",
	Short: "Wake hosts over the network",
	Long: `A simple Wake-on-LAN implementation.

Hosts are defined in a YAML inventory (~/.config/wol-manager/config.yaml)
and woken by sending the standard magic packet over UDP broadcast.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch {
		case flagVerbose && flagQuiet:
			return fmt.Errorf("--verbose and --quiet are mutually exclusive")
		case flagVerbose:
			logLevel.Set(slog.LevelDebug)
		case flagQuiet:
			logLevel.Set(slog.LevelWarn)
		default:
			logLevel.Set(slog.LevelInfo)
		}
		log = logger.New(logger.Options{Level: logLevel})
		dispatcher = wake.NewDispatcher(log)

		path, err := configPath()
		if err != nil {
			return err
		}
		log.Debug("Loading configuration", "path", path)
		registry, err = config.Load(path, log)
		return err
	},
}

// configPath resolves the inventory location, honoring --config.
func configPath() (string, error) {
	if flagConfigPath != "" {
		return flagConfigPath, nil
	}
	return config.DefaultPath()
}

// RunCLI executes the command tree and exits non-zero on failure.
func RunCLI() {
	if err := rootCmd.Execute(); err != nil {
		errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug output")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "only print warnings and errors")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "path to the host inventory file")

	rootCmd.AddCommand(hostCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
