// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for zmkenv.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"zmkenv-cli/internal/config"
	"zmkenv-cli/internal/session"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// systemFlag overrides host platform detection
	systemFlag string

	// cfg is the loaded user configuration, populated by initRootConfig.
	cfg *config.Config

	// logger is the CLI-wide logger.
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "zmkenv",
	})

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "zmkenv",
		Short: "Reproducible ZMK firmware development environments",
		Long: TitleStyle.Render("zmkenv") + SubtitleStyle.Render(" - reproducible ZMK firmware development environments") + `

zmkenv resolves a pinned toolchain (west, CMake, Ninja, the ARM
cross compiler and friends) for your platform, composes a shell
environment exposing those tools, exports the Zephyr toolchain
variables the firmware build consumes, and drops you into an
interactive session behind a project banner.

Toolchain inputs are declared in a 'zmkenv.cue' manifest; projects
without one use the built-in Chocofi defaults.

` + SubtitleStyle.Render("Quick Start:") + `
  1. cd into your ZMK config workspace
  2. Run: zmkenv resolve
  3. Run: zmkenv shell

` + SubtitleStyle.Render("Examples:") + `
  zmkenv shell              Enter the development environment
  zmkenv hook               Print eval-able exports for the current shell
  zmkenv env                Show the composed environment variables
  zmkenv tools              List toolchain inputs and lock drift
  zmkenv resolve            Resolve all inputs and write zmkenv.lock`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/zmkenv/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&systemFlag, "system", "", "platform triple to compose for (default: detected host)")

	// Add subcommands
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(hookCmd)
	rootCmd.AddCommand(envCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(bannerCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(completionCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		var sessionExit *session.ExitError
		if errors.As(err, &sessionExit) {
			os.Exit(sessionExit.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig loads user configuration and applies global flags.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	loaded, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		loaded = &config.Config{Banner: config.BannerConfig{Enabled: true}, StoreRoot: config.DefaultStoreRoot()}
	}
	cfg = loaded

	if cfg.Verbose {
		verbose = true
	}
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
}
