package main

// Must be first import - fixes Warp terminal delay before lipgloss loads
import _ "github.com/wahlandcase/attuned.cichecks/internal/termfix"

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wahlandcase/attuned.cichecks/internal/config"
	"github.com/wahlandcase/attuned.cichecks/internal/log"
	"github.com/wahlandcase/attuned.cichecks/internal/ui"
	"github.com/wahlandcase/attuned.cichecks/internal/update"
)

// version is set at build time via -ldflags
var version = "dev"

const updateRepo = "wahlandcase/attuned.cichecks"

var (
	verbose bool
	noColor bool

	// exitCode distinguishes "checks failed" (1) from execution errors (2),
	// which main reports by returning an error from RunE
	exitCode int
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "attci",
		Short:   "Commit template and toolchain checks for CI",
		Version: update.VersionDisplay(version),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Configure(log.Config{Verbose: verbose, NoColor: noColor})
			if noColor {
				ui.DisableColors()
			}
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(newLogCmd())
	rootCmd.AddCommand(newMessageCmd())
	rootCmd.AddCommand(newFormatCmd())
	rootCmd.AddCommand(newTypingCmd())
	rootCmd.AddCommand(newUpdateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	os.Exit(exitCode)
}

func newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Update attci to the latest release",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			release, err := update.CheckForUpdate(version, updateRepo)
			if err != nil {
				return err
			}

			cfg.RecordUpdateCheck()
			if err := cfg.Save(); err != nil {
				logger := log.Base()
				logger.Warn().Err(err).Msg("failed to record update check")
			}

			if release == nil {
				fmt.Println("attci is up to date (" + update.VersionDisplay(version) + ")")
				return nil
			}

			fmt.Println("Updating to " + update.VersionDisplay(release.TagName) + "...")
			if err := update.DownloadAndInstall(release, updateRepo); err != nil {
				return err
			}
			fmt.Println("Updated. Restart attci to use the new version.")
			return nil
		},
	}
}
