// Package cli implements the sb command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/calebmoore/sb/internal/config"
	"github.com/calebmoore/sb/internal/ui"
)

var (
	// Global flags
	vaultPathFlag string
	configFlag    string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sb",
	Short: "Second Brain - manage your note-taking system",
	Long: `sb is a command-line companion for a second-brain note vault.

It scaffolds structured markdown notes (daily journal, weekly and monthly
reviews, Bible study notes, inbox notes) and keeps the vault in sync with
its git remote. A vault is any directory containing a ` + config.MarkerDir + `
subdirectory; sb finds it automatically by searching upward from the
current directory for a folder named "` + config.DefaultVaultName + `".`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI. Errors are printed here, once, as styled
// messages; the caller translates a non-nil return into exit code 1.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&vaultPathFlag, "path", "p", "", "Path to the vault (overrides config and discovery)")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to the sb config file (default "+config.DefaultConfigFile+")")
}

// resolveConfig produces the effective configuration for the current
// invocation. A missing config file gets a muted hint; an unusable vault
// is an error.
func resolveConfig() (*config.Config, error) {
	configFile := configFlag
	if configFile == "" {
		configFile = config.DefaultConfigFile
	}
	if expanded, err := config.ExpandHome(configFile); err == nil {
		if _, err := os.Stat(expanded); os.IsNotExist(err) {
			fmt.Println(ui.Hint(fmt.Sprintf("config file %s not found, using defaults", configFile)))
		}
	}

	return config.Resolve(configFlag, vaultPathFlag)
}
