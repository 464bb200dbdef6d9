package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/calebmoore/sb/internal/gitsync"
	"github.com/calebmoore/sb/internal/ui"
)

var syncMessageFlag string

var syncCmd = &cobra.Command{
	Use:   "sync [branch]",
	Short: "Synchronize the vault with its git remote",
	Long: `Commits local changes, rebases onto the remote branch, and pushes.

The workflow is commit -> fetch -> rebase -> push, in that order. A
failing rebase is aborted automatically so the working tree is left
clean. The branch defaults to "` + gitsync.DefaultBranch + `" and the commit message
defaults to a timestamped one.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig()
		if err != nil {
			return err
		}

		branch := gitsync.DefaultBranch
		if len(args) == 1 {
			branch = args[0]
		}
		message := syncMessageFlag
		if message == "" {
			message = gitsync.DefaultMessage(time.Now())
		}

		repo, err := gitsync.Open(cfg.VaultPath)
		if err != nil {
			return err
		}

		_, err = gitsync.New(repo, consoleReporter{}).Sync(branch, message)
		return err
	},
}

// consoleReporter prints engine progress with the usual styling.
type consoleReporter struct{}

func (consoleReporter) Info(msg string)    { fmt.Println(ui.Hint(msg)) }
func (consoleReporter) Success(msg string) { fmt.Println(ui.Success(msg)) }
func (consoleReporter) Warn(msg string)    { fmt.Println(ui.Warning(msg)) }

func init() {
	syncCmd.Flags().StringVarP(&syncMessageFlag, "message", "m", "", "Commit message (default embeds the current timestamp)")
	rootCmd.AddCommand(syncCmd)
}
