package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/calebmoore/sb/internal/config"
	"github.com/calebmoore/sb/internal/notes"
	"github.com/calebmoore/sb/internal/ui"
	"github.com/calebmoore/sb/internal/vault"
)

var journalTagsFlag string

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Create journal notes",
	Long:  `Creates daily, weekly, or monthly journal notes from templates.`,
}

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Create today's daily journal note",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig()
		if err != nil {
			return err
		}
		relPath, content := notes.Daily(time.Now(), journalTagsFlag)
		return writeNoteReporting(cfg, relPath, content)
	},
}

var weeklyCmd = &cobra.Command{
	Use:   "weekly",
	Short: "Create this week's review note",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig()
		if err != nil {
			return err
		}
		relPath, content := notes.Weekly(time.Now(), journalTagsFlag)
		return writeNoteReporting(cfg, relPath, content)
	},
}

var monthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Create this month's reflection note",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig()
		if err != nil {
			return err
		}
		relPath, content := notes.Monthly(time.Now(), journalTagsFlag)
		return writeNoteReporting(cfg, relPath, content)
	},
}

// writeNoteReporting writes a templated note and prints the outcome. An
// already-existing note is not an error: the point of these commands is
// that the note is there afterwards.
func writeNoteReporting(cfg *config.Config, relPath, content string) error {
	err := vault.WriteNote(cfg.VaultPath, relPath, content)
	if errors.Is(err, vault.ErrNoteExists) {
		fmt.Println(ui.Infof("note already exists: %s", ui.FilePath(relPath)))
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Println(ui.Successf("created %s", ui.FilePath(relPath)))
	return nil
}

func init() {
	journalCmd.PersistentFlags().StringVarP(&journalTagsFlag, "tags", "t", "", "Comma-separated tags to add to the note")
	journalCmd.AddCommand(dailyCmd)
	journalCmd.AddCommand(weeklyCmd)
	journalCmd.AddCommand(monthlyCmd)
}
