package cli

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/calebmoore/sb/internal/config"
	"github.com/calebmoore/sb/internal/notes"
	"github.com/calebmoore/sb/internal/ui"
	"github.com/calebmoore/sb/internal/vault"
)

var newTagsFlag string

var newCmd = &cobra.Command{
	Use:   "new [title]",
	Short: "Create a new note",
	Long: `Creates a new note. Without a subcommand an empty note goes into the
inbox folder; the title comes from the argument or an interactive
prompt. Name collisions get a _1, _2, ... suffix.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			if !prompter.Confirm("No subcommand provided. Create an empty note?", true) {
				fmt.Println(ui.Hint("Use 'sb new --help' to see available subcommands."))
				return nil
			}
		}

		cfg, err := resolveConfig()
		if err != nil {
			return err
		}

		title := ""
		if len(args) == 1 {
			title = args[0]
		}
		if title == "" {
			title, err = prompter.Input("Enter the title of the new note")
			if err != nil {
				return err
			}
		}

		return createEmptyNote(cfg, title, newTagsFlag, time.Now())
	},
}

// createEmptyNote writes an inbox note and links it from today's daily
// journal note. A missing daily note is offered for creation first so
// the link has somewhere to land.
func createEmptyNote(cfg *config.Config, title, tags string, now time.Time) error {
	filename, content := notes.Empty(title, tags, now)

	stem := strings.TrimSuffix(filename, ".md")
	relPath := filepath.Join(cfg.InboxFolder, filename)
	for n := 1; vault.NoteExists(cfg.VaultPath, relPath); n++ {
		filename = fmt.Sprintf("%s_%d.md", stem, n)
		relPath = filepath.Join(cfg.InboxFolder, filename)
	}

	dailyRel, dailyContent := notes.Daily(now, "")
	if !vault.NoteExists(cfg.VaultPath, dailyRel) {
		if prompter.Confirm("Create a daily note for today?", true) {
			if err := vault.WriteNote(cfg.VaultPath, dailyRel, dailyContent); err != nil {
				return err
			}
			fmt.Println(ui.Successf("created %s", ui.FilePath(dailyRel)))
		} else {
			fmt.Println(ui.Hint("You can create a daily note later using 'sb new journal daily'."))
		}
	}

	if err := vault.WriteNote(cfg.VaultPath, relPath, content); err != nil {
		return err
	}
	link := "\n[[" + strings.TrimSuffix(filename, ".md") + "]]"
	if err := vault.AppendToNote(cfg.VaultPath, dailyRel, link); err != nil {
		return err
	}

	fmt.Println(ui.Successf("note created: %s", ui.FilePath(relPath)))
	return nil
}

func init() {
	newCmd.Flags().StringVarP(&newTagsFlag, "tags", "t", "", "Comma-separated tags to add to the note")
	newCmd.AddCommand(journalCmd)
	newCmd.AddCommand(bibleCmd)
	rootCmd.AddCommand(newCmd)
}
