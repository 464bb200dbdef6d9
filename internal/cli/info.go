package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebmoore/sb/internal/ui"
	"github.com/calebmoore/sb/internal/vault"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display vault and system status",
	Long:  `Shows the resolved vault path, per-folder note counts, and inbox status.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig()
		if err != nil {
			return err
		}

		fmt.Printf("Second Brain Vault: %s\n", ui.FilePath(cfg.VaultPath))

		stats, err := vault.Stats(cfg.VaultPath, cfg.InboxFolder)
		if err != nil {
			return err
		}

		fmt.Println()
		fmt.Println(ui.Header("Folder Structure:"))
		for _, folder := range stats.Folders {
			if folder.Exists {
				fmt.Printf("  %s %s %s\n", ui.SymbolSuccess, folder.Name,
					ui.Hint(ui.Count(folder.Notes, "note", "notes")))
			} else {
				fmt.Printf("  %s %s (missing)\n", ui.SymbolError, folder.Name)
			}
		}

		fmt.Println()
		switch {
		case !stats.InboxExists:
			fmt.Println(ui.Errorf("%s folder is missing", cfg.InboxFolder))
		case stats.InboxNotes == 0:
			fmt.Println(ui.Success("inbox is empty"))
		default:
			fmt.Println(ui.Infof("inbox has %d unprocessed %s", stats.InboxNotes,
				pluralNotes(stats.InboxNotes)))
			if stats.SuggestReview() {
				fmt.Println(ui.Hint("  consider doing a weekly review"))
			}
		}

		return nil
	},
}

func pluralNotes(n int) string {
	if n == 1 {
		return "note"
	}
	return "notes"
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
