package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/calebmoore/sb/internal/notes"
)

var (
	bibleDateFlag string
	bibleTagsFlag string
)

var bibleCmd = &cobra.Command{
	Use:   "bible",
	Short: "Create Bible study notes",
}

var chapterCmd = &cobra.Command{
	Use:   "chapter <book> <chapter>",
	Short: "Create a study note for a Bible chapter",
	Long: `Creates a study note for a single chapter, pre-filled with testament,
genre, and previous/next chapter links. Chapter links cross book
boundaries, so Malachi 4 points forward to Matthew 1.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig()
		if err != nil {
			return err
		}

		chapter, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid chapter %q: must be a number", args[1])
		}

		dateRead := bibleDateFlag
		if dateRead == "" {
			dateRead = time.Now().Format("2006-01-02")
		}

		relPath, content, err := notes.BibleChapter(args[0], chapter, dateRead, bibleTagsFlag)
		if err != nil {
			return err
		}
		return writeNoteReporting(cfg, relPath, content)
	},
}

func init() {
	chapterCmd.Flags().StringVarP(&bibleDateFlag, "date", "d", "", "Date the chapter was read (default today)")
	chapterCmd.Flags().StringVarP(&bibleTagsFlag, "tags", "t", "", "Comma-separated tags to add to the note")
	bibleCmd.AddCommand(chapterCmd)
}
