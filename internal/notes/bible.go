package notes

import (
	"fmt"
	"path"

	"github.com/calebmoore/sb/internal/bible"
	"github.com/calebmoore/sb/internal/text"
	"github.com/calebmoore/sb/internal/vault"
)

// BibleChapter returns the path and content of a chapter study note.
// The book must be in the canon and the chapter within its range.
func BibleChapter(book string, chapter int, dateRead, tags string) (relPath, content string, err error) {
	if err := bible.Validate(book, chapter); err != nil {
		return "", "", err
	}

	idx, _ := bible.BookIndex(book)
	canonical := bible.Canon[idx].Name
	relPath = path.Join(vault.BibleStudyDir, bible.NoteName(canonical, chapter)+".md")

	prev, next := bible.AdjacentChapters(canonical, chapter)
	content = fmt.Sprintf(`# %s | Chapter %d

**Date Read**: %s

## Key Verses

>

## Main Themes

-
-
-

## Personal Insights

---

**Tags**: #bible #%s #chapter%d %s
**Testament**: [[%s]]
**Genre**: [[%s]]
**Next**: %s
**Previous**: %s`,
		canonical, chapter,
		dateRead,
		bible.BookSlug(canonical), chapter,
		text.FormatHashtags(tags),
		bible.Testament(idx),
		bible.Genre(idx),
		wikilinkOrNA(next),
		wikilinkOrNA(prev))

	return relPath, content, nil
}

// wikilinkOrNA renders a note name as a wikilink, or "N/A" at the edges
// of the canon.
func wikilinkOrNA(name string) string {
	if name == "" {
		return "N/A"
	}
	return fmt.Sprintf("[[%s]]", name)
}
