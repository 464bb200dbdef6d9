// Package bible provides the 66-book canon table and the chapter
// cross-reference logic used by Bible study notes.
package bible

import (
	"fmt"
	"strings"
)

// Book is one entry in the canon, in canonical order.
type Book struct {
	Name     string
	Chapters int
}

// Canon is the ordered 66-book table (KJV ordering and chapter counts).
var Canon = []Book{
	// Old Testament
	{"Genesis", 50},
	{"Exodus", 40},
	{"Leviticus", 27},
	{"Numbers", 36},
	{"Deuteronomy", 34},
	{"Joshua", 24},
	{"Judges", 21},
	{"Ruth", 4},
	{"1 Samuel", 31},
	{"2 Samuel", 24},
	{"1 Kings", 22},
	{"2 Kings", 25},
	{"1 Chronicles", 29},
	{"2 Chronicles", 36},
	{"Ezra", 10},
	{"Nehemiah", 13},
	{"Esther", 10},
	{"Job", 42},
	{"Psalms", 150},
	{"Proverbs", 31},
	{"Ecclesiastes", 12},
	{"Song of Solomon", 8},
	{"Isaiah", 66},
	{"Jeremiah", 52},
	{"Lamentations", 5},
	{"Ezekiel", 48},
	{"Daniel", 12},
	{"Hosea", 14},
	{"Joel", 3},
	{"Amos", 9},
	{"Obadiah", 1},
	{"Jonah", 4},
	{"Micah", 7},
	{"Nahum", 3},
	{"Habakkuk", 3},
	{"Zephaniah", 3},
	{"Haggai", 2},
	{"Zechariah", 14},
	{"Malachi", 4},

	// New Testament
	{"Matthew", 28},
	{"Mark", 16},
	{"Luke", 24},
	{"John", 21},
	{"Acts", 28},
	{"Romans", 16},
	{"1 Corinthians", 16},
	{"2 Corinthians", 13},
	{"Galatians", 6},
	{"Ephesians", 6},
	{"Philippians", 4},
	{"Colossians", 4},
	{"1 Thessalonians", 5},
	{"2 Thessalonians", 3},
	{"1 Timothy", 6},
	{"2 Timothy", 4},
	{"Titus", 3},
	{"Philemon", 1},
	{"Hebrews", 13},
	{"James", 5},
	{"1 Peter", 5},
	{"2 Peter", 3},
	{"1 John", 5},
	{"2 John", 1},
	{"3 John", 1},
	{"Jude", 1},
	{"Revelation", 22},
}

// Genre groups are index ranges over Canon (inclusive start, exclusive end).
// Keeping ranges instead of per-name scans makes category lookups a single
// index comparison once the book index is known.
type genreRange struct {
	name  string
	start int
	end   int
}

const newTestamentStart = 39 // index of Matthew

var genres = []genreRange{
	{"Law", 0, 5},
	{"History", 5, 17},
	{"Poetry", 17, 22},
	{"Major Prophets", 22, 27},
	{"Minor Prophets", 27, 39},
	{"Gospels", 39, 43},
	{"Church History", 43, 44},
	{"Pauline Epistles", 44, 57},
	{"General Epistles", 57, 65},
	{"Apocalyptic", 65, 66},
}

// BookIndex returns the canonical index of a book, matched
// case-insensitively. The second result is false for unknown books.
func BookIndex(name string) (int, bool) {
	for i, b := range Canon {
		if strings.EqualFold(b.Name, name) {
			return i, true
		}
	}
	return 0, false
}

// Validate checks that book is in the canon and chapter is within range.
func Validate(book string, chapter int) error {
	idx, ok := BookIndex(book)
	if !ok {
		return fmt.Errorf("unknown book of the Bible: %q", book)
	}
	if chapter < 1 || chapter > Canon[idx].Chapters {
		return fmt.Errorf("%s has %d chapters, got chapter %d",
			Canon[idx].Name, Canon[idx].Chapters, chapter)
	}
	return nil
}

// NoteName formats a book/chapter pair the way note files are named:
// lowercase with underscores, e.g. "1 Samuel", 3 -> "1_samuel_3".
func NoteName(book string, chapter int) string {
	return fmt.Sprintf("%s_%d", BookSlug(book), chapter)
}

// BookSlug lowercases a name and replaces spaces with underscores.
func BookSlug(book string) string {
	return strings.ToLower(strings.ReplaceAll(book, " ", "_"))
}

// Testament returns the testament index-note name for a book index:
// "old_testament" or "new_testament".
func Testament(idx int) string {
	if idx < newTestamentStart {
		return "old_testament"
	}
	return "new_testament"
}

// Genre returns the genre index-note name for a book index,
// e.g. "minor_prophets" for Malachi.
func Genre(idx int) string {
	for _, g := range genres {
		if idx >= g.start && idx < g.end {
			return BookSlug(g.name)
		}
	}
	return ""
}

// GenreLabel returns the display name of the genre for a book index.
func GenreLabel(idx int) string {
	for _, g := range genres {
		if idx >= g.start && idx < g.end {
			return g.name
		}
	}
	return ""
}

// AdjacentChapters returns the note names of the previous and next chapter
// for a valid book/chapter pair, crossing book boundaries within the canon.
// Either result is empty at the edges of the canon (before Genesis 1,
// after Revelation 22). Both are empty if the book or chapter is invalid.
func AdjacentChapters(book string, chapter int) (prev, next string) {
	idx, ok := BookIndex(book)
	if !ok {
		return "", ""
	}
	cur := Canon[idx]
	if chapter < 1 || chapter > cur.Chapters {
		return "", ""
	}

	switch {
	case chapter > 1:
		prev = NoteName(cur.Name, chapter-1)
	case idx > 0:
		before := Canon[idx-1]
		prev = NoteName(before.Name, before.Chapters)
	}

	switch {
	case chapter < cur.Chapters:
		next = NoteName(cur.Name, chapter+1)
	case idx < len(Canon)-1:
		next = NoteName(Canon[idx+1].Name, 1)
	}

	return prev, next
}
