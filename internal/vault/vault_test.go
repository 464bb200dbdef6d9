package vault

import (
	"errors"
	"testing"

	"github.com/calebmoore/sb/internal/testutil"
)

func TestWriteNote(t *testing.T) {
	t.Run("creates note and parent directories", func(t *testing.T) {
		v := testutil.NewTestVault(t).Build()

		err := WriteNote(v.Path, "2_Areas/Journal/Daily/2025-01-01.md", "# 2025-01-01\n")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		v.AssertFileContains("2_Areas/Journal/Daily/2025-01-01.md", "# 2025-01-01")
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		v := testutil.NewTestVault(t).
			WithFile("0_Inbox/idea.md", "original").
			Build()

		err := WriteNote(v.Path, "0_Inbox/idea.md", "replacement")
		if !errors.Is(err, ErrNoteExists) {
			t.Fatalf("expected ErrNoteExists, got %v", err)
		}
		v.AssertFileContains("0_Inbox/idea.md", "original")
	})
}

func TestAppendToNote(t *testing.T) {
	t.Run("appends to existing note", func(t *testing.T) {
		v := testutil.NewTestVault(t).
			WithFile("2_Areas/Journal/Daily/2025-01-01.md", "# day\n").
			Build()

		if err := AppendToNote(v.Path, "2_Areas/Journal/Daily/2025-01-01.md", "[[idea]]\n"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		v.AssertFileContains("2_Areas/Journal/Daily/2025-01-01.md", "[[idea]]")
	})

	t.Run("missing note is a no-op", func(t *testing.T) {
		v := testutil.NewTestVault(t).Build()
		if err := AppendToNote(v.Path, "2_Areas/Journal/Daily/2025-01-01.md", "[[idea]]\n"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		v.AssertFileNotExists("2_Areas/Journal/Daily/2025-01-01.md")
	})
}

func TestStats(t *testing.T) {
	t.Run("counts notes recursively per folder", func(t *testing.T) {
		v := testutil.NewTestVault(t).
			WithFile("0_Inbox/a.md", "a").
			WithFile("0_Inbox/b.md", "b").
			WithFile("1_Projects/Bible-Study/genesis_1.md", "g").
			WithFile("2_Areas/Journal/Daily/2025-01-01.md", "d").
			WithFile("2_Areas/Journal/Daily/2025-01-02.md", "d").
			WithFile("2_Areas/notes.txt", "not markdown").
			Build()

		info, err := Stats(v.Path, "0_Inbox")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		byName := map[string]FolderStat{}
		for _, f := range info.Folders {
			byName[f.Name] = f
		}

		if got := byName["0_Inbox"]; !got.Exists || got.Notes != 2 {
			t.Errorf("0_Inbox stat = %+v", got)
		}
		if got := byName["1_Projects"]; !got.Exists || got.Notes != 1 {
			t.Errorf("1_Projects stat = %+v", got)
		}
		if got := byName["2_Areas"]; !got.Exists || got.Notes != 2 {
			t.Errorf("2_Areas stat = %+v", got)
		}
		if got := byName["3_Resources"]; got.Exists {
			t.Errorf("3_Resources should be missing, got %+v", got)
		}
		if !info.InboxExists || info.InboxNotes != 2 {
			t.Errorf("inbox = exists %v, notes %d", info.InboxExists, info.InboxNotes)
		}
	})

	t.Run("inbox count ignores subdirectories", func(t *testing.T) {
		v := testutil.NewTestVault(t).
			WithFile("0_Inbox/a.md", "a").
			WithFile("0_Inbox/nested/b.md", "b").
			Build()

		info, err := Stats(v.Path, "0_Inbox")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if info.InboxNotes != 1 {
			t.Errorf("InboxNotes = %d, want 1 (top-level only)", info.InboxNotes)
		}
	})

	t.Run("review suggestion threshold", func(t *testing.T) {
		info := &Info{InboxNotes: ReviewThreshold}
		if info.SuggestReview() {
			t.Error("exactly at threshold should not suggest review")
		}
		info.InboxNotes++
		if !info.SuggestReview() {
			t.Error("above threshold should suggest review")
		}
	})
}
