package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/calebmoore/sb/internal/vault"
)

func TestBibleChapterCreatesNote(t *testing.T) {
	v := useVault(t)

	prevDate := bibleDateFlag
	t.Cleanup(func() { bibleDateFlag = prevDate })
	bibleDateFlag = "2025-03-01"

	if err := captureRun(t, func() error {
		return chapterCmd.RunE(chapterCmd, []string{"genesis", "1"})
	}); err != nil {
		t.Fatalf("chapterCmd.RunE: %v", err)
	}

	relPath := filepath.Join(vault.BibleStudyDir, "genesis_1.md")
	v.AssertFileExists(relPath)
	v.AssertFileContains(relPath, "# Genesis | Chapter 1")
	v.AssertFileContains(relPath, "**Date Read**: 2025-03-01")
}

func TestBibleChapterRejectsNonNumericChapter(t *testing.T) {
	useVault(t)

	err := captureRun(t, func() error {
		return chapterCmd.RunE(chapterCmd, []string{"Genesis", "one"})
	})
	if err == nil {
		t.Fatal("expected an error for a non-numeric chapter")
	}
	if !strings.Contains(err.Error(), "must be a number") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBibleChapterRejectsOutOfRangeChapter(t *testing.T) {
	v := useVault(t)

	err := captureRun(t, func() error {
		return chapterCmd.RunE(chapterCmd, []string{"Genesis", "51"})
	})
	if err == nil {
		t.Fatal("expected an error for Genesis 51")
	}
	v.AssertFileNotExists(filepath.Join(vault.BibleStudyDir, "genesis_51.md"))
}

func TestBibleChapterRejectsUnknownBook(t *testing.T) {
	useVault(t)

	err := captureRun(t, func() error {
		return chapterCmd.RunE(chapterCmd, []string{"Hezekiah", "3"})
	})
	if err == nil {
		t.Fatal("expected an error for an unknown book")
	}
}
