package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/calebmoore/sb/internal/notes"
)

func TestJournalDailyCreatesNote(t *testing.T) {
	v := useVault(t)

	out := captureStdout(t, func() {
		if err := dailyCmd.RunE(dailyCmd, nil); err != nil {
			t.Fatalf("dailyCmd.RunE: %v", err)
		}
	})

	relPath, _ := notes.Daily(time.Now(), "")
	v.AssertFileExists(relPath)
	if !strings.Contains(out, "created") {
		t.Fatalf("expected creation report, got: %s", out)
	}
}

func TestJournalDailyExistingNoteIsBenign(t *testing.T) {
	v := useVault(t)

	relPath, _ := notes.Daily(time.Now(), "")
	v.WithFile(relPath, "# existing\n").Build()
	vaultPathFlag = v.Path

	out := captureStdout(t, func() {
		if err := dailyCmd.RunE(dailyCmd, nil); err != nil {
			t.Fatalf("existing note must not be an error: %v", err)
		}
	})

	if !strings.Contains(out, "already exists") {
		t.Fatalf("expected already-exists report, got: %s", out)
	}
	if got := v.ReadFile(relPath); got != "# existing\n" {
		t.Fatalf("existing note was overwritten: %q", got)
	}
}

func TestJournalWeeklyCreatesNote(t *testing.T) {
	v := useVault(t)

	if err := captureRun(t, func() error {
		return weeklyCmd.RunE(weeklyCmd, nil)
	}); err != nil {
		t.Fatalf("weeklyCmd.RunE: %v", err)
	}

	relPath, _ := notes.Weekly(time.Now(), "")
	v.AssertFileExists(relPath)
}

func TestJournalMonthlyCreatesNote(t *testing.T) {
	v := useVault(t)

	if err := captureRun(t, func() error {
		return monthlyCmd.RunE(monthlyCmd, nil)
	}); err != nil {
		t.Fatalf("monthlyCmd.RunE: %v", err)
	}

	relPath, _ := notes.Monthly(time.Now(), "")
	v.AssertFileExists(relPath)
}

func TestJournalDailyTagsFlag(t *testing.T) {
	v := useVault(t)

	prevTags := journalTagsFlag
	t.Cleanup(func() { journalTagsFlag = prevTags })
	journalTagsFlag = "faith, focus"

	if err := captureRun(t, func() error {
		return dailyCmd.RunE(dailyCmd, nil)
	}); err != nil {
		t.Fatalf("dailyCmd.RunE: %v", err)
	}

	relPath, _ := notes.Daily(time.Now(), "")
	v.AssertFileContains(relPath, "#faith #focus")
}
