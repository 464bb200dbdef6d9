// Package vault knows the fixed folder layout of a second-brain vault and
// provides note writing and folder statistics on top of it.
package vault

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Fixed note locations inside the vault.
const (
	BibleStudyDir = "1_Projects/Bible-Study"
	DailyDir      = "2_Areas/Journal/Daily"
	WeeklyDir     = "2_Areas/Journal/Weekly-Review"
	MonthlyDir    = "2_Areas/Journal/Monthly-Reflection"
)

// TopFolders are the PARA-style top-level folders reported by `sb info`.
var TopFolders = []string{"0_Inbox", "1_Projects", "2_Areas", "3_Resources", "4_Archive"}

// ReviewThreshold is the inbox note count above which a review is suggested.
const ReviewThreshold = 5

// ErrNoteExists means the target note is already present; callers treat
// this as a benign no-op, not a failure.
var ErrNoteExists = errors.New("note already exists")

// WriteNote writes a note at the vault-relative path, creating parent
// directories. An existing file is never overwritten: ErrNoteExists is
// returned instead.
func WriteNote(vaultPath, relPath, content string) error {
	path := filepath.Join(vaultPath, relPath)

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrNoteExists, relPath)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create note directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write note: %w", err)
	}
	return nil
}

// AppendToNote appends content to an existing note. Missing notes are
// left alone (no error): link appending is best effort.
func AppendToNote(vaultPath, relPath, content string) error {
	path := filepath.Join(vaultPath, relPath)
	if _, err := os.Stat(path); err != nil {
		return nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", relPath, err)
	}
	defer f.Close()

	if _, err := f.WriteString(content); err != nil {
		return fmt.Errorf("failed to append to %s: %w", relPath, err)
	}
	return nil
}

// NoteExists reports whether a vault-relative note path exists.
func NoteExists(vaultPath, relPath string) bool {
	_, err := os.Stat(filepath.Join(vaultPath, relPath))
	return err == nil
}

// FolderStat is one top-level folder's health for `sb info`.
type FolderStat struct {
	Name   string
	Exists bool
	Notes  int
}

// Info summarizes vault health.
type Info struct {
	Folders     []FolderStat
	InboxExists bool
	InboxNotes  int
}

// Stats walks the fixed top-level folders, counting markdown notes
// recursively, and counts unprocessed notes at the top of the inbox.
func Stats(vaultPath, inboxFolder string) (*Info, error) {
	info := &Info{}

	for _, name := range TopFolders {
		stat := FolderStat{Name: name}
		dir := filepath.Join(vaultPath, name)
		if fi, err := os.Stat(dir); err == nil && fi.IsDir() {
			stat.Exists = true
			n, err := countMarkdown(dir)
			if err != nil {
				return nil, err
			}
			stat.Notes = n
		}
		info.Folders = append(info.Folders, stat)
	}

	inbox := filepath.Join(vaultPath, inboxFolder)
	if fi, err := os.Stat(inbox); err == nil && fi.IsDir() {
		info.InboxExists = true
		entries, err := os.ReadDir(inbox)
		if err != nil {
			return nil, fmt.Errorf("failed to read inbox: %w", err)
		}
		for _, e := range entries {
			if !e.IsDir() && strings.HasSuffix(e.Name(), ".md") {
				info.InboxNotes++
			}
		}
	}

	return info, nil
}

// SuggestReview reports whether the inbox is overdue for processing.
func (i *Info) SuggestReview() bool {
	return i.InboxNotes > ReviewThreshold
}

func countMarkdown(dir string) (int, error) {
	count := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".md") {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to scan %s: %w", dir, err)
	}
	return count, nil
}
