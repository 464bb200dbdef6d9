// Package gitsync synchronizes a vault directory with its git remote.
//
// The git surface is kept behind the Repository interface so the engine's
// orchestration (commit, fetch, rebase, push, abort-on-failure) can be
// exercised against a fake without a real repository.
package gitsync

import (
	"errors"
	"time"
)

const (
	// DefaultRemote is the remote every sync targets.
	DefaultRemote = "origin"

	// DefaultBranch is the branch synced when none is given.
	DefaultBranch = "main"
)

// ErrNotARepository means the vault directory is not version controlled.
var ErrNotARepository = errors.New("not a git repository")

// Changes describes the uncommitted state of the working tree.
type Changes struct {
	// Modified are tracked files with local modifications or deletions.
	Modified []string

	// Untracked are files not yet known to the index.
	Untracked []string
}

// Total is the staged-file count reported to the user: tracked changes
// plus untracked files.
func (c Changes) Total() int {
	return len(c.Modified) + len(c.Untracked)
}

// Empty reports whether the working tree is clean.
func (c Changes) Empty() bool {
	return c.Total() == 0
}

// Paths returns all changed paths, modified first, each set sorted.
func (c Changes) Paths() []string {
	out := make([]string, 0, c.Total())
	out = append(out, c.Modified...)
	out = append(out, c.Untracked...)
	return out
}

// Repository is the handle the sync engine drives. Implementations map
// each method onto one version-control operation.
type Repository interface {
	// Changes inspects the working tree, including untracked files.
	Changes() (Changes, error)

	// StageAll stages every tracked modification and untracked file.
	StageAll() error

	// Commit records the staged changes and returns a short commit id.
	Commit(message string) (string, error)

	// Fetch updates remote-tracking refs from the named remote.
	// "Already up to date" is success, not an error.
	Fetch(remote string) error

	// Rebase replays local commits onto <remote>/<branch>.
	Rebase(remote, branch string) error

	// AbortRebase restores a clean working state after a failed rebase.
	AbortRebase() error

	// Push publishes the current branch to <branch> on the remote.
	// "Already up to date" is success, not an error.
	Push(remote, branch string) error
}

// DefaultMessage is the commit message used when none is given.
func DefaultMessage(now time.Time) string {
	return "vault sync " + now.Format("2006-01-02 15:04")
}
