package gitsync

import (
	"fmt"
)

// maxReportedPaths caps how many changed files are listed per sync.
const maxReportedPaths = 10

// Reporter receives user-facing progress messages from the engine.
// The fatal error itself is returned from Sync, not reported here, so the
// command boundary prints it exactly once.
type Reporter interface {
	Info(msg string)
	Success(msg string)
	Warn(msg string)
}

// Outcome summarizes one sync invocation.
type Outcome struct {
	StagedFiles int
	CommitID    string
	Fetched     bool
	Rebased     bool
	Pushed      bool
}

// Engine runs the commit -> fetch -> rebase -> push workflow against a
// repository handle. No step is retried; the rebase abort is cleanup, not
// a retry.
type Engine struct {
	repo Repository
	rep  Reporter
}

// New creates an engine for the given repository.
func New(repo Repository, rep Reporter) *Engine {
	return &Engine{repo: repo, rep: rep}
}

// Sync commits local changes, integrates the remote branch, and publishes
// the result. The returned Outcome reflects how far the workflow got; a
// non-nil error means the sync failed at the step the error describes.
func (e *Engine) Sync(branch, message string) (*Outcome, error) {
	out := &Outcome{}

	changes, err := e.repo.Changes()
	if err != nil {
		return out, fmt.Errorf("failed to inspect working tree: %w", err)
	}

	if changes.Empty() {
		e.rep.Info("no changes to commit")
	} else {
		if err := e.repo.StageAll(); err != nil {
			return out, err
		}
		commitID, err := e.repo.Commit(message)
		if err != nil {
			return out, err
		}
		out.StagedFiles = changes.Total()
		out.CommitID = commitID

		e.rep.Success(fmt.Sprintf("committed %d %s as %s",
			out.StagedFiles, pluralize("file", out.StagedFiles), commitID))
		e.reportPaths(changes.Paths())
	}

	if err := e.repo.Fetch(DefaultRemote); err != nil {
		return out, err
	}
	out.Fetched = true

	if err := e.repo.Rebase(DefaultRemote, branch); err != nil {
		if abortErr := e.repo.AbortRebase(); abortErr != nil {
			e.rep.Warn(fmt.Sprintf("rebase abort failed, manual intervention required: %v", abortErr))
		}
		return out, fmt.Errorf("rebase onto %s/%s failed: %w", DefaultRemote, branch, err)
	}
	out.Rebased = true

	if err := e.repo.Push(DefaultRemote, branch); err != nil {
		e.rep.Warn("push failed, a manual pull and push may be required")
		return out, err
	}
	out.Pushed = true

	e.rep.Success(fmt.Sprintf("vault synced with %s/%s", DefaultRemote, branch))
	return out, nil
}

// reportPaths lists up to maxReportedPaths changed files.
func (e *Engine) reportPaths(paths []string) {
	for i, p := range paths {
		if i == maxReportedPaths {
			e.rep.Info(fmt.Sprintf("  …and %d more", len(paths)-maxReportedPaths))
			return
		}
		e.rep.Info("  " + p)
	}
}

func pluralize(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
