package gitsync

import (
	"errors"
	"fmt"
	"os/exec"
	"sort"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	gitcfg "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// gitRepository implements Repository on top of go-git. go-git has no
// rebase support, so Rebase and AbortRebase shell out to the git binary.
type gitRepository struct {
	path string
	repo *gogit.Repository
	wt   *gogit.Worktree
}

// Open opens the vault directory as a git repository.
// Returns ErrNotARepository when the directory is not version controlled.
func Open(path string) (Repository, error) {
	repo, err := gogit.PlainOpen(path)
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", ErrNotARepository, path)
		}
		return nil, fmt.Errorf("failed to open repository at %s: %w", path, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to open worktree at %s: %w", path, err)
	}

	return &gitRepository{path: path, repo: repo, wt: wt}, nil
}

func (r *gitRepository) Changes() (Changes, error) {
	status, err := r.wt.Status()
	if err != nil {
		return Changes{}, fmt.Errorf("failed to read worktree status: %w", err)
	}

	var ch Changes
	for path, st := range status {
		switch {
		case st.Staging == gogit.Untracked && st.Worktree == gogit.Untracked:
			ch.Untracked = append(ch.Untracked, path)
		case st.Staging != gogit.Unmodified || st.Worktree != gogit.Unmodified:
			ch.Modified = append(ch.Modified, path)
		}
	}
	sort.Strings(ch.Modified)
	sort.Strings(ch.Untracked)
	return ch, nil
}

func (r *gitRepository) StageAll() error {
	if err := r.wt.AddWithOptions(&gogit.AddOptions{All: true}); err != nil {
		return fmt.Errorf("failed to stage changes: %w", err)
	}
	return nil
}

func (r *gitRepository) Commit(message string) (string, error) {
	hash, err := r.wt.Commit(message, &gogit.CommitOptions{Author: r.signature()})
	if err != nil {
		return "", fmt.Errorf("failed to commit: %w", err)
	}
	return hash.String()[:7], nil
}

// signature resolves the author from git config, falling back to a fixed
// identity when none is configured.
func (r *gitRepository) signature() *object.Signature {
	name, email := "sb", "sb@localhost"
	if cfg, err := r.repo.ConfigScoped(gitcfg.SystemScope); err == nil {
		if cfg.User.Name != "" {
			name = cfg.User.Name
		}
		if cfg.User.Email != "" {
			email = cfg.User.Email
		}
	}
	return &object.Signature{Name: name, Email: email, When: time.Now()}
}

func (r *gitRepository) Fetch(remote string) error {
	err := r.repo.Fetch(&gogit.FetchOptions{RemoteName: remote})
	if err != nil && !errors.Is(err, gogit.NoErrAlreadyUpToDate) {
		return fmt.Errorf("failed to fetch from %s: %w", remote, err)
	}
	return nil
}

func (r *gitRepository) Rebase(remote, branch string) error {
	return r.git("rebase", remote+"/"+branch)
}

func (r *gitRepository) AbortRebase() error {
	return r.git("rebase", "--abort")
}

func (r *gitRepository) Push(remote, branch string) error {
	head, err := r.repo.Head()
	if err != nil {
		return fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	refspec := gitcfg.RefSpec(fmt.Sprintf("refs/heads/%s:refs/heads/%s", head.Name().Short(), branch))
	err = r.repo.Push(&gogit.PushOptions{
		RemoteName: remote,
		RefSpecs:   []gitcfg.RefSpec{refspec},
	})
	if err != nil && !errors.Is(err, gogit.NoErrAlreadyUpToDate) {
		return fmt.Errorf("failed to push to %s/%s: %w", remote, branch, err)
	}
	return nil
}

// git runs the system git binary against the repository.
func (r *gitRepository) git(args ...string) error {
	cmd := exec.Command("git", append([]string{"-C", r.path}, args...)...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg == "" {
			return fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
		}
		return fmt.Errorf("git %s: %s", strings.Join(args, " "), msg)
	}
	return nil
}
