package gitsync

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	_, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)
	return dir
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestOpenNotARepository(t *testing.T) {
	_, err := Open(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotARepository))
}

func TestOpenAndChanges(t *testing.T) {
	dir := initRepo(t)
	writeFile(t, dir, "0_Inbox/idea.md", "# Idea\n")
	writeFile(t, dir, "note.md", "# Note\n")

	repo, err := Open(dir)
	require.NoError(t, err)

	changes, err := repo.Changes()
	require.NoError(t, err)
	assert.Empty(t, changes.Modified)
	assert.Equal(t, []string{"0_Inbox/idea.md", "note.md"}, changes.Untracked)
	assert.Equal(t, 2, changes.Total())
	assert.False(t, changes.Empty())
}

func TestStageCommitAndModify(t *testing.T) {
	dir := initRepo(t)
	writeFile(t, dir, "note.md", "# Note\n")

	repo, err := Open(dir)
	require.NoError(t, err)

	require.NoError(t, repo.StageAll())
	commitID, err := repo.Commit("first commit")
	require.NoError(t, err)
	assert.Len(t, commitID, 7)

	changes, err := repo.Changes()
	require.NoError(t, err)
	assert.True(t, changes.Empty(), "tree should be clean after commit")

	// A tracked modification plus a fresh untracked file.
	writeFile(t, dir, "note.md", "# Note\n\nmore\n")
	writeFile(t, dir, "new.md", "# New\n")

	changes, err = repo.Changes()
	require.NoError(t, err)
	assert.Equal(t, []string{"note.md"}, changes.Modified)
	assert.Equal(t, []string{"new.md"}, changes.Untracked)
	assert.Equal(t, 2, changes.Total())
}

func TestChangesPathsOrder(t *testing.T) {
	c := Changes{Modified: []string{"a.md", "b.md"}, Untracked: []string{"c.md"}}
	assert.Equal(t, []string{"a.md", "b.md", "c.md"}, c.Paths())
}
