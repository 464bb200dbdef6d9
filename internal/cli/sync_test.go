package cli

import (
	"errors"
	"testing"

	"github.com/calebmoore/sb/internal/gitsync"
)

func TestSyncRequiresARepository(t *testing.T) {
	useVault(t)

	err := captureRun(t, func() error {
		return syncCmd.RunE(syncCmd, nil)
	})
	if !errors.Is(err, gitsync.ErrNotARepository) {
		t.Fatalf("expected ErrNotARepository for a vault without .git, got: %v", err)
	}
}
