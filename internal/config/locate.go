package config

import (
	"os"
	"path/filepath"
)

// FindVaultRoot searches for the vault directory, walking from startDir
// toward the filesystem root. At each level it checks for an immediate
// child directory named vaultName; if no child matches anywhere, it walks
// again checking whether the directory itself carries the name (the case
// of running from inside the vault). Returns "" when nothing matches.
func FindVaultRoot(startDir, vaultName string) string {
	for dir := startDir; ; dir = filepath.Dir(dir) {
		candidate := filepath.Join(dir, vaultName)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}
		if dir == filepath.Dir(dir) {
			break
		}
	}

	for dir := startDir; ; dir = filepath.Dir(dir) {
		if filepath.Base(dir) == vaultName {
			return dir
		}
		if dir == filepath.Dir(dir) {
			break
		}
	}

	return ""
}
