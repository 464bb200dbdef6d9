// Package config handles sb configuration and vault resolution.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultVaultName is the directory name searched for during
	// vault auto-discovery.
	DefaultVaultName = "second-brain"

	// DefaultInboxFolder holds unprocessed notes awaiting categorization.
	DefaultInboxFolder = "0_Inbox"

	// DefaultConfigFile is the user config location ("~" is expanded).
	DefaultConfigFile = "~/.sb_config.yml"

	// MarkerDir identifies a directory as a valid vault.
	MarkerDir = ".obsidian"
)

// Config is the effective configuration for one command invocation.
// It is resolved once and read-only afterwards.
type Config struct {
	// VaultPath is the vault root directory.
	VaultPath string `yaml:"vault_path"`

	// InboxFolder is the subfolder treated as the unprocessed-notes inbox.
	InboxFolder string `yaml:"inbox_folder"`

	// LoadedFrom is the config file the values came from, or empty when
	// the file was absent and defaults were used. Not part of the file.
	LoadedFrom string `yaml:"-"`
}

// VaultErrorCause distinguishes the ways vault resolution can fail.
type VaultErrorCause int

const (
	// NoVaultFound means neither config, discovery, nor an override
	// produced a vault path.
	NoVaultFound VaultErrorCause = iota

	// InvalidPath means the resolved path does not exist or is not a
	// directory.
	InvalidPath

	// NotAVault means the path exists but lacks the vault marker.
	NotAVault
)

// InvalidVaultError reports a failed vault resolution with the check that
// failed and, when known, the offending path.
type InvalidVaultError struct {
	Cause VaultErrorCause
	Path  string
}

func (e *InvalidVaultError) Error() string {
	switch e.Cause {
	case NoVaultFound:
		return "no second-brain vault found"
	case InvalidPath:
		return fmt.Sprintf("invalid vault path: %s", e.Path)
	case NotAVault:
		return fmt.Sprintf("%s is not a valid vault (missing %s)", e.Path, MarkerDir)
	default:
		return "invalid vault"
	}
}

// Load reads a config file. A missing file is not an error: the second
// result is false and defaults are returned.
func Load(path string) (*Config, bool, error) {
	cfg := &Config{InboxFolder: DefaultInboxFolder}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, false, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.InboxFolder == "" {
		cfg.InboxFolder = DefaultInboxFolder
	}
	cfg.LoadedFrom = path
	return cfg, true, nil
}

// Resolve produces the effective configuration for a command.
//
// Precedence for the vault path: explicit override > config file value >
// auto-discovery from the working directory. The final path has "~"
// expanded and must be an existing directory containing the vault marker,
// otherwise an *InvalidVaultError describes which check failed.
func Resolve(configFile, vaultOverride string) (*Config, error) {
	if configFile == "" {
		configFile = DefaultConfigFile
	}
	configFile, err := ExpandHome(configFile)
	if err != nil {
		return nil, err
	}

	cfg, _, err := Load(configFile)
	if err != nil {
		return nil, err
	}

	if cfg.VaultPath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to determine working directory: %w", err)
		}
		cfg.VaultPath = FindVaultRoot(cwd, DefaultVaultName)
	}
	if vaultOverride != "" {
		cfg.VaultPath = vaultOverride
	}

	if cfg.VaultPath == "" {
		return nil, &InvalidVaultError{Cause: NoVaultFound}
	}

	cfg.VaultPath, err = ExpandHome(cfg.VaultPath)
	if err != nil {
		return nil, err
	}

	if err := validateVault(cfg.VaultPath); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validateVault confirms the path is an existing directory containing the
// vault marker subdirectory.
func validateVault(path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return &InvalidVaultError{Cause: InvalidPath, Path: path}
	}
	if _, err := os.Stat(filepath.Join(path, MarkerDir)); err != nil {
		return &InvalidVaultError{Cause: NotAVault, Path: path}
	}
	return nil
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to expand %s: %w", path, err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
