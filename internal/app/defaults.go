package app

import (
	"fmt"
	"os"
	"path/filepath"
)

// GetDefaults returns application default paths, checking environment
// variables first. Environment variables:
//   - CLIPSYNC_CONFIG_PATH: config file location (default: ~/.config/clipsync.toml)
//   - CLIPSYNC_HOME: base directory for clipsync data (default: ~/.local/share/clipsync)
func GetDefaults() (map[string]string, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	baseDir, err := getBaseDir()
	if err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot determine home directory: %w", err)
	}

	return map[string]string{
		"config_path": configPath,
		"base_dir":    baseDir,
		"home_dir":    homeDir,
		"log_dir":     filepath.Join(baseDir, "log"),
	}, nil
}

// getConfigPath returns the config file path, checking CLIPSYNC_CONFIG_PATH
// first, then falling back to the default ~/.config/clipsync.toml.
func getConfigPath() (string, error) {
	if path := os.Getenv("CLIPSYNC_CONFIG_PATH"); path != "" {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "clipsync.toml"), nil
}

// getBaseDir returns the base directory for clipsync data, checking
// CLIPSYNC_HOME first, then falling back to the XDG default
// ~/.local/share/clipsync.
func getBaseDir() (string, error) {
	if path := os.Getenv("CLIPSYNC_HOME"); path != "" {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".local", "share", "clipsync"), nil
}
