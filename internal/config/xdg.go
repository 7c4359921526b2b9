// Package config provides configuration helpers and TOML parsing.
package config

import (
	"os"
	"path/filepath"
)

const appName = "cats"

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultParagraphsPath returns the default paragraph file path.
func DefaultParagraphsPath() string {
	return filepath.Join(XDGConfigHome(), appName, "paragraphs.txt")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), appName, "config.toml")
}
