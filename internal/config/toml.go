// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Practice PracticeConfig `toml:"practice"`
	Race     RaceConfig     `toml:"race"`
}

// PracticeConfig maps practice-related settings.
type PracticeConfig struct {
	Paragraphs  *string `toml:"paragraphs"`
	Dictionary  *string `toml:"dictionary"`
	Autocorrect *bool   `toml:"autocorrect"`
	Metric      *string `toml:"metric"`
	Limit       *int    `toml:"limit"`
}

// RaceConfig maps multiplayer reporting settings.
type RaceConfig struct {
	UserID    *int    `toml:"user-id"`
	Report    *bool   `toml:"report"`
	UploadURL *string `toml:"upload-url"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
