// Package config loads the optional per-repository gitfill configuration.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/grovetool/gitfill/internal/output"
)

// FileName is the optional configuration file looked up in the target
// repository directory.
const FileName = ".gitfill.yaml"

// DefaultLogFile is the append-only log file name used when the
// configuration does not override it.
const DefaultLogFile = "history.txt"

// Config holds the per-repository overrides.
type Config struct {
	// Messages replaces the built-in commit message pool when set.
	Messages []string `yaml:"messages"`
	// LogFile replaces the default history.txt log file name when set.
	LogFile string `yaml:"log_file"`
}

// Load reads .gitfill.yaml from dir. A missing file yields the zero
// config with defaults applied; a present but malformed file is a user
// error.
func Load(dir string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// No config file; defaults apply.
	case err != nil:
		return nil, output.NewSystemErrorWithCause("failed to read "+FileName, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, output.NewUserError("invalid " + FileName + ": " + err.Error())
		}
	}

	if cfg.LogFile == "" {
		cfg.LogFile = DefaultLogFile
	}
	if filepath.Base(cfg.LogFile) != cfg.LogFile {
		return nil, output.NewUserError("invalid " + FileName + ": log_file must be a bare file name")
	}
	return cfg, nil
}
