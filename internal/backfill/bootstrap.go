package backfill

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/grovetool/gitfill/internal/git"
	"github.com/grovetool/gitfill/internal/output"
)

// defaultReadme is written into freshly initialized repositories so the
// initial commit has content.
const defaultReadme = "# Git Commit History\n\nBackfilled commit history.\n"

// Bootstrap prepares the target directory for a backfill run.
//
// A directory without git metadata is initialized as a new repository
// with a README and an initial commit (ambient time, no date override).
// An existing repository must have a clean working tree; uncommitted
// changes abort the run before any commits are made.
func Bootstrap(dir string) error {
	if !git.IsRepo(dir) {
		return initRepo(dir)
	}

	dirty, err := git.HasUncommittedChanges(dir)
	if err != nil {
		return err
	}
	if dirty {
		return output.NewUserError("working tree has uncommitted changes; commit or stash them first")
	}
	return nil
}

// initRepo initializes a fresh repository with an initial commit.
func initRepo(dir string) error {
	if err := git.Init(dir); err != nil {
		return err
	}

	readme := filepath.Join(dir, "README.md")
	if _, err := os.Stat(readme); errors.Is(err, fs.ErrNotExist) {
		if err := os.WriteFile(readme, []byte(defaultReadme), 0o644); err != nil {
			return output.NewSystemErrorWithCause("failed to write README.md", err)
		}
		if err := git.Add(dir, "README.md"); err != nil {
			return err
		}
		if err := git.Commit(dir, "Initial commit", time.Time{}); err != nil {
			return err
		}
	}
	return nil
}

// ensureLogFile creates the append-only log file if it does not exist.
func ensureLogFile(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return output.NewSystemErrorWithCause("failed to stat log file", err)
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		return output.NewSystemErrorWithCause("failed to create log file", err)
	}
	return nil
}
