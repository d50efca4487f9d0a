// Package git provides Git operations via exec for the gitfill CLI.
package git

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/grovetool/gitfill/internal/output"
)

// Run executes a git command in the given directory.
// It captures stdout and returns it as a trimmed string.
// Returns an *output.ExitError on failure with appropriate exit code.
func Run(dir string, args ...string) (string, error) {
	return RunContext(context.Background(), dir, args...)
}

// RunContext executes a git command with the given context in the given directory.
// It captures stdout and returns it as a trimmed string.
// Returns an *output.ExitError on failure with appropriate exit code.
func RunContext(ctx context.Context, dir string, args ...string) (string, error) {
	return runContext(ctx, dir, nil, args...)
}

// runContext is the shared executor. extraEnv entries are appended to a fresh
// copy of the process environment for this invocation only; the process
// environment itself is never modified.
func runContext(ctx context.Context, dir string, extraEnv []string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	if len(extraEnv) > 0 {
		cmd.Env = append(os.Environ(), extraEnv...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return "", output.NewSystemError("git not found: ensure git is installed and in PATH")
		}

		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = err.Error()
		}
		return "", output.NewSystemErrorWithCause("git command failed: "+errMsg, err)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// IsRepo checks if the given directory contains git metadata.
// It stats .git in the directory itself rather than asking git, so a target
// nested inside some other repository's working tree does not count.
func IsRepo(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil && info.IsDir()
}

// Init initializes a new git repository in the given directory.
func Init(dir string) error {
	if _, err := Run(dir, "init"); err != nil {
		return output.NewSystemErrorWithCause("failed to initialize repository", err)
	}
	return nil
}

// HasUncommittedChanges returns true if the working tree has staged,
// unstaged, or untracked changes.
func HasUncommittedChanges(dir string) (bool, error) {
	out, err := Run(dir, "status", "--porcelain")
	if err != nil {
		return false, output.NewSystemErrorWithCause("failed to query working tree status", err)
	}
	return strings.TrimSpace(out) != "", nil
}

// Add stages the given path in the repository at dir.
func Add(dir string, path string) error {
	_, err := Run(dir, "add", path)
	return err
}
