// Package git provides Git operations via exec for the gitfill CLI.
//
// This package wraps git commands by shelling out to the git executable,
// capturing stdout/stderr and translating failures to *output.ExitError
// values. All operations are scoped to an explicit repository directory
// because gitfill targets a directory given on the command line rather
// than the process working directory.
//
// For custom git commands, use Run or RunContext:
//
//	out, err := git.Run(dir, "status", "--porcelain")
//	out, err := git.RunContext(ctx, dir, "rev-list", "--count", "HEAD")
//
// Commit supports overriding the author and committer dates, which git
// reads from GIT_AUTHOR_DATE/GIT_COMMITTER_DATE. The override is passed
// on a per-invocation environment slice; the process environment is
// never mutated.
package git
