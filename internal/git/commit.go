package git

import (
	"context"
	"time"
)

// DateFormat is the timestamp layout git accepts for date overrides and
// the layout used throughout gitfill for log lines.
const DateFormat = "2006-01-02 15:04:05"

// Commit records a commit with the given message in the repository at dir.
// A zero date commits with ambient time; a non-zero date overrides both the
// author and committer dates.
func Commit(dir string, message string, date time.Time) error {
	return CommitContext(context.Background(), dir, message, date)
}

// CommitContext is Commit with an explicit context.
// The date override is passed as GIT_AUTHOR_DATE/GIT_COMMITTER_DATE on a
// per-invocation environment, never by mutating the process environment.
func CommitContext(ctx context.Context, dir string, message string, date time.Time) error {
	var env []string
	if !date.IsZero() {
		ts := date.Format(DateFormat)
		env = []string{
			"GIT_AUTHOR_DATE=" + ts,
			"GIT_COMMITTER_DATE=" + ts,
		}
	}
	_, err := runContext(ctx, dir, env, "commit", "-m", message)
	return err
}
