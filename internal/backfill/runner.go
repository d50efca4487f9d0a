// Package backfill drives the commit-history synthesis loop.
package backfill

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/grovetool/gitfill/internal/config"
	"github.com/grovetool/gitfill/internal/git"
	"github.com/grovetool/gitfill/internal/output"
	"github.com/grovetool/gitfill/internal/plan"
)

// progressEvery is the day interval between progress reports.
const progressEvery = 100

// Options configures a backfill run.
type Options struct {
	// Dir is the target repository directory.
	Dir string
	// StartYear is the first year of the backfill window.
	StartYear int
	// CommitsPerDay is the number of commits generated per calendar day.
	CommitsPerDay int
	// Seed seeds the message-choice randomness.
	Seed int64
	// MaxDays caps the total days processed when > 0.
	MaxDays int
	// DryRun computes and reports the plan without mutating anything.
	DryRun bool
	// LogFile is the append-only log file name inside Dir.
	LogFile string
	// Messages overrides the built-in commit message pool when non-empty.
	Messages []string
	// Now returns the current time; defaults to time.Now.
	Now func() time.Time
}

// Result reports what a run processed.
type Result struct {
	Days    int  `json:"days"`
	Commits int  `json:"commits"`
	DryRun  bool `json:"dry_run"`
}

// Runner executes a backfill run against one repository directory.
type Runner struct {
	opts    Options
	printer *output.Printer
}

// New creates a Runner with defaults applied.
func New(opts Options, printer *output.Printer) *Runner {
	if opts.LogFile == "" {
		opts.LogFile = config.DefaultLogFile
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Runner{opts: opts, printer: printer}
}

// Run performs the backfill: pre-flight checks, repository bootstrap,
// then one commit per planned timestamp in chronological order with a
// strictly increasing global index starting at 1.
//
// A failed commit is reported and skipped; the run continues with the
// next planned commit. Progress is reported every 100 processed days.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	info, err := os.Stat(r.opts.Dir)
	if err != nil || !info.IsDir() {
		return nil, output.NewUserError("directory does not exist: " + r.opts.Dir)
	}

	startDay, totalDays := plan.Days(r.opts.StartYear, r.opts.Now(), r.opts.MaxDays)
	totalCommits := totalDays * r.opts.CommitsPerDay

	r.human("Planned: %d days, %d commits (%d/day)\n", totalDays, totalCommits, r.opts.CommitsPerDay)
	if r.opts.DryRun {
		r.human("Dry run: no git commands will be run.\n")
		return &Result{Days: totalDays, Commits: totalCommits, DryRun: true}, nil
	}

	if err := Bootstrap(r.opts.Dir); err != nil {
		return nil, err
	}
	logPath := filepath.Join(r.opts.Dir, r.opts.LogFile)
	if err := ensureLogFile(logPath); err != nil {
		return nil, err
	}

	picker := plan.NewPicker(r.opts.Messages, r.opts.Seed)
	days, commits := 0, 0
	for d := 0; d < totalDays; d++ {
		day := startDay.AddDate(0, 0, d)
		for _, at := range plan.Timestamps(day, r.opts.CommitsPerDay) {
			msg := picker.Pick(at)
			if err := r.commitOne(ctx, logPath, at, msg, commits+1); err != nil {
				if ctx.Err() != nil {
					return nil, output.NewSystemErrorWithCause("run interrupted", ctx.Err())
				}
				r.printer.Warn("commit #%d failed: %v", commits+1, err)
			}
			commits++
		}
		days++
		if days%progressEvery == 0 {
			r.human("  %d days, %d commits...\n", days, commits)
		}
	}

	r.human("Done. %d days, %d commits.\n", days, commits)
	return &Result{Days: days, Commits: commits}, nil
}

// commitOne appends the log line for one planned commit, stages the log
// file, and commits with the author and committer dates overridden.
//
// The log append is rolled back when the commit fails so the log file
// never claims a commit that does not exist in the history.
func (r *Runner) commitOne(ctx context.Context, logPath string, at time.Time, msg string, index int) error {
	prev, err := os.ReadFile(logPath)
	if err != nil {
		return output.NewSystemErrorWithCause("failed to read log file", err)
	}

	line := fmt.Sprintf("%s | commit #%d\n", at.Format(git.DateFormat), index)
	if err := os.WriteFile(logPath, append(prev, line...), 0o644); err != nil {
		return output.NewSystemErrorWithCause("failed to write log file", err)
	}

	commitErr := git.Add(r.opts.Dir, filepath.Base(logPath))
	if commitErr == nil {
		commitErr = git.CommitContext(ctx, r.opts.Dir, msg, at)
	}
	if commitErr != nil {
		if restoreErr := os.WriteFile(logPath, prev, 0o644); restoreErr != nil {
			r.printer.Warn("failed to roll back log file after failed commit: %v", restoreErr)
		}
		return commitErr
	}
	return nil
}

// human prints progress text in human mode only; JSON mode emits a
// single structured result at the end of the run instead.
func (r *Runner) human(format string, args ...any) {
	if r.printer.IsJSON() {
		return
	}
	r.printer.Print(format, args...)
}
