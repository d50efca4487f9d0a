// Package main provides the entry point for the gitfill CLI.
package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/grovetool/gitfill/internal/backfill"
	"github.com/grovetool/gitfill/internal/config"
	"github.com/grovetool/gitfill/internal/output"
)

// rootFlags holds the command-line flags for the backfill run.
type rootFlags struct {
	startYear     int
	commitsPerDay int
	seed          int64
	maxDays       int
	dryRun        bool
}

// newRootCmd creates the root command for the gitfill CLI.
func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "gitfill [directory]",
		Short: "Backfill a git repository with synthetic commit history",
		Long: `Gitfill backfills a git repository with N commits per calendar day from
January 1 of a start year through today. Each commit appends one line to
history.txt and carries an overridden author/committer timestamp inside
that day's 08:00-23:59 window.

A directory without a repository is initialized fresh with a README and
an initial commit. An existing repository must have a clean working tree.

An optional .gitfill.yaml in the target directory can override the commit
message pool and the log file name.

Examples:
  gitfill                                # backfill current directory from 2020
  gitfill --start-year 2023 ~/scratch    # backfill a specific directory
  gitfill --dry-run --max-days 7         # report the plan, change nothing
  gitfill --commits-per-day 5 --seed 7   # fewer commits, different messages`,
		Version:       buildVersion(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBackfill(cmd, args, flags)
		},
	}

	cmd.Flags().IntVar(&flags.startYear, "start-year", 2020, "First year to generate commits")
	cmd.Flags().IntVar(&flags.commitsPerDay, "commits-per-day", 30, "Number of commits per day")
	cmd.Flags().Int64Var(&flags.seed, "seed", 42, "Random seed for commit message variety")
	cmd.Flags().IntVar(&flags.maxDays, "max-days", 0, "Limit the run to this many days (0 = no limit)")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Print what would be done without running git")
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")

	return cmd
}

// runBackfill executes the backfill run.
func runBackfill(cmd *cobra.Command, args []string, flags *rootFlags) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		err = output.NewUserError("invalid directory: " + err.Error())
		printer.Error(err)
		return err
	}

	cfg, err := config.Load(dir)
	if err != nil {
		printer.Error(err)
		return err
	}

	runner := backfill.New(backfill.Options{
		Dir:           dir,
		StartYear:     flags.startYear,
		CommitsPerDay: flags.commitsPerDay,
		Seed:          flags.seed,
		MaxDays:       flags.maxDays,
		DryRun:        flags.dryRun,
		LogFile:       cfg.LogFile,
		Messages:      cfg.Messages,
	}, printer)

	result, err := runner.Run(cmd.Context())
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"days":            result.Days,
			"commits":         result.Commits,
			"commits_per_day": flags.commitsPerDay,
			"dry_run":         result.DryRun,
			"directory":       dir,
		})
	}
	return nil
}
