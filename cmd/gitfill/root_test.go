package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grovetool/gitfill/internal/output"
)

func TestRootFlagDefaults(t *testing.T) {
	cmd := newRootCmd()

	tests := []struct {
		flag string
		want string
	}{
		{flag: "start-year", want: "2020"},
		{flag: "commits-per-day", want: "30"},
		{flag: "seed", want: "42"},
		{flag: "max-days", want: "0"},
		{flag: "dry-run", want: "false"},
	}

	for _, testCase := range tests {
		t.Run(testCase.flag, func(t *testing.T) {
			flag := cmd.Flags().Lookup(testCase.flag)
			if flag == nil {
				t.Fatalf("flag --%s not registered", testCase.flag)
			}
			if flag.DefValue != testCase.want {
				t.Errorf("--%s default = %q, want %q", testCase.flag, flag.DefValue, testCase.want)
			}
		})
	}

	if cmd.PersistentFlags().Lookup("json") == nil {
		t.Error("persistent --json flag not registered")
	}
}

func TestRootDryRun(t *testing.T) {
	dir := t.TempDir()
	cmd := newRootCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--dry-run", "--max-days", "2", "--commits-per-day", "3", dir})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}

	if !strings.Contains(buf.String(), "Planned: 2 days, 6 commits (3/day)") {
		t.Errorf("plan line missing from output:\n%s", buf.String())
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("dry run created files: %v", entries)
	}
}

func TestRootDryRunJSON(t *testing.T) {
	dir := t.TempDir()
	cmd := newRootCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--json", "--dry-run", "--max-days", "2", "--commits-per-day", "3", dir})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if got["days"] != float64(2) || got["commits"] != float64(6) {
		t.Errorf("JSON plan = %v, want 2 days, 6 commits", got)
	}
	if got["dry_run"] != true {
		t.Errorf("dry_run = %v, want true", got["dry_run"])
	}
}

func TestRootMissingDirectory(t *testing.T) {
	cmd := newRootCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--dry-run", filepath.Join(t.TempDir(), "missing")})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("Execute() expected error for missing directory")
	}
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", code, output.ExitUserError)
	}
	if !strings.Contains(buf.String(), "directory does not exist") {
		t.Errorf("error message missing from output:\n%s", buf.String())
	}
}

func TestRootRejectsExtraArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"one", "two"})

	if err := cmd.Execute(); err == nil {
		t.Error("Execute() accepted two positional arguments")
	}
}

func TestBuildVersion(t *testing.T) {
	if got := buildVersion(); got != "dev" {
		t.Errorf("buildVersion() = %q, want %q for default build info", got, "dev")
	}
}
