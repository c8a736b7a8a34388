package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRootCmd(t *testing.T) {
	t.Chdir(t.TempDir())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cmd := newRootCmd(logger)

	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(strings.Join([]string{
		"hello world",
		"TEST START: run1",
		"TEST RESULTS: iter=1 reps=10 total=500",
		"TEST COMPLETE",
	}, "\n") + "\n"))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if stdout.String() != "hello world\n" {
		t.Errorf("stdout = %q, want %q", stdout.String(), "hello world\n")
	}

	data, err := os.ReadFile(filepath.Join("results", "run1.csv"))
	if err != nil {
		t.Fatalf("read results: %v", err)
	}

	want := "iteration,nreps,total duration,duration\r\n1,10,500,50.0\r\n"
	if string(data) != want {
		t.Errorf("run1.csv = %q, want %q", data, want)
	}

	if !strings.Contains(stderr.String(), "| run1 | 1 | 50.00 | complete |") {
		t.Errorf("expected summary on stderr, got:\n%s", stderr.String())
	}
}

func TestRootCmdNoTestsNoReport(t *testing.T) {
	t.Chdir(t.TempDir())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cmd := newRootCmd(logger)

	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader("just logs\n"))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if stdout.String() != "just logs\n" {
		t.Errorf("stdout = %q, want %q", stdout.String(), "just logs\n")
	}
	if stderr.Len() != 0 {
		t.Errorf("stderr = %q, want empty", stderr.String())
	}
	if _, err := os.Stat("results"); err != nil {
		t.Errorf("results dir not created: %v", err)
	}
}

func TestRootCmdRejectsArgs(t *testing.T) {
	t.Chdir(t.TempDir())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cmd := newRootCmd(logger)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"input.log"})

	if err := cmd.Execute(); err == nil {
		t.Error("expected error for positional argument")
	}
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		env     string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"debug", slog.LevelDebug, false},
		{"WARN", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv("COMPILERESULTS_LOG_LEVEL", tt.env)

			cfg, err := loadConfig()
			if err != nil {
				t.Fatalf("loadConfig failed: %v", err)
			}

			got, err := cfg.level()
			if (err != nil) != tt.wantErr {
				t.Fatalf("level() err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("level = %v, want %v", got, tt.want)
			}
		})
	}
}
