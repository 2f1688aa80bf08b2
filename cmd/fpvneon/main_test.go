package main

import (
	"bytes"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("fpvneon %s: %v\n%s", strings.Join(args, " "), err, out.String())
	}
	return out.String()
}

func TestSimCommand(t *testing.T) {
	out := execute(t, "sim", "--seed", "3", "--ticks", "120", "--render", "--log-level", "error")

	for _, want := range []string{"outcome", "score", "difficulty"} {
		if !strings.Contains(out, want) {
			t.Errorf("sim output is missing %q:\n%s", want, out)
		}
	}
}

func TestProfilesCommand(t *testing.T) {
	out := execute(t, "profiles")

	for _, want := range []string{"EASY", "NORMAL", "HARD", "IMPOSSIBLE"} {
		if !strings.Contains(out, want) {
			t.Errorf("profiles output is missing %q:\n%s", want, out)
		}
	}
}

func TestConfigCommand(t *testing.T) {
	out := execute(t, "config")
	if !strings.Contains(out, "camp_threshold") {
		t.Errorf("config output does not look like the tuning YAML:\n%s", out)
	}
}

func TestInvalidLogLevel(t *testing.T) {
	rootCmd.SetArgs([]string{"sim", "--log-level", "loud", "--ticks", "1"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	if err := rootCmd.Execute(); err == nil {
		t.Error("an unknown log level should fail")
	}
	flagLogLevel = "info"
}
