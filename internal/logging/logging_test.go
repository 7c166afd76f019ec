package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewWritesLogFile(t *testing.T) {
	dir := t.TempDir()

	log := New(Config{Level: "info", Dir: dir})
	defer log.Close()

	log.Info().Str("component", "test").Msg("hello")

	data, err := os.ReadFile(filepath.Join(dir, LogFileName))
	if err != nil {
		t.Fatalf("Expected log file to exist, got %v", err)
	}
	if len(data) == 0 {
		t.Error("Expected log file to contain the written entry")
	}
}

func TestNewConsoleOnly(t *testing.T) {
	log := New(Config{Level: "warn"})
	defer log.Close()

	if log.GetLevel() != zerolog.WarnLevel {
		t.Errorf("Expected warn level, got %s", log.GetLevel())
	}
	if err := log.Close(); err != nil {
		t.Errorf("Expected nil close error without rotator, got %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestWithComponent(t *testing.T) {
	dir := t.TempDir()

	log := New(Config{Level: "info", Dir: dir})
	defer log.Close()

	sub := log.WithComponent("registry")
	sub.Info().Msg("component entry")

	data, err := os.ReadFile(filepath.Join(dir, LogFileName))
	if err != nil {
		t.Fatalf("Expected log file to exist, got %v", err)
	}
	if !strings.Contains(string(data), "registry") {
		t.Error("Expected component field in log output")
	}
}
