package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"picktrack/internal/config"
)

func TestLoadDefaultsExpandPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantData := filepath.Join(tempHome, ".local", "share", "picktrack")
	if cfg.Paths.DataDir != wantData {
		t.Fatalf("unexpected data dir: got %q want %q", cfg.Paths.DataDir, wantData)
	}
	if cfg.Paths.LogDir != filepath.Join(wantData, "logs") {
		t.Fatalf("unexpected log dir: %q", cfg.Paths.LogDir)
	}
	if cfg.Sleeper.BaseURL != "https://api.sleeper.app/v1" {
		t.Fatalf("unexpected base url: %q", cfg.Sleeper.BaseURL)
	}
	if cfg.Cache.TTLHours != 24 {
		t.Fatalf("unexpected cache ttl: %d", cfg.Cache.TTLHours)
	}
	if got := cfg.Report.Positions; len(got) != 1 || got[0] != "K" {
		t.Fatalf("unexpected default positions: %v", got)
	}
	if !cfg.Report.RoundMarker {
		t.Fatal("expected round marker enabled by default")
	}
	if cfg.CacheFile() != filepath.Join(wantData, "nfl_players.json") {
		t.Fatalf("unexpected cache file: %q", cfg.CacheFile())
	}
	if cfg.HistoryFile() != filepath.Join(wantData, "history.db") {
		t.Fatalf("unexpected history file: %q", cfg.HistoryFile())
	}
}

func TestLoadExplicitFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	contents := strings.Join([]string{
		"[sleeper]",
		`base_url = "http://localhost:9000/v1/"`,
		"",
		"[report]",
		`positions = ["k", " p "]`,
		"teams_per_round = 10",
		"round_marker = false",
		"",
		"[cache]",
		"ttl_hours = 6",
	}, "\n")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected config at %q to be used, got %q exists=%v", path, resolved, exists)
	}
	if cfg.Sleeper.BaseURL != "http://localhost:9000/v1" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.Sleeper.BaseURL)
	}
	if got := cfg.Report.Positions; len(got) != 2 || got[0] != "K" || got[1] != "P" {
		t.Fatalf("expected normalized positions [K P], got %v", got)
	}
	if cfg.Report.TeamsPerRound != 10 {
		t.Fatalf("unexpected teams per round: %d", cfg.Report.TeamsPerRound)
	}
	if cfg.Report.RoundMarker {
		t.Fatal("expected round marker disabled")
	}
	if cfg.Cache.TTLHours != 6 {
		t.Fatalf("unexpected ttl: %d", cfg.Cache.TTLHours)
	}
}

func TestLoadRejectsBadLogFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[logging]\nformat = \"xml\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for unsupported log format")
	}
}

func TestLoadRejectsEmptyPositions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[report]\npositions = [\" \"]\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for empty position set")
	}
}

func TestCreateSample(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[sleeper]") {
		t.Fatal("sample config missing [sleeper] section")
	}
}
