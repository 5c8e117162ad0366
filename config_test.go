package main

import (
	"os"
	"path/filepath"
	"testing"
	"yazz/eval"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "yazz.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "missing.yml"), writeConfig(t, "")} {
		cfg, err := loadConfig(path)
		if err != nil {
			t.Errorf("%q: unexpected error %s", path, err)
			continue
		}
		if *cfg != *defaultConfig() {
			t.Errorf("%q: expected defaults, got=%+v", path, cfg)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
prompt: "yazz> "
history_file: /tmp/yazz_history
banner: false
max_call_depth: 0
`)
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	expected := Config{
		Prompt:       "yazz> ",
		HistoryFile:  "/tmp/yazz_history",
		Banner:       false,
		MaxCallDepth: 0,
	}
	if *cfg != expected {
		t.Errorf("expected=%+v, got=%+v", expected, *cfg)
	}
}

func TestLoadConfigPartial(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, "prompt: \">> \"\n"))
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if cfg.Prompt != ">> " || !cfg.Banner || cfg.MaxCallDepth != eval.DefaultMaxDepth {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []string{
		"unknown_key: 1\n",
		"max_call_depth: -1\n",
		"max_call_depth: lots\n",
		"prompt: [\n",
	}
	for i, content := range tests {
		if _, err := loadConfig(writeConfig(t, content)); err == nil {
			t.Errorf("tests[%d] (%q): expected an error", i, content)
		}
	}
}

func TestConfigPathEnv(t *testing.T) {
	t.Setenv("YAZZ_CONFIG", "/etc/yazz.yml")
	if p := configPath(); p != "/etc/yazz.yml" {
		t.Errorf("expected=%q, got=%q", "/etc/yazz.yml", p)
	}
}
