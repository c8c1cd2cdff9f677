package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir string, body string) {
	t.Helper()
	path := filepath.Join(dir, ".scrawl", "config.json")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func overrideHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	restore := SetUserHomeDirForTest(func() (string, error) {
		return home, nil
	})
	t.Cleanup(restore)
	return home
}

func TestLoadGlobalConfigReadsFile(t *testing.T) {
	home := overrideHome(t)
	writeConfig(t, home, `{"schemaVersion":1,"canvas":{"gridCellSize":16}}`)

	cfg, present, err := LoadGlobalConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !present {
		t.Fatalf("expected config to be present")
	}
	if cfg.Canvas == nil || cfg.Canvas.GridCellSize == nil || *cfg.Canvas.GridCellSize != 16 {
		t.Fatalf("gridCellSize = %#v, want 16", cfg.Canvas)
	}
	if cfg.Canvas.ShowGrid != nil {
		t.Fatalf("showGrid should be unset, got %#v", cfg.Canvas.ShowGrid)
	}
}

func TestLoadGlobalConfigMissingFileSkips(t *testing.T) {
	overrideHome(t)

	cfg, present, err := LoadGlobalConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if present {
		t.Fatalf("expected config to be missing")
	}
	if cfg.Canvas != nil || cfg.TUI != nil {
		t.Fatalf("expected empty config, got %#v", cfg)
	}
}

func TestLoadConfigProjectOverridesGlobal(t *testing.T) {
	home := overrideHome(t)
	project := t.TempDir()
	writeConfig(t, home, `{"schemaVersion":1,"canvas":{"gridCellSize":16,"showGrid":false}}`)
	writeConfig(t, project, `{"schemaVersion":1,"canvas":{"gridCellSize":10}}`)

	resolved, err := LoadConfig(project)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if resolved.Canvas.GridCellSize != 10 {
		t.Fatalf("gridCellSize = %d, want 10", resolved.Canvas.GridCellSize)
	}
	if resolved.Canvas.ShowGrid != false {
		t.Fatalf("showGrid = %v, want false (from global)", resolved.Canvas.ShowGrid)
	}
	if resolved.TUI.ShowHelpBar != DefaultShowHelpBar {
		t.Fatalf("showHelpBar = %v, want default", resolved.TUI.ShowHelpBar)
	}
}

func TestLoadConfigRejectsInvalidJSON(t *testing.T) {
	home := overrideHome(t)
	writeConfig(t, home, `{"canvas":`)

	if _, err := LoadConfig(t.TempDir()); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLoadConfigRejectsUnsupportedSchema(t *testing.T) {
	home := overrideHome(t)
	writeConfig(t, home, `{"schemaVersion":99}`)

	if _, err := LoadConfig(t.TempDir()); err == nil {
		t.Fatalf("expected schema version error")
	}
}
