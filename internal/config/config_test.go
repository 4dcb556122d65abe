package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	if got, want := Default(), DefaultPlatformer(); !reflect.DeepEqual(got, want) {
		t.Errorf("embedded defaults drifted from DefaultPlatformer():\n got %+v\nwant %+v", got, want)
	}
}

func TestDefaultValidates(t *testing.T) {
	if err := DefaultPlatformer().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("world:\n  gravity: 1.2\ncharacters:\n  dudu:\n    jump_force: -18\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.World.Gravity != 1.2 {
		t.Errorf("gravity = %v, expected 1.2", cfg.World.Gravity)
	}
	if cfg.Characters.Dudu.JumpForce != -18 {
		t.Errorf("dudu jump = %v, expected -18", cfg.Characters.Dudu.JumpForce)
	}
	// Untouched values keep their defaults
	if cfg.World.Width != 1024 || cfg.Characters.Dudu.Speed != 5 {
		t.Errorf("partial override should keep defaults, got width=%v speed=%v",
			cfg.World.Width, cfg.Characters.Dudu.Speed)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero width", "world:\n  width: 0\n"},
		{"no lives", "player:\n  start_lives: 0\n"},
		{"no bands", "rules:\n  end_bands: []\n"},
		{"smoothing above one", "camera:\n  smoothing: 2\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Parse() error = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestParseMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("world: [1, 2")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("scores:\n  coin: 250\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Scores.Coin != 250 {
		t.Errorf("coin = %d, expected 250", cfg.Scores.Coin)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestWorldHelpers(t *testing.T) {
	w := DefaultPlatformer().World
	if w.MaxX() != 3072 {
		t.Errorf("MaxX() = %v, expected 3072", w.MaxX())
	}
	if w.SoftFloor() != 700 {
		t.Errorf("SoftFloor() = %v, expected 700", w.SoftFloor())
	}
}
