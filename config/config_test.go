package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValues(t *testing.T) {
	cfg := Default()

	if cfg.ColumnSpace != 100 {
		t.Errorf("ColumnSpace = %v, want 100", cfg.ColumnSpace)
	}
	if cfg.ColumnCount != 8 {
		t.Errorf("ColumnCount = %d, want 8", cfg.ColumnCount)
	}
	if cfg.NeedleLength != 75 {
		t.Errorf("NeedleLength = %v, want 75", cfg.NeedleLength)
	}
	if cfg.DefaultTargetFPS != 100 {
		t.Errorf("DefaultTargetFPS = %v, want 100", cfg.DefaultTargetFPS)
	}
	if cfg.BoardWidth() != 800 {
		t.Errorf("BoardWidth = %d, want 800", cfg.BoardWidth())
	}
	if cfg.WindowWidth() != 1000 {
		t.Errorf("WindowWidth = %d, want 1000", cfg.WindowWidth())
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load of a missing file: %v", err)
	}
	if cfg.ColumnSpace != 100 || cfg.ColumnCount != 8 {
		t.Errorf("missing file should yield defaults, got space %v count %d",
			cfg.ColumnSpace, cfg.ColumnCount)
	}
}

func TestLoadOverridesAndKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buffon.json")
	data := `{"column_space": 50, "needle_length": 40, "colors": {"needle_hit": "#ff8800"}}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ColumnSpace != 50 || cfg.NeedleLength != 40 {
		t.Errorf("overrides not applied: space %v length %v", cfg.ColumnSpace, cfg.NeedleLength)
	}
	if cfg.ColumnCount != 8 {
		t.Errorf("unset field lost its default: ColumnCount = %d", cfg.ColumnCount)
	}
	if got := cfg.Palette().NeedleHit; got != (color.RGBA{255, 136, 0, 255}) {
		t.Errorf("hex color parsed as %v", got)
	}
}

func TestLoadClampsNeedleLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buffon.json")
	data := `{"column_space": 80, "needle_length": 120}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.NeedleLength != 80 {
		t.Errorf("NeedleLength = %v, want clamp to column space 80", cfg.NeedleLength)
	}
}

func TestLoadRejectsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buffon.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected an error for malformed JSON")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"white", color.RGBA{255, 255, 255, 255}},
		{"red", color.RGBA{255, 0, 0, 255}},
		{"lightgray", color.RGBA{211, 211, 211, 255}},
		{"#102030", color.RGBA{16, 32, 48, 255}},
		{"notacolor", color.RGBA{0, 0, 0, 255}},
	}
	for _, tt := range tests {
		if got := ParseColor(tt.in); got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
