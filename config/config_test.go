package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	def := DefaultConfig()
	if *cfg != *def {
		t.Fatalf("got %+v want defaults %+v", cfg, def)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := DefaultConfig()
	cfg.SquareMode = true
	cfg.Quality = 18
	cfg.SelectionX = 100
	cfg.SelectionY = 120
	cfg.SelectionW = 400
	cfg.SelectionH = 300
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *got != *cfg {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, cfg)
	}
}

func TestValidate_ClampsBadValues(t *testing.T) {
	cfg := &Config{
		HandleRadius:   -1,
		MinSelectionPx: 0,
		Encoder:        "",
		Quality:        99,
		PreviewMaxW:    10,
		PreviewMaxH:    0,
		SelectionW:     -5,
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if cfg.HandleRadius != 10 || cfg.MinSelectionPx != 10 {
		t.Errorf("selection defaults not applied: %+v", cfg)
	}
	if cfg.Encoder != "libx264" || cfg.Quality != 23 {
		t.Errorf("encoder defaults not applied: %+v", cfg)
	}
	if cfg.PreviewMaxW != 1280 || cfg.PreviewMaxH != 720 {
		t.Errorf("preview defaults not applied: %+v", cfg)
	}
	if cfg.SelectionW != 0 {
		t.Errorf("negative selection width kept: %+v", cfg)
	}
}

func TestLoad_BadJSONReturnsDefaultsWithError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatal("want JSON error")
	}
	if cfg == nil || cfg.Encoder != "libx264" {
		t.Fatalf("defaults not returned on parse error: %+v", cfg)
	}
}
