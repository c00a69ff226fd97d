package settings

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSaveDefaultAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := SaveDefault(path); err != nil {
		t.Fatalf("save default: %v", err)
	}
	if err := SaveDefault(path); err == nil {
		t.Fatalf("expected an error when the file already exists")
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s != DefaultSettings() {
		t.Fatalf("round trip changed settings: %+v", s)
	}
	if d, _ := s.TickInterval(); d != 60*time.Millisecond {
		t.Fatalf("unexpected tick interval %v", d)
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := []byte("[Simulation]\nSeed = \"demo\"\nBatchMode = \"fixed\"\nFixedBatch = 5\n\n[Canvas]\nWidth = 200\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Simulation.Seed != "demo" || s.Simulation.BatchMode != BatchModeFixed || s.Simulation.FixedBatch != 5 {
		t.Fatalf("values from file lost: %+v", s.Simulation)
	}
	if s.Canvas.Width != 200 || s.Canvas.Height != 400 {
		t.Fatalf("canvas: got %dx%d, want 200x400", s.Canvas.Width, s.Canvas.Height)
	}
	if s.Simulation.TickInterval != "60ms" || s.Log.Level != "info" {
		t.Fatalf("defaults not filled in: %+v", s)
	}
}

func TestValidate(t *testing.T) {
	for name, mutate := range map[string]func(*Settings){
		"bad interval":    func(s *Settings) { s.Simulation.TickInterval = "soon" },
		"zero interval":   func(s *Settings) { s.Simulation.TickInterval = "0s" },
		"bad mode":        func(s *Settings) { s.Simulation.BatchMode = "shrink" },
		"zero fixed size": func(s *Settings) { s.Simulation.BatchMode = BatchModeFixed; s.Simulation.FixedBatch = 0 },
		"negative width":  func(s *Settings) { s.Canvas.Width = -1 },
	} {
		s := DefaultSettings()
		mutate(&s)
		if err := s.Validate(); err == nil {
			t.Fatalf("%s: expected a validation error", name)
		}
	}
	if err := DefaultSettings().Validate(); err != nil {
		t.Fatalf("defaults do not validate: %v", err)
	}
}

func TestLoadOrCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected an error loading a missing file")
	}
	s, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("load or create: %v", err)
	}
	if s != DefaultSettings() {
		t.Fatalf("unexpected settings %+v", s)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("settings file not created: %v", err)
	}
}
