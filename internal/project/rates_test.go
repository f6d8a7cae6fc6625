package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mistrywoodworks/panelquote/internal/model"
)

func TestDefaultRateBookPath(t *testing.T) {
	path, err := DefaultRateBookPath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path == "" {
		t.Fatal("expected non-empty path")
	}
	if filepath.Base(path) != "rates.json" {
		t.Errorf("expected filename rates.json, got %s", filepath.Base(path))
	}
	dir := filepath.Base(filepath.Dir(path))
	if dir != ".panelquote" {
		t.Errorf("expected parent dir .panelquote, got %s", dir)
	}
}

func TestSaveAndLoadRateBook(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "rates.json")

	book := model.DefaultRateBook()
	custom := model.DefaultRateConfig()
	custom.Carcass.Material = 950
	book.Add(model.NewRatePreset("Laminate Lux", custom))

	if err := SaveRateBook(path, book); err != nil {
		t.Fatalf("SaveRateBook failed: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("rate book file was not created")
	}

	loaded, err := LoadRateBook(path)
	if err != nil {
		t.Fatalf("LoadRateBook failed: %v", err)
	}

	if len(loaded.Presets) != 4 {
		t.Errorf("expected 4 presets, got %d", len(loaded.Presets))
	}
	preset, ok := loaded.FindPreset("Laminate Lux")
	if !ok {
		t.Fatal("expected to find 'Laminate Lux' preset")
	}
	if preset.Rates.Carcass.Material != 950 {
		t.Errorf("expected carcass material 950, got %f", preset.Rates.Carcass.Material)
	}
}

func TestLoadRateBookCreatesDefault(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nonexistent", "rates.json")

	book, err := LoadRateBook(path)
	if err != nil {
		t.Fatalf("LoadRateBook failed: %v", err)
	}

	// Should have created the built-in presets
	if len(book.Presets) == 0 {
		t.Error("expected built-in presets, got none")
	}
	if _, ok := book.FindPreset("Matte"); !ok {
		t.Error("expected built-in 'Matte' preset")
	}

	// Should have written the file
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("expected default rate book file to be created")
	}
}

func TestLoadRateBookInvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "rates.json")
	if err := os.WriteFile(path, []byte("not valid json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadRateBook(path)
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestLoadRateBookEmptyFallsBack(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "rates.json")
	if err := os.WriteFile(path, []byte(`{"presets":[]}`), 0644); err != nil {
		t.Fatal(err)
	}

	book, err := LoadRateBook(path)
	if err != nil {
		t.Fatalf("LoadRateBook failed: %v", err)
	}
	if _, ok := book.FindPreset("Matte"); !ok {
		t.Error("expected empty book to fall back to built-in presets")
	}
}
