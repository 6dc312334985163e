package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/binpack/internal/model"
)

func TestDefaultInventoryPath(t *testing.T) {
	path := DefaultInventoryPath()
	if filepath.Base(path) != "inventory.json" {
		t.Errorf("expected filename inventory.json, got %s", filepath.Base(path))
	}
	if dir := filepath.Base(filepath.Dir(path)); dir != ".binpack" {
		t.Errorf("expected parent dir .binpack, got %s", dir)
	}
}

func TestSaveAndLoadInventory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test_inventory.json")

	inv := model.Inventory{
		Bins: []model.BinPreset{model.NewBinPreset("Card sheet", 300, 200, "mm")},
	}
	if err := SaveInventory(path, inv); err != nil {
		t.Fatalf("SaveInventory failed: %v", err)
	}

	loaded, err := LoadInventory(path)
	if err != nil {
		t.Fatalf("LoadInventory failed: %v", err)
	}
	if len(loaded.Bins) != 1 {
		t.Fatalf("expected 1 preset, got %d", len(loaded.Bins))
	}
	if loaded.Bins[0].Name != "Card sheet" || loaded.Bins[0].Width != 300 {
		t.Errorf("unexpected preset %+v", loaded.Bins[0])
	}
}

func TestLoadInventoryCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "inventory.json")

	inv, err := LoadInventory(path)
	if err != nil {
		t.Fatalf("LoadInventory failed: %v", err)
	}
	if len(inv.Bins) != len(model.DefaultInventory().Bins) {
		t.Errorf("expected default presets, got %d", len(inv.Bins))
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected default inventory to be written: %v", err)
	}
}

func TestImportInventoryMergesByID(t *testing.T) {
	dir := t.TempDir()
	existing := model.Inventory{
		Bins: []model.BinPreset{{ID: "a", Name: "A", Width: 1, Height: 1}},
	}
	imported := model.Inventory{
		Bins: []model.BinPreset{
			{ID: "a", Name: "A duplicate", Width: 9, Height: 9},
			{ID: "b", Name: "B", Width: 2, Height: 2},
		},
	}
	data, err := json.Marshal(imported)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "import.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	merged, err := ImportInventory(path, existing)
	if err != nil {
		t.Fatalf("ImportInventory failed: %v", err)
	}
	if len(merged.Bins) != 2 {
		t.Fatalf("expected 2 presets, got %d", len(merged.Bins))
	}
	if merged.Bins[0].Name != "A" || merged.Bins[1].ID != "b" {
		t.Errorf("unexpected merge result %+v", merged.Bins)
	}
}

func TestImportInventoryMissingFile(t *testing.T) {
	existing := model.DefaultInventory()
	got, err := ImportInventory(filepath.Join(t.TempDir(), "nope.json"), existing)
	if err == nil {
		t.Fatal("expected error")
	}
	if len(got.Bins) != len(existing.Bins) {
		t.Error("existing inventory should be returned unchanged")
	}
}
