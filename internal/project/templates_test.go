package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/binpack/internal/model"
)

func TestSaveAndLoadTemplates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "templates.json")

	store := model.NewTemplateStore()
	items := []model.ItemSpec{model.NewItemSpec("Card", 63, 88, 9)}
	store.Add(model.NewJobTemplate("Cards", "Poker cards", items, model.DefaultSettings()))

	if err := SaveTemplates(path, store); err != nil {
		t.Fatalf("SaveTemplates error: %v", err)
	}

	loaded, err := LoadTemplates(path)
	if err != nil {
		t.Fatalf("LoadTemplates error: %v", err)
	}

	if len(loaded.Templates) != 1 {
		t.Fatalf("expected 1 template, got %d", len(loaded.Templates))
	}
	if loaded.Templates[0].Name != "Cards" {
		t.Errorf("expected 'Cards', got %q", loaded.Templates[0].Name)
	}
	if len(loaded.Templates[0].Items) != 1 {
		t.Errorf("expected 1 item, got %d", len(loaded.Templates[0].Items))
	}
}

func TestLoadTemplatesMissingFile(t *testing.T) {
	store, err := LoadTemplates(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.Templates == nil || len(store.Templates) != 0 {
		t.Errorf("expected empty store, got %v", store.Templates)
	}
}

func TestLoadTemplatesNullList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.json")
	if err := os.WriteFile(path, []byte(`{"templates": null}`), 0644); err != nil {
		t.Fatal(err)
	}
	store, err := LoadTemplates(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.Templates == nil {
		t.Error("Templates should not be nil")
	}
}

func TestDefaultTemplatePath(t *testing.T) {
	if filepath.Base(DefaultTemplatePath()) != "templates.json" {
		t.Errorf("unexpected path %s", DefaultTemplatePath())
	}
}
