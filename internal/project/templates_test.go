package project

import (
	"path/filepath"
	"testing"

	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/model"
)

func TestSaveAndLoadTemplates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "templates.json")

	wall, err := model.NewWallSegment(96, 96, 4, 0)
	if err != nil {
		t.Fatalf("NewWallSegment: %v", err)
	}
	p := model.NewProject()
	p.Room = model.Room{Walls: []model.WallSegment{wall}}
	p.Sections = []model.SectionSpec{model.NewSectionSpec("Run", model.Fill())}

	store := model.NewTemplateStore()
	tmpl := model.NewProjectTemplate("Galley", "Single wall galley", p)
	store.Add(tmpl)

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
	if loaded.Templates[0].Name != "Galley" {
		t.Errorf("expected 'Galley', got %q", loaded.Templates[0].Name)
	}
	if len(loaded.Templates[0].Sections) != 1 {
		t.Errorf("expected 1 section, got %d", len(loaded.Templates[0].Sections))
	}
	if !loaded.Templates[0].Sections[0].Width.Fill {
		t.Error("fill width should survive the round trip")
	}
}

func TestLoadTemplates_NotFound(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.json")

	store, err := LoadTemplates(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if len(store.Templates) != 0 {
		t.Errorf("expected empty store, got %d templates", len(store.Templates))
	}
}

func TestSaveAndLoadTemplates_Multiple(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "templates.json")

	store := model.NewTemplateStore()
	store.Add(model.NewProjectTemplate("T1", "First", model.NewProject()))
	store.Add(model.NewProjectTemplate("T2", "Second", model.NewProject()))
	store.Add(model.NewProjectTemplate("T3", "Third", model.NewProject()))

	if err := SaveTemplates(path, store); err != nil {
		t.Fatalf("SaveTemplates error: %v", err)
	}

	loaded, err := LoadTemplates(path)
	if err != nil {
		t.Fatalf("LoadTemplates error: %v", err)
	}
	if len(loaded.Templates) != 3 {
		t.Fatalf("expected 3 templates, got %d", len(loaded.Templates))
	}
}
