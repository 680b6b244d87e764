package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/model"
)

// SaveProject writes a project to the given path as indented JSON.
// It creates any missing parent directories automatically.
func SaveProject(path string, p model.Project) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadProject reads a project from the given path. Unlike the config
// loaders a missing project file is an error.
func LoadProject(path string) (model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Project{}, err
	}
	var p model.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return model.Project{}, fmt.Errorf("failed to parse project file: %w", err)
	}
	if p.Name == "" {
		p.Name = "Untitled"
	}
	// Ensure slices are never nil
	if p.Obstacles == nil {
		p.Obstacles = []model.Obstacle{}
	}
	if p.Sections == nil {
		p.Sections = []model.SectionSpec{}
	}
	return p, nil
}
