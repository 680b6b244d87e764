package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/model"
)

// DefaultCatalogPath returns the default file path for the preset catalog,
// located at ~/.cabinetmaker/catalog.json.
func DefaultCatalogPath() string {
	return filepath.Join(DefaultConfigDir(), "catalog.json")
}

// SaveCatalog writes the catalog to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveCatalog(path string, cat model.Catalog) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cat, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadCatalog reads the catalog from the specified JSON file.
// If the file does not exist, it returns the default catalog and saves it.
func LoadCatalog(path string) (model.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cat := model.DefaultCatalog()
			if saveErr := SaveCatalog(path, cat); saveErr != nil {
				return cat, saveErr
			}
			return cat, nil
		}
		return model.Catalog{}, err
	}
	var cat model.Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return model.Catalog{}, err
	}
	return cat, nil
}

// LoadOrCreateCatalog loads the catalog from the default path.
// If the file does not exist, it creates one with default entries.
func LoadOrCreateCatalog() (model.Catalog, string, error) {
	path := DefaultCatalogPath()
	cat, err := LoadCatalog(path)
	return cat, path, err
}

// ExportCatalog exports the catalog to a user-specified JSON file.
func ExportCatalog(path string, cat model.Catalog) error {
	return SaveCatalog(path, cat)
}

// ImportCatalog imports a catalog from a user-specified JSON file,
// merging it with the existing catalog. Duplicate IDs are skipped.
func ImportCatalog(path string, existing model.Catalog) (model.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return existing, err
	}
	var imported model.Catalog
	if err := json.Unmarshal(data, &imported); err != nil {
		return existing, err
	}

	// Build sets of existing IDs for deduplication
	styleIDs := make(map[string]bool, len(existing.Construction))
	for _, cp := range existing.Construction {
		styleIDs[cp.ID] = true
	}
	materialIDs := make(map[string]bool, len(existing.Materials))
	for _, m := range existing.Materials {
		materialIDs[m.ID] = true
	}

	// Merge construction styles
	for _, cp := range imported.Construction {
		if !styleIDs[cp.ID] {
			existing.Construction = append(existing.Construction, cp)
			styleIDs[cp.ID] = true
		}
	}

	// Merge materials
	for _, m := range imported.Materials {
		if !materialIDs[m.ID] {
			existing.Materials = append(existing.Materials, m)
			materialIDs[m.ID] = true
		}
	}

	return existing, nil
}
