package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/model"
)

// BackupData is the top-level structure for import/export of all application data.
type BackupData struct {
	Version   string                   `json:"version"`
	CreatedAt string                   `json:"created_at"`
	Config    model.AppConfig          `json:"config"`
	Profiles  []model.ClearanceProfile `json:"profiles,omitempty"`
	Templates model.TemplateStore      `json:"templates"`
	Catalog   model.Catalog            `json:"catalog"`
}

// backupVersion stamps exported backup files.
const backupVersion = "1.0.0"

// ExportAllData exports all application data (config, custom clearance
// profiles, templates, and the preset catalog) to a single JSON file at the
// specified path.
func ExportAllData(exportPath string, config model.AppConfig, profiles []model.ClearanceProfile, templates model.TemplateStore, catalog model.Catalog) error {
	backup := BackupData{
		Version:   backupVersion,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Config:    config,
		Profiles:  profiles,
		Templates: templates,
		Catalog:   catalog,
	}
	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal backup data: %w", err)
	}

	dir := filepath.Dir(exportPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	if err := os.WriteFile(exportPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	return nil
}

// ImportAllData reads a backup JSON file and returns the contained data.
// The caller is responsible for applying the imported config.
func ImportAllData(importPath string) (BackupData, error) {
	data, err := os.ReadFile(importPath)
	if err != nil {
		return BackupData{}, fmt.Errorf("failed to read backup file: %w", err)
	}
	var backup BackupData
	if err := json.Unmarshal(data, &backup); err != nil {
		return BackupData{}, fmt.Errorf("failed to parse backup file: %w", err)
	}
	if backup.Version == "" {
		return BackupData{}, fmt.Errorf("invalid backup file: missing version field")
	}
	// Ensure RecentProjects is never nil
	if backup.Config.RecentProjects == nil {
		backup.Config.RecentProjects = []string{}
	}
	// Imported custom profiles are never built-in
	for i := range backup.Profiles {
		backup.Profiles[i].IsBuiltIn = false
	}
	return backup, nil
}

// DefaultBackupDir returns the directory timestamped backups are written to,
// located at ~/.cabinetmaker/backups.
func DefaultBackupDir() string {
	return filepath.Join(DefaultConfigDir(), "backups")
}

// DefaultBackupRetention is how many timestamped backups are kept.
const DefaultBackupRetention = 10

const (
	backupPrefix     = "backup-"
	backupSuffix     = ".json"
	backupTimeFormat = "20060102-150405"
)

// WriteTimestampedBackup writes a full application backup into dir under a
// timestamped name, and returns the path written.
func WriteTimestampedBackup(dir string, config model.AppConfig, profiles []model.ClearanceProfile, templates model.TemplateStore, catalog model.Catalog) (string, error) {
	name := backupPrefix + time.Now().UTC().Format(backupTimeFormat) + backupSuffix
	path := filepath.Join(dir, name)
	if err := ExportAllData(path, config, profiles, templates, catalog); err != nil {
		return "", err
	}
	return path, nil
}

// PruneBackups deletes the oldest timestamped backups in dir, keeping the
// newest keep files. It returns the number of files removed. The timestamped
// names sort chronologically, so name order is age order.
func PruneBackups(dir string, keep int) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, backupPrefix) && strings.HasSuffix(name, backupSuffix) {
			names = append(names, name)
		}
	}
	if keep < 0 {
		keep = 0
	}
	if len(names) <= keep {
		return 0, nil
	}

	sort.Strings(names)
	doomed := names[:len(names)-keep]
	for _, name := range doomed {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			return 0, err
		}
	}
	return len(doomed), nil
}
