package project

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/model"
)

// DefaultProfilesPath returns the default file path for custom clearance
// profiles, located at ~/.cabinetmaker/profiles.json.
func DefaultProfilesPath() string {
	return filepath.Join(DefaultConfigDir(), "profiles.json")
}

// SaveCustomProfiles saves custom clearance profiles to a JSON file.
func SaveCustomProfiles(path string, profiles []model.ClearanceProfile) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(profiles, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadCustomProfiles loads custom clearance profiles from a JSON file.
// Returns an empty slice if the file does not exist.
func LoadCustomProfiles(path string) ([]model.ClearanceProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.ClearanceProfile{}, nil
		}
		return nil, err
	}

	var profiles []model.ClearanceProfile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, err
	}

	// Ensure loaded profiles are not marked as built-in
	for i := range profiles {
		profiles[i].IsBuiltIn = false
	}
	return profiles, nil
}

// SaveCustomProfilesToDefault saves custom profiles to the default path.
func SaveCustomProfilesToDefault(profiles []model.ClearanceProfile) error {
	return SaveCustomProfiles(DefaultProfilesPath(), profiles)
}

// LoadCustomProfilesFromDefault loads custom profiles from the default path.
func LoadCustomProfilesFromDefault() ([]model.ClearanceProfile, error) {
	return LoadCustomProfiles(DefaultProfilesPath())
}

// ExportProfile exports a single clearance profile to a JSON file (for sharing).
func ExportProfile(path string, profile model.ClearanceProfile) error {
	profile.IsBuiltIn = false
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ImportProfile imports a single clearance profile from a JSON file.
func ImportProfile(path string) (model.ClearanceProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.ClearanceProfile{}, err
	}

	var profile model.ClearanceProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return model.ClearanceProfile{}, err
	}

	profile.IsBuiltIn = false
	if profile.Name == "" {
		return model.ClearanceProfile{}, errors.New("imported profile has no name")
	}
	return profile, nil
}
