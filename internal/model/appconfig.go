package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Default layout settings applied to new projects
	DefaultMaterialThickness float64 `json:"default_material_thickness"`
	DefaultBackThickness     float64 `json:"default_back_thickness"`
	DefaultBaseDepth         float64 `json:"default_base_depth"`
	DefaultUpperDepth        float64 `json:"default_upper_depth"`
	DefaultToeKickHeight     float64 `json:"default_toe_kick_height"`
	DefaultMinSectionWidth   float64 `json:"default_min_section_width"`
	DefaultMinSectionHeight  float64 `json:"default_min_section_height"`
	DefaultMaterial          string  `json:"default_material"`
	DefaultClearanceProfile  string  `json:"default_clearance_profile"`

	// Application preferences
	OutputDir      string   `json:"output_dir"` // default export directory, "" = alongside project
	RecentProjects []string `json:"recent_projects"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultMaterialThickness: defaults.MaterialThickness,
		DefaultBackThickness:     defaults.BackThickness,
		DefaultBaseDepth:         defaults.BaseDepth,
		DefaultUpperDepth:        defaults.UpperDepth,
		DefaultToeKickHeight:     defaults.ToeKickHeight,
		DefaultMinSectionWidth:   defaults.MinSectionWidth,
		DefaultMinSectionHeight:  defaults.MinSectionHeight,
		DefaultMaterial:          defaults.Material,
		DefaultClearanceProfile:  "",
		OutputDir:                "",
		RecentProjects:           []string{},
	}
}

// MaxRecentProjects caps the recent project list.
const MaxRecentProjects = 10

// RememberRecent moves path to the front of the recent project list,
// dropping duplicates and trimming to MaxRecentProjects.
func (c *AppConfig) RememberRecent(path string) {
	recent := make([]string, 0, len(c.RecentProjects)+1)
	recent = append(recent, path)
	for _, p := range c.RecentProjects {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > MaxRecentProjects {
		recent = recent[:MaxRecentProjects]
	}
	c.RecentProjects = recent
}

// ApplyToSettings copies the default values from AppConfig into a
// LayoutSettings struct. Used when creating a new project so it inherits
// the user's saved defaults.
func (c AppConfig) ApplyToSettings(s *LayoutSettings) {
	s.MaterialThickness = c.DefaultMaterialThickness
	s.BackThickness = c.DefaultBackThickness
	s.BaseDepth = c.DefaultBaseDepth
	s.UpperDepth = c.DefaultUpperDepth
	s.ToeKickHeight = c.DefaultToeKickHeight
	s.MinSectionWidth = c.DefaultMinSectionWidth
	s.MinSectionHeight = c.DefaultMinSectionHeight
	s.Material = c.DefaultMaterial
}
