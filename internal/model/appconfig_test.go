package model

import "testing"

func TestDefaultAppConfigMatchesDefaultSettings(t *testing.T) {
	cfg := DefaultAppConfig()
	defaults := DefaultSettings()

	if cfg.DefaultMaterialThickness != defaults.MaterialThickness {
		t.Errorf("MaterialThickness mismatch: config=%f settings=%f", cfg.DefaultMaterialThickness, defaults.MaterialThickness)
	}
	if cfg.DefaultBaseDepth != defaults.BaseDepth {
		t.Errorf("BaseDepth mismatch: config=%f settings=%f", cfg.DefaultBaseDepth, defaults.BaseDepth)
	}
	if cfg.DefaultToeKickHeight != defaults.ToeKickHeight {
		t.Errorf("ToeKickHeight mismatch: config=%f settings=%f", cfg.DefaultToeKickHeight, defaults.ToeKickHeight)
	}
	if cfg.DefaultMaterial != defaults.Material {
		t.Errorf("Material mismatch: config=%s settings=%s", cfg.DefaultMaterial, defaults.Material)
	}
	if cfg.RecentProjects == nil {
		t.Error("RecentProjects should not be nil")
	}
}

func TestRememberRecent(t *testing.T) {
	cfg := DefaultAppConfig()

	cfg.RememberRecent("/tmp/a.json")
	cfg.RememberRecent("/tmp/b.json")
	cfg.RememberRecent("/tmp/a.json")

	if len(cfg.RecentProjects) != 2 {
		t.Fatalf("expected 2 recent projects, got %d", len(cfg.RecentProjects))
	}
	if cfg.RecentProjects[0] != "/tmp/a.json" {
		t.Errorf("expected most recent first, got %q", cfg.RecentProjects[0])
	}
	if cfg.RecentProjects[1] != "/tmp/b.json" {
		t.Errorf("expected earlier entry second, got %q", cfg.RecentProjects[1])
	}
}

func TestRememberRecentTrims(t *testing.T) {
	cfg := DefaultAppConfig()
	for i := 0; i < MaxRecentProjects+5; i++ {
		cfg.RememberRecent(string(rune('a'+i)) + ".json")
	}
	if len(cfg.RecentProjects) != MaxRecentProjects {
		t.Errorf("expected list trimmed to %d, got %d", MaxRecentProjects, len(cfg.RecentProjects))
	}
}

func TestApplyToSettings(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.DefaultMaterialThickness = 0.5
	cfg.DefaultBaseDepth = 22.0
	cfg.DefaultMaterial = "melamine"

	s := DefaultSettings()
	cfg.ApplyToSettings(&s)

	if s.MaterialThickness != 0.5 {
		t.Errorf("expected MaterialThickness=0.5, got %f", s.MaterialThickness)
	}
	if s.BaseDepth != 22.0 {
		t.Errorf("expected BaseDepth=22.0, got %f", s.BaseDepth)
	}
	if s.Material != "melamine" {
		t.Errorf("expected Material=melamine, got %s", s.Material)
	}
}
