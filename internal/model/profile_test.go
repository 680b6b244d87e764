package model

import (
	"testing"
)

func TestAllClearanceProfilesIncludesBuiltInAndCustom(t *testing.T) {
	// Reset custom profiles
	CustomClearanceProfiles = nil

	builtInCount := len(ClearanceProfiles)
	all := AllClearanceProfiles()
	if len(all) != builtInCount {
		t.Errorf("expected %d profiles with no custom, got %d", builtInCount, len(all))
	}

	// Add a custom profile
	CustomClearanceProfiles = []ClearanceProfile{
		{Name: "Custom1", Description: "Test custom"},
	}
	defer func() { CustomClearanceProfiles = nil }()

	all = AllClearanceProfiles()
	if len(all) != builtInCount+1 {
		t.Errorf("expected %d profiles with 1 custom, got %d", builtInCount+1, len(all))
	}
}

func TestGetClearanceProfileFindsCustom(t *testing.T) {
	CustomClearanceProfiles = []ClearanceProfile{
		{Name: "MyCustom", Description: "Custom profile", Clearances: map[ObstacleType]Clearance{
			ObstacleWindow: UniformClearance(5),
		}},
	}
	defer func() { CustomClearanceProfiles = nil }()

	p := GetClearanceProfile("MyCustom")
	if p.Name != "MyCustom" {
		t.Errorf("expected MyCustom, got %s", p.Name)
	}
}

func TestGetClearanceProfileFallsBackToStandard(t *testing.T) {
	p := GetClearanceProfile("NonExistent")
	if p.Name != "Standard" {
		t.Errorf("expected Standard fallback, got %s", p.Name)
	}
}

func TestClearanceProfileNamesIncludesCustom(t *testing.T) {
	CustomClearanceProfiles = []ClearanceProfile{
		{Name: "CustomA"},
		{Name: "CustomB"},
	}
	defer func() { CustomClearanceProfiles = nil }()

	names := ClearanceProfileNames()
	found := map[string]bool{}
	for _, n := range names {
		found[n] = true
	}
	for _, want := range []string{"Standard", "Compact", "Accessible", "CustomA", "CustomB"} {
		if !found[want] {
			t.Errorf("expected profile name %s in %v", want, names)
		}
	}
}

func TestStandardProfileMatchesDefaultTable(t *testing.T) {
	p := GetClearanceProfile("Standard")
	for typ, want := range DefaultClearances {
		got, ok := p.ClearanceFor(typ)
		if !ok {
			t.Errorf("Standard profile missing %s", typ)
			continue
		}
		if got != want {
			t.Errorf("Standard %s: expected %+v, got %+v", typ, want, got)
		}
	}
}

func TestClearanceProfileApply(t *testing.T) {
	window, err := NewObstacle(ObstacleWindow, 0, 40, 16, 36, 24)
	if err != nil {
		t.Fatalf("NewObstacle returned error: %v", err)
	}
	own := UniformClearance(9)
	door, err := NewObstacle(ObstacleDoor, 0, 80, 32, 0, 80)
	if err != nil {
		t.Fatalf("NewObstacle returned error: %v", err)
	}
	door.ClearanceOverride = &own

	p := GetClearanceProfile("Compact")
	applied := p.Apply([]Obstacle{window, door})

	if len(applied) != 2 {
		t.Fatalf("expected 2 obstacles, got %d", len(applied))
	}
	if applied[0].ClearanceOverride == nil {
		t.Fatal("expected profile to set window clearance override")
	}
	if *applied[0].ClearanceOverride != UniformClearance(1.0) {
		t.Errorf("expected Compact window clearance 1.0, got %+v", *applied[0].ClearanceOverride)
	}
	// An obstacle's own override beats the profile
	if *applied[1].ClearanceOverride != own {
		t.Errorf("expected door to keep its own override, got %+v", *applied[1].ClearanceOverride)
	}
	// Source obstacles are untouched
	if window.ClearanceOverride != nil {
		t.Error("expected input obstacle to stay unmodified")
	}
}

func TestClearanceProfileApplyFeedsEffectiveClearance(t *testing.T) {
	window, err := NewObstacle(ObstacleWindow, 0, 40, 16, 36, 24)
	if err != nil {
		t.Fatalf("NewObstacle returned error: %v", err)
	}

	applied := GetClearanceProfile("Accessible").Apply([]Obstacle{window})
	got := applied[0].EffectiveClearance()
	if got != UniformClearance(3.0) {
		t.Errorf("expected Accessible window clearance 3.0, got %+v", got)
	}
}

func TestClearanceProfileApplyUnknownTypeKeepsDefault(t *testing.T) {
	vent, err := NewObstacle(ObstacleVent, 0, 10, 6, 70, 6)
	if err != nil {
		t.Fatalf("NewObstacle returned error: %v", err)
	}

	bare := ClearanceProfile{Name: "Sparse", Clearances: map[ObstacleType]Clearance{
		ObstacleWindow: UniformClearance(4),
	}}
	applied := bare.Apply([]Obstacle{vent})

	if applied[0].ClearanceOverride != nil {
		t.Error("expected no override for a type the profile does not cover")
	}
	if applied[0].EffectiveClearance() != ObstacleVent.DefaultClearance() {
		t.Errorf("expected default vent clearance, got %+v", applied[0].EffectiveClearance())
	}
}
