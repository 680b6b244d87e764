package render

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/layout"
	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/model"
)

func resolvedProject(t *testing.T) model.Project {
	t.Helper()

	project := model.NewProject()
	project.Name = "Render Test Kitchen"
	project.Room = model.Room{Walls: []model.WallSegment{
		{Length: 96, Height: 84, Depth: 4.5, Name: "north"},
		{Length: 120, Height: 84, Depth: 4.5, Angle: 90, Name: "east"},
	}}

	window, err := model.NewObstacle(model.ObstacleWindow, 0, 40, 16, 36, 24)
	if err != nil {
		t.Fatalf("NewObstacle returned error: %v", err)
	}
	project.Obstacles = []model.Obstacle{window}

	project.Sections = []model.SectionSpec{
		{ID: "s1", Label: "Pantry", Width: model.Fixed(24), ShelfCount: 3},
		{ID: "s2", Label: "Bench", Width: model.Fixed(20), ShelfCount: 1, Mode: model.ModeLower},
		{ID: "s3", Label: "East Run", Width: model.Fixed(36), Wall: model.WallByName("east")},
	}

	plan, err := layout.Build(project)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	project.Plan = &plan
	return project
}

func decodeSize(t *testing.T, path string) (int, int) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("PNG file was not created: %v", err)
	}
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}
	return cfg.Width, cfg.Height
}

func TestPlan_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.png")

	project := resolvedProject(t)
	if err := Plan(path, project, 800); err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}

	w, h := decodeSize(t, path)
	if w != 800 {
		t.Errorf("expected width 800, got %d", w)
	}
	if h <= 0 {
		t.Errorf("expected positive height, got %d", h)
	}
}

func TestPlan_NoPlan(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.png")

	err := Plan(path, model.NewProject(), 800)
	if err == nil {
		t.Fatal("expected error for project without a plan, got nil")
	}
}

func TestElevation_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	project := resolvedProject(t)

	for wall := 0; wall < len(project.Room.Walls); wall++ {
		path := filepath.Join(dir, "wall.png")
		if err := Elevation(path, project, wall, 900); err != nil {
			t.Fatalf("Elevation(wall %d) returned error: %v", wall, err)
		}
		w, _ := decodeSize(t, path)
		if w != 900 {
			t.Errorf("wall %d: expected width 900, got %d", wall, w)
		}
	}
}

func TestElevation_DefaultWidth(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wall.png")

	project := resolvedProject(t)
	if err := Elevation(path, project, 0, 0); err != nil {
		t.Fatalf("Elevation returned error: %v", err)
	}

	w, _ := decodeSize(t, path)
	if w != defaultWidthPx {
		t.Errorf("expected default width %d, got %d", defaultWidthPx, w)
	}
}

func TestElevation_WallOutOfRange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wall.png")

	project := resolvedProject(t)
	if err := Elevation(path, project, 5, 800); err == nil {
		t.Fatal("expected error for out-of-range wall index, got nil")
	}
	if err := Elevation(path, project, -1, 800); err == nil {
		t.Fatal("expected error for negative wall index, got nil")
	}
}

func TestBandCorners(t *testing.T) {
	pose := model.WallPose{Index: 0, Start: model.Point2D{}, End: model.Point2D{X: 96}, Direction: 0}

	got := bandCorners(pose, 10, 20, 24, 1)
	want := []model.Point2D{{X: 10, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 24}, {X: 10, Y: 24}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("corner %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	// A clockwise room keeps its interior on the other side.
	got = bandCorners(pose, 10, 20, 24, -1)
	if got[2].Y != -24 || got[3].Y != -24 {
		t.Errorf("expected interior band at Y=-24, got %+v", got)
	}

	// Negative depth extends outward, used for the wall thickness band.
	got = bandCorners(pose, 0, 96, -4, 1)
	if got[2].Y != -4 || got[3].Y != -4 {
		t.Errorf("expected outward band at Y=-4, got %+v", got)
	}
}

func TestInteriorSide(t *testing.T) {
	// Positive turns wind clockwise: east then south.
	cw := []model.WallPose{
		{Index: 0, Start: model.Point2D{}, End: model.Point2D{X: 96}, Direction: 0},
		{Index: 1, Start: model.Point2D{X: 96}, End: model.Point2D{X: 96, Y: -120}, Direction: 270},
	}
	if got := interiorSide(cw); got != -1 {
		t.Errorf("interiorSide(clockwise) = %v, want -1", got)
	}

	ccw := []model.WallPose{
		{Index: 0, Start: model.Point2D{}, End: model.Point2D{X: 96}, Direction: 0},
		{Index: 1, Start: model.Point2D{X: 96}, End: model.Point2D{X: 96, Y: 120}, Direction: 90},
	}
	if got := interiorSide(ccw); got != 1 {
		t.Errorf("interiorSide(counterclockwise) = %v, want 1", got)
	}
}

func TestPlacementName(t *testing.T) {
	project := model.NewProject()
	project.Sections = []model.SectionSpec{{Label: "Pantry"}, {Label: ""}}

	got := placementName(project, model.PlacedSection{SectionIndex: 0})
	if got != "Pantry" {
		t.Errorf("placementName() = %q, want %q", got, "Pantry")
	}

	got = placementName(project, model.PlacedSection{SectionIndex: 0, SplitPart: 1})
	if got != "Pantry (part 1)" {
		t.Errorf("placementName() = %q, want %q", got, "Pantry (part 1)")
	}

	got = placementName(project, model.PlacedSection{SectionIndex: 1})
	if got != "Section 2" {
		t.Errorf("placementName() = %q, want %q", got, "Section 2")
	}
}
