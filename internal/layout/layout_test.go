package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/model"
)

func kitchenProject(t *testing.T) model.Project {
	t.Helper()
	north, err := model.NewWallSegment(96, 84, 24, 0)
	require.NoError(t, err)
	north.Name = "north"
	east, err := model.NewWallSegment(120, 84, 24, 90)
	require.NoError(t, err)
	east.Name = "east"

	r, err := model.NewRoom([]model.WallSegment{north, east}, false)
	require.NoError(t, err)

	window, err := model.NewObstacle(model.ObstacleWindow, 0, 40, 16, 36, 24)
	require.NoError(t, err)

	pantry := model.NewSectionSpec("Pantry", model.Fixed(24))
	pantry.ShelfCount = 3

	bench := model.NewSectionSpec("Window Bench", model.Fixed(20))
	bench.Mode = model.ModeLower
	bench.ShelfCount = 1

	eastRun := model.NewSectionSpec("East Run", model.Fixed(36))
	eastRun.Wall = model.WallByName("east")
	eastRun.ShelfCount = 2

	p := model.NewProject()
	p.Name = "Test Kitchen"
	p.Room = r
	p.Obstacles = []model.Obstacle{window}
	p.Sections = []model.SectionSpec{pantry, bench, eastRun}
	return p
}

func TestBuild_FullPipeline(t *testing.T) {
	plan, err := Build(kitchenProject(t))
	require.NoError(t, err)

	assert.Empty(t, plan.GeometryErrors)
	require.Len(t, plan.Poses, 2)
	assert.Equal(t, 270.0, plan.Poses[1].Direction)

	assert.Equal(t, 3, plan.PlacedCount())
	assert.Zero(t, plan.SkippedCount())
	require.Len(t, plan.Sections, 3)
	require.Len(t, plan.Transforms, 3)

	// The lower bench must have landed under the window.
	bench := plan.Sections[1]
	assert.Equal(t, model.SectionBounds{Left: 38, Right: 58, Bottom: 0, Top: 34}, bench.Bounds)

	assert.NotEmpty(t, plan.Panels)
	require.Equal(t, len(plan.Panels), len(plan.RoomPanels))
}

func TestBuild_RoomPanelsAreNonNegative(t *testing.T) {
	plan, err := Build(kitchenProject(t))
	require.NoError(t, err)

	for _, p := range plan.RoomPanels {
		assert.GreaterOrEqual(t, p.Box.Min.X, 0.0, "panel %q X", p.Label)
		assert.GreaterOrEqual(t, p.Box.Min.Y, 0.0, "panel %q Y", p.Label)
		assert.GreaterOrEqual(t, p.Box.Min.Z, 0.0, "panel %q Z", p.Label)
	}
}

func TestBuild_SecondWallTransformRotated(t *testing.T) {
	plan, err := Build(kitchenProject(t))
	require.NoError(t, err)

	eastTr := plan.Transforms[2]
	assert.Equal(t, 1, eastTr.WallIndex)
	assert.Equal(t, 90.0, eastTr.RotationZ)
	assert.GreaterOrEqual(t, eastTr.Position.X, 0.0)
	assert.GreaterOrEqual(t, eastTr.Position.Y, 0.0)
}

func TestBuild_EmptyRoomFails(t *testing.T) {
	p := model.NewProject()
	_, err := Build(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "room geometry")
}

func TestBuild_ClosureGapRecordedNotFatal(t *testing.T) {
	walls := make([]model.WallSegment, 4)
	lengths := []float64{96, 96, 120, 96}
	angles := []float64{0, 90, 90, 90}
	for i := range walls {
		w, err := model.NewWallSegment(lengths[i], 84, 24, angles[i])
		require.NoError(t, err)
		walls[i] = w
	}
	r, err := model.NewRoom(walls, true)
	require.NoError(t, err)

	p := model.NewProject()
	p.Room = r
	p.Sections = []model.SectionSpec{model.NewSectionSpec("Run", model.Fixed(30))}

	plan, err := Build(p)
	require.NoError(t, err, "a closure gap is advisory; layout still runs")
	require.Len(t, plan.GeometryErrors, 1)
	assert.Equal(t, model.GeometryClosure, plan.GeometryErrors[0].Kind)
	assert.Equal(t, 1, plan.PlacedCount())
}

func TestBuild_AvoidanceOffUsesAssignmentOffsets(t *testing.T) {
	p := kitchenProject(t)
	p.Settings.AvoidObstacles = false

	plan, err := Build(p)
	require.NoError(t, err)

	// Plain packing ignores the window: sections sit at their sequential
	// offsets at full wall height.
	north := plan.Walls[0]
	require.Len(t, north.Placements, 2)
	assert.Equal(t, model.SectionBounds{Left: 0, Right: 24, Bottom: 0, Top: 84}, north.Placements[0].Bounds)
	assert.Equal(t, model.SectionBounds{Left: 24, Right: 44, Bottom: 0, Top: 84}, north.Placements[1].Bounds)
}

func TestBuild_CornerReservationKeepsSectionsOut(t *testing.T) {
	p := kitchenProject(t)

	corner := model.NewSectionSpec("Corner Unit", model.Fixed(24))
	corner.Component = "corner.lazy_susan"
	corner.Wall = model.WallByName("east")
	fill := model.NewSectionSpec("North Fill", model.Fill())
	p.Sections = []model.SectionSpec{corner, fill}
	p.Obstacles = nil

	plan, err := Build(p)
	require.NoError(t, err)

	require.Len(t, plan.Corners, 1)
	require.Len(t, plan.Reservations, 2)

	north := plan.Walls[0]
	require.Len(t, north.Placements, 1)
	// Wall 0 is 96 long with its last 24 reserved for the corner unit.
	assert.InDelta(t, 72, north.Placements[0].Bounds.Right, 1e-9)
	assert.InDelta(t, 72, north.Placements[0].Bounds.Width(), 1e-9)
}

func TestBuild_RowsResolvedIntoDividers(t *testing.T) {
	p := kitchenProject(t)
	hutch := model.NewSectionSpec("Hutch", model.Fixed(30))
	hutch.Rows = []model.RowSpec{
		{Height: model.Fill(), ShelfCount: 1},
		{Height: model.Fill(), ShelfCount: 2},
	}
	p.Sections = []model.SectionSpec{hutch}
	p.Obstacles = nil

	plan, err := Build(p)
	require.NoError(t, err)
	require.Len(t, plan.Sections, 1)

	rows := plan.Sections[0].Rows
	require.Len(t, rows, 2)
	assert.InDelta(t, rows[0].Height, rows[1].Height, 1e-9, "two fill rows share the interior equally")

	var dividers int
	for _, panel := range plan.Panels {
		if panel.Type == model.PanelDivider {
			dividers++
		}
	}
	assert.Equal(t, 1, dividers)
}

func TestBuild_SplitSectionProducesParts(t *testing.T) {
	p := kitchenProject(t)
	door, err := model.NewObstacle(model.ObstacleDoorway, 0, 43, 10, 0, 84)
	require.NoError(t, err)
	p.Obstacles = []model.Obstacle{door}

	bookcase := model.NewSectionSpec("Bookcase", model.Fixed(80))
	bookcase.ShelfCount = 4
	p.Sections = []model.SectionSpec{bookcase}

	plan, err := Build(p)
	require.NoError(t, err)

	// Doorway zone spans [40, 56]; free runs are 40 and 40, covering the
	// 80 inch request exactly.
	require.Len(t, plan.Sections, 2)
	assert.True(t, strings.HasSuffix(plan.Sections[0].Spec.Label, "(part 1)"))
	assert.True(t, strings.HasSuffix(plan.Sections[1].Spec.Label, "(part 2)"))
	assert.InDelta(t, 80, plan.Sections[0].Bounds.Width()+plan.Sections[1].Bounds.Width(), 1e-9)

	var warned bool
	for _, w := range plan.Walls[0].Warnings {
		if strings.Contains(w.Message, "split") {
			warned = true
		}
	}
	assert.True(t, warned, "split must be called out in the wall warnings")
}

func TestBuild_BadWallReferenceBecomesWarning(t *testing.T) {
	p := kitchenProject(t)
	ghost := model.NewSectionSpec("Ghost", model.Fixed(24))
	ghost.Wall = model.WallByName("south")
	p.Sections = append(p.Sections, ghost)

	plan, err := Build(p)
	require.NoError(t, err)

	var found bool
	for _, w := range plan.Warnings {
		if w.SectionIndex == 3 && strings.Contains(w.Message, "south") {
			found = true
		}
	}
	assert.True(t, found, "expected the bad reference surfaced as a warning")
	assert.Equal(t, 3, plan.PlacedCount(), "other sections still placed")
}
