package placement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/collision"
	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/model"
)

func fullRegion(left, right, bottom, top float64) model.ValidRegion {
	return model.ValidRegion{Type: model.RegionFull,
		Bounds: model.SectionBounds{Left: left, Right: right, Bottom: bottom, Top: top}}
}

func lowerRegion(left, right, bottom, top float64) model.ValidRegion {
	return model.ValidRegion{Type: model.RegionLower,
		Bounds: model.SectionBounds{Left: left, Right: right, Bottom: bottom, Top: top}}
}

func upperRegion(left, right, bottom, top float64) model.ValidRegion {
	return model.ValidRegion{Type: model.RegionUpper,
		Bounds: model.SectionBounds{Left: left, Right: right, Bottom: bottom, Top: top}}
}

func fixedReq(index int, label string, width float64) Request {
	return Request{SectionIndex: index, Label: label, Width: model.Fixed(width), Mode: model.ModeAuto, ShelfCount: 2}
}

func fillReq(index int, label string) Request {
	return Request{SectionIndex: index, Label: label, Width: model.Fill(), Mode: model.ModeAuto, ShelfCount: 2}
}

func TestPlaceSections_SequentialOnEmptyWall(t *testing.T) {
	// Two fixed-width sections on a bare wall go in side by side, left to
	// right, both at full height.
	regions := []model.ValidRegion{fullRegion(0, 96, 0, 84)}

	result := PlaceSections(0, []Request{
		fixedReq(0, "Pantry", 24),
		fixedReq(1, "Base Run", 30),
	}, regions, nil, model.DefaultSettings())

	require.Len(t, result.Placements, 2)
	assert.Empty(t, result.Skipped)

	assert.Equal(t, model.SectionBounds{Left: 0, Right: 24, Bottom: 0, Top: 84}, result.Placements[0].Bounds)
	assert.Equal(t, model.SectionBounds{Left: 24, Right: 54, Bottom: 0, Top: 84}, result.Placements[1].Bounds)
	assert.Equal(t, model.ModeFull, result.Placements[0].Mode)
	assert.Equal(t, 0, result.Placements[0].SplitPart, "whole placements carry no split part")
	assert.InDelta(t, 54, result.UsedWidth(), 1e-9)
}

func TestPlaceSections_FillTakesRemainder(t *testing.T) {
	regions := []model.ValidRegion{fullRegion(0, 96, 0, 84)}

	result := PlaceSections(0, []Request{
		fixedReq(0, "Pantry", 24),
		fillReq(1, "Counter Run"),
	}, regions, nil, model.DefaultSettings())

	require.Len(t, result.Placements, 2)
	assert.InDelta(t, 72, result.Placements[1].Bounds.Width(), 1e-9)
	assert.InDelta(t, 96, result.Placements[1].Bounds.Right, 1e-9)
}

func TestPlaceSections_ConservationOfRequestedWidth(t *testing.T) {
	// A whole placement must have exactly the requested width; nothing may
	// be shaved off to make a section fit.
	regions := []model.ValidRegion{fullRegion(0, 96, 0, 84)}

	result := PlaceSections(0, []Request{fixedReq(0, "Hutch", 33.125)}, regions, nil, model.DefaultSettings())

	require.Len(t, result.Placements, 1)
	assert.Equal(t, 33.125, result.Placements[0].Bounds.Width())
}

func TestPlaceSections_AutoPrefersFullOverLower(t *testing.T) {
	// With the window wall's regions, an auto section that fits a remaining
	// full-height run takes it even though a lower region comes first.
	regions := []model.ValidRegion{
		fullRegion(0, 38, 0, 84),
		lowerRegion(38, 58, 0, 34),
		upperRegion(38, 58, 62, 84),
		fullRegion(58, 96, 0, 84),
	}

	result := PlaceSections(0, []Request{
		fixedReq(0, "Tall Cabinet", 38),
		fixedReq(1, "Hutch", 20),
	}, regions, nil, model.DefaultSettings())

	require.Len(t, result.Placements, 2)
	assert.Equal(t, model.ModeFull, result.Placements[1].Mode)
	assert.Equal(t, model.SectionBounds{Left: 58, Right: 78, Bottom: 0, Top: 84}, result.Placements[1].Bounds)
}

func TestPlaceSections_ExplicitModeTargetsItsRegionType(t *testing.T) {
	regions := []model.ValidRegion{
		fullRegion(0, 38, 0, 84),
		lowerRegion(38, 58, 0, 34),
		upperRegion(38, 58, 62, 84),
		fullRegion(58, 96, 0, 84),
	}

	lower := Request{SectionIndex: 0, Label: "Window Seat", Width: model.Fixed(20), Mode: model.ModeLower, ShelfCount: 1}
	upper := Request{SectionIndex: 1, Label: "Glass Rack", Width: model.Fixed(20), Mode: model.ModeUpper, ShelfCount: 1}

	result := PlaceSections(0, []Request{lower, upper}, regions, nil, model.DefaultSettings())

	require.Len(t, result.Placements, 2)
	assert.Equal(t, model.ModeLower, result.Placements[0].Mode)
	assert.Equal(t, model.SectionBounds{Left: 38, Right: 58, Bottom: 0, Top: 34}, result.Placements[0].Bounds)
	assert.Equal(t, model.ModeUpper, result.Placements[1].Mode)
	assert.Equal(t, model.SectionBounds{Left: 38, Right: 58, Bottom: 62, Top: 84}, result.Placements[1].Bounds)
}

func TestPlaceSections_SplitAcrossObstacle(t *testing.T) {
	// An 80 inch bookcase cannot clear a full-height doorway zone in one
	// piece, so it splits into two parts whose widths sum exactly to 80.
	regions := []model.ValidRegion{
		fullRegion(0, 40, 0, 84),
		fullRegion(56, 96, 0, 84),
	}

	req := Request{SectionIndex: 0, Label: "Bookcase", Width: model.Fixed(80), Mode: model.ModeAuto, ShelfCount: 4}
	result := PlaceSections(0, []Request{req}, regions, nil, model.DefaultSettings())

	require.Len(t, result.Placements, 2)
	assert.Empty(t, result.Skipped)

	first, second := result.Placements[0], result.Placements[1]
	assert.Equal(t, 1, first.SplitPart)
	assert.Equal(t, 2, second.SplitPart)
	assert.Equal(t, model.SectionBounds{Left: 0, Right: 40, Bottom: 0, Top: 84}, first.Bounds)
	assert.Equal(t, model.SectionBounds{Left: 56, Right: 96, Bottom: 0, Top: 84}, second.Bounds)
	assert.InDelta(t, 80, first.Bounds.Width()+second.Bounds.Width(), 1e-9,
		"split parts must conserve the requested width")
	assert.Equal(t, 2, first.ShelfCount, "shelves split in proportion to width")
	assert.Equal(t, 2, second.ShelfCount)

	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0].Message, "split into 2 parts")
}

func TestPlaceSections_SplitShelvesNeverBelowOne(t *testing.T) {
	regions := []model.ValidRegion{
		fullRegion(0, 40, 0, 84),
		fullRegion(56, 96, 0, 84),
	}

	req := Request{SectionIndex: 0, Label: "Bookcase", Width: model.Fixed(80), Mode: model.ModeAuto, ShelfCount: 1}
	result := PlaceSections(0, []Request{req}, regions, nil, model.DefaultSettings())

	require.Len(t, result.Placements, 2)
	assert.Equal(t, 1, result.Placements[0].ShelfCount)
	assert.Equal(t, 1, result.Placements[1].ShelfCount)
}

func TestPlaceSections_SplitRefusesInexactCoverage(t *testing.T) {
	// 85 inches cannot be covered exactly by the 40+40 free runs, and a
	// silently narrower cabinet is worse than no cabinet.
	regions := []model.ValidRegion{
		fullRegion(0, 40, 0, 84),
		fullRegion(56, 96, 0, 84),
	}

	req := Request{SectionIndex: 0, Label: "Bookcase", Width: model.Fixed(85), Mode: model.ModeAuto, ShelfCount: 4}
	result := PlaceSections(0, []Request{req}, regions, nil, model.DefaultSettings())

	assert.Empty(t, result.Placements)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, 85.0, result.Skipped[0].RequestedWidth)
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0].Message, "does not fit")
}

func TestPlaceSections_FragmentSliversDroppedWithWarning(t *testing.T) {
	// Placing 90 of 96 inches leaves a 6 inch fragment, below the 9 inch
	// minimum. It is discarded and the caller warned, and a later fill
	// section finds no full-height region left.
	regions := []model.ValidRegion{fullRegion(0, 96, 0, 84)}

	result := PlaceSections(0, []Request{
		fixedReq(0, "Wardrobe", 90),
		fillReq(1, "Filler"),
	}, regions, nil, model.DefaultSettings())

	require.Len(t, result.Placements, 1)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, 1, result.Skipped[0].SectionIndex)

	var sliverWarned, fillWarned bool
	for _, w := range result.Warnings {
		if w.SectionIndex == 0 {
			assert.Contains(t, w.Message, "sliver")
			sliverWarned = true
		}
		if w.SectionIndex == 1 {
			fillWarned = true
		}
	}
	assert.True(t, sliverWarned, "expected a stranded-sliver warning")
	assert.True(t, fillWarned, "expected a skip warning for the fill section")
}

func TestPlaceSections_FallsBackToRegionBeforeCursor(t *testing.T) {
	// The first section lands past a lower region, moving the cursor to 90.
	// The second section still finds the untouched full region at the start
	// of the wall.
	regions := []model.ValidRegion{
		fullRegion(0, 30, 0, 84),
		lowerRegion(30, 50, 0, 34),
		fullRegion(50, 96, 0, 84),
	}

	result := PlaceSections(0, []Request{
		fixedReq(0, "Wide Hutch", 40),
		fixedReq(1, "Narrow Hutch", 20),
	}, regions, nil, model.DefaultSettings())

	require.Len(t, result.Placements, 2)
	assert.Equal(t, model.SectionBounds{Left: 50, Right: 90, Bottom: 0, Top: 84}, result.Placements[0].Bounds)
	assert.Equal(t, model.SectionBounds{Left: 0, Right: 20, Bottom: 0, Top: 84}, result.Placements[1].Bounds)
}

func TestPlaceSections_NonPositiveWidthSkipped(t *testing.T) {
	regions := []model.ValidRegion{fullRegion(0, 96, 0, 84)}

	req := Request{SectionIndex: 0, Label: "Broken", Width: model.Fixed(0), Mode: model.ModeAuto}
	result := PlaceSections(0, []Request{req}, regions, nil, model.DefaultSettings())

	assert.Empty(t, result.Placements)
	require.Len(t, result.Skipped, 1)
	assert.Contains(t, result.Skipped[0].Reason, "positive")
}

func TestPlaceSections_NoRequestsNoOutput(t *testing.T) {
	result := PlaceSections(2, nil, []model.ValidRegion{fullRegion(0, 96, 0, 84)}, nil, model.DefaultSettings())

	assert.Equal(t, 2, result.WallIndex)
	assert.Empty(t, result.Placements)
	assert.Empty(t, result.Skipped)
	assert.Empty(t, result.Warnings)
	assert.Zero(t, result.UsedWidth())
}

func TestPlaceSections_EndToEndWithWindowWall(t *testing.T) {
	// Full pipeline for one wall: obstacle to zones to regions to placement.
	window, err := model.NewObstacle(model.ObstacleWindow, 0, 40, 16, 36, 24)
	require.NoError(t, err)

	settings := model.DefaultSettings()
	zones := collision.ZonesForWall([]model.Obstacle{window}, 0)
	regions := collision.FindValidRegions(96, 84, zones, settings.MinSectionWidth, settings.MinSectionHeight)

	result := PlaceSections(0, []Request{
		fixedReq(0, "Left Tower", 38),
		{SectionIndex: 1, Label: "Window Bench", Width: model.Fixed(20), Mode: model.ModeLower, ShelfCount: 1},
		fillReq(2, "Right Run"),
	}, regions, zones, settings)

	require.Len(t, result.Placements, 3)
	assert.Empty(t, result.Skipped)

	assert.Equal(t, model.SectionBounds{Left: 0, Right: 38, Bottom: 0, Top: 84}, result.Placements[0].Bounds)
	assert.Equal(t, model.SectionBounds{Left: 38, Right: 58, Bottom: 0, Top: 34}, result.Placements[1].Bounds)
	assert.Equal(t, model.SectionBounds{Left: 58, Right: 96, Bottom: 0, Top: 84}, result.Placements[2].Bounds)

	for _, p := range result.Placements {
		assert.Empty(t, collision.Check(p.Bounds, zones), "no committed placement may touch a zone interior")
	}
}
