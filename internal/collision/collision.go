package collision

import (
	"fmt"
	"math"
	"sort"

	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/model"
)

// ZonesForWall collects the obstacles mounted on one wall and expands each
// into its keep-out zone: the obstacle footprint grown by its effective
// clearance on every side. Cabinets are placed against zones, never against
// raw obstacle rectangles.
func ZonesForWall(obstacles []model.Obstacle, wallIndex int) []model.ObstacleZone {
	var zones []model.ObstacleZone
	for _, obs := range obstacles {
		if obs.WallIndex != wallIndex {
			continue
		}
		b := obs.Bounds()
		c := obs.EffectiveClearance()
		zones = append(zones, model.ObstacleZone{
			Obstacle: obs,
			Bounds: model.SectionBounds{
				Left:   b.Left - c.Left,
				Right:  b.Right + c.Right,
				Bottom: b.Bottom - c.Bottom,
				Top:    b.Top + c.Top,
			},
		})
	}
	return zones
}

// Check reports every zone a candidate rectangle overlaps, with the exact
// overlap area. Rectangles that merely share an edge do not collide.
func Check(candidate model.SectionBounds, zones []model.ObstacleZone) []model.CollisionResult {
	var results []model.CollisionResult
	for _, zone := range zones {
		if !candidate.Overlaps(zone.Bounds) {
			continue
		}
		results = append(results, model.CollisionResult{
			Zone:        zone,
			OverlapArea: candidate.IntersectionArea(zone.Bounds),
		})
	}
	return results
}

// FindValidRegions computes the free rectangles of a wall face after
// subtracting obstacle zones. The wall is swept left to right across the
// x breakpoints contributed by zone edges:
//
//  1. A vertical slice no zone touches becomes a full-height region.
//  2. A slice with zones is cut horizontally by the blockers, sorted by
//     bottom edge: the band below the first blocker is a "lower" region,
//     bands between blockers are "gap" regions, and the band above the
//     last blocker is an "upper" region.
//
// Regions narrower than minWidth or shorter than minHeight are dropped.
// A wall with no zones yields a single full region.
func FindValidRegions(wallLength, wallHeight float64, zones []model.ObstacleZone, minWidth, minHeight float64) []model.ValidRegion {
	if wallLength <= 0 || wallHeight <= 0 {
		return nil
	}

	blockers := clampZones(zones, wallLength, wallHeight)

	var regions []model.ValidRegion
	keep := func(typ model.RegionType, left, right, bottom, top float64) {
		if right-left < minWidth || top-bottom < minHeight {
			return
		}
		regions = append(regions, model.ValidRegion{
			Type:   typ,
			Bounds: model.SectionBounds{Left: left, Right: right, Bottom: bottom, Top: top},
		})
	}

	if len(blockers) == 0 {
		keep(model.RegionFull, 0, wallLength, 0, wallHeight)
		return regions
	}

	breaks := breakpoints(blockers, wallLength)
	for i := 0; i < len(breaks)-1; i++ {
		x1, x2 := breaks[i], breaks[i+1]
		mid := (x1 + x2) / 2

		var covering []model.SectionBounds
		for _, b := range blockers {
			if b.Left < mid && b.Right > mid {
				covering = append(covering, b)
			}
		}
		if len(covering) == 0 {
			keep(model.RegionFull, x1, x2, 0, wallHeight)
			continue
		}

		sort.Slice(covering, func(a, b int) bool {
			return covering[a].Bottom < covering[b].Bottom
		})

		// Walk the blockers upward, emitting the clear bands between them.
		cursor := 0.0
		typ := model.RegionLower
		for _, b := range covering {
			if b.Bottom > cursor {
				keep(typ, x1, x2, cursor, b.Bottom)
			}
			cursor = math.Max(cursor, b.Top)
			typ = model.RegionGap
		}
		if cursor < wallHeight {
			keep(model.RegionUpper, x1, x2, cursor, wallHeight)
		}
	}

	return regions
}

// clampZones trims zone rectangles to the wall face and discards any that
// end up with no area on the wall.
func clampZones(zones []model.ObstacleZone, wallLength, wallHeight float64) []model.SectionBounds {
	var clamped []model.SectionBounds
	for _, z := range zones {
		b := model.SectionBounds{
			Left:   math.Max(z.Bounds.Left, 0),
			Right:  math.Min(z.Bounds.Right, wallLength),
			Bottom: math.Max(z.Bounds.Bottom, 0),
			Top:    math.Min(z.Bounds.Top, wallHeight),
		}
		if b.Right-b.Left <= 0 || b.Top-b.Bottom <= 0 {
			continue
		}
		clamped = append(clamped, b)
	}
	return clamped
}

// breakpoints returns the sorted, deduplicated x coordinates where slice
// coverage can change: the wall ends plus every blocker edge.
func breakpoints(blockers []model.SectionBounds, wallLength float64) []float64 {
	xs := []float64{0, wallLength}
	for _, b := range blockers {
		xs = append(xs, b.Left, b.Right)
	}
	sort.Float64s(xs)

	unique := xs[:1]
	for _, x := range xs[1:] {
		if x != unique[len(unique)-1] {
			unique = append(unique, x)
		}
	}
	return unique
}

// FormatCollisionWarnings produces human-readable messages from collision results.
func FormatCollisionWarnings(label string, results []model.CollisionResult) []string {
	var warnings []string
	for _, r := range results {
		msg := fmt.Sprintf(
			"Section %q overlaps the %s clearance zone (obstacle %s) by %.1f sq in",
			label, r.Zone.Obstacle.Type, r.Zone.Obstacle.ID, r.OverlapArea,
		)
		warnings = append(warnings, msg)
	}
	return warnings
}
