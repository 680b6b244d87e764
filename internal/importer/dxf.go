package importer

import (
	"fmt"
	"math"
	"sort"

	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

// RoomImportResult holds the results of a room outline import operation.
type RoomImportResult struct {
	Room     model.Room
	Errors   []string
	Warnings []string
}

// segment represents a line segment between two 2D points, used for
// chaining disconnected LINE entities into closed outlines.
type segment struct {
	start model.Point2D
	end   model.Point2D
}

// chainTolerance is the maximum endpoint gap, in drawing units, for two
// segments to be considered connected.
const chainTolerance = 0.01

// collinearEps is the maximum corner turn, in degrees, below which two
// consecutive outline edges are merged into a single wall.
const collinearEps = 0.01

// ImportRoomDXF imports a room outline from a DXF floor plan. The largest
// closed shape (LWPOLYLINE or chain of connected LINEs) becomes the room;
// every outline edge becomes a wall with the given height and depth, and
// corner angles are derived from the directions of adjacent edges. The
// drawing's absolute position and orientation are discarded, since a room
// is a relative chain of walls.
func ImportRoomDXF(path string, wallHeight, wallDepth float64) RoomImportResult {
	result := RoomImportResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	var outlines [][]model.Point2D
	var segments []segment
	sawCurves := false
	sawBulges := false

	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			pts := make([]model.Point2D, 0, len(e.Vertices))
			for i, v := range e.Vertices {
				if i < len(e.Bulges) && math.Abs(e.Bulges[i]) > 1e-9 {
					sawBulges = true
				}
				pts = append(pts, model.Point2D{X: v[0], Y: v[1]})
			}
			if len(pts) >= 3 {
				outlines = append(outlines, pts)
			} else {
				result.Warnings = append(result.Warnings,
					"Skipped LWPOLYLINE with fewer than 3 vertices")
			}

		case *entity.Line:
			segments = append(segments, segment{
				start: model.Point2D{X: e.Start[0], Y: e.Start[1]},
				end:   model.Point2D{X: e.End[0], Y: e.End[1]},
			})

		case *entity.Circle, *entity.Arc:
			sawCurves = true

		default:
			// Unsupported entity types are silently skipped
		}
	}

	if sawBulges {
		result.Warnings = append(result.Warnings,
			"Curved polyline segments are not supported for walls; using straight chords")
	}
	if sawCurves {
		result.Warnings = append(result.Warnings,
			"Circles and arcs cannot form walls and were ignored")
	}

	// Chain loose LINEs into outlines
	closed, open := chainSegments(segments, chainTolerance)
	outlines = append(outlines, closed...)

	if len(outlines) == 0 {
		if len(open) > 0 {
			result.Errors = append(result.Errors, "Room outline is not closed")
		} else {
			result.Errors = append(result.Errors, "No closed room outline found in DXF file")
		}
		return result
	}
	if len(open) > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Ignored %d unclosed line chain(s)", len(open)))
	}

	// The largest outline is the room; smaller closed shapes are fixtures
	// or islands and do not become walls.
	sort.Slice(outlines, func(i, j int) bool {
		return outlineArea(outlines[i]) > outlineArea(outlines[j])
	})
	if len(outlines) > 1 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Ignored %d smaller closed outline(s); only the largest becomes the room", len(outlines)-1))
	}

	room, errs, warns := outlineToRoom(outlines[0], wallHeight, wallDepth)
	result.Errors = append(result.Errors, errs...)
	result.Warnings = append(result.Warnings, warns...)
	if len(result.Errors) > 0 {
		return result
	}

	result.Room = room
	return result
}

// outlineToRoom converts a closed polygon into a wall chain. Edge lengths
// become wall lengths; the turn between consecutive edge directions becomes
// the next wall's corner angle (positive = clockwise).
func outlineToRoom(outline []model.Point2D, wallHeight, wallDepth float64) (model.Room, []string, []string) {
	var errs, warns []string

	type edge struct {
		length    float64
		direction float64 // degrees, from atan2
	}

	edges := make([]edge, 0, len(outline))
	for i := range outline {
		a := outline[i]
		b := outline[(i+1)%len(outline)]
		length := a.DistanceTo(b)
		if length < chainTolerance {
			warns = append(warns, fmt.Sprintf("Dropped degenerate outline edge %d (%.4f long)", i, length))
			continue
		}
		dir := math.Atan2(b.Y-a.Y, b.X-a.X) * 180 / math.Pi
		edges = append(edges, edge{length: length, direction: dir})
	}

	// Merge collinear neighbors: a wall drawn as several segments is one wall.
	merged := make([]edge, 0, len(edges))
	for _, e := range edges {
		if len(merged) > 0 && math.Abs(turnAngle(merged[len(merged)-1].direction, e.direction)) < collinearEps {
			merged[len(merged)-1].length += e.length
			continue
		}
		merged = append(merged, e)
	}
	// The seam between the last and first edge can be collinear too.
	if len(merged) > 2 && math.Abs(turnAngle(merged[len(merged)-1].direction, merged[0].direction)) < collinearEps {
		merged[0].length += merged[len(merged)-1].length
		merged = merged[:len(merged)-1]
	}

	if len(merged) < 3 {
		errs = append(errs, "Room outline needs at least 3 walls")
		return model.Room{}, errs, warns
	}

	walls := make([]model.WallSegment, 0, len(merged))
	for i, e := range merged {
		angle := 0.0
		if i > 0 {
			angle = turnAngle(merged[i-1].direction, e.direction)
		}
		if angle < model.MinWallAngle || angle > model.MaxWallAngle {
			errs = append(errs, fmt.Sprintf("Corner before wall %d turns %.1f degrees; walls may turn at most %.0f", i, angle, model.MaxWallAngle))
			continue
		}
		w, err := model.NewWallSegment(e.length, wallHeight, wallDepth, angle)
		if err != nil {
			errs = append(errs, fmt.Sprintf("Wall %d: %v", i, err))
			continue
		}
		walls = append(walls, w)
	}
	if len(errs) > 0 {
		return model.Room{}, errs, warns
	}

	room, err := model.NewRoom(walls, true)
	if err != nil {
		errs = append(errs, err.Error())
		return model.Room{}, errs, warns
	}
	return room, errs, warns
}

// turnAngle returns the clockwise turn, in degrees, from one edge direction
// to the next, normalized to (-180, 180].
func turnAngle(prevDir, dir float64) float64 {
	a := math.Mod(prevDir-dir+540, 360) - 180
	if a == -180 {
		a = 180
	}
	return a
}

// chainSegments connects individual segments into outlines, separating
// closed loops from open chains. tolerance is the maximum distance between
// endpoints to consider them connected.
func chainSegments(segs []segment, tolerance float64) (closed, open [][]model.Point2D) {
	if len(segs) == 0 {
		return nil, nil
	}

	used := make([]bool, len(segs))

	for {
		// Find the first unused segment
		startIdx := -1
		for i, u := range used {
			if !u {
				startIdx = i
				break
			}
		}
		if startIdx == -1 {
			break
		}

		chain := []model.Point2D{segs[startIdx].start, segs[startIdx].end}
		used[startIdx] = true

		// Try to extend the chain
		changed := true
		for changed {
			changed = false
			tail := chain[len(chain)-1]

			for i, seg := range segs {
				if used[i] {
					continue
				}
				if pointsClose(tail, seg.start, tolerance) {
					chain = append(chain, seg.end)
					used[i] = true
					changed = true
					break
				}
				if pointsClose(tail, seg.end, tolerance) {
					chain = append(chain, seg.start)
					used[i] = true
					changed = true
					break
				}
			}
		}

		// A chain that loops back to its start is a closed outline
		if len(chain) >= 4 && pointsClose(chain[0], chain[len(chain)-1], tolerance) {
			closed = append(closed, chain[:len(chain)-1])
		} else {
			open = append(open, chain)
		}
	}

	return closed, open
}

// pointsClose checks whether two points are within the given tolerance.
func pointsClose(a, b model.Point2D, tolerance float64) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx+dy*dy) <= tolerance
}

// outlineArea computes the absolute area of a polygon using the shoelace formula.
func outlineArea(o []model.Point2D) float64 {
	n := len(o)
	if n < 3 {
		return 0
	}
	var area float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += o[i].X * o[j].Y
		area -= o[j].X * o[i].Y
	}
	return math.Abs(area) / 2
}
