package room

import (
	"fmt"
	"math"

	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/model"
)

// WallPoses computes the absolute 2D placement of every wall by forward
// integration: start at the origin heading along +X, and for each wall turn
// by its angle (positive = clockwise), then project its length.
func WallPoses(r model.Room) []model.WallPose {
	poses := make([]model.WallPose, 0, len(r.Walls))
	start := model.Point2D{}
	direction := 0.0

	for i, wall := range r.Walls {
		direction = normalizeAngle(direction - wall.Angle)
		rad := direction * math.Pi / 180
		end := model.Point2D{
			X: start.X + wall.Length*math.Cos(rad),
			Y: start.Y + wall.Length*math.Sin(rad),
		}
		poses = append(poses, model.WallPose{
			Index:     i,
			Start:     start,
			End:       end,
			Direction: direction,
		})
		start = end
	}
	return poses
}

// ValidateGeometry checks a room outline for malformed walls, non-adjacent
// wall crossings, and closure gaps. Defects come back as values; nothing
// here aborts, so callers can decide how much brokenness to tolerate.
func ValidateGeometry(r model.Room) []model.GeometryError {
	var errs []model.GeometryError

	if len(r.Walls) == 0 {
		return append(errs, model.GeometryError{
			Kind:    model.GeometryInput,
			WallA:   -1,
			WallB:   -1,
			Message: "room has no walls",
		})
	}
	if r.Walls[0].Angle != 0 {
		errs = append(errs, model.GeometryError{
			Kind:    model.GeometryInput,
			WallA:   0,
			WallB:   -1,
			Message: fmt.Sprintf("first wall angle must be 0, got %.1f", r.Walls[0].Angle),
		})
	}
	for i, w := range r.Walls {
		switch {
		case w.Length <= 0:
			errs = append(errs, model.GeometryError{
				Kind:    model.GeometryInput,
				WallA:   i,
				WallB:   -1,
				Message: fmt.Sprintf("wall %d length must be positive, got %.3f", i, w.Length),
			})
		case w.Height <= 0:
			errs = append(errs, model.GeometryError{
				Kind:    model.GeometryInput,
				WallA:   i,
				WallB:   -1,
				Message: fmt.Sprintf("wall %d height must be positive, got %.3f", i, w.Height),
			})
		case w.Angle < model.MinWallAngle || w.Angle > model.MaxWallAngle:
			errs = append(errs, model.GeometryError{
				Kind:    model.GeometryInput,
				WallA:   i,
				WallB:   -1,
				Message: fmt.Sprintf("wall %d angle %.1f outside [%.0f, %.0f]", i, w.Angle, model.MinWallAngle, model.MaxWallAngle),
			})
		}
	}
	if len(errs) > 0 {
		// Degenerate walls make the pose math meaningless; geometric checks
		// would only report noise on top.
		return errs
	}

	poses := WallPoses(r)

	// Non-adjacent wall pairs must not cross. The first and last walls of a
	// closed room are meant to meet, so that pair is exempt.
	n := len(poses)
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if r.Closed && i == 0 && j == n-1 {
				continue
			}
			if segmentsCross(poses[i].Start, poses[i].End, poses[j].Start, poses[j].End) {
				errs = append(errs, model.GeometryError{
					Kind:    model.GeometryIntersection,
					WallA:   i,
					WallB:   j,
					Message: fmt.Sprintf("walls %d and %d cross each other", i, j),
				})
			}
		}
	}

	if r.Closed && n > 0 {
		gap := poses[0].Start.DistanceTo(poses[n-1].End)
		if gap > r.Tolerance() {
			errs = append(errs, model.GeometryError{
				Kind:    model.GeometryClosure,
				WallA:   0,
				WallB:   n - 1,
				Gap:     gap,
				Message: fmt.Sprintf("closed room fails to close: %.3f\" gap between wall %d end and wall 0 start", gap, n-1),
			})
		}
	}

	return errs
}

// Junction is a corner where one wall ends and the next begins.
type Junction struct {
	LeftWall  int     // wall ending at the corner
	RightWall int     // wall starting at the corner
	Turn      float64 // degrees, positive = clockwise
}

// RightAngleJunctions returns the corners where the room turns exactly 90
// degrees either way. Corner cabinets can only span these.
func RightAngleJunctions(r model.Room) []Junction {
	var junctions []Junction
	for i := 1; i < len(r.Walls); i++ {
		a := r.Walls[i].Angle
		if a == 90 || a == -90 {
			junctions = append(junctions, Junction{LeftWall: i - 1, RightWall: i, Turn: a})
		}
	}
	return junctions
}

// normalizeAngle maps any angle in degrees onto [0, 360).
func normalizeAngle(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// collinearEps absorbs the trig drift in computed wall endpoints, inches
// squared. A cross product this close to zero reads as a touch, not a side.
const collinearEps = 1e-9

// cross returns the z component of (b-a) x (c-a).
func cross(a, b, c model.Point2D) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// side classifies a point relative to a directed line: +1 left, -1 right,
// 0 on the line within collinearEps.
func side(a, b, c model.Point2D) int {
	d := cross(a, b, c)
	switch {
	case d > collinearEps:
		return 1
	case d < -collinearEps:
		return -1
	}
	return 0
}

// segmentsCross applies the straddle test: each segment's endpoints must
// lie strictly on opposite sides of the other segment's line. Endpoint
// touches classify as on-the-line and do not count as crossings.
func segmentsCross(p1, p2, q1, q2 model.Point2D) bool {
	d1 := side(q1, q2, p1)
	d2 := side(q1, q2, p2)
	d3 := side(p1, p2, q1)
	d4 := side(p1, p2, q2)
	return d1*d2 < 0 && d3*d4 < 0
}
