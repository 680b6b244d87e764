package model

import "fmt"

// Wall angles are turns from the previous wall's direction, in degrees.
// Positive turns clockwise. Anything sharper than 135 degrees either way
// is not a buildable wall junction.
const (
	MinWallAngle = -135.0
	MaxWallAngle = 135.0
)

// DefaultClosureTolerance is the largest gap in inches allowed between the
// first wall's start and the last wall's end for a room marked closed.
const DefaultClosureTolerance = 0.1

// WallSegment describes one wall in a chained room outline.
type WallSegment struct {
	Length float64 `json:"length"` // inches along the wall face
	Height float64 `json:"height"` // inches, floor to ceiling
	Depth  float64 `json:"depth"`  // inches of wall thickness, drawing only
	Angle  float64 `json:"angle"`  // degrees turned from the previous wall, positive = clockwise
	Name   string  `json:"name,omitempty"`
}

func NewWallSegment(length, height, depth, angle float64) (WallSegment, error) {
	if length <= 0 {
		return WallSegment{}, fmt.Errorf("wall length must be positive, got %.3f", length)
	}
	if height <= 0 {
		return WallSegment{}, fmt.Errorf("wall height must be positive, got %.3f", height)
	}
	if depth < 0 {
		return WallSegment{}, fmt.Errorf("wall depth must not be negative, got %.3f", depth)
	}
	if angle < MinWallAngle || angle > MaxWallAngle {
		return WallSegment{}, fmt.Errorf("wall angle %.1f outside [%.0f, %.0f]", angle, MinWallAngle, MaxWallAngle)
	}
	return WallSegment{Length: length, Height: height, Depth: depth, Angle: angle}, nil
}

// Room is a chained sequence of wall segments. The first wall runs along
// +X from the origin; each later wall turns by its own angle from the
// previous wall's direction.
type Room struct {
	Walls            []WallSegment `json:"walls"`
	Closed           bool          `json:"closed"`
	ClosureTolerance float64       `json:"closure_tolerance,omitempty"` // inches, 0 = default
}

func NewRoom(walls []WallSegment, closed bool) (Room, error) {
	if len(walls) == 0 {
		return Room{}, fmt.Errorf("room needs at least one wall")
	}
	if walls[0].Angle != 0 {
		return Room{}, fmt.Errorf("first wall angle must be 0, got %.1f", walls[0].Angle)
	}
	return Room{Walls: walls, Closed: closed}, nil
}

// Tolerance returns the closure tolerance, substituting the default when unset.
func (r Room) Tolerance() float64 {
	if r.ClosureTolerance > 0 {
		return r.ClosureTolerance
	}
	return DefaultClosureTolerance
}

// WallIndexByName returns the index of the named wall, or -1 when absent.
func (r Room) WallIndexByName(name string) int {
	for i, w := range r.Walls {
		if w.Name == name {
			return i
		}
	}
	return -1
}

// WallPose is the absolute 2D placement of one wall, derived once per room
// by forward integration of the segment chain. Never stored on the Room.
type WallPose struct {
	Index     int     `json:"index"`
	Start     Point2D `json:"start"`
	End       Point2D `json:"end"`
	Direction float64 `json:"direction"` // absolute angle in degrees, 0 = +X
}

// GeometryErrorKind classifies a defect in a room outline.
type GeometryErrorKind string

const (
	GeometryInput        GeometryErrorKind = "input"        // Malformed room or wall values
	GeometryClosure      GeometryErrorKind = "closure"      // Closed room fails to return to its start
	GeometryIntersection GeometryErrorKind = "intersection" // Two non-adjacent walls cross
)

// GeometryError describes one defect found while validating a room.
// Validation reports these as values; callers decide whether to proceed.
type GeometryError struct {
	Kind    GeometryErrorKind `json:"kind"`
	WallA   int               `json:"wall_a"`
	WallB   int               `json:"wall_b"`         // -1 when a single wall is at fault
	Gap     float64           `json:"gap,omitempty"`  // inches, closure errors only
	Message string            `json:"message"`
}

func (e GeometryError) Error() string { return e.Message }
