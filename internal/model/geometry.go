package model

import (
	"fmt"
	"math"
)

// Point2D represents a 2D coordinate in inches.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DistanceTo returns the Euclidean distance between two points.
func (p Point2D) DistanceTo(other Point2D) float64 {
	return math.Hypot(other.X-p.X, other.Y-p.Y)
}

// Point3D represents a 3D coordinate in inches. Z is up.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// SectionBounds is a wall-plane rectangle. Left/Right run along the wall
// from its start; Bottom/Top run up from the floor. All inches.
type SectionBounds struct {
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Top    float64 `json:"top"`
}

// NewSectionBounds builds a rectangle, rejecting degenerate or inverted
// extents: Right must exceed Left and Top must exceed Bottom.
func NewSectionBounds(left, right, bottom, top float64) (SectionBounds, error) {
	if right <= left {
		return SectionBounds{}, fmt.Errorf("invalid bounds: right %.3f must exceed left %.3f", right, left)
	}
	if top <= bottom {
		return SectionBounds{}, fmt.Errorf("invalid bounds: top %.3f must exceed bottom %.3f", top, bottom)
	}
	return SectionBounds{Left: left, Right: right, Bottom: bottom, Top: top}, nil
}

func (b SectionBounds) Width() float64  { return b.Right - b.Left }
func (b SectionBounds) Height() float64 { return b.Top - b.Bottom }
func (b SectionBounds) Area() float64   { return b.Width() * b.Height() }

// Overlaps reports whether the interiors of b and other intersect.
// Rectangles that only share an edge do not overlap.
func (b SectionBounds) Overlaps(other SectionBounds) bool {
	return b.Left < other.Right && b.Right > other.Left &&
		b.Bottom < other.Top && b.Top > other.Bottom
}

// IntersectionArea returns the exact area shared by b and other in square
// inches, 0 when disjoint.
func (b SectionBounds) IntersectionArea(other SectionBounds) float64 {
	w := math.Min(b.Right, other.Right) - math.Max(b.Left, other.Left)
	h := math.Min(b.Top, other.Top) - math.Max(b.Bottom, other.Bottom)
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// Contains reports whether other lies entirely within b (edges included).
func (b SectionBounds) Contains(other SectionBounds) bool {
	return other.Left >= b.Left && other.Right <= b.Right &&
		other.Bottom >= b.Bottom && other.Top <= b.Top
}

// BoundingBox3D is an axis-aligned box in inches.
type BoundingBox3D struct {
	Min Point3D `json:"min"`
	Max Point3D `json:"max"`
}

// NewBoundingBox3D builds a box, rejecting inverted or zero extents on any axis.
func NewBoundingBox3D(min, max Point3D) (BoundingBox3D, error) {
	if max.X <= min.X || max.Y <= min.Y || max.Z <= min.Z {
		return BoundingBox3D{}, fmt.Errorf("invalid box: max (%.3f, %.3f, %.3f) must exceed min (%.3f, %.3f, %.3f) on every axis",
			max.X, max.Y, max.Z, min.X, min.Y, min.Z)
	}
	return BoundingBox3D{Min: min, Max: max}, nil
}

// Size returns the box extents per axis.
func (b BoundingBox3D) Size() Point3D {
	return Point3D{X: b.Max.X - b.Min.X, Y: b.Max.Y - b.Min.Y, Z: b.Max.Z - b.Min.Z}
}

// Translate shifts the box by the given offsets.
func (b BoundingBox3D) Translate(dx, dy, dz float64) BoundingBox3D {
	return BoundingBox3D{
		Min: Point3D{X: b.Min.X + dx, Y: b.Min.Y + dy, Z: b.Min.Z + dz},
		Max: Point3D{X: b.Max.X + dx, Y: b.Max.Y + dy, Z: b.Max.Z + dz},
	}
}

// Corners returns the eight vertices of the box.
func (b BoundingBox3D) Corners() [8]Point3D {
	return [8]Point3D{
		{X: b.Min.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Max.Z},
	}
}
