package transform

import (
	"math"

	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/model"
)

// snapEps is the threshold below which a coordinate is treated as zero.
// Rotating by multiples of 90 degrees leaves sin/cos residue around 1e-16;
// snapping keeps that noise from leaking into the non-negative room space.
const snapEps = 1e-10

// ForSection converts a linear wall assignment plus the wall's pose into
// the rigid transform that carries section-local geometry into room space.
// The rotation flips the cabinet's front axis to face into the room, and
// any negative position coordinate is mirrored to its absolute value.
func ForSection(a model.WallSectionAssignment, pose model.WallPose) model.SectionTransform {
	rad := pose.Direction * math.Pi / 180
	x := snap(pose.Start.X + a.Offset*math.Cos(rad))
	y := snap(pose.Start.Y + a.Offset*math.Sin(rad))

	return model.SectionTransform{
		SectionIndex: a.SectionIndex,
		WallIndex:    a.WallIndex,
		Position:     model.Point3D{X: math.Abs(x), Y: math.Abs(y), Z: 0},
		RotationZ:    normalizeAngle(-pose.Direction),
	}
}

// ForSections maps every assignment through its wall's pose. Assignments
// referencing a wall with no pose are dropped; the assignment service has
// already reported those.
func ForSections(assignments []model.WallSectionAssignment, poses []model.WallPose) []model.SectionTransform {
	byWall := make(map[int]model.WallPose, len(poses))
	for _, p := range poses {
		byWall[p.Index] = p
	}

	out := make([]model.SectionTransform, 0, len(assignments))
	for _, a := range assignments {
		pose, ok := byWall[a.WallIndex]
		if !ok {
			continue
		}
		out = append(out, ForSection(a, pose))
	}
	return out
}

// Apply carries a local axis-aligned box into room space: rotate its 8
// corners about Z, translate, then box the result again. The re-boxing is
// required because a rotated AABB is no longer axis-aligned.
func Apply(tr model.SectionTransform, box model.BoundingBox3D) model.BoundingBox3D {
	rad := tr.RotationZ * math.Pi / 180
	sin, cos := math.Sincos(rad)

	min := model.Point3D{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	max := model.Point3D{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for _, c := range box.Corners() {
		x := snap(c.X*cos - c.Y*sin + tr.Position.X)
		y := snap(c.X*sin + c.Y*cos + tr.Position.Y)
		z := snap(c.Z + tr.Position.Z)

		min.X = math.Min(min.X, x)
		min.Y = math.Min(min.Y, y)
		min.Z = math.Min(min.Z, z)
		max.X = math.Max(max.X, x)
		max.Y = math.Max(max.Y, y)
		max.Z = math.Max(max.Z, z)
	}
	return model.BoundingBox3D{Min: min, Max: max}
}

// ApplyAll transforms each box by its matching transform, pairwise.
func ApplyAll(transforms []model.SectionTransform, boxes []model.BoundingBox3D) []model.BoundingBox3D {
	n := len(boxes)
	if len(transforms) < n {
		n = len(transforms)
	}
	out := make([]model.BoundingBox3D, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Apply(transforms[i], boxes[i]))
	}
	return out
}

// RebaseNonNegative shifts a set of boxes together so that no coordinate is
// negative. The shift is collective: relative positions between boxes are
// preserved exactly.
func RebaseNonNegative(boxes []model.BoundingBox3D) []model.BoundingBox3D {
	if len(boxes) == 0 {
		return nil
	}

	shift := model.Point3D{}
	for _, b := range boxes {
		shift.X = math.Min(shift.X, b.Min.X)
		shift.Y = math.Min(shift.Y, b.Min.Y)
		shift.Z = math.Min(shift.Z, b.Min.Z)
	}

	out := make([]model.BoundingBox3D, 0, len(boxes))
	for _, b := range boxes {
		out = append(out, b.Translate(-shift.X, -shift.Y, -shift.Z))
	}
	return out
}

func snap(v float64) float64 {
	if math.Abs(v) < snapEps {
		return 0
	}
	return v
}

func normalizeAngle(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}
