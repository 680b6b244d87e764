// Package solid composes the placed panels of a resolved plan into a single
// 3D solid and writes it out as a binary STL mesh.
package solid

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/model"
)

// defaultMeshCells controls marching cubes tessellation resolution.
const defaultMeshCells = 200

// Compose unions the room-space panel boxes of a plan into one SDF3.
func Compose(plan model.Plan) (sdf.SDF3, error) {
	if len(plan.RoomPanels) == 0 {
		return nil, fmt.Errorf("plan has no panels to compose")
	}

	solids := make([]sdf.SDF3, 0, len(plan.RoomPanels))
	for _, p := range plan.RoomPanels {
		s, err := panelSolid(p.Box)
		if err != nil {
			return nil, fmt.Errorf("panel %q: %w", p.Label, err)
		}
		solids = append(solids, s)
	}
	return sdf.Union3D(solids...), nil
}

// panelSolid converts an axis-aligned box to an SDF3. sdf.Box3D centers the
// box at the origin, so the result is translated to restore the box's own
// minimum corner.
func panelSolid(box model.BoundingBox3D) (sdf.SDF3, error) {
	size := box.Size()
	s, err := sdf.Box3D(v3.Vec{X: size.X, Y: size.Y, Z: size.Z}, 0)
	if err != nil {
		return nil, err
	}
	m := sdf.Translate3d(v3.Vec{
		X: box.Min.X + size.X/2,
		Y: box.Min.Y + size.Y/2,
		Z: box.Min.Z + size.Z/2,
	})
	return sdf.Transform3D(s, m), nil
}

// Triangulate meshes a solid with uniform marching cubes. A non-positive
// cell count falls back to the default resolution.
func Triangulate(s sdf.SDF3, cells int) []render.Triangle3 {
	if cells <= 0 {
		cells = defaultMeshCells
	}
	return render.ToTriangles(s, render.NewMarchingCubesUniform(cells))
}

// WriteSTL tessellates a solid and writes the triangles as binary STL.
func WriteSTL(path string, s sdf.SDF3, cells int) error {
	triangles := Triangulate(s, cells)
	if len(triangles) == 0 {
		return fmt.Errorf("tessellation produced no triangles")
	}

	var buf bytes.Buffer
	if err := writeBinarySTL(&buf, triangles); err != nil {
		return fmt.Errorf("failed to encode STL: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write STL file: %w", err)
	}
	return nil
}

// ExportSTL composes a resolved plan and writes its mesh in one step.
func ExportSTL(path string, plan model.Plan, cells int) error {
	s, err := Compose(plan)
	if err != nil {
		return err
	}
	return WriteSTL(path, s, cells)
}

// writeBinarySTL emits the standard little-endian layout: an 80-byte header,
// a uint32 triangle count, then 50 bytes per triangle (normal, three
// vertices, attribute count).
func writeBinarySTL(buf *bytes.Buffer, triangles []render.Triangle3) error {
	header := make([]byte, 80)
	copy(header, "CabinetMaker binary STL")
	buf.Write(header)

	if err := binary.Write(buf, binary.LittleEndian, uint32(len(triangles))); err != nil {
		return err
	}

	for _, tri := range triangles {
		n := tri.Normal()
		rec := [12]float32{
			float32(n.X), float32(n.Y), float32(n.Z),
			float32(tri[0].X), float32(tri[0].Y), float32(tri[0].Z),
			float32(tri[1].X), float32(tri[1].Y), float32(tri[1].Z),
			float32(tri[2].X), float32(tri[2].Y), float32(tri[2].Z),
		}
		if err := binary.Write(buf, binary.LittleEndian, rec); err != nil {
			return err
		}
		if err := binary.Write(buf, binary.LittleEndian, uint16(0)); err != nil {
			return err
		}
	}
	return nil
}
