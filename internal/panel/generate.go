package panel

import (
	"fmt"

	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/model"
)

const floorEps = 1e-9

// Generate produces the frameless carcass panels for one resolved section,
// in section-local coordinates: X across the width from the left edge, Y
// from the wall face into the room, Z up from the floor.
//
// Construction follows standard frameless practice: the sides run full
// height and capture the bottom and top decks between them; a section that
// stands on the floor gets its bottom deck raised on a recessed toe kick;
// the back panel is thinner stock let in behind the decks. Interior rows
// are separated by fixed dividers, and each row's shelves are spaced evenly
// with a setback at the front.
func Generate(s model.ResolvedSection, settings model.LayoutSettings) []model.Panel {
	w := s.Bounds.Width()
	h := s.Bounds.Height()
	d := s.Depth
	t := settings.MaterialThickness

	onFloor := s.Bounds.Bottom < floorEps
	kick := 0.0
	if onFloor {
		kick = settings.ToeKickHeight
	}
	if w <= 2*t || h <= 2*t+kick || d <= settings.BackThickness {
		return nil
	}

	z0 := s.Bounds.Bottom
	z1 := s.Bounds.Top
	deckZ := z0 + kick
	base := s.Spec.Label
	if base == "" {
		base = fmt.Sprintf("Section %d", s.Index+1)
	}

	add := func(panels []model.Panel, label string, typ model.PanelType, box model.BoundingBox3D, banding model.EdgeBanding) []model.Panel {
		p := model.NewPanel(base+" "+label, typ, s.Index, box)
		p.Material = settings.Material
		p.EdgeBanding = banding
		return append(panels, p)
	}

	frontEdgeUp := model.EdgeBanding{Top: true}
	frontEdgeSide := model.EdgeBanding{Right: true}

	var panels []model.Panel
	panels = add(panels, "Left Side", model.PanelSide,
		boxOf(0, t, 0, d, z0, z1), frontEdgeSide)
	panels = add(panels, "Right Side", model.PanelSide,
		boxOf(w-t, w, 0, d, z0, z1), frontEdgeSide)
	panels = add(panels, "Bottom", model.PanelBottom,
		boxOf(t, w-t, 0, d, deckZ, deckZ+t), frontEdgeUp)
	panels = add(panels, "Top", model.PanelTop,
		boxOf(t, w-t, 0, d, z1-t, z1), frontEdgeUp)

	if onFloor && kick > 0 {
		kickFront := d - settings.ToeKickDepth
		if kickFront > t {
			panels = add(panels, "Toe Kick", model.PanelToeKick,
				boxOf(t, w-t, kickFront-t, kickFront, z0, z0+kick), model.EdgeBanding{})
		}
	}

	back := model.NewPanel(base+" Back", model.PanelBack, s.Index,
		boxOf(t, w-t, 0, settings.BackThickness, deckZ, z1))
	back.Material = settings.Material
	panels = append(panels, back)

	interiorBottom := deckZ + t
	interiorTop := z1 - t
	if interiorTop-interiorBottom <= t {
		return panels
	}

	rows := s.Rows
	if len(rows) == 0 {
		rows = []model.ResolvedRow{{Height: interiorTop - interiorBottom, ShelfCount: s.Spec.ShelfCount}}
	}

	shelfNo := 0
	zz := interiorBottom
	for i, row := range rows {
		rowTop := zz + row.Height
		panels, shelfNo = addShelves(panels, add, row, zz, rowTop, w, d, t, settings, shelfNo)
		zz = rowTop
		if i < len(rows)-1 {
			panels = add(panels, fmt.Sprintf("Divider %d", i+1), model.PanelDivider,
				boxOf(t, w-t, 0, d, zz, zz+t), frontEdgeUp)
			zz += t
		}
	}

	return panels
}

type addFunc func([]model.Panel, string, model.PanelType, model.BoundingBox3D, model.EdgeBanding) []model.Panel

// addShelves spaces a row's shelves evenly between its top and bottom,
// inset behind the front by the shelf setback and stopped at the back panel.
func addShelves(panels []model.Panel, add addFunc, row model.ResolvedRow, rowBottom, rowTop, w, d, t float64, settings model.LayoutSettings, shelfNo int) ([]model.Panel, int) {
	if row.ShelfCount <= 0 {
		return panels, shelfNo
	}
	gap := (rowTop - rowBottom - float64(row.ShelfCount)*t) / float64(row.ShelfCount+1)
	if gap <= 0 {
		return panels, shelfNo
	}

	shelfFront := d - settings.ShelfSetback
	for j := 1; j <= row.ShelfCount; j++ {
		z := rowBottom + float64(j)*gap + float64(j-1)*t
		shelfNo++
		panels = add(panels, fmt.Sprintf("Shelf %d", shelfNo), model.PanelShelf,
			boxOf(t, w-t, settings.BackThickness, shelfFront, z, z+t), model.EdgeBanding{Top: true})
	}
	return panels, shelfNo
}

// GenerateAll produces panels for every resolved section, in section order.
func GenerateAll(sections []model.ResolvedSection, settings model.LayoutSettings) []model.Panel {
	var panels []model.Panel
	for _, s := range sections {
		panels = append(panels, Generate(s, settings)...)
	}
	return panels
}

func boxOf(x0, x1, y0, y1, z0, z1 float64) model.BoundingBox3D {
	return model.BoundingBox3D{
		Min: model.Point3D{X: x0, Y: y0, Z: z0},
		Max: model.Point3D{X: x1, Y: y1, Z: z1},
	}
}
