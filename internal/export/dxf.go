package export

import (
	"fmt"
	"math"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/table"

	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/model"
)

// DXF layout constants, drawing units are inches.
const (
	dxfGap      = 2.0  // spacing between laid-out pieces
	dxfRowWidth = 96.0 // wrap width for the piece grid
	dxfTextSize = 1.5  // label text height
)

// layerColors assigns each panel role its own DXF color so CAD software
// can toggle roles independently.
var layerColors = map[model.PanelType]color.ColorNumber{
	model.PanelSide:    color.Green,
	model.PanelBottom:  color.Cyan,
	model.PanelTop:     color.Blue,
	model.PanelBack:    color.Magenta,
	model.PanelShelf:   color.Yellow,
	model.PanelDivider: color.White,
	model.PanelToeKick: color.Red,
}

// ExportDXF writes the cut list as a 2D drawing: one rectangle per physical
// piece, laid out in rows, with each panel role on its own layer and the
// piece labels on a shared "labels" layer.
func ExportDXF(path string, items []model.CutItem) error {
	if len(items) == 0 {
		return fmt.Errorf("no cut items to export")
	}

	d := dxf.NewDrawing()

	// One layer per panel role present in the list
	seen := make(map[model.PanelType]bool)
	for _, it := range items {
		if seen[it.Type] {
			continue
		}
		seen[it.Type] = true
		cl, ok := layerColors[it.Type]
		if !ok {
			cl = dxf.DefaultColor
		}
		if _, err := d.AddLayer(string(it.Type), cl, dxf.DefaultLineType, false); err != nil {
			return fmt.Errorf("failed to add layer %q: %w", it.Type, err)
		}
	}
	if _, err := d.AddLayer("labels", dxf.DefaultColor, table.LT_CONTINUOUS, false); err != nil {
		return fmt.Errorf("failed to add labels layer: %w", err)
	}

	// Lay pieces out in rows, wrapping at the row width. Items arrive
	// sorted largest first, which keeps rows reasonably even.
	var x, y, rowTop float64
	for _, it := range items {
		for piece := 0; piece < it.Quantity; piece++ {
			if x > 0 && x+it.Width > dxfRowWidth {
				x = 0
				y = rowTop + dxfGap
			}

			if err := d.ChangeLayer(string(it.Type)); err != nil {
				return fmt.Errorf("failed to switch to layer %q: %w", it.Type, err)
			}
			if err := drawPieceOutline(d, x, y, it.Width, it.Height); err != nil {
				return fmt.Errorf("failed to draw piece %q: %w", it.Label, err)
			}

			if err := d.ChangeLayer("labels"); err != nil {
				return fmt.Errorf("failed to switch to labels layer: %w", err)
			}
			size := math.Min(dxfTextSize, it.Height/3)
			if _, err := d.Text(it.Label, x+0.5, y+0.5, 0.0, size); err != nil {
				return fmt.Errorf("failed to label piece %q: %w", it.Label, err)
			}

			if y+it.Height > rowTop {
				rowTop = y + it.Height
			}
			x += it.Width + dxfGap
		}
	}

	return d.SaveAs(path)
}

// drawPieceOutline draws one piece's rectangle from four line entities.
func drawPieceOutline(d *drawing.Drawing, x, y, w, h float64) error {
	lines := [][4]float64{
		{x, y, x + w, y},
		{x + w, y, x + w, y + h},
		{x + w, y + h, x, y + h},
		{x, y + h, x, y},
	}
	for _, l := range lines {
		if _, err := d.Line(l[0], l[1], 0.0, l[2], l[3], 0.0); err != nil {
			return err
		}
	}
	return nil
}
