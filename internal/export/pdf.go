// Package export renders a resolved cabinet plan to shareable file
// formats: elevation PDFs, spreadsheet workbooks, DXF cut diagrams, and
// QR-coded part labels.
package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/collision"
	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/cutlist"
	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/model"
)

// sectionColor represents an RGB fill for a placed section.
type sectionColor struct {
	R, G, B int
}

// sectionColors mirrors the palette used by the plan renderer so printed
// and rendered output stay consistent.
var sectionColors = []sectionColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	statsHeight  = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF generates a PDF document for a resolved project. Each wall is
// rendered on its own page as an elevation drawing, followed by the
// consolidated cut list and a summary page with purchasing figures and
// accumulated warnings.
func ExportPDF(path string, project model.Project, summary cutlist.Summary) error {
	if project.Plan == nil || len(project.Plan.Walls) == 0 {
		return fmt.Errorf("project has no resolved plan to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	// Render each wall elevation on its own page
	for _, wall := range project.Plan.Walls {
		pdf.AddPage()
		renderWallPage(pdf, project, wall)
	}

	pdf.AddPage()
	renderCutListPage(pdf, summary)

	pdf.AddPage()
	renderSummaryPage(pdf, project, summary)

	return pdf.OutputFileAndClose(path)
}

// renderWallPage draws one wall's elevation on the current PDF page: the
// wall face with its obstacle clearance zones, corner reservations, and
// placed sections, plus dimensions and a legend.
func renderWallPage(pdf *fpdf.Fpdf, project model.Project, result model.LayoutResult) {
	seg := project.Room.Walls[result.WallIndex]

	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Wall %d (%.0f x %.0f in)", result.WallIndex+1, seg.Length, seg.Height)
	if seg.Name != "" {
		title = fmt.Sprintf("Wall %d: %s (%.0f x %.0f in)", result.WallIndex+1, seg.Name, seg.Length, seg.Height)
	}
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Sections: %d | Used: %.1f of %.1f in | Skipped: %d",
		len(result.Placements), result.UsedWidth(), seg.Length, len(result.Skipped))
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	// Calculate drawing area
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - statsHeight

	// Calculate scale to fit the wall face within the drawing area
	scale := math.Min(drawWidth/seg.Length, drawHeight/seg.Height)

	canvasW := seg.Length * scale
	canvasH := seg.Height * scale

	// Center the drawing horizontally
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Draw the wall face background
	pdf.SetFillColor(250, 247, 240)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	drawReservations(pdf, project.Plan.Reservations, result.WallIndex, seg, scale, offsetX, offsetY)
	drawObstacleZones(pdf, project.Obstacles, result.WallIndex, seg, scale, offsetX, offsetY)

	// Draw placed sections. Wall bounds grow up from the floor; PDF Y grows
	// down, so tops flip against the wall height.
	for i, p := range result.Placements {
		col := sectionColors[i%len(sectionColors)]
		pw := p.Bounds.Width() * scale
		ph := p.Bounds.Height() * scale
		px := offsetX + p.Bounds.Left*scale
		py := offsetY + (seg.Height-p.Bounds.Top)*scale

		// Section fill
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(px, py, pw, ph, "FD")

		// Section label (only if rectangle is large enough)
		if pw > 15 && ph > 8 {
			pdf.SetFont("Helvetica", "", labelFontSize(pw, ph))
			pdf.SetTextColor(0, 0, 0)

			label := sectionLabel(project, p)
			dims := fmt.Sprintf("%.0fx%.0f", p.Bounds.Width(), p.Bounds.Height())

			// Draw label centered in the section rectangle
			labelW := pdf.GetStringWidth(label)
			dimsW := pdf.GetStringWidth(dims)

			// First line: label
			if labelW < pw-2 {
				pdf.SetXY(px+(pw-labelW)/2, py+ph/2-4)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}

			// Second line: dimensions
			if ph > 14 && dimsW < pw-2 {
				pdf.SetXY(px+(pw-dimsW)/2, py+ph/2)
				pdf.CellFormat(dimsW, 4, dims, "", 0, "C", false, 0, "")
			}
		}
	}

	// Dimension annotations along the edges
	drawDimensionAnnotations(pdf, seg, scale, offsetX, offsetY, canvasW, canvasH)

	// Section legend at bottom of page
	drawSectionLegend(pdf, project, result, offsetY+canvasH+5)
}

// drawObstacleZones renders each obstacle's clearance envelope and, on top
// of it, the physical footprint so both read clearly on the elevation.
func drawObstacleZones(pdf *fpdf.Fpdf, obstacles []model.Obstacle, wallIndex int, seg model.WallSegment, scale, offsetX, offsetY float64) {
	zones := collision.ZonesForWall(obstacles, wallIndex)
	if len(zones) == 0 {
		return
	}

	for _, zone := range zones {
		b := clampBounds(zone.Bounds, seg)
		if b.Right <= b.Left || b.Top <= b.Bottom {
			continue
		}
		zx := offsetX + b.Left*scale
		zy := offsetY + (seg.Height-b.Top)*scale
		zw := b.Width() * scale
		zh := b.Height() * scale

		// Semi-transparent red zone (simulate with light fill + hatching)
		pdf.SetFillColor(255, 200, 200)
		pdf.SetDrawColor(200, 0, 0)
		pdf.SetLineWidth(0.3)
		pdf.Rect(zx, zy, zw, zh, "FD")

		drawHatchPattern(pdf, zx, zy, zw, zh, 200, 0, 0)
	}

	for _, zone := range zones {
		b := clampBounds(zone.Obstacle.Bounds(), seg)
		if b.Right <= b.Left || b.Top <= b.Bottom {
			continue
		}
		ox := offsetX + b.Left*scale
		oy := offsetY + (seg.Height-b.Top)*scale
		ow := b.Width() * scale
		oh := b.Height() * scale

		pdf.SetFillColor(189, 189, 189)
		pdf.SetDrawColor(80, 80, 80)
		pdf.SetLineWidth(0.3)
		pdf.Rect(ox, oy, ow, oh, "FD")

		// Label for larger footprints
		if ow > 12 && oh > 6 {
			pdf.SetFont("Helvetica", "B", 6)
			pdf.SetTextColor(60, 60, 60)
			name := string(zone.Obstacle.Type)
			nameW := pdf.GetStringWidth(name)
			pdf.SetXY(ox+(ow-nameW)/2, oy+oh/2-2)
			pdf.CellFormat(nameW, 4, name, "", 0, "C", false, 0, "")
		}
	}

	// Reset text color
	pdf.SetTextColor(0, 0, 0)
}

// drawReservations marks full-height wall intervals held for corner units.
func drawReservations(pdf *fpdf.Fpdf, reservations []model.WallSpaceReservation, wallIndex int, seg model.WallSegment, scale, offsetX, offsetY float64) {
	for _, res := range reservations {
		if res.WallIndex != wallIndex {
			continue
		}
		start := math.Max(0, res.Start)
		end := math.Min(seg.Length, res.End)
		if end <= start {
			continue
		}
		rx := offsetX + start*scale
		rw := (end - start) * scale
		rh := seg.Height * scale

		pdf.SetFillColor(205, 220, 250)
		pdf.SetDrawColor(40, 80, 180)
		pdf.SetLineWidth(0.3)
		pdf.Rect(rx, offsetY, rw, rh, "FD")

		drawHatchPattern(pdf, rx, offsetY, rw, rh, 40, 80, 180)

		if rw > 20 {
			pdf.SetFont("Helvetica", "B", 6)
			pdf.SetTextColor(40, 80, 180)
			labelW := pdf.GetStringWidth("CORNER")
			pdf.SetXY(rx+(rw-labelW)/2, offsetY+rh/2-2)
			pdf.CellFormat(labelW, 4, "CORNER", "", 0, "C", false, 0, "")
		}
	}

	pdf.SetTextColor(0, 0, 0)
}

// drawHatchPattern draws diagonal lines inside a rectangle to indicate
// keep-out areas.
func drawHatchPattern(pdf *fpdf.Fpdf, x, y, w, h float64, r, g, b int) {
	pdf.SetDrawColor(r, g, b)
	pdf.SetLineWidth(0.15)

	spacing := 4.0
	maxDist := w + h

	for d := spacing; d < maxDist; d += spacing {
		// Line from bottom-left to top-right diagonal
		x1 := x + math.Max(0, d-h)
		y1 := y + math.Min(h, d)
		x2 := x + math.Min(w, d)
		y2 := y + math.Max(0, d-w)

		pdf.Line(x1, y1, x2, y2)
	}
}

// drawDimensionAnnotations adds length and height labels outside the wall rectangle.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, seg model.WallSegment, scale, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	// Length annotation (below the wall)
	widthLabel := fmt.Sprintf("%.0f in", seg.Length)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	// Height annotation (to the left of the wall, rotated)
	heightLabel := fmt.Sprintf("%.0f in", seg.Height)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	// Reset text color
	pdf.SetTextColor(0, 0, 0)
}

// drawSectionLegend renders a compact legend of placed sections at the
// bottom of the wall page.
func drawSectionLegend(pdf *fpdf.Fpdf, project model.Project, result model.LayoutResult, startY float64) {
	if len(result.Placements) == 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Sections placed:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	maxX := pageWidth - marginRight

	for i, p := range result.Placements {
		col := sectionColors[i%len(sectionColors)]
		label := fmt.Sprintf("%s (%.0fx%.0f)", sectionLabel(project, p), p.Bounds.Width(), p.Bounds.Height())
		if p.Mode != model.ModeFull {
			label += " " + string(p.Mode)
		}
		labelW := pdf.GetStringWidth(label) + 6

		// Wrap to next line if needed
		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}

		// Color swatch
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")

		// Label text
		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}
}

// renderCutListPage draws the consolidated cut list as a table, adding
// continuation pages when rows run past the bottom margin.
func renderCutListPage(pdf *fpdf.Fpdf, summary cutlist.Summary) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Cut List", "", 0, "L", false, 0, "")

	// Separator line
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	colWidths := []float64{15, 72, 28, 28, 28, 25, 45, 26}
	headers := []string{"Qty", "Part", "Type", "Width", "Height", "Thick", "Material", "Banding"}

	drawHeader := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		xPos := marginLeft
		for i, header := range headers {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
			xPos += colWidths[i]
		}
		y += 6
	}
	drawHeader()

	pdf.SetFont("Helvetica", "", 9)
	for i, it := range summary.Items {
		if y > pageHeight-marginBottom-8 {
			pdf.AddPage()
			y = marginTop
			drawHeader()
			pdf.SetFont("Helvetica", "", 9)
		}

		rowData := []string{
			fmt.Sprintf("%d", it.Quantity),
			it.Label,
			strings.ReplaceAll(string(it.Type), "_", " "),
			fmt.Sprintf("%g in", it.Width),
			fmt.Sprintf("%g in", it.Height),
			fmt.Sprintf("%g", it.Thickness),
			it.Material,
			it.EdgeBanding.String(),
		}

		// Alternate row background
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		xPos := marginLeft
		for j, cell := range rowData {
			align := "C"
			if j == 1 || j == 6 {
				align = "L"
			}
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, align, true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	y += 4
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(marginLeft, y)
	total := fmt.Sprintf("%d panels, %.0f sq in (%.1f board feet)",
		summary.PanelCount, summary.TotalArea, summary.Purchase.TotalBoardFeet)
	pdf.CellFormat(200, 6, total, "", 0, "L", false, 0, "")
}

type statLine struct {
	label string
	value string
}

// renderSummaryPage draws the final page with overall statistics,
// accumulated warnings, and the construction settings in force.
func renderSummaryPage(pdf *fpdf.Fpdf, project model.Project, summary cutlist.Summary) {
	plan := project.Plan

	// Title
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, fmt.Sprintf("Layout Summary: %s", project.Name), "", 0, "L", false, 0, "")

	// Separator line
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	// Overall statistics
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Overall Statistics", "", 0, "L", false, 0, "")
	y += 9

	stats := []statLine{
		{"Walls", fmt.Sprintf("%d", len(project.Room.Walls))},
		{"Sections Placed", fmt.Sprintf("%d", plan.PlacedCount())},
		{"Sections Skipped", fmt.Sprintf("%d", plan.SkippedCount())},
		{"Panels To Cut", fmt.Sprintf("%d", summary.PanelCount)},
		{"Panel Area", fmt.Sprintf("%.0f sq in (%.1f bd ft)", summary.TotalArea, summary.Purchase.TotalBoardFeet)},
		{"Sheets To Buy", fmt.Sprintf("%d (%g x %g in, %.0f%% waste)",
			summary.Purchase.SheetsWithWaste, project.Settings.SheetWidth, project.Settings.SheetHeight, summary.Purchase.WastePercent)},
		{"Edge Banding", fmt.Sprintf("%.1f ft including waste", summary.EdgeBanding.TotalWithWasteFt)},
	}
	if summary.Purchase.PricePerSheet > 0 {
		stats = append(stats, statLine{"Estimated Cost", fmt.Sprintf("$%.2f", summary.Purchase.EstimatedCost)})
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range stats {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(80, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	// Accumulated warnings
	advisories := collectAdvisories(*plan)
	if len(advisories) > 0 {
		y += 5
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 7, "WARNINGS", "", 0, "L", false, 0, "")
		y += 8

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)

		for _, msg := range advisories {
			pdf.SetXY(marginLeft+5, y)
			pdf.CellFormat(250, 5, "- "+msg, "", 0, "L", false, 0, "")
			y += 5
		}
	}

	// Construction settings summary
	y += 8
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Construction Settings", "", 0, "L", false, 0, "")
	y += 9

	s := project.Settings
	settingsItems := []statLine{
		{"Carcass Stock", fmt.Sprintf("%g in %s", s.MaterialThickness, s.Material)},
		{"Back Stock", fmt.Sprintf("%g in", s.BackThickness)},
		{"Base / Upper Depth", fmt.Sprintf("%g / %g in", s.BaseDepth, s.UpperDepth)},
		{"Toe Kick", fmt.Sprintf("%g in high, %g in recess", s.ToeKickHeight, s.ToeKickDepth)},
		{"Min Section", fmt.Sprintf("%g in wide, %g in tall", s.MinSectionWidth, s.MinSectionHeight)},
	}

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range settingsItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(50, 5, item.label+":", "", 0, "L", false, 0, "")
		pdf.CellFormat(60, 5, item.value, "", 0, "L", false, 0, "")
		y += 5
	}

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by CabinetMaker - Built-In Cabinet Planner", "", 0, "C", false, 0, "")
}

// collectAdvisories flattens plan-level warnings, per-wall warnings, and
// skip records into printable lines.
func collectAdvisories(plan model.Plan) []string {
	var out []string
	for _, w := range plan.Warnings {
		out = append(out, w.Message)
	}
	for _, wall := range plan.Walls {
		for _, w := range wall.Warnings {
			out = append(out, w.Message)
		}
		for _, s := range wall.Skipped {
			out = append(out, fmt.Sprintf("Section %d (%.1f in) found no space on wall %d: %s",
				s.SectionIndex+1, s.RequestedWidth, wall.WallIndex, s.Reason))
		}
	}
	return out
}

// sectionLabel resolves a placement back to its requested label, tagging
// split parts.
func sectionLabel(project model.Project, p model.PlacedSection) string {
	label := fmt.Sprintf("Section %d", p.SectionIndex+1)
	if p.SectionIndex >= 0 && p.SectionIndex < len(project.Sections) {
		if l := project.Sections[p.SectionIndex].Label; l != "" {
			label = l
		}
	}
	if p.SplitPart > 0 {
		label = fmt.Sprintf("%s (part %d)", label, p.SplitPart)
	}
	return label
}

// clampBounds trims a wall-plane rectangle to the wall face for drawing.
// Clearance zones may legitimately spill past the wall edges.
func clampBounds(b model.SectionBounds, seg model.WallSegment) model.SectionBounds {
	return model.SectionBounds{
		Left:   math.Max(0, b.Left),
		Right:  math.Min(seg.Length, b.Right),
		Bottom: math.Max(0, b.Bottom),
		Top:    math.Min(seg.Height, b.Top),
	}
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}
