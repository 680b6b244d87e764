package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/model"
)

// LabelInfo holds the data encoded into each part label's QR code.
type LabelInfo struct {
	PanelLabel string  `json:"label"`
	Type       string  `json:"type"`
	Width      float64 `json:"width_in"`
	Height     float64 `json:"height_in"`
	Thickness  float64 `json:"thickness_in"`
	Material   string  `json:"material,omitempty"`
	Edges      string  `json:"edges"`
	Piece      int     `json:"piece"`
	Of         int     `json:"of"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
// Each label cell is approximately 66.7mm x 25.4mm on US Letter paper.
const (
	labelPageWidth  = 215.9 // US Letter width in mm
	labelPageHeight = 279.4 // US Letter height in mm
	labelMarginTop  = 12.7  // mm
	labelMarginLeft = 4.8   // mm
	labelWidth      = 66.7  // mm per label
	labelHeight     = 25.4  // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// ExportLabels generates a PDF of QR-coded labels for every physical piece
// on the cut list. Each label carries the part name, face dimensions, stock
// info, and a QR code encoding the piece metadata as JSON. Labels are laid
// out on a standard label sheet format (Avery 5160 / 3 columns x 10 rows
// on US Letter).
func ExportLabels(path string, items []model.CutItem) error {
	labels := CollectLabelInfos(items)
	if len(labels) == 0 {
		return fmt.Errorf("no cut pieces to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		// Add new page when needed
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, i, label); err != nil {
			return fmt.Errorf("failed to render label for %q: %w", label.PanelLabel, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, seq int, info LabelInfo) error {
	// Draw light border for cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	// Generate QR code PNG bytes
	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	// Register QR image with a unique name
	imgName := fmt.Sprintf("qr_%d_%s", seq, info.PanelLabel)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	// Place QR code on the right side of the label
	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	// Text area (left side of label)
	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	// Part label (bold, larger)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)

	// Truncate label if too long
	partLabel := info.PanelLabel
	if pdf.GetStringWidth(partLabel) > textW {
		for len(partLabel) > 0 && pdf.GetStringWidth(partLabel+"...") > textW {
			partLabel = partLabel[:len(partLabel)-1]
		}
		partLabel += "..."
	}
	pdf.CellFormat(textW, 4.5, partLabel, "", 1, "L", false, 0, "")

	// Dimensions
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	dims := fmt.Sprintf("%g x %g in", info.Width, info.Height)
	pdf.CellFormat(textW, 3.5, dims, "", 1, "L", false, 0, "")

	// Stock and piece counter
	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	stock := info.Material
	if stock == "" {
		stock = fmt.Sprintf("%g in stock", info.Thickness)
	}
	pieceInfo := fmt.Sprintf("%s | %d of %d", stock, info.Piece, info.Of)
	pdf.CellFormat(textW, 3, pieceInfo, "", 1, "L", false, 0, "")

	// Edge banding indicator
	if info.Edges != "" && info.Edges != "none" {
		pdf.SetXY(textX, y+labelPadding+12.5)
		pdf.SetFont("Helvetica", "I", 6)
		pdf.SetTextColor(150, 100, 0)
		pdf.CellFormat(textW, 3, "Band: "+info.Edges, "", 0, "L", false, 0, "")
	}

	// Reset text color
	pdf.SetTextColor(0, 0, 0)

	return nil
}

// CollectLabelInfos expands the cut list into per-piece label data: an item
// with quantity N yields N labels numbered 1..N.
func CollectLabelInfos(items []model.CutItem) []LabelInfo {
	var labels []LabelInfo
	for _, it := range items {
		for piece := 1; piece <= it.Quantity; piece++ {
			labels = append(labels, LabelInfo{
				PanelLabel: it.Label,
				Type:       string(it.Type),
				Width:      it.Width,
				Height:     it.Height,
				Thickness:  it.Thickness,
				Material:   it.Material,
				Edges:      it.EdgeBanding.String(),
				Piece:      piece,
				Of:         it.Quantity,
			})
		}
	}
	return labels
}
