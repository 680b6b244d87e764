package model

import "math"

// EdgeBandingSummary holds the calculated edge banding requirements for a plan.
type EdgeBandingSummary struct {
	TotalLinearInches float64 `json:"total_linear_inches"` // Total banding length in inches (no waste)
	TotalLinearFeet   float64 `json:"total_linear_feet"`   // Total banding length in feet (no waste)
	WastePercent      float64 `json:"waste_percent"`       // Waste percentage applied
	TotalWithWasteIn  float64 `json:"total_with_waste_in"` // Total with waste in inches
	TotalWithWasteFt  float64 `json:"total_with_waste_ft"` // Total with waste in feet
	PanelCount        int     `json:"panel_count"`         // Number of panels needing banding
	EdgeCount         int     `json:"edge_count"`          // Total number of edges needing banding
}

// CalculateEdgeBanding computes the total edge banding needed for a panel list.
// wastePercent is the additional percentage to add for waste (e.g., 10 for 10%).
func CalculateEdgeBanding(panels []Panel, wastePercent float64) EdgeBandingSummary {
	var totalInches float64
	var panelCount, edgeCount int

	for _, p := range panels {
		if !p.EdgeBanding.HasAny() {
			continue
		}
		totalInches += p.EdgeBanding.LinearLength(p.Width, p.Height)
		panelCount++
		edgeCount += p.EdgeBanding.EdgeCount()
	}

	wasteFactor := 1.0 + (wastePercent / 100.0)
	totalWithWaste := math.Ceil(totalInches * wasteFactor) // Round up

	return EdgeBandingSummary{
		TotalLinearInches: totalInches,
		TotalLinearFeet:   totalInches / 12.0,
		WastePercent:      wastePercent,
		TotalWithWasteIn:  totalWithWaste,
		TotalWithWasteFt:  totalWithWaste / 12.0,
		PanelCount:        panelCount,
		EdgeCount:         edgeCount,
	}
}

// PerItemEdgeBanding is a per-cut-item breakdown of edge banding needs.
type PerItemEdgeBanding struct {
	Label         string  `json:"label"`
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	Quantity      int     `json:"quantity"`
	Edges         string  `json:"edges"`           // e.g., "T+B+L+R"
	LengthPerUnit float64 `json:"length_per_unit"` // inches per piece
	TotalLength   float64 `json:"total_length"`    // inches for all pieces
}

// CalculatePerItemEdgeBanding returns a banding breakdown per cut-list line.
func CalculatePerItemEdgeBanding(items []CutItem) []PerItemEdgeBanding {
	var results []PerItemEdgeBanding
	for _, it := range items {
		if !it.EdgeBanding.HasAny() {
			continue
		}
		lengthPerUnit := it.EdgeBanding.LinearLength(it.Width, it.Height)
		results = append(results, PerItemEdgeBanding{
			Label:         it.Label,
			Width:         it.Width,
			Height:        it.Height,
			Quantity:      it.Quantity,
			Edges:         it.EdgeBanding.String(),
			LengthPerUnit: lengthPerUnit,
			TotalLength:   lengthPerUnit * float64(it.Quantity),
		})
	}
	return results
}
