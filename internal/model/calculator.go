package model

import "math"

// PurchaseEstimate holds the results of a sheet purchasing calculation.
type PurchaseEstimate struct {
	TotalPanelArea    float64 `json:"total_panel_area"`    // Total face area of all panels (sq in)
	TotalBoardFeet    float64 `json:"total_board_feet"`    // Total area in board feet (1 bf = 144 sq in)
	SheetArea         float64 `json:"sheet_area"`          // Area of one sheet (sq in)
	SheetsNeededExact float64 `json:"sheets_needed_exact"` // Exact fractional number of sheets
	SheetsNeededMin   int     `json:"sheets_needed_min"`   // Minimum sheets (ceiling of exact)
	SheetsWithWaste   int     `json:"sheets_with_waste"`   // Recommended sheets including waste factor
	WastePercent      float64 `json:"waste_percent"`       // Waste factor applied (e.g., 15 for 15%)
	EstimatedCost     float64 `json:"estimated_cost"`      // Total cost if pricing available
	PricePerSheet     float64 `json:"price_per_sheet"`     // Price used for estimation
}

// sqinPerBoardFoot is the number of square inches in one board foot of
// sheet stock: 1 board foot = 12" x 12" at nominal 1" thickness = 144 sq in.
const sqinPerBoardFoot = 144.0

// CalculatePurchaseEstimate computes how many sheets to buy for a cut list.
// It accounts for offcut loss through an additional waste percentage factor.
func CalculatePurchaseEstimate(items []CutItem, sheetWidth, sheetHeight, wastePercent, pricePerSheet float64) PurchaseEstimate {
	var totalArea float64
	for _, it := range items {
		totalArea += it.Width * it.Height * float64(it.Quantity)
	}

	sheetArea := sheetWidth * sheetHeight
	if sheetArea <= 0 {
		return PurchaseEstimate{
			TotalPanelArea: totalArea,
			TotalBoardFeet: totalArea / sqinPerBoardFoot,
			WastePercent:   wastePercent,
		}
	}

	exactSheets := totalArea / sheetArea
	minSheets := int(math.Ceil(exactSheets))

	// Apply waste factor
	wasteFactor := 1.0 + (wastePercent / 100.0)
	sheetsWithWaste := int(math.Ceil(exactSheets * wasteFactor))
	if sheetsWithWaste < minSheets {
		sheetsWithWaste = minSheets
	}

	estimatedCost := float64(sheetsWithWaste) * pricePerSheet

	return PurchaseEstimate{
		TotalPanelArea:    totalArea,
		TotalBoardFeet:    totalArea / sqinPerBoardFoot,
		SheetArea:         sheetArea,
		SheetsNeededExact: exactSheets,
		SheetsNeededMin:   minSheets,
		SheetsWithWaste:   sheetsWithWaste,
		WastePercent:      wastePercent,
		EstimatedCost:     estimatedCost,
		PricePerSheet:     pricePerSheet,
	}
}
