package model

// LayoutSettings holds the material and placement configuration shared by
// the layout components.
type LayoutSettings struct {
	// Carcass construction
	MaterialThickness float64 `json:"material_thickness"` // carcass stock, inches
	BackThickness     float64 `json:"back_thickness"`     // back panel stock, inches
	BaseDepth         float64 `json:"base_depth"`         // floor cabinet depth, inches
	UpperDepth        float64 `json:"upper_depth"`        // wall cabinet depth, inches
	ToeKickHeight     float64 `json:"toe_kick_height"`    // inches
	ToeKickDepth      float64 `json:"toe_kick_depth"`     // recess behind the cabinet front, inches
	ShelfSetback      float64 `json:"shelf_setback"`      // shelf front inset, inches

	// Placement
	MinSectionWidth  float64 `json:"min_section_width"`  // narrowest usable section, inches
	MinSectionHeight float64 `json:"min_section_height"` // shortest usable region, inches
	AvoidObstacles   bool    `json:"avoid_obstacles"`    // route sections around obstacle zones

	// Material purchasing
	Material      string  `json:"material"`     // cut list material label
	SheetWidth    float64 `json:"sheet_width"`  // purchase estimate sheet, inches
	SheetHeight   float64 `json:"sheet_height"` // inches
	WastePercent  float64 `json:"waste_percent"`
	PricePerSheet float64 `json:"price_per_sheet"` // 0 disables cost estimation
}

func DefaultSettings() LayoutSettings {
	return LayoutSettings{
		MaterialThickness: 0.75,
		BackThickness:     0.25,
		BaseDepth:         24.0,
		UpperDepth:        12.5,
		ToeKickHeight:     4.0,
		ToeKickDepth:      3.0,
		ShelfSetback:      0.75,
		MinSectionWidth:   9.0,
		MinSectionHeight:  6.0,
		AvoidObstacles:    true,
		Material:          "3/4 plywood",
		SheetWidth:        48.0,
		SheetHeight:       96.0,
		WastePercent:      15.0,
		PricePerSheet:     0,
	}
}
