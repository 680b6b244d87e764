package model

import "github.com/google/uuid"

// ConstructionPreset represents a reusable carcass construction style.
type ConstructionPreset struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	MaterialThickness float64 `json:"material_thickness"`
	BackThickness     float64 `json:"back_thickness"`
	ToeKickHeight     float64 `json:"toe_kick_height"`
	ToeKickDepth      float64 `json:"toe_kick_depth"`
	ShelfSetback      float64 `json:"shelf_setback"`
}

// NewConstructionPreset creates a new ConstructionPreset with a generated ID.
func NewConstructionPreset(name string, material, back, kickHeight, kickDepth, setback float64) ConstructionPreset {
	return ConstructionPreset{
		ID:                uuid.New().String()[:8],
		Name:              name,
		MaterialThickness: material,
		BackThickness:     back,
		ToeKickHeight:     kickHeight,
		ToeKickDepth:      kickDepth,
		ShelfSetback:      setback,
	}
}

// ApplyToSettings copies this construction style's parameters into the given LayoutSettings.
func (cp ConstructionPreset) ApplyToSettings(s *LayoutSettings) {
	s.MaterialThickness = cp.MaterialThickness
	s.BackThickness = cp.BackThickness
	s.ToeKickHeight = cp.ToeKickHeight
	s.ToeKickDepth = cp.ToeKickDepth
	s.ShelfSetback = cp.ShelfSetback
}

// MaterialPreset represents a purchasable sheet good.
type MaterialPreset struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Thickness     float64 `json:"thickness"`    // inches
	SheetWidth    float64 `json:"sheet_width"`  // inches
	SheetHeight   float64 `json:"sheet_height"` // inches
	PricePerSheet float64 `json:"price_per_sheet"`
}

// NewMaterialPreset creates a new MaterialPreset with a generated ID.
func NewMaterialPreset(name string, thickness, width, height, price float64) MaterialPreset {
	return MaterialPreset{
		ID:            uuid.New().String()[:8],
		Name:          name,
		Thickness:     thickness,
		SheetWidth:    width,
		SheetHeight:   height,
		PricePerSheet: price,
	}
}

// ApplyToSettings selects this sheet good as the carcass stock in the given
// LayoutSettings, including the purchase estimate parameters.
func (mp MaterialPreset) ApplyToSettings(s *LayoutSettings) {
	s.Material = mp.Name
	s.MaterialThickness = mp.Thickness
	s.SheetWidth = mp.SheetWidth
	s.SheetHeight = mp.SheetHeight
	s.PricePerSheet = mp.PricePerSheet
}

// Catalog holds the user's saved construction styles and material presets.
type Catalog struct {
	Construction []ConstructionPreset `json:"construction"`
	Materials    []MaterialPreset     `json:"materials"`
}

// DefaultCatalog returns a catalog populated with common defaults.
func DefaultCatalog() Catalog {
	return Catalog{
		Construction: []ConstructionPreset{
			NewConstructionPreset("Frameless 3/4\"", 0.75, 0.25, 4.0, 3.0, 0.75),
			NewConstructionPreset("Frameless 18mm", 0.709, 0.25, 4.0, 3.0, 0.75),
			NewConstructionPreset("Face Frame 3/4\"", 0.75, 0.25, 4.5, 3.0, 1.0),
			NewConstructionPreset("Closet 5/8\"", 0.625, 0.25, 0.0, 0.0, 0.5),
		},
		Materials: []MaterialPreset{
			NewMaterialPreset("3/4 Birch Plywood 4x8", 0.75, 48, 96, 72.0),
			NewMaterialPreset("3/4 Maple Plywood 4x8", 0.75, 48, 96, 95.0),
			NewMaterialPreset("3/4 MDF 4x8", 0.75, 48, 96, 42.0),
			NewMaterialPreset("3/4 Melamine 4x8", 0.75, 48, 96, 55.0),
			NewMaterialPreset("3/4 Baltic Birch 5x5", 0.709, 60, 60, 85.0),
			NewMaterialPreset("1/4 Birch Plywood 4x8", 0.25, 48, 96, 32.0),
		},
	}
}

// FindConstructionByID returns a pointer to the style with the given ID, or nil.
func (c *Catalog) FindConstructionByID(id string) *ConstructionPreset {
	for i := range c.Construction {
		if c.Construction[i].ID == id {
			return &c.Construction[i]
		}
	}
	return nil
}

// FindMaterialByID returns a pointer to the material with the given ID, or nil.
func (c *Catalog) FindMaterialByID(id string) *MaterialPreset {
	for i := range c.Materials {
		if c.Materials[i].ID == id {
			return &c.Materials[i]
		}
	}
	return nil
}

// ConstructionNames returns a list of construction style names for pickers.
func (c *Catalog) ConstructionNames() []string {
	names := make([]string, len(c.Construction))
	for i, cp := range c.Construction {
		names[i] = cp.Name
	}
	return names
}

// MaterialNames returns a list of material preset names for pickers.
func (c *Catalog) MaterialNames() []string {
	names := make([]string, len(c.Materials))
	for i, m := range c.Materials {
		names[i] = m.Name
	}
	return names
}

// FindConstructionByName returns a pointer to the first style with the given name, or nil.
func (c *Catalog) FindConstructionByName(name string) *ConstructionPreset {
	for i := range c.Construction {
		if c.Construction[i].Name == name {
			return &c.Construction[i]
		}
	}
	return nil
}

// FindMaterialByName returns a pointer to the first material with the given name, or nil.
func (c *Catalog) FindMaterialByName(name string) *MaterialPreset {
	for i := range c.Materials {
		if c.Materials[i].Name == name {
			return &c.Materials[i]
		}
	}
	return nil
}
