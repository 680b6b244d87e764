package model

// RegionType classifies a free rectangle of wall space by its vertical
// relation to the obstacle zones around it.
type RegionType string

const (
	RegionFull  RegionType = "full"  // Floor to ceiling, no blocker in the slice
	RegionLower RegionType = "lower" // Below the lowest blocker in the slice
	RegionUpper RegionType = "upper" // Above the highest blocker in the slice
	RegionGap   RegionType = "gap"   // Between two stacked blockers
)

// ValidRegion is a rectangle of wall space free of every obstacle zone,
// eligible for section placement. Produced by the collision service,
// consumed and fragmented by the placement engine.
type ValidRegion struct {
	Type   RegionType    `json:"type"`
	Bounds SectionBounds `json:"bounds"`
}

// CollisionResult reports one obstacle zone intersecting a candidate
// rectangle.
type CollisionResult struct {
	Zone        ObstacleZone `json:"zone"`
	OverlapArea float64      `json:"overlap_area"` // square inches
}
