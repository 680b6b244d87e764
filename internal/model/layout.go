package model

// PlacedSection is one committed placement on a wall.
type PlacedSection struct {
	SectionIndex int           `json:"section_index"`
	Bounds       SectionBounds `json:"bounds"`
	Mode         HeightMode    `json:"mode"` // chosen mode: full, lower, or upper
	ShelfCount   int           `json:"shelf_count"`
	SplitPart    int           `json:"split_part,omitempty"` // 1-based part number when split, 0 otherwise
}

// SkippedArea records a section request that could not be placed anywhere
// on its wall.
type SkippedArea struct {
	SectionIndex   int     `json:"section_index"`
	RequestedWidth float64 `json:"requested_width"` // inches
	Reason         string  `json:"reason"`
}

// LayoutWarning is an advisory produced during placement or assignment.
// The layout that carries it remains usable.
type LayoutWarning struct {
	SectionIndex int    `json:"section_index"` // -1 when not tied to one section
	Message      string `json:"message"`
}

// LayoutResult bundles everything the placement engine produced for one wall.
type LayoutResult struct {
	WallIndex  int             `json:"wall_index"`
	Placements []PlacedSection `json:"placements"`
	Skipped    []SkippedArea   `json:"skipped,omitempty"`
	Warnings   []LayoutWarning `json:"warnings,omitempty"`
}

// UsedWidth returns the total wall run consumed by committed placements.
func (lr LayoutResult) UsedWidth() float64 {
	var total float64
	for _, p := range lr.Placements {
		total += p.Bounds.Width()
	}
	return total
}

// WallSectionAssignment pins one section to a linear interval on a wall.
type WallSectionAssignment struct {
	SectionIndex int     `json:"section_index"`
	WallIndex    int     `json:"wall_index"`
	Offset       float64 `json:"offset"` // inches from wall start
	Width        float64 `json:"width"`  // inches
}

// CornerSectionAssignment spans a corner unit across both walls of a
// 90-degree junction.
type CornerSectionAssignment struct {
	SectionIndex   int        `json:"section_index"`
	Corner         CornerType `json:"corner"`
	LeftWall       int        `json:"left_wall"`
	RightWall      int        `json:"right_wall"`
	LeftFootprint  float64    `json:"left_footprint"`  // inches consumed at the end of the left wall
	RightFootprint float64    `json:"right_footprint"` // inches consumed at the start of the right wall
}

// WallSpaceReservation blocks a linear interval of one wall for a corner
// unit so that ordinary sections keep out of it.
type WallSpaceReservation struct {
	WallIndex    int     `json:"wall_index"`
	Start        float64 `json:"start"` // inches from wall start
	End          float64 `json:"end"`
	SectionIndex int     `json:"section_index"` // corner section holding the reservation
}

// FitErrorKind classifies why a section cannot fit its assigned wall.
type FitErrorKind string

const (
	FitInvalidWallReference FitErrorKind = "invalid_wall_reference"
	FitExceedsLength        FitErrorKind = "exceeds_length"
)

// FitError reports one section whose request cannot be honored. Collected
// per offending section; processing of other sections continues.
type FitError struct {
	Kind         FitErrorKind `json:"kind"`
	SectionIndex int          `json:"section_index"`
	WallIndex    int          `json:"wall_index"` // -1 when the reference itself is invalid
	Message      string       `json:"message"`
}

func (e FitError) Error() string { return e.Message }

// SectionTransform is the rigid placement of one section in room space:
// a rotation about the vertical axis plus a translation.
type SectionTransform struct {
	SectionIndex int     `json:"section_index"`
	WallIndex    int     `json:"wall_index"`
	Position     Point3D `json:"position"`   // inches, always non-negative
	RotationZ    float64 `json:"rotation_z"` // degrees
}
