package model

// ResolvedRow is one concrete row inside a resolved section.
type ResolvedRow struct {
	Height     float64 `json:"height"` // inches
	ShelfCount int     `json:"shelf_count"`
}

// ResolvedSection is a section after width, height, and wall resolution:
// the input to panel generation.
type ResolvedSection struct {
	Index     int           `json:"index"` // position in the original spec list
	Spec      SectionSpec   `json:"spec"`
	WallIndex int           `json:"wall_index"`
	Bounds    SectionBounds `json:"bounds"` // wall-plane rectangle
	Depth     float64       `json:"depth"`  // inches into the room
	Rows      []ResolvedRow `json:"rows"`
}

// Plan is the full layout solution for one room.
type Plan struct {
	Poses          []WallPose                `json:"poses"`
	GeometryErrors []GeometryError           `json:"geometry_errors,omitempty"`
	Assignments    []WallSectionAssignment   `json:"assignments"`
	Corners        []CornerSectionAssignment `json:"corners,omitempty"`
	Reservations   []WallSpaceReservation    `json:"reservations,omitempty"`
	Walls          []LayoutResult            `json:"walls"`
	Sections       []ResolvedSection         `json:"sections"`
	Transforms     []SectionTransform        `json:"transforms"`
	Panels         []Panel                   `json:"panels"`      // section-local boxes
	RoomPanels     []Panel                   `json:"room_panels"` // room-space boxes, non-negative
	Warnings       []LayoutWarning           `json:"warnings,omitempty"`
}

// PlacedCount returns the number of committed placements across all walls,
// counting each split part once.
func (p Plan) PlacedCount() int {
	n := 0
	for _, w := range p.Walls {
		n += len(w.Placements)
	}
	return n
}

// SkippedCount returns the number of section requests that found no space.
func (p Plan) SkippedCount() int {
	n := 0
	for _, w := range p.Walls {
		n += len(w.Skipped)
	}
	return n
}

// Project ties a room design together for save/load.
type Project struct {
	Name      string         `json:"name"`
	Room      Room           `json:"room"`
	Obstacles []Obstacle     `json:"obstacles"`
	Sections  []SectionSpec  `json:"sections"`
	Settings  LayoutSettings `json:"settings"`
	Plan      *Plan          `json:"plan,omitempty"`
}

func NewProject() Project {
	return Project{
		Name:      "Untitled",
		Obstacles: []Obstacle{},
		Sections:  []SectionSpec{},
		Settings:  DefaultSettings(),
	}
}
