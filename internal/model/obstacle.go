package model

import (
	"fmt"

	"github.com/google/uuid"
)

// ObstacleType classifies a wall obstruction. Each type carries a default
// clearance margin; individual obstacles may override it.
type ObstacleType string

const (
	ObstacleWindow    ObstacleType = "window"
	ObstacleDoor      ObstacleType = "door"
	ObstacleDoorway   ObstacleType = "doorway" // Cased opening without a door
	ObstacleOutlet    ObstacleType = "outlet"
	ObstacleSwitch    ObstacleType = "switch"
	ObstacleVent      ObstacleType = "vent"
	ObstaclePlumbing  ObstacleType = "plumbing"
	ObstacleColumn    ObstacleType = "column"
	ObstacleAppliance ObstacleType = "appliance"
)

// Clearance is the additive no-placement margin around an obstacle, inches.
type Clearance struct {
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// UniformClearance returns the same margin on all four sides.
func UniformClearance(v float64) Clearance {
	return Clearance{Left: v, Right: v, Top: v, Bottom: v}
}

// DefaultClearances maps each obstacle type to its default margin.
var DefaultClearances = map[ObstacleType]Clearance{
	ObstacleWindow:    UniformClearance(2.0),
	ObstacleDoor:      UniformClearance(3.0),
	ObstacleDoorway:   UniformClearance(3.0),
	ObstacleOutlet:    UniformClearance(1.0),
	ObstacleSwitch:    UniformClearance(1.0),
	ObstacleVent:      UniformClearance(2.0),
	ObstaclePlumbing:  UniformClearance(1.5),
	ObstacleColumn:    UniformClearance(0.5),
	ObstacleAppliance: UniformClearance(0.25),
}

// DefaultClearance returns the table margin for the type. Unlisted types
// keep a conservative 1 inch on all sides.
func (t ObstacleType) DefaultClearance() Clearance {
	if c, ok := DefaultClearances[t]; ok {
		return c
	}
	return UniformClearance(1.0)
}

// EgressExtraClearance widens the side margins of obstacles flagged as
// egress paths (exit doors and similar), in inches.
const EgressExtraClearance = 6.0

// Obstacle is a fixed feature on a wall that cabinet sections must avoid.
// Supplied as input and never mutated.
type Obstacle struct {
	ID                string       `json:"id"`
	Type              ObstacleType `json:"type"`
	WallIndex         int          `json:"wall_index"`
	Offset            float64      `json:"offset"` // inches from wall start to left edge
	Width             float64      `json:"width"`  // inches
	Bottom            float64      `json:"bottom"` // inches from floor to lower edge
	Height            float64      `json:"height"` // inches
	Egress            bool         `json:"egress,omitempty"`
	ClearanceOverride *Clearance   `json:"clearance_override,omitempty"`
}

func NewObstacle(typ ObstacleType, wallIndex int, offset, width, bottom, height float64) (Obstacle, error) {
	if wallIndex < 0 {
		return Obstacle{}, fmt.Errorf("obstacle wall index must not be negative, got %d", wallIndex)
	}
	if offset < 0 || bottom < 0 {
		return Obstacle{}, fmt.Errorf("obstacle position must not be negative, got offset %.3f bottom %.3f", offset, bottom)
	}
	if width <= 0 || height <= 0 {
		return Obstacle{}, fmt.Errorf("obstacle dimensions must be positive, got %.3f x %.3f", width, height)
	}
	return Obstacle{
		ID:        uuid.New().String()[:8],
		Type:      typ,
		WallIndex: wallIndex,
		Offset:    offset,
		Width:     width,
		Bottom:    bottom,
		Height:    height,
	}, nil
}

// Bounds returns the obstacle's wall-plane rectangle before clearance expansion.
func (o Obstacle) Bounds() SectionBounds {
	return SectionBounds{
		Left:   o.Offset,
		Right:  o.Offset + o.Width,
		Bottom: o.Bottom,
		Top:    o.Bottom + o.Height,
	}
}

// EffectiveClearance returns the override when present, else the type
// default, widened sideways for egress obstacles.
func (o Obstacle) EffectiveClearance() Clearance {
	c := o.Type.DefaultClearance()
	if o.ClearanceOverride != nil {
		c = *o.ClearanceOverride
	}
	if o.Egress {
		c.Left += EgressExtraClearance
		c.Right += EgressExtraClearance
	}
	return c
}

// ObstacleZone is an obstacle's footprint expanded by its clearance: the
// true exclusion area the placement engine must keep clear.
type ObstacleZone struct {
	Obstacle Obstacle      `json:"obstacle"`
	Bounds   SectionBounds `json:"bounds"`
}
