package model

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// PanelType tags each carcass panel with its structural role.
type PanelType string

const (
	PanelSide    PanelType = "side"
	PanelBottom  PanelType = "bottom"
	PanelTop     PanelType = "top"
	PanelBack    PanelType = "back"
	PanelShelf   PanelType = "shelf"
	PanelDivider PanelType = "divider"
	PanelToeKick PanelType = "toe_kick"
)

// EdgeBanding flags which edges of a panel face get banded.
type EdgeBanding struct {
	Top    bool `json:"top,omitempty"`
	Bottom bool `json:"bottom,omitempty"`
	Left   bool `json:"left,omitempty"`
	Right  bool `json:"right,omitempty"`
}

// HasAny reports whether any edge needs banding.
func (e EdgeBanding) HasAny() bool { return e.Top || e.Bottom || e.Left || e.Right }

// EdgeCount returns how many edges are banded.
func (e EdgeBanding) EdgeCount() int {
	n := 0
	for _, set := range []bool{e.Top, e.Bottom, e.Left, e.Right} {
		if set {
			n++
		}
	}
	return n
}

// LinearLength returns the banding length in inches for one piece of the
// given face size.
func (e EdgeBanding) LinearLength(w, h float64) float64 {
	var total float64
	if e.Top {
		total += w
	}
	if e.Bottom {
		total += w
	}
	if e.Left {
		total += h
	}
	if e.Right {
		total += h
	}
	return total
}

// String renders the banded edges as e.g. "T+B+L+R".
func (e EdgeBanding) String() string {
	var parts []string
	if e.Top {
		parts = append(parts, "T")
	}
	if e.Bottom {
		parts = append(parts, "B")
	}
	if e.Left {
		parts = append(parts, "L")
	}
	if e.Right {
		parts = append(parts, "R")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}

// Panel is one cut piece of a section's carcass, in section-local
// coordinates: X across the section width, Y from the wall into the room,
// Z up from the floor.
type Panel struct {
	ID           string        `json:"id"`
	Label        string        `json:"label"`
	Type         PanelType     `json:"type"`
	SectionIndex int           `json:"section_index"`
	Box          BoundingBox3D `json:"box"`
	Width        float64       `json:"width"`     // cut width, inches
	Height       float64       `json:"height"`    // cut height, inches
	Thickness    float64       `json:"thickness"` // stock thickness, inches
	Material     string        `json:"material,omitempty"`
	EdgeBanding  EdgeBanding   `json:"edge_banding"`
}

// NewPanel derives the cut face from the box: the two largest extents are
// the face, the smallest is the stock thickness.
func NewPanel(label string, typ PanelType, sectionIndex int, box BoundingBox3D) Panel {
	size := box.Size()
	dims := []float64{size.X, size.Y, size.Z}
	sort.Float64s(dims)
	return Panel{
		ID:           uuid.New().String()[:8],
		Label:        label,
		Type:         typ,
		SectionIndex: sectionIndex,
		Box:          box,
		Width:        dims[2],
		Height:       dims[1],
		Thickness:    dims[0],
	}
}

// Area returns the cut face area in square inches.
func (p Panel) Area() float64 { return p.Width * p.Height }

// CutItem is one consolidated cut-list line: identical panels collapsed
// into a single row with a quantity.
type CutItem struct {
	Label       string      `json:"label"`
	Type        PanelType   `json:"type"`
	Width       float64     `json:"width"`  // inches
	Height      float64     `json:"height"` // inches
	Thickness   float64     `json:"thickness"`
	Material    string      `json:"material,omitempty"`
	Quantity    int         `json:"quantity"`
	EdgeBanding EdgeBanding `json:"edge_banding"`
}

// Area returns the face area of one piece in square inches.
func (c CutItem) Area() float64 { return c.Width * c.Height }
