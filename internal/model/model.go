package model

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Span is a width or height request: either a fixed dimension in inches or
// "fill", resolved at layout time to share remaining space equally with
// sibling fill requests.
type Span struct {
	Value float64 `json:"value,omitempty"` // inches; ignored when Fill is set
	Fill  bool    `json:"fill,omitempty"`
}

// Fixed returns a span with a concrete dimension in inches.
func Fixed(v float64) Span { return Span{Value: v} }

// Fill returns a span resolved from remaining space at layout time.
func Fill() Span { return Span{Fill: true} }

// MarshalJSON encodes a span as a bare number, or the string "fill".
func (s Span) MarshalJSON() ([]byte, error) {
	if s.Fill {
		return json.Marshal("fill")
	}
	return json.Marshal(s.Value)
}

func (s *Span) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		*s = Span{Value: v}
		return nil
	}
	var keyword string
	if err := json.Unmarshal(data, &keyword); err != nil {
		return fmt.Errorf("span must be a number or \"fill\", got %s", data)
	}
	if keyword != "fill" {
		return fmt.Errorf("unknown span keyword %q", keyword)
	}
	*s = Fill()
	return nil
}

func (s Span) String() string {
	if s.Fill {
		return "fill"
	}
	return fmt.Sprintf("%g\"", s.Value)
}

// HeightMode selects which vertical region class a section may occupy.
type HeightMode string

const (
	ModeAuto  HeightMode = "auto"  // Try full, then lower, then upper
	ModeFull  HeightMode = "full"  // Floor-to-ceiling region required
	ModeLower HeightMode = "lower" // Base region below an obstacle
	ModeUpper HeightMode = "upper" // Wall region above an obstacle
)

// WallRef selects the wall a section belongs to, by index or by name.
// The zero value means unassigned, which resolves to wall 0.
type WallRef struct {
	Name    string `json:"name,omitempty"`
	Index   int    `json:"index,omitempty"`
	ByIndex bool   `json:"by_index,omitempty"`
}

func WallByIndex(i int) WallRef { return WallRef{Index: i, ByIndex: true} }

func WallByName(name string) WallRef { return WallRef{Name: name} }

// IsZero reports whether the reference was left unset.
func (w WallRef) IsZero() bool { return !w.ByIndex && w.Name == "" }

func (w WallRef) String() string {
	switch {
	case w.ByIndex:
		return fmt.Sprintf("wall %d", w.Index)
	case w.Name != "":
		return fmt.Sprintf("wall %q", w.Name)
	default:
		return "wall 0 (default)"
	}
}

// RowSpec requests one horizontal row stacked inside a section.
type RowSpec struct {
	Height     Span    `json:"height"`
	ShelfCount int     `json:"shelf_count,omitempty"`
	MinHeight  float64 `json:"min_height,omitempty"` // inches, 0 = unbounded
	MaxHeight  float64 `json:"max_height,omitempty"` // inches, 0 = unbounded
}

// SectionSpec is the declarative request for one cabinet section. Width
// resolves against the span of the wall it lands on; rows stack
// bottom-to-top inside the section.
type SectionSpec struct {
	ID         string     `json:"id"`
	Label      string     `json:"label"`
	Width      Span       `json:"width"`
	MinWidth   float64    `json:"min_width,omitempty"` // inches, 0 = unbounded
	MaxWidth   float64    `json:"max_width,omitempty"` // inches, 0 = unbounded
	ShelfCount int        `json:"shelf_count,omitempty"`
	Wall       WallRef    `json:"wall"`
	Mode       HeightMode `json:"mode,omitempty"`
	Component  string     `json:"component,omitempty"` // e.g. "corner.lazy_susan"
	Rows       []RowSpec  `json:"rows,omitempty"`
}

func NewSectionSpec(label string, width Span) SectionSpec {
	return SectionSpec{
		ID:    uuid.New().String()[:8],
		Label: label,
		Width: width,
		Mode:  ModeAuto,
	}
}

// NormalizedMode treats an unset mode as auto.
func (s SectionSpec) NormalizedMode() HeightMode {
	if s.Mode == "" {
		return ModeAuto
	}
	return s.Mode
}

// CornerType selects the geometry of a two-wall corner cabinet.
type CornerType string

const (
	CornerLazySusan CornerType = "lazy_susan" // Square carousel unit, equal legs on both walls
	CornerDiagonal  CornerType = "diagonal"   // 45-degree front spanning the corner
	CornerBlind     CornerType = "blind"      // Full body on one wall, reaches into dead space on the other
)

// CornerComponentPrefix marks a SectionSpec component id as a corner unit,
// e.g. "corner.lazy_susan".
const CornerComponentPrefix = "corner."

// IsCornerComponent reports whether a component id names a corner unit,
// known or not.
func IsCornerComponent(component string) bool {
	return strings.HasPrefix(component, CornerComponentPrefix)
}

// CornerTypeFromComponent parses a "corner.*" component id. The second
// return is false for non-corner ids and for unknown corner variants.
func CornerTypeFromComponent(component string) (CornerType, bool) {
	if !IsCornerComponent(component) {
		return "", false
	}
	ct := CornerType(strings.TrimPrefix(component, CornerComponentPrefix))
	switch ct {
	case CornerLazySusan, CornerDiagonal, CornerBlind:
		return ct, true
	}
	return "", false
}
