package model

import (
	"encoding/json"
	"testing"
)

func TestSpanJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		span Span
		want string
	}{
		{"fixed", Fixed(24), "24"},
		{"fixed fractional", Fixed(22.5), "22.5"},
		{"fill", Fill(), `"fill"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.span)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("marshal = %s, want %s", data, tt.want)
			}

			var back Span
			if err := json.Unmarshal(data, &back); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if back != tt.span {
				t.Errorf("round trip = %+v, want %+v", back, tt.span)
			}
		})
	}
}

func TestSpanUnmarshalRejectsUnknownKeyword(t *testing.T) {
	var s Span
	if err := json.Unmarshal([]byte(`"stretch"`), &s); err == nil {
		t.Fatal("expected error for unknown span keyword")
	}
}

func TestNewSectionBoundsRejectsInverted(t *testing.T) {
	if _, err := NewSectionBounds(10, 10, 0, 30); err == nil {
		t.Error("expected error for zero-width bounds")
	}
	if _, err := NewSectionBounds(10, 5, 0, 30); err == nil {
		t.Error("expected error for inverted horizontal bounds")
	}
	if _, err := NewSectionBounds(0, 24, 30, 30); err == nil {
		t.Error("expected error for zero-height bounds")
	}
	if _, err := NewSectionBounds(0, 24, 0, 30); err != nil {
		t.Errorf("unexpected error for valid bounds: %v", err)
	}
}

func TestSectionBoundsOverlaps(t *testing.T) {
	base := SectionBounds{Left: 10, Right: 20, Bottom: 10, Top: 20}

	tests := []struct {
		name     string
		other    SectionBounds
		expected bool
	}{
		{"fully inside", SectionBounds{Left: 12, Right: 18, Bottom: 12, Top: 18}, true},
		{"overlapping left edge", SectionBounds{Left: 5, Right: 12, Bottom: 12, Top: 18}, true},
		{"overlapping top-right", SectionBounds{Left: 18, Right: 25, Bottom: 18, Top: 25}, true},
		{"touching right edge", SectionBounds{Left: 20, Right: 30, Bottom: 10, Top: 20}, false},
		{"touching top edge", SectionBounds{Left: 10, Right: 20, Bottom: 20, Top: 30}, false},
		{"disjoint", SectionBounds{Left: 30, Right: 40, Bottom: 30, Top: 40}, false},
		{"covering entirely", SectionBounds{Left: 0, Right: 30, Bottom: 0, Top: 30}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.other); got != tt.expected {
				t.Errorf("Overlaps(%+v) = %v, want %v", tt.other, got, tt.expected)
			}
			if got := tt.other.Overlaps(base); got != tt.expected {
				t.Errorf("Overlaps is not symmetric for %+v", tt.other)
			}
		})
	}
}

func TestSectionBoundsIntersectionArea(t *testing.T) {
	a := SectionBounds{Left: 0, Right: 10, Bottom: 0, Top: 10}
	b := SectionBounds{Left: 5, Right: 15, Bottom: 5, Top: 15}

	if area := a.IntersectionArea(b); area != 25 {
		t.Errorf("expected overlap area 25, got %f", area)
	}

	c := SectionBounds{Left: 10, Right: 20, Bottom: 0, Top: 10}
	if area := a.IntersectionArea(c); area != 0 {
		t.Errorf("expected 0 area for touching rectangles, got %f", area)
	}
}

func TestNewWallSegmentValidation(t *testing.T) {
	if _, err := NewWallSegment(96, 84, 4, 0); err != nil {
		t.Errorf("unexpected error for valid wall: %v", err)
	}
	if _, err := NewWallSegment(0, 84, 4, 0); err == nil {
		t.Error("expected error for zero length")
	}
	if _, err := NewWallSegment(96, -1, 4, 0); err == nil {
		t.Error("expected error for negative height")
	}
	if _, err := NewWallSegment(96, 84, 4, 140); err == nil {
		t.Error("expected error for angle beyond 135")
	}
	if _, err := NewWallSegment(96, 84, 4, -135); err != nil {
		t.Errorf("unexpected error for angle at lower limit: %v", err)
	}
}

func TestNewRoomValidation(t *testing.T) {
	w, _ := NewWallSegment(96, 84, 4, 0)

	if _, err := NewRoom(nil, false); err == nil {
		t.Error("expected error for room with no walls")
	}

	turned := w
	turned.Angle = 90
	if _, err := NewRoom([]WallSegment{turned}, false); err == nil {
		t.Error("expected error when first wall angle is not 0")
	}

	room, err := NewRoom([]WallSegment{w}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if room.Tolerance() != DefaultClosureTolerance {
		t.Errorf("expected default closure tolerance %.1f, got %f", DefaultClosureTolerance, room.Tolerance())
	}
}

func TestWallIndexByName(t *testing.T) {
	a, _ := NewWallSegment(96, 84, 4, 0)
	a.Name = "north"
	b, _ := NewWallSegment(120, 84, 4, 90)
	b.Name = "east"
	room, _ := NewRoom([]WallSegment{a, b}, false)

	if idx := room.WallIndexByName("east"); idx != 1 {
		t.Errorf("expected index 1 for east, got %d", idx)
	}
	if idx := room.WallIndexByName("south"); idx != -1 {
		t.Errorf("expected -1 for unknown wall, got %d", idx)
	}
}

func TestNewObstacleValidation(t *testing.T) {
	if _, err := NewObstacle(ObstacleWindow, 0, 40, 16, 36, 24); err != nil {
		t.Errorf("unexpected error for valid obstacle: %v", err)
	}
	if _, err := NewObstacle(ObstacleWindow, 0, 40, 0, 36, 24); err == nil {
		t.Error("expected error for zero width")
	}
	if _, err := NewObstacle(ObstacleWindow, 0, -1, 16, 36, 24); err == nil {
		t.Error("expected error for negative offset")
	}
	if _, err := NewObstacle(ObstacleWindow, -1, 40, 16, 36, 24); err == nil {
		t.Error("expected error for negative wall index")
	}
}

func TestObstacleEffectiveClearance(t *testing.T) {
	o, _ := NewObstacle(ObstacleWindow, 0, 40, 16, 36, 24)
	if c := o.EffectiveClearance(); c != UniformClearance(2.0) {
		t.Errorf("expected window default clearance, got %+v", c)
	}

	o.ClearanceOverride = &Clearance{Left: 1, Right: 1, Top: 0, Bottom: 0}
	if c := o.EffectiveClearance(); c.Left != 1 || c.Top != 0 {
		t.Errorf("expected override clearance, got %+v", c)
	}

	door, _ := NewObstacle(ObstacleDoor, 0, 10, 32, 0, 80)
	door.Egress = true
	c := door.EffectiveClearance()
	if c.Left != 3.0+EgressExtraClearance || c.Right != 3.0+EgressExtraClearance {
		t.Errorf("expected egress-widened side clearance, got %+v", c)
	}
	if c.Top != 3.0 {
		t.Errorf("egress must not widen top clearance, got %f", c.Top)
	}
}

func TestDefaultClearanceUnknownType(t *testing.T) {
	if c := ObstacleType("skylight").DefaultClearance(); c != UniformClearance(1.0) {
		t.Errorf("expected 1 inch fallback clearance, got %+v", c)
	}
}

func TestCornerTypeFromComponent(t *testing.T) {
	tests := []struct {
		component string
		want      CornerType
		ok        bool
	}{
		{"corner.lazy_susan", CornerLazySusan, true},
		{"corner.diagonal", CornerDiagonal, true},
		{"corner.blind", CornerBlind, true},
		{"corner.bogus", "", false},
		{"drawer_stack", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := CornerTypeFromComponent(tt.component)
		if got != tt.want || ok != tt.ok {
			t.Errorf("CornerTypeFromComponent(%q) = (%q, %v), want (%q, %v)",
				tt.component, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNewPanelDerivesCutFace(t *testing.T) {
	// A side panel: 0.75 thick, 24 deep, 30 tall
	box, err := NewBoundingBox3D(Point3D{}, Point3D{X: 0.75, Y: 24, Z: 30})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := NewPanel("Left Side", PanelSide, 0, box)

	if p.Width != 30 || p.Height != 24 || p.Thickness != 0.75 {
		t.Errorf("expected cut face 30 x 24 x 0.75, got %g x %g x %g", p.Width, p.Height, p.Thickness)
	}
	if len(p.ID) != 8 {
		t.Errorf("expected 8-char id, got %q", p.ID)
	}
}

func TestEdgeBandingLinearLength(t *testing.T) {
	eb := EdgeBanding{Top: true, Bottom: true, Left: true, Right: true}
	if l := eb.LinearLength(20, 30); l != 100 {
		t.Errorf("expected 100 inches for full perimeter, got %f", l)
	}
	front := EdgeBanding{Top: true}
	if l := front.LinearLength(20, 30); l != 20 {
		t.Errorf("expected 20 inches for top edge only, got %f", l)
	}
	if front.String() != "T" {
		t.Errorf("expected edge string T, got %s", front.String())
	}
	if (EdgeBanding{}).String() != "none" {
		t.Error("expected none for unbanded panel")
	}
}

func TestBoundingBoxCorners(t *testing.T) {
	box := BoundingBox3D{Min: Point3D{X: 1, Y: 2, Z: 3}, Max: Point3D{X: 4, Y: 5, Z: 6}}
	corners := box.Corners()
	if len(corners) != 8 {
		t.Fatalf("expected 8 corners, got %d", len(corners))
	}
	seen := map[Point3D]bool{}
	for _, c := range corners {
		seen[c] = true
	}
	if len(seen) != 8 {
		t.Errorf("expected 8 distinct corners, got %d", len(seen))
	}
	if !seen[box.Min] || !seen[box.Max] {
		t.Error("corners must include both min and max vertices")
	}
}

func TestDefaultSettingsSanity(t *testing.T) {
	s := DefaultSettings()
	if s.MaterialThickness != 0.75 {
		t.Errorf("expected 3/4 inch stock, got %f", s.MaterialThickness)
	}
	if s.MinSectionWidth <= 0 || s.MinSectionHeight <= 0 {
		t.Error("minimum section dimensions must be positive")
	}
	if !s.AvoidObstacles {
		t.Error("obstacle avoidance should be on by default")
	}
}
