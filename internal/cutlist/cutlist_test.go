package cutlist

import (
	"math"
	"testing"

	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/model"
	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/panel"
)

func sectionPanels(t *testing.T, label string, shelves int) []model.Panel {
	t.Helper()
	spec := model.NewSectionSpec(label, model.Fixed(30))
	spec.ShelfCount = shelves
	s := model.ResolvedSection{
		Spec:   spec,
		Bounds: model.SectionBounds{Left: 0, Right: 30, Bottom: 0, Top: 34.5},
		Depth:  24,
	}
	panels := panel.Generate(s, model.DefaultSettings())
	if len(panels) == 0 {
		t.Fatal("expected panels for a standard base section")
	}
	return panels
}

func TestItemsConsolidatesIdenticalPanels(t *testing.T) {
	panels := sectionPanels(t, "Base", 0)

	items := Items(panels)

	// Two sides are identical and must collapse into one line of two.
	var sides *model.CutItem
	for i := range items {
		if items[i].Type == model.PanelSide {
			if sides != nil {
				t.Fatal("sides should consolidate into a single line")
			}
			sides = &items[i]
		}
	}
	if sides == nil {
		t.Fatal("no side line in cut list")
	}
	if sides.Quantity != 2 {
		t.Errorf("side quantity = %d, want 2", sides.Quantity)
	}
	if sides.Label != "Side 34.5 x 24" {
		t.Errorf("merged line label = %q, want size-based name", sides.Label)
	}
}

func TestItemsKeepsDistinctThicknessApart(t *testing.T) {
	panels := sectionPanels(t, "Base", 0)

	items := Items(panels)
	for _, it := range items {
		if it.Type == model.PanelBack && it.Thickness != 0.25 {
			t.Errorf("back line thickness = %v, want 0.25", it.Thickness)
		}
		if it.Type == model.PanelBottom && it.Thickness != 0.75 {
			t.Errorf("deck line thickness = %v, want 0.75", it.Thickness)
		}
	}
}

func TestItemsSortedLargestFirst(t *testing.T) {
	panels := sectionPanels(t, "Base", 2)

	items := Items(panels)
	for i := 1; i < len(items); i++ {
		if items[i].Area() > items[i-1].Area()+1e-9 {
			t.Errorf("cut list out of order at %d: %.1f sq in after %.1f sq in",
				i, items[i].Area(), items[i-1].Area())
		}
	}
}

func TestItemsSingletonKeepsPanelLabel(t *testing.T) {
	panels := sectionPanels(t, "Pantry", 0)

	items := Items(panels)
	for _, it := range items {
		if it.Quantity == 1 && it.Label[:6] != "Pantry" {
			t.Errorf("unmerged line should keep its panel label, got %q", it.Label)
		}
	}
}

func TestBuildTotalsAndEstimates(t *testing.T) {
	panels := sectionPanels(t, "Base", 2)
	settings := model.DefaultSettings()
	settings.PricePerSheet = 75

	sum := Build(panels, settings)

	if sum.PanelCount != len(panels) {
		t.Errorf("panel count = %d, want %d", sum.PanelCount, len(panels))
	}

	var wantArea float64
	for _, p := range panels {
		wantArea += p.Area()
	}
	if math.Abs(sum.TotalArea-wantArea) > 1e-6 {
		t.Errorf("total area = %.3f, want %.3f", sum.TotalArea, wantArea)
	}

	if sum.Purchase.SheetsNeededMin < 1 {
		t.Errorf("a full base section needs at least one sheet, got %d", sum.Purchase.SheetsNeededMin)
	}
	if sum.Purchase.EstimatedCost != float64(sum.Purchase.SheetsWithWaste)*75 {
		t.Errorf("estimated cost = %v, want sheets x 75", sum.Purchase.EstimatedCost)
	}

	if sum.EdgeBanding.TotalLinearInches <= 0 {
		t.Error("banded front edges must produce a banding total")
	}
	if len(sum.PerItemBanding) == 0 {
		t.Error("expected per-line banding rows")
	}
}

func TestBuildEmptyPanels(t *testing.T) {
	sum := Build(nil, model.DefaultSettings())
	if sum.PanelCount != 0 || sum.TotalArea != 0 {
		t.Errorf("empty input should produce an empty summary, got %+v", sum)
	}
	if len(sum.Items) != 0 {
		t.Errorf("expected no items, got %d", len(sum.Items))
	}
}
