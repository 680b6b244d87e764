package cutlist

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/model"
)

// Items consolidates panels into cut-list lines: panels sharing a type,
// face size, thickness, material, and banding pattern collapse into one
// line with a quantity. Lines come back sorted largest face first, which is
// the order a shop cuts them in.
func Items(panels []model.Panel) []model.CutItem {
	type key struct {
		typ     model.PanelType
		w, h, t int64 // milli-inches
		mat     string
		banding model.EdgeBanding
	}

	milli := func(v float64) int64 { return int64(math.Round(v * 1000)) }

	index := make(map[key]int)
	var items []model.CutItem
	for _, p := range panels {
		k := key{p.Type, milli(p.Width), milli(p.Height), milli(p.Thickness), p.Material, p.EdgeBanding}
		if i, ok := index[k]; ok {
			items[i].Quantity++
			items[i].Label = mergedLabel(p.Type, p.Width, p.Height)
			continue
		}
		index[k] = len(items)
		items = append(items, model.CutItem{
			Label:       p.Label,
			Type:        p.Type,
			Width:       p.Width,
			Height:      p.Height,
			Thickness:   p.Thickness,
			Material:    p.Material,
			Quantity:    1,
			EdgeBanding: p.EdgeBanding,
		})
	}

	sort.SliceStable(items, func(a, b int) bool {
		if items[a].Area() != items[b].Area() {
			return items[a].Area() > items[b].Area()
		}
		if items[a].Type != items[b].Type {
			return items[a].Type < items[b].Type
		}
		return items[a].Label < items[b].Label
	})
	return items
}

// mergedLabel names a consolidated line by role and size rather than by any
// single section, e.g. "Side 34.5 x 24".
func mergedLabel(typ model.PanelType, w, h float64) string {
	name := strings.ReplaceAll(string(typ), "_", " ")
	name = strings.ToUpper(name[:1]) + name[1:]
	return fmt.Sprintf("%s %g x %g", name, w, h)
}

// Summary bundles the consolidated cut list with its purchasing and edge
// banding estimates.
type Summary struct {
	Items          []model.CutItem            `json:"items"`
	PanelCount     int                        `json:"panel_count"`
	TotalArea      float64                    `json:"total_area"` // sq in
	Purchase       model.PurchaseEstimate     `json:"purchase"`
	EdgeBanding    model.EdgeBandingSummary   `json:"edge_banding"`
	PerItemBanding []model.PerItemEdgeBanding `json:"per_item_banding,omitempty"`
}

// Build produces the complete cut-list summary for a set of panels.
func Build(panels []model.Panel, settings model.LayoutSettings) Summary {
	items := Items(panels)

	var total float64
	count := 0
	for _, it := range items {
		total += it.Area() * float64(it.Quantity)
		count += it.Quantity
	}

	return Summary{
		Items:          items,
		PanelCount:     count,
		TotalArea:      total,
		Purchase:       model.CalculatePurchaseEstimate(items, settings.SheetWidth, settings.SheetHeight, settings.WastePercent, settings.PricePerSheet),
		EdgeBanding:    model.CalculateEdgeBanding(panels, settings.WastePercent),
		PerItemBanding: model.CalculatePerItemEdgeBanding(items),
	}
}
