package placement

import (
	"fmt"
	"math"
	"sort"

	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/collision"
	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/model"
)

// widthEps absorbs float rounding when checking whether a region covers a
// requested width or whether split parts add up to the request.
const widthEps = 1e-9

// Request is one section waiting to be placed on a wall, in input order.
type Request struct {
	SectionIndex int
	Label        string
	Width        model.Span
	Mode         model.HeightMode
	ShelfCount   int
}

// NewRequest adapts a section spec into a placement request.
func NewRequest(sectionIndex int, spec model.SectionSpec) Request {
	return Request{
		SectionIndex: sectionIndex,
		Label:        spec.Label,
		Width:        spec.Width,
		Mode:         spec.NormalizedMode(),
		ShelfCount:   spec.ShelfCount,
	}
}

// PlaceSections lays requested sections onto one wall's free regions,
// greedily and in input order. Each section is resolved to a width (fill
// takes the rest of the current full-height region), then tried against the
// remaining regions in its height-mode preference order. A section that
// fits nowhere whole is split across regions; a section that cannot even
// split is recorded as a skipped area. Committed placements immediately
// fragment the region list, and there is no backtracking: an early section
// can crowd out a later one, and the warnings say so.
func PlaceSections(wallIndex int, requests []Request, regions []model.ValidRegion, zones []model.ObstacleZone, settings model.LayoutSettings) model.LayoutResult {
	result := model.LayoutResult{WallIndex: wallIndex}
	state := &wallState{
		regions:  append([]model.ValidRegion(nil), regions...),
		minWidth: settings.MinSectionWidth,
		zones:    zones,
	}
	state.sortRegions()

	for _, req := range requests {
		width, ok := state.resolveWidth(req, &result)
		if !ok {
			continue
		}

		modes := modeOrder(req.Mode)
		if bounds, mode, placed := state.tryWhole(width, modes); placed {
			commit := model.PlacedSection{
				SectionIndex: req.SectionIndex,
				Bounds:       bounds,
				Mode:         mode,
				ShelfCount:   req.ShelfCount,
			}
			result.Placements = append(result.Placements, commit)
			state.consume(bounds, &result, req)
			continue
		}

		parts, placed := state.trySplit(width, modes)
		if placed {
			result.Warnings = append(result.Warnings, model.LayoutWarning{
				SectionIndex: req.SectionIndex,
				Message: fmt.Sprintf("Section %q (%.1f in) split into %d parts to clear obstacles",
					req.Label, width, len(parts)),
			})
			for i, part := range parts {
				commit := model.PlacedSection{
					SectionIndex: req.SectionIndex,
					Bounds:       part.bounds,
					Mode:         part.mode,
					ShelfCount:   splitShelves(req.ShelfCount, part.bounds.Width(), width),
					SplitPart:    i + 1,
				}
				result.Placements = append(result.Placements, commit)
				state.consume(part.bounds, &result, req)
			}
			continue
		}

		result.Skipped = append(result.Skipped, model.SkippedArea{
			SectionIndex:   req.SectionIndex,
			RequestedWidth: width,
			Reason:         "no run of free regions covers the requested width",
		})
		result.Warnings = append(result.Warnings, model.LayoutWarning{
			SectionIndex: req.SectionIndex,
			Message: fmt.Sprintf("Section %q (%.1f in) does not fit on wall %d and was skipped",
				req.Label, width, wallIndex),
		})
	}

	return result
}

// wallState is the mutable book-keeping for one PlaceSections call. It never
// escapes the call.
type wallState struct {
	regions  []model.ValidRegion
	zones    []model.ObstacleZone
	minWidth float64
	cursor   float64
}

func (s *wallState) sortRegions() {
	sort.SliceStable(s.regions, func(i, j int) bool {
		if s.regions[i].Bounds.Left != s.regions[j].Bounds.Left {
			return s.regions[i].Bounds.Left < s.regions[j].Bounds.Left
		}
		return s.regions[i].Bounds.Bottom < s.regions[j].Bounds.Bottom
	})
}

// resolveWidth turns a request's span into a concrete width, recording a
// skip when it cannot. Fill sections take whatever is left of the first
// full-height region at or past the cursor.
func (s *wallState) resolveWidth(req Request, result *model.LayoutResult) (float64, bool) {
	if !req.Width.Fill {
		if req.Width.Value <= 0 {
			s.skip(req, req.Width.Value, "section width must be positive", result)
			return 0, false
		}
		return req.Width.Value, true
	}

	for _, r := range s.regions {
		if r.Type != model.RegionFull || r.Bounds.Right <= s.cursor+widthEps {
			continue
		}
		width := r.Bounds.Right - math.Max(r.Bounds.Left, s.cursor)
		if width < s.minWidth {
			s.skip(req, width, "remaining full-height space is below the minimum section width", result)
			return 0, false
		}
		return width, true
	}
	s.skip(req, 0, "no full-height region remains for a fill-width section", result)
	return 0, false
}

func (s *wallState) skip(req Request, width float64, reason string, result *model.LayoutResult) {
	result.Skipped = append(result.Skipped, model.SkippedArea{
		SectionIndex:   req.SectionIndex,
		RequestedWidth: width,
		Reason:         reason,
	})
	result.Warnings = append(result.Warnings, model.LayoutWarning{
		SectionIndex: req.SectionIndex,
		Message:      fmt.Sprintf("Section %q skipped: %s", req.Label, reason),
	})
}

// tryWhole looks for a single region that can host the full width, trying
// height modes in preference order. Regions at or past the cursor win over
// earlier ones.
func (s *wallState) tryWhole(width float64, modes []model.HeightMode) (model.SectionBounds, model.HeightMode, bool) {
	for _, mode := range modes {
		want := regionTypeFor(mode)
		for pass := 0; pass < 2; pass++ {
			for _, r := range s.regions {
				if r.Type != want {
					continue
				}
				afterCursor := r.Bounds.Left >= s.cursor-widthEps
				if (pass == 0) != afterCursor {
					continue
				}
				left := r.Bounds.Left
				if pass == 0 {
					left = math.Max(left, s.cursor)
				}
				if r.Bounds.Right-left+widthEps < width {
					continue
				}
				candidate := model.SectionBounds{
					Left:   left,
					Right:  left + width,
					Bottom: r.Bounds.Bottom,
					Top:    r.Bounds.Top,
				}
				if len(collision.Check(candidate, s.zones)) > 0 {
					continue
				}
				return candidate, mode, true
			}
		}
	}
	return model.SectionBounds{}, "", false
}

type splitPart struct {
	bounds model.SectionBounds
	mode   model.HeightMode
}

// trySplit walks the regions left to right, carving off up to the remaining
// width from each acceptable region. The split succeeds only if the parts
// cover the requested width exactly; a near-miss would silently shrink the
// cabinet, so it is rejected and the caller records a skip instead.
func (s *wallState) trySplit(width float64, modes []model.HeightMode) ([]splitPart, bool) {
	allowed := make(map[model.RegionType]model.HeightMode, len(modes))
	for _, m := range modes {
		allowed[regionTypeFor(m)] = m
	}

	var parts []splitPart
	remaining := width
	for _, r := range s.regions {
		if remaining <= widthEps {
			break
		}
		mode, ok := allowed[r.Type]
		if !ok {
			continue
		}
		take := math.Min(remaining, r.Bounds.Width())
		if take+widthEps < s.minWidth {
			continue
		}
		candidate := model.SectionBounds{
			Left:   r.Bounds.Left,
			Right:  r.Bounds.Left + take,
			Bottom: r.Bounds.Bottom,
			Top:    r.Bounds.Top,
		}
		if len(collision.Check(candidate, s.zones)) > 0 {
			continue
		}
		parts = append(parts, splitPart{bounds: candidate, mode: mode})
		remaining -= take
	}

	if len(parts) < 2 || remaining > widthEps {
		return nil, false
	}
	return parts, true
}

// consume commits a placed rectangle: the cursor advances to its right edge
// and every overlapping region is trimmed around it. Fragments narrower
// than the minimum section width are dropped, with a warning, since they
// can never host a later section.
func (s *wallState) consume(bounds model.SectionBounds, result *model.LayoutResult, req Request) {
	s.cursor = bounds.Right

	var kept []model.ValidRegion
	for _, r := range s.regions {
		if !bounds.Overlaps(r.Bounds) {
			kept = append(kept, r)
			continue
		}
		leftWidth := bounds.Left - r.Bounds.Left
		if leftWidth > widthEps {
			kept = appendFragment(kept, r, r.Bounds.Left, bounds.Left, leftWidth, s.minWidth, req, result)
		}
		rightWidth := r.Bounds.Right - bounds.Right
		if rightWidth > widthEps {
			kept = appendFragment(kept, r, bounds.Right, r.Bounds.Right, rightWidth, s.minWidth, req, result)
		}
	}
	s.regions = kept
	s.sortRegions()
}

func appendFragment(kept []model.ValidRegion, r model.ValidRegion, left, right, width, minWidth float64, req Request, result *model.LayoutResult) []model.ValidRegion {
	if width+widthEps < minWidth {
		result.Warnings = append(result.Warnings, model.LayoutWarning{
			SectionIndex: req.SectionIndex,
			Message: fmt.Sprintf("Section %q strands a %.2f in sliver below the %.1f in minimum section width",
				req.Label, width, minWidth),
		})
		return kept
	}
	return append(kept, model.ValidRegion{
		Type:   r.Type,
		Bounds: model.SectionBounds{Left: left, Right: right, Bottom: r.Bounds.Bottom, Top: r.Bounds.Top},
	})
}

// splitShelves hands each split part a share of the shelf count in
// proportion to its width, rounded down but never below one shelf.
func splitShelves(total int, partWidth, fullWidth float64) int {
	if total <= 0 {
		return 0
	}
	share := int(float64(total) * partWidth / fullWidth)
	if share < 1 {
		return 1
	}
	return share
}

// modeOrder expands the auto mode into its preference order. An explicit
// mode is tried alone.
func modeOrder(mode model.HeightMode) []model.HeightMode {
	if mode == model.ModeAuto || mode == "" {
		return []model.HeightMode{model.ModeFull, model.ModeLower, model.ModeUpper}
	}
	return []model.HeightMode{mode}
}

func regionTypeFor(mode model.HeightMode) model.RegionType {
	switch mode {
	case model.ModeLower:
		return model.RegionLower
	case model.ModeUpper:
		return model.RegionUpper
	default:
		return model.RegionFull
	}
}
