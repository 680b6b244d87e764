package assign

import (
	"fmt"
	"math"
	"sort"

	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/model"
	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/room"
)

const fitEps = 1e-9

// Result bundles the outcome of a corner-aware assignment pass. Reference
// problems are collected per section; the rest of the layout proceeds.
type Result struct {
	Assignments  []model.WallSectionAssignment
	Corners      []model.CornerSectionAssignment
	Reservations []model.WallSpaceReservation
	Errors       []model.FitError
}

// Sections assigns every section spec to a linear interval on its wall.
// Sections with no wall reference default to wall 0. Within a wall the
// sections keep their input order, packed from offset 0, and fill widths
// share the wall length left over after the fixed widths.
func Sections(sections []model.SectionSpec, r model.Room) ([]model.WallSectionAssignment, []model.FitError) {
	byWall, errs := groupByWall(sections, r)

	var assignments []model.WallSectionAssignment
	for wallIdx, indices := range byWall {
		wallLength := r.Walls[wallIdx].Length
		assignments = append(assignments, packWall(sections, indices, wallIdx, 0, wallLength)...)
	}

	sortAssignments(assignments)
	return assignments, errs
}

// SectionsWithCorners performs the corner-aware variant: corner sections
// (component id "corner.*") are matched to the 90-degree junction ending at
// their referenced wall, their two-wall footprint is reserved at the end of
// the left wall and the start of the right wall, and ordinary sections are
// packed into the interval left unreserved.
func SectionsWithCorners(sections []model.SectionSpec, r model.Room, settings model.LayoutSettings) Result {
	var res Result

	junctions := room.RightAngleJunctions(r)

	corner := make(map[int]bool)
	for i, spec := range sections {
		if !model.IsCornerComponent(spec.Component) {
			continue
		}
		corner[i] = true

		ct, ok := model.CornerTypeFromComponent(spec.Component)
		if !ok {
			res.Errors = append(res.Errors, model.FitError{
				Kind:         model.FitInvalidWallReference,
				SectionIndex: i,
				WallIndex:    -1,
				Message:      fmt.Sprintf("section %d: unknown corner component %q", i, spec.Component),
			})
			continue
		}
		wallIdx, ferr := resolveWallRef(i, spec.Wall, r)
		if ferr != nil {
			res.Errors = append(res.Errors, *ferr)
			continue
		}
		j, found := junctionEndingAt(junctions, wallIdx)
		if !found {
			res.Errors = append(res.Errors, model.FitError{
				Kind:         model.FitInvalidWallReference,
				SectionIndex: i,
				WallIndex:    wallIdx,
				Message:      fmt.Sprintf("section %d: no 90-degree junction has wall %d on its right", i, wallIdx),
			})
			continue
		}

		width := spec.Width.Value
		if spec.Width.Fill || width <= 0 {
			width = settings.BaseDepth
		}
		left, right := cornerFootprints(ct, width, settings)
		if j.Turn == -90 {
			left, right = right, left
		}

		res.Corners = append(res.Corners, model.CornerSectionAssignment{
			SectionIndex:   i,
			Corner:         ct,
			LeftWall:       j.LeftWall,
			RightWall:      j.RightWall,
			LeftFootprint:  left,
			RightFootprint: right,
		})
		res.Reservations = append(res.Reservations,
			model.WallSpaceReservation{
				WallIndex:    j.LeftWall,
				Start:        r.Walls[j.LeftWall].Length - left,
				End:          r.Walls[j.LeftWall].Length,
				SectionIndex: i,
			},
			model.WallSpaceReservation{
				WallIndex:    j.RightWall,
				Start:        0,
				End:          right,
				SectionIndex: i,
			},
		)
	}

	ordinary := make([]model.SectionSpec, 0, len(sections))
	ordinaryIdx := make([]int, 0, len(sections))
	for i, spec := range sections {
		if !corner[i] {
			ordinary = append(ordinary, spec)
			ordinaryIdx = append(ordinaryIdx, i)
		}
	}

	byWall, refErrs := groupByWall(ordinary, r)
	res.Errors = append(res.Errors, remapErrors(refErrs, ordinaryIdx)...)

	for wallIdx, indices := range byWall {
		usableStart, usableEnd := UnreservedInterval(r.Walls[wallIdx].Length, wallIdx, res.Reservations)

		remapped := make([]int, len(indices))
		for k, idx := range indices {
			remapped[k] = ordinaryIdx[idx]
		}
		packed := packWall(sections, remapped, wallIdx, usableStart, usableEnd)
		res.Assignments = append(res.Assignments, packed...)

		if n := len(packed); n > 0 {
			last := packed[n-1]
			if last.Offset+last.Width > usableEnd+fitEps {
				res.Errors = append(res.Errors, model.FitError{
					Kind:         model.FitExceedsLength,
					SectionIndex: last.SectionIndex,
					WallIndex:    wallIdx,
					Message: fmt.Sprintf("wall %d: sections run %.2f in past the usable span ending at %.2f in",
						wallIdx, last.Offset+last.Width-usableEnd, usableEnd),
				})
			}
		}
	}

	sortAssignments(res.Assignments)
	sort.Slice(res.Corners, func(a, b int) bool { return res.Corners[a].SectionIndex < res.Corners[b].SectionIndex })
	sort.Slice(res.Reservations, func(a, b int) bool {
		if res.Reservations[a].WallIndex != res.Reservations[b].WallIndex {
			return res.Reservations[a].WallIndex < res.Reservations[b].WallIndex
		}
		return res.Reservations[a].Start < res.Reservations[b].Start
	})
	sort.Slice(res.Errors, func(a, b int) bool { return res.Errors[a].SectionIndex < res.Errors[b].SectionIndex })
	return res
}

// ValidateFit re-derives the per-wall totals and reports what cannot work,
// without producing or touching any assignment.
func ValidateFit(sections []model.SectionSpec, r model.Room) []model.FitError {
	byWall, errs := groupByWall(sections, r)

	walls := make([]int, 0, len(byWall))
	for wallIdx := range byWall {
		walls = append(walls, wallIdx)
	}
	sort.Ints(walls)

	for _, wallIdx := range walls {
		indices := byWall[wallIdx]
		wallLength := r.Walls[wallIdx].Length

		var fixedSum float64
		fillCount := 0
		for _, i := range indices {
			if sections[i].Width.Fill {
				fillCount++
			} else {
				fixedSum += sections[i].Width.Value
			}
		}

		switch {
		case fixedSum > wallLength+fitEps:
			errs = append(errs, model.FitError{
				Kind:         model.FitExceedsLength,
				SectionIndex: -1,
				WallIndex:    wallIdx,
				Message: fmt.Sprintf("wall %d: fixed section widths total %.2f in but the wall is %.2f in",
					wallIdx, fixedSum, wallLength),
			})
		case fillCount > 0 && (wallLength-fixedSum)/float64(fillCount) <= fitEps:
			errs = append(errs, model.FitError{
				Kind:         model.FitExceedsLength,
				SectionIndex: -1,
				WallIndex:    wallIdx,
				Message: fmt.Sprintf("wall %d: fixed widths leave no room for %d fill section(s)",
					wallIdx, fillCount),
			})
		}
	}

	sort.Slice(errs, func(a, b int) bool { return errs[a].SectionIndex < errs[b].SectionIndex })
	return errs
}

// groupByWall resolves each spec's wall reference and groups spec indices
// by wall, keeping input order within a wall. Bad references become errors
// and the spec is left out of every group.
func groupByWall(sections []model.SectionSpec, r model.Room) (map[int][]int, []model.FitError) {
	byWall := make(map[int][]int)
	var errs []model.FitError
	for i, spec := range sections {
		wallIdx, ferr := resolveWallRef(i, spec.Wall, r)
		if ferr != nil {
			errs = append(errs, *ferr)
			continue
		}
		byWall[wallIdx] = append(byWall[wallIdx], i)
	}
	return byWall, errs
}

func resolveWallRef(sectionIndex int, ref model.WallRef, r model.Room) (int, *model.FitError) {
	if ref.IsZero() {
		return 0, nil
	}
	if ref.ByIndex {
		if ref.Index < 0 || ref.Index >= len(r.Walls) {
			return 0, &model.FitError{
				Kind:         model.FitInvalidWallReference,
				SectionIndex: sectionIndex,
				WallIndex:    -1,
				Message:      fmt.Sprintf("section %d: wall index %d out of range (room has %d walls)", sectionIndex, ref.Index, len(r.Walls)),
			}
		}
		return ref.Index, nil
	}
	idx := r.WallIndexByName(ref.Name)
	if idx < 0 {
		return 0, &model.FitError{
			Kind:         model.FitInvalidWallReference,
			SectionIndex: sectionIndex,
			WallIndex:    -1,
			Message:      fmt.Sprintf("section %d: no wall named %q", sectionIndex, ref.Name),
		}
	}
	return idx, nil
}

// packWall lays the given sections (by original index) along one wall
// interval, fixed widths as requested and fill widths sharing the rest.
func packWall(sections []model.SectionSpec, indices []int, wallIdx int, start, end float64) []model.WallSectionAssignment {
	var fixedSum float64
	fillCount := 0
	for _, i := range indices {
		if sections[i].Width.Fill {
			fillCount++
		} else {
			fixedSum += sections[i].Width.Value
		}
	}

	fillWidth := 0.0
	if fillCount > 0 {
		fillWidth = math.Max(0, (end-start-fixedSum)/float64(fillCount))
	}

	cursor := start
	out := make([]model.WallSectionAssignment, 0, len(indices))
	for _, i := range indices {
		width := sections[i].Width.Value
		if sections[i].Width.Fill {
			width = fillWidth
		}
		out = append(out, model.WallSectionAssignment{
			SectionIndex: i,
			WallIndex:    wallIdx,
			Offset:       cursor,
			Width:        width,
		})
		cursor += width
	}
	return out
}

// UnreservedInterval returns the span of a wall not claimed by corner
// reservations: after any start-of-wall block, before any end-of-wall block.
func UnreservedInterval(wallLength float64, wallIdx int, reservations []model.WallSpaceReservation) (float64, float64) {
	start, end := 0.0, wallLength
	for _, res := range reservations {
		if res.WallIndex != wallIdx {
			continue
		}
		if res.Start <= fitEps && res.End > start {
			start = res.End
		}
		if res.End >= wallLength-fitEps && res.Start < end {
			end = res.Start
		}
	}
	return start, end
}

func junctionEndingAt(junctions []room.Junction, rightWall int) (room.Junction, bool) {
	for _, j := range junctions {
		if j.RightWall == rightWall {
			return j, true
		}
	}
	return room.Junction{}, false
}

// cornerFootprints returns the linear run each corner type consumes along
// the left and right walls of its junction. These mappings are the fixture
// contract for corner hardware; the tests pin them.
func cornerFootprints(ct model.CornerType, width float64, settings model.LayoutSettings) (left, right float64) {
	switch ct {
	case model.CornerLazySusan:
		// A lazy susan is a square unit seated into the corner.
		return width, width
	case model.CornerDiagonal:
		// The angled face spans the corner at 45 degrees; each wall gives
		// up the cabinet depth plus the face projection.
		run := settings.BaseDepth + width*math.Sqrt2/2
		return run, run
	case model.CornerBlind:
		// The body runs down the left wall; the right wall only loses the
		// blind panel depth.
		return width, settings.BaseDepth
	default:
		return width, width
	}
}

func remapErrors(errs []model.FitError, remap []int) []model.FitError {
	for k := range errs {
		if errs[k].SectionIndex >= 0 && errs[k].SectionIndex < len(remap) {
			errs[k].SectionIndex = remap[errs[k].SectionIndex]
		}
	}
	return errs
}

func sortAssignments(assignments []model.WallSectionAssignment) {
	sort.Slice(assignments, func(a, b int) bool {
		return assignments[a].SectionIndex < assignments[b].SectionIndex
	})
}
