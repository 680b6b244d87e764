package layout

import (
	"fmt"
	"sort"

	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/assign"
	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/collision"
	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/extent"
	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/model"
	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/panel"
	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/placement"
	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/room"
	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/transform"
)

// Build runs the full layout pipeline for a project: validate the room,
// assign sections to walls, place them around obstacle zones (or pack them
// plainly when obstacle avoidance is off), resolve interior rows, generate
// carcass panels, and compose everything into non-negative room space.
//
// Malformed room input fails the build. Everything else that goes wrong,
// like an unplaceable section or a bad wall reference, lands in the plan's
// warnings: a partial layout is still worth looking at.
func Build(project model.Project) (model.Plan, error) {
	plan := model.Plan{}

	geoErrs := room.ValidateGeometry(project.Room)
	plan.GeometryErrors = geoErrs
	for _, ge := range geoErrs {
		if ge.Kind == model.GeometryInput {
			return plan, fmt.Errorf("room geometry: %s", ge.Message)
		}
	}

	plan.Poses = room.WallPoses(project.Room)

	ar := assign.SectionsWithCorners(project.Sections, project.Room, project.Settings)
	plan.Assignments = ar.Assignments
	plan.Corners = ar.Corners
	plan.Reservations = ar.Reservations
	for _, fe := range ar.Errors {
		plan.Warnings = append(plan.Warnings, model.LayoutWarning{
			SectionIndex: fe.SectionIndex,
			Message:      fe.Message,
		})
	}

	plan.Walls = placeWalls(project, ar, &plan)

	resolveSections(project, &plan)
	composePanels(project.Settings, &plan)

	return plan, nil
}

// placeWalls produces one LayoutResult per wall. With obstacle avoidance on
// the placement engine routes sections through the wall's free regions;
// with it off the assignment offsets are taken as-is at full wall height.
func placeWalls(project model.Project, ar assign.Result, plan *model.Plan) []model.LayoutResult {
	requestsByWall := make(map[int][]placement.Request)
	for _, a := range plan.Assignments {
		req := placement.NewRequest(a.SectionIndex, project.Sections[a.SectionIndex])
		requestsByWall[a.WallIndex] = append(requestsByWall[a.WallIndex], req)
	}

	results := make([]model.LayoutResult, 0, len(project.Room.Walls))
	for w, wall := range project.Room.Walls {
		requests := requestsByWall[w]

		if !project.Settings.AvoidObstacles {
			results = append(results, packPlainly(w, wall, plan.Assignments))
			continue
		}

		zones := collision.ZonesForWall(project.Obstacles, w)
		regions := collision.FindValidRegions(wall.Length, wall.Height, zones,
			project.Settings.MinSectionWidth, project.Settings.MinSectionHeight)
		regions = clipToUnreserved(regions, wall.Length, w, ar.Reservations, project.Settings.MinSectionWidth)

		results = append(results, placement.PlaceSections(w, requests, regions, zones, project.Settings))
	}
	return results
}

// packPlainly turns the wall's assignments straight into full-height
// placements, preserving their offsets.
func packPlainly(wallIndex int, wall model.WallSegment, assignments []model.WallSectionAssignment) model.LayoutResult {
	result := model.LayoutResult{WallIndex: wallIndex}
	for _, a := range assignments {
		if a.WallIndex != wallIndex || a.Width <= 0 {
			continue
		}
		result.Placements = append(result.Placements, model.PlacedSection{
			SectionIndex: a.SectionIndex,
			Bounds: model.SectionBounds{
				Left: a.Offset, Right: a.Offset + a.Width,
				Bottom: 0, Top: wall.Height,
			},
			Mode: model.ModeFull,
		})
	}
	return result
}

// clipToUnreserved trims free regions to the interval corner reservations
// leave open, dropping regions that become too narrow.
func clipToUnreserved(regions []model.ValidRegion, wallLength float64, wallIdx int, reservations []model.WallSpaceReservation, minWidth float64) []model.ValidRegion {
	start, end := assign.UnreservedInterval(wallLength, wallIdx, reservations)
	if start <= 0 && end >= wallLength {
		return regions
	}

	var clipped []model.ValidRegion
	for _, r := range regions {
		left := r.Bounds.Left
		right := r.Bounds.Right
		if left < start {
			left = start
		}
		if right > end {
			right = end
		}
		if right-left < minWidth {
			continue
		}
		r.Bounds.Left, r.Bounds.Right = left, right
		clipped = append(clipped, r)
	}
	return clipped
}

// resolveSections expands each committed placement into a resolved section
// with its depth and interior rows, ordered by original section index.
func resolveSections(project model.Project, plan *model.Plan) {
	type placed struct {
		p    model.PlacedSection
		wall int
	}
	var all []placed
	for _, wr := range plan.Walls {
		for _, p := range wr.Placements {
			all = append(all, placed{p, wr.WallIndex})
		}
	}
	sort.SliceStable(all, func(a, b int) bool {
		if all[a].p.SectionIndex != all[b].p.SectionIndex {
			return all[a].p.SectionIndex < all[b].p.SectionIndex
		}
		return all[a].p.SplitPart < all[b].p.SplitPart
	})

	for _, pl := range all {
		spec := project.Sections[pl.p.SectionIndex]
		if pl.p.SplitPart > 0 {
			label := spec.Label
			if label == "" {
				label = fmt.Sprintf("Section %d", pl.p.SectionIndex+1)
			}
			spec.Label = fmt.Sprintf("%s (part %d)", label, pl.p.SplitPart)
			spec.ShelfCount = pl.p.ShelfCount
		}

		rs := model.ResolvedSection{
			Index:     pl.p.SectionIndex,
			Spec:      spec,
			WallIndex: pl.wall,
			Bounds:    pl.p.Bounds,
			Depth:     sectionDepth(pl.p.Mode, project.Settings),
			Rows:      resolveRows(spec, pl.p, project.Settings, plan),
		}
		plan.Sections = append(plan.Sections, rs)

		pose := plan.Poses[pl.wall]
		plan.Transforms = append(plan.Transforms, transform.ForSection(model.WallSectionAssignment{
			SectionIndex: pl.p.SectionIndex,
			WallIndex:    pl.wall,
			Offset:       pl.p.Bounds.Left,
			Width:        pl.p.Bounds.Width(),
		}, pose))
	}
}

// sectionDepth picks the cabinet depth for a height mode.
func sectionDepth(mode model.HeightMode, settings model.LayoutSettings) float64 {
	if mode == model.ModeUpper {
		return settings.UpperDepth
	}
	return settings.BaseDepth
}

// resolveRows turns a spec's row requests into concrete heights within the
// section's interior. Row resolution failures downgrade the section to a
// single open space, with a warning.
func resolveRows(spec model.SectionSpec, p model.PlacedSection, settings model.LayoutSettings, plan *model.Plan) []model.ResolvedRow {
	if len(spec.Rows) == 0 {
		return nil
	}

	interior := p.Bounds.Height() - 2*settings.MaterialThickness
	if p.Bounds.Bottom < 1e-9 {
		interior -= settings.ToeKickHeight
	}

	heights, err := extent.ResolveNestedRowHeights(extent.FromRows(spec.Rows), interior, settings.MaterialThickness)
	if err != nil {
		plan.Warnings = append(plan.Warnings, model.LayoutWarning{
			SectionIndex: p.SectionIndex,
			Message:      fmt.Sprintf("Section %q rows not resolvable: %v", spec.Label, err),
		})
		return nil
	}

	rows := make([]model.ResolvedRow, len(heights))
	for i, h := range heights {
		rows[i] = model.ResolvedRow{Height: h, ShelfCount: spec.Rows[i].ShelfCount}
	}
	return rows
}

// composePanels generates each section's carcass and carries copies into
// room space: rotate and translate by the section transform, snap, then
// shift the whole set into the non-negative quadrant together.
func composePanels(settings model.LayoutSettings, plan *model.Plan) {
	var boxes []model.BoundingBox3D
	var roomPanels []model.Panel

	for i, rs := range plan.Sections {
		panels := panel.Generate(rs, settings)
		plan.Panels = append(plan.Panels, panels...)

		tr := plan.Transforms[i]
		for _, p := range panels {
			rp := p
			rp.Box = transform.Apply(tr, p.Box)
			roomPanels = append(roomPanels, rp)
			boxes = append(boxes, rp.Box)
		}
	}

	for i, b := range transform.RebaseNonNegative(boxes) {
		roomPanels[i].Box = b
	}
	plan.RoomPanels = roomPanels
}
