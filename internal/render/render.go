// Package render draws headless PNG views of a resolved layout: a top-down
// floor plan of the whole room and per-wall elevations.
package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/collision"
	"github.com/tyevans/builtin-cabinet-maker-sub000/internal/model"
)

// Section colors cycle per placement for visual distinction. The PDF
// exporter carries the same palette so print and raster output agree.
var sectionColors = []color.NRGBA{
	{R: 76, G: 175, B: 80, A: 200},  // green
	{R: 33, G: 150, B: 243, A: 200}, // blue
	{R: 255, G: 152, B: 0, A: 200},  // orange
	{R: 156, G: 39, B: 176, A: 200}, // purple
	{R: 0, G: 188, B: 212, A: 200},  // cyan
	{R: 244, G: 67, B: 54, A: 200},  // red
	{R: 255, G: 235, B: 59, A: 200}, // yellow
	{R: 121, G: 85, B: 72, A: 200},  // brown
}

var obstacleColors = map[model.ObstacleType]color.NRGBA{
	model.ObstacleWindow:    {R: 100, G: 160, B: 220, A: 255},
	model.ObstacleDoor:      {R: 160, G: 110, B: 60, A: 255},
	model.ObstacleDoorway:   {R: 160, G: 110, B: 60, A: 255},
	model.ObstacleOutlet:    {R: 230, G: 180, B: 40, A: 255},
	model.ObstacleSwitch:    {R: 230, G: 180, B: 40, A: 255},
	model.ObstacleVent:      {R: 130, G: 130, B: 130, A: 255},
	model.ObstaclePlumbing:  {R: 60, G: 120, B: 200, A: 255},
	model.ObstacleColumn:    {R: 90, G: 90, B: 90, A: 255},
	model.ObstacleAppliance: {R: 120, G: 120, B: 160, A: 255},
}

const (
	defaultWidthPx = 1200
	planMargin     = 12.0 // inches of breathing room around the room outline
	elevationPad   = 40.0 // pixels around the wall face
	elevationHead  = 28.0 // pixels reserved for the title line
)

// mapPoint converts a room-space point (inches) to image coordinates (pixels).
type mapPoint func(model.Point2D) (float64, float64)

// Plan renders a top-down floor plan to a PNG file: wall bands with their
// openings, corner reservations, and the footprint of every placed section.
func Plan(path string, project model.Project, widthPx int) error {
	plan := project.Plan
	if plan == nil || len(plan.Poses) == 0 {
		return fmt.Errorf("project has no resolved plan to render")
	}
	if widthPx <= 0 {
		widthPx = defaultWidthPx
	}

	side := interiorSide(plan.Poses)

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	grow := func(p model.Point2D) {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	for _, pose := range plan.Poses {
		grow(pose.Start)
		grow(pose.End)
	}
	for _, s := range plan.Sections {
		if pose, ok := poseFor(plan.Poses, s.WallIndex); ok {
			for _, c := range bandCorners(pose, s.Bounds.Left, s.Bounds.Right, s.Depth, side) {
				grow(c)
			}
		}
	}
	if maxX <= minX || maxY <= minY {
		return fmt.Errorf("room outline has no drawable extent")
	}

	worldW := maxX - minX + 2*planMargin
	worldH := maxY - minY + 2*planMargin
	scale := float64(widthPx) / worldW
	heightPx := int(math.Ceil(worldH * scale))
	if heightPx < 1 {
		heightPx = 1
	}

	dc := gg.NewContext(widthPx, heightPx)
	dc.SetRGB255(255, 255, 255)
	dc.Clear()

	// Room Y grows upward, image Y grows downward.
	px := func(p model.Point2D) (float64, float64) {
		return (p.X - minX + planMargin) * scale, float64(heightPx) - (p.Y-minY+planMargin)*scale
	}

	drawFootprints(dc, project, *plan, px, scale, side)
	drawCornerBlocks(dc, project, *plan, px, side)
	drawWallBands(dc, project, *plan, px, side)
	drawWallOpenings(dc, project, *plan, px, side)

	dc.SetRGB255(30, 30, 30)
	dc.DrawString(project.Name, 8, 16)

	return dc.SavePNG(path)
}

// drawFootprints fills the top-down quad each placed section occupies.
func drawFootprints(dc *gg.Context, project model.Project, plan model.Plan, px mapPoint, scale, side float64) {
	for _, s := range plan.Sections {
		pose, ok := poseFor(plan.Poses, s.WallIndex)
		if !ok {
			continue
		}
		corners := bandCorners(pose, s.Bounds.Left, s.Bounds.Right, s.Depth, side)

		tracePolygon(dc, corners, px)
		dc.SetColor(sectionColors[s.Index%len(sectionColors)])
		dc.FillPreserve()
		dc.SetColor(color.NRGBA{R: 30, G: 30, B: 30, A: 255})
		dc.SetLineWidth(1)
		dc.Stroke()

		// Label only if big enough
		if s.Bounds.Width()*scale > 30 && s.Depth*scale > 14 {
			cx, cy := polygonCenter(corners, px)
			dc.SetRGB255(0, 0, 0)
			dc.DrawStringAnchored(sectionName(project, s.Index), cx, cy, 0.5, 0.5)
		}
	}
}

// drawCornerBlocks shades the wall intervals reserved for corner units.
func drawCornerBlocks(dc *gg.Context, project model.Project, plan model.Plan, px mapPoint, side float64) {
	for _, r := range plan.Reservations {
		pose, ok := poseFor(plan.Poses, r.WallIndex)
		if !ok {
			continue
		}
		tracePolygon(dc, bandCorners(pose, r.Start, r.End, project.Settings.BaseDepth, side), px)
		dc.SetColor(color.NRGBA{R: 205, G: 220, B: 250, A: 160})
		dc.FillPreserve()
		dc.SetColor(color.NRGBA{R: 40, G: 80, B: 180, A: 255})
		dc.SetLineWidth(1)
		dc.Stroke()
	}
}

// drawWallBands fills each wall's thickness on the exterior side of its pose
// line and writes the wall names just outside.
func drawWallBands(dc *gg.Context, project model.Project, plan model.Plan, px mapPoint, side float64) {
	for _, pose := range plan.Poses {
		length := pose.Start.DistanceTo(pose.End)
		thick := wallThickness(project, pose.Index)

		tracePolygon(dc, bandCorners(pose, 0, length, -thick, side), px)
		dc.SetRGB255(90, 80, 70)
		dc.Fill()
	}

	for _, pose := range plan.Poses {
		length := pose.Start.DistanceTo(pose.End)
		thick := wallThickness(project, pose.Index)
		name := fmt.Sprintf("wall %d", pose.Index)
		if pose.Index < len(project.Room.Walls) && project.Room.Walls[pose.Index].Name != "" {
			name = project.Room.Walls[pose.Index].Name
		}

		mid := bandCorners(pose, length/2, length/2, -(thick + 8), side)
		x, y := px(mid[2])
		dc.SetRGB255(60, 60, 60)
		dc.DrawStringAnchored(name, x, y, 0.5, 0.5)
	}
}

// drawWallOpenings punches obstacle markers through the wall bands.
func drawWallOpenings(dc *gg.Context, project model.Project, plan model.Plan, px mapPoint, side float64) {
	for _, o := range project.Obstacles {
		pose, ok := poseFor(plan.Poses, o.WallIndex)
		if !ok {
			continue
		}
		col, ok := obstacleColors[o.Type]
		if !ok {
			col = color.NRGBA{R: 150, G: 150, B: 150, A: 255}
		}

		tracePolygon(dc, bandCorners(pose, o.Offset, o.Offset+o.Width, -wallThickness(project, o.WallIndex), side), px)
		dc.SetRGB255(255, 255, 255)
		dc.FillPreserve()
		dc.SetColor(col)
		dc.SetLineWidth(2)
		dc.Stroke()
	}
}

// Elevation renders one wall face to a PNG file: free placement regions,
// obstacle zones with clearances, corner reservations, and committed
// placements.
func Elevation(path string, project model.Project, wallIndex, widthPx int) error {
	plan := project.Plan
	if plan == nil || len(plan.Walls) == 0 {
		return fmt.Errorf("project has no resolved plan to render")
	}
	if wallIndex < 0 || wallIndex >= len(project.Room.Walls) {
		return fmt.Errorf("wall index %d out of range, room has %d walls", wallIndex, len(project.Room.Walls))
	}
	seg := project.Room.Walls[wallIndex]
	if widthPx <= 0 {
		widthPx = defaultWidthPx
	}

	scale := (float64(widthPx) - 2*elevationPad) / seg.Length
	heightPx := int(math.Ceil(seg.Height*scale + 2*elevationPad + elevationHead))

	dc := gg.NewContext(widthPx, heightPx)
	dc.SetRGB255(255, 255, 255)
	dc.Clear()

	offsetX := elevationPad
	offsetY := elevationPad + elevationHead
	// Wall-plane heights grow upward, image Y grows downward.
	flipY := func(top float64) float64 { return offsetY + (seg.Height-top)*scale }

	dc.DrawRectangle(offsetX, offsetY, seg.Length*scale, seg.Height*scale)
	dc.SetRGB255(250, 247, 240)
	dc.FillPreserve()
	dc.SetRGB255(100, 100, 100)
	dc.SetLineWidth(2)
	dc.Stroke()

	title := fmt.Sprintf("Wall %d (%.0f x %.0f in)", wallIndex, seg.Length, seg.Height)
	if seg.Name != "" {
		title = fmt.Sprintf("Wall %d: %s (%.0f x %.0f in)", wallIndex, seg.Name, seg.Length, seg.Height)
	}
	dc.SetRGB255(30, 30, 30)
	dc.DrawString(title, offsetX, offsetY-10)

	zones := collision.ZonesForWall(project.Obstacles, wallIndex)
	drawRegionOutlines(dc, seg, zones, project.Settings, flipY, offsetX, scale)
	drawObstacleMarkers(dc, zones, seg, flipY, offsetX, scale)
	drawReservationBands(dc, plan.Reservations, wallIndex, seg, flipY, offsetX, scale)

	result := resultFor(*plan, wallIndex)
	drawPlacements(dc, project, result, flipY, offsetX, scale)

	if len(result.Skipped) > 0 {
		dc.SetRGB255(200, 0, 0)
		dc.DrawString(
			fmt.Sprintf("WARNING: %d section(s) found no space on this wall", len(result.Skipped)),
			offsetX, flipY(0)+24,
		)
	}

	return dc.SavePNG(path)
}

// drawRegionOutlines dashes the free rectangles the placement engine would
// start from on an empty wall.
func drawRegionOutlines(dc *gg.Context, seg model.WallSegment, zones []model.ObstacleZone, settings model.LayoutSettings, flipY func(float64) float64, offsetX, scale float64) {
	regions := collision.FindValidRegions(seg.Length, seg.Height, zones, settings.MinSectionWidth, settings.MinSectionHeight)

	dc.SetDash(6, 4)
	for _, r := range regions {
		x := offsetX + r.Bounds.Left*scale
		y := flipY(r.Bounds.Top)
		w := r.Bounds.Width() * scale
		h := r.Bounds.Height() * scale

		dc.SetColor(color.NRGBA{R: 56, G: 142, B: 60, A: 180})
		dc.SetLineWidth(1)
		dc.DrawRectangle(x, y, w, h)
		dc.Stroke()

		if w > 40 && h > 15 {
			dc.DrawStringAnchored(string(r.Type), x+w-4, y+10, 1, 0.5)
		}
	}
	dc.SetDash()
}

// drawObstacleMarkers draws each zone twice: the clearance envelope as a red
// warning area, then the physical footprint in gray on top.
func drawObstacleMarkers(dc *gg.Context, zones []model.ObstacleZone, seg model.WallSegment, flipY func(float64) float64, offsetX, scale float64) {
	for _, zone := range zones {
		b := clampToWall(zone.Bounds, seg)
		dc.DrawRectangle(offsetX+b.Left*scale, flipY(b.Top), b.Width()*scale, b.Height()*scale)
		dc.SetColor(color.NRGBA{R: 255, G: 50, B: 50, A: 120})
		dc.FillPreserve()
		dc.SetColor(color.NRGBA{R: 200, G: 0, B: 0, A: 255})
		dc.SetLineWidth(2)
		dc.Stroke()
	}

	for _, zone := range zones {
		b := clampToWall(zone.Obstacle.Bounds(), seg)
		x := offsetX + b.Left*scale
		y := flipY(b.Top)
		w := b.Width() * scale
		h := b.Height() * scale

		dc.DrawRectangle(x, y, w, h)
		dc.SetColor(color.NRGBA{R: 189, G: 189, B: 189, A: 255})
		dc.FillPreserve()
		dc.SetColor(color.NRGBA{R: 80, G: 80, B: 80, A: 255})
		dc.SetLineWidth(1)
		dc.Stroke()

		if w > 40 && h > 15 {
			dc.SetRGB255(60, 60, 60)
			dc.DrawStringAnchored(string(zone.Obstacle.Type), x+w/2, y+h/2, 0.5, 0.5)
		}
	}
}

// drawReservationBands shades full-height corner reservations in blue.
func drawReservationBands(dc *gg.Context, reservations []model.WallSpaceReservation, wallIndex int, seg model.WallSegment, flipY func(float64) float64, offsetX, scale float64) {
	for _, r := range reservations {
		if r.WallIndex != wallIndex {
			continue
		}
		x := offsetX + r.Start*scale
		w := (r.End - r.Start) * scale

		dc.DrawRectangle(x, flipY(seg.Height), w, seg.Height*scale)
		dc.SetColor(color.NRGBA{R: 205, G: 220, B: 250, A: 160})
		dc.FillPreserve()
		dc.SetColor(color.NRGBA{R: 40, G: 80, B: 180, A: 255})
		dc.SetLineWidth(1)
		dc.Stroke()

		if w > 40 {
			dc.SetColor(color.NRGBA{R: 40, G: 80, B: 180, A: 255})
			dc.DrawStringAnchored("CORNER", x+w/2, flipY(seg.Height)+12, 0.5, 0.5)
		}
	}
}

// drawPlacements fills each committed section rectangle and labels the ones
// with room for text.
func drawPlacements(dc *gg.Context, project model.Project, result model.LayoutResult, flipY func(float64) float64, offsetX, scale float64) {
	for _, p := range result.Placements {
		x := offsetX + p.Bounds.Left*scale
		y := flipY(p.Bounds.Top)
		w := p.Bounds.Width() * scale
		h := p.Bounds.Height() * scale

		dc.DrawRectangle(x, y, w, h)
		dc.SetColor(sectionColors[p.SectionIndex%len(sectionColors)])
		dc.FillPreserve()
		dc.SetColor(color.NRGBA{R: 30, G: 30, B: 30, A: 255})
		dc.SetLineWidth(1)
		dc.Stroke()

		// Label only if big enough
		if w > 30 && h > 16 {
			dc.SetRGB255(0, 0, 0)
			dc.DrawStringAnchored(placementName(project, p), x+w/2, y+h/2-7, 0.5, 0.5)
			dc.DrawStringAnchored(
				fmt.Sprintf("%.0f x %.0f", p.Bounds.Width(), p.Bounds.Height()),
				x+w/2, y+h/2+7, 0.5, 0.5,
			)
		}
	}
}

// bandCorners returns the room-space quad covering [from, to] along a wall,
// extending depth inches toward the room interior. side comes from
// interiorSide. A negative depth extends outward instead, which is how the
// wall thickness itself is drawn.
func bandCorners(pose model.WallPose, from, to, depth, side float64) []model.Point2D {
	rad := pose.Direction * math.Pi / 180
	dx, dy := math.Cos(rad), math.Sin(rad)
	nx, ny := -dy*side, dx*side

	a := model.Point2D{X: pose.Start.X + from*dx, Y: pose.Start.Y + from*dy}
	b := model.Point2D{X: pose.Start.X + to*dx, Y: pose.Start.Y + to*dy}
	c := model.Point2D{X: b.X + depth*nx, Y: b.Y + depth*ny}
	d := model.Point2D{X: a.X + depth*nx, Y: a.Y + depth*ny}
	return []model.Point2D{a, b, c, d}
}

// interiorSide reports which side of the wall chain the room interior lies
// on: +1 when the chain winds counterclockwise (interior left of travel),
// -1 when it winds clockwise. Positive turn angles produce clockwise rooms,
// so -1 is the common case.
func interiorSide(poses []model.WallPose) float64 {
	var area float64
	for _, p := range poses {
		area += p.Start.X*p.End.Y - p.End.X*p.Start.Y
	}
	if area < 0 {
		return -1
	}
	return 1
}

func tracePolygon(dc *gg.Context, corners []model.Point2D, px mapPoint) {
	for i, c := range corners {
		x, y := px(c)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
}

func polygonCenter(corners []model.Point2D, px mapPoint) (float64, float64) {
	var sx, sy float64
	for _, c := range corners {
		x, y := px(c)
		sx += x
		sy += y
	}
	n := float64(len(corners))
	return sx / n, sy / n
}

func poseFor(poses []model.WallPose, wallIndex int) (model.WallPose, bool) {
	for _, p := range poses {
		if p.Index == wallIndex {
			return p, true
		}
	}
	return model.WallPose{}, false
}

func resultFor(plan model.Plan, wallIndex int) model.LayoutResult {
	for _, w := range plan.Walls {
		if w.WallIndex == wallIndex {
			return w
		}
	}
	return model.LayoutResult{WallIndex: wallIndex}
}

func wallThickness(project model.Project, wallIndex int) float64 {
	if wallIndex >= 0 && wallIndex < len(project.Room.Walls) {
		if d := project.Room.Walls[wallIndex].Depth; d > 0 {
			return d
		}
	}
	return 4.0
}

func sectionName(project model.Project, index int) string {
	if index >= 0 && index < len(project.Sections) {
		if l := project.Sections[index].Label; l != "" {
			return l
		}
	}
	return fmt.Sprintf("Section %d", index+1)
}

func placementName(project model.Project, p model.PlacedSection) string {
	name := sectionName(project, p.SectionIndex)
	if p.SplitPart > 0 {
		name = fmt.Sprintf("%s (part %d)", name, p.SplitPart)
	}
	return name
}
