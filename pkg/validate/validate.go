// Package validate implements the FloorScript lint rules (spec §4.L)
// as a pure function over a resolved plan. Grounded on the category →
// checker → violation shape of the Granula compliance engine's
// RuleEngine: each rule is an independent function appended to a
// fixed, ordered table, and results are collected in table order
// rather than any rule mutating shared state.
package validate

import (
	"fmt"

	"github.com/xiiisorate/floorscript/pkg/floorplan"
	"github.com/xiiisorate/floorscript/pkg/geometry"
)

type issue = floorplan.ValidationIssue

type rule struct {
	code     string
	severity string
	check    func(plan *floorplan.ResolvedPlan) []issue
}

var rules = []rule{
	{"overlapping-openings", "error", checkOverlappingOpenings},
	{"opening-exceeds-wall", "error", checkOpeningExceedsWall},
	{"sealed-room", "warning", checkSealedRoom},
	{"fixture-out-of-bounds", "warning", checkFixtureOutOfBounds},
	{"run-through-wall", "warning", checkRunThroughWall},
	{"opening-in-extension-gap", "warning", checkOpeningInExtensionGap},
	{"sealed-enclosure", "warning", checkSealedEnclosure},
	{"sealed-extension", "warning", checkSealedExtension},
}

// Run evaluates every rule against plan, in rule-table order, stable
// within each rule.
func Run(plan *floorplan.ResolvedPlan) floorplan.ValidationResult {
	var result floorplan.ValidationResult
	for _, r := range rules {
		for _, found := range r.check(plan) {
			found.Code = r.code
			found.Severity = r.severity
			if r.severity == "error" {
				result.Errors = append(result.Errors, found)
			} else {
				result.Warnings = append(result.Warnings, found)
			}
		}
	}
	return result
}

func checkOverlappingOpenings(plan *floorplan.ResolvedPlan) []issue {
	var found []issue
	for _, pw := range plan.WallGraph.Walls {
		openings := pw.Wall.Openings
		for i := 0; i < len(openings); i++ {
			for j := i + 1; j < len(openings); j++ {
				a, b := openings[i], openings[j]
				if a.AlongAxisStart < b.AlongAxisEnd-geometry.LengthEpsilon && b.AlongAxisStart < a.AlongAxisEnd-geometry.LengthEpsilon {
					found = append(found, issue{
						Message: fmt.Sprintf("openings %q and %q overlap on wall %q", a.ID, b.ID, pw.Wall.ID),
						WallID:  pw.Wall.ID,
					})
				}
			}
		}
	}
	return found
}

func checkOpeningExceedsWall(plan *floorplan.ResolvedPlan) []issue {
	var found []issue
	for _, pw := range plan.WallGraph.Walls {
		wallLength := wallRectLength(pw.Wall)
		for _, o := range pw.Wall.Openings {
			if o.Width > wallLength+geometry.LengthEpsilon {
				found = append(found, issue{
					Message: fmt.Sprintf("opening %q width %.3f exceeds wall %q length %.3f", o.ID, o.Width, pw.Wall.ID, wallLength),
					WallID:  pw.Wall.ID,
				})
			}
		}
	}
	return found
}

func wallRectLength(w *floorplan.ResolvedWall) float64 {
	if w.Direction.IsHorizontal() {
		return w.Rect.Width
	}
	return w.Rect.Height
}

func checkSealedRoom(plan *floorplan.ResolvedPlan) []issue {
	var found []issue
	for _, room := range plan.Rooms {
		count := 0
		for _, dir := range geometry.Directions {
			if w := room.WallOf(dir); w != nil {
				count += len(w.Openings)
			}
		}
		if count == 0 {
			found = append(found, issue{
				Message: fmt.Sprintf("room %q has no openings", room.ID),
				RoomID:  room.ID,
			})
		}
	}
	return found
}

func checkFixtureOutOfBounds(plan *floorplan.ResolvedPlan) []issue {
	if plan.Plumbing == nil {
		return nil
	}
	var found []issue
	for _, f := range plan.Plumbing.Fixtures {
		inBounds := false
		for _, room := range plan.Rooms {
			if roomContains(room.Bounds, f.Position) {
				inBounds = true
				break
			}
		}
		if !inBounds {
			found = append(found, issue{
				Message: fmt.Sprintf("fixture %q at (%.3f, %.3f) is outside every room bound", f.ID, f.Position.X, f.Position.Y),
			})
		}
	}
	return found
}

func roomContains(b geometry.Rect, p geometry.Point) bool {
	const slack = 0.01
	return p.X >= b.Left()-slack && p.X <= b.Right()+slack && p.Y >= b.Bottom()-slack && p.Y <= b.Top()+slack
}

func checkRunThroughWall(plan *floorplan.ResolvedPlan) []issue {
	var found []issue
	runs := collectRuns(plan)
	for _, run := range runs {
		for i := 0; i+1 < len(run.Path); i++ {
			seg := geometry.LineSegment{Start: run.Path[i], End: run.Path[i+1]}
			for _, pw := range plan.WallGraph.Walls {
				if segmentCrossesWall(seg, pw.Wall) {
					found = append(found, issue{
						Message: fmt.Sprintf("run crosses wall %q without an aligned opening", pw.Wall.ID),
						WallID:  pw.Wall.ID,
					})
				}
			}
		}
	}
	return found
}

func collectRuns(plan *floorplan.ResolvedPlan) []floorplan.ResolvedRun {
	var runs []floorplan.ResolvedRun
	if plan.Electrical != nil {
		runs = append(runs, plan.Electrical.Runs...)
	}
	if plan.Plumbing != nil {
		runs = append(runs, plan.Plumbing.SupplyRuns...)
		runs = append(runs, plan.Plumbing.DrainRuns...)
	}
	return runs
}

// segmentCrossesWall does an AABB pre-test, then a cross-product side
// test of the wall rect's four corners against the segment's line.
// Degenerate/colinear cases fall back to the AABB result (a
// conservative warning, not silence), and crossings that land inside
// any of the wall's own opening gaps are excluded.
func segmentCrossesWall(seg geometry.LineSegment, wall *floorplan.ResolvedWall) bool {
	segMinX, segMaxX := minMax(seg.Start.X, seg.End.X)
	segMinY, segMaxY := minMax(seg.Start.Y, seg.End.Y)
	r := wall.Rect
	if segMaxX < r.Left() || segMinX > r.Right() || segMaxY < r.Bottom() || segMinY > r.Top() {
		return false
	}

	corners := []geometry.Point{
		{X: r.Left(), Y: r.Bottom()}, {X: r.Right(), Y: r.Bottom()},
		{X: r.Right(), Y: r.Top()}, {X: r.Left(), Y: r.Top()},
	}
	dx := seg.End.X - seg.Start.X
	dy := seg.End.Y - seg.Start.Y

	var pos, neg bool
	for _, c := range corners {
		cross := dx*(c.Y-seg.Start.Y) - dy*(c.X-seg.Start.X)
		if cross > geometry.LengthEpsilon {
			pos = true
		} else if cross < -geometry.LengthEpsilon {
			neg = true
		}
	}
	// Corners on both sides of the segment's line means it actually
	// crosses the rect, and all corners strictly on one side means it
	// misses. When no corner is off the line (degenerate/colinear,
	// pos and neg both false) the AABB overlap already confirmed stands.
	crosses := (pos && neg) || (!pos && !neg)
	if !crosses {
		return false
	}
	return !crossesAtOpening(seg, wall)
}

func minMax(a, b float64) (float64, float64) {
	if a < b {
		return a, b
	}
	return b, a
}

func crossesAtOpening(seg geometry.LineSegment, wall *floorplan.ResolvedWall) bool {
	along := seg.Start.X
	if !wall.Direction.IsHorizontal() {
		along = seg.Start.Y
	}
	for _, o := range wall.Openings {
		if along >= o.AlongAxisStart-geometry.LengthEpsilon && along <= o.AlongAxisEnd+geometry.LengthEpsilon {
			return true
		}
	}
	return false
}

func checkOpeningInExtensionGap(plan *floorplan.ResolvedPlan) []issue {
	var found []issue
	for _, room := range plan.Rooms {
		for _, ext := range room.Extensions {
			parentWall := room.WallOf(ext.ParentWall)
			if parentWall == nil {
				continue
			}
			for _, o := range parentWall.Openings {
				if o.AlongAxisStart < ext.Gap.GapEnd-geometry.LengthEpsilon && ext.Gap.GapStart < o.AlongAxisEnd-geometry.LengthEpsilon {
					found = append(found, issue{
						Message: fmt.Sprintf("opening %q on wall %q falls inside extension %q's gap", o.ID, parentWall.ID, ext.ID),
						RoomID:  room.ID,
						WallID:  parentWall.ID,
					})
				}
			}
		}
	}
	return found
}

func checkSealedEnclosure(plan *floorplan.ResolvedPlan) []issue {
	var found []issue
	for _, room := range plan.Rooms {
		for _, enc := range room.Enclosures {
			count := 0
			for _, w := range enc.Walls {
				count += len(w.Openings)
			}
			if count == 0 {
				found = append(found, issue{
					Message: fmt.Sprintf("enclosure %q has no openings", enc.ID),
					RoomID:  room.ID,
				})
			}
		}
	}
	return found
}

func checkSealedExtension(plan *floorplan.ResolvedPlan) []issue {
	var found []issue
	for _, room := range plan.Rooms {
		for _, ext := range room.Extensions {
			count := 0
			for _, w := range ext.Walls {
				count += len(w.Openings)
			}
			if count == 0 {
				found = append(found, issue{
					Message: fmt.Sprintf("extension %q has no openings", ext.ID),
					RoomID:  room.ID,
				})
			}
		}
	}
	return found
}
