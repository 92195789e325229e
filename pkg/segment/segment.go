// Package segment slices a wall's rectangle into the sub-rectangles
// that remain once its openings and any sub-space gaps are cut away
// (spec §4.F). This is the single place that chooses the long axis
// for a wall, horizontal or vertical.
package segment

import (
	"sort"

	"github.com/xiiisorate/floorscript/pkg/floorplan"
	"github.com/xiiisorate/floorscript/pkg/geometry"
)

// Slice partitions rect along dir's long axis, removing the union of
// gaps, and returns the remaining sub-rectangles in axis order.
// Segments shorter than geometry.LengthEpsilon are dropped.
func Slice(rect geometry.Rect, dir geometry.Direction, gaps []floorplan.WallGap) []geometry.Rect {
	horizontal := dir.IsHorizontal()

	axisStart, axisEnd := rect.X, rect.Right()
	if !horizontal {
		axisStart, axisEnd = rect.Y, rect.Top()
	}

	merged := mergeGaps(gaps, axisStart, axisEnd)

	var result []geometry.Rect
	cursor := axisStart
	for _, g := range merged {
		if g.GapStart-cursor > geometry.LengthEpsilon {
			result = append(result, sliceRect(rect, horizontal, cursor, g.GapStart))
		}
		if g.GapEnd > cursor {
			cursor = g.GapEnd
		}
	}
	if axisEnd-cursor > geometry.LengthEpsilon {
		result = append(result, sliceRect(rect, horizontal, cursor, axisEnd))
	}

	return result
}

func sliceRect(rect geometry.Rect, horizontal bool, lo, hi float64) geometry.Rect {
	if horizontal {
		return geometry.Rect{X: lo, Y: rect.Y, Width: hi - lo, Height: rect.Height}
	}
	return geometry.Rect{X: rect.X, Y: lo, Width: rect.Width, Height: hi - lo}
}

// mergeGaps clips gaps to [axisStart, axisEnd], sorts by start, and
// coalesces overlapping/adjacent spans so the sweep below never
// double-counts a removed region.
func mergeGaps(gaps []floorplan.WallGap, axisStart, axisEnd float64) []floorplan.WallGap {
	clipped := make([]floorplan.WallGap, 0, len(gaps))
	for _, g := range gaps {
		start, end := g.GapStart, g.GapEnd
		if start < axisStart {
			start = axisStart
		}
		if end > axisEnd {
			end = axisEnd
		}
		if end-start > geometry.LengthEpsilon {
			clipped = append(clipped, floorplan.WallGap{GapStart: start, GapEnd: end})
		}
	}
	if len(clipped) == 0 {
		return clipped
	}

	sort.Slice(clipped, func(i, j int) bool { return clipped[i].GapStart < clipped[j].GapStart })

	merged := []floorplan.WallGap{clipped[0]}
	for _, g := range clipped[1:] {
		last := &merged[len(merged)-1]
		if g.GapStart <= last.GapEnd+geometry.LengthEpsilon {
			if g.GapEnd > last.GapEnd {
				last.GapEnd = g.GapEnd
			}
			continue
		}
		merged = append(merged, g)
	}
	return merged
}
