// Package autodim auto-generates width/height dimension lines for
// each room (spec §4.K), flipping sides when a neighboring room would
// otherwise collide with the dimension lane, and deduplicating edges
// shared between adjacent rooms.
package autodim

import (
	"fmt"
	"math"

	"github.com/xiiisorate/floorscript/pkg/dimension"
	"github.com/xiiisorate/floorscript/pkg/floorplan"
	"github.com/xiiisorate/floorscript/pkg/geometry"
)

const (
	offsetImperial  = 2.0
	offsetMetric    = 0.6
	maxGap          = 1.0
	feetToMeters    = 0.3048
)

// Generate builds the plan's dimension list, in room-iteration order
// with dedup-by-first-seen on the edge key.
func Generate(rooms []*floorplan.ResolvedRoom, units dimension.Units) []floorplan.ResolvedDimension {
	offset := offsetImperial
	metersPerUnit := feetToMeters
	if units == dimension.Metric {
		offset = offsetMetric
		metersPerUnit = 1
	}

	seen := make(map[string]bool)
	var dims []floorplan.ResolvedDimension

	for _, room := range rooms {
		b := room.Bounds

		southNeighbor := hasNeighbor(room, rooms, b.Left(), b.Right(), b.Bottom(), false)
		widthSide := "south"
		if southNeighbor {
			widthSide = "north"
		}
		if d, key := widthDimension(room, widthSide, offset, metersPerUnit); addIfNew(seen, key) {
			dims = append(dims, d)
		}

		westNeighbor := hasNeighbor(room, rooms, b.Bottom(), b.Top(), b.Left(), true)
		heightSide := "west"
		if westNeighbor {
			heightSide = "east"
		}
		if d, key := heightDimension(room, heightSide, offset, metersPerUnit); addIfNew(seen, key) {
			dims = append(dims, d)
		}
	}

	return dims
}

func addIfNew(seen map[string]bool, key string) bool {
	if seen[key] {
		return false
	}
	seen[key] = true
	return true
}

// hasNeighbor reports whether some other room's facing edge sits
// within maxGap of edgeCoord, overlapping [rangeLo, rangeHi] on the
// perpendicular axis. vertical selects whether edgeCoord is measured
// on the x-axis (true, for west/east neighbor checks) or y-axis.
func hasNeighbor(room *floorplan.ResolvedRoom, rooms []*floorplan.ResolvedRoom, rangeLo, rangeHi, edgeCoord float64, vertical bool) bool {
	for _, other := range rooms {
		if other.ID == room.ID {
			continue
		}
		b := other.Bounds

		var otherEdge, otherLo, otherHi float64
		if vertical {
			// looking for a room to the west: its east edge near room's west edge
			otherEdge = b.Right()
			otherLo, otherHi = b.Bottom(), b.Top()
		} else {
			// looking for a room to the south: its north edge near room's south edge
			otherEdge = b.Top()
			otherLo, otherHi = b.Left(), b.Right()
		}

		gap := edgeCoord - otherEdge
		if math.Abs(gap) > maxGap {
			continue
		}
		if otherHi < rangeLo-geometry.NeighborEpsilon || otherLo > rangeHi+geometry.NeighborEpsilon {
			continue
		}
		return true
	}
	return false
}

func widthDimension(room *floorplan.ResolvedRoom, side string, offset, metersPerUnit float64) (floorplan.ResolvedDimension, string) {
	b := room.Bounds
	var perp float64
	if side == "south" {
		perp = b.Bottom() - offset
	} else {
		perp = b.Top() + offset
	}
	from := geometry.Point{X: b.Left(), Y: perp}
	to := geometry.Point{X: b.Right(), Y: perp}
	key := edgeKey("horizontal", b.Left(), b.Right(), perp, metersPerUnit)
	return floorplan.ResolvedDimension{
		From: from, To: to, Offset: offset,
		Label:       formatLength(b.Width),
		Orientation: "horizontal",
	}, key
}

func heightDimension(room *floorplan.ResolvedRoom, side string, offset, metersPerUnit float64) (floorplan.ResolvedDimension, string) {
	b := room.Bounds
	var perp float64
	if side == "west" {
		perp = b.Left() - offset
	} else {
		perp = b.Right() + offset
	}
	from := geometry.Point{X: perp, Y: b.Bottom()}
	to := geometry.Point{X: perp, Y: b.Top()}
	key := edgeKey("vertical", b.Bottom(), b.Top(), perp, metersPerUnit)
	return floorplan.ResolvedDimension{
		From: from, To: to, Offset: offset,
		Label:       formatLength(b.Height),
		Orientation: "vertical",
	}, key
}

func edgeKey(orientation string, start, end, perpendicular, metersPerUnit float64) string {
	return fmt.Sprintf("%s:%d-%d@%d", orientation,
		geometry.RoundToMillimeter(start, metersPerUnit), geometry.RoundToMillimeter(end, metersPerUnit), geometry.RoundToMillimeter(perpendicular, metersPerUnit))
}

func formatLength(v float64) string {
	return fmt.Sprintf("%.3f", v)
}
