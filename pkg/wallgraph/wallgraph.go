// Package wallgraph implements the plan-level wall graph builder
// (spec §4.G): wall composition defaults, shared-wall detection
// between adjacent rooms, and the PlanWall arena with its byRoom and
// bySubSpace indices.
package wallgraph

import (
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/xiiisorate/floorscript/internal/ferrors"
	"github.com/xiiisorate/floorscript/pkg/dimension"
	"github.com/xiiisorate/floorscript/pkg/floorplan"
	"github.com/xiiisorate/floorscript/pkg/geometry"
)

// Imperial stud + finish defaults, in feet.
const (
	imperialExteriorStud   = 5.5 / 12.0
	imperialInteriorStud   = 3.5 / 12.0
	imperialFinishPerSide  = 0.5 / 12.0
	metricExteriorThickness = 0.15
	metricInteriorThickness = 0.10
)

// ResolveComposition computes a wall's material makeup. explicitThickness,
// when non-nil, overrides the stud+finish math; finishA/finishB are
// recorded as 0 in that case.
func ResolveComposition(wallType floorplan.WallType, explicitThickness *float64, units dimension.Units) floorplan.WallComposition {
	if explicitThickness != nil {
		return floorplan.WallComposition{
			Stud:           "explicit",
			StudWidthFt:    *explicitThickness,
			FinishA:        0,
			FinishB:        0,
			TotalThickness: *explicitThickness,
		}
	}

	isExterior := wallType == floorplan.WallExterior

	if units == dimension.Metric {
		if isExterior {
			return floorplan.WallComposition{Stud: "exterior", StudWidthFt: metricExteriorThickness, TotalThickness: metricExteriorThickness}
		}
		return floorplan.WallComposition{Stud: "interior", StudWidthFt: metricInteriorThickness, TotalThickness: metricInteriorThickness}
	}

	if isExterior {
		stud := imperialExteriorStud
		finish := imperialFinishPerSide
		return floorplan.WallComposition{
			Stud: "2x6", StudWidthFt: stud, FinishA: finish, FinishB: finish,
			TotalThickness: stud + 2*finish,
		}
	}
	stud := imperialInteriorStud
	finish := imperialFinishPerSide
	return floorplan.WallComposition{
		Stud: "2x4", StudWidthFt: stud, FinishA: finish, FinishB: finish,
		TotalThickness: stud + 2*finish,
	}
}

// Build assembles the plan-level WallGraph: room walls are
// deduplicated when two rooms share a physical edge; extension and
// enclosure walls are appended per-room as their own sub-space
// entries. Rooms are processed in input order; within each room,
// walls follow N/S/E/W, then extensions in config order, then
// enclosures in config order — matching PlanWall construction order.
func Build(rooms []*floorplan.ResolvedRoom) (*floorplan.WallGraph, error) {
	graph := floorplan.NewWallGraph()
	sharedWith := detectSharedWalls(rooms)
	claimed := make(map[string]bool) // "roomId.direction" already emitted as partner B

	for _, room := range rooms {
		for _, dir := range geometry.Directions {
			key := room.ID + "." + string(dir)
			if claimed[key] {
				continue
			}
			wall := room.WallOf(dir)
			if wall == nil {
				continue
			}

			pw := &floorplan.PlanWall{
				Handle:      uuid.New(),
				RoomID:      room.ID,
				Direction:   dir,
				Source:      floorplan.SourceRoom,
				Composition: wall.Composition,
				Rect:        wall.Rect,
				Wall:        wall,
			}

			if partner, ok := sharedWith[key]; ok {
				partnerWall := partner.room.WallOf(partner.direction)
				if !geometry.AlmostEqual(wall.Composition.TotalThickness, partnerWall.Composition.TotalThickness, geometry.LengthEpsilon) {
					return nil, ferrors.IncompatibleSharedWall(room.ID, partner.room.ID,
						wall.Composition.TotalThickness, partnerWall.Composition.TotalThickness)
				}
				pw.RoomIDB = partner.room.ID
				pw.DirectionInB = partner.direction
				pw.Shared = true
				claimed[partner.room.ID+"."+string(partner.direction)] = true
			}

			graph.Add(pw)
		}

		for _, ext := range room.Extensions {
			for _, dir := range geometry.Directions {
				wall, ok := ext.Walls[dir]
				if !ok {
					continue
				}
				graph.Add(&floorplan.PlanWall{
					Handle:      uuid.New(),
					RoomID:      room.ID,
					Direction:   dir,
					Source:      floorplan.SourceExtension,
					SubSpaceID:  ext.ID,
					Composition: wall.Composition,
					Rect:        wall.Rect,
					Wall:        wall,
				})
			}
		}

		for _, enc := range room.Enclosures {
			for _, dir := range geometry.Directions {
				wall, ok := enc.Walls[dir]
				if !ok {
					continue
				}
				graph.Add(&floorplan.PlanWall{
					Handle:      uuid.New(),
					RoomID:      room.ID,
					Direction:   dir,
					Source:      floorplan.SourceEnclosure,
					SubSpaceID:  enc.ID,
					Composition: wall.Composition,
					Rect:        wall.Rect,
					Wall:        wall,
				})
			}
		}
	}

	return graph, nil
}

type partnerRef struct {
	room      *floorplan.ResolvedRoom
	direction geometry.Direction
}

// detectSharedWalls finds, for each room.direction wall, the single
// best-matching opposite wall on another room, keyed by
// "roomId.direction".
func detectSharedWalls(rooms []*floorplan.ResolvedRoom) map[string]partnerRef {
	result := make(map[string]partnerRef)

	for _, a := range rooms {
		for _, dir := range geometry.Directions {
			wallA := a.WallOf(dir)
			if wallA == nil {
				continue
			}
			opp := dir.Opposite()

			type candidate struct {
				room    *floorplan.ResolvedRoom
				overlap float64
			}
			var candidates []candidate

			for _, b := range rooms {
				if b.ID == a.ID {
					continue
				}
				wallB := b.WallOf(opp)
				if wallB == nil {
					continue
				}
				coincide, overlap := geometry.RectsCoincide(wallA.Rect, wallB.Rect)
				if coincide {
					candidates = append(candidates, candidate{room: b, overlap: overlap})
				}
			}
			if len(candidates) == 0 {
				continue
			}

			sort.SliceStable(candidates, func(i, j int) bool {
				if math.Abs(candidates[i].overlap-candidates[j].overlap) > geometry.LengthEpsilon {
					return candidates[i].overlap > candidates[j].overlap
				}
				return candidates[i].room.ID < candidates[j].room.ID
			})

			best := candidates[0]
			result[a.ID+"."+string(dir)] = partnerRef{room: best.room, direction: opp}
		}
	}

	return result
}
