// Package wallgeom synthesizes a room's four walls from its interior
// bounds and per-direction wall configuration (spec §4.B).
//
// Horizontal walls (north/south) own the building's corners: their
// rects extend past the room bounds by the thickness of the adjacent
// vertical walls, so the four wall rects tile the corners without
// gaps. Vertical walls butt into the horizontals.
package wallgeom

import (
	"github.com/xiiisorate/floorscript/pkg/dimension"
	"github.com/xiiisorate/floorscript/pkg/floorplan"
	"github.com/xiiisorate/floorscript/pkg/geometry"
	"github.com/xiiisorate/floorscript/pkg/wallgraph"
)

const (
	lineWeightExterior = 0.7
	lineWeightDefault  = 0.5
)

// Resolve builds the four ResolvedWalls for a room, keyed by
// direction; callers iterate geometry.Directions for N/S/E/W order.
// wallConfigs may be nil or partial; directions without a configured
// override default to an interior wall.
func Resolve(roomID string, wallConfigs map[geometry.Direction]floorplan.WallConfig, bounds geometry.Rect, units dimension.Units) (map[geometry.Direction]*floorplan.ResolvedWall, error) {
	types := make(map[geometry.Direction]floorplan.WallType, 4)
	compositions := make(map[geometry.Direction]floorplan.WallComposition, 4)

	for _, dir := range geometry.Directions {
		cfg, ok := wallConfigs[dir]
		wallType := floorplan.WallInterior
		if ok && cfg.Type != "" {
			wallType = cfg.Type
		}
		types[dir] = wallType

		var explicit *float64
		if ok && cfg.Thickness != nil {
			t, err := dimension.Parse(cfg.Thickness, units)
			if err != nil {
				return nil, err
			}
			explicit = &t
		}
		compositions[dir] = wallgraph.ResolveComposition(wallType, explicit, units)
	}

	westT := compositions[geometry.West].TotalThickness
	eastT := compositions[geometry.East].TotalThickness

	walls := make(map[geometry.Direction]*floorplan.ResolvedWall, 4)
	for _, dir := range geometry.Directions {
		t := compositions[dir].TotalThickness
		wallType := types[dir]

		lineWeight := lineWeightDefault
		if wallType == floorplan.WallExterior {
			lineWeight = lineWeightExterior
		}

		var rect geometry.Rect
		var outerEdge, innerEdge, interiorStartOffset, interiorLength float64

		switch dir {
		case geometry.South:
			rect = geometry.Rect{X: bounds.X - westT, Y: bounds.Y - t, Width: bounds.Width + westT + eastT, Height: t}
			outerEdge = bounds.Y - t
			innerEdge = bounds.Y
			interiorStartOffset = westT
			interiorLength = bounds.Width
		case geometry.North:
			rect = geometry.Rect{X: bounds.X - westT, Y: bounds.Y + bounds.Height, Width: bounds.Width + westT + eastT, Height: t}
			outerEdge = bounds.Y + bounds.Height + t
			innerEdge = bounds.Y + bounds.Height
			interiorStartOffset = westT
			interiorLength = bounds.Width
		case geometry.West:
			rect = geometry.Rect{X: bounds.X - t, Y: bounds.Y, Width: t, Height: bounds.Height}
			outerEdge = bounds.X - t
			innerEdge = bounds.X
			interiorStartOffset = 0
			interiorLength = bounds.Height
		case geometry.East:
			rect = geometry.Rect{X: bounds.X + bounds.Width, Y: bounds.Y, Width: t, Height: bounds.Height}
			outerEdge = bounds.X + bounds.Width + t
			innerEdge = bounds.X + bounds.Width
			interiorStartOffset = 0
			interiorLength = bounds.Height
		}

		walls[dir] = &floorplan.ResolvedWall{
			ID:                  roomID + "." + string(dir),
			Direction:           dir,
			Type:                wallType,
			Composition:         compositions[dir],
			Thickness:           t,
			LineWeight:          lineWeight,
			Rect:                rect,
			OuterEdge:           outerEdge,
			InnerEdge:           innerEdge,
			InteriorStartOffset: interiorStartOffset,
			InteriorLength:      interiorLength,
		}
	}

	return walls, nil
}
