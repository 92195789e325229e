// Package enclosure resolves inset sub-rooms that share one of the
// parent room's walls (spec §4.E) — a closet or bath nook carved out
// of the parent's interior rather than projecting outward.
package enclosure

import (
	"github.com/xiiisorate/floorscript/internal/ferrors"
	"github.com/xiiisorate/floorscript/pkg/dimension"
	"github.com/xiiisorate/floorscript/pkg/floorplan"
	"github.com/xiiisorate/floorscript/pkg/geometry"
	"github.com/xiiisorate/floorscript/pkg/opening"
	"github.com/xiiisorate/floorscript/pkg/wallgraph"
)

// Resolve builds one room's enclosures. parentWalls is the room's own
// four ResolvedWalls. seenIDs is shared with extension.Resolve so ids
// stay unique across both sub-space kinds within the room.
func Resolve(roomID string, bounds geometry.Rect, configs []floorplan.EnclosureConfig, parentWalls map[geometry.Direction]*floorplan.ResolvedWall, units dimension.Units, seenIDs map[string]bool) ([]*floorplan.ResolvedEnclosure, error) {
	var result []*floorplan.ResolvedEnclosure

	for _, cfg := range configs {
		if seenIDs[cfg.ID] {
			return nil, ferrors.DuplicateExtensionID(roomID, cfg.ID)
		}
		seenIDs[cfg.ID] = true

		facingWall := parentWalls[cfg.Facing]
		wallLength := facingWall.InteriorLength

		offset, err := dimension.Parse(cfg.Offset, units)
		if err != nil {
			return nil, err
		}
		width, err := dimension.Parse(cfg.Width, units)
		if err != nil {
			return nil, err
		}
		depth, err := dimension.Parse(cfg.Depth, units)
		if err != nil {
			return nil, err
		}

		if offset < -geometry.LengthEpsilon || offset+width > wallLength+geometry.LengthEpsilon {
			return nil, ferrors.ExtensionOutOfBounds(cfg.ID, offset, width, wallLength)
		}

		encBounds := boundsFor(cfg.Facing, bounds, offset, width, depth)

		encWalls, err := buildEnclosureWalls(cfg, encBounds, units)
		if err != nil {
			return nil, err
		}

		result = append(result, &floorplan.ResolvedEnclosure{
			ID:           cfg.ID,
			Label:        cfg.Label,
			ParentRoomID: roomID,
			Bounds:       encBounds,
			Facing:       cfg.Facing,
			Walls:        encWalls,
		})
	}

	return result, nil
}

// boundsFor places the enclosure inset from the facing wall's inner
// face, spanning `width` along the wall and `depth` into the room.
func boundsFor(facing geometry.Direction, bounds geometry.Rect, offset, width, depth float64) geometry.Rect {
	switch facing {
	case geometry.North:
		return geometry.Rect{X: bounds.X + offset, Y: bounds.Y + bounds.Height - depth, Width: width, Height: depth}
	case geometry.South:
		return geometry.Rect{X: bounds.X + offset, Y: bounds.Y, Width: width, Height: depth}
	case geometry.East:
		return geometry.Rect{X: bounds.X + bounds.Width - depth, Y: bounds.Y + offset, Width: depth, Height: width}
	default: // West
		return geometry.Rect{X: bounds.X, Y: bounds.Y + offset, Width: depth, Height: width}
	}
}

// buildEnclosureWalls builds the enclosure's four walls. The wall
// facing the parent's facing direction is coincident with the
// parent's interior face rather than an independent framed wall: it
// carries zero thickness and is tagged so the wall graph attributes
// it to the enclosure sub-space without double-framing the parent.
func buildEnclosureWalls(cfg floorplan.EnclosureConfig, bounds geometry.Rect, units dimension.Units) (map[geometry.Direction]*floorplan.ResolvedWall, error) {
	walls := make(map[geometry.Direction]*floorplan.ResolvedWall, 4)

	for _, dir := range geometry.Directions {
		coincident := dir == cfg.Facing

		wallType := floorplan.WallInterior
		var t float64
		var composition floorplan.WallComposition
		if !coincident {
			composition = wallgraph.ResolveComposition(wallType, nil, units)
			t = composition.TotalThickness
		}

		var rect geometry.Rect
		var outerEdge, innerEdge, interiorLength float64

		switch dir {
		case geometry.South:
			rect = geometry.Rect{X: bounds.X, Y: bounds.Y - t, Width: bounds.Width, Height: t}
			outerEdge, innerEdge = bounds.Y-t, bounds.Y
			interiorLength = bounds.Width
		case geometry.North:
			rect = geometry.Rect{X: bounds.X, Y: bounds.Y + bounds.Height, Width: bounds.Width, Height: t}
			outerEdge, innerEdge = bounds.Y+bounds.Height+t, bounds.Y+bounds.Height
			interiorLength = bounds.Width
		case geometry.West:
			rect = geometry.Rect{X: bounds.X - t, Y: bounds.Y, Width: t, Height: bounds.Height}
			outerEdge, innerEdge = bounds.X-t, bounds.X
			interiorLength = bounds.Height
		case geometry.East:
			rect = geometry.Rect{X: bounds.X + bounds.Width, Y: bounds.Y, Width: t, Height: bounds.Height}
			outerEdge, innerEdge = bounds.X+bounds.Width+t, bounds.X+bounds.Width
			interiorLength = bounds.Height
		}

		w := &floorplan.ResolvedWall{
			ID:             cfg.ID + "." + string(dir),
			Direction:      dir,
			Type:           wallType,
			Composition:    composition,
			Thickness:      t,
			LineWeight:     0.5,
			Rect:           rect,
			OuterEdge:      outerEdge,
			InnerEdge:      innerEdge,
			InteriorLength: interiorLength,
		}
		walls[dir] = w

		if wallCfg, ok := cfg.Walls[dir]; ok && len(wallCfg.Openings) > 0 {
			if err := opening.Resolve(w, wallCfg.Openings, units); err != nil {
				return nil, err
			}
		}
	}

	return walls, nil
}
