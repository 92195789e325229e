// Package extension resolves outward projections off a room's wall
// (spec §4.D): an extension claims a span of the parent wall, carves
// that span out as a WallGap, and grows its own three exterior walls,
// the far one of which is extended to close the new corners.
package extension

import (
	"github.com/xiiisorate/floorscript/internal/ferrors"
	"github.com/xiiisorate/floorscript/pkg/dimension"
	"github.com/xiiisorate/floorscript/pkg/floorplan"
	"github.com/xiiisorate/floorscript/pkg/geometry"
	"github.com/xiiisorate/floorscript/pkg/opening"
	"github.com/xiiisorate/floorscript/pkg/wallgraph"
)

// Resolve builds one room's extensions. parentWalls is the room's own
// four ResolvedWalls (already built by wallgeom.Resolve), used to read
// the parent wall's length and interior-start offset. seenIDs
// accumulates ids across both extensions and enclosures for the
// per-room uniqueness check.
func Resolve(roomID string, bounds geometry.Rect, configs []floorplan.ExtensionConfig, parentWalls map[geometry.Direction]*floorplan.ResolvedWall, units dimension.Units, seenIDs map[string]bool) ([]*floorplan.ResolvedExtension, error) {
	var result []*floorplan.ResolvedExtension

	for _, cfg := range configs {
		if seenIDs[cfg.ID] {
			return nil, ferrors.DuplicateExtensionID(roomID, cfg.ID)
		}
		seenIDs[cfg.ID] = true

		parentWall := parentWalls[cfg.ParentWall]
		parentWallLength := parentWall.InteriorLength

		width, err := dimension.Parse(cfg.Width, units)
		if err != nil {
			return nil, err
		}
		depth, err := dimension.Parse(cfg.Depth, units)
		if err != nil {
			return nil, err
		}

		var posAlongWall float64
		if cfg.From != "" {
			offset := 0.0
			if cfg.Offset != nil {
				offset, err = dimension.Parse(cfg.Offset, units)
				if err != nil {
					return nil, err
				}
			}
			posAlongWall = opening.ResolveFromOffset(cfg.From, offset, nil, parentWallLength, width)
		} else if cfg.Offset != nil {
			posAlongWall, err = dimension.Parse(cfg.Offset, units)
			if err != nil {
				return nil, err
			}
		}

		if posAlongWall < -geometry.LengthEpsilon || posAlongWall+width > parentWallLength+geometry.LengthEpsilon {
			return nil, ferrors.ExtensionOutOfBounds(cfg.ID, posAlongWall, width, parentWallLength)
		}

		extBounds := boundsFor(cfg.ParentWall, bounds, posAlongWall, width, depth)

		extWalls, err := buildExtensionWalls(cfg, extBounds, units)
		if err != nil {
			return nil, err
		}

		for dir, wallCfg := range cfg.Walls {
			w, ok := extWalls[dir]
			if !ok {
				continue
			}
			if err := opening.Resolve(w, wallCfg.Openings, units); err != nil {
				return nil, err
			}
		}

		axisOrigin := parentWall.Rect.Y
		if cfg.ParentWall.IsHorizontal() {
			axisOrigin = parentWall.Rect.X
		}
		gapStart := axisOrigin + parentWall.InteriorStartOffset + posAlongWall

		result = append(result, &floorplan.ResolvedExtension{
			ID:           cfg.ID,
			Label:        cfg.Label,
			ParentRoomID: roomID,
			ParentWall:   cfg.ParentWall,
			Bounds:       extBounds,
			Walls:        extWalls,
			Gap:          floorplan.WallGap{GapStart: gapStart, GapEnd: gapStart + width},
		})
	}

	return result, nil
}

func boundsFor(parentWall geometry.Direction, bounds geometry.Rect, pos, width, depth float64) geometry.Rect {
	switch parentWall {
	case geometry.North:
		return geometry.Rect{X: bounds.X + pos, Y: bounds.Y + bounds.Height, Width: width, Height: depth}
	case geometry.South:
		return geometry.Rect{X: bounds.X + pos, Y: bounds.Y - depth, Width: width, Height: depth}
	case geometry.East:
		return geometry.Rect{X: bounds.X + bounds.Width, Y: bounds.Y + pos, Width: depth, Height: width}
	default: // West
		return geometry.Rect{X: bounds.X - depth, Y: bounds.Y + pos, Width: depth, Height: width}
	}
}

// buildExtensionWalls builds the extension's own three walls: closed
// exterior walls on every side but the one opposite the parent wall
// (that side stays open, merging into the parent wall's gap). Among
// them, the far wall (same direction as the parent wall) has a rect
// extended on both perpendicular sides by the extension's own
// exterior thickness, closing its corners against the three
// perpendicular walls.
func buildExtensionWalls(cfg floorplan.ExtensionConfig, bounds geometry.Rect, units dimension.Units) (map[geometry.Direction]*floorplan.ResolvedWall, error) {
	open := cfg.ParentWall.Opposite()
	far := cfg.ParentWall

	built := make([]geometry.Direction, 0, 3)
	types := make(map[geometry.Direction]floorplan.WallType, 3)
	compositions := make(map[geometry.Direction]floorplan.WallComposition, 3)

	for _, dir := range geometry.Directions {
		if dir == open {
			continue
		}
		built = append(built, dir)

		wallCfg := cfg.Walls[dir]
		wallType := floorplan.WallExterior
		if wallCfg.Type != "" {
			wallType = wallCfg.Type
		}
		types[dir] = wallType

		var explicit *float64
		if wallCfg.Thickness != nil {
			t, err := dimension.Parse(wallCfg.Thickness, units)
			if err != nil {
				return nil, err
			}
			explicit = &t
		}
		compositions[dir] = wallgraph.ResolveComposition(wallType, explicit, units)
	}

	// The far wall extends past its interior bounds by the thickness of
	// its own two perpendicular walls, exactly like a room's horizontal
	// walls extend past its verticals (§4.B). Both perpendicular walls
	// always exist: the only direction missing is `open`, the opposite
	// of the parent/far wall.
	var perpLoT, perpHiT float64
	if far.IsHorizontal() {
		perpLoT = compositions[geometry.West].TotalThickness
		perpHiT = compositions[geometry.East].TotalThickness
	} else {
		perpLoT = compositions[geometry.South].TotalThickness
		perpHiT = compositions[geometry.North].TotalThickness
	}

	walls := make(map[geometry.Direction]*floorplan.ResolvedWall, 3)

	for _, dir := range built {
		t := compositions[dir].TotalThickness
		wallType := types[dir]
		isFar := dir == far

		lineWeight := 0.5
		if wallType == floorplan.WallExterior {
			lineWeight = 0.7
		}

		var rect geometry.Rect
		var outerEdge, innerEdge, interiorStartOffset, interiorLength float64

		switch dir {
		case geometry.South:
			loT, hiT := 0.0, 0.0
			if isFar {
				loT, hiT = perpLoT, perpHiT
			}
			rect = geometry.Rect{X: bounds.X - loT, Y: bounds.Y - t, Width: bounds.Width + loT + hiT, Height: t}
			outerEdge, innerEdge = bounds.Y-t, bounds.Y
			interiorStartOffset = loT
			interiorLength = bounds.Width
		case geometry.North:
			loT, hiT := 0.0, 0.0
			if isFar {
				loT, hiT = perpLoT, perpHiT
			}
			rect = geometry.Rect{X: bounds.X - loT, Y: bounds.Y + bounds.Height, Width: bounds.Width + loT + hiT, Height: t}
			outerEdge, innerEdge = bounds.Y+bounds.Height+t, bounds.Y+bounds.Height
			interiorStartOffset = loT
			interiorLength = bounds.Width
		case geometry.West:
			loT, hiT := 0.0, 0.0
			if isFar {
				loT, hiT = perpLoT, perpHiT
			}
			rect = geometry.Rect{X: bounds.X - t, Y: bounds.Y - loT, Width: t, Height: bounds.Height + loT + hiT}
			outerEdge, innerEdge = bounds.X-t, bounds.X
			interiorStartOffset = loT
			interiorLength = bounds.Height
		case geometry.East:
			loT, hiT := 0.0, 0.0
			if isFar {
				loT, hiT = perpLoT, perpHiT
			}
			rect = geometry.Rect{X: bounds.X + bounds.Width, Y: bounds.Y - loT, Width: t, Height: bounds.Height + loT + hiT}
			outerEdge, innerEdge = bounds.X+bounds.Width+t, bounds.X+bounds.Width
			interiorStartOffset = loT
			interiorLength = bounds.Height
		}

		walls[dir] = &floorplan.ResolvedWall{
			ID:                  cfg.ID + "." + string(dir),
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
