// Package opening places doors and windows along a resolved wall
// (spec §4.C): translating an author-specified along-wall position
// into gap endpoints, a centerline, and a center point on the wall's
// material centerline.
package opening

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/xiiisorate/floorscript/pkg/dimension"
	"github.com/xiiisorate/floorscript/pkg/floorplan"
	"github.com/xiiisorate/floorscript/pkg/geometry"
)

// Resolve places each configured opening along wall, appending the
// resolved openings to wall.Openings in input order. interiorLength is
// the wall's along-axis interior span (wall.InteriorLength).
func Resolve(wall *floorplan.ResolvedWall, openings []floorplan.OpeningConfig, units dimension.Units) error {
	resolvedEnds := make(map[string]float64) // opening id -> interior-relative end, for "from" chaining

	for i, cfg := range openings {
		width, err := dimension.Parse(cfg.Width, units)
		if err != nil {
			return err
		}

		var position float64
		switch {
		case cfg.Position != nil:
			position, err = dimension.Parse(cfg.Position, units)
			if err != nil {
				return err
			}
		case cfg.From != "":
			offset := 0.0
			if cfg.Offset != nil {
				offset, err = dimension.Parse(cfg.Offset, units)
				if err != nil {
					return err
				}
			}
			position = ResolveFromOffset(cfg.From, offset, resolvedEnds, wall.InteriorLength, width)
		default:
			position = 0
		}

		resolved := buildResolvedOpening(wall, cfg, position, width, units)
		if resolved.ID == "" {
			resolved.ID = fmt.Sprintf("%s.opening%d", wall.ID, i)
		}
		wall.Openings = append(wall.Openings, resolved)
		resolvedEnds[resolved.ID] = position + width
	}

	return nil
}

// ResolveFromOffset maps a symbolic anchor ("center", "start", "end",
// or a previously-resolved opening id) plus an offset to an
// along-wall position, measured from the wall's interior start.
func ResolveFromOffset(from string, offset float64, resolvedEnds map[string]float64, wallLength, elementWidth float64) float64 {
	switch from {
	case "start":
		return offset
	case "end":
		return wallLength - elementWidth - offset
	case "center":
		return (wallLength-elementWidth)/2 + offset
	default:
		if end, ok := resolvedEnds[from]; ok {
			return end + offset
		}
		return offset
	}
}

func buildResolvedOpening(wall *floorplan.ResolvedWall, cfg floorplan.OpeningConfig, position, width float64, units dimension.Units) floorplan.ResolvedOpening {
	horizontal := wall.Direction.IsHorizontal()

	alongStart := wall.InteriorStartOffset + position
	if horizontal {
		alongStart += wall.Rect.X
	} else {
		alongStart += wall.Rect.Y
	}
	alongEnd := alongStart + width
	alongCenter := alongStart + width/2

	perpCenter := (wall.OuterEdge + wall.InnerEdge) / 2

	var gapStart, gapEnd, center geometry.Point
	var centerline geometry.LineSegment

	if horizontal {
		gapStart = geometry.Point{X: alongStart, Y: wall.OuterEdge}
		gapEnd = geometry.Point{X: alongEnd, Y: wall.OuterEdge}
		center = geometry.Point{X: alongCenter, Y: perpCenter}
		centerline = geometry.LineSegment{
			Start: geometry.Point{X: alongCenter, Y: wall.OuterEdge},
			End:   geometry.Point{X: alongCenter, Y: wall.InnerEdge},
		}
	} else {
		gapStart = geometry.Point{X: wall.OuterEdge, Y: alongStart}
		gapEnd = geometry.Point{X: wall.OuterEdge, Y: alongEnd}
		center = geometry.Point{X: perpCenter, Y: alongCenter}
		centerline = geometry.LineSegment{
			Start: geometry.Point{X: wall.OuterEdge, Y: alongCenter},
			End:   geometry.Point{X: wall.InnerEdge, Y: alongCenter},
		}
	}

	style := cfg.Style
	if cfg.Type == floorplan.OpeningDoor && style == "" {
		style = "standard"
	}

	id := ""
	if cfg.Type == floorplan.OpeningDoor {
		id = doorID(wall, cfg)
	}

	return floorplan.ResolvedOpening{
		ID:             id,
		Type:           cfg.Type,
		Position:       center,
		Width:          width,
		Direction:      wall.Direction,
		Thickness:      wall.Thickness,
		Style:          style,
		Swing:          cfg.Swing,
		GapStart:       gapStart,
		GapEnd:         gapEnd,
		Centerline:     centerline,
		AlongAxisStart: alongStart,
		AlongAxisEnd:   alongEnd,
	}
}

// doorID assigns a stable handle a later "from" reference can chain
// off of: a name-based UUID of the wall id and the door's configured
// placement, so the same input always yields the same id.
func doorID(wall *floorplan.ResolvedWall, cfg floorplan.OpeningConfig) string {
	name := fmt.Sprintf("%s|%v|%v|%v|%v", wall.ID, cfg.Position, cfg.From, cfg.Offset, cfg.Width)
	return wall.ID + ".door." + uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()[:8]
}
