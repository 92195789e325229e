// Package plumbing resolves an authored plumbing block (spec §4.J),
// analogous to electrical but with wall-relative fixture positioning
// measured from a wall's inner face, and runs that may reference
// fixture ids or wall references instead of an explicit polyline.
package plumbing

import (
	"github.com/xiiisorate/floorscript/internal/ferrors"
	"github.com/xiiisorate/floorscript/pkg/dimension"
	"github.com/xiiisorate/floorscript/pkg/floorplan"
	"github.com/xiiisorate/floorscript/pkg/geometry"
)

// Resolve builds the plan's ResolvedPlumbing layer. cfg may be nil.
func Resolve(cfg *floorplan.PlumbingConfig, graph *floorplan.WallGraph, units dimension.Units) (*floorplan.ResolvedPlumbing, error) {
	if cfg == nil {
		return nil, nil
	}

	result := &floorplan.ResolvedPlumbing{}
	fixturePos := make(map[string]geometry.Point, len(cfg.Fixtures))

	for _, f := range cfg.Fixtures {
		pos, err := fixturePosition(f, graph, units)
		if err != nil {
			return nil, err
		}
		fixturePos[f.ID] = pos
		result.Fixtures = append(result.Fixtures, floorplan.ResolvedPointElement{ID: f.ID, Type: f.Type, Position: pos})
	}

	supply, err := resolveRuns(cfg.SupplyRuns, fixturePos, graph, units)
	if err != nil {
		return nil, err
	}
	result.SupplyRuns = supply

	drain, err := resolveRuns(cfg.DrainRuns, fixturePos, graph, units)
	if err != nil {
		return nil, err
	}
	result.DrainRuns = drain

	for _, v := range cfg.Valves {
		pos, err := parsePoint(v.Position, units)
		if err != nil {
			return nil, err
		}
		result.Valves = append(result.Valves, floorplan.ResolvedPointElement{ID: v.ID, Type: v.Type, Position: pos})
	}

	for _, h := range cfg.WaterHeaters {
		pos, err := parsePoint(h.Position, units)
		if err != nil {
			return nil, err
		}
		result.WaterHeaters = append(result.WaterHeaters, floorplan.ResolvedPointElement{ID: h.ID, Type: h.Type, Position: pos})
	}

	return result, nil
}

// fixturePosition resolves either the legacy absolute `position` form
// or the wall-relative `wall`/`offset` form (distance from the wall's
// inner face into the room).
func fixturePosition(f floorplan.PlumbingFixtureConfig, graph *floorplan.WallGraph, units dimension.Units) (geometry.Point, error) {
	if f.Wall != "" {
		offset := 0.0
		if f.Offset != nil {
			o, err := dimension.Parse(f.Offset, units)
			if err != nil {
				return geometry.Point{}, err
			}
			offset = o
		}
		return innerFaceOffset(f.Wall, offset, graph)
	}
	return parsePoint(f.Position, units)
}

// innerFaceOffset resolves a wall reference plus an inward offset to
// an absolute point. The wall's own along-axis midpoint is used for
// the position along the wall; offset moves perpendicular to it, into
// the room, per the direction table in §4.J.
func innerFaceOffset(ref string, offset float64, graph *floorplan.WallGraph) (geometry.Point, error) {
	pw, err := graph.FindByID(ref)
	if err != nil {
		return geometry.Point{}, err
	}
	wall := pw.Wall
	midAlong := wall.InteriorStartOffset + wall.InteriorLength/2

	switch wall.Direction {
	case geometry.South:
		return geometry.Point{X: wall.Rect.X + midAlong, Y: wall.InnerEdge + offset}, nil
	case geometry.North:
		return geometry.Point{X: wall.Rect.X + midAlong, Y: wall.InnerEdge - offset}, nil
	case geometry.West:
		return geometry.Point{X: wall.InnerEdge + offset, Y: wall.Rect.Y + midAlong}, nil
	default: // East
		return geometry.Point{X: wall.InnerEdge - offset, Y: wall.Rect.Y + midAlong}, nil
	}
}

func resolveRuns(cfgs []floorplan.PlumbingRunConfig, fixturePos map[string]geometry.Point, graph *floorplan.WallGraph, units dimension.Units) ([]floorplan.ResolvedRun, error) {
	var runs []floorplan.ResolvedRun
	for _, cfg := range cfgs {
		var path []geometry.Point

		if len(cfg.Path) > 0 {
			p, err := parsePath(cfg.Path, units)
			if err != nil {
				return nil, err
			}
			path = p
		} else {
			from, err := resolveEndpoint(cfg.From, fixturePos, graph, units)
			if err != nil {
				return nil, err
			}
			to, err := resolveEndpoint(cfg.To, fixturePos, graph, units)
			if err != nil {
				return nil, err
			}
			path = []geometry.Point{from, to}
		}

		style := cfg.Style
		if style == "" {
			style = floorplan.RunSolid
		}
		runs = append(runs, floorplan.ResolvedRun{Path: path, Circuit: cfg.Circuit, Style: style})
	}
	return runs, nil
}

func resolveEndpoint(ep *floorplan.PlumbingEndpointConfig, fixturePos map[string]geometry.Point, graph *floorplan.WallGraph, units dimension.Units) (geometry.Point, error) {
	if ep == nil {
		return geometry.Point{}, nil
	}
	if ep.Point != nil {
		return parsePoint(*ep.Point, units)
	}
	if ep.Fixture != "" {
		pos, ok := fixturePos[ep.Fixture]
		if !ok {
			return geometry.Point{}, ferrors.UnknownFixture(ep.Fixture)
		}
		return pos, nil
	}
	if ep.Wall != "" {
		offset := 0.0
		if ep.Offset != nil {
			o, err := dimension.Parse(ep.Offset, units)
			if err != nil {
				return geometry.Point{}, err
			}
			offset = o
		}
		return innerFaceOffset(ep.Wall, offset, graph)
	}
	return geometry.Point{}, nil
}

func parsePoint(raw any, units dimension.Units) (geometry.Point, error) {
	pair, ok := raw.([2]any)
	if !ok {
		if arr, ok2 := raw.([]any); ok2 && len(arr) == 2 {
			pair = [2]any{arr[0], arr[1]}
		}
	}
	x, err := dimension.Parse(pair[0], units)
	if err != nil {
		return geometry.Point{}, err
	}
	y, err := dimension.Parse(pair[1], units)
	if err != nil {
		return geometry.Point{}, err
	}
	return geometry.Point{X: x, Y: y}, nil
}

func parsePath(raw [][2]any, units dimension.Units) ([]geometry.Point, error) {
	path := make([]geometry.Point, 0, len(raw))
	for _, p := range raw {
		x, err := dimension.Parse(p[0], units)
		if err != nil {
			return nil, err
		}
		y, err := dimension.Parse(p[1], units)
		if err != nil {
			return nil, err
		}
		path = append(path, geometry.Point{X: x, Y: y})
	}
	return path, nil
}
