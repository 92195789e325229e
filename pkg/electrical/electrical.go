// Package electrical resolves an authored electrical block against a
// plan's wall graph (spec §4.I): wall-mounted outlets and switches
// land on a wall's centerline, fixtures and fittings use absolute
// positions, and panel/runs pass through largely unchanged.
package electrical

import (
	"strconv"

	"github.com/xiiisorate/floorscript/pkg/dimension"
	"github.com/xiiisorate/floorscript/pkg/floorplan"
	"github.com/xiiisorate/floorscript/pkg/geometry"
)

// Resolve builds the plan's ResolvedElectrical layer. cfg may be nil,
// in which case nil is returned (the layer stays entirely absent).
func Resolve(cfg *floorplan.ElectricalConfig, graph *floorplan.WallGraph, units dimension.Units) (*floorplan.ResolvedElectrical, error) {
	if cfg == nil {
		return nil, nil
	}

	result := &floorplan.ResolvedElectrical{}

	if cfg.Panel != nil {
		pos, err := parsePoint(cfg.Panel.Position, units)
		if err != nil {
			return nil, err
		}
		result.Panel = &floorplan.ResolvedPanel{Position: pos, Amps: cfg.Panel.Amps, Label: cfg.Panel.Label}
	}

	for _, o := range cfg.Outlets {
		pos, err := wallMountedPosition(o.WallMountedConfig, graph, units)
		if err != nil {
			return nil, err
		}
		result.Outlets = append(result.Outlets, floorplan.ResolvedOutlet{
			Type: o.Type, Position: pos, Wall: o.Wall, Circuit: o.Circuit,
		})
	}

	for _, s := range cfg.Switches {
		pos, err := wallMountedPosition(s.WallMountedConfig, graph, units)
		if err != nil {
			return nil, err
		}
		result.Switches = append(result.Switches, floorplan.ResolvedSwitch{
			Type: s.Type, Position: pos, Wall: s.Wall, Circuit: s.Circuit,
		})
	}

	for _, f := range cfg.Fixtures {
		pos, err := parsePoint(f.Position, units)
		if err != nil {
			return nil, err
		}
		result.Fixtures = append(result.Fixtures, floorplan.ResolvedPointElement{
			ID: f.ID, Type: f.Type, Position: pos, Circuit: f.Circuit,
		})
	}

	for _, d := range cfg.SmokeDetectors {
		pos, err := parsePoint(d.Position, units)
		if err != nil {
			return nil, err
		}
		result.SmokeDetectors = append(result.SmokeDetectors, floorplan.ResolvedPointElement{
			ID: d.ID, Type: d.Type, Position: pos,
		})
	}

	for _, r := range cfg.Runs {
		path, err := parsePath(r.Path, units)
		if err != nil {
			return nil, err
		}
		style := r.Style
		if style == "" {
			style = floorplan.RunSolid
		}
		result.Runs = append(result.Runs, floorplan.ResolvedRun{
			Path: path, Circuit: itoaCircuit(r.Circuit), Style: style,
		})
	}

	return result, nil
}

// wallMountedPosition places an outlet/switch on the wall's
// centerline: rect.origin + interiorStartOffset·axis + alongWall·axis
// + (thickness/2)·perpendicular.
func wallMountedPosition(cfg floorplan.WallMountedConfig, graph *floorplan.WallGraph, units dimension.Units) (geometry.Point, error) {
	pw, err := graph.FindByID(cfg.Wall)
	if err != nil {
		return geometry.Point{}, err
	}
	wall := pw.Wall

	alongWall, err := dimension.Parse(cfg.Position[0], units)
	if err != nil {
		return geometry.Point{}, err
	}

	perpCenter := (wall.OuterEdge + wall.InnerEdge) / 2

	if wall.Direction.IsHorizontal() {
		return geometry.Point{
			X: wall.Rect.X + wall.InteriorStartOffset + alongWall,
			Y: perpCenter,
		}, nil
	}
	return geometry.Point{
		X: perpCenter,
		Y: wall.Rect.Y + wall.InteriorStartOffset + alongWall,
	}, nil
}

func parsePoint(raw [2]any, units dimension.Units) (geometry.Point, error) {
	x, err := dimension.Parse(raw[0], units)
	if err != nil {
		return geometry.Point{}, err
	}
	y, err := dimension.Parse(raw[1], units)
	if err != nil {
		return geometry.Point{}, err
	}
	return geometry.Point{X: x, Y: y}, nil
}

func parsePath(raw [][2]any, units dimension.Units) ([]geometry.Point, error) {
	path := make([]geometry.Point, 0, len(raw))
	for _, p := range raw {
		pt, err := parsePoint(p, units)
		if err != nil {
			return nil, err
		}
		path = append(path, pt)
	}
	return path, nil
}

func itoaCircuit(circuit int) string {
	if circuit == 0 {
		return ""
	}
	return strconv.Itoa(circuit)
}
