// Package resolver is the layout orchestrator (spec §4.H): the single
// entry point that threads a PlanConfig through every resolver stage
// to produce a ResolvedPlan. Grounded on floorplan-service's
// service.FloorPlanService — one coordinating entry point over
// several collaborators — generalized from (repository + storage + AI
// client) to (wall geometry + extensions + enclosures + wall graph +
// electrical/plumbing + dimensions).
package resolver

import (
	"github.com/xiiisorate/floorscript/internal/obslog"
	"github.com/xiiisorate/floorscript/pkg/autodim"
	"github.com/xiiisorate/floorscript/pkg/dimension"
	"github.com/xiiisorate/floorscript/pkg/electrical"
	"github.com/xiiisorate/floorscript/pkg/enclosure"
	"github.com/xiiisorate/floorscript/pkg/extension"
	"github.com/xiiisorate/floorscript/pkg/floorplan"
	"github.com/xiiisorate/floorscript/pkg/geometry"
	"github.com/xiiisorate/floorscript/pkg/opening"
	"github.com/xiiisorate/floorscript/pkg/plumbing"
	"github.com/xiiisorate/floorscript/pkg/segment"
	"github.com/xiiisorate/floorscript/pkg/wallgeom"
	"github.com/xiiisorate/floorscript/pkg/wallgraph"
)

// Resolve runs the full pipeline for a single plan and returns its
// ResolvedPlan. log may be nil; a nil logger is treated as a no-op.
func Resolve(projectTitle string, cfg floorplan.PlanConfig, units dimension.Units, log *obslog.Logger) (*floorplan.ResolvedPlan, error) {
	if log == nil {
		log = obslog.Nop()
	}

	rooms := make([]*floorplan.ResolvedRoom, 0, len(cfg.Rooms))

	for _, roomCfg := range cfg.Rooms {
		room, err := resolveRoom(roomCfg, units)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	log.Debug("rooms resolved", obslog.Int("count", len(rooms)))

	graph, err := wallgraph.Build(rooms)
	if err != nil {
		return nil, err
	}
	log.Debug("wall graph built", obslog.Int("walls", len(graph.Walls)))

	sliceWallGraph(graph, rooms)

	var elec *floorplan.ResolvedElectrical
	if cfg.Electrical != nil {
		elec, err = electrical.Resolve(cfg.Electrical, graph, units)
		if err != nil {
			return nil, err
		}
	}

	var plumb *floorplan.ResolvedPlumbing
	if cfg.Plumbing != nil {
		plumb, err = plumbing.Resolve(cfg.Plumbing, graph, units)
		if err != nil {
			return nil, err
		}
	}

	dims := autodim.Generate(rooms, units)
	log.Debug("dimensions generated", obslog.Int("count", len(dims)))

	bounds := planBounds(rooms)

	return &floorplan.ResolvedPlan{
		ID:           cfg.ID,
		Title:        cfg.Title,
		Units:        units,
		ProjectTitle: projectTitle,
		Rooms:        rooms,
		WallGraph:    graph,
		Dimensions:   dims,
		Bounds:       bounds,
		Electrical:   elec,
		Plumbing:     plumb,
	}, nil
}

func resolveRoom(cfg floorplan.RoomConfig, units dimension.Units) (*floorplan.ResolvedRoom, error) {
	x, err := dimension.Parse(cfg.Position[0], units)
	if err != nil {
		return nil, err
	}
	y, err := dimension.Parse(cfg.Position[1], units)
	if err != nil {
		return nil, err
	}
	w, err := dimension.Parse(cfg.Width, units)
	if err != nil {
		return nil, err
	}
	h, err := dimension.Parse(cfg.Height, units)
	if err != nil {
		return nil, err
	}
	bounds := geometry.Rect{X: x, Y: y, Width: w, Height: h}

	walls, err := wallgeom.Resolve(cfg.ID, cfg.Walls, bounds, units)
	if err != nil {
		return nil, err
	}

	seenIDs := make(map[string]bool)

	extensions, err := extension.Resolve(cfg.ID, bounds, cfg.Extensions, walls, units, seenIDs)
	if err != nil {
		return nil, err
	}

	enclosures, err := enclosure.Resolve(cfg.ID, bounds, cfg.Enclosures, walls, units, seenIDs)
	if err != nil {
		return nil, err
	}

	for dir, wallCfg := range cfg.Walls {
		w := walls[dir]
		if err := opening.Resolve(w, wallCfg.Openings, units); err != nil {
			return nil, err
		}
	}

	return &floorplan.ResolvedRoom{
		ID:            cfg.ID,
		Label:         cfg.Label,
		Bounds:        bounds,
		LabelPosition: bounds.Center(),
		Walls:         walls,
		Extensions:    extensions,
		Enclosures:    enclosures,
	}, nil
}

// sliceWallGraph assigns Segments to every PlanWall: its own openings,
// plus — for a room's own wall that hosts an extension — the
// extension's gap spans.
func sliceWallGraph(graph *floorplan.WallGraph, rooms []*floorplan.ResolvedRoom) {
	gapsByWallID := make(map[string][]floorplan.WallGap)
	for _, room := range rooms {
		for _, ext := range room.Extensions {
			parentWall := room.WallOf(ext.ParentWall)
			if parentWall == nil {
				continue
			}
			gapsByWallID[parentWall.ID] = append(gapsByWallID[parentWall.ID], ext.Gap)
		}
	}

	for _, pw := range graph.Walls {
		gaps := make([]floorplan.WallGap, 0, len(pw.Wall.Openings)+1)
		for _, o := range pw.Wall.Openings {
			gaps = append(gaps, floorplan.WallGap{GapStart: o.AlongAxisStart, GapEnd: o.AlongAxisEnd})
		}
		gaps = append(gaps, gapsByWallID[pw.Wall.ID]...)

		pw.Gaps = gaps
		segments := segment.Slice(pw.Rect, pw.Direction, gaps)
		pw.Segments = segments
		pw.Wall.Segments = segments
	}
}

func planBounds(rooms []*floorplan.ResolvedRoom) geometry.Rect {
	var bounds geometry.Rect
	first := true

	union := func(r geometry.Rect) {
		if first {
			bounds = r
			first = false
			return
		}
		bounds = bounds.Union(r)
	}

	for _, room := range rooms {
		union(room.Bounds)
		for _, ext := range room.Extensions {
			union(ext.Bounds)
		}
		for _, enc := range room.Enclosures {
			union(enc.Bounds)
		}
	}

	return bounds
}
