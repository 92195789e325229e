package floorplan

import (
	"strings"

	"github.com/google/uuid"

	"github.com/xiiisorate/floorscript/internal/ferrors"
	"github.com/xiiisorate/floorscript/pkg/dimension"
	"github.com/xiiisorate/floorscript/pkg/geometry"
)

// WallComposition is the resolved material makeup of a wall.
type WallComposition struct {
	Stud           string  `json:"stud"`
	StudWidthFt    float64 `json:"studWidthFt"`
	FinishA        float64 `json:"finishA"`
	FinishB        float64 `json:"finishB"`
	TotalThickness float64 `json:"totalThickness"`
}

// ResolvedOpening is a door or window placed along a wall.
type ResolvedOpening struct {
	ID         string             `json:"id"`
	Type       OpeningType        `json:"type"`
	Position   geometry.Point     `json:"position"`
	Width      float64            `json:"width"`
	Direction  geometry.Direction `json:"direction"`
	Thickness  float64            `json:"thickness"`
	Style      string             `json:"style,omitempty"`
	Swing      string             `json:"swing,omitempty"`
	GapStart   geometry.Point     `json:"gapStart"`
	GapEnd     geometry.Point     `json:"gapEnd"`
	Centerline geometry.LineSegment `json:"centerline"`

	// AlongAxis is the opening's span [start, end] along the wall's long
	// axis, in plan coordinates (x for north/south walls, y for
	// east/west walls).
	// Used by the segment slicer and the validator.
	AlongAxisStart float64 `json:"-"`
	AlongAxisEnd   float64 `json:"-"`
}

// ResolvedWall is a single per-room wall (one of N/S/E/W).
type ResolvedWall struct {
	ID                  string             `json:"id"`
	Direction           geometry.Direction `json:"direction"`
	Type                WallType           `json:"type"`
	Composition         WallComposition    `json:"composition"`
	Thickness           float64            `json:"thickness"`
	LineWeight          float64            `json:"lineWeight"`
	Rect                geometry.Rect      `json:"rect"`
	OuterEdge           float64            `json:"outerEdge"`
	InnerEdge           float64            `json:"innerEdge"`
	InteriorStartOffset float64            `json:"interiorStartOffset"`
	InteriorLength      float64            `json:"-"`
	Openings            []ResolvedOpening  `json:"openings"`
	Segments            []geometry.Rect    `json:"segments"`
}

// ResolvedRoom is a fully resolved room: interior bounds, its four
// walls, and any sub-spaces.
type ResolvedRoom struct {
	ID            string                         `json:"id"`
	Label         string                         `json:"label"`
	Bounds        geometry.Rect                  `json:"bounds"`
	LabelPosition geometry.Point                 `json:"labelPosition"`
	Walls         map[geometry.Direction]*ResolvedWall `json:"walls"`
	Extensions    []*ResolvedExtension           `json:"extensions,omitempty"`
	Enclosures    []*ResolvedEnclosure           `json:"enclosures,omitempty"`
}

// WallOf returns the room's wall for the given direction, or nil.
func (r *ResolvedRoom) WallOf(dir geometry.Direction) *ResolvedWall {
	if r.Walls == nil {
		return nil
	}
	return r.Walls[dir]
}

// ResolvedExtension is an outward projection off a parent room.
type ResolvedExtension struct {
	ID           string                                `json:"id"`
	Label        string                                `json:"label"`
	ParentRoomID string                                `json:"parentRoomId"`
	ParentWall   geometry.Direction                     `json:"parentWall"`
	Bounds       geometry.Rect                         `json:"bounds"`
	Walls        map[geometry.Direction]*ResolvedWall `json:"walls"`
	Gap          WallGap                               `json:"gap"`
}

// ResolvedEnclosure is an inset sub-room within a parent room.
type ResolvedEnclosure struct {
	ID           string                                `json:"id"`
	Label        string                                `json:"label"`
	ParentRoomID string                                `json:"parentRoomId"`
	Bounds       geometry.Rect                         `json:"bounds"`
	Facing       geometry.Direction                     `json:"facing"`
	Walls        map[geometry.Direction]*ResolvedWall `json:"walls"`
}

// SubSpaceSource identifies what kind of sub-space a PlanWall belongs
// to, if any.
type SubSpaceSource string

const (
	SourceRoom      SubSpaceSource = "room"
	SourceExtension SubSpaceSource = "extension"
	SourceEnclosure SubSpaceSource = "enclosure"
)

// PlanWall is the graph-merged wall: a room's wall, optionally shared
// with a second room, carrying the composition both sides agreed on.
type PlanWall struct {
	Handle uuid.UUID `json:"handle"`

	RoomID      string             `json:"roomId"`
	Direction   geometry.Direction `json:"direction"`
	RoomIDB     string             `json:"roomIdB,omitempty"`
	DirectionInB geometry.Direction `json:"directionInB,omitempty"`
	Shared      bool               `json:"shared"`

	Source    SubSpaceSource `json:"source"`
	SubSpaceID string        `json:"subSpaceId,omitempty"`

	Composition WallComposition   `json:"composition"`
	Rect        geometry.Rect     `json:"rect"`
	Wall        *ResolvedWall     `json:"wall"`
	Gaps        []WallGap         `json:"-"`
	Segments    []geometry.Rect   `json:"segments"`
}

// WallGraph is the plan-level list of PlanWalls plus lookup indices.
// byRoom and bySubSpace alias the same *PlanWall instances the list
// holds; nothing is copied.
type WallGraph struct {
	Walls      []*PlanWall
	ByRoom     map[string]map[geometry.Direction]*PlanWall
	BySubSpace map[string]map[geometry.Direction]*PlanWall
}

// NewWallGraph creates an empty graph ready for Add.
func NewWallGraph() *WallGraph {
	return &WallGraph{
		ByRoom:     make(map[string]map[geometry.Direction]*PlanWall),
		BySubSpace: make(map[string]map[geometry.Direction]*PlanWall),
	}
}

// Add appends a PlanWall and indexes it by room/sub-space.
func (g *WallGraph) Add(pw *PlanWall) {
	g.Walls = append(g.Walls, pw)

	switch pw.Source {
	case SourceRoom:
		if g.ByRoom[pw.RoomID] == nil {
			g.ByRoom[pw.RoomID] = make(map[geometry.Direction]*PlanWall)
		}
		g.ByRoom[pw.RoomID][pw.Direction] = pw
		if pw.Shared {
			if g.ByRoom[pw.RoomIDB] == nil {
				g.ByRoom[pw.RoomIDB] = make(map[geometry.Direction]*PlanWall)
			}
			g.ByRoom[pw.RoomIDB][pw.DirectionInB] = pw
		}
	default:
		if g.BySubSpace[pw.SubSpaceID] == nil {
			g.BySubSpace[pw.SubSpaceID] = make(map[geometry.Direction]*PlanWall)
		}
		g.BySubSpace[pw.SubSpaceID][pw.Direction] = pw
	}
}

// FindByID resolves a "{roomId}.{direction}" or
// "{subSpaceId}.{direction}" wall reference. The room/sub-space id is
// the substring before the *last* dot.
func (g *WallGraph) FindByID(ref string) (*PlanWall, error) {
	roomID, dir, err := SplitWallRef(ref)
	if err != nil {
		return nil, err
	}
	if byDir, ok := g.ByRoom[roomID]; ok {
		if pw, ok := byDir[dir]; ok {
			return pw, nil
		}
		return nil, ferrors.WallNotOnRoom(roomID, dir)
	}
	if byDir, ok := g.BySubSpace[roomID]; ok {
		if pw, ok := byDir[dir]; ok {
			return pw, nil
		}
		return nil, ferrors.WallNotOnRoom(roomID, dir)
	}
	return nil, ferrors.UnknownRoom(roomID)
}

// SplitWallRef splits a "{roomId}.{direction}" wall reference on the
// *last* dot, so hierarchical room ids containing dots remain
// unambiguous.
func SplitWallRef(ref string) (roomID string, dir geometry.Direction, err error) {
	idx := strings.LastIndex(ref, ".")
	if idx < 0 {
		return "", "", ferrors.MalformedWallRef(ref)
	}
	roomID = ref[:idx]
	d := geometry.Direction(ref[idx+1:])
	if !d.Valid() {
		return "", "", ferrors.InvalidWallDirection(ref, string(d))
	}
	return roomID, d, nil
}

// ResolvedDimension is an auto-generated chain dimension.
type ResolvedDimension struct {
	From        geometry.Point `json:"from"`
	To          geometry.Point `json:"to"`
	Offset      float64        `json:"offset"`
	Label       string         `json:"label"`
	Orientation string         `json:"orientation"`
}

// ResolvedElectrical is the resolved electrical layer of a plan.
type ResolvedElectrical struct {
	Panel          *ResolvedPanel    `json:"panel,omitempty"`
	Outlets        []ResolvedOutlet  `json:"outlets"`
	Switches       []ResolvedSwitch  `json:"switches"`
	Fixtures       []ResolvedPointElement `json:"fixtures"`
	SmokeDetectors []ResolvedPointElement `json:"smokeDetectors"`
	Runs           []ResolvedRun     `json:"runs"`
}

// ResolvedPanel is the resolved electrical panel.
type ResolvedPanel struct {
	Position geometry.Point `json:"position"`
	Amps     int            `json:"amps"`
	Label    string         `json:"label,omitempty"`
}

// ResolvedOutlet is a resolved wall-mounted outlet.
type ResolvedOutlet struct {
	Type     string         `json:"type"`
	Position geometry.Point `json:"position"`
	Wall     string         `json:"wall"`
	Circuit  int            `json:"circuit"`
}

// ResolvedSwitch is a resolved wall-mounted switch.
type ResolvedSwitch struct {
	Type     string         `json:"type"`
	Position geometry.Point `json:"position"`
	Wall     string         `json:"wall"`
	Circuit  int            `json:"circuit"`
}

// ResolvedPointElement is an absolute-position element (fixture,
// smoke detector, valve, water heater).
type ResolvedPointElement struct {
	ID       string         `json:"id,omitempty"`
	Type     string         `json:"type"`
	Position geometry.Point `json:"position"`
	Circuit  int            `json:"circuit,omitempty"`
}

// ResolvedRun is a resolved electrical or plumbing polyline run.
type ResolvedRun struct {
	Path    []geometry.Point `json:"path"`
	Circuit string           `json:"circuit,omitempty"`
	Style   RunStyle         `json:"style"`
}

// ResolvedPlumbing is the resolved plumbing layer of a plan.
type ResolvedPlumbing struct {
	Fixtures     []ResolvedPointElement `json:"fixtures"`
	SupplyRuns   []ResolvedRun          `json:"supplyRuns"`
	DrainRuns    []ResolvedRun          `json:"drainRuns"`
	Valves       []ResolvedPointElement `json:"valves"`
	WaterHeaters []ResolvedPointElement `json:"waterHeaters"`
}

// ResolvedPlan is the full output of the resolver pipeline for one
// plan within the document.
type ResolvedPlan struct {
	ID         string              `json:"id"`
	Title      string              `json:"title"`
	Units      dimension.Units     `json:"units"`
	ProjectTitle string            `json:"projectTitle"`
	Rooms      []*ResolvedRoom     `json:"rooms"`
	WallGraph  *WallGraph          `json:"wallGraph"`
	Dimensions []ResolvedDimension `json:"dimensions"`
	Bounds     geometry.Rect       `json:"bounds"`
	Electrical *ResolvedElectrical `json:"electrical,omitempty"`
	Plumbing   *ResolvedPlumbing   `json:"plumbing,omitempty"`
}

// RoomByID finds a room by id within the plan, or nil.
func (p *ResolvedPlan) RoomByID(id string) *ResolvedRoom {
	for _, r := range p.Rooms {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// ValidationIssue is a single lint finding.
type ValidationIssue struct {
	Code     string `json:"code"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	RoomID   string `json:"roomId,omitempty"`
	WallID   string `json:"wallId,omitempty"`
}

// ValidationResult is the validator's output: errors and warnings, in
// rule-table order, stable within each rule.
type ValidationResult struct {
	Errors   []ValidationIssue `json:"errors"`
	Warnings []ValidationIssue `json:"warnings"`
}
