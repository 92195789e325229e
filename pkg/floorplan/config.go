// Package floorplan holds the FloorScript data model: the configured
// (authored) shapes described in SPEC_FULL.md §3 and the resolved
// (geometric) shapes the resolver pipeline produces from them.
package floorplan

import (
	"github.com/xiiisorate/floorscript/pkg/dimension"
	"github.com/xiiisorate/floorscript/pkg/geometry"
)

// WallType drives default thickness and line-weight for a wall.
type WallType string

const (
	WallExterior     WallType = "exterior"
	WallInterior     WallType = "interior"
	WallLoadBearing  WallType = "load-bearing"
)

// OpeningType distinguishes doors from windows.
type OpeningType string

const (
	OpeningDoor   OpeningType = "door"
	OpeningWindow OpeningType = "window"
)

// RunStyle is the line style for electrical/plumbing runs.
type RunStyle string

const (
	RunSolid  RunStyle = "solid"
	RunDashed RunStyle = "dashed"
)

// Document is the top-level FloorScript configuration (§6).
type Document struct {
	Version string         `json:"version" yaml:"version"`
	Project ProjectConfig  `json:"project" yaml:"project"`
	Units   dimension.Units `json:"units" yaml:"units"`
	Plans   []PlanConfig   `json:"plans" yaml:"plans"`
}

// ProjectConfig carries project-level metadata.
type ProjectConfig struct {
	Title string `json:"title" yaml:"title"`
}

// PlanConfig is a single floor plan within the document.
type PlanConfig struct {
	ID         string             `json:"id" yaml:"id"`
	Title      string             `json:"title" yaml:"title"`
	Rooms      []RoomConfig       `json:"rooms" yaml:"rooms"`
	Electrical *ElectricalConfig  `json:"electrical,omitempty" yaml:"electrical,omitempty"`
	Plumbing   *PlumbingConfig    `json:"plumbing,omitempty" yaml:"plumbing,omitempty"`
	Layers     map[string]any     `json:"layers,omitempty" yaml:"layers,omitempty"`
}

// RoomConfig is an authored room.
type RoomConfig struct {
	ID         string                     `json:"id" yaml:"id"`
	Label      string                     `json:"label" yaml:"label"`
	Position   [2]any                     `json:"position" yaml:"position"`
	Width      any                        `json:"width" yaml:"width"`
	Height     any                        `json:"height" yaml:"height"`
	Walls      map[geometry.Direction]WallConfig `json:"walls,omitempty" yaml:"walls,omitempty"`
	Extensions []ExtensionConfig          `json:"extensions,omitempty" yaml:"extensions,omitempty"`
	Enclosures []EnclosureConfig          `json:"enclosures,omitempty" yaml:"enclosures,omitempty"`
}

// WallConfig is an authored per-direction wall override.
type WallConfig struct {
	Type      WallType        `json:"type,omitempty" yaml:"type,omitempty"`
	Thickness any             `json:"thickness,omitempty" yaml:"thickness,omitempty"`
	Openings  []OpeningConfig `json:"openings,omitempty" yaml:"openings,omitempty"`
}

// OpeningConfig is an authored door or window.
type OpeningConfig struct {
	Type     OpeningType `json:"type" yaml:"type"`
	Position any         `json:"position,omitempty" yaml:"position,omitempty"`
	From     string      `json:"from,omitempty" yaml:"from,omitempty"`
	Offset   any         `json:"offset,omitempty" yaml:"offset,omitempty"`
	Width    any         `json:"width" yaml:"width"`
	Style    string      `json:"style,omitempty" yaml:"style,omitempty"`
	Swing    string      `json:"swing,omitempty" yaml:"swing,omitempty"`
}

// ExtensionConfig is an authored outward projection off a parent wall.
type ExtensionConfig struct {
	ID         string                            `json:"id" yaml:"id"`
	Label      string                            `json:"label,omitempty" yaml:"label,omitempty"`
	ParentWall geometry.Direction                `json:"parentWall" yaml:"parentWall"`
	Width      any                               `json:"width" yaml:"width"`
	Depth      any                               `json:"depth" yaml:"depth"`
	From       string                            `json:"from,omitempty" yaml:"from,omitempty"`
	Offset     any                               `json:"offset" yaml:"offset"`
	Walls      map[geometry.Direction]WallConfig `json:"walls,omitempty" yaml:"walls,omitempty"`
}

// EnclosureConfig is an authored inset sub-room.
type EnclosureConfig struct {
	ID     string                             `json:"id" yaml:"id"`
	Label  string                             `json:"label,omitempty" yaml:"label,omitempty"`
	Facing geometry.Direction                 `json:"facing" yaml:"facing"`
	Offset any                                `json:"offset" yaml:"offset"`
	Width  any                                `json:"width" yaml:"width"`
	Depth  any                                `json:"depth" yaml:"depth"`
	Walls  map[geometry.Direction]WallConfig `json:"walls,omitempty" yaml:"walls,omitempty"`
}

// ElectricalConfig is the authored electrical block for a plan.
type ElectricalConfig struct {
	Panel          *PanelConfig     `json:"panel,omitempty" yaml:"panel,omitempty"`
	Outlets        []OutletConfig   `json:"outlets,omitempty" yaml:"outlets,omitempty"`
	Switches       []SwitchConfig   `json:"switches,omitempty" yaml:"switches,omitempty"`
	Fixtures       []FixtureConfig  `json:"fixtures,omitempty" yaml:"fixtures,omitempty"`
	SmokeDetectors []PointConfig    `json:"smokeDetectors,omitempty" yaml:"smokeDetectors,omitempty"`
	Runs           []RunConfig      `json:"runs,omitempty" yaml:"runs,omitempty"`
}

// PanelConfig is the authored electrical panel.
type PanelConfig struct {
	Position [2]any `json:"position" yaml:"position"`
	Amps     int    `json:"amps" yaml:"amps"`
	Label    string `json:"label,omitempty" yaml:"label,omitempty"`
}

// WallMountedConfig is the shared shape of outlets and switches: an
// along-wall position relative to a wall reference.
type WallMountedConfig struct {
	Type     string `json:"type" yaml:"type"`
	Wall     string `json:"wall" yaml:"wall"`
	Position [2]any `json:"position" yaml:"position"`
	Circuit  int    `json:"circuit" yaml:"circuit"`
}

// OutletConfig is an authored outlet.
type OutletConfig struct {
	WallMountedConfig `yaml:",inline"`
}

// SwitchConfig is an authored switch.
type SwitchConfig struct {
	WallMountedConfig `yaml:",inline"`
}

// PointConfig is an absolute-position element (fixture, detector).
type PointConfig struct {
	ID       string `json:"id,omitempty" yaml:"id,omitempty"`
	Type     string `json:"type" yaml:"type"`
	Position [2]any `json:"position" yaml:"position"`
}

// FixtureConfig is an authored electrical fixture.
type FixtureConfig struct {
	PointConfig `yaml:",inline"`
	Circuit     int `json:"circuit,omitempty" yaml:"circuit,omitempty"`
}

// RunConfig is an authored polyline run.
type RunConfig struct {
	Path    [][2]any `json:"path,omitempty" yaml:"path,omitempty"`
	Circuit int      `json:"circuit,omitempty" yaml:"circuit,omitempty"`
	Style   RunStyle `json:"style,omitempty" yaml:"style,omitempty"`
}

// PlumbingConfig is the authored plumbing block for a plan.
type PlumbingConfig struct {
	Fixtures     []PlumbingFixtureConfig `json:"fixtures,omitempty" yaml:"fixtures,omitempty"`
	SupplyRuns   []PlumbingRunConfig     `json:"supplyRuns,omitempty" yaml:"supplyRuns,omitempty"`
	DrainRuns    []PlumbingRunConfig     `json:"drainRuns,omitempty" yaml:"drainRuns,omitempty"`
	Valves       []PointConfig           `json:"valves,omitempty" yaml:"valves,omitempty"`
	WaterHeaters []PointConfig           `json:"waterHeaters,omitempty" yaml:"waterHeaters,omitempty"`
}

// PlumbingFixtureConfig is an authored plumbing fixture. It may be
// positioned absolutely (Position, legacy form) or wall-relative
// (Wall + Offset).
type PlumbingFixtureConfig struct {
	ID       string  `json:"id" yaml:"id"`
	Type     string  `json:"type" yaml:"type"`
	Position any     `json:"position,omitempty" yaml:"position,omitempty"`
	Wall     string  `json:"wall,omitempty" yaml:"wall,omitempty"`
	Offset   any     `json:"offset,omitempty" yaml:"offset,omitempty"`
}

// PlumbingEndpointConfig names a run endpoint: an explicit point, a
// fixture id, or a wall reference with an offset.
type PlumbingEndpointConfig struct {
	Point  *[2]any `json:"point,omitempty" yaml:"point,omitempty"`
	Fixture string `json:"fixture,omitempty" yaml:"fixture,omitempty"`
	Wall    string `json:"wall,omitempty" yaml:"wall,omitempty"`
	Offset  any    `json:"offset,omitempty" yaml:"offset,omitempty"`
}

// PlumbingRunConfig is an authored supply or drain run.
type PlumbingRunConfig struct {
	Path    [][2]any                `json:"path,omitempty" yaml:"path,omitempty"`
	From    *PlumbingEndpointConfig `json:"from,omitempty" yaml:"from,omitempty"`
	To      *PlumbingEndpointConfig `json:"to,omitempty" yaml:"to,omitempty"`
	Circuit string                  `json:"circuit,omitempty" yaml:"circuit,omitempty"`
	Style   RunStyle                `json:"style,omitempty" yaml:"style,omitempty"`
}

// WallGap is a span along a wall's long axis where material is
// absent, due to an opening or a sub-space attachment.
type WallGap struct {
	GapStart float64
	GapEnd   float64
}
