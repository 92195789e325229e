package extension

import (
	"testing"

	"github.com/xiiisorate/floorscript/pkg/dimension"
	"github.com/xiiisorate/floorscript/pkg/floorplan"
	"github.com/xiiisorate/floorscript/pkg/geometry"
	"github.com/xiiisorate/floorscript/pkg/wallgeom"
)

func TestResolveNorthExtensionBounds(t *testing.T) {
	t.Parallel()

	bounds := geometry.Rect{X: 0, Y: 0, Width: 10, Height: 10}
	walls, err := wallgeom.Resolve("room1", nil, bounds, dimension.Imperial)
	if err != nil {
		t.Fatalf("wallgeom.Resolve returned error: %v", err)
	}

	cfgs := []floorplan.ExtensionConfig{
		{ID: "bay1", ParentWall: geometry.North, Width: 4.0, Offset: 2.0, Depth: 3.0},
	}

	exts, err := Resolve("room1", bounds, cfgs, walls, dimension.Imperial, map[string]bool{})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if len(exts) != 1 {
		t.Fatalf("expected 1 extension, got %d", len(exts))
	}

	ext := exts[0]
	if ext.Bounds.X != bounds.X+2.0 || ext.Bounds.Y != bounds.Y+bounds.Height {
		t.Errorf("extension bounds = %+v, want origin (%v, %v)", ext.Bounds, bounds.X+2.0, bounds.Y+bounds.Height)
	}
	if ext.Bounds.Width != 4.0 || ext.Bounds.Height != 3.0 {
		t.Errorf("extension bounds size = %+v, want width=4 height=3", ext.Bounds)
	}

	// Three closed walls: south (open, merges into the parent), none of
	// the extension's own walls should be the opposite of the parent.
	if _, ok := ext.Walls[geometry.South]; ok {
		t.Error("expected no south wall: it is the open side facing the parent room")
	}
	for _, dir := range []geometry.Direction{geometry.North, geometry.East, geometry.West} {
		if _, ok := ext.Walls[dir]; !ok {
			t.Errorf("expected a %s wall on the extension", dir)
		}
	}
}

func TestResolveDuplicateID(t *testing.T) {
	t.Parallel()

	bounds := geometry.Rect{X: 0, Y: 0, Width: 10, Height: 10}
	walls, _ := wallgeom.Resolve("room1", nil, bounds, dimension.Imperial)

	cfgs := []floorplan.ExtensionConfig{
		{ID: "bay1", ParentWall: geometry.North, Width: 2.0, Offset: 0, Depth: 2.0},
	}
	seen := map[string]bool{"bay1": true}

	if _, err := Resolve("room1", bounds, cfgs, walls, dimension.Imperial, seen); err == nil {
		t.Error("expected DuplicateExtensionID error")
	}
}

func TestResolveOutOfBounds(t *testing.T) {
	t.Parallel()

	bounds := geometry.Rect{X: 0, Y: 0, Width: 10, Height: 10}
	walls, _ := wallgeom.Resolve("room1", nil, bounds, dimension.Imperial)

	cfgs := []floorplan.ExtensionConfig{
		{ID: "bay1", ParentWall: geometry.North, Width: 8.0, Offset: 5.0, Depth: 2.0},
	}

	if _, err := Resolve("room1", bounds, cfgs, walls, dimension.Imperial, map[string]bool{}); err == nil {
		t.Error("expected ExtensionOutOfBounds error")
	}
}
