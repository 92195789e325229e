package wallgeom

import (
	"testing"

	"github.com/xiiisorate/floorscript/pkg/dimension"
	"github.com/xiiisorate/floorscript/pkg/floorplan"
	"github.com/xiiisorate/floorscript/pkg/geometry"
)

func TestResolveDefaultWalls(t *testing.T) {
	t.Parallel()

	bounds := geometry.Rect{X: 0, Y: 0, Width: 10, Height: 12}
	walls, err := Resolve("room1", nil, bounds, dimension.Imperial)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	if len(walls) != 4 {
		t.Fatalf("expected 4 walls, got %d", len(walls))
	}

	interior := walls[geometry.South].Composition
	wantT := 3.5/12.0 + 2*0.5/12.0
	if diff := interior.TotalThickness - wantT; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("default south wall thickness = %v, want %v", interior.TotalThickness, wantT)
	}

	south := walls[geometry.South]
	north := walls[geometry.North]
	west := walls[geometry.West]
	east := walls[geometry.East]

	wT := west.Composition.TotalThickness
	eT := east.Composition.TotalThickness
	t2 := south.Composition.TotalThickness

	if south.Rect.X != bounds.X-wT {
		t.Errorf("south rect.x = %v, want %v", south.Rect.X, bounds.X-wT)
	}
	if south.Rect.Width != bounds.Width+wT+eT {
		t.Errorf("south rect.width = %v, want %v", south.Rect.Width, bounds.Width+wT+eT)
	}
	if south.OuterEdge != bounds.Y-t2 {
		t.Errorf("south outerEdge = %v, want %v", south.OuterEdge, bounds.Y-t2)
	}
	if south.InnerEdge != bounds.Y {
		t.Errorf("south innerEdge = %v, want %v", south.InnerEdge, bounds.Y)
	}
	if south.InteriorStartOffset != wT {
		t.Errorf("south interiorStartOffset = %v, want %v", south.InteriorStartOffset, wT)
	}

	if north.Rect.Y != bounds.Y+bounds.Height {
		t.Errorf("north rect.y = %v, want %v", north.Rect.Y, bounds.Y+bounds.Height)
	}

	if west.InteriorStartOffset != 0 {
		t.Errorf("west interiorStartOffset = %v, want 0", west.InteriorStartOffset)
	}
	if west.Rect.X != bounds.X-west.Composition.TotalThickness {
		t.Errorf("west rect.x incorrect")
	}

	if east.Rect.X != bounds.X+bounds.Width {
		t.Errorf("east rect.x = %v, want %v", east.Rect.X, bounds.X+bounds.Width)
	}
}

func TestResolveExteriorLineWeight(t *testing.T) {
	t.Parallel()

	bounds := geometry.Rect{X: 0, Y: 0, Width: 10, Height: 10}
	cfg := map[geometry.Direction]floorplan.WallConfig{
		geometry.North: {Type: floorplan.WallExterior},
	}

	walls, err := Resolve("room1", cfg, bounds, dimension.Imperial)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	if walls[geometry.North].LineWeight != lineWeightExterior {
		t.Errorf("expected exterior line weight %v, got %v", lineWeightExterior, walls[geometry.North].LineWeight)
	}
	if walls[geometry.South].LineWeight != lineWeightDefault {
		t.Errorf("expected default line weight %v for unconfigured wall, got %v", lineWeightDefault, walls[geometry.South].LineWeight)
	}
}

func TestResolveExplicitThickness(t *testing.T) {
	t.Parallel()

	bounds := geometry.Rect{X: 0, Y: 0, Width: 10, Height: 10}
	cfg := map[geometry.Direction]floorplan.WallConfig{
		geometry.West: {Thickness: "0.5'"},
	}

	walls, err := Resolve("room1", cfg, bounds, dimension.Imperial)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	if walls[geometry.West].Thickness != 0.5 {
		t.Errorf("expected explicit thickness 0.5, got %v", walls[geometry.West].Thickness)
	}
}
