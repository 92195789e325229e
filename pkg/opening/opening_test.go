package opening

import (
	"testing"

	"github.com/xiiisorate/floorscript/pkg/dimension"
	"github.com/xiiisorate/floorscript/pkg/floorplan"
	"github.com/xiiisorate/floorscript/pkg/geometry"
)

func southWall() *floorplan.ResolvedWall {
	return &floorplan.ResolvedWall{
		ID:                  "room1.south",
		Direction:           geometry.South,
		Rect:                geometry.Rect{X: -0.375, Y: -0.375, Width: 10.75, Height: 0.375},
		OuterEdge:            -0.375,
		InnerEdge:            0,
		InteriorStartOffset:  0.375,
		InteriorLength:       10,
		Thickness:            0.375,
	}
}

func TestResolvePositionedOpening(t *testing.T) {
	t.Parallel()

	wall := southWall()
	cfg := []floorplan.OpeningConfig{
		{Type: floorplan.OpeningDoor, Position: 2.0, Width: 3.0},
	}

	if err := Resolve(wall, cfg, dimension.Imperial); err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if len(wall.Openings) != 1 {
		t.Fatalf("expected 1 resolved opening, got %d", len(wall.Openings))
	}

	o := wall.Openings[0]
	wantStart := wall.Rect.X + wall.InteriorStartOffset + 2.0
	if o.AlongAxisStart != wantStart {
		t.Errorf("AlongAxisStart = %v, want %v", o.AlongAxisStart, wantStart)
	}
	if o.AlongAxisEnd != wantStart+3.0 {
		t.Errorf("AlongAxisEnd = %v, want %v", o.AlongAxisEnd, wantStart+3.0)
	}
	if o.GapStart.Y != wall.OuterEdge || o.GapEnd.Y != wall.OuterEdge {
		t.Errorf("expected gap endpoints on the outer face %v, got start.y=%v end.y=%v", wall.OuterEdge, o.GapStart.Y, o.GapEnd.Y)
	}
	wantCenterY := (wall.OuterEdge + wall.InnerEdge) / 2
	if o.Position.Y != wantCenterY {
		t.Errorf("center.y = %v, want %v (wall centerline)", o.Position.Y, wantCenterY)
	}
	if o.Style != "standard" {
		t.Errorf("expected default door style 'standard', got %q", o.Style)
	}
}

func TestResolveFromOffsetAnchors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		from  string
		want  float64
	}{
		{"start", "start", 1},
		{"end", "end", 10 - 3 - 1},
		{"center", "center", (10-3)/2.0 + 1},
	}

	for _, tc := range cases {
		got := ResolveFromOffset(tc.from, 1, nil, 10, 3)
		if got != tc.want {
			t.Errorf("%s: ResolveFromOffset = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestResolveFromOffsetChaining(t *testing.T) {
	t.Parallel()

	resolvedEnds := map[string]float64{"door1": 4.0}
	got := ResolveFromOffset("door1", 0.5, resolvedEnds, 10, 2)
	if got != 4.5 {
		t.Errorf("expected chained position 4.5, got %v", got)
	}
}

func TestResolveWindowNoDefaultStyle(t *testing.T) {
	t.Parallel()

	wall := southWall()
	cfg := []floorplan.OpeningConfig{{Type: floorplan.OpeningWindow, Position: 1.0, Width: 2.0}}

	if err := Resolve(wall, cfg, dimension.Imperial); err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if wall.Openings[0].Style != "" {
		t.Errorf("expected window to have no default style, got %q", wall.Openings[0].Style)
	}
}
