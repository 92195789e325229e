package segment

import (
	"testing"

	"github.com/xiiisorate/floorscript/pkg/floorplan"
	"github.com/xiiisorate/floorscript/pkg/geometry"
)

func TestSliceHorizontalWallWithOneGap(t *testing.T) {
	t.Parallel()

	rect := geometry.Rect{X: 0, Y: 0, Width: 10, Height: 0.375}
	gaps := []floorplan.WallGap{{GapStart: 3, GapEnd: 6}}

	segments := Slice(rect, geometry.South, gaps)

	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segments))
	}
	if segments[0].X != 0 || segments[0].Width != 3 {
		t.Errorf("first segment = %+v, want x=0 width=3", segments[0])
	}
	if segments[1].X != 6 || segments[1].Width != 4 {
		t.Errorf("second segment = %+v, want x=6 width=4", segments[1])
	}
}

func TestSliceVerticalWall(t *testing.T) {
	t.Parallel()

	rect := geometry.Rect{X: 0, Y: 0, Width: 0.375, Height: 10}
	gaps := []floorplan.WallGap{{GapStart: 8, GapEnd: 10}}

	segments := Slice(rect, geometry.West, gaps)

	if len(segments) != 1 {
		t.Fatalf("expected 1 segment (gap touches the end), got %d", len(segments))
	}
	if segments[0].Y != 0 || segments[0].Height != 8 {
		t.Errorf("segment = %+v, want y=0 height=8", segments[0])
	}
}

func TestSliceNoGaps(t *testing.T) {
	t.Parallel()

	rect := geometry.Rect{X: 0, Y: 0, Width: 10, Height: 0.375}
	segments := Slice(rect, geometry.South, nil)

	if len(segments) != 1 || segments[0] != rect {
		t.Errorf("expected the wall to come back as a single segment, got %+v", segments)
	}
}

func TestSliceOverlappingGapsMerge(t *testing.T) {
	t.Parallel()

	rect := geometry.Rect{X: 0, Y: 0, Width: 10, Height: 0.375}
	gaps := []floorplan.WallGap{
		{GapStart: 2, GapEnd: 5},
		{GapStart: 4, GapEnd: 7},
	}

	segments := Slice(rect, geometry.South, gaps)

	if len(segments) != 2 {
		t.Fatalf("expected 2 segments around the merged gap, got %d", len(segments))
	}
	if segments[0].Width != 2 {
		t.Errorf("first segment width = %v, want 2", segments[0].Width)
	}
	if segments[1].X != 7 || segments[1].Width != 3 {
		t.Errorf("second segment = %+v, want x=7 width=3", segments[1])
	}
}

func TestSliceDropsTinySegments(t *testing.T) {
	t.Parallel()

	rect := geometry.Rect{X: 0, Y: 0, Width: 5, Height: 0.375}
	gaps := []floorplan.WallGap{{GapStart: 0, GapEnd: 4.9995}}

	segments := Slice(rect, geometry.South, gaps)

	if len(segments) != 0 {
		t.Errorf("expected the sub-epsilon remainder to be dropped, got %+v", segments)
	}
}
