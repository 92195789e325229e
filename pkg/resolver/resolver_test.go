package resolver

import (
	"testing"

	"github.com/xiiisorate/floorscript/pkg/dimension"
	"github.com/xiiisorate/floorscript/pkg/floorplan"
	"github.com/xiiisorate/floorscript/pkg/geometry"
)

func TestResolveTwoAdjacentRoomsShareWall(t *testing.T) {
	t.Parallel()

	cfg := floorplan.PlanConfig{
		ID:    "plan1",
		Title: "Test Plan",
		Rooms: []floorplan.RoomConfig{
			{
				ID:     "living",
				Label:  "Living Room",
				Position: [2]any{0.0, 0.0},
				Width:  12.0,
				Height: 10.0,
				Walls: map[geometry.Direction]floorplan.WallConfig{
					geometry.South: {Type: floorplan.WallExterior, Openings: []floorplan.OpeningConfig{
						{Type: floorplan.OpeningDoor, Position: 4.0, Width: 3.0},
					}},
				},
			},
			{
				ID:     "kitchen",
				Label:  "Kitchen",
				Position: [2]any{12.375, 0.0},
				Width:  10.0,
				Height: 10.0,
				Walls: map[geometry.Direction]floorplan.WallConfig{
					geometry.South: {Type: floorplan.WallExterior},
				},
			},
		},
	}

	plan, err := Resolve("Test House", cfg, dimension.Imperial, nil)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	if len(plan.Rooms) != 2 {
		t.Fatalf("expected 2 resolved rooms, got %d", len(plan.Rooms))
	}

	sharedFound := false
	for _, pw := range plan.WallGraph.Walls {
		if pw.Shared {
			sharedFound = true
			if pw.RoomID != "living" || pw.RoomIDB != "kitchen" {
				t.Errorf("expected shared wall between living and kitchen, got %s/%s", pw.RoomID, pw.RoomIDB)
			}
		}
	}
	if !sharedFound {
		t.Error("expected living and kitchen to share their adjoining wall")
	}

	livingSouth := plan.RoomByID("living").WallOf(geometry.South)
	if len(livingSouth.Segments) != 2 {
		t.Fatalf("expected living's south wall to be sliced into 2 segments around its door, got %d", len(livingSouth.Segments))
	}

	if len(plan.Dimensions) == 0 {
		t.Error("expected auto-generated dimensions")
	}

	if plan.Bounds.Width <= 0 || plan.Bounds.Height <= 0 {
		t.Errorf("expected positive plan bounds, got %+v", plan.Bounds)
	}
}

func TestResolveRoomWithExtensionAndEnclosure(t *testing.T) {
	t.Parallel()

	cfg := floorplan.PlanConfig{
		ID:    "plan1",
		Title: "Test Plan",
		Rooms: []floorplan.RoomConfig{
			{
				ID:       "bed1",
				Label:    "Bedroom",
				Position: [2]any{0.0, 0.0},
				Width:    12.0,
				Height:   10.0,
				Extensions: []floorplan.ExtensionConfig{
					{ID: "bay1", ParentWall: geometry.North, Width: 4.0, Offset: 4.0, Depth: 2.0},
				},
				Enclosures: []floorplan.EnclosureConfig{
					{ID: "closet1", Facing: geometry.South, Offset: 1.0, Width: 3.0, Depth: 2.0},
				},
			},
		},
	}

	plan, err := Resolve("Test House", cfg, dimension.Imperial, nil)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	room := plan.RoomByID("bed1")
	if len(room.Extensions) != 1 {
		t.Fatalf("expected 1 extension, got %d", len(room.Extensions))
	}
	if len(room.Enclosures) != 1 {
		t.Fatalf("expected 1 enclosure, got %d", len(room.Enclosures))
	}

	northWall := room.WallOf(geometry.North)
	if len(northWall.Segments) != 2 {
		t.Errorf("expected the parent north wall to be sliced by the extension's gap into 2 segments, got %d", len(northWall.Segments))
	}
}
