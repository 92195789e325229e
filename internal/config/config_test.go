package config

import (
	"strings"
	"testing"
)

const validDoc = `{
  "version": "1.0",
  "project": {"title": "Test House"},
  "units": "imperial",
  "plans": [
    {
      "id": "plan1",
      "title": "Main Floor",
      "rooms": [
        {"id": "living", "label": "Living Room", "position": [0, 0], "width": 12, "height": 10}
      ]
    }
  ]
}`

func TestLoadValidJSON(t *testing.T) {
	t.Parallel()

	doc, err := Load([]byte(validDoc))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if doc.Project.Title != "Test House" {
		t.Errorf("Project.Title = %q, want %q", doc.Project.Title, "Test House")
	}
	if len(doc.Plans) != 1 || len(doc.Plans[0].Rooms) != 1 {
		t.Fatalf("unexpected decoded shape: %+v", doc)
	}
}

const validYAML = `
version: "1.0"
project:
  title: Test House
units: metric
plans:
  - id: plan1
    title: Main Floor
    rooms:
      - id: living
        label: Living Room
        position: [0, 0]
        width: 4
        height: 3
`

func TestLoadValidYAML(t *testing.T) {
	t.Parallel()

	doc, err := Load([]byte(validYAML))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if string(doc.Units) != "metric" {
		t.Errorf("Units = %q, want metric", doc.Units)
	}
}

func TestLoadUnparseable(t *testing.T) {
	t.Parallel()

	if _, err := Load([]byte("not json, not yaml: [unterminated")); err == nil {
		t.Error("expected an error for input that is neither valid JSON nor valid YAML")
	}
}

func TestLoadMissingRequiredFields(t *testing.T) {
	t.Parallel()

	doc := `{"version": "1.0", "project": {"title": ""}, "units": "imperial", "plans": []}`
	_, err := Load([]byte(doc))
	if err == nil {
		t.Fatal("expected a schema validation error for an empty project title and empty plans")
	}
	if !strings.Contains(err.Error(), "Invalid FloorScript config") {
		t.Errorf("expected an aggregated schema error message, got %v", err)
	}
}

func TestLoadInvalidUnits(t *testing.T) {
	t.Parallel()

	doc := `{
      "version": "1.0",
      "project": {"title": "Test House"},
      "units": "furlongs",
      "plans": [{"id": "p1", "title": "t", "rooms": []}]
    }`
	_, err := Load([]byte(doc))
	if err == nil {
		t.Fatal("expected a schema validation error for an invalid units value")
	}
	if !strings.Contains(err.Error(), "units") {
		t.Errorf("expected the error to mention the offending field, got %v", err)
	}
}
