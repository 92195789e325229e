// Package config loads and validates a FloorScript document (spec §6):
// auto-detect JSON vs YAML, then run struct-level schema validation
// before the resolver ever sees the data. Grounded on shared/pkg/config's
// loader shape, generalized from a single-service env+file loader to a
// document decoder.
package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/xiiisorate/floorscript/internal/ferrors"
	"github.com/xiiisorate/floorscript/pkg/floorplan"
)

var validate = validator.New()

type schemaDocument struct {
	Version string                 `validate:"required"`
	Project schemaProject          `validate:"required"`
	Units   string                 `validate:"required,oneof=imperial metric"`
	Plans   []floorplan.PlanConfig `validate:"required,min=1"`
}

type schemaProject struct {
	Title string `validate:"required"`
}

// Load decodes raw as JSON, falling back to YAML on failure, then runs
// schema validation. raw is the whole document contents.
func Load(raw []byte) (*floorplan.Document, error) {
	var doc floorplan.Document

	jsonErr := json.Unmarshal(raw, &doc)
	if jsonErr != nil {
		if yamlErr := yaml.Unmarshal(raw, &doc); yamlErr != nil {
			return nil, ferrors.ParseError(yamlErr.Error())
		}
	}

	if err := validateSchema(doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

func validateSchema(doc floorplan.Document) error {
	schema := schemaDocument{
		Version: doc.Version,
		Project: schemaProject{Title: doc.Project.Title},
		Units:   string(doc.Units),
		Plans:   doc.Plans,
	}

	err := validate.Struct(schema)
	if err == nil {
		return nil
	}

	valErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return ferrors.SchemaError([]string{err.Error()})
	}

	issues := make([]string, 0, len(valErrs))
	for _, fe := range valErrs {
		issues = append(issues, fmt.Sprintf("%s: %s", documentPath(fe.Namespace()), describeTag(fe)))
	}
	return ferrors.SchemaError(issues)
}

// documentPath turns a validator namespace such as
// "schemaDocument.Project.Title" into the document path "project.title".
func documentPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToLower(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, ".")
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "min":
		return fmt.Sprintf("must have at least %s element(s)", fe.Param())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
