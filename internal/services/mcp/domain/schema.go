package domain

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/louisbranch/sessionsearch/internal/platform/pagination"
)

// schemaOption adjusts an inferred input schema.
type schemaOption func(*jsonschema.Schema)

// inputSchema infers the input schema of I and applies opts. Inference only
// fails for unsupported Go types, which is a programming error, so it panics
// like mcp.AddTool does.
func inputSchema[I any](opts ...schemaOption) *jsonschema.Schema {
	schema, err := jsonschema.For[I](nil)
	if err != nil {
		panic(fmt.Sprintf("infer input schema for %T: %v", *new(I), err))
	}
	for _, opt := range opts {
		opt(schema)
	}
	return schema
}

// limitBounds publishes the page size range of cfg on the limit property.
func limitBounds(cfg pagination.PageSizeConfig) schemaOption {
	return func(schema *jsonschema.Schema) {
		limit := property(schema, "limit")
		minimum, maximum := 1.0, float64(cfg.Max)
		limit.Minimum = &minimum
		limit.Maximum = &maximum
	}
}

// enumOf restricts a string property to values.
func enumOf(name string, values []string) schemaOption {
	return func(schema *jsonschema.Schema) {
		enum := make([]any, len(values))
		for i, value := range values {
			enum[i] = value
		}
		property(schema, name).Enum = enum
	}
}

func property(schema *jsonschema.Schema, name string) *jsonschema.Schema {
	prop, ok := schema.Properties[name]
	if !ok || prop == nil {
		panic(fmt.Sprintf("input schema has no %q property", name))
	}
	return prop
}
