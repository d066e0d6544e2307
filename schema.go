package casing

import (
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// StringSchema returns an OpenAPI string schema decorated by rules.
func StringSchema(rules ...Rule) (*openapi3.SchemaRef, error) {
	ref := openapi3.NewSchemaRef("", openapi3.NewStringSchema())
	for _, r := range rules {
		if r == nil {
			continue
		}
		if err := r.Describe("", ref.Value, ref); err != nil {
			return nil, err
		}
	}
	return ref, nil
}

// Summary calls Describe on each rule using a temporary schema, then renders
// the result as a short human-readable string such as
// "Must be upper case. (case: upper)".
func Summary(rules ...Rule) (string, error) {
	ref, err := StringSchema(rules...)
	if err != nil {
		return "", err
	}

	var parts []string
	if ref.Value.Description != "" {
		parts = append(parts, ref.Value.Description)
	}
	if c, ok := ref.Value.Extensions[CaseExtension]; ok {
		parts = append(parts, fmt.Sprintf("(case: %v)", c))
	}
	return strings.Join(parts, " "), nil
}
