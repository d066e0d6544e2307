package casing

import (
	"github.com/getkin/kin-openapi/openapi3"
)

type (
	// Rule is the interface that all casing rules implement. It is compatible
	// with ozzo-validation's validation.Rule.
	Rule interface {
		Validate(value any) error
		Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error
	}

	// FieldRules binds a struct field pointer to its rules.
	FieldRules struct {
		fieldPtr any
		rules    []Rule
	}
)
