package casing

import (
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type requiredRule struct {
	validation.RequiredRule
}

// Required is a rule that checks a value is not empty. The case rules accept
// empty values, so pair them with Required when a value must be present.
var Required = requiredRule{validation.Required}

func (r requiredRule) Describe(name string, schema *openapi3.Schema, _ *openapi3.SchemaRef) error {
	if name != "" {
		schema.Required = append(schema.Required, name)
	}
	return nil
}
