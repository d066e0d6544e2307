package casing

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validate applies rules to value in order and returns the first failure.
func Validate(value any, rules ...Rule) error {
	return validation.Validate(value, convertRules(rules...)...)
}

// Field creates a FieldRules binding a struct field pointer to its rules.
func Field[T any](fieldPtr *T, rules ...Rule) *FieldRules {
	return &FieldRules{
		fieldPtr: fieldPtr,
		rules:    rules,
	}
}

// ValidateStruct validates the fields of the struct pointed to by structPtr.
// Failures are returned as [ValidationErrors] keyed by the json tag of each
// field, or its Go name when it has none.
func ValidateStruct(structPtr any, fields ...*FieldRules) error {
	return validation.ValidateStruct(structPtr, convertFieldRules(fields...)...)
}

func convertFieldRules(fields ...*FieldRules) []*validation.FieldRules {
	vFields := make([]*validation.FieldRules, len(fields))
	for i, fr := range fields {
		vFields[i] = validation.Field(fr.fieldPtr, convertRules(fr.rules...)...)
	}
	return vFields
}

// convertRules drops nil rules, such as the one returned by an invalid Mode.
func convertRules(rules ...Rule) []validation.Rule {
	vRules := make([]validation.Rule, 0, len(rules))
	for _, r := range rules {
		if r != nil {
			vRules = append(vRules, validation.Rule(r))
		}
	}
	return vRules
}
