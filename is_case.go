package casing

import (
	"github.com/asaskevich/govalidator"
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CaseExtension is the schema extension key that records the expected case of a string.
const CaseExtension = "x-case"

var (
	// ErrUpperCase is the error returned when a value is not in upper case.
	ErrUpperCase = validation.NewError("validation_is_upper_case", "must be in upper case")
	// ErrLowerCase is the error returned when a value is not in lower case.
	ErrLowerCase = validation.NewError("validation_is_lower_case", "must be in lower case")
	// ErrCapitalized is the error returned when a value is not capitalized.
	ErrCapitalized = validation.NewError("validation_is_capitalized", "must be capitalized")
	// ErrTitleCase is the error returned when a value is not in title case.
	ErrTitleCase = validation.NewError("validation_is_title_case", "must be in title case")
)

type caseRule struct {
	validation.StringRule
	mode Mode
	desc string
}

// IsUpperCase returns a rule that checks a string has no lower case characters.
// Empty values are valid.
func IsUpperCase() Rule {
	return caseRule{
		validation.NewStringRuleWithError(isUpperCase, ErrUpperCase),
		Upper,
		"Must be upper case.",
	}
}

// IsLowerCase returns a rule that checks a string has no upper case characters.
func IsLowerCase() Rule {
	return caseRule{
		validation.NewStringRuleWithError(isLowerCase, ErrLowerCase),
		Lower,
		"Must be lower case.",
	}
}

// IsCapitalized returns a rule that checks a string starts with an upper case
// character followed only by lower case ones.
func IsCapitalized() Rule {
	return caseRule{
		validation.NewStringRuleWithError(func(s string) bool { return s == ToCapitalize(s) }, ErrCapitalized),
		Capitalize,
		"Must be capitalized.",
	}
}

// IsTitleCase returns a rule that checks every word of a string is capitalized.
func IsTitleCase() Rule {
	return caseRule{
		validation.NewStringRuleWithError(func(s string) bool { return s == ToTitleCase(s) }, ErrTitleCase),
		Title,
		"Must be title case.",
	}
}

// The govalidator checks use simple one-to-one mapping, which is exact for ASCII only.
func isUpperCase(s string) bool {
	if govalidator.IsASCII(s) {
		return govalidator.IsUpperCase(s)
	}
	return s == ToUpperCase(s)
}

func isLowerCase(s string) bool {
	if govalidator.IsASCII(s) {
		return govalidator.IsLowerCase(s)
	}
	return s == ToLowerCase(s)
}

func (r caseRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDescription(ref, r.desc)
	if ref.Value.Extensions == nil {
		ref.Value.Extensions = map[string]any{}
	}
	ref.Value.Extensions[CaseExtension] = r.mode.String()
	return nil
}
