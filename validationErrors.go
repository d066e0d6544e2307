package casing

import validation "github.com/go-ozzo/ozzo-validation/v4"

// ValidationErrors maps field names to the rule that rejected them.
// It is an alias for [validation.Errors] and renders as
// "code: must be in upper case; name: must be capitalized."
type ValidationErrors = validation.Errors
