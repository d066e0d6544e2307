// Package casing converts strings between upper, lower and capitalized forms
// and checks that values already are in a given form.
//
// The conversions are plain functions:
//
//	casing.ToUpperCase("hello")  // HELLO
//	casing.ToLowerCase("HELLO")  // hello
//	casing.ToCapitalize("HELLO") // Hello
//
// A [Mode] names a conversion so it can come from configuration or a struct tag:
//
//	m, err := casing.ParseMode("capitalize")
//	m.Apply("hELLO") // Hello
//
// Each conversion has a matching [Rule] for use with ozzo-validation, and every
// rule can describe itself into an OpenAPI 3 schema:
//
//	err := casing.ValidateStruct(&u,
//	    casing.Field(&u.Code, casing.IsUpperCase()),
//	)
//
// Sub-packages:
//   - transform – apply conversions to the string fields of a struct recursively
package casing
