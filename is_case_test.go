package casing_test

import (
	"errors"
	"testing"

	"github.com/Gobd/casing"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaseRules(t *testing.T) {
	tests := []struct {
		name   string
		rule   casing.Rule
		in     any
		errStr string
		code   string
	}{
		{name: "upper ok", rule: casing.IsUpperCase(), in: "HELLO 123"},
		{name: "upper fail", rule: casing.IsUpperCase(), in: "Hello", errStr: "must be in upper case", code: "validation_is_upper_case"},
		{name: "upper bytes", rule: casing.IsUpperCase(), in: []byte("ABC")},
		{name: "upper digits only", rule: casing.IsUpperCase(), in: "123"},
		{name: "upper unexpanded sharp s", rule: casing.IsUpperCase(), in: "STRAßE", errStr: "must be in upper case", code: "validation_is_upper_case"},
		{name: "upper expanded", rule: casing.IsUpperCase(), in: "STRASSE"},
		{name: "lower final sigma", rule: casing.IsLowerCase(), in: "σίσυφος"},
		{name: "lower capital sigma", rule: casing.IsLowerCase(), in: "σίσυφοΣ", errStr: "must be in lower case", code: "validation_is_lower_case"},
		{name: "lower ok", rule: casing.IsLowerCase(), in: "hello-world"},
		{name: "lower fail", rule: casing.IsLowerCase(), in: "hello World", errStr: "must be in lower case", code: "validation_is_lower_case"},
		{name: "capitalized ok", rule: casing.IsCapitalized(), in: "Hello world"},
		{name: "capitalized lower", rule: casing.IsCapitalized(), in: "hello", errStr: "must be capitalized", code: "validation_is_capitalized"},
		{name: "capitalized shouting", rule: casing.IsCapitalized(), in: "HeLLo", errStr: "must be capitalized", code: "validation_is_capitalized"},
		{name: "title ok", rule: casing.IsTitleCase(), in: "Hello World"},
		{name: "title fail", rule: casing.IsTitleCase(), in: "Hello world", errStr: "must be in title case", code: "validation_is_title_case"},
		{name: "empty", rule: casing.IsUpperCase(), in: ""},
		{name: "nil", rule: casing.IsLowerCase(), in: nil},
		{name: "not a string", rule: casing.IsUpperCase(), in: 123, errStr: "must be either a string or byte slice"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rule.Validate(tt.in)
			if tt.errStr == "" {
				assert.NoError(t, err)
				return
			}
			require.EqualError(t, err, tt.errStr)
			if tt.code != "" {
				var ve validation.Error
				require.True(t, errors.As(err, &ve))
				assert.Equal(t, tt.code, ve.Code())
			}
		})
	}
}

func TestCaseRules_Pointer(t *testing.T) {
	s := "SHOUT"
	assert.NoError(t, casing.IsUpperCase().Validate(&s))
	assert.Error(t, casing.IsLowerCase().Validate(&s))

	var nilPtr *string
	assert.NoError(t, casing.IsLowerCase().Validate(nilPtr))
}

func TestCaseRules_MatchConversions(t *testing.T) {
	for _, s := range samples {
		for _, m := range []casing.Mode{casing.Upper, casing.Lower, casing.Capitalize, casing.Title} {
			assert.NoError(t, m.Rule().Validate(m.Apply(s)), "%s(%q)", m, s)
		}
	}
}

func TestNewStringRule(t *testing.T) {
	noSpaces := casing.NewStringRule(func(s string) bool {
		for _, r := range s {
			if r == ' ' {
				return false
			}
		}
		return true
	}, "must not contain spaces")

	assert.NoError(t, noSpaces.Validate("ABC"))
	assert.EqualError(t, noSpaces.Validate("A B"), "must not contain spaces")

	custom := casing.NewStringRuleWithError(
		func(s string) bool { return len(s) <= 3 },
		validation.NewError("validation_short", "too long"),
		"At most three bytes.",
	)
	assert.EqualError(t, custom.Validate("abcd"), "too long")

	summary, err := casing.Summary(custom)
	require.NoError(t, err)
	assert.Equal(t, "At most three bytes.", summary)
}
