package casing

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Casers are stateful and not safe for concurrent use, so each call builds its own.

// ToUpperCase returns s with every cased character mapped to its upper case form.
// Digits, punctuation and whitespace are left as they are. Characters whose
// upper case form is longer expand, so "straße" becomes "STRASSE".
func ToUpperCase(s string) string {
	return cases.Upper(language.Und).String(s)
}

// ToLowerCase returns s with every cased character mapped to its lower case form.
// A word-final capital sigma becomes "ς".
func ToLowerCase(s string) string {
	return cases.Lower(language.Und).String(s)
}

// ToCapitalize upper cases the first character of s and lower cases the rest.
//
//	hello -> Hello
//	HELLO -> Hello
//	hello WORLD -> Hello world
func ToCapitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	first := s[:size]
	if r != utf8.RuneError || size > 1 {
		first = ToUpperCase(first)
	}
	return first + ToLowerCase(s[size:])
}

// ToTitleCase upper cases the first letter of every word in s and lower cases
// the rest. Word breaking follows Unicode rules with no language tailoring.
func ToTitleCase(s string) string {
	return cases.Title(language.Und).String(s)
}
