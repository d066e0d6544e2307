package casing

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned by [ParseMode] for names it does not recognize.
var ErrUnknownMode = errors.New("unknown case mode")

// Mode names a case conversion. The zero value is not a valid mode.
type Mode int

// Supported modes.
const (
	Upper Mode = iota + 1
	Lower
	Capitalize
	Title
)

var modeNames = map[Mode]string{
	Upper:      "upper",
	Lower:      "lower",
	Capitalize: "capitalize",
	Title:      "title",
}

// ParseMode returns the Mode called name. Matching ignores case and
// surrounding whitespace.
func ParseMode(name string) (Mode, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for m, s := range modeNames {
		if s == n {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownMode, name)
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	_, ok := modeNames[m]
	return ok
}

// Func returns the conversion function for m, or nil if m is not valid.
func (m Mode) Func() func(string) string {
	switch m {
	case Upper:
		return ToUpperCase
	case Lower:
		return ToLowerCase
	case Capitalize:
		return ToCapitalize
	case Title:
		return ToTitleCase
	}
	return nil
}

// Apply converts s with m. An invalid mode returns s unchanged.
func (m Mode) Apply(s string) string {
	f := m.Func()
	if f == nil {
		return s
	}
	return f(s)
}

// Rule returns the rule that checks a value is already in m's form,
// or nil if m is not valid.
func (m Mode) Rule() Rule {
	switch m {
	case Upper:
		return IsUpperCase()
	case Lower:
		return IsLowerCase()
	case Capitalize:
		return IsCapitalized()
	case Title:
		return IsTitleCase()
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler].
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w %d", ErrUnknownMode, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] using [ParseMode].
func (m *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
