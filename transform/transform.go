package transform

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/Gobd/casing"
)

// TagName is the struct tag read by [StructByTag].
const TagName = "case"

// StructToUpper runs [casing.ToUpperCase] on all string fields in the struct recursively,
// including nested structs, pointer fields, slices, and map values.
func StructToUpper(v any) {
	StructStringFunc(v, casing.ToUpperCase)
}

// StructToLower runs [casing.ToLowerCase] on all string fields in the struct recursively.
func StructToLower(v any) {
	StructStringFunc(v, casing.ToLowerCase)
}

// StructCapitalize runs [casing.ToCapitalize] on all string fields in the struct recursively.
func StructCapitalize(v any) {
	StructStringFunc(v, casing.ToCapitalize)
}

// StructTrimSpace runs [strings.TrimSpace] on all string fields in the struct recursively.
func StructTrimSpace(v any) {
	StructStringFunc(v, strings.TrimSpace)
}

// StructStringFunc applies f to every string field in the struct recursively.
func StructStringFunc(v any, f func(string) string) {
	_ = walk(v, func(reflect.StructField) (func(string) string, error) {
		return f, nil
	})
}

// StructMulti runs all given functions on the struct pointer sequentially.
func StructMulti(v any, fns ...func(any)) {
	for _, f := range fns {
		f(v)
	}
}

// StructByTag converts string fields according to their case tag:
//
//	type Account struct {
//	    Code  string   `json:"code" case:"upper"`
//	    Email string   `json:"email" case:"lower"`
//	    Tags  []string `json:"tags" case:"lower"`
//	    Owner *Person  `json:"owner"` // walked, Person's own tags apply
//	}
//
// Accepted values are the names understood by [casing.ParseMode]. Fields
// without a tag, or tagged "-", are left alone. An unknown value returns an
// error naming the field; fields visited before it have already been converted.
// A pointer target reached through several fields is converted once, by the
// first field that reaches it.
func StructByTag(v any) error {
	return walk(v, tagFunc)
}

func tagFunc(sf reflect.StructField) (func(string) string, error) {
	tag := strings.Split(sf.Tag.Get(TagName), ",")[0]
	if tag == "" || tag == "-" {
		return nil, nil
	}
	m, err := casing.ParseMode(tag)
	if err != nil {
		return nil, fmt.Errorf("field %s: %w", sf.Name, err)
	}
	return m.Func(), nil
}

// picker chooses the function for a struct field; nil leaves its strings unchanged.
type picker func(sf reflect.StructField) (func(string) string, error)

// visit identifies a pointer target. A struct and its first field share an
// address, so the type is part of the key.
type visit struct {
	addr uintptr
	typ  reflect.Type
}

// walker visits each pointer target once, so cyclic values terminate and
// shared targets are converted a single time.
type walker struct {
	pick picker
	seen map[visit]struct{}
}

func walk(a any, pick picker) error {
	w := &walker{pick: pick, seen: map[visit]struct{}{}}
	v := reflect.ValueOf(a)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() || !w.mark(v) {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}
	return w.walkStruct(v)
}

// mark records the target of the non-nil pointer p and reports whether it is new.
func (w *walker) mark(p reflect.Value) bool {
	k := visit{addr: p.Pointer(), typ: p.Type()}
	if _, ok := w.seen[k]; ok {
		return false
	}
	w.seen[k] = struct{}{}
	return true
}

func (w *walker) walkStruct(v reflect.Value) error {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if !field.CanSet() {
			continue
		}
		f, err := w.pick(t.Field(i))
		if err != nil {
			return err
		}
		if err := w.apply(field, f); err != nil {
			return err
		}
	}
	return nil
}

// apply runs f on the strings held by v and walks any structs inside it.
// Nested structs pick their own functions field by field.
func (w *walker) apply(v reflect.Value, f func(string) string) error {
	switch v.Kind() {
	case reflect.String:
		if f != nil {
			v.SetString(f(v.String()))
		}
	case reflect.Struct:
		return w.walkStruct(v)
	case reflect.Pointer:
		if v.IsNil() || !w.mark(v) {
			return nil
		}
		return w.apply(v.Elem(), f)
	case reflect.Interface:
		// Concrete type is unknown and the value is not addressable.
	case reflect.Slice, reflect.Array:
		for j := 0; j < v.Len(); j++ {
			if err := w.apply(v.Index(j), f); err != nil {
				return err
			}
		}
	case reflect.Map:
		for _, key := range v.MapKeys() {
			val := v.MapIndex(key)
			// Map values aren't addressable; copy, convert, put back.
			cp := reflect.New(val.Type()).Elem()
			cp.Set(val)
			if err := w.apply(cp, f); err != nil {
				return err
			}
			v.SetMapIndex(key, cp)
		}
	}
	return nil
}
