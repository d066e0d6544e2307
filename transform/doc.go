// Package transform applies case conversions to the string fields of a struct
// recursively. It is commonly used to normalize decoded request bodies before
// they are checked with the [casing.Rule] set.
package transform
