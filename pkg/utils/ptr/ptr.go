// Package ptr has helpers for working with pointer fields in raw
// JSON structs, where a nil pointer means the field was absent.
package ptr

// To returns a pointer to v.
func To[T any](v T) *T {
	return &v
}
