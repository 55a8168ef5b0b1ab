/*
Package optional treats nil pointers and empty values alike.

A nil *string and a pointer to "" are both "nothing" for most callers. The
helpers here collapse the two cases so a fallback can be applied in one step:

	name := optional.Coalesce(optional.NilIfEmpty(input), "anonymous")
*/
package optional

// To returns a pointer to a copy of v.
func To[T any](v T) *T {
	return &v
}

// Coalesce dereferences p, returning fallback if p is nil.
func Coalesce[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}

// IsEmptyOrNil reports whether s is nil or points to "".
func IsEmptyOrNil[S ~string](s *S) bool {
	return s == nil || len(*s) == 0
}

// IsEmptyOrNilSlice reports whether s is nil or points to a slice with no elements.
func IsEmptyOrNilSlice[S ~[]E, E any](s *S) bool {
	return s == nil || len(*s) == 0
}

// IsEmptyOrNilMap reports whether m is nil or points to a map with no entries.
func IsEmptyOrNilMap[M ~map[K]V, K comparable, V any](m *M) bool {
	return m == nil || len(*m) == 0
}

// NilIfEmpty returns nil when s is nil or empty, s otherwise.
func NilIfEmpty[S ~string](s *S) *S {
	if IsEmptyOrNil(s) {
		return nil
	}
	return s
}

// NilIfEmptySlice is NilIfEmpty for slices.
func NilIfEmptySlice[S ~[]E, E any](s *S) *S {
	if IsEmptyOrNilSlice(s) {
		return nil
	}
	return s
}

// NilIfEmptyMap is NilIfEmpty for maps.
func NilIfEmptyMap[M ~map[K]V, K comparable, V any](m *M) *M {
	if IsEmptyOrNilMap(m) {
		return nil
	}
	return m
}
