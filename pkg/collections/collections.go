/*
Package collections complements the standard [slices] and [maps] packages with
small helpers for indexing, grouping and combining collections.

Helpers that build a collection never modify their inputs, with the exception
of [RemoveFirst], which works in place like [slices.Delete].
*/
package collections

import (
	"maps"
	"slices"
)

// At returns s[i] and true, or the zero value and false when i is out of range.
func At[S ~[]E, E any](s S, i int) (E, bool) {
	if i < 0 || i >= len(s) {
		var zero E
		return zero, false
	}
	return s[i], true
}

// GroupBy buckets the elements of s by key, preserving their order within each bucket.
func GroupBy[S ~[]E, E any, K comparable](s S, key func(E) K) map[K][]E {
	groups := make(map[K][]E)
	for _, v := range s {
		k := key(v)
		groups[k] = append(groups[k], v)
	}
	return groups
}

// RemoveFirst removes the first element matching pred and returns the shortened slice.
// s is returned unchanged when nothing matches.
func RemoveFirst[S ~[]E, E any](s S, pred func(E) bool) S {
	i := slices.IndexFunc(s, pred)
	if i < 0 {
		return s
	}
	return slices.Delete(s, i, i+1)
}

// Prepend returns a new slice holding v followed by the elements of s.
func Prepend[S ~[]E, E any](v E, s S) S {
	out := make(S, 0, len(s)+1)
	out = append(out, v)
	return append(out, s...)
}

// Append returns a new slice holding the elements of s followed by v.
// Unlike the builtin it never writes into the backing array of s.
func Append[S ~[]E, E any](s S, v E) S {
	out := make(S, 0, len(s)+1)
	out = append(out, s...)
	return append(out, v)
}

// MapValues transforms the values of m, keeping its keys.
func MapValues[M ~map[K]V, K comparable, V, T any](m M, f func(V) T) map[K]T {
	out := make(map[K]T, len(m))
	for k, v := range m {
		out[k] = f(v)
	}
	return out
}

// MapKeys transforms the keys of m. When f maps two keys to the same result,
// which value survives is unspecified.
func MapKeys[M ~map[K]V, K, T comparable, V any](m M, f func(K) T) map[T]V {
	out := make(map[T]V, len(m))
	for k, v := range m {
		out[f(k)] = v
	}
	return out
}

// Merge returns a new map holding the entries of left and right. Keys present
// in both take the value from right.
func Merge[M ~map[K]V, K comparable, V any](left, right M) M {
	out := make(M, len(left)+len(right))
	maps.Copy(out, left)
	maps.Copy(out, right)
	return out
}

// Flip swaps keys and values. Duplicate values keep an unspecified key.
func Flip[M ~map[K]V, K, V comparable](m M) map[V]K {
	out := make(map[V]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// EqualSlices is [slices.Equal] except that a nil slice only equals another nil slice.
func EqualSlices[S ~[]E, E comparable](a, b S) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return slices.Equal(a, b)
}

// EqualMaps is [maps.Equal] except that a nil map only equals another nil map.
func EqualMaps[M ~map[K]V, K, V comparable](a, b M) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return maps.Equal(a, b)
}
