package utils

// IndexOf returns the index of the given value and -1 if it is not part of the slice.
func IndexOf[T comparable](a []T, v T) int {
	for i, entry := range a {
		if entry == v {
			return i
		}
	}
	return -1
}

// InSlice returns whether the given value is in the slice.
func InSlice[T comparable](a []T, v T) bool {
	return IndexOf(a, v) >= 0
}

// RemoveFromSlice removes the first occurrence of the given value from the
// slice and returns the shortened slice. The backing array is reused.
func RemoveFromSlice[T comparable](a []T, v T) []T {
	i := IndexOf(a, v)
	if i >= 0 {
		a = append(a[:i], a[i+1:]...)
	}
	return a
}

// DuplicateSlice returns a new copy of the given slice.
// A nil slice is duplicated as an empty, non-nil slice.
func DuplicateSlice[T any](a []T) []T {
	b := make([]T, len(a))
	copy(b, a)
	return b
}

// SliceEqual returns whether the given slices hold the same values in the same order.
// A nil slice equals an empty slice.
func SliceEqual[T comparable](a []T, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i, v := range a {
		if v != b[i] {
			return false
		}
	}
	return true
}
