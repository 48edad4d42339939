package vector

import "iter"

// Slice returns the live elements as a slice sharing the vector's allocation.
// Its capacity is capped at Len(), so appending to it never writes into the
// vector. The slice is invalidated like an iterator when the vector grows.
func (v *Vector[T]) Slice() []T {
	return v.array[:v.size:v.size]
}

// All returns an iterator over index-value pairs in order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.array[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.array[i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-value pairs from the last element to the first.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.array[i]) {
				return
			}
		}
	}
}

// Range returns an iterator over the elements in the half-open range [first, last).
func Range[T any](first, last Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := first; it.Less(last); it.Inc() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}
