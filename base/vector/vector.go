package vector

import "fmt"

// Vector is a contiguous, growable sequence of values of type T.
// The zero value is an empty vector without an allocation, ready to use.
type Vector[T any] struct {
	// array is the allocation, len(array) is the capacity.
	array []T
	size  int

	observer Observer
}

// New returns an empty vector without an allocation.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewSize returns a vector holding count zero values. Its capacity is count.
func NewSize[T any](count int) *Vector[T] {
	return &Vector[T]{
		array: allocate[T](count),
		size:  count,
	}
}

// NewFilled returns a vector holding count copies of value. Its capacity is count.
func NewFilled[T any](count int, value T) *Vector[T] {
	v := NewSize[T](count)
	for i := range v.array {
		v.array[i] = value
	}
	return v
}

func allocate[T any](capacity int) []T {
	if capacity == 0 {
		return nil
	}
	return make([]T, capacity)
}

// Lifecycle

// Clone returns a copy of the vector with its own allocation.
// The capacity of the copy equals the number of copied elements.
// Elements are copied with assignment; use DeepClone for elements that hold references.
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{
		array: allocate[T](v.size),
		size:  v.size,
	}
	copy(c.array, v.array[:v.size])
	return c
}

// Assign replaces the contents of the vector with a copy of other.
// The previous allocation is dropped. Assigning a vector to itself does nothing.
func (v *Vector[T]) Assign(other *Vector[T]) {
	if v == other {
		return
	}
	v.array = allocate[T](other.size)
	v.size = other.size
	copy(v.array, other.array[:other.size])
}

// Take moves the allocation and all elements into a new vector and returns it.
// The receiver is left empty with a capacity of zero and stays usable.
// Iterators into the moved allocation stay valid and now belong to the returned vector.
func (v *Vector[T]) Take() *Vector[T] {
	moved := &Vector[T]{
		array: v.array,
		size:  v.size,
	}
	v.array = nil
	v.size = 0
	return moved
}

// MoveFrom drops the current allocation and takes over the allocation and
// elements of other, which is left empty with a capacity of zero.
// Moving a vector into itself does nothing.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if v == other {
		return
	}
	v.array = other.array
	v.size = other.size
	other.array = nil
	other.size = 0
}

// Release drops the allocation. The vector is empty afterwards, has a
// capacity of zero and stays usable.
func (v *Vector[T]) Release() {
	v.array = nil
	v.size = 0
}

// Queries

// Empty returns whether the vector holds no elements.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// Len returns the number of elements in the vector.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of slots in the current allocation.
func (v *Vector[T]) Cap() int {
	return len(v.array)
}

// Element Access

// At returns a pointer to the element at pos.
// It fails with ErrOutOfRange if pos is not in [0, Len()).
func (v *Vector[T]) At(pos int) (*T, error) {
	if pos < 0 || pos >= v.size {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, pos, v.size)
	}
	return &v.array[pos], nil
}

// Index returns a pointer to the slot at pos without checking it against Len().
// pos must be in [0, Len()). Slots in [Len(), Cap()) are reachable but hold no
// live element; positions beyond the allocation panic.
func (v *Vector[T]) Index(pos int) *T {
	return &v.array[pos]
}

// Front returns a pointer to the first element. The vector must not be empty.
func (v *Vector[T]) Front() *T {
	return &v.array[0]
}

// Back returns a pointer to the last element. The vector must not be empty.
func (v *Vector[T]) Back() *T {
	return &v.array[v.size-1]
}

// Iterators

// Begin returns an iterator to the first element.
func (v *Vector[T]) Begin() Iterator[T] {
	return Iterator[T]{array: v.array}
}

// End returns an iterator to the slot after the last element.
// It equals Begin() if the vector is empty.
func (v *Vector[T]) End() Iterator[T] {
	return Iterator[T]{array: v.array, pos: v.size}
}

// String returns a short description of the vector state.
func (v *Vector[T]) String() string {
	return fmt.Sprintf("<Vector len=%d cap=%d %v>", v.size, len(v.array), v.array[:v.size])
}
