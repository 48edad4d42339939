package vector

import (
	"fmt"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Iterator is a position in the allocation of a Vector. It behaves like a
// pointer: it can be moved freely, compared and subtracted, and it is not
// bounds checked beyond what the allocation enforces.
//
// The zero value is the null iterator, which addresses no slot.
// An iterator does not keep track of the vector it came from. After the vector
// grew, the iterator still addresses the previous allocation.
type Iterator[T any] struct {
	array []T
	pos   int
}

// AddOffset returns it moved by offset. It is the commutative form of it.Add(offset).
// offset must fit into an int, larger unsigned offsets panic instead of wrapping.
func AddOffset[I constraints.Integer, T any](offset I, it Iterator[T]) Iterator[T] {
	n := int(offset)
	if I(n) != offset || (n < 0) != (offset < 0) {
		panic(fmt.Sprintf("vector: offset %d overflows int", offset))
	}
	return it.Add(n)
}

// Value returns a copy of the element the iterator points to.
// The iterator must point to a live element.
func (it Iterator[T]) Value() T {
	return it.array[it.pos]
}

// Ref returns a pointer to the element the iterator points to.
// The iterator must point to a live element.
func (it Iterator[T]) Ref() *T {
	return &it.array[it.pos]
}

// Index returns a pointer to the element offset slots away from the iterator.
func (it Iterator[T]) Index(offset int) *T {
	return it.Add(offset).Ref()
}

// Inc moves the iterator one slot forward and returns it.
func (it *Iterator[T]) Inc() *Iterator[T] {
	it.pos++
	return it
}

// PostInc moves the iterator one slot forward and returns its previous position.
func (it *Iterator[T]) PostInc() Iterator[T] {
	prev := *it
	it.pos++
	return prev
}

// Dec moves the iterator one slot backward and returns it.
func (it *Iterator[T]) Dec() *Iterator[T] {
	it.pos--
	return it
}

// PostDec moves the iterator one slot backward and returns its previous position.
func (it *Iterator[T]) PostDec() Iterator[T] {
	prev := *it
	it.pos--
	return prev
}

// AddAssign moves the iterator by offset slots and returns it.
func (it *Iterator[T]) AddAssign(offset int) *Iterator[T] {
	it.pos += offset
	return it
}

// SubAssign moves the iterator back by offset slots and returns it.
func (it *Iterator[T]) SubAssign(offset int) *Iterator[T] {
	it.pos -= offset
	return it
}

// Add returns a copy of the iterator moved by offset slots.
func (it Iterator[T]) Add(offset int) Iterator[T] {
	it.pos += offset
	return it
}

// Sub returns a copy of the iterator moved back by offset slots.
func (it Iterator[T]) Sub(offset int) Iterator[T] {
	it.pos -= offset
	return it
}

// Diff returns the signed number of slots from rhs to it.
// Both iterators must come from the same allocation.
func (it Iterator[T]) Diff(rhs Iterator[T]) int {
	return it.pos - rhs.pos
}

// Compare returns -1, 0 or +1 depending on whether it is before, at or after rhs.
// Like Less and Greater it orders by position only and does not look at the
// allocation, so Compare may return 0 for iterators that are not Equal.
// Both iterators must come from the same allocation.
func (it Iterator[T]) Compare(rhs Iterator[T]) int {
	switch {
	case it.pos < rhs.pos:
		return -1
	case it.pos > rhs.pos:
		return 1
	default:
		return 0
	}
}

// Equal returns whether both iterators address the same slot of the same allocation.
func (it Iterator[T]) Equal(rhs Iterator[T]) bool {
	return it.pos == rhs.pos && unsafe.SliceData(it.array) == unsafe.SliceData(rhs.array)
}

// NotEqual returns whether the iterators address different slots.
func (it Iterator[T]) NotEqual(rhs Iterator[T]) bool {
	return !it.Equal(rhs)
}

// Less returns whether it is before rhs.
func (it Iterator[T]) Less(rhs Iterator[T]) bool {
	return it.pos < rhs.pos
}

// Greater returns whether it is after rhs.
func (it Iterator[T]) Greater(rhs Iterator[T]) bool {
	return it.pos > rhs.pos
}

// LessEqual returns whether it is before or at rhs.
func (it Iterator[T]) LessEqual(rhs Iterator[T]) bool {
	return it.pos <= rhs.pos
}

// GreaterEqual returns whether it is at or after rhs.
func (it Iterator[T]) GreaterEqual(rhs Iterator[T]) bool {
	return it.pos >= rhs.pos
}
