package vector

// grow moves the elements to an allocation of double the size, or of size
// one if there is no allocation yet. All iterators and element pointers are
// invalidated.
func (v *Vector[T]) grow() {
	oldCap := len(v.array)
	newCap := 1
	if oldCap > 0 {
		newCap = oldCap * 2
	}

	grown := make([]T, newCap)
	copy(grown, v.array[:v.size])
	v.array = grown

	if v.observer != nil {
		v.observer.Grown(oldCap, newCap)
	}
}

// PushBack appends value at the end of the vector.
// Iterators are invalidated only if the vector had to grow.
func (v *Vector[T]) PushBack(value T) {
	if v.size == len(v.array) {
		v.grow()
	}
	v.array[v.size] = value
	v.size++
}

// PopBack removes the last element. The vector must not be empty.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("vector: PopBack on empty vector")
	}
	v.Erase(v.End().Sub(1))
}

// Insert inserts value before pos and returns an iterator to the inserted element.
// pos must be in [Begin(), End()]. Iterators at or after pos are invalidated,
// all iterators are invalidated if the vector had to grow.
func (v *Vector[T]) Insert(pos Iterator[T], value T) Iterator[T] {
	index := pos.Diff(v.Begin())
	if v.size == len(v.array) {
		v.grow()
	}

	// Shift the tail one slot towards the end.
	copy(v.array[index+1:v.size+1], v.array[index:v.size])
	v.array[index] = value
	v.size++

	return Iterator[T]{array: v.array, pos: index}
}

// InsertN inserts count copies of value before pos and returns an iterator to
// the first inserted element. If count is zero, pos is returned unchanged.
// pos must be in [Begin(), End()] and count must not be negative.
func (v *Vector[T]) InsertN(pos Iterator[T], count int, value T) Iterator[T] {
	switch {
	case count == 0:
		return pos
	case count < 0:
		panic("vector: InsertN with negative count")
	}

	index := pos.Diff(v.Begin())
	for v.size+count > len(v.array) {
		v.grow()
	}

	// Shift the tail count slots towards the end, then fill the gap.
	copy(v.array[index+count:v.size+count], v.array[index:v.size])
	for i := index; i < index+count; i++ {
		v.array[i] = value
	}
	v.size += count

	return Iterator[T]{array: v.array, pos: index}
}

// Erase removes the element at pos and returns an iterator to the element
// that took its place, which is End() if the last element was removed.
// pos must be in [Begin(), End()).
func (v *Vector[T]) Erase(pos Iterator[T]) Iterator[T] {
	index := pos.Diff(v.Begin())

	// Shift the tail one slot towards the front.
	copy(v.array[index:v.size-1], v.array[index+1:v.size])

	// Reset the vacated slot so it does not keep values reachable.
	var zero T
	v.array[v.size-1] = zero
	v.size--

	return Iterator[T]{array: v.array, pos: index}
}

// EraseRange removes the elements in [first, last) and returns an iterator to
// the element after the removed range, which is End() if the range reached the end.
// first and last must be in [Begin(), End()] with first <= last.
func (v *Vector[T]) EraseRange(first, last Iterator[T]) Iterator[T] {
	firstIndex := first.Diff(v.Begin())
	lastIndex := last.Diff(v.Begin())
	removed := lastIndex - firstIndex

	copy(v.array[firstIndex:], v.array[lastIndex:v.size])
	clear(v.array[v.size-removed : v.size])
	v.size -= removed

	return Iterator[T]{array: v.array, pos: firstIndex}
}

// Clear resets all elements to the zero value and sets the length to zero.
// The allocation is kept, so following appends reuse it.
func (v *Vector[T]) Clear() {
	clear(v.array[:v.size])
	v.size = 0
}
