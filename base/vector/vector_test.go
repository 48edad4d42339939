package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fill(values ...int) *Vector[int] {
	v := New[int]()
	for _, value := range values {
		v.PushBack(value)
	}
	return v
}

func TestVectorConstruction(t *testing.T) {
	t.Parallel()

	var zero Vector[string]
	assert.True(t, zero.Empty())
	assert.Equal(t, 0, zero.Len())
	assert.Equal(t, 0, zero.Cap())
	assert.True(t, zero.Begin().Equal(zero.End()))

	sized := NewSize[int](3)
	assert.Equal(t, 3, sized.Len())
	assert.Equal(t, 3, sized.Cap())
	assert.Equal(t, []int{0, 0, 0}, sized.Slice())

	filled := NewFilled(4, "x")
	assert.Equal(t, 4, filled.Len())
	assert.Equal(t, 4, filled.Cap())
	assert.Equal(t, []string{"x", "x", "x", "x"}, filled.Slice())

	none := NewFilled(0, 7)
	assert.True(t, none.Empty())
	assert.Equal(t, 0, none.Cap())
}

func TestVectorGrowth(t *testing.T) {
	t.Parallel()

	v := New[int]()
	expectedCap := 0
	for i := 1; i <= 100; i++ {
		if i > expectedCap {
			if expectedCap == 0 {
				expectedCap = 1
			} else {
				expectedCap *= 2
			}
		}
		v.PushBack(i)
		require.Equal(t, i, v.Len())
		require.Equal(t, expectedCap, v.Cap(), "capacity after %d appends", i)
	}
}

func TestVectorObserver(t *testing.T) {
	t.Parallel()

	var transitions [][2]int
	v := New[int]()
	v.SetObserver(ObserverFunc(func(oldCap, newCap int) {
		transitions = append(transitions, [2]int{oldCap, newCap})
	}))
	for i := range 5 {
		v.PushBack(i)
	}
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 4}, {4, 8}}, transitions)

	// Observer is not carried over.
	c := v.Clone()
	c.PushBack(1)
	c.PushBack(2)
	c.PushBack(3)
	c.PushBack(4)
	assert.Len(t, transitions, 4)

	v.SetObserver(nil)
	for i := range 10 {
		v.PushBack(i)
	}
	assert.Len(t, transitions, 4)
}

func TestVectorAccess(t *testing.T) {
	t.Parallel()

	v := fill(10, 20, 30)
	for i := range v.Len() {
		ref, err := v.At(i)
		require.NoError(t, err)
		assert.Same(t, v.Index(i), ref)
	}

	for _, pos := range []int{-1, 3, 4, 100} {
		ref, err := v.At(pos)
		assert.ErrorIs(t, err, ErrOutOfRange, "pos %d", pos)
		assert.Nil(t, ref)
	}

	assert.Equal(t, 10, *v.Front())
	assert.Equal(t, 30, *v.Back())

	*v.Front() = 11
	ref, err := v.At(2)
	require.NoError(t, err)
	*ref = 33
	assert.Equal(t, []int{11, 20, 33}, v.Slice())

	_, err = New[int]().At(0)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestVectorUncheckedAccessPanicsOutsideAllocation(t *testing.T) {
	t.Parallel()

	empty := New[int]()
	assert.Panics(t, func() { empty.Front() })
	assert.Panics(t, func() { empty.Back() })
	assert.Panics(t, func() { empty.Index(0) })
	assert.Panics(t, func() { empty.PopBack() })
}

func TestVectorScenario(t *testing.T) {
	t.Parallel()

	v := New[int]()
	v.PushBack(1)
	v.PushBack(2)
	v.PushBack(3)
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 4, v.Cap())
	assert.Equal(t, []int{1, 2, 3}, v.Slice())

	v.Erase(v.Begin().Add(1))
	assert.Equal(t, []int{1, 3}, v.Slice())
	assert.Equal(t, 2, v.Len())

	v.InsertN(v.Begin(), 2, 9)
	assert.Equal(t, []int{9, 9, 1, 3}, v.Slice())
	assert.Equal(t, 4, v.Len())
	assert.Equal(t, 4, v.Cap())
}

func TestVectorPopBack(t *testing.T) {
	t.Parallel()

	v := fill(1, 2, 3)
	v.PopBack()
	assert.Equal(t, []int{1, 2}, v.Slice())
	v.PopBack()
	v.PopBack()
	assert.True(t, v.Empty())
	assert.Equal(t, 4, v.Cap())
}

func TestVectorInsert(t *testing.T) {
	t.Parallel()

	v := fill(1, 2, 3, 4)
	it := v.Insert(v.Begin().Add(2), 99)
	assert.Equal(t, []int{1, 2, 99, 3, 4}, v.Slice())
	assert.Equal(t, 2, it.Diff(v.Begin()))
	assert.Equal(t, 99, it.Value())
	assert.Equal(t, 8, v.Cap())

	it = v.Insert(v.End(), 100)
	assert.Equal(t, 100, it.Value())
	assert.Equal(t, 100, *v.Back())

	it = v.Insert(v.Begin(), 0)
	assert.True(t, it.Equal(v.Begin()))
	assert.Equal(t, []int{0, 1, 2, 99, 3, 4, 100}, v.Slice())

	empty := New[int]()
	it = empty.Insert(empty.Begin(), 5)
	assert.Equal(t, []int{5}, empty.Slice())
	assert.True(t, it.Equal(empty.Begin()))
}

func TestVectorInsertEraseRoundTrip(t *testing.T) {
	t.Parallel()

	original := []int{4, 8, 15, 16, 23, 42}
	for pos := 0; pos <= len(original); pos++ {
		v := fill(original...)
		it := v.Insert(v.Begin().Add(pos), -1)
		require.Equal(t, len(original)+1, v.Len())
		v.Erase(it)
		assert.Equal(t, original, v.Slice(), "pos %d", pos)
	}
}

func TestVectorInsertN(t *testing.T) {
	t.Parallel()

	original := []int{1, 2, 3, 4, 5}
	for i := 0; i <= len(original); i++ {
		for _, n := range []int{1, 2, 7} {
			v := fill(original...)
			it := v.InsertN(v.Begin().Add(i), n, 0)
			require.Equal(t, len(original)+n, v.Len())
			assert.Equal(t, i, it.Diff(v.Begin()))

			got := v.Slice()
			for j := i; j < i+n; j++ {
				assert.Equal(t, 0, got[j])
			}
			assert.Equal(t, original[:i], got[:i])
			assert.Equal(t, original[i:], got[i+n:])
		}
	}

	// Capacity keeps following the doubling policy.
	v := fill(1, 2, 3)
	v.InsertN(v.End(), 6, 0)
	assert.Equal(t, 9, v.Len())
	assert.Equal(t, 16, v.Cap())

	// Zero count returns the given position untouched.
	pos := v.Begin().Add(3)
	assert.True(t, v.InsertN(pos, 0, 1).Equal(pos))
	assert.Equal(t, 9, v.Len())

	assert.Panics(t, func() { v.InsertN(v.Begin(), -1, 0) })
}

func TestVectorErase(t *testing.T) {
	t.Parallel()

	v := fill(1, 2, 3, 4)
	it := v.Erase(v.Begin())
	assert.Equal(t, []int{2, 3, 4}, v.Slice())
	assert.True(t, it.Equal(v.Begin()))
	assert.Equal(t, 2, it.Value())

	it = v.Erase(v.End().Sub(1))
	assert.Equal(t, []int{2, 3}, v.Slice())
	assert.True(t, it.Equal(v.End()))

	// Vacated slots are reset.
	assert.Equal(t, 0, *v.Index(2))
	assert.Equal(t, 0, *v.Index(3))
}

func TestVectorEraseRange(t *testing.T) {
	t.Parallel()

	original := []int{0, 1, 2, 3, 4, 5, 6, 7}
	for first := 0; first <= len(original); first++ {
		for last := first; last <= len(original); last++ {
			v := fill(original...)
			it := v.EraseRange(v.Begin().Add(first), v.Begin().Add(last))

			k := last - first
			require.Equal(t, len(original)-k, v.Len())
			assert.Equal(t, first, it.Diff(v.Begin()))
			if last == len(original) {
				assert.True(t, it.Equal(v.End()))
			}

			expected := append(append([]int{}, original[:first]...), original[last:]...)
			assert.Equal(t, expected, v.Slice(), "erase [%d, %d)", first, last)
			assert.Equal(t, 8, v.Cap())
		}
	}
}

func TestVectorClear(t *testing.T) {
	t.Parallel()

	grown := 0
	v := fill(1, 2, 3, 4, 5)
	v.SetObserver(ObserverFunc(func(int, int) { grown++ }))
	require.Equal(t, 8, v.Cap())

	v.Clear()
	assert.True(t, v.Empty())
	assert.Equal(t, 8, v.Cap())
	for i := range 5 {
		assert.Equal(t, 0, *v.Index(i), "slot %d not reset", i)
	}

	for i := range 8 {
		v.PushBack(i)
	}
	assert.Equal(t, 0, grown)
	assert.Equal(t, 8, v.Cap())

	v.PushBack(8)
	assert.Equal(t, 1, grown)
	assert.Equal(t, 16, v.Cap())
}

func TestVectorCopy(t *testing.T) {
	t.Parallel()

	v := fill(1, 2, 3)
	c := v.Clone()
	assert.Equal(t, v.Slice(), c.Slice())
	assert.Equal(t, 3, c.Cap())

	*c.Front() = 100
	c.PushBack(4)
	assert.Equal(t, []int{1, 2, 3}, v.Slice())
	assert.Equal(t, []int{100, 2, 3, 4}, c.Slice())

	empty := New[int]().Clone()
	assert.True(t, empty.Empty())
	assert.Equal(t, 0, empty.Cap())

	dst := fill(9, 9, 9, 9, 9)
	dst.Assign(v)
	assert.Equal(t, []int{1, 2, 3}, dst.Slice())
	assert.Equal(t, 3, dst.Cap())
	*dst.Back() = 0
	assert.Equal(t, 3, *v.Back())

	dst.Assign(dst)
	assert.Equal(t, []int{1, 2, 0}, dst.Slice())
}

func TestVectorMove(t *testing.T) {
	t.Parallel()

	src := fill(1, 2, 3)
	it := src.Begin().Add(1)

	moved := src.Take()
	assert.Equal(t, 0, src.Len())
	assert.Equal(t, 0, src.Cap())
	assert.Equal(t, []int{1, 2, 3}, moved.Slice())
	assert.Equal(t, 4, moved.Cap())
	assert.True(t, it.Equal(moved.Begin().Add(1)))

	// Source stays usable.
	src.PushBack(7)
	assert.Equal(t, []int{7}, src.Slice())

	dst := fill(5, 6)
	dst.MoveFrom(moved)
	assert.Equal(t, []int{1, 2, 3}, dst.Slice())
	assert.Equal(t, 0, moved.Len())
	assert.Equal(t, 0, moved.Cap())

	dst.MoveFrom(dst)
	assert.Equal(t, []int{1, 2, 3}, dst.Slice())

	dst.Release()
	assert.True(t, dst.Empty())
	assert.Equal(t, 0, dst.Cap())
}

func TestVectorGrowthInvalidatesIterators(t *testing.T) {
	t.Parallel()

	v := fill(1, 2)
	before := v.Begin()
	v.PushBack(3)
	assert.False(t, before.Equal(v.Begin()))

	// Old iterator still reads the old allocation.
	assert.Equal(t, 1, before.Value())
	*before.Ref() = 100
	assert.Equal(t, 1, *v.Front())

	// No growth, no invalidation.
	begin := v.Begin()
	v.PushBack(4)
	assert.True(t, begin.Equal(v.Begin()))
}

func TestVectorString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "<Vector len=2 cap=2 [1 2]>", fill(1, 2).String())
	assert.Equal(t, "<Vector len=0 cap=0 []>", New[int]().String())
}

func BenchmarkPushBack(b *testing.B) {
	for range b.N {
		v := New[int]()
		for i := range 1024 {
			v.PushBack(i)
		}
	}
}
