package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safing/vector/base/vector"
)

func TestExpectationCheck(t *testing.T) {
	t.Parallel()

	v := vector.New[int]()
	for _, value := range []int{1, 2, 3} {
		v.PushBack(value)
	}

	ok := &Expectation{Size: intp(3), Capacity: intp(4), Values: []int{1, 2, 3}}
	assert.NoError(t, ok.Check(v))

	// Unset fields are not checked.
	assert.NoError(t, (&Expectation{}).Check(v))

	err := (&Expectation{Size: intp(2), Capacity: intp(8)}).Check(v)
	require.ErrorIs(t, err, errExpectationFailed)
	assert.ErrorContains(t, err, "size is 3, expected 2")
	assert.ErrorContains(t, err, "capacity is 4, expected 8")

	err = (&Expectation{Values: []int{1, 5, 3}}).Check(v)
	require.ErrorIs(t, err, errExpectationFailed)
	assert.ErrorContains(t, err, "expected 5, got 2")

	err = (&Expectation{Values: []int{1, 2}}).Check(v)
	require.ErrorIs(t, err, errExpectationFailed)
	assert.ErrorContains(t, err, "unexpected 3")

	err = (&Expectation{Values: []int{1, 2, 3, 4}}).Check(v)
	require.ErrorIs(t, err, errExpectationFailed)
	assert.ErrorContains(t, err, "missing 4")

	// An empty list expects an empty vector.
	err = (&Expectation{Values: []int{}}).Check(v)
	assert.ErrorIs(t, err, errExpectationFailed)
	assert.NoError(t, (&Expectation{Values: []int{}}).Check(vector.New[int]()))
}
