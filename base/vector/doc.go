// Package vector gives you a contiguous, resizable sequence of values with
// manual capacity management and pointer-like random access iterators.
//
// A Vector owns exactly one allocation. Its capacity starts at zero, becomes one
// on the first growth and doubles on every growth after that. Growing makes a
// new allocation, copies the live elements over and drops the old one.
//
// Iterators and element pointers are derived from the current allocation and
// carry no validity tracking. They keep addressing the old allocation after
// the vector grew, the same way a raw pointer would dangle:
//
//	v := vector.New[int]()
//	v.PushBack(1)
//	it := v.Begin()
//	v.PushBack(2) // grows from 1 to 2 slots, it now addresses the old allocation
//	_ = it.Value() // still 1, but writes through it are lost
//
// Only At checks its index. All other positional operations have
// preconditions that the caller must uphold; violating them is a programming
// error and panics.
//
// A Vector is not safe for concurrent use.
package vector
