package main

import (
	"errors"
	"fmt"

	"github.com/safing/vector/base/log"
	"github.com/safing/vector/base/vector"
)

var (
	errInvalidPosition  = errors.New("position out of bounds")
	errEmptyVector      = errors.New("vector is empty")
	errUnexpectedAccess = errors.New("access did not fail")
)

// Runner executes scripts against a fresh vector.
type Runner struct {
	vec     *vector.Vector[int]
	metrics *Metrics
}

// NewRunner returns a runner with an empty vector.
func NewRunner() *Runner {
	r := &Runner{
		vec: vector.New[int](),
	}
	r.metrics = NewMetrics(r.vec)
	r.vec.SetObserver(vector.ObserverFunc(func(oldCap, newCap int) {
		r.metrics.countGrowth()
		log.Tracef("vectorplay: grew from %d to %d slots", oldCap, newCap)
	}))
	return r
}

// Vector returns the vector the runner operates on.
func (r *Runner) Vector() *vector.Vector[int] {
	return r.vec
}

// Metrics returns the metrics of the runner.
func (r *Runner) Metrics() *Metrics {
	return r.metrics
}

// Run executes all steps of the script and checks its expectation.
func (r *Runner) Run(script *Script) error {
	for i, step := range script.Steps {
		if err := r.exec(step); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, step.Op, err)
		}
		r.metrics.countOp(step.Op)
		log.Debugf("vectorplay: step %d (%s) done, len=%d cap=%d", i+1, step.Op, r.vec.Len(), r.vec.Cap())
	}

	if script.Expect == nil {
		return nil
	}
	return script.Expect.Check(r.vec)
}

func (r *Runner) exec(step Step) error {
	v := r.vec

	switch step.Op {
	case OpPushBack:
		v.PushBack(*step.Value)

	case OpPopBack:
		if v.Empty() {
			return errEmptyVector
		}
		v.PopBack()

	case OpInsert:
		pos, err := r.position(*step.Pos, v.Len())
		if err != nil {
			return err
		}
		if step.Count == nil {
			v.Insert(pos, *step.Value)
		} else {
			v.InsertN(pos, *step.Count, *step.Value)
		}

	case OpErase:
		pos, err := r.position(*step.Pos, v.Len()-1)
		if err != nil {
			return err
		}
		v.Erase(pos)

	case OpEraseRange:
		first, err := r.position(*step.First, v.Len())
		if err != nil {
			return err
		}
		last, err := r.position(*step.Last, v.Len())
		if err != nil {
			return err
		}
		v.EraseRange(first, last)

	case OpClear:
		v.Clear()

	case OpAt:
		ref, err := v.At(*step.Pos)
		switch {
		case step.Fail && err == nil:
			return fmt.Errorf("%w: position %d returned %d", errUnexpectedAccess, *step.Pos, *ref)
		case step.Fail && errors.Is(err, vector.ErrOutOfRange):
			log.Debugf("vectorplay: access failed as expected: %s", err)
		case err != nil:
			return err
		}

	default:
		return fmt.Errorf("unknown op %q", step.Op)
	}

	return nil
}

// position converts an index into an iterator, as long as it is in [0, upTo].
func (r *Runner) position(index, upTo int) (vector.Iterator[int], error) {
	if index < 0 || index > upTo {
		return vector.Iterator[int]{}, fmt.Errorf("%w: %d not in [0, %d]", errInvalidPosition, index, upTo)
	}
	return r.vec.Begin().Add(index), nil
}
