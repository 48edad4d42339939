package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/r3labs/diff/v3"

	"github.com/safing/vector/base/utils"
	"github.com/safing/vector/base/vector"
)

var errExpectationFailed = errors.New("expectation failed")

// Check compares the vector against the expectation and reports all mismatches.
func (e *Expectation) Check(vec *vector.Vector[int]) error {
	var merr *multierror.Error

	if e.Size != nil && *e.Size != vec.Len() {
		merr = multierror.Append(merr, fmt.Errorf("%w: size is %d, expected %d", errExpectationFailed, vec.Len(), *e.Size))
	}
	if e.Capacity != nil && *e.Capacity != vec.Cap() {
		merr = multierror.Append(merr, fmt.Errorf("%w: capacity is %d, expected %d", errExpectationFailed, vec.Cap(), *e.Capacity))
	}

	if e.Values != nil && !utils.SliceEqual(e.Values, vec.Slice()) {
		changes, err := diffValues(e.Values, vec.Slice())
		if err != nil {
			return fmt.Errorf("failed to diff values: %w", err)
		}
		merr = multierror.Append(merr, fmt.Errorf("%w: values differ: %s", errExpectationFailed, strings.Join(changes, ", ")))
	}

	return merr.ErrorOrNil()
}

func diffValues(expected, actual []int) ([]string, error) {
	differ, err := diff.NewDiffer(diff.SliceOrdering(true))
	if err != nil {
		return nil, err
	}

	changelog, err := differ.Diff(expected, actual)
	if err != nil {
		return nil, err
	}

	changes := make([]string, 0, len(changelog))
	for _, change := range changelog {
		changes = append(changes, formatChange(change))
	}
	return changes, nil
}

func formatChange(change diff.Change) string {
	at := strings.Join(change.Path, ".")
	switch change.Type {
	case diff.CREATE:
		return fmt.Sprintf("[%s] unexpected %v", at, change.To)
	case diff.DELETE:
		return fmt.Sprintf("[%s] missing %v", at, change.From)
	default:
		return fmt.Sprintf("[%s] expected %v, got %v", at, change.From, change.To)
	}
}
