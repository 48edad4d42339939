package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	yaml "gopkg.in/yaml.v3"
)

// Operations.
const (
	OpPushBack   = "push_back"
	OpPopBack    = "pop_back"
	OpInsert     = "insert"
	OpErase      = "erase"
	OpEraseRange = "erase_range"
	OpClear      = "clear"
	OpAt         = "at"
)

// Script is a named sequence of vector operations with an optional expected outcome.
type Script struct {
	Name   string       `yaml:"name"`
	Steps  []Step       `yaml:"steps"`
	Expect *Expectation `yaml:"expect,omitempty"`
}

// Step is a single vector operation. Positions are element indexes.
type Step struct {
	Op    string `yaml:"op"`
	Value *int   `yaml:"value,omitempty"`
	Pos   *int   `yaml:"pos,omitempty"`
	Count *int   `yaml:"count,omitempty"`
	First *int   `yaml:"first,omitempty"`
	Last  *int   `yaml:"last,omitempty"`

	// Fail requires an "at" step to signal out-of-range.
	Fail bool `yaml:"fail,omitempty"`
}

// Expectation describes the state of the vector after all steps ran.
// Unset fields are not checked.
type Expectation struct {
	Size     *int  `yaml:"size,omitempty"`
	Capacity *int  `yaml:"capacity,omitempty"`
	Values   []int `yaml:"values,omitempty"`
}

var errInvalidScript = errors.New("invalid script")

// LoadScript reads and validates the script at path.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	script, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load script %s: %w", path, err)
	}
	if script.Name == "" {
		script.Name = path
	}
	return script, nil
}

// ParseScript decodes and validates a YAML script. Unknown fields are rejected.
func ParseScript(data []byte) (*Script, error) {
	script := &Script{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(script); err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidScript, err)
	}

	if err := script.Validate(); err != nil {
		return nil, err
	}
	return script, nil
}

// Validate checks all steps and reports every problem at once.
func (s *Script) Validate() error {
	var merr *multierror.Error

	if len(s.Steps) == 0 {
		merr = multierror.Append(merr, fmt.Errorf("%w: no steps", errInvalidScript))
	}

	for i, step := range s.Steps {
		for _, problem := range step.problems() {
			merr = multierror.Append(merr, fmt.Errorf("%w: step %d (%s): %s", errInvalidScript, i+1, step.Op, problem))
		}
	}

	if s.Expect != nil {
		if s.Expect.Size != nil && *s.Expect.Size < 0 {
			merr = multierror.Append(merr, fmt.Errorf("%w: expected size is negative", errInvalidScript))
		}
		if s.Expect.Capacity != nil && *s.Expect.Capacity < 0 {
			merr = multierror.Append(merr, fmt.Errorf("%w: expected capacity is negative", errInvalidScript))
		}
	}

	return merr.ErrorOrNil()
}

func (step Step) problems() (problems []string) {
	need := func(field string, v *int) {
		switch {
		case v == nil:
			problems = append(problems, field+" missing")
		case *v < 0:
			problems = append(problems, field+" is negative")
		}
	}
	forbid := func(field string, set bool) {
		if set {
			problems = append(problems, field+" not allowed")
		}
	}

	switch step.Op {
	case OpPushBack:
		if step.Value == nil {
			problems = append(problems, "value missing")
		}
	case OpInsert:
		need("pos", step.Pos)
		if step.Value == nil {
			problems = append(problems, "value missing")
		}
		if step.Count != nil && *step.Count < 0 {
			problems = append(problems, "count is negative")
		}
	case OpErase:
		need("pos", step.Pos)
	case OpAt:
		// Negative positions are fine, they must fail the range check.
		if step.Pos == nil {
			problems = append(problems, "pos missing")
		}
	case OpEraseRange:
		need("first", step.First)
		need("last", step.Last)
		if step.First != nil && step.Last != nil && *step.First > *step.Last {
			problems = append(problems, "first is after last")
		}
	case OpPopBack, OpClear:
	case "":
		return []string{"op missing"}
	default:
		return []string{"unknown op"}
	}

	forbid("fail", step.Fail && step.Op != OpAt)
	forbid("count", step.Count != nil && step.Op != OpInsert)
	forbid("first/last", (step.First != nil || step.Last != nil) && step.Op != OpEraseRange)

	return problems
}
