package vector

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/copystructure"
)

// DeepClone returns a copy of the vector in which every element is deep
// copied, so elements holding pointers, maps or slices share no state with
// the source. Like Clone, the capacity of the copy equals its length.
//
// Elements without any references, like plain structs of numbers, are copied
// by assignment. Elements that hold references and contain unexported struct
// fields cannot be deep copied and fail with ErrNotCopyable. Values stored in
// interface typed fields are inspected by the copier only, not up front.
func (v *Vector[T]) DeepClone() (*Vector[T], error) {
	c := &Vector[T]{
		array: allocate[T](v.size),
		size:  v.size,
	}

	kinds := make(map[reflect.Type]copyKind)
	for i := 0; i < v.size; i++ {
		// Use the dynamic type, so interface elements are checked by their content.
		typ := reflect.TypeOf(any(v.array[i]))
		if typ == nil || reflect.ValueOf(any(v.array[i])).IsZero() {
			continue
		}

		kind, ok := kinds[typ]
		if !ok {
			kind = copyKindOf(typ)
			kinds[typ] = kind
		}

		switch kind {
		case copyAssign:
			c.array[i] = v.array[i]
			continue
		case copyRefused:
			return nil, fmt.Errorf("%w: element %d of type %s has unexported fields", ErrNotCopyable, i, typ)
		}

		copied, err := copystructure.Copy(v.array[i])
		if err != nil {
			return nil, fmt.Errorf("failed to copy element %d: %w", i, err)
		}
		// copystructure returns nil for nil interfaces and pointers.
		if copied == nil {
			continue
		}
		elem, ok := copied.(T)
		if !ok {
			return nil, fmt.Errorf("failed to copy element %d: got %T", i, copied)
		}
		c.array[i] = elem
	}

	return c, nil
}

type copyKind uint8

const (
	copyAssign copyKind = iota
	copyWalk
	copyRefused
)

// copyKindOf decides how values of typ are deep copied. copystructure leaves
// unexported fields at their zero value, so such types are only accepted when
// a plain assignment already is a deep copy.
func copyKindOf(typ reflect.Type) copyKind {
	var s typeScan
	s.scan(typ)
	switch {
	case !s.refs:
		return copyAssign
	case s.unexported:
		return copyRefused
	default:
		return copyWalk
	}
}

type typeScan struct {
	seen       map[reflect.Type]struct{}
	refs       bool
	unexported bool
}

func (s *typeScan) scan(typ reflect.Type) {
	if _, ok := s.seen[typ]; ok {
		return
	}
	if s.seen == nil {
		s.seen = make(map[reflect.Type]struct{})
	}
	s.seen[typ] = struct{}{}

	// Types with a registered copier are copied correctly as a whole.
	if _, ok := copystructure.Copiers[typ]; ok {
		s.refs = true
		return
	}
	if _, ok := copystructure.ShallowCopiers[typ]; ok {
		s.refs = true
		return
	}

	switch typ.Kind() {
	case reflect.Pointer, reflect.Slice:
		s.refs = true
		s.scan(typ.Elem())
	case reflect.Map:
		s.refs = true
		s.scan(typ.Key())
		s.scan(typ.Elem())
	case reflect.Array:
		s.scan(typ.Elem())
	case reflect.Struct:
		for i := 0; i < typ.NumField(); i++ {
			field := typ.Field(i)
			if !field.IsExported() {
				s.unexported = true
			}
			s.scan(field.Type)
		}
	case reflect.Interface, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		s.refs = true
	}
}
