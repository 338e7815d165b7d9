/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package factory provides the apis.Factory implementations: fixed
// literals, caller-supplied functions, uniform picks over a value domain,
// and slice composition over an element factory. All factories are
// immutable and freely shareable.
package factory

import (
	"errors"
	"fmt"
	"reflect"

	"dirpx.dev/stubx/apis"
	"dirpx.dev/stubx/utils/random"
)

var (
	// ErrEmptyEnum is returned when an enum factory has no values to pick from.
	ErrEmptyEnum = errors.New("stubx(factory): enum domain is empty")
	// ErrNilFunc is returned when a nil factory function is invoked.
	ErrNilFunc = errors.New("stubx(factory): nil factory func")
	// ErrNilElemFactory is returned when a slice factory has no element factory.
	ErrNilElemFactory = errors.New("stubx(factory): nil element factory")
	// ErrElemMismatch is returned when an element factory produces a value
	// that cannot be stored in the slice's element type.
	ErrElemMismatch = errors.New("stubx(factory): element value does not fit element type")
)

// Fixed returns a factory that always yields v.
func Fixed(v any) apis.Factory {
	return fixed{v: v}
}

// fixed wraps a literal.
type fixed struct {
	v any
}

var _ apis.Factory = fixed{}

// NewValue returns the wrapped literal.
func (f fixed) NewValue() (any, error) {
	return f.v, nil
}

// Func adapts a plain function into a factory.
func Func(fn func() (any, error)) apis.Factory {
	return funcFactory{fn: fn}
}

// funcFactory defers to a caller-supplied function.
type funcFactory struct {
	fn func() (any, error)
}

var _ apis.Factory = funcFactory{}

// NewValue invokes the wrapped function.
func (f funcFactory) NewValue() (any, error) {
	if f.fn == nil {
		return nil, ErrNilFunc
	}
	return f.fn()
}

// OneOf returns a factory that uniformly picks one of values.
// An empty domain yields nil, never an error.
func OneOf(values ...any) apis.Factory {
	return oneOf{values: values}
}

// oneOf picks uniformly from a value domain, nil on empty.
type oneOf struct {
	values []any
}

var _ apis.Factory = oneOf{}

// NewValue picks one of the wrapped values, or nil when there are none.
func (f oneOf) NewValue() (any, error) {
	if len(f.values) == 0 {
		return nil, nil
	}
	return f.values[random.IntBetween(0, len(f.values)-1)], nil
}

// EnumOf returns a factory that uniformly selects one of the enum's
// declared constants by index. An empty domain fails with ErrEmptyEnum.
func EnumOf(values ...any) apis.Factory {
	return enumOf{values: values}
}

// enumOf is oneOf with a fatal empty domain.
type enumOf struct {
	values []any
}

var _ apis.Factory = enumOf{}

// NewValue selects a constant, or fails when the enum declares none.
func (f enumOf) NewValue() (any, error) {
	if len(f.values) == 0 {
		return nil, ErrEmptyEnum
	}
	return f.values[random.IntBetween(0, len(f.values)-1)], nil
}

// SliceOf returns a factory producing []elemType slices. The concrete
// size is resolved first (an exact size when min == max, otherwise a
// uniform draw over [min,max]) and the element factory is then invoked
// that many times independently: no sharing of generated elements, no
// deduplication.
// Negative bounds clamp to zero and reversed bounds are swapped.
func SliceOf(elem apis.Factory, elemType reflect.Type, min, max int) apis.Factory {
	return sliceOf{elem: elem, elemType: elemType, min: min, max: max}
}

// sliceOf composes an element factory into an ordered materialization.
// It holds the element factory by reference for its own lifetime only.
type sliceOf struct {
	elem     apis.Factory
	elemType reflect.Type
	min, max int
}

var _ apis.Factory = sliceOf{}

// NewValue materializes one slice in insertion order.
func (f sliceOf) NewValue() (any, error) {
	if f.elem == nil {
		return nil, ErrNilElemFactory
	}
	if f.elemType == nil {
		return nil, fmt.Errorf("%w: nil element type", ErrElemMismatch)
	}

	min, max := f.min, f.max
	if min < 0 {
		min = 0
	}
	if max < 0 {
		max = 0
	}
	if min > max {
		min, max = max, min
	}

	size := random.IntBetween(min, max)
	out := reflect.MakeSlice(reflect.SliceOf(f.elemType), size, size)
	for i := 0; i < size; i++ {
		v, err := f.elem.NewValue()
		if err != nil {
			return nil, err
		}
		if v == nil {
			continue // leave the zero element
		}
		rv := reflect.ValueOf(v)
		switch {
		case rv.Type().AssignableTo(f.elemType):
			out.Index(i).Set(rv)
		case rv.Type().ConvertibleTo(f.elemType):
			out.Index(i).Set(rv.Convert(f.elemType))
		default:
			return nil, fmt.Errorf("%w: %v into %v", ErrElemMismatch, rv.Type(), f.elemType)
		}
	}
	return out.Interface(), nil
}
