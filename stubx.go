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

package stubx

import (
	"fmt"
	"reflect"

	"dirpx.dev/stubx/apis"
	"dirpx.dev/stubx/bean"
	"dirpx.dev/stubx/factory"
	"dirpx.dev/stubx/utils/random"
)

// TypeOf returns the reflect.Type of T without requiring a value of T.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// RandomInstanceOf builds a random instance of T.
//
// Types with a registry factory (the scalar set by default) dispatch
// straight to that factory; restrictions do not apply to them. All other
// types are constructed recursively with the restrictions applied, in
// order, to the construction.
func RandomInstanceOf[T any](restrictions ...apis.Restriction) (T, error) {
	var zero T

	t := TypeOf[T]()
	s := st.Load()

	if f, ok := s.reg.Lookup(t); ok {
		v, err := f.NewValue()
		if err != nil {
			return zero, fmt.Errorf("%w: %v: %w", bean.ErrConstruction, t, err)
		}
		out, ok := v.(T)
		if !ok {
			return zero, fmt.Errorf("%w: %v: factory produced %T", bean.ErrConstruction, t, v)
		}
		return out, nil
	}

	b := bean.New(t, s.reg, s.settings)
	for _, r := range restrictions {
		r.ApplyTo(b)
	}

	v, err := b.Build()
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

// MustRandomInstanceOf is RandomInstanceOf that panics on error.
func MustRandomInstanceOf[T any](restrictions ...apis.Restriction) T {
	v, err := RandomInstanceOf[T](restrictions...)
	if err != nil {
		panic(err)
	}
	return v
}

// RandomSliceOf builds a slice of random instances of T whose length is
// drawn from the configured default collection bounds.
func RandomSliceOf[T any](restrictions ...apis.Restriction) ([]T, error) {
	s := st.Load().settings
	return RandomSliceOfN[T](s.CollectionMin, s.CollectionMax, restrictions...)
}

// RandomSliceOfN builds a slice of random instances of T whose length is
// drawn from [min, max]. Negative bounds are clamped to zero and
// reversed bounds are swapped.
func RandomSliceOfN[T any](min, max int, restrictions ...apis.Restriction) ([]T, error) {
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
	out := make([]T, 0, size)
	for i := 0; i < size; i++ {
		v, err := RandomInstanceOf[T](restrictions...)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// OneOf returns a uniformly chosen member of values, or the zero value
// of T when values is empty.
func OneOf[T any](values ...T) T {
	var zero T
	if len(values) == 0 {
		return zero
	}
	return values[random.IntBetween(0, len(values)-1)]
}

// RandomEnum returns a uniformly chosen member of the explicit value
// domain. An empty domain is an error: enumerations are expected to
// enumerate something.
func RandomEnum[E any](domain ...E) (E, error) {
	var zero E
	if len(domain) == 0 {
		return zero, factory.ErrEmptyEnum
	}
	return domain[random.IntBetween(0, len(domain)-1)], nil
}
