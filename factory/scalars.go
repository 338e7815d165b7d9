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

package factory

import (
	"dirpx.dev/stubx/apis"
	"dirpx.dev/stubx/utils/random"
)

// Scalar adapters: one factory per supported scalar kind, wrapping the
// primitive generators in utils/random. These back the registry defaults.

// Int produces full-width random ints.
func Int() apis.Factory {
	return Func(func() (any, error) { return random.Int(), nil })
}

// Int8 produces full-width random int8s.
func Int8() apis.Factory {
	return Func(func() (any, error) { return int8(random.Uint8()), nil })
}

// Int16 produces full-width random int16s.
func Int16() apis.Factory {
	return Func(func() (any, error) { return random.Int16(), nil })
}

// Int32 produces full-width random int32s.
func Int32() apis.Factory {
	return Func(func() (any, error) { return random.Int32(), nil })
}

// Int64 produces full-width random int64s.
func Int64() apis.Factory {
	return Func(func() (any, error) { return random.Int64(), nil })
}

// Uint produces full-width random uints.
func Uint() apis.Factory {
	return Func(func() (any, error) { return random.Uint(), nil })
}

// Uint8 produces full-width random uint8s.
func Uint8() apis.Factory {
	return Func(func() (any, error) { return random.Uint8(), nil })
}

// Uint16 produces full-width random uint16s.
func Uint16() apis.Factory {
	return Func(func() (any, error) { return random.Uint16(), nil })
}

// Uint32 produces full-width random uint32s.
func Uint32() apis.Factory {
	return Func(func() (any, error) { return random.Uint32(), nil })
}

// Uint64 produces full-width random uint64s.
func Uint64() apis.Factory {
	return Func(func() (any, error) { return random.Uint64(), nil })
}

// Float32 produces random float32s in [0,1).
func Float32() apis.Factory {
	return Func(func() (any, error) { return random.Float32(), nil })
}

// Float64 produces random float64s in [0,1).
func Float64() apis.Factory {
	return Func(func() (any, error) { return random.Float64(), nil })
}

// Bool produces random booleans.
func Bool() apis.Factory {
	return Func(func() (any, error) { return random.Bool(), nil })
}

// StringOfLength produces random alphanumeric strings of length n.
func StringOfLength(n int) apis.Factory {
	return Func(func() (any, error) { return random.String(n), nil })
}

// ByteSlice produces random byte slices (length [2,1000), bytes [0,127]).
func ByteSlice() apis.Factory {
	return Func(func() (any, error) { return random.ByteSlice(), nil })
}

// Decimal produces random decimals with randomized scale.
func Decimal() apis.Factory {
	return Func(func() (any, error) { return random.Decimal(), nil })
}

// Time produces random instants within one year forward of now.
func Time() apis.Factory {
	return Func(func() (any, error) { return random.Time(), nil })
}

// Duration produces random time-of-day offsets in [0,12h).
func Duration() apis.Factory {
	return Func(func() (any, error) { return random.Duration(), nil })
}

// UUID produces random UUIDs.
func UUID() apis.Factory {
	return Func(func() (any, error) { return random.UUID(), nil })
}
