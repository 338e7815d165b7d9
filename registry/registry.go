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

// Package registry provides the process-wide mapping from the supported
// scalar types to their default value factories. A registry is populated
// once at construction and never mutated afterwards, which makes
// unsynchronized concurrent lookups safe.
package registry

import (
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"dirpx.dev/stubx/apis"
	"dirpx.dev/stubx/factory"
)

// New constructs a Registry with the default factory for every supported
// scalar type. String generation honors s.StringLength.
//
// Note on aliases: rune is int32 and byte is uint8, so those types share
// one registry entry with their integer identity; alphabetic runes are
// available through the facade or a custom factory restriction.
func New(s apis.Settings) apis.Registry {
	return &registry{
		entries: map[reflect.Type]apis.Factory{
			reflect.TypeOf(int(0)):            factory.Int(),
			reflect.TypeOf(int8(0)):           factory.Int8(),
			reflect.TypeOf(int16(0)):          factory.Int16(),
			reflect.TypeOf(int32(0)):          factory.Int32(),
			reflect.TypeOf(int64(0)):          factory.Int64(),
			reflect.TypeOf(uint(0)):           factory.Uint(),
			reflect.TypeOf(uint8(0)):          factory.Uint8(),
			reflect.TypeOf(uint16(0)):         factory.Uint16(),
			reflect.TypeOf(uint32(0)):         factory.Uint32(),
			reflect.TypeOf(uint64(0)):         factory.Uint64(),
			reflect.TypeOf(float32(0)):        factory.Float32(),
			reflect.TypeOf(float64(0)):        factory.Float64(),
			reflect.TypeOf(false):             factory.Bool(),
			reflect.TypeOf(""):                factory.StringOfLength(s.StringLength),
			reflect.TypeOf([]byte(nil)):       factory.ByteSlice(),
			reflect.TypeOf(time.Time{}):       factory.Time(),
			reflect.TypeOf(time.Duration(0)):  factory.Duration(),
			reflect.TypeOf(decimal.Decimal{}): factory.Decimal(),
			reflect.TypeOf(uuid.UUID{}):       factory.UUID(),
		},
	}
}

// registry is an immutable Registry implementation backed by a plain map.
// No lock is needed: the map is never written after New returns.
type registry struct {
	entries map[reflect.Type]apis.Factory
}

var _ apis.Registry = (*registry)(nil)

// Lookup returns the default factory for t if t is a supported scalar type.
func (r *registry) Lookup(t reflect.Type) (apis.Factory, bool) {
	if t == nil {
		return nil, false
	}
	f, ok := r.entries[t]
	return f, ok
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (r *registry) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, len(r.entries))
	for t, f := range r.entries {
		entries = append(entries, apis.Entry{Type: t, Factory: f})
	}
	return entries
}

// Count returns the number of registered entries.
func (r *registry) Count() int {
	return len(r.entries)
}
