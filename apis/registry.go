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

package apis

import "reflect"

// Registry maps a fixed set of scalar types to their default Factory.
// Implementations are populated once before any lookup and never mutated,
// so unsynchronized concurrent reads are safe.
type Registry interface {
	// Lookup returns the default factory for t, if t is a supported
	// scalar type. A miss signals the caller to fall back to composite
	// construction.
	Lookup(t reflect.Type) (f Factory, ok bool)
	// Entries returns a snapshot for diagnostics/docs (order is unspecified).
	Entries() []Entry
	// Count returns the number of registered entries.
	Count() int
}

// Entry is a single (type, factory) association in a Registry snapshot.
type Entry struct {
	// Type is the registered scalar reflect.Type.
	Type reflect.Type
	// Factory is the default factory for Type.
	Factory Factory
}
