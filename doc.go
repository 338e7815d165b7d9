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

// Package stubx builds random test fixtures for arbitrary Go types.
//
// stubx is responsible for turning "some Go type" into a fully populated
// random instance of that type. It is meant for tests that need valid but
// uninteresting data: builders of request payloads, database rows, domain
// entities, etc. Examples:
//
//	p, err := stubx.RandomInstanceOf[Person]()
//	ps, err := stubx.RandomSliceOfN[Person](3, 3)
//	name := stubx.RandomStringOfLength(10)
//
// # Design
//
// The core of stubx is a read-mostly global snapshot (state). The
// snapshot holds two things:
//
//   - Settings: the knobs for generation (default string length, default
//     collection size bounds, maximum recursion depth for cyclic object
//     graphs).
//
//   - Registry: a process-wide mapping from Go types to value factories.
//     The default registry covers the scalar set: the integer and
//     unsigned widths, floats, bool, string, []byte, time.Time,
//     time.Duration, decimal.Decimal and uuid.UUID. A custom registry
//     can be installed at runtime (SetRegistry).
//
// Both live inside a single immutable struct called state. The package
// holds an atomic pointer to the current state. Readers load that
// pointer, use it, and never mutate it. Writers build a brand-new state
// under a short build mutex and atomically swap it in. Concurrent
// callers always see a consistent snapshot.
//
// # Construction
//
// RandomInstanceOf[T] resolves a value for T in priority order:
//
//  1. A factory installed for T via a Factory restriction.
//  2. The registry factory for T (the scalar set by default). Registry
//     hits short-circuit: restrictions do not apply to them.
//  3. Recursive construction by kind: structs populate their exported
//     fields, pointers are allocated and populated transparently, slices
//     and maps receive a random number of random elements, interfaces
//     receive a random registered subtype, and named scalar types fall
//     back to their underlying kind.
//
// Recursive construction is steered by restrictions, created with the
// package-level constructors and applied in order:
//
//   - Property / Path pin a named field, or the field at a dotted path
//     rooted at the lowered target type name ("person.name"), to a fixed
//     value or a factory-derived one.
//   - ExcludeProperty / ExcludePath leave the field at its zero value.
//   - Subtype registers concrete candidates for an interface type.
//   - Factory overrides the value source for a whole type.
//   - CollectionSize and its path and property variants bound collection
//     sizes; a path rule beats a property rule beats the global rule.
//
// Later restrictions on the same scope key overwrite earlier ones, so an
// exclusion followed by an assignment assigns, and vice versa.
//
// # Concurrency model
//
// Reads (RandomInstanceOf, the Random* scalar helpers, Settings,
// Registry) are wait-free: they load the current *state atomically and
// never take locks. The registry held by the state must itself be
// concurrency-safe for reads.
//
// Writes (SetSettings, SetRegistry, UnpinRegistry) take a short build
// mutex, assemble a brand-new state struct, and publish it via an atomic
// pointer swap. Settings changes rebuild the default registry so scalar
// factories track the new settings; a registry installed via SetRegistry
// is pinned and survives settings changes until UnpinRegistry.
package stubx
