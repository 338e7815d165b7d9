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

// Config is the mutation surface of a build configuration: the per-call
// accumulator of restrictions that is later consumed by the population
// mechanism. Restrictions write into it through Restriction.ApplyTo.
//
// A Config is created fresh for one build, mutated in restriction argument
// order, consumed exactly once, then discarded. It is never shared across
// calls or goroutines. Re-targeting the same scope key overwrites the
// previous rule: apply-order is precedence.
type Config interface {
	// Property forces a literal or Factory-derived value for every
	// occurrence of the named property anywhere in the graph.
	Property(name string, value any)

	// Path forces a literal or Factory-derived value at one exact dotted
	// location in the graph (e.g. "person.name").
	Path(path string, value any)

	// ExcludeProperty skips population for the named property everywhere.
	ExcludeProperty(name string)

	// ExcludePath skips population at one exact dotted location.
	ExcludePath(path string)

	// Subtype instantiates one of the named concrete types whenever the
	// interface type super is encountered (random choice if several).
	Subtype(super reflect.Type, subs ...reflect.Type)

	// Factory overrides the Factory used whenever type t is encountered.
	// It always takes precedence over the registry default.
	Factory(t reflect.Type, f Factory)

	// CollectionSize bounds the size of every unsized collection.
	CollectionSize(min, max int)

	// CollectionSizeForPath bounds collection sizes at one exact location.
	CollectionSizeForPath(path string, min, max int)

	// CollectionSizeForProperty bounds collection sizes for the named
	// property wherever it occurs.
	CollectionSizeForProperty(name string, min, max int)
}
