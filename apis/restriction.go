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

// RestrictionKind discriminates the restriction variants. Each kind writes
// into exactly one scope of a Config (property map, path map, subtype map,
// factory map, or a size bound).
type RestrictionKind uint8

const (
	// RestrictProperty assigns a value to a property name everywhere.
	RestrictProperty RestrictionKind = iota + 1
	// RestrictPath assigns a value at one exact dotted path.
	RestrictPath
	// RestrictExcludeProperty skips a property name everywhere.
	RestrictExcludeProperty
	// RestrictExcludePath skips one exact dotted path.
	RestrictExcludePath
	// RestrictSubtype substitutes concrete types for an interface type.
	RestrictSubtype
	// RestrictFactory overrides the factory for a concrete type.
	RestrictFactory
	// RestrictCollectionSize bounds every unsized collection.
	RestrictCollectionSize
	// RestrictCollectionSizeForPath bounds collections at one path.
	RestrictCollectionSizeForPath
	// RestrictCollectionSizeForProperty bounds collections for a property.
	RestrictCollectionSizeForProperty
)

// Restriction is one unit of build configuration: a tagged variant that,
// applied to a Config, mutates exactly one of its scopes. Only the fields
// relevant to Kind are set; the rest stay zero.
//
// Restrictions are immutable values. Order matters only when two
// restrictions target the same scope key, in which case the last applied
// wins deterministically.
type Restriction struct {
	// Kind selects the variant.
	Kind RestrictionKind

	// Name is the property name for property-scoped kinds.
	Name string
	// Path is the dotted path for path-scoped kinds.
	Path string

	// Value is the literal or Factory for the assignment kinds.
	Value any

	// Super and Subs carry a subtype substitution.
	Super reflect.Type
	Subs  []reflect.Type

	// Type and Factory carry a per-type factory override.
	Type    reflect.Type
	Factory Factory

	// Min and Max carry a collection size bound.
	Min, Max int
}

// ApplyTo dispatches the restriction onto the matching Config scope.
// Unknown kinds are ignored so that a zero Restriction is a no-op.
func (r Restriction) ApplyTo(cfg Config) {
	if cfg == nil {
		return
	}
	switch r.Kind {
	case RestrictProperty:
		cfg.Property(r.Name, r.Value)
	case RestrictPath:
		cfg.Path(r.Path, r.Value)
	case RestrictExcludeProperty:
		cfg.ExcludeProperty(r.Name)
	case RestrictExcludePath:
		cfg.ExcludePath(r.Path)
	case RestrictSubtype:
		cfg.Subtype(r.Super, r.Subs...)
	case RestrictFactory:
		cfg.Factory(r.Type, r.Factory)
	case RestrictCollectionSize:
		cfg.CollectionSize(r.Min, r.Max)
	case RestrictCollectionSizeForPath:
		cfg.CollectionSizeForPath(r.Path, r.Min, r.Max)
	case RestrictCollectionSizeForProperty:
		cfg.CollectionSizeForProperty(r.Name, r.Min, r.Max)
	}
}
