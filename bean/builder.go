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

// Package bean holds the build configuration and the reflective population
// mechanism: a Builder accumulates the restriction rules for one
// construction, then Build materializes a randomly populated instance.
//
// A Builder has exactly two states. It starts accumulating: the
// apis.Config mutation methods write rules into its scope maps. The first
// Build call consumes it; after that mutations are ignored and further
// Build calls fail with ErrConsumed. A Builder is never shared across
// goroutines and never reused for a second build.
//
// Rule precedence, applied independently for value assignment, exclusion,
// and collection sizing: exact path beats property name, property name
// beats the global rule, the global rule beats the built-in default.
// Within one scope key the last rule applied wins.
package bean

import (
	"fmt"
	"reflect"

	"dirpx.dev/stubx/apis"
	"dirpx.dev/stubx/config"
	uref "dirpx.dev/stubx/utils/reflect"
)

// op is one value rule for a property or path scope: either an exclusion
// or an assignment of a literal / apis.Factory-derived value.
type op struct {
	exclude bool
	value   any
}

// sizeRule is an inclusive collection size bound.
type sizeRule struct {
	min, max int
}

// New constructs an accumulating Builder for target type t. reg supplies
// the scalar defaults consulted during population; s supplies the
// built-in defaults that apply where no restriction does. Out-of-domain
// settings are reset the same way config.NewSettings resets them.
func New(t reflect.Type, reg apis.Registry, s apis.Settings) *Builder {
	if s.MaxDepth <= 0 {
		s.MaxDepth = config.DefaultMaxDepth
	}
	if s.CollectionMin < 0 {
		s.CollectionMin = 0
	}
	if s.CollectionMax < s.CollectionMin {
		s.CollectionMax = s.CollectionMin
	}
	return &Builder{
		root:     t,
		reg:      reg,
		settings: s,
	}
}

// Builder is a mutable, per-call accumulation of restrictions, consumed
// exactly once by Build.
type Builder struct {
	root     reflect.Type
	reg      apis.Registry
	settings apis.Settings

	properties      map[string]op
	paths           map[string]op
	factories       map[reflect.Type]apis.Factory
	subtypes        map[reflect.Type][]reflect.Type
	size            *sizeRule
	sizeForPath     map[string]sizeRule
	sizeForProperty map[string]sizeRule

	consumed bool
}

var _ apis.Config = (*Builder)(nil)

// Property forces a literal or factory-derived value for every occurrence
// of the named property. Overwrites any earlier rule for the same name.
func (b *Builder) Property(name string, value any) {
	if b.consumed || name == "" {
		return
	}
	if b.properties == nil {
		b.properties = make(map[string]op)
	}
	b.properties[name] = op{value: value}
}

// Path forces a literal or factory-derived value at one exact location.
// Overwrites any earlier rule for the same path.
func (b *Builder) Path(path string, value any) {
	if b.consumed || path == "" {
		return
	}
	if b.paths == nil {
		b.paths = make(map[string]op)
	}
	b.paths[path] = op{value: value}
}

// ExcludeProperty skips population for the named property everywhere.
func (b *Builder) ExcludeProperty(name string) {
	if b.consumed || name == "" {
		return
	}
	if b.properties == nil {
		b.properties = make(map[string]op)
	}
	b.properties[name] = op{exclude: true}
}

// ExcludePath skips population at one exact location.
func (b *Builder) ExcludePath(path string) {
	if b.consumed || path == "" {
		return
	}
	if b.paths == nil {
		b.paths = make(map[string]op)
	}
	b.paths[path] = op{exclude: true}
}

// Subtype instantiates one of subs whenever the interface type super is
// encountered. Pointer indirections on the supertype are normalized away.
func (b *Builder) Subtype(super reflect.Type, subs ...reflect.Type) {
	if b.consumed || super == nil || len(subs) == 0 {
		return
	}
	base, err := uref.Base(super, b.settings.MaxDepth)
	if err != nil {
		return
	}
	if b.subtypes == nil {
		b.subtypes = make(map[reflect.Type][]reflect.Type)
	}
	out := make([]reflect.Type, 0, len(subs))
	for _, sub := range subs {
		if sub != nil {
			out = append(out, sub)
		}
	}
	if len(out) == 0 {
		return
	}
	b.subtypes[base] = out
}

// Factory overrides the factory used whenever type t is encountered.
// Pointer indirections on t are normalized away, so a factory registered
// for T also serves fields of type *T.
func (b *Builder) Factory(t reflect.Type, f apis.Factory) {
	if b.consumed || t == nil || f == nil {
		return
	}
	base, err := uref.Base(t, b.settings.MaxDepth)
	if err != nil {
		return
	}
	if b.factories == nil {
		b.factories = make(map[reflect.Type]apis.Factory)
	}
	b.factories[base] = f
}

// CollectionSize bounds the size of every unsized collection.
func (b *Builder) CollectionSize(min, max int) {
	if b.consumed {
		return
	}
	r := normalizeSize(min, max)
	b.size = &r
}

// CollectionSizeForPath bounds collection sizes at one exact location.
func (b *Builder) CollectionSizeForPath(path string, min, max int) {
	if b.consumed || path == "" {
		return
	}
	if b.sizeForPath == nil {
		b.sizeForPath = make(map[string]sizeRule)
	}
	b.sizeForPath[path] = normalizeSize(min, max)
}

// CollectionSizeForProperty bounds collection sizes for the named property
// wherever it occurs.
func (b *Builder) CollectionSizeForProperty(name string, min, max int) {
	if b.consumed || name == "" {
		return
	}
	if b.sizeForProperty == nil {
		b.sizeForProperty = make(map[string]sizeRule)
	}
	b.sizeForProperty[name] = normalizeSize(min, max)
}

// Build materializes one randomly populated instance of the target type
// and consumes the configuration. Failures surface as a single uniform
// construction error carrying the target type name and the cause.
func (b *Builder) Build() (any, error) {
	if b.root == nil {
		return nil, ErrNilType
	}
	if b.consumed {
		return nil, ErrConsumed
	}
	b.consumed = true

	v, err := b.value(b.root, rootPath(b.root), "", 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v: %w", ErrConstruction, b.root, err)
	}
	return v.Interface(), nil
}

// normalizeSize clamps negative bounds to zero and swaps reversed bounds
// so every size rule satisfies 0 <= min <= max.
func normalizeSize(min, max int) sizeRule {
	if min < 0 {
		min = 0
	}
	if max < 0 {
		max = 0
	}
	if min > max {
		min, max = max, min
	}
	return sizeRule{min: min, max: max}
}
