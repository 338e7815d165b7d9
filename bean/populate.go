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

package bean

import (
	"fmt"
	"reflect"
	"unicode"
	"unicode/utf8"

	"dirpx.dev/stubx/apis"
	"dirpx.dev/stubx/utils/random"
)

// value resolves one value of type t at the given location. path is the
// exact dotted location, prop the property name of the location ("" at the
// root). Resolution order: pointer unwrap, custom factory, registry
// default, then kind-specific composite construction.
func (b *Builder) value(t reflect.Type, path, prop string, depth int) (reflect.Value, error) {
	if depth > b.settings.MaxDepth {
		// Cyclic or pathologically deep graphs stay finite: beyond the
		// cap locations keep their zero value.
		return reflect.Zero(t), nil
	}

	// Pointers are transparent: populate the pointee at the same location.
	if t.Kind() == reflect.Ptr {
		elem, err := b.value(t.Elem(), path, prop, depth)
		if err != nil {
			return reflect.Value{}, err
		}
		out := reflect.New(t.Elem())
		out.Elem().Set(elem)
		return out, nil
	}

	// Custom factories always beat the registry defaults.
	if f, ok := b.factories[t]; ok {
		v, err := f.NewValue()
		if err != nil {
			return reflect.Value{}, fmt.Errorf("factory for %s: %w", location(path, t), err)
		}
		return fit(t, v, path)
	}

	if b.reg != nil {
		if f, ok := b.reg.Lookup(t); ok {
			v, err := f.NewValue()
			if err != nil {
				return reflect.Value{}, fmt.Errorf("factory for %s: %w", location(path, t), err)
			}
			return fit(t, v, path)
		}
	}

	switch t.Kind() {
	case reflect.Interface:
		return b.substitute(t, path, prop, depth)
	case reflect.Struct:
		return b.populateStruct(t, path, depth)
	case reflect.Slice:
		return b.populateSlice(t, path, prop, depth)
	case reflect.Array:
		return b.populateArray(t, path, prop, depth)
	case reflect.Map:
		return b.populateMap(t, path, prop, depth)
	default:
		return b.kindFallback(t)
	}
}

// substitute resolves an interface location through the subtype map:
// one of the registered concrete types is chosen uniformly and populated
// in place of the interface. Unmapped interfaces stay zero.
func (b *Builder) substitute(t reflect.Type, path, prop string, depth int) (reflect.Value, error) {
	subs := b.subtypes[t]
	if len(subs) == 0 {
		return reflect.Zero(t), nil
	}
	sub := subs[random.IntBetween(0, len(subs)-1)]
	sv, err := b.value(sub, path, prop, depth)
	if err != nil {
		return reflect.Value{}, err
	}
	if !sv.Type().AssignableTo(t) {
		return reflect.Value{}, fmt.Errorf("%w: subtype %v does not implement %v at %s",
			ErrValueMismatch, sv.Type(), t, location(path, t))
	}
	out := reflect.New(t).Elem()
	out.Set(sv)
	return out, nil
}

// populateStruct allocates a struct and fills its exported fields. Per
// field, an exact path rule beats a property rule beats recursion.
func (b *Builder) populateStruct(t reflect.Type, path string, depth int) (reflect.Value, error) {
	out := reflect.New(t).Elem()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		prop := propertyName(field.Name)
		childPath := joinPath(path, prop)

		if rule, ok := b.paths[childPath]; ok {
			if err := b.applyRule(out.Field(i), rule, childPath); err != nil {
				return reflect.Value{}, err
			}
			continue
		}
		if rule, ok := b.properties[prop]; ok {
			if err := b.applyRule(out.Field(i), rule, childPath); err != nil {
				return reflect.Value{}, err
			}
			continue
		}

		fv, err := b.value(field.Type, childPath, prop, depth+1)
		if err != nil {
			return reflect.Value{}, err
		}
		out.Field(i).Set(fv)
	}
	return out, nil
}

// populateSlice materializes a slice in insertion order. Element locations
// share the collection's path, so nested rules like "person.siblings.name"
// address fields of every element.
func (b *Builder) populateSlice(t reflect.Type, path, prop string, depth int) (reflect.Value, error) {
	size := b.collectionSize(path, prop)
	out := reflect.MakeSlice(t, size, size)
	for i := 0; i < size; i++ {
		ev, err := b.value(t.Elem(), path, prop, depth+1)
		if err != nil {
			return reflect.Value{}, err
		}
		out.Index(i).Set(ev)
	}
	return out, nil
}

// populateArray fills a fixed-length array element-wise; the declared
// length is authoritative and size rules do not apply.
func (b *Builder) populateArray(t reflect.Type, path, prop string, depth int) (reflect.Value, error) {
	out := reflect.New(t).Elem()
	for i := 0; i < t.Len(); i++ {
		ev, err := b.value(t.Elem(), path, prop, depth+1)
		if err != nil {
			return reflect.Value{}, err
		}
		out.Index(i).Set(ev)
	}
	return out, nil
}

// populateMap materializes a map with a resolved size. Random key
// collisions may leave the map smaller than the drawn size.
func (b *Builder) populateMap(t reflect.Type, path, prop string, depth int) (reflect.Value, error) {
	size := b.collectionSize(path, prop)
	out := reflect.MakeMapWithSize(t, size)
	for i := 0; i < size; i++ {
		kv, err := b.value(t.Key(), path, prop, depth+1)
		if err != nil {
			return reflect.Value{}, err
		}
		vv, err := b.value(t.Elem(), path, prop, depth+1)
		if err != nil {
			return reflect.Value{}, err
		}
		out.SetMapIndex(kv, vv)
	}
	return out, nil
}

// kindFallback serves named types whose underlying kind is a supported
// scalar (type Colour string, type Level int): the kind's default factory
// produces the value, converted to the named type. Kinds with no default
// (chan, func, complex) stay zero.
func (b *Builder) kindFallback(t reflect.Type) (reflect.Value, error) {
	if b.reg == nil {
		return reflect.Zero(t), nil
	}
	proto, ok := kindPrototypes[t.Kind()]
	if !ok {
		return reflect.Zero(t), nil
	}
	f, ok := b.reg.Lookup(proto)
	if !ok {
		return reflect.Zero(t), nil
	}
	v, err := f.NewValue()
	if err != nil {
		return reflect.Value{}, err
	}
	return fit(t, v, "")
}

// kindPrototypes maps basic kinds to the unnamed type carrying their
// registry default.
var kindPrototypes = map[reflect.Kind]reflect.Type{
	reflect.Int:     reflect.TypeOf(int(0)),
	reflect.Int8:    reflect.TypeOf(int8(0)),
	reflect.Int16:   reflect.TypeOf(int16(0)),
	reflect.Int32:   reflect.TypeOf(int32(0)),
	reflect.Int64:   reflect.TypeOf(int64(0)),
	reflect.Uint:    reflect.TypeOf(uint(0)),
	reflect.Uint8:   reflect.TypeOf(uint8(0)),
	reflect.Uint16:  reflect.TypeOf(uint16(0)),
	reflect.Uint32:  reflect.TypeOf(uint32(0)),
	reflect.Uint64:  reflect.TypeOf(uint64(0)),
	reflect.Float32: reflect.TypeOf(float32(0)),
	reflect.Float64: reflect.TypeOf(float64(0)),
	reflect.Bool:    reflect.TypeOf(false),
	reflect.String:  reflect.TypeOf(""),
}

// applyRule applies a path or property rule to one location: exclusions
// leave the zero value, assignments resolve factories and set literals.
func (b *Builder) applyRule(dst reflect.Value, rule op, scope string) error {
	if rule.exclude {
		return nil
	}
	v := rule.value
	if f, ok := v.(apis.Factory); ok {
		fv, err := f.NewValue()
		if err != nil {
			return fmt.Errorf("factory for %s: %w", scope, err)
		}
		v = fv
	}
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	switch {
	case rv.Type().AssignableTo(dst.Type()):
		dst.Set(rv)
	case rv.Type().ConvertibleTo(dst.Type()):
		dst.Set(rv.Convert(dst.Type()))
	default:
		return fmt.Errorf("%w: %v into %v at %s", ErrValueMismatch, rv.Type(), dst.Type(), scope)
	}
	return nil
}

// collectionSize resolves the size bound for a collection location,
// most specific scope first: exact path, property name, the global rule,
// then the built-in defaults. min == max yields the exact size without a
// ranged draw.
func (b *Builder) collectionSize(path, prop string) int {
	if r, ok := b.sizeForPath[path]; ok {
		return random.IntBetween(r.min, r.max)
	}
	if prop != "" {
		if r, ok := b.sizeForProperty[prop]; ok {
			return random.IntBetween(r.min, r.max)
		}
	}
	if b.size != nil {
		return random.IntBetween(b.size.min, b.size.max)
	}
	return random.IntBetween(b.settings.CollectionMin, b.settings.CollectionMax)
}

// fit shapes a factory-produced value into the target type.
func fit(t reflect.Type, v any, path string) (reflect.Value, error) {
	if v == nil {
		return reflect.Zero(t), nil
	}
	rv := reflect.ValueOf(v)
	switch {
	case rv.Type().AssignableTo(t):
		return rv, nil
	case rv.Type().ConvertibleTo(t):
		return rv.Convert(t), nil
	default:
		return reflect.Value{}, fmt.Errorf("%w: %v into %v at %s",
			ErrValueMismatch, rv.Type(), t, location(path, t))
	}
}

// rootPath derives the root path segment from the target type: the type
// name with a lowered first rune ("Person" -> "person"). Unnamed roots
// have no segment; their field paths start at the property name.
func rootPath(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return propertyName(t.Name())
}

// propertyName lowers the first rune of an exported field name.
func propertyName(name string) string {
	if name == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToLower(r)) + name[size:]
}

// joinPath appends a property segment to a dotted path.
func joinPath(prefix, prop string) string {
	if prefix == "" {
		return prop
	}
	return prefix + "." + prop
}

// location renders a path for error messages, falling back to the type.
func location(path string, t reflect.Type) string {
	if path != "" {
		return path
	}
	return t.String()
}
