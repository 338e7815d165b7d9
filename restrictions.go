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
	"reflect"

	"dirpx.dev/stubx/apis"
)

// Property pins every field named name, anywhere in the instance graph,
// to value. The value may be an apis.Factory; it is then invoked once
// per assignment.
func Property(name string, value any) apis.Restriction {
	return apis.Restriction{Kind: apis.RestrictProperty, Name: name, Value: value}
}

// Path pins the field at the dotted path, rooted at the lowered target
// type name, to value. The value may be an apis.Factory.
func Path(path string, value any) apis.Restriction {
	return apis.Restriction{Kind: apis.RestrictPath, Path: path, Value: value}
}

// ExcludeProperty leaves every field named name at its zero value.
func ExcludeProperty(name string) apis.Restriction {
	return apis.Restriction{Kind: apis.RestrictExcludeProperty, Name: name}
}

// ExcludePath leaves the field at the dotted path at its zero value.
func ExcludePath(path string) apis.Restriction {
	return apis.Restriction{Kind: apis.RestrictExcludePath, Path: path}
}

// Subtype registers concrete candidate types for an interface type.
// Fields of the interface type receive a uniformly chosen candidate.
func Subtype(super reflect.Type, subs ...reflect.Type) apis.Restriction {
	return apis.Restriction{Kind: apis.RestrictSubtype, Super: super, Subs: subs}
}

// Factory installs f as the value source for type t, overriding both the
// scalar registry and recursive construction.
func Factory(t reflect.Type, f apis.Factory) apis.Restriction {
	return apis.Restriction{Kind: apis.RestrictFactory, Type: t, Factory: f}
}

// CollectionSize fixes the size of every generated collection.
func CollectionSize(size int) apis.Restriction {
	return CollectionSizeBetween(size, size)
}

// CollectionSizeBetween draws every generated collection size from
// [min, max].
func CollectionSizeBetween(min, max int) apis.Restriction {
	return apis.Restriction{Kind: apis.RestrictCollectionSize, Min: min, Max: max}
}

// CollectionSizeForPath fixes the size of the collection at the dotted
// path.
func CollectionSizeForPath(path string, size int) apis.Restriction {
	return CollectionSizeForPathBetween(path, size, size)
}

// CollectionSizeForPathBetween draws the size of the collection at the
// dotted path from [min, max].
func CollectionSizeForPathBetween(path string, min, max int) apis.Restriction {
	return apis.Restriction{Kind: apis.RestrictCollectionSizeForPath, Path: path, Min: min, Max: max}
}

// CollectionSizeForProperty fixes the size of every collection field
// named name.
func CollectionSizeForProperty(name string, size int) apis.Restriction {
	return CollectionSizeForPropertyBetween(name, size, size)
}

// CollectionSizeForPropertyBetween draws the size of every collection
// field named name from [min, max].
func CollectionSizeForPropertyBetween(name string, min, max int) apis.Restriction {
	return apis.Restriction{Kind: apis.RestrictCollectionSizeForProperty, Name: name, Min: min, Max: max}
}
