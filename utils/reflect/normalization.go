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

package reflect

import (
	"errors"
	"reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("stubx(reflect): nil reflect.Type provided")
)

// Base unwraps pointer indirections and returns the pointee type, so that
// factory and subtype rules registered for T also govern fields of type
// *T, **T, etc. Other kinds pass through unchanged: a rule for []T must be
// registered for []T, not T, because element factories are composed
// separately.
//
// maxUnwrap guards against pathological pointer nesting; if it is not
// positive a single-level unwrap budget of 1 is still honored per call.
func Base(t reflect.Type, maxUnwrap int) (reflect.Type, error) {
	if t == nil {
		return nil, ErrNilType
	}
	if maxUnwrap <= 0 {
		maxUnwrap = 1
	}
	for i := 0; i < maxUnwrap && t.Kind() == reflect.Ptr; i++ {
		t = t.Elem()
	}
	return t, nil
}
