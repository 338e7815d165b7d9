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

import "errors"

var (
	// ErrNilType is returned when a builder is created for a nil type.
	ErrNilType = errors.New("stubx(bean): nil target type")
	// ErrConstruction wraps any failure raised while populating an
	// instance, including failures of caller-supplied factories. The
	// wrapped chain carries the target type name and the original cause.
	ErrConstruction = errors.New("stubx(bean): failed to construct instance")
	// ErrValueMismatch is returned when a restriction's value is not
	// assignable or convertible to the target location's type.
	ErrValueMismatch = errors.New("stubx(bean): value does not fit target type")
	// ErrConsumed is returned when Build is called on an already
	// consumed configuration. A builder serves exactly one build.
	ErrConsumed = errors.New("stubx(bean): build configuration already consumed")
)
