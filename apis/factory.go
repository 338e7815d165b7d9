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

// Factory is the single extension point of stubx: a capability that
// produces one value of a declared type.
//
// Factories are expected to be immutable, stateless and freely shareable.
// Composite factories (slice-of, enum-of, fixed value) hold references to
// their parts by composition only; no factory owns another.
type Factory interface {
	// NewValue produces one value. It returns an error only when the
	// factory's domain cannot yield a value (e.g. an empty enum domain)
	// or when a caller-supplied factory fails.
	NewValue() (any, error)
}
