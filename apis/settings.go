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

// Settings carries read-only generation knobs that influence default
// behavior. It is passed by value and should be treated as immutable by
// implementations; per-call restrictions override it where they apply.
type Settings struct {
	// StringLength is the length of generated strings when no explicit
	// length is requested.
	StringLength int

	// CollectionMin and CollectionMax bound the size of generated
	// collections when no size restriction applies. Inclusive.
	CollectionMin int
	CollectionMax int

	// MaxDepth limits recursion into nested composite values. Fields
	// beyond the limit are left at their zero value, which keeps cyclic
	// type graphs finite.
	MaxDepth int
}
