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

package config

import (
	"dirpx.dev/stubx/apis"
)

const (
	// DefaultStringLength represents the default for StringLength.
	// Generated strings are alphanumeric and this long unless a length
	// is requested explicitly.
	DefaultStringLength = 50
	// DefaultCollectionMin represents the default lower collection size bound.
	DefaultCollectionMin = 2
	// DefaultCollectionMax represents the default upper collection size bound.
	// Inclusive.
	DefaultCollectionMax = 10
	// DefaultMaxDepth represents the default for MaxDepth.
	// A value of 8 should be sufficient for all practical purposes.
	DefaultMaxDepth = 8
)

// NewSettings constructs an apis.Settings from the given options.
func NewSettings(opts ...Option) apis.Settings {
	s := Default()
	for _, opt := range opts {
		opt(&s)
	}
	// Ensure the knobs stay in valid domains.
	if s.StringLength < 0 {
		s.StringLength = DefaultStringLength
	}
	if s.MaxDepth <= 0 {
		s.MaxDepth = DefaultMaxDepth
	}
	if s.CollectionMin < 0 {
		s.CollectionMin = 0
	}
	if s.CollectionMax < s.CollectionMin {
		s.CollectionMax = s.CollectionMin
	}
	return s
}

// Default is the default settings used when none are provided.
func Default() apis.Settings {
	return apis.Settings{
		StringLength:  DefaultStringLength,
		CollectionMin: DefaultCollectionMin,
		CollectionMax: DefaultCollectionMax,
		MaxDepth:      DefaultMaxDepth,
	}
}

// Option is a functional option that mutates an apis.Settings during construction.
type Option func(*apis.Settings)

// WithStringLength sets the StringLength option.
// A negative value resets to the default.
func WithStringLength(n int) Option {
	return func(s *apis.Settings) {
		if n < 0 {
			s.StringLength = DefaultStringLength
			return
		}
		s.StringLength = n
	}
}

// WithCollectionSize sets the default collection size bounds.
// Negative bounds clamp to zero; reversed bounds are swapped.
func WithCollectionSize(min, max int) Option {
	return func(s *apis.Settings) {
		if min < 0 {
			min = 0
		}
		if max < 0 {
			max = 0
		}
		if min > max {
			min, max = max, min
		}
		s.CollectionMin = min
		s.CollectionMax = max
	}
}

// WithMaxDepth sets the MaxDepth option.
// A non-positive value resets to the default.
func WithMaxDepth(depth int) Option {
	return func(s *apis.Settings) {
		if depth <= 0 {
			s.MaxDepth = DefaultMaxDepth
			return
		}
		s.MaxDepth = depth
	}
}
