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

package config_test

import (
	"testing"

	"dirpx.dev/stubx/config"
)

func TestDefaultSettingsValues(t *testing.T) {
	got := config.Default()

	if got.StringLength != config.DefaultStringLength {
		t.Fatalf("StringLength = %d, want %d", got.StringLength, config.DefaultStringLength)
	}
	if got.CollectionMin != config.DefaultCollectionMin {
		t.Fatalf("CollectionMin = %d, want %d", got.CollectionMin, config.DefaultCollectionMin)
	}
	if got.CollectionMax != config.DefaultCollectionMax {
		t.Fatalf("CollectionMax = %d, want %d", got.CollectionMax, config.DefaultCollectionMax)
	}
	if got.MaxDepth != config.DefaultMaxDepth {
		t.Fatalf("MaxDepth = %d, want %d", got.MaxDepth, config.DefaultMaxDepth)
	}
}

func TestNewSettings_NoOptions_EqualsDefault(t *testing.T) {
	def := config.Default()
	got := config.NewSettings()
	if got != def {
		t.Fatalf("NewSettings() = %+v, want default %+v", got, def)
	}
}

func TestWithStringLength(t *testing.T) {
	s := config.NewSettings(config.WithStringLength(10))
	if s.StringLength != 10 {
		t.Fatalf("StringLength = %d, want 10", s.StringLength)
	}

	// Zero is a valid explicit choice (empty strings).
	s2 := config.NewSettings(config.WithStringLength(0))
	if s2.StringLength != 0 {
		t.Fatalf("StringLength = %d, want 0", s2.StringLength)
	}
}

func TestWithStringLength_Negative_ResetsToDefault(t *testing.T) {
	s := config.NewSettings(config.WithStringLength(-1))
	if s.StringLength != config.DefaultStringLength {
		t.Fatalf("StringLength = %d, want %d", s.StringLength, config.DefaultStringLength)
	}
}

func TestWithCollectionSize(t *testing.T) {
	s := config.NewSettings(config.WithCollectionSize(3, 7))
	if s.CollectionMin != 3 || s.CollectionMax != 7 {
		t.Fatalf("collection bounds = [%d,%d], want [3,7]", s.CollectionMin, s.CollectionMax)
	}
}

func TestWithCollectionSize_Normalizes(t *testing.T) {
	// Reversed bounds are swapped.
	s := config.NewSettings(config.WithCollectionSize(7, 3))
	if s.CollectionMin != 3 || s.CollectionMax != 7 {
		t.Fatalf("collection bounds = [%d,%d], want [3,7]", s.CollectionMin, s.CollectionMax)
	}

	// Negative bounds clamp to zero.
	s2 := config.NewSettings(config.WithCollectionSize(-2, 4))
	if s2.CollectionMin != 0 || s2.CollectionMax != 4 {
		t.Fatalf("collection bounds = [%d,%d], want [0,4]", s2.CollectionMin, s2.CollectionMax)
	}
}

func TestWithMaxDepth_Positive(t *testing.T) {
	s := config.NewSettings(config.WithMaxDepth(3))
	if s.MaxDepth != 3 {
		t.Fatalf("MaxDepth = %d, want 3", s.MaxDepth)
	}
}

func TestWithMaxDepth_NonPositive_ResetsToDefault(t *testing.T) {
	s := config.NewSettings(config.WithMaxDepth(0))
	if s.MaxDepth != config.DefaultMaxDepth {
		t.Fatalf("MaxDepth = %d, want %d", s.MaxDepth, config.DefaultMaxDepth)
	}
}
