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

package stubx_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"dirpx.dev/stubx"
	"dirpx.dev/stubx/config"
)

func TestRandomString_UsesSettingsLength(t *testing.T) {
	require.Len(t, stubx.RandomString(), config.DefaultStringLength)
}

func TestRandomStringOfLength(t *testing.T) {
	require.Len(t, stubx.RandomStringOfLength(10), 10)
	require.Empty(t, stubx.RandomStringOfLength(0))
	require.Empty(t, stubx.RandomStringOfLength(-5))
}

func TestRandomIntBetween_InclusiveBounds(t *testing.T) {
	require.Equal(t, 7, stubx.RandomIntBetween(7, 7))

	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		v := stubx.RandomIntBetween(1, 3)
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, 3)
		seen[v] = true
	}
	require.Len(t, seen, 3)
}

func TestRandomIntBetween_SwapsReversedBounds(t *testing.T) {
	for i := 0; i < 100; i++ {
		v := stubx.RandomIntBetween(9, 3)
		require.GreaterOrEqual(t, v, 3)
		require.LessOrEqual(t, v, 9)
	}
}

func TestRandomInt64Between_NegativeRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		v := stubx.RandomInt64Between(-20, -10)
		require.GreaterOrEqual(t, v, int64(-20))
		require.LessOrEqual(t, v, int64(-10))
	}
}

func TestRandomFloat64Between(t *testing.T) {
	require.Equal(t, 1.5, stubx.RandomFloat64Between(1.5, 1.5))
	for i := 0; i < 100; i++ {
		v := stubx.RandomFloat64Between(0, 10)
		require.GreaterOrEqual(t, v, 0.0)
		require.LessOrEqual(t, v, 10.0)
	}
}

func TestRandomByte_StaysInASCIIRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		require.LessOrEqual(t, stubx.RandomByte(), byte(127))
	}
}

func TestRandomDecimal_Shape(t *testing.T) {
	for i := 0; i < 100; i++ {
		d := stubx.RandomDecimal()
		require.GreaterOrEqual(t, d.Exponent(), int32(-4))
		require.LessOrEqual(t, d.Exponent(), int32(0))
		require.LessOrEqual(t, len(d.Coefficient().String()), 11)
	}
}

func TestRandomDate_IsMidnight(t *testing.T) {
	d := stubx.RandomDate()
	h, m, s := d.Clock()
	require.Zero(t, h)
	require.Zero(t, m)
	require.Zero(t, s)
}

func TestRandomTime_WithinAYear(t *testing.T) {
	now := time.Now()
	v := stubx.RandomTime()
	require.False(t, v.Before(now.Add(-time.Minute)))
	require.True(t, v.Before(now.Add(366*24*time.Hour)))
}

func TestRandomDuration_Window(t *testing.T) {
	for i := 0; i < 200; i++ {
		v := stubx.RandomDuration()
		require.GreaterOrEqual(t, v, time.Duration(0))
		require.Less(t, v, 12*time.Hour)
	}
}

func TestRandomUUID_Distinct(t *testing.T) {
	require.NotEqual(t, stubx.RandomUUID(), stubx.RandomUUID())
}
