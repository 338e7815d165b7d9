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
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"dirpx.dev/stubx/utils/random"
)

// RandomString returns a random alphanumeric string whose length is the
// configured default string length.
func RandomString() string {
	return random.String(st.Load().settings.StringLength)
}

// RandomStringOfLength returns a random alphanumeric string of exactly n
// characters. Non-positive lengths yield the empty string.
func RandomStringOfLength(n int) string {
	return random.String(n)
}

// RandomInt returns a uniformly distributed int over the full type range.
func RandomInt() int {
	return random.Int()
}

// RandomIntBetween returns a uniformly distributed int in [min, max].
// Reversed bounds are swapped; equal bounds return min without a draw.
func RandomIntBetween(min, max int) int {
	return random.IntBetween(min, max)
}

// RandomInt16 returns a uniformly distributed int16 over the full type range.
func RandomInt16() int16 {
	return random.Int16()
}

// RandomInt16Between returns a uniformly distributed int16 in [min, max].
func RandomInt16Between(min, max int16) int16 {
	return random.Int16Between(min, max)
}

// RandomInt32 returns a uniformly distributed int32 over the full type range.
func RandomInt32() int32 {
	return random.Int32()
}

// RandomInt32Between returns a uniformly distributed int32 in [min, max].
func RandomInt32Between(min, max int32) int32 {
	return random.Int32Between(min, max)
}

// RandomInt64 returns a uniformly distributed int64 over the full type range.
func RandomInt64() int64 {
	return random.Int64()
}

// RandomInt64Between returns a uniformly distributed int64 in [min, max].
func RandomInt64Between(min, max int64) int64 {
	return random.Int64Between(min, max)
}

// RandomUint returns a uniformly distributed uint over the full type range.
func RandomUint() uint {
	return random.Uint()
}

// RandomUint8 returns a uniformly distributed uint8 over the full type range.
func RandomUint8() uint8 {
	return random.Uint8()
}

// RandomUint16 returns a uniformly distributed uint16 over the full type range.
func RandomUint16() uint16 {
	return random.Uint16()
}

// RandomUint32 returns a uniformly distributed uint32 over the full type range.
func RandomUint32() uint32 {
	return random.Uint32()
}

// RandomUint64 returns a uniformly distributed uint64 over the full type range.
func RandomUint64() uint64 {
	return random.Uint64()
}

// RandomFloat32 returns a random float32 in [0, 1).
func RandomFloat32() float32 {
	return random.Float32()
}

// RandomFloat64 returns a random float64 in [0, 1).
func RandomFloat64() float64 {
	return random.Float64()
}

// RandomFloat64Between returns a random float64 in [min, max). Equal
// bounds return min without a draw.
func RandomFloat64Between(min, max float64) float64 {
	return random.Float64Between(min, max)
}

// RandomBool returns true or false with equal probability.
func RandomBool() bool {
	return random.Bool()
}

// RandomByte returns a random byte in [0, 127].
func RandomByte() byte {
	return random.Byte()
}

// RandomByteSlice returns a slice of random bytes with a random length.
func RandomByteSlice() []byte {
	return random.ByteSlice()
}

// RandomRune returns a random alphabetic rune.
func RandomRune() rune {
	return random.Rune()
}

// RandomDecimal returns a random decimal with at most ten significant
// digits and at most four decimal places.
func RandomDecimal() decimal.Decimal {
	return random.Decimal()
}

// RandomTime returns a random instant within a year from now.
func RandomTime() time.Time {
	return random.Time()
}

// RandomDate returns a random midnight within a year from today.
func RandomDate() time.Time {
	return random.Date()
}

// RandomDuration returns a random duration below twelve hours.
func RandomDuration() time.Duration {
	return random.Duration()
}

// RandomUUID returns a new random (version 4) UUID.
func RandomUUID() uuid.UUID {
	return random.UUID()
}
