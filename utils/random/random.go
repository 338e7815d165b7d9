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

// Package random holds the stateless primitive generators: each function
// draws one random value of one scalar kind from the process RNG
// (math/rand/v2 top-level source, safe for concurrent use).
//
// Bounded draws are inclusive on both ends and short-circuit min == max
// without consuming randomness. Reversed bounds are swapped rather than
// rejected so every call site stays deterministic.
package random

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	alphabetic   = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	alphanumeric = alphabetic + "0123456789"

	// byteDomain bounds generated bytes to [0,127].
	byteDomain = 128
	// byteSliceMin and byteSliceMax bound generated byte slice lengths
	// to [2,1000).
	byteSliceMin = 2
	byteSliceMax = 999

	// decimalScaleDomain bounds the random decimal scale to [0,5).
	decimalScaleDomain = 5

	secondsPerYear = 365 * 24 * 60 * 60
	daysPerYear    = 365
	timeOfDayMax   = 12 * time.Hour
)

// Int returns a uniformly random int over the full width.
func Int() int {
	return int(rand.Uint64())
}

// IntBetween returns a uniformly random int in [min,max], both inclusive.
// min == max returns min without drawing; reversed bounds are swapped.
func IntBetween(min, max int) int {
	return int(Int64Between(int64(min), int64(max)))
}

// Int16 returns a uniformly random int16 over the full width.
func Int16() int16 {
	return int16(rand.Uint32())
}

// Int16Between returns a uniformly random int16 in [min,max] inclusive.
func Int16Between(min, max int16) int16 {
	return int16(Int64Between(int64(min), int64(max)))
}

// Int32 returns a uniformly random int32 over the full width.
func Int32() int32 {
	return int32(rand.Uint32())
}

// Int32Between returns a uniformly random int32 in [min,max] inclusive.
func Int32Between(min, max int32) int32 {
	return int32(Int64Between(int64(min), int64(max)))
}

// Int64 returns a uniformly random int64 over the full width.
func Int64() int64 {
	return int64(rand.Uint64())
}

// Int64Between returns a uniformly random int64 in [min,max], both
// inclusive. min == max returns min without drawing; reversed bounds are
// swapped. The draw uses the minimum-width generator that covers the span.
func Int64Between(min, max int64) int64 {
	if min == max {
		return min
	}
	if min > max {
		min, max = max, min
	}
	// Two's complement makes the span computation overflow-safe.
	span := uint64(max) - uint64(min) + 1
	if span == 0 {
		// Full 64-bit range.
		return Int64()
	}
	if span <= math.MaxUint32 {
		return int64(uint64(min) + uint64(rand.Uint32N(uint32(span))))
	}
	return int64(uint64(min) + rand.Uint64N(span))
}

// Uint returns a uniformly random uint over the full width.
func Uint() uint {
	return uint(rand.Uint64())
}

// Uint8 returns a uniformly random uint8 over the full width.
func Uint8() uint8 {
	return uint8(rand.Uint32())
}

// Uint16 returns a uniformly random uint16 over the full width.
func Uint16() uint16 {
	return uint16(rand.Uint32())
}

// Uint32 returns a uniformly random uint32 over the full width.
func Uint32() uint32 {
	return rand.Uint32()
}

// Uint64 returns a uniformly random uint64 over the full width.
func Uint64() uint64 {
	return rand.Uint64()
}

// Float32 returns a uniformly random float32 in [0,1).
func Float32() float32 {
	return rand.Float32()
}

// Float64 returns a uniformly random float64 in [0,1).
func Float64() float64 {
	return rand.Float64()
}

// Float64Between returns a uniformly random float64 in [min,max).
// min == max returns min without drawing; reversed bounds are swapped.
func Float64Between(min, max float64) float64 {
	if min == max {
		return min
	}
	if min > max {
		min, max = max, min
	}
	return min + rand.Float64()*(max-min)
}

// Bool returns a uniformly random boolean.
func Bool() bool {
	return rand.Uint64()&1 == 1
}

// Byte returns a uniformly random byte in [0,127].
func Byte() byte {
	return byte(rand.IntN(byteDomain))
}

// ByteSlice returns a random byte slice with length in [2,1000), each
// element an independent draw in [0,127].
func ByteSlice() []byte {
	out := make([]byte, IntBetween(byteSliceMin, byteSliceMax))
	for i := range out {
		out[i] = Byte()
	}
	return out
}

// Rune returns one random alphabetic character.
func Rune() rune {
	return rune(alphabetic[rand.IntN(len(alphabetic))])
}

// String returns a random alphanumeric string of length n.
func String(n int) string {
	if n <= 0 {
		return ""
	}
	out := make([]byte, n)
	for i := range out {
		out[i] = alphanumeric[rand.IntN(len(alphanumeric))]
	}
	return string(out)
}

// Decimal returns a random decimal with an int32 magnitude and the decimal
// point shifted left by a uniform draw in [0,5) digits: randomized scale,
// not a fixed number of fractional digits. An int32 magnitude carries at
// most 10 significant digits, which keeps the half-up significant-digit
// bound intact without an explicit rounding step.
func Decimal() decimal.Decimal {
	return decimal.New(int64(Int32()), -int32(rand.IntN(decimalScaleDomain)))
}

// Time returns now offset forward by a random duration within one year.
func Time() time.Time {
	return time.Now().Add(time.Duration(rand.Int64N(secondsPerYear)) * time.Second)
}

// Date returns today at midnight offset forward by a random whole number
// of days within one year.
func Date() time.Time {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return midnight.AddDate(0, 0, rand.IntN(daysPerYear))
}

// Duration returns a random time-of-day offset in [0,12h).
func Duration() time.Duration {
	return time.Duration(rand.Int64N(int64(timeOfDayMax)))
}

// UUID returns a random (version 4) UUID.
func UUID() uuid.UUID {
	return uuid.New()
}
