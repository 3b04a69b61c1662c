// Copyright 2025 xmath Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package f32

import "math"

const (
	signMask uint32 = 0x80000000
	absMask  uint32 = 0x7fffffff
	oneBits  uint32 = 0x3f800000
)

// Bits returns the IEEE-754 bit pattern of x.
//
// The conversion is a relabeling of the same 32 bits: NaN payloads, signed
// zeros, infinities and subnormals all survive a Bits/FromBits round trip.
func Bits(x float32) uint32 {
	return math.Float32bits(x)
}

// FromBits returns the float32 whose IEEE-754 bit pattern is u.
func FromBits(u uint32) float32 {
	return math.Float32frombits(u)
}

// Abs clears the sign bit of x.
//
// This is applied unconditionally, so Abs(-NaN) is a NaN with the sign bit
// cleared and Abs(-0) is +0.
func Abs(x float32) float32 {
	return FromBits(Bits(x) & absMask)
}

// Sign returns +1 or -1 carrying the sign bit of x.
//
// Sign never returns 0: Sign(+0) = 1 and Sign(-0) = -1.
func Sign(x float32) float32 {
	return FromBits(Bits(x)&signMask | oneBits)
}

// b2u converts a comparison result to 0 or 1 for bit arithmetic.
func b2u(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
