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

import (
	"math"

	"github.com/chewxy/math32"
)

// Rounder rounds a float32 to an integral value.
type Rounder interface {
	// Trunc rounds toward zero.
	Trunc(x float32) float32
	// Floor rounds toward negative infinity.
	Floor(x float32) float32
	// Ceil rounds toward positive infinity.
	Ceil(x float32) float32
	// Round rounds to nearest, ties away from zero.
	Round(x float32) float32
}

// Rooter computes square roots.
type Rooter interface {
	Sqrt(x float32) float32
	Rsqrt(x float32) float32
}

// Backend is the set of primitives that have both an instruction-backed and a
// bit-trick implementation. The package selects one Backend at init time and
// routes Trunc, Floor, Ceil, Round, Sqrt and Rsqrt through it.
type Backend interface {
	Rounder
	Rooter

	// Name returns a short identifier ("portable", "hardware").
	Name() string
}

// PortableBackend implements Backend with integer conversions and bit
// manipulation only. It runs on every architecture.
//
// Trunc converts through int32, so it is only meaningful for |x| < 2^31.
// Floor, Ceil and Round are exact for integral inputs with |x| < 2^22.
type PortableBackend struct{}

var _ Backend = PortableBackend{}

// Name returns "portable".
func (PortableBackend) Name() string { return "portable" }

// Trunc implements Rounder.
func (PortableBackend) Trunc(x float32) float32 { return truncPortable(x) }

// Floor implements Rounder.
func (PortableBackend) Floor(x float32) float32 { return floorPortable(x) }

// Ceil implements Rounder.
func (PortableBackend) Ceil(x float32) float32 { return ceilPortable(x) }

// Round implements Rounder.
func (PortableBackend) Round(x float32) float32 { return roundPortable(x) }

// Sqrt implements Rooter with a magic-constant estimate and Newton–Raphson
// refinement: one step, or two when built with the xmath_acc tag.
func (PortableBackend) Sqrt(x float32) float32 {
	s := sqrtStep(sqrtSeed(x), x)
	if accurate {
		s = sqrtStep(s, x)
	}
	return s
}

// Rsqrt implements Rooter with the fast inverse square root: one Newton step,
// or two when built with the xmath_acc tag.
func (PortableBackend) Rsqrt(x float32) float32 {
	half := 0.5 * x
	r := rsqrtStep(rsqrtSeed(x), half)
	if accurate {
		r = rsqrtStep(r, half)
	}
	return r
}

// HardwareBackend implements Backend with the floating point unit's rounding
// and square root instructions. The Go compiler lowers math.Trunc, math.Floor
// and math.Ceil to ROUNDSD on amd64 (SSE4.1) and FRINTZ/FRINTM/FRINTP on arm64;
// math32.Sqrt is SQRTSS/FSQRT assembly.
//
// The accuracy tier does not apply: the instructions are exact.
type HardwareBackend struct{}

var _ Backend = HardwareBackend{}

// Name returns "hardware".
func (HardwareBackend) Name() string { return "hardware" }

// Trunc implements Rounder.
func (HardwareBackend) Trunc(x float32) float32 { return float32(math.Trunc(float64(x))) }

// Floor implements Rounder.
func (HardwareBackend) Floor(x float32) float32 { return float32(math.Floor(float64(x))) }

// Ceil implements Rounder.
func (HardwareBackend) Ceil(x float32) float32 { return float32(math.Ceil(float64(x))) }

// Round implements Rounder. Ties go away from zero, as in PortableBackend.
func (HardwareBackend) Round(x float32) float32 { return float32(math.Round(float64(x))) }

// Sqrt implements Rooter.
func (HardwareBackend) Sqrt(x float32) float32 { return math32.Sqrt(x) }

// Rsqrt implements Rooter.
func (HardwareBackend) Rsqrt(x float32) float32 { return 1 / math32.Sqrt(x) }
