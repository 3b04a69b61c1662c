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

// Package f32 provides fast, low-precision float32 approximations of
// transcendental and root functions.
//
// Every function is a small scalar computation on the IEEE-754 bit pattern of
// its argument: magic-constant seeds refined by Newton–Raphson steps, range
// reduction followed by low-degree polynomials, and exponent-field bit-puns.
// The functions are pure, allocation-free and safe for concurrent use.
//
// # Functions
//
// Bit primitives:
//   - Bits, FromBits - reinterpret a float32 as its uint32 pattern and back
//   - Abs, Sign - clear / extract the sign bit (Sign never returns 0)
//
// Rounding:
//   - Trunc, Floor, Ceil, Round (ties away from zero)
//   - Mod (sign follows the divisor), Fract
//
// Roots:
//   - Sqrt, Rsqrt, Cbrt
//
// Trigonometric:
//   - Sin, Cos, Sincos, Tan, Asin, Acos, Atan2
//
// Exponential and logarithmic:
//   - Exp2, Exp, Exp10, Log2, Log, Log10, Pow
//
// Hyperbolic:
//   - Sinh, Cosh, Tanh
//
// Selection:
//   - Min, Max, Clamp
//
// # Backends
//
// Trunc, Floor, Ceil, Round, Sqrt and Rsqrt run on a Backend chosen once at
// init time. HardwareBackend uses the FPU's rounding and square root
// instructions when the CPU has them (SSE4.1 on amd64, arm64);
// PortableBackend uses integer conversion and bit tricks everywhere else.
//
//	fmt.Println(f32.CurrentName()) // "sse4.1", "arm64" or "portable"
//
// The portable backend can be forced at build time with the xmath_portable
// tag, or at process start with XMATH_PORTABLE=1.
//
// # Accuracy
//
// Building with the xmath_acc tag adds a second refinement pass to the
// portable Sqrt and Rsqrt and switches Exp2 and Log2 (and everything built on
// them) to their polynomial forms:
//
//	go build -tags xmath_acc ./...
//
// Typical bounds are documented on each function. They are measured, not
// guaranteed.
//
// # Domains
//
// No function validates its input or reports errors. Arguments outside a
// function's natural domain (negative Sqrt, |x| > 1 for Asin, Atan2(0, 0),
// non-positive Log2, ...) produce an unspecified value. NaN, infinities and
// subnormals get no special treatment beyond what the bit arithmetic yields.
package f32

//go:generate go run ../cmd/xmathgen --input constants.toml --output zconstants.go
