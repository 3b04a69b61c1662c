//go:build xmath_portable

package f32

// forcePortable is set by the xmath_portable build tag.
const forcePortable = true
