//go:build !xmath_acc

package f32

// accurate selects the two-pass refinement variants. Set by the xmath_acc
// build tag.
const accurate = false
