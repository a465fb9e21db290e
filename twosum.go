package dd

import "github.com/x448/float16"

// twoSum is the error-free addition at the trait's width: hi is a+b rounded
// to nearest, lo the exact rounding error, so hi+lo == a+b in unbounded
// precision for any finite a, b whose sum stays in range.
//
// The operation order is load-bearing. Each intermediate must round exactly
// where written; Go guarantees this (floating-point expressions are never
// reassociated, and no multiplications exist here to contract into an FMA).
// If hi overflows to an infinity, lo falls out as NaN: the Inf-Inf
// intermediates poison it, which is exactly the convention for pairs whose
// low limb carries no information.
func twoSum[F comparable, M format[F]](m M, a, b F) (hi, lo F) {
	s := m.add(a, b)
	bb := m.sub(s, a)
	lo = m.add(m.sub(a, m.sub(s, bb)), m.sub(b, bb))
	return s, lo
}

// TwoSum64 returns the canonical pair for a+b at 64 bits: hi is the rounded
// sum and lo its exact rounding error.
func TwoSum64(a, b float64) (hi, lo float64) {
	return twoSum(bin64{}, a, b)
}

// TwoSum32 is TwoSum64 at 32 bits.
func TwoSum32(a, b float32) (hi, lo float32) {
	return twoSum(bin32{}, a, b)
}

// TwoSum16 is TwoSum64 at 16 bits.
func TwoSum16(a, b float16.Float16) (hi, lo float16.Float16) {
	return twoSum(bin16{}, a, b)
}
