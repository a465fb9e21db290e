package dd

import (
	"fmt"
	"math"
	"math/big"
)

// splitFloat64 splits a float64 into a canonical pair at the trait's width.
// The residual subtraction x - hi is exact in float64 (Sterbenz: hi is
// within a factor of two of x whenever it is non-zero), so lo picks up the
// representable remainder of the hi rounding at full source precision.
func splitFloat64[F comparable, M format[F]](m M, x float64) (hi, lo F) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return m.fromFloat64(x), m.nan()
	}
	hi = m.fromFloat64(x)
	if !m.isFinite(hi) {
		// x was finite but overflows the narrower format.
		return hi, m.nan()
	}
	lo = m.fromFloat64(x - m.toFloat64(hi))
	return hi, lo
}

// splitBig splits the exact value of x into a canonical pair at the trait's
// width. x is left untouched. x carries no NaN by construction of
// big.Float; infinities take the non-finite branch.
func splitBig[F comparable, M format[F]](m M, x *big.Float) (hi, lo F) {
	if x.IsInf() {
		return m.fromBig(x), m.nan()
	}
	hi = m.fromBig(x)
	if !m.isFinite(hi) {
		return hi, m.nan()
	}

	var r big.Float
	r.SetPrec(x.Prec() + 64)
	r.Sub(x, new(big.Float).SetFloat64(m.toFloat64(hi)))
	lo = m.fromBig(&r)
	return hi, lo
}

// splitInt64 promotes v to an exact real before splitting, so that values
// beyond the format's exact-integer range land in both limbs instead of
// losing their low bits to a premature rounding.
func splitInt64[F comparable, M format[F]](m M, v int64) (hi, lo F) {
	if uint64(abs64(v)) <= 1<<m.mantBits() {
		var zero F
		return m.fromFloat64(float64(v)), zero
	}
	var b big.Float
	b.SetPrec(m.prec()).SetInt64(v)
	return splitBig(m, &b)
}

func splitUint64[F comparable, M format[F]](m M, v uint64) (hi, lo F) {
	if v <= 1<<m.mantBits() {
		var zero F
		return m.fromFloat64(float64(v)), zero
	}
	var b big.Float
	b.SetPrec(m.prec()).SetUint64(v)
	return splitBig(m, &b)
}

func splitBigInt[F comparable, M format[F]](m M, v *big.Int) (hi, lo F) {
	// SetInt is exact: it widens the mantissa to v's full bit length.
	return splitBig(m, new(big.Float).SetInt(v))
}

// widenPair converts a pair up to a wider format. Both limb conversions are
// exact, but the source lo may overlap hi at the destination's finer
// resolution, so the pair is re-canonicalized with a two-sum. Non-finite
// sources map straight through.
func widenPair[S, D comparable, MS format[S], MD format[D]](ms MS, md MD, hi, lo S) (dh, dl D) {
	dh = md.fromFloat64(ms.toFloat64(hi))
	if !md.isFinite(dh) {
		return dh, md.nan()
	}
	dl = md.fromFloat64(ms.toFloat64(lo))
	if ms.toFloat64(lo) == 0 {
		// Already canonical, and re-summing a zero lo would fold a -0 hi
		// into +0.
		return dh, dl
	}
	return twoSum(md, dh, dl)
}

// narrowPair converts a pair down to a narrower format. Truncating hi alone
// would throw away up to a full destination-width's worth of information
// sitting in lo, so the exact sum hi+lo is reconstructed in a big.Float and
// re-split at the destination width. Non-finite sources map straight
// through, keeping the infinity's sign.
func narrowPair[S, D comparable, MS format[S], MD format[D]](ms MS, md MD, hi, lo S) (dh, dl D) {
	if !ms.isFinite(hi) || !ms.isFinite(lo) {
		return md.fromFloat64(ms.toFloat64(hi)), md.nan()
	}
	if ms.toFloat64(hi) == 0 {
		// Keep the sign of zero; big.Float addition does not.
		return md.fromFloat64(ms.toFloat64(hi)), md.fromFloat64(0)
	}

	var x, l big.Float
	fh, fl := ms.toFloat64(hi), ms.toFloat64(lo)
	x.SetPrec(pairPrec(fh, fl)).SetFloat64(fh)
	l.SetFloat64(fl)
	x.Add(&x, &l)
	return splitBig(md, &x)
}

// pairPrec sizes a big.Float mantissa so the sum of two limbs is exact.
// Canonicality puts a ceiling on lo, never a floor: the limbs can sit at
// opposite ends of the exponent range, and a float64 pair like
// (0x1p1000, 0x1p-1000) needs over two thousand bits to hold in one
// mantissa. Both limbs must be finite.
func pairPrec(hi, lo float64) uint {
	if hi == 0 || lo == 0 {
		return mant64 + 2
	}
	span := math.Ilogb(hi) - math.Ilogb(lo)
	if span < 0 {
		span = -span
	}
	return uint(span) + mant64 + 2
}

// joinScalar combines a pair with a lone scalar of the same width: the
// scalar is a zero-residual pair, so the combination is a two-sum with the
// source lo folded into the error term, then a canonicalizing two-sum.
func joinScalar[F comparable, M format[F]](m M, hi, lo, s F) (rh, rl F) {
	rh, rl = twoSum(m, hi, s)
	if !m.isFinite(rh) {
		// rl is already NaN here; returning early keeps an infinite rh from
		// being poisoned back to NaN by the recombination below.
		return rh, m.nan()
	}
	rl = m.add(rl, lo)
	return twoSum(m, rh, rl)
}

// pairBig reconstructs the exact sum hi+lo into b. The pair must be
// finite; NaN has no big.Float form.
func pairBig[F comparable, M format[F]](m M, b *big.Float, hi, lo F) {
	var l big.Float
	fh, fl := m.toFloat64(hi), m.toFloat64(lo)
	b.SetPrec(pairPrec(fh, fl)).SetFloat64(fh)
	l.SetFloat64(fl)
	b.Add(b, &l)
}

func parsePair[F comparable, M format[F]](m M, kind, s string) (hi, lo F, err error) {
	if isNaNStr(s) {
		return m.nan(), m.nan(), nil
	}
	f, _, err := big.ParseFloat(s, 10, m.prec(), big.ToNearestEven)
	if err != nil {
		return hi, lo, fmt.Errorf("dd: %s string %q invalid: %v", kind, s, err)
	}
	hi, lo = splitBig(m, f)
	return hi, lo, nil
}

func isNaNStr(s string) bool {
	switch s {
	case "NaN", "nan", "+NaN", "-NaN":
		return true
	}
	return false
}

func abs64(v int64) int64 {
	if v < 0 {
		// MinInt64 wraps to itself, which still compares above the exact
		// range and falls through to the big path.
		return -v
	}
	return v
}
