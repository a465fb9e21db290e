package dd

import (
	"fmt"
	"math"
	"math/big"

	"github.com/x448/float16"
)

// DF64 is a double-float over float64 limbs: an immutable, value-typed
// (hi, lo) pair carrying 106 significand bits. See the package
// documentation for the canonical-pair rules.
type DF64 struct {
	hi, lo float64
}

// DF64FromRaw trusts the caller that (hi, lo) is already canonical and
// stores it verbatim. It exists so call sites that hold the output of a
// two-sum, or a copy of another canonical pair, can skip a redundant
// re-normalization. Passing a non-canonical pair is a contract violation;
// it is never detected, in any build mode, and the arithmetic layered on
// top will quietly produce garbage.
func DF64FromRaw(hi, lo float64) DF64 { return DF64{hi: hi, lo: lo} }

// DF64FromPair canonicalizes (hi, lo) with a two-sum, whatever the caller
// supplies. Non-finite inputs collapse to (non-finite, NaN).
func DF64FromPair(hi, lo float64) DF64 {
	h, l := twoSum(bin64{}, hi, lo)
	return DF64{hi: h, lo: l}
}

// DF64FromTuple canonicalizes a positional (hi, lo) tuple.
func DF64FromTuple(t Tuple[float64]) DF64 { return DF64FromPair(t[0], t[1]) }

// DF64FromSum returns the canonical double-float for the exact sum a + b.
// The scalar is treated as a zero-residual pair and folded in through the
// summation primitive, not by truncation.
func DF64FromSum(a DF64, b float64) DF64 {
	h, l := joinScalar(bin64{}, a.hi, a.lo, b)
	return DF64{hi: h, lo: l}
}

// DF64FromFloat64 splits a float64 into double-float form. The value is
// already exact at this width, so the pair is (f, 0); non-finite f yields
// (f, NaN).
func DF64FromFloat64(f float64) DF64 {
	h, l := splitFloat64(bin64{}, f)
	return DF64{hi: h, lo: l}
}

// DF64FromFloat32 splits a float32 into double-float form. The widening is
// exact.
func DF64FromFloat32(f float32) DF64 { return DF64FromFloat64(float64(f)) }

// DF64FromInt64 splits an int64 into double-float form. Values beyond
// 2^53 retain their low bits in the lo limb rather than losing them to
// float64 rounding.
func DF64FromInt64(v int64) DF64 {
	h, l := splitInt64(bin64{}, v)
	return DF64{hi: h, lo: l}
}

// DF64FromUint64 splits a uint64 into double-float form.
func DF64FromUint64(v uint64) DF64 {
	h, l := splitUint64(bin64{}, v)
	return DF64{hi: h, lo: l}
}

// DF64FromBigInt splits a big.Int into double-float form. Integers beyond
// the 106-bit pair precision round; integers beyond float64 range become
// (±Inf, NaN).
func DF64FromBigInt(v *big.Int) DF64 {
	h, l := splitBigInt(bin64{}, v)
	return DF64{hi: h, lo: l}
}

// DF64FromBigFloat splits an arbitrary-precision value into double-float
// form. This is the splitter the narrowing conversions run through.
func DF64FromBigFloat(v *big.Float) DF64 {
	h, l := splitBig(bin64{}, v)
	return DF64{hi: h, lo: l}
}

// DF64FromString parses a decimal string ("0.1", "1.5e300", "Inf", "NaN")
// into double-float form.
func DF64FromString(s string) (out DF64, err error) {
	h, l, err := parsePair(bin64{}, "df64", s)
	if err != nil {
		return out, err
	}
	return DF64{hi: h, lo: l}, nil
}

// DF64Inf returns (+Inf, NaN) if sign >= 0, (-Inf, NaN) if sign < 0.
func DF64Inf(sign int) DF64 { return DF64{hi: math.Inf(sign), lo: math.NaN()} }

// DF64NaN returns the (NaN, NaN) pair.
func DF64NaN() DF64 { return DF64{hi: math.NaN(), lo: math.NaN()} }

// DF64Zero returns the zero pair.
func DF64Zero() DF64 { return DF64{} }

// Hi returns the dominant limb: the nearest float64 to the pair's value.
func (d DF64) Hi() float64 { return d.hi }

// Lo returns the correction limb.
func (d DF64) Lo() float64 { return d.lo }

// Raw returns access to the DF64 as a pair of float64s. See DF64FromRaw()
// for the counterpart.
func (d DF64) Raw() (hi, lo float64) { return d.hi, d.lo }

// Precision reports the pair's significand size in bits: twice the native
// float64 count. A static fact about the type, not a measurement of the
// stored value.
func (d DF64) Precision() int { return Precision64 }

func (d DF64) IsZero() bool   { return d.hi == 0 && d.lo == 0 }
func (d DF64) IsNaN() bool    { return math.IsNaN(d.hi) }
func (d DF64) IsFinite() bool { return !math.IsNaN(d.hi) && !math.IsInf(d.hi, 0) }
func (d DF64) Signbit() bool  { return math.Signbit(d.hi) }

// IsInf reports whether hi is an infinity of the given sign, with the same
// sign convention as math.IsInf.
func (d DF64) IsInf(sign int) bool { return math.IsInf(d.hi, sign) }

// Equal reports representation equality: both limbs bit-identical. It is
// exactly as strong as Hash; two pairs that denote the same real through
// different splits are not Equal. NaN pairs equal themselves.
func (d DF64) Equal(n DF64) bool {
	return math.Float64bits(d.hi) == math.Float64bits(n.hi) &&
		math.Float64bits(d.lo) == math.Float64bits(n.lo)
}

// Hash returns a structural hash of the pair, derived from the limb hashes
// combined order-sensitively.
func (d DF64) Hash() uint64 {
	return hashLimbs(math.Float64bits(d.hi), math.Float64bits(d.lo))
}

// AsDF64 is the identity; the lattice short-circuits same-width conversion.
func (d DF64) AsDF64() DF64 { return d }

// AsDF32 narrows through an exact big.Float intermediate so the half of the
// pair's information held in lo survives into the narrower pair.
func (d DF64) AsDF32() DF32 {
	h, l := narrowPair(bin64{}, bin32{}, d.hi, d.lo)
	return DF32{hi: h, lo: l}
}

// AsDF16 narrows to a binary16 pair; see AsDF32.
func (d DF64) AsDF16() DF16 {
	h, l := narrowPair(bin64{}, bin16{}, d.hi, d.lo)
	return DF16{hi: h, lo: l}
}

// AsFloat64 rounds the pair to a single float64, which for a canonical pair
// is hi.
func (d DF64) AsFloat64() float64 { return d.hi }

// AsFloat32 rounds the pair to a single float32 using both limbs.
func (d DF64) AsFloat32() float32 { return d.AsDF32().Hi() }

// AsFloat16 rounds the pair to a single binary16 using both limbs.
func (d DF64) AsFloat16() float16.Float16 { return d.AsDF16().Hi() }

// AsBigFloat returns the exact sum hi+lo. Panics if the pair is NaN, which
// big.Float cannot represent.
func (d DF64) AsBigFloat() (b *big.Float) {
	var v big.Float
	d.IntoBigFloat(&v)
	return &v
}

// IntoBigFloat sets b to the exact sum hi+lo. Panics if the pair is NaN.
func (d DF64) IntoBigFloat(b *big.Float) {
	switch {
	case d.IsNaN() || math.IsNaN(d.lo) && d.IsFinite():
		panic("dd: df64 NaN has no big.Float form")
	case d.IsInf(0):
		b.SetInf(d.Signbit())
	default:
		pairBig(bin64{}, b, d.hi, d.lo)
	}
}

func (d DF64) String() string {
	if !d.IsFinite() {
		return nonFiniteStr(d.IsNaN(), d.Signbit())
	}
	return d.AsBigFloat().Text('g', digits64)
}

func (d DF64) Format(s fmt.State, c rune) {
	if !d.IsFinite() {
		fmt.Fprint(s, d.String())
		return
	}
	d.AsBigFloat().Format(s, c)
}

func (d DF64) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *DF64) UnmarshalText(bts []byte) (err error) {
	v, err := DF64FromString(string(bts))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d DF64) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *DF64) UnmarshalJSON(bts []byte) (err error) {
	if bts[0] == '"' {
		ln := len(bts)
		if bts[ln-1] != '"' {
			return fmt.Errorf("dd: df64 invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := DF64FromString(string(bts))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func nonFiniteStr(nan, neg bool) string {
	if nan {
		return "NaN"
	}
	if neg {
		return "-Inf"
	}
	return "+Inf"
}
