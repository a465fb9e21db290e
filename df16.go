package dd

import (
	"fmt"
	"math/big"

	"github.com/x448/float16"
)

// DF16 is a double-float over IEEE binary16 limbs, carrying 22 significand
// bits. Limbs are float16.Float16 values; the host has no native binary16,
// so limb arithmetic is emulated exactly (see bin16).
type DF16 struct {
	hi, lo float16.Float16
}

// DF16FromRaw stores (hi, lo) verbatim with no validation; the caller
// vouches for canonicity. See DF64FromRaw.
func DF16FromRaw(hi, lo float16.Float16) DF16 { return DF16{hi: hi, lo: lo} }

// DF16FromPair canonicalizes (hi, lo) with a two-sum.
func DF16FromPair(hi, lo float16.Float16) DF16 {
	h, l := twoSum(bin16{}, hi, lo)
	return DF16{hi: h, lo: l}
}

// DF16FromTuple canonicalizes a positional (hi, lo) tuple.
func DF16FromTuple(t Tuple[float16.Float16]) DF16 { return DF16FromPair(t[0], t[1]) }

// DF16FromSum returns the canonical double-float for the exact sum a + b.
func DF16FromSum(a DF16, b float16.Float16) DF16 {
	h, l := joinScalar(bin16{}, a.hi, a.lo, b)
	return DF16{hi: h, lo: l}
}

// DF16FromFloat16 splits a binary16 value into double-float form: (f, 0),
// or (f, NaN) for non-finite f.
func DF16FromFloat16(f float16.Float16) DF16 {
	h, l := splitFloat64(bin16{}, wide16(f))
	return DF16{hi: h, lo: l}
}

// DF16FromFloat32 splits a float32 into double-float form at 16 bits.
func DF16FromFloat32(f float32) DF16 {
	h, l := splitFloat64(bin16{}, float64(f))
	return DF16{hi: h, lo: l}
}

// DF16FromFloat64 splits a float64 into double-float form at 16 bits. The
// residual is taken at full float64 precision before rounding.
func DF16FromFloat64(f float64) DF16 {
	h, l := splitFloat64(bin16{}, f)
	return DF16{hi: h, lo: l}
}

// DF16FromInt64 splits an int64 into double-float form. Values beyond 2^11
// go through an exact big.Float promotion first.
func DF16FromInt64(v int64) DF16 {
	h, l := splitInt64(bin16{}, v)
	return DF16{hi: h, lo: l}
}

// DF16FromUint64 splits a uint64 into double-float form.
func DF16FromUint64(v uint64) DF16 {
	h, l := splitUint64(bin16{}, v)
	return DF16{hi: h, lo: l}
}

// DF16FromBigInt splits a big.Int into double-float form.
func DF16FromBigInt(v *big.Int) DF16 {
	h, l := splitBigInt(bin16{}, v)
	return DF16{hi: h, lo: l}
}

// DF16FromBigFloat splits an arbitrary-precision value into double-float
// form.
func DF16FromBigFloat(v *big.Float) DF16 {
	h, l := splitBig(bin16{}, v)
	return DF16{hi: h, lo: l}
}

// DF16FromString parses a decimal string into double-float form.
func DF16FromString(s string) (out DF16, err error) {
	h, l, err := parsePair(bin16{}, "df16", s)
	if err != nil {
		return out, err
	}
	return DF16{hi: h, lo: l}, nil
}

// DF16Inf returns (+Inf, NaN) if sign >= 0, (-Inf, NaN) if sign < 0.
func DF16Inf(sign int) DF16 {
	return DF16{hi: float16.Inf(sign), lo: float16.NaN()}
}

// DF16NaN returns the (NaN, NaN) pair.
func DF16NaN() DF16 {
	return DF16{hi: float16.NaN(), lo: float16.NaN()}
}

// DF16Zero returns the zero pair.
func DF16Zero() DF16 { return DF16{} }

// Hi returns the dominant limb: the nearest binary16 to the pair's value.
func (d DF16) Hi() float16.Float16 { return d.hi }

// Lo returns the correction limb.
func (d DF16) Lo() float16.Float16 { return d.lo }

// Raw returns access to the DF16 as a pair of binary16s. See DF16FromRaw()
// for the counterpart.
func (d DF16) Raw() (hi, lo float16.Float16) { return d.hi, d.lo }

// Precision reports the pair's significand size in bits: twice the native
// binary16 count.
func (d DF16) Precision() int { return Precision16 }

func (d DF16) IsZero() bool {
	return d.hi.Bits()&^signBit16 == 0 && d.lo.Bits()&^signBit16 == 0
}

func (d DF16) IsNaN() bool    { return d.hi.IsNaN() }
func (d DF16) IsFinite() bool { return d.hi.IsFinite() }
func (d DF16) Signbit() bool  { return d.hi.Signbit() }

// IsInf reports whether hi is an infinity of the given sign, with the same
// sign convention as math.IsInf.
func (d DF16) IsInf(sign int) bool { return d.hi.IsInf(sign) }

// Equal reports representation equality: both limbs bit-identical,
// consistent with Hash.
func (d DF16) Equal(n DF16) bool {
	return d.hi.Bits() == n.hi.Bits() && d.lo.Bits() == n.lo.Bits()
}

// Hash returns a structural hash of the pair.
func (d DF16) Hash() uint64 {
	return hashLimbs(uint64(d.hi.Bits()), uint64(d.lo.Bits()))
}

// AsDF64 widens: both limbs convert exactly, then a two-sum restores
// canonicity at the wider resolution.
func (d DF16) AsDF64() DF64 {
	h, l := widenPair(bin16{}, bin64{}, d.hi, d.lo)
	return DF64{hi: h, lo: l}
}

// AsDF32 widens to a float32 pair; see AsDF64.
func (d DF16) AsDF32() DF32 {
	h, l := widenPair(bin16{}, bin32{}, d.hi, d.lo)
	return DF32{hi: h, lo: l}
}

// AsDF16 is the identity.
func (d DF16) AsDF16() DF16 { return d }

// AsFloat16 rounds the pair to a single binary16, which for a canonical
// pair is hi.
func (d DF16) AsFloat16() float16.Float16 { return d.hi }

// AsFloat32 returns the pair's value as a float32: the exact float64 sum
// of the limbs, rounded once.
func (d DF16) AsFloat32() float32 { return float32(d.AsFloat64()) }

// AsFloat64 returns the pair's value as a float64. The sum of two binary16
// limbs is exact at 64 bits.
func (d DF16) AsFloat64() float64 {
	if !d.IsFinite() {
		// The NaN lo of a non-finite pair must not poison the sum.
		return wide16(d.hi)
	}
	return wide16(d.hi) + wide16(d.lo)
}

// AsBigFloat returns the exact sum hi+lo. Panics if the pair is NaN.
func (d DF16) AsBigFloat() (b *big.Float) {
	var v big.Float
	d.IntoBigFloat(&v)
	return &v
}

// IntoBigFloat sets b to the exact sum hi+lo. Panics if the pair is NaN.
func (d DF16) IntoBigFloat(b *big.Float) {
	switch {
	case d.IsNaN() || d.lo.IsNaN() && d.IsFinite():
		panic("dd: df16 NaN has no big.Float form")
	case d.IsInf(0):
		b.SetInf(d.Signbit())
	default:
		pairBig(bin16{}, b, d.hi, d.lo)
	}
}

func (d DF16) String() string {
	if !d.IsFinite() {
		return nonFiniteStr(d.IsNaN(), d.Signbit())
	}
	return d.AsBigFloat().Text('g', digits16)
}

func (d DF16) Format(s fmt.State, c rune) {
	if !d.IsFinite() {
		fmt.Fprint(s, d.String())
		return
	}
	d.AsBigFloat().Format(s, c)
}

func (d DF16) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *DF16) UnmarshalText(bts []byte) (err error) {
	v, err := DF16FromString(string(bts))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d DF16) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *DF16) UnmarshalJSON(bts []byte) (err error) {
	if bts[0] == '"' {
		ln := len(bts)
		if bts[ln-1] != '"' {
			return fmt.Errorf("dd: df16 invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := DF16FromString(string(bts))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

const signBit16 = 0x8000
