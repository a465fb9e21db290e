package dd

import (
	"fmt"
	"math"
	"math/big"

	"github.com/x448/float16"
)

// DF32 is a double-float over float32 limbs, carrying 48 significand bits.
type DF32 struct {
	hi, lo float32
}

// DF32FromRaw stores (hi, lo) verbatim with no validation; the caller
// vouches for canonicity. See DF64FromRaw.
func DF32FromRaw(hi, lo float32) DF32 { return DF32{hi: hi, lo: lo} }

// DF32FromPair canonicalizes (hi, lo) with a two-sum.
func DF32FromPair(hi, lo float32) DF32 {
	h, l := twoSum(bin32{}, hi, lo)
	return DF32{hi: h, lo: l}
}

// DF32FromTuple canonicalizes a positional (hi, lo) tuple.
func DF32FromTuple(t Tuple[float32]) DF32 { return DF32FromPair(t[0], t[1]) }

// DF32FromSum returns the canonical double-float for the exact sum a + b.
func DF32FromSum(a DF32, b float32) DF32 {
	h, l := joinScalar(bin32{}, a.hi, a.lo, b)
	return DF32{hi: h, lo: l}
}

// DF32FromFloat32 splits a float32 into double-float form: (f, 0), or
// (f, NaN) for non-finite f.
func DF32FromFloat32(f float32) DF32 {
	h, l := splitFloat64(bin32{}, float64(f))
	return DF32{hi: h, lo: l}
}

// DF32FromFloat64 splits a float64 into double-float form at 32 bits. The
// residual is taken at full float64 precision before rounding, so the pair
// captures f well past what a lone float32 would keep.
func DF32FromFloat64(f float64) DF32 {
	h, l := splitFloat64(bin32{}, f)
	return DF32{hi: h, lo: l}
}

// DF32FromInt64 splits an int64 into double-float form. Values beyond 2^24
// go through an exact big.Float promotion first.
func DF32FromInt64(v int64) DF32 {
	h, l := splitInt64(bin32{}, v)
	return DF32{hi: h, lo: l}
}

// DF32FromUint64 splits a uint64 into double-float form.
func DF32FromUint64(v uint64) DF32 {
	h, l := splitUint64(bin32{}, v)
	return DF32{hi: h, lo: l}
}

// DF32FromBigInt splits a big.Int into double-float form.
func DF32FromBigInt(v *big.Int) DF32 {
	h, l := splitBigInt(bin32{}, v)
	return DF32{hi: h, lo: l}
}

// DF32FromBigFloat splits an arbitrary-precision value into double-float
// form.
func DF32FromBigFloat(v *big.Float) DF32 {
	h, l := splitBig(bin32{}, v)
	return DF32{hi: h, lo: l}
}

// DF32FromString parses a decimal string into double-float form.
func DF32FromString(s string) (out DF32, err error) {
	h, l, err := parsePair(bin32{}, "df32", s)
	if err != nil {
		return out, err
	}
	return DF32{hi: h, lo: l}, nil
}

// DF32Inf returns (+Inf, NaN) if sign >= 0, (-Inf, NaN) if sign < 0.
func DF32Inf(sign int) DF32 {
	return DF32{hi: float32(math.Inf(sign)), lo: float32(math.NaN())}
}

// DF32NaN returns the (NaN, NaN) pair.
func DF32NaN() DF32 {
	return DF32{hi: float32(math.NaN()), lo: float32(math.NaN())}
}

// DF32Zero returns the zero pair.
func DF32Zero() DF32 { return DF32{} }

// Hi returns the dominant limb: the nearest float32 to the pair's value.
func (d DF32) Hi() float32 { return d.hi }

// Lo returns the correction limb.
func (d DF32) Lo() float32 { return d.lo }

// Raw returns access to the DF32 as a pair of float32s. See DF32FromRaw()
// for the counterpart.
func (d DF32) Raw() (hi, lo float32) { return d.hi, d.lo }

// Precision reports the pair's significand size in bits: twice the native
// float32 count.
func (d DF32) Precision() int { return Precision32 }

func (d DF32) IsZero() bool  { return d.hi == 0 && d.lo == 0 }
func (d DF32) IsNaN() bool   { return d.hi != d.hi }
func (d DF32) Signbit() bool { return math.Signbit(float64(d.hi)) }

func (d DF32) IsFinite() bool { return bin32{}.isFinite(d.hi) }

// IsInf reports whether hi is an infinity of the given sign, with the same
// sign convention as math.IsInf.
func (d DF32) IsInf(sign int) bool { return math.IsInf(float64(d.hi), sign) }

// Equal reports representation equality: both limbs bit-identical,
// consistent with Hash.
func (d DF32) Equal(n DF32) bool {
	return math.Float32bits(d.hi) == math.Float32bits(n.hi) &&
		math.Float32bits(d.lo) == math.Float32bits(n.lo)
}

// Hash returns a structural hash of the pair.
func (d DF32) Hash() uint64 {
	return hashLimbs(uint64(math.Float32bits(d.hi)), uint64(math.Float32bits(d.lo)))
}

// AsDF64 widens: both limbs convert exactly, then a two-sum restores
// canonicity, since a pair that is non-overlapping at 32 bits may overlap
// at float64's finer resolution.
func (d DF32) AsDF64() DF64 {
	h, l := widenPair(bin32{}, bin64{}, d.hi, d.lo)
	return DF64{hi: h, lo: l}
}

// AsDF32 is the identity.
func (d DF32) AsDF32() DF32 { return d }

// AsDF16 narrows through an exact big.Float intermediate.
func (d DF32) AsDF16() DF16 {
	h, l := narrowPair(bin32{}, bin16{}, d.hi, d.lo)
	return DF16{hi: h, lo: l}
}

// AsFloat32 rounds the pair to a single float32, which for a canonical
// pair is hi.
func (d DF32) AsFloat32() float32 { return d.hi }

// AsFloat16 rounds the pair to a single binary16 using both limbs.
func (d DF32) AsFloat16() float16.Float16 { return d.AsDF16().Hi() }

// AsFloat64 returns the pair's value as a float64. The sum of two float32
// limbs is exact at 64 bits.
func (d DF32) AsFloat64() float64 {
	if !d.IsFinite() {
		// The NaN lo of a non-finite pair must not poison the sum.
		return float64(d.hi)
	}
	return float64(d.hi) + float64(d.lo)
}

// AsBigFloat returns the exact sum hi+lo. Panics if the pair is NaN.
func (d DF32) AsBigFloat() (b *big.Float) {
	var v big.Float
	d.IntoBigFloat(&v)
	return &v
}

// IntoBigFloat sets b to the exact sum hi+lo. Panics if the pair is NaN.
func (d DF32) IntoBigFloat(b *big.Float) {
	switch {
	case d.IsNaN() || d.lo != d.lo && d.IsFinite():
		panic("dd: df32 NaN has no big.Float form")
	case d.IsInf(0):
		b.SetInf(d.Signbit())
	default:
		pairBig(bin32{}, b, d.hi, d.lo)
	}
}

func (d DF32) String() string {
	if !d.IsFinite() {
		return nonFiniteStr(d.IsNaN(), d.Signbit())
	}
	return d.AsBigFloat().Text('g', digits32)
}

func (d DF32) Format(s fmt.State, c rune) {
	if !d.IsFinite() {
		fmt.Fprint(s, d.String())
		return
	}
	d.AsBigFloat().Format(s, c)
}

func (d DF32) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *DF32) UnmarshalText(bts []byte) (err error) {
	v, err := DF32FromString(string(bts))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d DF32) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *DF32) UnmarshalJSON(bts []byte) (err error) {
	if bts[0] == '"' {
		ln := len(bts)
		if bts[ln-1] != '"' {
			return fmt.Errorf("dd: df32 invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := DF32FromString(string(bts))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
