package dd

import (
	"math"
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
	"github.com/x448/float16"
)

// Widening converts limbs exactly, so the pair's exact value must be
// preserved bit for bit, and the result must be canonical at the new width.
func TestConvertWiden32To64(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 10000; i++ {
		d := DF32FromFloat64(randFloat64(globalRNG))
		if !d.IsFinite() {
			continue
		}
		w := d.AsDF64()

		tt.MustAssert(d.AsBigFloat().Cmp(w.AsBigFloat()) == 0,
			"widening changed value: %s -> %s", d, w)
		tt.MustAssert(math.Abs(w.Lo()) <= 0.5*ulp64(w.Hi()) || w.Hi() == 0,
			"widened pair not canonical: (%g, %g)", w.Hi(), w.Lo())
	}
}

func TestConvertWiden16(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 10000; i++ {
		d := DF16FromFloat64(randFloat64(globalRNG))
		if !d.IsFinite() {
			continue
		}

		w32 := d.AsDF32()
		w64 := d.AsDF64()
		tt.MustAssert(d.AsBigFloat().Cmp(w32.AsBigFloat()) == 0)
		tt.MustAssert(d.AsBigFloat().Cmp(w64.AsBigFloat()) == 0)

		// A binary16 pair's value fits a single float64 exactly, so the
		// widened 64-bit pair collapses to (value, 0).
		tt.MustExact(d.AsFloat64(), w64.Hi())
		tt.MustExact(0.0, w64.Lo())
	}
}

// Widening a narrow split must agree exactly with splitting the same
// scalar at the wider width: a float32 is exact at 32 bits, so both sides
// are (f, 0) at 64.
func TestConvertWidenOfSplit(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 10000; i++ {
		f := randFloat32(globalRNG)
		tt.MustAssert(DF32FromFloat32(f).AsDF64().Equal(DF64FromFloat32(f)))
	}

	for i := 0; i < 10000; i++ {
		f := randFloat16(globalRNG)
		tt.MustAssert(DF16FromFloat16(f).AsDF32().Equal(DF32FromFloat32(f.Float32())))
	}
}

// Narrowing must pass the combined information of both limbs through the
// exact intermediate: narrowing a split of x equals splitting x directly.
func TestConvertNarrow64To32(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 10000; i++ {
		f := randFloat64(globalRNG)
		tt.MustAssert(DF64FromFloat64(f).AsDF32().Equal(DF32FromFloat64(f)),
			"narrow of split(%g) diverged from direct split", f)
	}
}

func TestConvertNarrowTo16(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 10000; i++ {
		f := randFloat64(globalRNG)
		tt.MustAssert(DF64FromFloat64(f).AsDF16().Equal(DF16FromFloat64(f)))

		// A 32-bit pair's exact value is the float64 sum of its limbs,
		// which is what narrowing must split, not the hi limb alone.
		d := DF32FromFloat64(f)
		if !d.IsFinite() {
			continue
		}
		tt.MustAssert(d.AsDF16().Equal(DF16FromFloat64(d.AsFloat64())))
	}
}

// Widen-then-narrow is lossless: no information was added at the wider
// width, so the original pair must come back exactly.
func TestConvertRoundTrip(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 10000; i++ {
		d32 := DF32FromFloat64(randFloat64(globalRNG))
		if !d32.IsFinite() {
			continue
		}
		tt.MustAssert(d32.AsDF64().AsDF32().Equal(d32),
			"64-bit round trip altered %s", d32)

		d16 := DF16FromFloat64(randFloat64(globalRNG))
		if !d16.IsFinite() {
			continue
		}
		tt.MustAssert(d16.AsDF32().AsDF16().Equal(d16))
		tt.MustAssert(d16.AsDF64().AsDF16().Equal(d16))
	}
}

// A canonical pair's lo may sit hundreds of binary orders below hi; the
// narrowing intermediate and the big.Float reconstruction must widen to
// the limbs' full span rather than rounding at some fixed precision that
// zeroes lo.
func TestConvertFarLimbs(t *testing.T) {
	tt := assert.WrapTB(t)

	// 0x1p-140 is a float32 subnormal, so this pair is representable and
	// canonical at 32 bits with its limbs 260 binary orders apart.
	d32 := DF32FromRaw(0x1p120, 0x1p-140)
	tt.MustAssert(d32.AsDF64().AsDF32().Equal(d32),
		"64-bit round trip dropped the distant lo of %v", d32)

	n := DF64FromPair(0x1p120, 0x1p-140).AsDF32()
	tt.MustExact(float32(0x1p120), n.Hi())
	tt.MustExact(float32(0x1p-140), n.Lo())

	// The big.Float reconstruction is the exact sum, not a rounding of it:
	// 2^1000 + 2^-1000 needs a 2001-bit mantissa.
	wide := DF64FromPair(0x1p1000, 0x1p-1000)
	tt.MustAssert(wide.AsBigFloat().Cmp(bigSum(0x1p1000, 0x1p-1000)) == 0)
	var x big.Float
	wide.IntoBigFloat(&x)
	tt.MustAssert(x.MinPrec() == 2001, "reconstruction rounded to %d bits", x.MinPrec())
}

func TestConvertIdentity(t *testing.T) {
	tt := assert.WrapTB(t)

	d64 := df64s("0.1")
	tt.MustAssert(d64.AsDF64().Equal(d64))
	d32 := df32s("0.1")
	tt.MustAssert(d32.AsDF32().Equal(d32))
	d16 := df16s("0.1")
	tt.MustAssert(d16.AsDF16().Equal(d16))
}

func TestConvertNonFinite(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustAssert(DF64Inf(1).AsDF32().IsInf(1))
	tt.MustAssert(DF64Inf(-1).AsDF32().IsInf(-1))
	tt.MustAssert(DF64Inf(1).AsDF16().IsInf(1))
	tt.MustAssert(DF64NaN().AsDF32().IsNaN())
	tt.MustAssert(DF64NaN().AsDF16().IsNaN())

	tt.MustAssert(DF32Inf(-1).AsDF64().IsInf(-1))
	tt.MustAssert(DF32NaN().AsDF64().IsNaN())
	tt.MustAssert(DF16Inf(1).AsDF64().IsInf(1))
	tt.MustAssert(DF16NaN().AsDF32().IsNaN())

	// The NaN convention survives conversion: lo carries no information.
	tt.MustAssert(math.IsNaN(DF32Inf(1).AsDF64().Lo()))
	tt.MustAssert(DF64Inf(1).AsDF16().Lo().IsNaN())

	// Finite 64-bit pairs beyond the narrower range overflow with the
	// right sign.
	tt.MustAssert(DF64FromFloat64(1e300).AsDF32().IsInf(1))
	tt.MustAssert(DF64FromFloat64(-1e300).AsDF32().IsInf(-1))
	tt.MustAssert(DF64FromFloat64(1e10).AsDF16().IsInf(1))
}

// DF*FromBigFloat is the splitter the narrowing path runs through;
// narrowing and re-splitting the exact value must agree.
func TestConvertViaBigFloat(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 1000; i++ {
		d := DF64FromPair(randFloat64(globalRNG), randFloat64(globalRNG))
		if !d.IsFinite() {
			continue
		}
		var x big.Float
		d.IntoBigFloat(&x)
		tt.MustAssert(d.AsDF32().Equal(DF32FromBigFloat(&x)))
		tt.MustAssert(d.AsDF16().Equal(DF16FromBigFloat(&x)))
	}
}

func TestConvertFromSum16(t *testing.T) {
	tt := assert.WrapTB(t)

	// 256.25 still fits a single binary16 significand, so it is absorbed
	// into hi.
	d := DF16FromSum(DF16FromFloat64(256), float16.Fromfloat32(0.25))
	tt.MustExact(256.25, d.AsFloat64())
	tt.MustExact(0.0, wide16(d.Lo()))

	// 4096 + 1 does not: the sum rounds to 4096 and the residual lands in
	// lo, so the pair holds 4097 exactly.
	d = DF16FromSum(DF16FromFloat64(4096), float16.Fromfloat32(1))
	tt.MustExact(4096.0, wide16(d.Hi()))
	tt.MustExact(1.0, wide16(d.Lo()))
	tt.MustExact(4097.0, d.AsFloat64())
}
