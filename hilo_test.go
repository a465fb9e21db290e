package dd

import (
	"testing"

	"github.com/shabbyrobe/golib/assert"
	"github.com/x448/float16"
)

var (
	_ Parts[float64]         = DF64{}
	_ Parts[float32]         = DF32{}
	_ Parts[float16.Float16] = DF16{}
	_ Parts[float64]         = Scalar[float64]{}
	_ Parts[float64]         = Tuple[float64]{}
	_ Parts[DF64]            = Tuple[DF64]{}

	_ Hasher = DF64{}
	_ Hasher = DF32{}
	_ Hasher = DF16{}
	_ Hasher = Scalar[float32]{}
	_ Hasher = Tuple[float16.Float16]{}
)

func TestHiLoScalar(t *testing.T) {
	tt := assert.WrapTB(t)

	s := ScalarOf(1.5)
	tt.MustExact(1.5, s.Hi())
	tt.MustExact(0.0, s.Lo())

	hi, lo := s.Raw()
	tt.MustExact(1.5, hi)
	tt.MustExact(0.0, lo)

	tt.MustExact(1.5, HiOf[float64](s))
	tt.MustExact(0.0, LoOf[float64](s))

	h16 := ScalarOf(float16.Fromfloat32(2))
	tt.MustExact(float16.Fromfloat32(2), h16.Hi())
	tt.MustExact(float16.Float16(0), h16.Lo())
}

func TestHiLoDouble(t *testing.T) {
	tt := assert.WrapTB(t)

	d64 := DF64FromPair(1, 0x1p-60)
	tt.MustExact(d64.Hi(), HiOf[float64](d64))
	tt.MustExact(d64.Lo(), LoOf[float64](d64))
	hi, lo := PairOf[float64](d64)
	tt.MustExact(d64.Hi(), hi)
	tt.MustExact(d64.Lo(), lo)

	d32 := DF32FromFloat64(0.1)
	tt.MustExact(d32.Hi(), HiOf[float32](d32))
	tt.MustExact(d32.Lo(), LoOf[float32](d32))

	d16 := DF16FromFloat64(0.1)
	tt.MustExact(d16.Hi(), HiOf[float16.Float16](d16))
	tt.MustExact(d16.Lo(), LoOf[float16.Float16](d16))
}

func TestHiLoTuple(t *testing.T) {
	tt := assert.WrapTB(t)

	p := TupleOf(3.0, 4.0)
	tt.MustExact(3.0, p.Hi())
	tt.MustExact(4.0, p.Lo())

	hi, lo := p.Raw()
	tt.MustExact(3.0, hi)
	tt.MustExact(4.0, lo)

	tt.MustExact(3.0, HiOf[float64](p))
	tt.MustExact(4.0, LoOf[float64](p))
}

// Tuples may nest double-floats; the accessors return the element intact.
func TestHiLoNested(t *testing.T) {
	tt := assert.WrapTB(t)

	a := df64s("0.1")
	b := df64s("0.3")
	p := TupleOf(a, b)
	tt.MustAssert(HiOf[DF64](p).Equal(a))
	tt.MustAssert(LoOf[DF64](p).Equal(b))

	q := TupleOf(p, p)
	tt.MustAssert(HiOf[Tuple[DF64]](q).Hi().Equal(a))
}

// The adapters hash the same limbs the same way the double-float types do:
// a scalar is the pair (v, 0), a flat tuple is its two limbs in order.
func TestHiLoHash(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 1000; i++ {
		f := randFloat64(globalRNG)
		d := DF64FromFloat64(f)
		if !d.IsFinite() {
			// Non-finite splits carry a NaN lo that the adapters don't.
			continue
		}
		tt.MustEqual(d.Hash(), ScalarOf(f).Hash())
		tt.MustEqual(d.Hash(), TupleOf(f, 0.0).Hash())
	}

	f := float32(0.1)
	tt.MustEqual(DF32FromFloat32(f).Hash(), ScalarOf(f).Hash())

	// Order matters.
	tt.MustAssert(TupleOf(1.0, 2.0).Hash() != TupleOf(2.0, 1.0).Hash())

	// Nested tuples recurse through the element hashes.
	a, b := df64s("0.1"), df64s("0.3")
	tt.MustEqual(hashLimbs(a.Hash(), b.Hash()), TupleOf(a, b).Hash())
	tt.MustAssert(TupleOf(a, b).Hash() != TupleOf(b, a).Hash())
}
