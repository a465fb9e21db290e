package dd

import (
	"math"
	"math/big"

	"github.com/x448/float16"
)

// format describes one of the three supported IEEE binary formats through
// the operations the double-float core needs: correctly rounded addition
// and subtraction on limb values, correctly rounded conversion from wider
// carriers, exact widening to float64, and big.Float interop for the
// narrowing path. The three instances are zero-size; the compiler resolves
// every call per width at compile time.
type format[F comparable] interface {
	add(a, b F) F
	sub(a, b F) F

	// fromFloat64 rounds x to the limb format, to nearest, ties to even.
	// Values beyond the format's range become infinities.
	fromFloat64(x float64) F

	// toFloat64 widens exactly; float64 can hold any limb of any width.
	toFloat64(f F) float64

	// fromBig rounds an arbitrary-precision value to the limb format.
	// x must not represent a NaN (big.Float cannot hold one).
	fromBig(x *big.Float) F

	isFinite(f F) bool
	nan() F
	bits(f F) uint64
	mantBits() uint
	prec() uint
}

type bin64 struct{}

func (bin64) add(a, b float64) float64      { return a + b }
func (bin64) sub(a, b float64) float64      { return a - b }
func (bin64) fromFloat64(x float64) float64 { return x }
func (bin64) toFloat64(f float64) float64   { return f }
func (bin64) isFinite(f float64) bool       { return !math.IsNaN(f) && !math.IsInf(f, 0) }
func (bin64) nan() float64                  { return math.NaN() }
func (bin64) bits(f float64) uint64         { return math.Float64bits(f) }
func (bin64) mantBits() uint                { return mant64 }
func (bin64) prec() uint                    { return bigPrec64 }

func (bin64) fromBig(x *big.Float) float64 {
	f, _ := x.Float64()
	return f
}

type bin32 struct{}

func (bin32) add(a, b float32) float32      { return a + b }
func (bin32) sub(a, b float32) float32      { return a - b }
func (bin32) fromFloat64(x float64) float32 { return float32(x) }
func (bin32) toFloat64(f float32) float64   { return float64(f) }
func (bin32) nan() float32                  { return float32(math.NaN()) }
func (bin32) bits(f float32) uint64         { return uint64(math.Float32bits(f)) }
func (bin32) mantBits() uint                { return mant32 }
func (bin32) prec() uint                    { return bigPrec32 }

func (bin32) isFinite(f float32) bool {
	exp := math.Float32bits(f) >> 23 & 0xff
	return exp != 0xff
}

func (bin32) fromBig(x *big.Float) float32 {
	f, _ := x.Float32()
	return f
}

// bin16 emulates IEEE binary16 arithmetic on float16.Float16 limbs by
// computing in float64, where any aligned sum of two binary16 values is
// exact, and rounding the exact result once.
type bin16 struct{}

func (bin16) add(a, b float16.Float16) float16.Float16 {
	return round16(wide16(a) + wide16(b))
}

func (bin16) sub(a, b float16.Float16) float16.Float16 {
	return round16(wide16(a) - wide16(b))
}

func (bin16) fromFloat64(x float64) float16.Float16 { return round16(x) }
func (bin16) toFloat64(f float16.Float16) float64   { return wide16(f) }
func (bin16) isFinite(f float16.Float16) bool       { return f.IsFinite() }
func (bin16) nan() float16.Float16                  { return float16.NaN() }
func (bin16) bits(f float16.Float16) uint64         { return uint64(f.Bits()) }
func (bin16) mantBits() uint                        { return mant16 }
func (bin16) prec() uint                            { return bigPrec16 }

// fromBig stays correctly rounded through both hops: the big -> float64
// step is innocuous for a 24-bit target (53 >= 2*24+2), and round16's own
// comment covers the 24 -> 11 step.
func (bin16) fromBig(x *big.Float) float16.Float16 {
	f, _ := x.Float64()
	return round16(f)
}

// round16 rounds x to binary16, to nearest, ties to even. The hop through
// float32 is safe: double rounding through an intermediate format with q
// significand bits is innocuous for a target with p bits when q >= 2p+2,
// and 24 >= 2*11+2.
func round16(x float64) float16.Float16 {
	return float16.Fromfloat32(float32(x))
}

func wide16(f float16.Float16) float64 {
	return float64(f.Float32())
}
