/*
Package dd provides double-float (DF64, DF32, DF16) types: extended-precision
values stored as a magnitude-ordered, non-overlapping pair of native floats
whose exact sum carries roughly twice the precision of the underlying format.

DF64, DF32 and DF16 are value types; all operations return new values.

Simple example:

	d, _ := DF64FromString("0.1")
	fmt.Println(d.Hi(), d.Lo())
	// Output: 0.1 -5.551115123125783e-18

A double-float can be created from a variety of sources:

	DF64FromRaw(hi, lo float64) DF64
	DF64FromPair(hi, lo float64) DF64
	DF64FromTuple(t Tuple[float64]) DF64
	DF64FromSum(a DF64, b float64) DF64
	DF64FromFloat64(f float64) DF64
	DF64FromFloat32(f float32) DF64
	DF64FromInt64(v int64) DF64
	DF64FromUint64(v uint64) DF64
	DF64FromBigInt(v *big.Int) DF64
	DF64FromBigFloat(v *big.Float) DF64
	DF64FromString(s string) (out DF64, err error)

and converted across widths in every direction:

	DF16.AsDF32, DF16.AsDF64, DF32.AsDF64   (widening)
	DF64.AsDF32, DF64.AsDF16, DF32.AsDF16   (narrowing)
	DF64.AsDF64, DF32.AsDF32, DF16.AsDF16   (identity)

Mixed-type pairs (say a float and an integer) are promoted by converting
both to the limb type first, then canonicalizing with DF64FromPair.

DF64, DF32 and DF16 support the following formatting and marshalling
interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

A pair is canonical when hi is the nearest native float to the intended
value and |lo| is at most half a unit in the last place of hi. Every
constructor except the raw ones establishes this. If the intended value is
an infinity or a NaN, hi carries it and lo is NaN: the low limb of a
non-finite pair carries no information.
*/
package dd
