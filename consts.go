package dd

const (
	// Native significand sizes, implicit bit included.
	mant64 = 53
	mant32 = 24
	mant16 = 11

	// Precision64 is the significand size reported by DF64.Precision:
	// exactly twice the native count. This is a property of the type, not a
	// measurement of any particular stored pair.
	Precision64 = 2 * mant64
	Precision32 = 2 * mant32
	Precision16 = 2 * mant16
)

const (
	// big.Float working precision for each width's decimal parse and
	// integer split: enough for the format's text digit count and a full
	// int64. The exact-sum paths do NOT use these; a pair's limbs can sit
	// anywhere in the exponent range, so narrowing and big.Float
	// reconstruction size their mantissas from the limb span instead (see
	// pairPrec).
	bigPrec64 = 256
	bigPrec32 = 128
	bigPrec16 = 64
)

const (
	// Decimal digits needed to round-trip a pair through text: the smallest
	// d with 10^d > 2^(2*mant), plus one of slack.
	digits64 = 34
	digits32 = 16
	digits16 = 8
)
