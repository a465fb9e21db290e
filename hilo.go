package dd

// Parts is the capability interface over everything that has a (hi, lo)
// decomposition: the double-float types, a lone scalar adapted by Scalar,
// and a positional pair adapted by Tuple. Each shape resolves at compile
// time per instantiation; no dynamic dispatch is required at a call site
// that names the concrete type.
type Parts[E any] interface {
	Hi() E
	Lo() E
}

// HiOf returns the high part of any (hi, lo)-shaped value.
func HiOf[E any](v Parts[E]) E { return v.Hi() }

// LoOf returns the low part of any (hi, lo)-shaped value.
func LoOf[E any](v Parts[E]) E { return v.Lo() }

// PairOf returns both parts of any (hi, lo)-shaped value.
func PairOf[E any](v Parts[E]) (hi, lo E) { return v.Hi(), v.Lo() }

// Scalar adapts a lone value to the Parts shape: the value is its own high
// part and the low part is zero.
type Scalar[E comparable] struct {
	V E
}

func ScalarOf[E comparable](v E) Scalar[E] { return Scalar[E]{V: v} }

func (s Scalar[E]) Hi() E { return s.V }

func (s Scalar[E]) Lo() E {
	var zero E
	return zero
}

// Raw returns access to the scalar as a pair. See Tuple for the positional
// counterpart.
func (s Scalar[E]) Raw() (hi, lo E) { return s.Hi(), s.Lo() }

// Hash is consistent with the double-float hashes: the scalar hashes as
// the pair (v, 0).
func (s Scalar[E]) Hash() uint64 {
	return hashLimbs(limbHash(s.Hi()), limbHash(s.Lo()))
}

// Tuple adapts a positional pair to the Parts shape: index 0 is the high
// part, index 1 the low. The element type may itself be a double-float
// (Tuple[DF64] and friends), the hook for future multi-limb nesting.
type Tuple[E comparable] [2]E

func TupleOf[E comparable](hi, lo E) Tuple[E] { return Tuple[E]{hi, lo} }

func (t Tuple[E]) Hi() E { return t[0] }
func (t Tuple[E]) Lo() E { return t[1] }

// Raw returns access to the tuple as a pair.
func (t Tuple[E]) Raw() (hi, lo E) { return t[0], t[1] }

// Hash combines the element hashes order-sensitively, recursing through
// nested double-floats and tuples down to the native limbs. Structurally
// identical tuples hash identically; numerically equal but structurally
// different ones need not.
func (t Tuple[E]) Hash() uint64 {
	return hashLimbs(limbHash(t[0]), limbHash(t[1]))
}
