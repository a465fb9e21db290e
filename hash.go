package dd

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/x448/float16"
)

// Hasher is implemented by values carrying a structural 64-bit hash. All
// double-float types and the Scalar/Tuple adapters implement it.
type Hasher interface {
	Hash() uint64
}

// hashLimbs digests the (hi, lo) limb hashes in order. xxhash over the
// positional 16-byte layout keeps the combination non-commutative:
// swapped limbs hash differently.
func hashLimbs(hi, lo uint64) uint64 {
	var b [16]byte
	binary.LittleEndian.PutUint64(b[:8], hi)
	binary.LittleEndian.PutUint64(b[8:], lo)
	return xxhash.Sum64(b[:])
}

// limbHash hashes a single element of a Scalar or Tuple: native floats
// hash as their bit patterns, nested double-floats and tuples recurse
// through Hasher until they bottom out at native limbs.
func limbHash[E comparable](v E) uint64 {
	switch x := any(v).(type) {
	case float64:
		return math.Float64bits(x)
	case float32:
		return uint64(math.Float32bits(x))
	case float16.Float16:
		return uint64(x.Bits())
	case Hasher:
		return x.Hash()
	}
	panic("dd: unsupported element type for hashing")
}
