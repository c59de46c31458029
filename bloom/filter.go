// Package bloom implements the BIP37 probabilistic membership filter used
// by an SPV client to declare interest in transactions without revealing
// exactly which addresses it owns. See the btcsuite bloom package this is
// grounded on for the original shape of the hash/add/matches split; this
// version adds sizing clamps, a typed decode-error taxonomy, and the
// IsRelevant/Update split spec'd to replace the upstream
// is_relevant_and_update bug.
package bloom

import (
	"math"
)

const (
	// MaxFilterSize is the maximum number of bytes a filter's data may
	// occupy, fixed by BIP37.
	MaxFilterSize = 36000

	// MaxHashFuncs is the maximum number of hash functions a filter may
	// use, fixed by BIP37.
	MaxHashFuncs = 50

	// bip37SeedMultiplier is the constant BIP37 multiplies each hash
	// function's index by before mixing in the tweak. Chosen upstream to
	// guarantee a reasonable bit difference between hashNum values.
	bip37SeedMultiplier = 0xfba4c795

	ln2Squared = math.Ln2 * math.Ln2
)

// UpdateFlag controls whether and how a matching transaction's outputs are
// automatically added back into the filter.
type UpdateFlag uint8

const (
	// UpdateNone disables auto-update entirely: the filter never changes
	// as a result of scanning a transaction.
	UpdateNone UpdateFlag = 0

	// UpdateAll adds the outpoint of any matching output, regardless of
	// its script shape.
	UpdateAll UpdateFlag = 1

	// UpdateP2PubkeyOnly adds the outpoint of a matching output only when
	// its script is pay-to-pubkey or bare multisig.
	UpdateP2PubkeyOnly UpdateFlag = 2
)

// String implements fmt.Stringer.
func (f UpdateFlag) String() string {
	switch f {
	case UpdateNone:
		return "NONE"
	case UpdateAll:
		return "ALL"
	case UpdateP2PubkeyOnly:
		return "P2PUBKEY_ONLY"
	default:
		return "UNKNOWN"
	}
}

// validUpdateFlag reports whether f is one of the three known variants.
func validUpdateFlag(f UpdateFlag) bool {
	switch f {
	case UpdateNone, UpdateAll, UpdateP2PubkeyOnly:
		return true
	default:
		return false
	}
}

// Filter is a sized bit-array bloom filter parameterised per BIP37. The zero
// value is not valid; construct one with NewFilter, NewFilterFromData or
// Deserialize.
//
// Filter is not safe for concurrent use by multiple goroutines without
// external synchronisation; see LoadedFilter for a concurrency-safe holder.
type Filter struct {
	data      []byte
	hashFuncs uint32
	tweak     uint32
	flags     UpdateFlag
}

// clampU32 bounds v to the inclusive range [lo, hi].
func clampU32(v, lo, hi uint32) uint32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NewFilter creates a new bloom filter sized for elements items at the
// target false-positive rate fp, per the BIP37 sizing formulas:
//
//	size_bytes = clamp(-n*ln(p) / (ln(2)^2 * 8), 1, 36000)
//	hash_funcs = clamp(size_bytes*8*ln(2) / n, 1, 50)
//
// The clamps are mandatory: BIP37 forbids exceeding 36000 bytes or 50 hash
// functions regardless of elements and fp.
func NewFilter(elements uint32, tweak uint32, fp float64, flags UpdateFlag) (*Filter, error) {
	if !validUpdateFlag(flags) {
		return nil, ErrUnknownFlags
	}

	// Guard against nonsensical false-positive rates the same way the
	// teacher does: clamp rather than reject, since this is a sizing hint
	// and not wire data.
	switch {
	case fp > 1.0:
		fp = 1.0
	case fp < 1e-9:
		fp = 1e-9
	}
	if elements == 0 {
		elements = 1
	}

	sizeBytes := uint32(-1 * float64(elements) * math.Log(fp) / ln2Squared / 8)
	sizeBytes = clampU32(sizeBytes, 1, MaxFilterSize)

	hashFuncs := uint32(float64(sizeBytes*8) / float64(elements) * math.Ln2)
	hashFuncs = clampU32(hashFuncs, 1, MaxHashFuncs)

	return &Filter{
		data:      make([]byte, sizeBytes),
		hashFuncs: hashFuncs,
		tweak:     tweak,
		flags:     flags,
	}, nil
}

// NewFilterFromData constructs a filter directly from an existing bit-array,
// hash function count, tweak, and flags, validating BIP37's invariants.
// Primarily useful for tests and for building a filter whose bits were
// computed some other way.
func NewFilterFromData(data []byte, hashFuncs, tweak uint32, flags UpdateFlag) (*Filter, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFilter
	}
	if len(data) > MaxFilterSize {
		return nil, ErrFilterTooLarge
	}
	if hashFuncs == 0 {
		return nil, ErrNoHashFuncs
	}
	if hashFuncs > MaxHashFuncs {
		return nil, ErrTooManyHashFuncs
	}
	if !validUpdateFlag(flags) {
		return nil, ErrUnknownFlags
	}

	cp := make([]byte, len(data))
	copy(cp, data)

	return &Filter{
		data:      cp,
		hashFuncs: hashFuncs,
		tweak:     tweak,
		flags:     flags,
	}, nil
}

// Clone returns a deep copy of f, so that mutating the clone's bits (via
// Insert) never aliases f's backing array.
func (f *Filter) Clone() *Filter {
	cp := make([]byte, len(f.data))
	copy(cp, f.data)
	return &Filter{
		data:      cp,
		hashFuncs: f.hashFuncs,
		tweak:     f.tweak,
		flags:     f.flags,
	}
}

// HashFuncs returns the number of hash functions the filter uses.
func (f *Filter) HashFuncs() uint32 { return f.hashFuncs }

// Tweak returns the filter's tweak value.
func (f *Filter) Tweak() uint32 { return f.tweak }

// Flags returns the filter's update policy.
func (f *Filter) Flags() UpdateFlag { return f.flags }

// Size returns the length, in bytes, of the filter's underlying bit-array.
func (f *Filter) Size() int { return len(f.data) }

// hash returns the bit offset within the filter corresponding to data for
// the k-th independent hash function.
//
//	seed  := (k * 0xfba4c795 + tweak) mod 2^32
//	h     := MurmurHash3_x86_32(data, seed)
//	index := h mod (filter_size * 8)
func (f *Filter) hash(k uint32, data []byte) uint32 {
	seed := k*bip37SeedMultiplier + f.tweak
	h := MurmurHash3(seed, data)
	return h % (uint32(len(f.data)) * 8)
}

// Insert adds data to the filter: for each of the filter's hash functions,
// the corresponding bit is set. After Insert(x), Contains(x) is always true.
func (f *Filter) Insert(data []byte) {
	for k := uint32(0); k < f.hashFuncs; k++ {
		idx := f.hash(k, data)
		f.data[idx>>3] |= 1 << (idx & 7)
	}
}

// Contains returns true if the filter might contain data, and false if it
// definitely does not. A true result may be a false positive; a false
// result is never a false negative.
func (f *Filter) Contains(data []byte) bool {
	for k := uint32(0); k < f.hashFuncs; k++ {
		idx := f.hash(k, data)
		if f.data[idx>>3]&(1<<(idx&7)) == 0 {
			return false
		}
	}
	return true
}
