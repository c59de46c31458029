package bloom

// MurmurHash3 computes the 32-bit MurmurHash3 (x86, 32-bit variant) of data
// using seed, per Austin Appleby's public domain reference implementation.
// BIP37 uses this exact variant to derive bit indices for the filter; no
// character-encoding transform is applied, the hash runs over the raw bytes
// supplied by the caller.
//
// Earlier scripting-language ports of this routine round-tripped the result
// through a hex string to coerce it to an unsigned type; that step is an
// artifact of the source language's numerics and is not reproduced here —
// Go's uint32 is unsigned already, so the modulo in filter.hash operates on
// it directly.
func MurmurHash3(seed uint32, data []byte) uint32 {
	const (
		c1 = 0xcc9e2d51
		c2 = 0x1b873593
	)

	h := seed
	length := len(data)
	nBlocks := length / 4

	for i := 0; i < nBlocks; i++ {
		k := uint32(data[i*4]) | uint32(data[i*4+1])<<8 |
			uint32(data[i*4+2])<<16 | uint32(data[i*4+3])<<24

		k *= c1
		k = (k << 15) | (k >> 17)
		k *= c2

		h ^= k
		h = (h << 13) | (h >> 19)
		h = h*5 + 0xe6546b64
	}

	var k uint32
	tail := data[nBlocks*4:]
	switch len(tail) {
	case 3:
		k ^= uint32(tail[2]) << 16
		fallthrough
	case 2:
		k ^= uint32(tail[1]) << 8
		fallthrough
	case 1:
		k ^= uint32(tail[0])
		k *= c1
		k = (k << 15) | (k >> 17)
		k *= c2
		h ^= k
	}

	h ^= uint32(length)
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16

	return h
}
