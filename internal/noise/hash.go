package noise

// hash32 mixes a 32-bit input into a well-distributed 32-bit output
// (murmur3 finalizer constants).
func hash32(x uint32) uint32 {
	x ^= x >> 16
	x *= 0x7feb352d
	x ^= x >> 15
	x *= 0x846ca68b
	x ^= x >> 16
	return x
}

// hash2 returns a stable hash for a lattice point and seed.
func hash2(seed uint32, x, y int32) uint32 {
	h := seed
	h ^= uint32(x) * 0x9e3779b1
	h = hash32(h)
	h ^= uint32(y) * 0x85ebca6b
	return hash32(h)
}
