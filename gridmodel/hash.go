package gridmodel

// golden is the SplitMix64 increment (2^64 / φ).
const golden uint64 = 0x9e3779b97f4a7c15

// mix is the SplitMix64 finaliser: small input changes spread over all bits.
func mix(x uint64) uint64 {
	x += golden
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// Hash deterministically combines two coordinates, a seed and a salt
// (usually the variant index) into a well-distributed 64-bit value.
// Stability is only guaranteed within this implementation.
//
// Complexity: O(1).
func Hash(a, b int, seed uint64, salt int) uint64 {
	x := mix(seed ^ (uint64(uint32(a))<<32 | uint64(uint32(b))))
	return mix(x ^ (uint64(salt) + golden))
}

// Fold mixes v into an accumulated seed. Order matters: Fold(Fold(s,a),b)
// differs from Fold(Fold(s,b),a).
func Fold(seed, v uint64) uint64 {
	return mix(seed*31 ^ v)
}

// Unit maps h to a float64 in [0,1) using its top 53 bits.
func Unit(h uint64) float64 {
	return float64(h>>11) / (1 << 53)
}
