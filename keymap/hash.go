package keymap

import "github.com/cespare/xxhash/v2"

// Constants of the splitmix64 finalizer.
const (
	mixMul1     = 0xbf58476d1ce4e5b9
	mixMul2     = 0x94d049bb133111eb
	goldenRatio = 0x9e3779b97f4a7c15
)

// mix64 applies the splitmix64 finalizer for full-avalanche mixing
func mix64(v uint64) uint64 {
	v ^= v >> 30
	v *= mixMul1
	v ^= v >> 27
	v *= mixMul2
	v ^= v >> 31

	return v
}

// HashUint64 hashes an integer key
func HashUint64(v uint64) uint64 {
	return mix64(v + goldenRatio)
}

// HashString hashes a string key
func HashString(s string) uint64 {
	return xxhash.Sum64String(s)
}

// CombineHash combines two hash values.  It is not commutative:
// CombineHash(a, b) and CombineHash(b, a) generally differ.
func CombineHash(a, b uint64) uint64 {
	return mix64(a ^ (b + goldenRatio + (a << 6) + (a >> 2)))
}
