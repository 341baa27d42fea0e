package randutil

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	rand "math/rand/v2"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// The helper centralises how we derive the two 64-bit seeds required by rand/v2
// so that all call sites get reproducible sequences.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewSeed returns a high-entropy seed from crypto/rand for runs where the
// caller did not ask for a reproducible sequence.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Sample returns k distinct integers from [begin, end) in random order.
// It panics if k is negative or larger than the range, mirroring rand.Perm.
func Sample(rng *rand.Rand, begin, end, k int) []int {
	n := end - begin
	if k < 0 || k > n {
		panic(fmt.Sprintf("randutil: sample size %d out of range [0, %d]", k, n))
	}

	// Partial Fisher-Yates over the index space, only the first k slots are settled.
	idx := make([]int, n)
	for i := range idx {
		idx[i] = begin + i
	}
	for i := 0; i < k; i++ {
		j := i + rng.IntN(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:k:k]
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
