package random

import (
	"crypto/rand"
	"math/big"
	mathrand "math/rand"
)

// Random provides random number generation that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// WeightedIndex picks an index into weights with probability
	// proportional to each weight
	WeightedIndex(weights []int) int
}

// CryptoRandom implements Random using crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// Intn returns a cryptographically random int in [0, n)
func (r *CryptoRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	max := big.NewInt(int64(n))
	result, err := rand.Int(rand.Reader, max)
	if err != nil {
		// Fall back to 0 on error (should never happen with crypto/rand)
		return 0
	}
	return int(result.Int64())
}

// WeightedIndex picks an index into weights with probability proportional
// to each weight. Returns 0 for empty or all-zero weights.
func (r *CryptoRandom) WeightedIndex(weights []int) int {
	return weightedIndex(r, weights)
}

// SeededRandom implements Random using a deterministic math/rand source.
// Used for reproducible fixture generation.
type SeededRandom struct {
	rng *mathrand.Rand
}

// NewSeeded creates a SeededRandom from the given seed
func NewSeeded(seed int64) *SeededRandom {
	return &SeededRandom{rng: mathrand.New(mathrand.NewSource(seed))}
}

// Intn returns a deterministic pseudo-random int in [0, n)
func (r *SeededRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.Intn(n)
}

// WeightedIndex picks an index into weights with probability proportional
// to each weight
func (r *SeededRandom) WeightedIndex(weights []int) int {
	return weightedIndex(r, weights)
}

func weightedIndex(r Random, weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0
	}

	remaining := r.Intn(total)
	for i, w := range weights {
		remaining -= w
		if remaining < 0 {
			return i
		}
	}
	return len(weights) - 1
}
