package random

import (
	"crypto/rand"
	"math/big"
)

// Random produces session codes and can be mocked for deterministic tests
type Random interface {
	// Code generates a random string of the given length from the given alphabet
	Code(length int, alphabet string) string
}

// CryptoRandom implements Random using crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// Code generates a random string of the given length from the given alphabet
func (r *CryptoRandom) Code(length int, alphabet string) string {
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}
	out := make([]byte, length)
	for i := range out {
		out[i] = alphabet[intn(len(alphabet))]
	}
	return string(out)
}

// intn returns a cryptographically random int in [0, n)
func intn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand only fails if the OS entropy source is broken
		return 0
	}
	return int(v.Int64())
}
