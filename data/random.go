package data

import (
	"crypto/rand"
	"math/big"
)

// Alphanumeric is the default alphabet for RandomString.
const Alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomString returns n characters drawn uniformly from Alphanumeric.
func RandomString(n int) string {
	return RandomStringFrom(Alphanumeric, n)
}

// RandomStringFrom returns n characters chosen uniformly from alphabet. It panics if alphabet is
// empty, or if the system random source fails.
func RandomStringFrom(alphabet string, n int) string {
	if n <= 0 {
		return ""
	}
	if alphabet == "" {
		panic("RandomStringFrom: empty alphabet")
	}
	symbols := []rune(alphabet)
	limit := big.NewInt(int64(len(symbols)))
	out := make([]rune, n)
	for i := range out {
		index, err := rand.Int(rand.Reader, limit)
		if err != nil {
			panic(err)
		}
		out[i] = symbols[index.Int64()]
	}
	return string(out)
}
