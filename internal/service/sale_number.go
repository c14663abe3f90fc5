package service

import "crypto/rand"

const (
	saleNumberLength   = 8
	saleNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// Largest multiple of len(saleNumberAlphabet) that fits in a byte.
	// Bytes at or above it are rejected so that reducing mod 36 stays
	// uniform across the alphabet.
	saleNumberByteLimit = 252
)

// generateSaleNumber returns an 8-character code drawn uniformly from
// [A-Z0-9]. The code is not guaranteed unique; callers must verify against
// the store.
func generateSaleNumber() string {
	out := make([]byte, 0, saleNumberLength)
	buf := make([]byte, saleNumberLength)
	for len(out) < saleNumberLength {
		if _, err := rand.Read(buf); err != nil {
			// crypto/rand does not fail on supported platforms
			panic(err)
		}
		for _, b := range buf {
			if b >= saleNumberByteLimit {
				continue
			}
			out = append(out, saleNumberAlphabet[int(b)%len(saleNumberAlphabet)])
			if len(out) == saleNumberLength {
				break
			}
		}
	}
	return string(out)
}
