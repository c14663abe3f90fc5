package service

import (
	"strings"
	"testing"
)

func TestGenerateSaleNumber_Format(t *testing.T) {
	for i := 0; i < 1000; i++ {
		number := generateSaleNumber()
		if len(number) != saleNumberLength {
			t.Fatalf("length = %d, want %d", len(number), saleNumberLength)
		}
		for _, r := range number {
			if !strings.ContainsRune(saleNumberAlphabet, r) {
				t.Fatalf("number %q contains %q outside [A-Z0-9]", number, r)
			}
		}
	}
}

// With 36^8 possible codes, 10k draws should be almost entirely distinct,
// but the scheme is not collision-proof; the retry loop in uniqueSaleNumber
// plus the store's unique index carry the actual uniqueness guarantee.
func TestGenerateSaleNumber_Distinctness(t *testing.T) {
	const draws = 10000
	seen := make(map[string]bool, draws)
	for i := 0; i < draws; i++ {
		seen[generateSaleNumber()] = true
	}
	if len(seen) < draws-5 {
		t.Errorf("only %d distinct of %d draws, generator looks biased", len(seen), draws)
	}
}

// A naive byte mod 36 reduction favors the first 256%36 = 4 symbols by a
// factor of 8/7. Rejection sampling removes that skew; compare the observed
// frequency of A-D against the remaining 32 symbols.
func TestGenerateSaleNumber_Uniformity(t *testing.T) {
	const draws = 50000
	counts := make(map[byte]int, len(saleNumberAlphabet))
	for i := 0; i < draws; i++ {
		for _, b := range []byte(generateSaleNumber()) {
			counts[b]++
		}
	}

	var first, rest float64
	for i := 0; i < len(saleNumberAlphabet); i++ {
		c := float64(counts[saleNumberAlphabet[i]])
		if i < 4 {
			first += c / 4
		} else {
			rest += c / 32
		}
	}

	ratio := first / rest
	if ratio > 1.05 || ratio < 0.95 {
		t.Errorf("A-D to rest frequency ratio = %.4f, want close to 1.0", ratio)
	}
}
