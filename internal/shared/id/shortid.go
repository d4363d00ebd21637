// Package id generates random short identifiers for ticket names.
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	// Base36 alphabet: 0-9, a-z. Lowercase only, so a generated suffix can
	// be embedded in a Discord channel name without normalization changing it.
	alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

	// SuffixLength is the length of a ticket ID suffix
	SuffixLength = 8
)

// Generate creates a random short ID with the specified length.
// The generated ID is cryptographically random and channel-name safe.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = SuffixLength
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}

// MustGenerate creates a random short ID and panics on error.
// Use this only when you're certain the generation won't fail.
func MustGenerate(length int) string {
	id, err := Generate(length)
	if err != nil {
		panic(err)
	}
	return id
}

// NewTicketSuffix generates the random suffix appended to a requester's
// username to form a ticket ID.
func NewTicketSuffix() (string, error) {
	return Generate(SuffixLength)
}
