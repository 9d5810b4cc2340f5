// Package codegen generates opaque identifiers and short human-readable codes.
//
// Identifiers are random UUIDs; codes are drawn from a secure random source.
// Every call is independent; there is no sequence state and collisions are
// treated as negligibly likely, so no uniqueness check is performed.
package codegen

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Generator produces identifiers and random codes.
type Generator struct{}

// New creates a Generator.
func New() *Generator {
	return &Generator{}
}

// NewID returns a fresh random identifier in canonical 36-character
// hyphenated form (8-4-4-4-12).
func (g *Generator) NewID() string {
	return uuid.NewString()
}

// AlphanumericCode returns a string of exactly n characters drawn uniformly
// from A-Z0-9.
func (g *Generator) AlphanumericCode(n int) (string, error) {
	return randomString(n, alphanumeric)
}

// NumericCode returns a string of exactly n decimal digits.
// Leading zeros are permitted.
func (g *Generator) NumericCode(n int) (string, error) {
	return randomString(n, "0123456789")
}

func randomString(n int, alphabet string) (string, error) {
	max := big.NewInt(int64(len(alphabet)))
	buf := make([]byte, n)
	for i := range buf {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to read random source: %w", err)
		}
		buf[i] = alphabet[idx.Int64()]
	}
	return string(buf), nil
}
