// Package namegen generates short random tokens used to build
// collision-resistant names for temporary filesystem objects.
package namegen

import (
	"math/rand"
)

const (
	alphabet = "abcdefghijklmnopqrstuvwxyz0123456789_"

	// TokenLength is the number of characters in each generated token.
	TokenLength = 8
)

// Token returns a random token over lowercase letters, digits and underscore.
// Tokens are for uniqueness among concurrently created temp names, not for
// secrecy.
func Token() string {
	b := make([]byte, TokenLength)

	for i := range b {
		b[i] = alphabet[rand.Intn(len(alphabet))] //nolint:gosec
	}

	return string(b)
}
