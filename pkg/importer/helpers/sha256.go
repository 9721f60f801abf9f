package helpers

import (
	"crypto/sha256"
	"fmt"
	"strings"
)

// Sha256String calculates the SHA256 hash of a given string and returns its string representation.
func Sha256String(input string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(input)))
}

// RowHash hashes the fields of an imported row joined by commas.
func RowHash(fields ...string) string {
	return Sha256String(strings.Join(fields, ","))
}
