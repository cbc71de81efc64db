package id

import (
	"crypto/rand"
	"encoding/hex"
)

// New returns an opaque 32-character lowercase hex identifier. Borrowers,
// loans and payments all use this shape; ids carry no meaning beyond
// uniqueness.
func New() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
