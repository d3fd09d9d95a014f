// Package shortid generates the short public identifiers used in share links.
package shortid

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Length of a generated identifier. 10 characters over a 64-symbol alphabet
// gives ~60 bits of entropy; collisions are astronomically rare, and the
// database's unique index on short_id is the authoritative safety net.
const Length = 10

// Alphabet is the URL-safe symbol set identifiers are drawn from.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-"

// New returns a fresh short identifier. It performs no uniqueness check;
// callers handle duplicate-key rejection from the store.
func New() (string, error) {
	return gonanoid.Generate(Alphabet, Length)
}
