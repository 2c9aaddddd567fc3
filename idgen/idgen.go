// Package idgen provides the identity source for wire segments and symbols.
//
// Wire identity is deliberately unstable: every canonicalization pass
// reassigns fresh ids, so callers must never hold a segment id across a
// normalize/splice/commit boundary. The generator only has to be
// collision-free.
package idgen

import (
	"strconv"

	"github.com/google/uuid"
)

// Generator produces unique string identifiers.
type Generator func() string

// UUIDv7 returns a Generator producing RFC 9562 UUID v7 strings.
// Time-sortable, which keeps freshly emitted segments in emission order
// when sorted by id.
func UUIDv7() Generator {
	return func() string {
		return uuid.Must(uuid.NewV7()).String()
	}
}

// Prefixed wraps a Generator and prepends a fixed prefix to every id,
// useful for type-scoped identifiers (e.g. "wire_", "sym_").
func Prefixed(prefix string, gen Generator) Generator {
	return func() string {
		return prefix + gen()
	}
}

// Sequential returns a Generator producing "p0", "p1", ... for the given
// prefix. Only suitable for tests and single-process sheets; production
// callers use UUIDv7.
func Sequential(prefix string) Generator {
	n := 0
	return func() string {
		id := prefix + strconv.Itoa(n)
		n++
		return id
	}
}
