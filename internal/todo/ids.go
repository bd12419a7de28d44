package todo

import (
	"encoding/base32"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// IDGenerator hands out identifiers for new items.
// Implementations must never return the same identifier twice.
type IDGenerator interface {
	NewID() (string, error)
}

const maxIDAttempts = 16

var idEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// RandomIDs returns prefix-<suffix> identifiers where suffix is 8 chars of
// lowercase base32 taken from a random UUID (~40 bits). Every issued id is
// remembered so a removed item's id is never handed out again.
type RandomIDs struct {
	prefix string
	issued map[string]struct{}
	source func() (uuid.UUID, error)
}

func NewRandomIDs(prefix string) *RandomIDs {
	if strings.TrimSpace(prefix) == "" {
		prefix = "item"
	}
	return &RandomIDs{
		prefix: prefix,
		issued: map[string]struct{}{},
		source: uuid.NewRandom,
	}
}

func (g *RandomIDs) NewID() (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		u, err := g.source()
		if err != nil {
			return "", fmt.Errorf("generate id: %w", err)
		}
		// The first 5 bytes carry no UUID version/variant bits.
		suffix := strings.ToLower(idEncoding.EncodeToString(u[:5]))
		id := g.prefix + "-" + suffix
		if _, dup := g.issued[id]; dup {
			continue
		}
		g.issued[id] = struct{}{}
		return id, nil
	}
	return "", ErrIDExhausted
}

// SequentialIDs returns prefix1, prefix2, ... Useful for deterministic tests and fixtures.
type SequentialIDs struct {
	Prefix string
	n      int
}

func (g *SequentialIDs) NewID() (string, error) {
	g.n++
	return fmt.Sprintf("%s%d", g.Prefix, g.n), nil
}
