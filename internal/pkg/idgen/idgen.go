// Package idgen hands out record IDs and login tokens
package idgen

import (
	"encoding/hex"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// UUIDGenerator produces IDs such as creature_1b4e28ba-2fa1-11d2-883f-0016d3cca427
type UUIDGenerator struct {
	prefix string
}

// NewUUID creates a UUID generator. An empty prefix yields bare UUIDs.
func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

func (g *UUIDGenerator) Generate() string {
	return withPrefix(g.prefix, uuid.NewString())
}

// TokenGenerator produces opaque bearer tokens: 64 hex characters drawn
// from two random UUIDs, with no structure a client could lean on.
type TokenGenerator struct{}

// NewToken creates a token generator
func NewToken() TokenGenerator {
	return TokenGenerator{}
}

func (TokenGenerator) Generate() string {
	a, b := uuid.New(), uuid.New()
	buf := make([]byte, 0, len(a)+len(b))
	buf = append(buf, a[:]...)
	buf = append(buf, b[:]...)
	return hex.EncodeToString(buf)
}

// SequentialGenerator produces prefix_1, prefix_2, ... for tests
type SequentialGenerator struct {
	prefix  string
	counter atomic.Uint64
}

// NewSequential creates a sequential generator
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

func (g *SequentialGenerator) Generate() string {
	return withPrefix(g.prefix, strconv.FormatUint(g.counter.Add(1), 10))
}

func withPrefix(prefix, id string) string {
	if prefix == "" {
		return id
	}
	return prefix + "_" + id
}
