package idgen_test

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/creature-forge/internal/pkg/idgen"
)

func TestUUIDGenerator(t *testing.T) {
	gen := idgen.NewUUID("creature")

	a, b := gen.Generate(), gen.Generate()
	assert.True(t, strings.HasPrefix(a, "creature_"))
	assert.NotEqual(t, a, b)
	assert.Len(t, idgen.NewUUID("").Generate(), 36)
}

func TestTokenGenerator(t *testing.T) {
	gen := idgen.NewToken()

	token := gen.Generate()
	require.Len(t, token, 64)
	_, err := hex.DecodeString(token)
	assert.NoError(t, err)
	assert.NotEqual(t, token, gen.Generate())
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("creature")

	assert.Equal(t, "creature_1", gen.Generate())
	assert.Equal(t, "creature_2", gen.Generate())
	assert.Equal(t, "1", idgen.NewSequential("").Generate())
}
