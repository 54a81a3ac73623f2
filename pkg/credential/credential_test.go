package credential

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("sekret")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "sekret", hash, "plaintext must never be stored")

	assert.True(t, Verify(hash, "sekret"))
	assert.False(t, Verify(hash, "wrong"))
	assert.False(t, Verify(hash, ""))
}

func TestHashIsSalted(t *testing.T) {
	first, err := Hash("sekret")
	require.NoError(t, err)
	second, err := Hash("sekret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, Verify(first, "sekret"))
	assert.True(t, Verify(second, "sekret"))
}

func TestVerifyRejectsGarbageHash(t *testing.T) {
	assert.False(t, Verify("not-a-bcrypt-hash", "sekret"))
}
