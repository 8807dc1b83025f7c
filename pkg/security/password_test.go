package security

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndCheck(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-pass", hash)

	require.True(t, CheckPassword(hash, "s3cret-pass"))
	require.False(t, CheckPassword(hash, "wrong"))
}

func TestIsHash(t *testing.T) {
	hash, err := HashPassword("anything")
	require.NoError(t, err)
	require.True(t, IsHash(hash))

	require.False(t, IsHash("plaintext"))
	require.False(t, IsHash(""))
	// Right prefix, wrong payload length.
	require.False(t, IsHash("$2a$10$tooshort"))
}
