package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenService_RequiresSecret(t *testing.T) {
	_, err := NewTokenService("")
	assert.Error(t, err)
}

func TestTokenRoundTrip(t *testing.T) {
	tokens, err := NewTokenService("test-secret-for-unit-tests")
	require.NoError(t, err)

	signed, err := tokens.Generate(42)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	userID, err := tokens.Validate(signed)
	require.NoError(t, err)
	assert.Equal(t, 42, userID)
}

func TestValidate_RejectsWrongSecret(t *testing.T) {
	issuer, err := NewTokenService("secret-one")
	require.NoError(t, err)
	verifier, err := NewTokenService("secret-two")
	require.NoError(t, err)

	signed, err := issuer.Generate(1)
	require.NoError(t, err)

	_, err = verifier.Validate(signed)
	assert.Error(t, err)
}

func TestValidate_RejectsGarbage(t *testing.T) {
	tokens, err := NewTokenService("test-secret-for-unit-tests")
	require.NoError(t, err)

	for _, bad := range []string{"", "not-a-token", "a.b.c"} {
		_, err := tokens.Validate(bad)
		assert.Error(t, err, "token %q should be rejected", bad)
	}
}
