package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	for _, password := range []string{"hunter22", "correct horse battery staple", "päss wörd"} {
		stored, err := HashPassword(password)
		require.NoError(t, err)

		assert.True(t, CheckPassword(password, stored))
		assert.False(t, CheckPassword(password+"x", stored))
		assert.False(t, CheckPassword("", stored))
	}
}

func TestHashPasswordFormat(t *testing.T) {
	stored, err := HashPassword("secret-password")
	require.NoError(t, err)

	hashed, salt, ok := strings.Cut(stored, ".")
	require.True(t, ok)
	assert.Len(t, hashed, scryptKeyLen*2) // hex
	assert.Len(t, salt, saltLen*2)
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	a, err := HashPassword("same-password")
	require.NoError(t, err)
	b, err := HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, CheckPassword("same-password", a))
	assert.True(t, CheckPassword("same-password", b))
}

func TestCheckPasswordMalformedStored(t *testing.T) {
	cases := []string{
		"",
		"no-separator",
		".",
		"abc.",
		".abc",
		"nothex.deadbeef",
		"deadbeef.salt", // wrong key length
		"plaintextpassword",
	}
	for _, stored := range cases {
		assert.False(t, CheckPassword("anything", stored), "stored=%q", stored)
	}
}

func TestIsHashedPassword(t *testing.T) {
	stored, err := HashPassword("secret-password")
	require.NoError(t, err)
	assert.True(t, IsHashedPassword(stored))

	cases := []string{
		"",
		"plaintextpassword",
		"plain.text",                        // dot alone is not the credential shape
		"version 2.0!",                      // dotted plaintext with hex-decodable fragments
		strings.Repeat("a", scryptKeyLen*2), // hash, no salt
		strings.Repeat("a", scryptKeyLen*2) + ".beef",                              // salt too short
		strings.Repeat("z", scryptKeyLen*2) + "." + strings.Repeat("a", saltLen*2), // not hex
	}
	for _, s := range cases {
		assert.False(t, IsHashedPassword(s), "stored=%q", s)
	}
}

func TestCheckPasswordNoPlaintextFallback(t *testing.T) {
	// A credential stored as plaintext must never verify, even against an
	// identical supplied password.
	assert.False(t, CheckPassword("mypassword", "mypassword"))
	// Nor does username-as-password style input ever succeed by equality.
	assert.False(t, CheckPassword("alice", "alice"))
}
