package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("Abcdef1")
	require.NoError(t, err)
	assert.NotEqual(t, "Abcdef1", hashed)

	assert.True(t, CheckPassword("Abcdef1", hashed))
	assert.False(t, CheckPassword("abcdef1", hashed))
	assert.False(t, CheckPassword("", hashed))
}

func TestValidPassword(t *testing.T) {
	cases := []struct {
		password string
		ok       bool
	}{
		{"Abcdef1", true},
		{"Qwerty1337)", true},
		{"aB3", false},               // too short
		{"abcdef1", false},           // no uppercase
		{"ABCDEF1", false},           // no lowercase
		{"Abcdefg", false},           // no digit
		{"Ab1" + repeat('x', 98), false}, // over 100 chars
		{"Ab1" + repeat('x', 97), true},  // exactly 100
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, ValidPassword(tc.password), "password %q", tc.password)
	}
}

func repeat(c byte, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = c
	}
	return string(b)
}
