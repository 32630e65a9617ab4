package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPassword(t *testing.T) {
	password, err := Password(16)
	require.NoError(t, err)
	require.Len(t, password, 16)
	for _, r := range password {
		require.True(t, strings.ContainsRune(passwordAlphabet, r), string(r))
	}

	other, err := Password(16)
	require.NoError(t, err)
	require.NotEqual(t, password, other)
}

func TestToken(t *testing.T) {
	token, err := Token(32)
	require.NoError(t, err)
	require.Len(t, token, 64)

	other, err := Token(32)
	require.NoError(t, err)
	require.NotEqual(t, token, other)
}
