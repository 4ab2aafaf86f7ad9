package tokens_test

import (
	"strings"
	"testing"

	tokens "github.com/goliatone/go-tokens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSecret(t *testing.T) {
	tests := []struct {
		name    string
		secret  string
		wantErr bool
	}{
		{
			name:    "Empty secret",
			secret:  "",
			wantErr: true,
		},
		{
			name:    "Blank secret",
			secret:  strings.Repeat(" ", 40),
			wantErr: true,
		},
		{
			name:    "One byte short of the floor",
			secret:  strings.Repeat("x", 31),
			wantErr: true,
		},
		{
			name:    "Exactly at the floor",
			secret:  strings.Repeat("x", 32),
			wantErr: false,
		},
		{
			name:    "Comfortably long",
			secret:  strings.Repeat("correct-horse-", 5),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tokens.ValidateSecret(tt.secret)
			if tt.wantErr {
				assert.True(t, tokens.IsWeakSecretError(err), "expected weak secret error, got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGenerateSecret(t *testing.T) {
	t.Run("generates secrets of the requested length", func(t *testing.T) {
		secret, err := tokens.GenerateSecret(48)
		require.NoError(t, err)
		assert.Len(t, secret, 48)
		assert.NoError(t, tokens.ValidateSecret(secret))
	})

	t.Run("raises short lengths to the policy floor", func(t *testing.T) {
		secret, err := tokens.GenerateSecret(8)
		require.NoError(t, err)
		assert.Len(t, secret, tokens.MinSecretLength)
		assert.NoError(t, tokens.ValidateSecret(secret))
	})

	t.Run("stays alphanumeric", func(t *testing.T) {
		secret, err := tokens.GenerateSecret(64)
		require.NoError(t, err)
		for _, r := range secret {
			isAlnum := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
			assert.True(t, isAlnum, "unexpected character %q", r)
		}
	})

	t.Run("does not repeat", func(t *testing.T) {
		seen := map[string]bool{}
		for i := 0; i < 20; i++ {
			secret, err := tokens.GenerateSecret(32)
			require.NoError(t, err)
			assert.False(t, seen[secret], "generated the same secret twice")
			seen[secret] = true
		}
	})
}
