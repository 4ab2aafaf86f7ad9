package tokens_test

import (
	"testing"

	tokens "github.com/goliatone/go-tokens"
	"github.com/stretchr/testify/assert"
)

func TestAlgorithmIsValid(t *testing.T) {
	tests := []struct {
		algorithm tokens.Algorithm
		expected  bool
	}{
		{tokens.HS256, true},
		{tokens.HS384, true},
		{tokens.HS512, true},
		{tokens.EdDSA, true},
		{tokens.Algorithm("RS256"), false},
		{tokens.Algorithm("none"), false},
		{tokens.Algorithm(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.algorithm), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.algorithm.IsValid())
		})
	}
}

func TestAlgorithmIsHMAC(t *testing.T) {
	assert.True(t, tokens.HS256.IsHMAC())
	assert.True(t, tokens.HS384.IsHMAC())
	assert.True(t, tokens.HS512.IsHMAC())
	assert.False(t, tokens.EdDSA.IsHMAC())
	assert.False(t, tokens.Algorithm("RS256").IsHMAC())
}
