package tokens_test

import (
	"testing"

	tokens "github.com/goliatone/go-tokens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userPayload struct {
	Role     string `claim:"role"`
	Email    string
	Attempts int    `claim:"attempts"`
	Internal string `claim:"-"`
	hidden   string
}

func TestMarshalPayload(t *testing.T) {
	t.Run("maps fields through tags and lower-camel defaults", func(t *testing.T) {
		payload := userPayload{
			Role:     "admin",
			Email:    "x@example.com",
			Attempts: 3,
			Internal: "secret-note",
			hidden:   "never",
		}

		claims, err := tokens.MarshalPayload(payload)
		require.NoError(t, err)

		assert.Equal(t, map[string]any{
			"role":     "admin",
			"email":    "x@example.com",
			"attempts": 3,
		}, claims)
	})

	t.Run("excluded fields never enter the claim map", func(t *testing.T) {
		claims, err := tokens.MarshalPayload(userPayload{Internal: "keep me out"})
		require.NoError(t, err)

		_, ok := claims["Internal"]
		assert.False(t, ok)
		_, ok = claims["internal"]
		assert.False(t, ok)
	})

	t.Run("accepts struct pointers", func(t *testing.T) {
		claims, err := tokens.MarshalPayload(&userPayload{Role: "member"})
		require.NoError(t, err)
		assert.Equal(t, "member", claims["role"])
	})

	t.Run("rejects nil pointers", func(t *testing.T) {
		var payload *userPayload
		_, err := tokens.MarshalPayload(payload)
		assert.Error(t, err)
	})

	t.Run("rejects non struct payloads", func(t *testing.T) {
		_, err := tokens.MarshalPayload("just a string")
		assert.Error(t, err)

		_, err = tokens.MarshalPayload(42)
		assert.Error(t, err)
	})
}

func TestUnmarshalPayload(t *testing.T) {
	t.Run("fills matching fields", func(t *testing.T) {
		var payload userPayload
		err := tokens.UnmarshalPayload(map[string]any{
			"role":     "admin",
			"email":    "x@example.com",
			"attempts": float64(3),
		}, &payload)

		require.NoError(t, err)
		assert.Equal(t, "admin", payload.Role)
		assert.Equal(t, "x@example.com", payload.Email)
		assert.Equal(t, 3, payload.Attempts)
	})

	t.Run("skips reserved claims", func(t *testing.T) {
		type shadow struct {
			Iss string `claim:"iss"`
			Sub string `claim:"sub"`
		}

		var payload shadow
		err := tokens.UnmarshalPayload(map[string]any{
			"iss": "svc-a",
			"sub": "user-42",
		}, &payload)

		require.NoError(t, err)
		assert.Empty(t, payload.Iss)
		assert.Empty(t, payload.Sub)
	})

	t.Run("excluded fields stay at their zero value", func(t *testing.T) {
		var payload userPayload
		err := tokens.UnmarshalPayload(map[string]any{
			"Internal": "smuggled",
			"internal": "smuggled",
			"role":     "admin",
		}, &payload)

		require.NoError(t, err)
		assert.Empty(t, payload.Internal)
		assert.Equal(t, "admin", payload.Role)
	})

	t.Run("ignores claims without a matching field", func(t *testing.T) {
		var payload userPayload
		err := tokens.UnmarshalPayload(map[string]any{
			"role":    "admin",
			"unknown": "future-claim",
		}, &payload)

		require.NoError(t, err)
		assert.Equal(t, "admin", payload.Role)
	})

	t.Run("type mismatches degrade to partial fill", func(t *testing.T) {
		var payload userPayload
		err := tokens.UnmarshalPayload(map[string]any{
			"role":     "admin",
			"attempts": "not-a-number",
		}, &payload)

		require.NoError(t, err)
		assert.Equal(t, "admin", payload.Role)
		assert.Zero(t, payload.Attempts)
	})

	t.Run("nil claim values are left alone", func(t *testing.T) {
		var payload userPayload
		err := tokens.UnmarshalPayload(map[string]any{"role": nil}, &payload)

		require.NoError(t, err)
		assert.Empty(t, payload.Role)
	})

	t.Run("nil target fails the whole call", func(t *testing.T) {
		err := tokens.UnmarshalPayload(map[string]any{"role": "admin"}, nil)
		assert.ErrorIs(t, err, tokens.ErrExtraction)

		var payload *userPayload
		err = tokens.UnmarshalPayload(map[string]any{"role": "admin"}, payload)
		assert.ErrorIs(t, err, tokens.ErrExtraction)
	})

	t.Run("non pointer target fails the whole call", func(t *testing.T) {
		var payload userPayload
		err := tokens.UnmarshalPayload(map[string]any{"role": "admin"}, payload)
		assert.ErrorIs(t, err, tokens.ErrExtraction)
	})

	t.Run("pointer to non struct fails the whole call", func(t *testing.T) {
		value := "not a struct"
		err := tokens.UnmarshalPayload(map[string]any{"role": "admin"}, &value)
		assert.ErrorIs(t, err, tokens.ErrExtraction)
	})
}

func TestUnmarshalPayloadNumericCoercion(t *testing.T) {
	type counters struct {
		Small   int8    `claim:"small"`
		Big     int64   `claim:"big"`
		Count   uint32  `claim:"count"`
		Ratio   float32 `claim:"ratio"`
		Precise float64 `claim:"precise"`
	}

	var payload counters
	err := tokens.UnmarshalPayload(map[string]any{
		"small":   float64(7),
		"big":     float64(1 << 40),
		"count":   float64(12),
		"ratio":   float64(0.5),
		"precise": float64(0.25),
	}, &payload)

	require.NoError(t, err)
	assert.Equal(t, int8(7), payload.Small)
	assert.Equal(t, int64(1<<40), payload.Big)
	assert.Equal(t, uint32(12), payload.Count)
	assert.Equal(t, float32(0.5), payload.Ratio)
	assert.Equal(t, 0.25, payload.Precise)
}

func TestUnmarshalPayloadNumericOverflow(t *testing.T) {
	type narrow struct {
		Small int8    `claim:"small"`
		Count uint8   `claim:"count"`
		Ratio float32 `claim:"ratio"`
	}

	tests := []struct {
		name   string
		claims map[string]any
	}{
		{
			name:   "Values past the signed field range",
			claims: map[string]any{"small": float64(300)},
		},
		{
			name:   "Values past the unsigned field range",
			claims: map[string]any{"count": float64(300)},
		},
		{
			name:   "Negative values for unsigned fields",
			claims: map[string]any{"count": float64(-1)},
		},
		{
			name:   "Fractional values for integer fields",
			claims: map[string]any{"small": float64(1.5)},
		},
		{
			name:   "Values past the float32 range",
			claims: map[string]any{"ratio": float64(1e40)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload narrow
			err := tokens.UnmarshalPayload(tt.claims, &payload)

			// fields that cannot take the value are skipped, never wrapped
			require.NoError(t, err)
			assert.Zero(t, payload.Small)
			assert.Zero(t, payload.Count)
			assert.Zero(t, payload.Ratio)
		})
	}
}
