package secretkey_test

import (
	"testing"

	"github.com/dmitrymomot/otpkit/pkg/secretkey"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		key, err := secretkey.Generate()
		require.NoError(t, err)
		assert.Len(t, key, 32) // 20 bytes encode to 32 Base32 characters
		assert.Regexp(t, secretkey.Pattern, key)
		assert.False(t, seen[key], "generated keys must not repeat")
		seen[key] = true

		raw, err := secretkey.Decode(key)
		require.NoError(t, err)
		assert.Len(t, raw, secretkey.Length)
	}
}

func TestIsBase32(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		key  string
		want bool
	}{
		{name: "canonical unpadded", key: "JBSWY3DPEHPK3PXP", want: true},
		{name: "trailing padding", key: "JBSWY3DP====", want: true},
		{name: "lowercase", key: "jbswy3dp", want: false},
		{name: "digits outside alphabet", key: "JBSW01", want: false},
		{name: "interior padding", key: "JB==SW", want: false},
		{name: "empty", key: "", want: false},
		{name: "padding only", key: "====", want: false},
		{name: "whitespace", key: "JBSW Y3DP", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, secretkey.IsBase32(tt.key))
		})
	}
}

func TestHasInvalidPadding(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		key  string
		want bool
	}{
		{name: "no padding", key: "JBSWY3DP", want: false},
		{name: "trailing padding", key: "JBSWY3DP==", want: false},
		{name: "interior padding", key: "JBSW=Y3DP", want: true},
		{name: "padding only", key: "=====", want: true},
		{name: "empty", key: "", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, secretkey.HasInvalidPadding(tt.key))
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		key  string
		want string
	}{
		{name: "already canonical", key: "JBSWY3DP", want: "JBSWY3DP"},
		{name: "lowercase with padding", key: "jbswy3dp==", want: "JBSWY3DP"},
		{name: "surrounding whitespace", key: "  JBSWY3DP  ", want: "JBSWY3DP"},
		{name: "empty", key: "", want: ""},
		{name: "padding only", key: "====", want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, secretkey.Normalize(tt.key))
		})
	}
}

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("decodes canonical key", func(t *testing.T) {
		t.Parallel()
		raw, err := secretkey.Decode("JBSWY3DP")
		require.NoError(t, err)
		assert.Equal(t, []byte("Hello"), raw)
	})

	t.Run("padded and unpadded spellings decode identically", func(t *testing.T) {
		t.Parallel()
		unpadded, err := secretkey.Decode("JBSWY3DP")
		require.NoError(t, err)
		padded, err := secretkey.Decode(" jbswy3dp== ")
		require.NoError(t, err)
		assert.Equal(t, unpadded, padded)
	})

	t.Run("empty key", func(t *testing.T) {
		t.Parallel()
		_, err := secretkey.Decode("   ")
		assert.ErrorIs(t, err, secretkey.ErrMissingKey)
	})

	t.Run("characters outside alphabet", func(t *testing.T) {
		t.Parallel()
		_, err := secretkey.Decode("JBSW!3DP")
		assert.ErrorIs(t, err, secretkey.ErrInvalidKey)
	})

	t.Run("undecodable length", func(t *testing.T) {
		t.Parallel()
		_, err := secretkey.Decode("A")
		assert.ErrorIs(t, err, secretkey.ErrInvalidKey)
	})
}
