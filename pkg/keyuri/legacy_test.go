package keyuri_test

import (
	"testing"

	"github.com/dmitrymomot/otpkit/pkg/keyuri"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate(t *testing.T) {
	t.Parallel()

	t.Run("steam flag maps to steam issuer and five digits", func(t *testing.T) {
		t.Parallel()
		key, err := keyuri.Migrate([]string{"30", "S", "https://time.example"}, "JBSWY3DPEHPK3PXP")
		require.NoError(t, err)

		assert.Equal(t, "JBSWY3DPEHPK3PXP", key.Secret())
		assert.Equal(t, "Steam", key.Issuer())
		assert.Equal(t, 5, key.Digits())
		assert.Equal(t, 30, key.Period())
		assert.Equal(t, "SomeLabel", key.Label())
		assert.Equal(t, "https://time.example", key.TimeCorrectionURL())
	})

	t.Run("plain record keeps digits verbatim", func(t *testing.T) {
		t.Parallel()
		key, err := keyuri.Migrate([]string{"60", "8", "not a url"}, "JBSWY3DP")
		require.NoError(t, err)

		assert.Equal(t, "SomeIssuer", key.Issuer())
		assert.Equal(t, 8, key.Digits())
		assert.Equal(t, 60, key.Period())
		assert.Equal(t, "SomeLabel", key.Label())
		assert.Empty(t, key.TimeCorrectionURL(), "unusable URL must be dropped")
	})

	t.Run("http time correction url is kept", func(t *testing.T) {
		t.Parallel()
		key, err := keyuri.Migrate([]string{"45", "7", "http://sync.example/time"}, "JBSWY3DP")
		require.NoError(t, err)
		assert.Equal(t, "http://sync.example/time", key.TimeCorrectionURL())
	})

	t.Run("empty time correction url is dropped", func(t *testing.T) {
		t.Parallel()
		key, err := keyuri.Migrate([]string{"30", "6", ""}, "JBSWY3DP")
		require.NoError(t, err)
		assert.Empty(t, key.TimeCorrectionURL())
	})

	t.Run("lowercase steam flag is not special", func(t *testing.T) {
		t.Parallel()
		_, err := keyuri.Migrate([]string{"30", "s", ""}, "JBSWY3DP")
		assert.ErrorIs(t, err, keyuri.ErrInvalidDigits)
	})

	t.Run("extra entries are ignored", func(t *testing.T) {
		t.Parallel()
		key, err := keyuri.Migrate([]string{"30", "6", "", "legacy-extra"}, "JBSWY3DP")
		require.NoError(t, err)
		assert.Equal(t, 6, key.Digits())
	})

	t.Run("padded secret is stored stripped", func(t *testing.T) {
		t.Parallel()
		key, err := keyuri.Migrate([]string{"30", "6", ""}, "JBSWY3DP==")
		require.NoError(t, err)
		assert.Equal(t, "JBSWY3DP", key.Secret())
	})

	t.Run("nil settings", func(t *testing.T) {
		t.Parallel()
		_, err := keyuri.Migrate(nil, "JBSWY3DP")
		assert.ErrorIs(t, err, keyuri.ErrNilArgument)
	})

	t.Run("too few settings", func(t *testing.T) {
		t.Parallel()
		_, err := keyuri.Migrate([]string{"60", "8"}, "JBSWY3DP")
		assert.ErrorIs(t, err, keyuri.ErrInvalidLegacySettings)

		_, err = keyuri.Migrate([]string{}, "JBSWY3DP")
		assert.ErrorIs(t, err, keyuri.ErrInvalidLegacySettings)
	})

	t.Run("non-numeric period", func(t *testing.T) {
		t.Parallel()
		_, err := keyuri.Migrate([]string{"1m", "6", ""}, "JBSWY3DP")
		assert.ErrorIs(t, err, keyuri.ErrInvalidPeriod)
	})

	t.Run("non-numeric digits", func(t *testing.T) {
		t.Parallel()
		_, err := keyuri.Migrate([]string{"30", "six", ""}, "JBSWY3DP")
		assert.ErrorIs(t, err, keyuri.ErrInvalidDigits)
	})

	t.Run("missing secret", func(t *testing.T) {
		t.Parallel()
		_, err := keyuri.Migrate([]string{"30", "6", ""}, "")
		assert.ErrorIs(t, err, keyuri.ErrMissingSecret)
	})

	t.Run("invalid secret encoding", func(t *testing.T) {
		t.Parallel()
		_, err := keyuri.Migrate([]string{"30", "6", ""}, "abc!")
		assert.ErrorIs(t, err, keyuri.ErrInvalidSecretEncoding)
	})
}
