package totp_test

import (
	"encoding/base32"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrymomot/otpkit/pkg/keyuri"
	"github.com/dmitrymomot/otpkit/pkg/totp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ASCII seeds behind the RFC 6238 Appendix B reference vectors, one per
// hash algorithm.
const (
	sha1Seed   = "12345678901234567890"
	sha256Seed = "12345678901234567890123456789012"
	sha512Seed = "1234567890123456789012345678901234567890123456789012345678901234"
)

func vectorKey(t *testing.T, algorithm keyuri.Algorithm, seed string, digits int) keyuri.Key {
	t.Helper()
	secret := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString([]byte(seed))
	key, err := keyuri.New("Acme", "alice", secret,
		keyuri.WithAlgorithm(algorithm),
		keyuri.WithDigits(digits),
	)
	require.NoError(t, err)
	return key
}

func TestGenerateCodeAt_ReferenceVectors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		algorithm keyuri.Algorithm
		seed      string
		unix      int64
		want      string
	}{
		{keyuri.AlgorithmSHA1, sha1Seed, 59, "94287082"},
		{keyuri.AlgorithmSHA256, sha256Seed, 59, "46119246"},
		{keyuri.AlgorithmSHA512, sha512Seed, 59, "90693936"},
		{keyuri.AlgorithmSHA1, sha1Seed, 1111111109, "07081804"},
		{keyuri.AlgorithmSHA256, sha256Seed, 1111111109, "68084774"},
		{keyuri.AlgorithmSHA512, sha512Seed, 1111111109, "25091201"},
		{keyuri.AlgorithmSHA1, sha1Seed, 1111111111, "14050471"},
		{keyuri.AlgorithmSHA256, sha256Seed, 1111111111, "67062674"},
		{keyuri.AlgorithmSHA512, sha512Seed, 1111111111, "99943326"},
		{keyuri.AlgorithmSHA1, sha1Seed, 1234567890, "89005924"},
		{keyuri.AlgorithmSHA256, sha256Seed, 1234567890, "91819424"},
		{keyuri.AlgorithmSHA512, sha512Seed, 1234567890, "93441116"},
		{keyuri.AlgorithmSHA1, sha1Seed, 2000000000, "69279037"},
		{keyuri.AlgorithmSHA256, sha256Seed, 2000000000, "90698825"},
		{keyuri.AlgorithmSHA512, sha512Seed, 2000000000, "38618901"},
		{keyuri.AlgorithmSHA1, sha1Seed, 20000000000, "65353130"},
		{keyuri.AlgorithmSHA256, sha256Seed, 20000000000, "77737706"},
		{keyuri.AlgorithmSHA512, sha512Seed, 20000000000, "47863826"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("%s at %d", tt.algorithm, tt.unix), func(t *testing.T) {
			t.Parallel()
			key := vectorKey(t, tt.algorithm, tt.seed, 8)
			code, err := totp.GenerateCodeAt(key, time.Unix(tt.unix, 0))
			require.NoError(t, err)
			assert.Equal(t, tt.want, code)
		})
	}
}

func TestGenerateHOTP(t *testing.T) {
	t.Parallel()
	// RFC 4226 Appendix D vectors for counters 0 through 9.
	want := []int{755224, 287082, 359152, 969429, 338314, 254676, 287922, 162583, 399871, 520489}

	for counter, expected := range want {
		got := totp.GenerateHOTP(keyuri.AlgorithmSHA1, []byte(sha1Seed), int64(counter), 6)
		assert.Equal(t, expected, got, "counter %d", counter)
	}
}

func TestGenerateCodeAt(t *testing.T) {
	t.Parallel()

	t.Run("six digit codes truncate the same vectors", func(t *testing.T) {
		t.Parallel()
		key := vectorKey(t, keyuri.AlgorithmSHA1, sha1Seed, 6)
		code, err := totp.GenerateCodeAt(key, time.Unix(59, 0))
		require.NoError(t, err)
		assert.Equal(t, "287082", code)
	})

	t.Run("codes are zero padded", func(t *testing.T) {
		t.Parallel()
		key := vectorKey(t, keyuri.AlgorithmSHA1, sha1Seed, 6)
		code, err := totp.GenerateCodeAt(key, time.Unix(1234567890, 0))
		require.NoError(t, err)
		assert.Equal(t, "005924", code)
	})

	t.Run("migrated steam credential derives five digits", func(t *testing.T) {
		t.Parallel()
		secret := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString([]byte(sha1Seed))
		key, err := keyuri.Migrate([]string{"30", "S", ""}, secret)
		require.NoError(t, err)

		code, err := totp.GenerateCodeAt(key, time.Unix(59, 0))
		require.NoError(t, err)
		assert.Equal(t, "87082", code)
	})

	t.Run("custom period shifts the window", func(t *testing.T) {
		t.Parallel()
		secret := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString([]byte(sha1Seed))
		key, err := keyuri.New("Acme", "alice", secret, keyuri.WithPeriod(60))
		require.NoError(t, err)

		// With a 60-second period the counter at t=119 is 1, the same
		// counter the 30-second vectors reach at t=59.
		code, err := totp.GenerateCodeAt(key, time.Unix(119, 0))
		require.NoError(t, err)
		assert.Equal(t, "287082", code)
	})

	t.Run("unusable digit counts", func(t *testing.T) {
		t.Parallel()
		for _, digits := range []int{-4, 0, 11} {
			key := vectorKey(t, keyuri.AlgorithmSHA1, sha1Seed, digits)
			_, err := totp.GenerateCodeAt(key, time.Unix(59, 0))
			assert.ErrorIs(t, err, totp.ErrUnusableDigits, "digits %d", digits)
		}
	})

	t.Run("unusable period", func(t *testing.T) {
		t.Parallel()
		secret := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString([]byte(sha1Seed))
		key, err := keyuri.New("Acme", "alice", secret, keyuri.WithPeriod(0))
		require.NoError(t, err)

		_, err = totp.GenerateCodeAt(key, time.Unix(59, 0))
		assert.ErrorIs(t, err, totp.ErrUnusablePeriod)
	})
}

func TestValidateCodeAt(t *testing.T) {
	t.Parallel()
	key := vectorKey(t, keyuri.AlgorithmSHA1, sha1Seed, 6)

	t.Run("accepts the current window", func(t *testing.T) {
		t.Parallel()
		ok, err := totp.ValidateCodeAt(key, "287082", time.Unix(59, 0))
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("accepts the previous window", func(t *testing.T) {
		t.Parallel()
		ok, err := totp.ValidateCodeAt(key, "287082", time.Unix(89, 0))
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("accepts the next window", func(t *testing.T) {
		t.Parallel()
		ok, err := totp.ValidateCodeAt(key, "287082", time.Unix(29, 0))
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("rejects a stale code", func(t *testing.T) {
		t.Parallel()
		ok, err := totp.ValidateCodeAt(key, "287082", time.Unix(121, 0))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()
		ok, err := totp.ValidateCodeAt(key, "  287082  ", time.Unix(59, 0))
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("rejects malformed codes", func(t *testing.T) {
		t.Parallel()
		for _, code := range []string{"", "2870", "28708a", "2870822"} {
			ok, err := totp.ValidateCodeAt(key, code, time.Unix(59, 0))
			assert.ErrorIs(t, err, totp.ErrInvalidCode, "code %q", code)
			assert.False(t, ok)
		}
	})

	t.Run("unusable key surfaces its problem", func(t *testing.T) {
		t.Parallel()
		bad := vectorKey(t, keyuri.AlgorithmSHA1, sha1Seed, 11)
		_, err := totp.ValidateCodeAt(bad, "287082", time.Unix(59, 0))
		assert.ErrorIs(t, err, totp.ErrUnusableDigits)
	})
}

func TestGenerateCode(t *testing.T) {
	t.Parallel()
	key := vectorKey(t, keyuri.AlgorithmSHA1, sha1Seed, 6)

	code, err := totp.GenerateCode(key)
	require.NoError(t, err)
	assert.Len(t, code, 6)

	ok, err := totp.ValidateCode(key, code)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEnroll(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		key, err := totp.Enroll("Acme", "alice@example.com")
		require.NoError(t, err)

		assert.Equal(t, "Acme", key.Issuer())
		assert.Equal(t, "alice@example.com", key.Label())
		assert.Len(t, key.Secret(), 32)
		assert.Equal(t, keyuri.DefaultDigits, key.Digits())
		assert.Equal(t, keyuri.DefaultPeriod, key.Period())

		code, err := totp.GenerateCode(key)
		require.NoError(t, err)
		ok, err := totp.ValidateCode(key, code)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("options pass through", func(t *testing.T) {
		t.Parallel()
		key, err := totp.Enroll("Acme", "alice",
			keyuri.WithAlgorithm(keyuri.AlgorithmSHA256),
			keyuri.WithDigits(8),
		)
		require.NoError(t, err)
		assert.Equal(t, keyuri.AlgorithmSHA256, key.Algorithm())
		assert.Equal(t, 8, key.Digits())
	})
}
