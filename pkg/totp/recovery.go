package totp

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
)

// GenerateRecoveryCodes mints single-use backup codes for users who lose
// access to their authenticator device. Each code carries 64 bits of entropy
// rendered as 16 uppercase hex characters.
func GenerateRecoveryCodes(count int) ([]string, error) {
	if count < 1 {
		return nil, ErrInvalidRecoveryCodeCount
	}

	codes := make([]string, count)
	for i := 0; i < count; i++ {
		var raw [8]byte
		if _, err := rand.Read(raw[:]); err != nil {
			return nil, errors.Join(ErrFailedToGenerateRecoveryCode, err)
		}
		codes[i] = fmt.Sprintf("%X", raw[:])
	}
	return codes, nil
}

// HashRecoveryCode returns the hex SHA-256 digest of a code, the only form
// recovery codes should be persisted in.
func HashRecoveryCode(code string) string {
	digest := sha256.Sum256([]byte(code))
	return hex.EncodeToString(digest[:])
}

// VerifyRecoveryCode compares a submitted code against a stored hash.
// The comparison runs in constant time so timing does not leak how much of
// the hash matched.
func VerifyRecoveryCode(code, hashedCode string) bool {
	computed := HashRecoveryCode(code)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hashedCode)) == 1
}
