package secretkey

import (
	"crypto/rand"
	"encoding/base32"
	"errors"
	"regexp"
	"strings"
)

// Length is the number of random bytes in a generated key.
// 160 bits matches the RFC 4226 recommendation for HOTP shared secrets.
const Length = 20

// Pattern matches canonical Base32: uppercase letters, digits 2-7, and
// optional trailing padding.
var Pattern = regexp.MustCompile("^[A-Z2-7]+=*$")

// encoding reads and writes keys without padding so that padded and stripped
// spellings of the same key decode to identical bytes.
var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// IsBase32 reports whether s consists of Base32 characters with at most
// trailing padding. It checks the alphabet only, not decodability.
func IsBase32(s string) bool {
	return Pattern.MatchString(s)
}

// HasInvalidPadding reports whether s contains '=' anywhere other than as
// trailing padding, or consists of padding alone.
func HasInvalidPadding(s string) bool {
	data := strings.TrimRight(s, "=")
	if data == "" {
		return s != ""
	}
	return strings.ContainsRune(data, '=')
}

// Normalize trims surrounding whitespace, upper-cases the key, and strips
// trailing padding.
func Normalize(s string) string {
	return strings.TrimRight(strings.ToUpper(strings.TrimSpace(s)), "=")
}

// Decode normalizes s and returns the raw key bytes.
func Decode(s string) ([]byte, error) {
	normalized := Normalize(s)
	if normalized == "" {
		return nil, ErrMissingKey
	}
	if !IsBase32(normalized) {
		return nil, ErrInvalidKey
	}
	raw, err := encoding.DecodeString(normalized)
	if err != nil {
		return nil, errors.Join(ErrInvalidKey, err)
	}
	return raw, nil
}

// Generate returns a new random key encoded as unpadded Base32.
func Generate() (string, error) {
	key := make([]byte, Length)
	if _, err := rand.Read(key); err != nil {
		return "", errors.Join(ErrFailedToGenerate, err)
	}
	return encoding.EncodeToString(key), nil
}
