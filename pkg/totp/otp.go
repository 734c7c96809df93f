package totp

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"
	"math"
	"strings"
	"time"

	"github.com/dmitrymomot/otpkit/pkg/keyuri"
	"github.com/dmitrymomot/otpkit/pkg/secretkey"
)

// Bounds on code length the 31-bit truncated HOTP value can fill. Keys may
// carry digit counts outside this range; such keys cannot derive codes.
const (
	minDigits = 1
	maxDigits = 10
)

// Enroll mints a fresh 160-bit secret and assembles a credential for it.
// Render the result with key.String() or the qrcode package to onboard the
// user into their authenticator app.
func Enroll(issuer, label string, opts ...keyuri.Option) (keyuri.Key, error) {
	secret, err := secretkey.Generate()
	if err != nil {
		return keyuri.Key{}, err
	}
	return keyuri.New(issuer, label, secret, opts...)
}

// GenerateCode derives the credential's code for the current time window.
func GenerateCode(key keyuri.Key) (string, error) {
	return GenerateCodeAt(key, time.Now())
}

// GenerateCodeAt derives the credential's code for the window containing at.
// The code is zero-padded to the credential's digit count.
func GenerateCodeAt(key keyuri.Key, at time.Time) (string, error) {
	if key.Digits() < minDigits || key.Digits() > maxDigits {
		return "", ErrUnusableDigits
	}
	if key.Period() < 1 {
		return "", ErrUnusablePeriod
	}

	raw, err := secretkey.Decode(key.Secret())
	if err != nil {
		return "", errors.Join(ErrFailedToGenerateCode, err)
	}

	counter := at.Unix() / int64(key.Period())
	code := GenerateHOTP(key.Algorithm(), raw, counter, key.Digits())
	return fmt.Sprintf("%0*d", key.Digits(), code), nil
}

// ValidateCode checks a user-supplied code against the current time window.
func ValidateCode(key keyuri.Key, code string) (bool, error) {
	return ValidateCodeAt(key, code, time.Now())
}

// ValidateCodeAt checks a code against the window containing at and the
// windows directly before and after, absorbing one period of clock drift in
// either direction. Pass a corrected timestamp when the local clock offset
// is known; see the timesync package.
func ValidateCodeAt(key keyuri.Key, code string, at time.Time) (bool, error) {
	if key.Digits() < minDigits || key.Digits() > maxDigits {
		return false, ErrUnusableDigits
	}
	if key.Period() < 1 {
		return false, ErrUnusablePeriod
	}

	code = strings.TrimSpace(code)
	if len(code) != key.Digits() || !isDigits(code) {
		return false, ErrInvalidCode
	}

	period := time.Duration(key.Period()) * time.Second
	for _, windowTime := range []time.Time{at.Add(-period), at, at.Add(period)} {
		want, err := GenerateCodeAt(key, windowTime)
		if err != nil {
			return false, err
		}
		if want == code {
			return true, nil
		}
	}
	return false, nil
}

// GenerateHOTP implements the RFC 4226 HMAC-based one-time password
// algorithm. The counter is encoded as a big-endian 8-byte value, the HMAC
// output is dynamically truncated to a 31-bit integer, and the result is
// reduced to the requested number of digits.
func GenerateHOTP(algorithm keyuri.Algorithm, key []byte, counter int64, digits int) int {
	counterBytes := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		counterBytes[i] = byte(counter & 0xff)
		counter >>= 8
	}

	mac := hmac.New(hashFor(algorithm), key)
	mac.Write(counterBytes)
	sum := mac.Sum(nil)

	offset := sum[len(sum)-1] & 0x0f
	code := (int(sum[offset]&0x7f) << 24) |
		(int(sum[offset+1]&0xff) << 16) |
		(int(sum[offset+2]&0xff) << 8) |
		int(sum[offset+3]&0xff)

	return code % int(math.Pow10(digits))
}

func hashFor(algorithm keyuri.Algorithm) func() hash.Hash {
	switch algorithm {
	case keyuri.AlgorithmSHA256:
		return sha256.New
	case keyuri.AlgorithmSHA512:
		return sha512.New
	default:
		return sha1.New
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
