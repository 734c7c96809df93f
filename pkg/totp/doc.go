// Package totp derives and validates time-based one-time passwords for the
// credentials described by the keyuri package, and bundles the supporting
// security utilities an authentication flow needs: AES-256 encryption for
// secrets at rest and single-use recovery codes.
//
// Code derivation follows RFC 4226 and RFC 6238. All parameters come from
// the credential itself, so SHA1, SHA256, and SHA512 keys with any usable
// digit count and period are handled uniformly, including 5-digit Steam
// credentials migrated from legacy records.
//
// # Architecture
//
// The package is split into three cohesive layers.
//
//   • codes    – functions in otp.go derive and check codes. GenerateHOTP is
//     the raw RFC 4226 primitive; GenerateCode/GenerateCodeAt render a
//     credential's code for a time window, and ValidateCode/ValidateCodeAt
//     check user input against the current window and its neighbors.
//
//   • crypto   – helpers in encrypt.go seal and open credential secrets with
//     AES-256-GCM and generate encryption keys, so secrets never have to be
//     persisted in the clear.
//
//   • recovery – helpers in recovery.go create, hash, and verify the backup
//     codes offered to users in case they lose their authenticator device.
//
// Configuration is loaded once per process by the env-tag aware loader in
// config.go. The required environment variable is TOTP_ENCRYPTION_KEY and it
// must hold a base64-encoded 32-byte key; the companion command under cmd/
// prints a freshly generated one.
//
// # Usage
//
// The minimal happy path for enrolling a user:
//
//	package main
//
//	import (
//	    "fmt"
//
//	    "github.com/dmitrymomot/otpkit/pkg/totp"
//	)
//
//	func main() {
//	    // 1. Mint a credential with a fresh secret
//	    key, _ := totp.Enroll("Acme", "alice@example.com")
//
//	    // 2. Persist the secret encrypted in your datastore
//	    encKey, _ := totp.LoadEncryptionKey()
//	    sealed, _ := totp.EncryptSecret(key.Secret(), encKey)
//	    _ = sealed
//
//	    // 3. Show the provisioning URI (or a QR code) to the user
//	    fmt.Println(key.String())
//
//	    // 4. Later, validate a code the user typed in
//	    ok, _ := totp.ValidateCode(key, "123456")
//	    fmt.Println(ok)
//	}
//
// When the credential carries a time correction URL, fetch the clock offset
// with the timesync package and validate against the corrected time:
//
//	if key.HasTimeCorrection() {
//	    offset, err := client.Offset(ctx, key.TimeCorrectionURL())
//	    if err == nil {
//	        ok, _ = totp.ValidateCodeAt(key, code, time.Now().Add(offset))
//	    }
//	}
//
// # Error Handling
//
// Operations return package-level sentinels, wrapped with the underlying
// cause via errors.Join where one exists. Inspect with errors.Is against
// ErrInvalidCode, ErrUnusableDigits, ErrFailedToEncryptSecret, and friends.
//
// # See Also
//
//   • RFC 4226 – HMAC-Based One-Time Password (HOTP) Algorithm
//   • RFC 6238 – Time-Based One-Time Password (TOTP) Algorithm
package totp
