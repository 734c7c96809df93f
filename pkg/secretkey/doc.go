// Package secretkey handles the Base32-encoded shared secrets that TOTP
// credentials are built on: validation, normalization, decoding to raw key
// bytes, and generation of fresh keys.
//
// Secrets circulate in the wild in several spellings: padded and unpadded,
// upper and lower case, sometimes with stray whitespace from copy-paste.
// This package treats the unpadded uppercase form as canonical and converges
// every accepted spelling onto it, so the rest of the codebase can compare
// and store secrets without worrying about padding variants.
//
// # Usage
//
//	import "github.com/dmitrymomot/otpkit/pkg/secretkey"
//
//	// Mint a new 160-bit secret
//	secret, err := secretkey.Generate()
//	if err != nil {
//		// handle error
//	}
//
//	// Recover the raw key bytes for HMAC computation
//	key, err := secretkey.Decode(secret)
//	if err != nil {
//		// handle error
//	}
//
// # Error Handling
//
// Decode returns ErrMissingKey for empty input and ErrInvalidKey for input
// outside the Base32 alphabet or with an undecodable length; the latter may
// be wrapped with the underlying encoding error via errors.Join. Compare
// with errors.Is.
package secretkey
