// Package keyuri parses, validates, builds, and serializes otpauth:// key
// URIs, the exchange format authenticator apps use to provision TOTP
// credentials.
//
// A key URI carries the shared secret together with the code parameters
// (HMAC algorithm, digit count, rotation period), a label identifying the
// account, an optional issuer, and an optional time correction URL pointing
// at a clock synchronization endpoint. This package turns such URIs into
// immutable Key values and back, and migrates records from an older
// positional settings format into the same representation.
//
// # Architecture
//
// Parsing splits the raw URI by hand rather than through net/url, because
// real-world exporters produce URIs that a strict parser rejects: stray
// query entries without '=', values that do not percent-decode, repeated
// keys. The splitter tolerates all of those by dropping the offending entry
// and keeping the rest, which matches how authenticator apps behave when
// importing.
//
// Validation runs as a fixed fail-fast pipeline over the split parts:
//
//	scheme -> type -> secret -> algorithm -> period -> digits ->
//	time correction URL -> label and issuer
//
// The first failing step decides the returned error, so a URI that is broken
// in several ways reports the earliest problem. Scheme and type are matched
// case-insensitively; algorithm names are matched exactly. The secret must be
// Base32 with at most trailing padding and is stored stripped. Digits and period accept any integer so
// that unusual configurations survive a parse/serialize round trip; whether
// such values can drive code generation is decided at generation time.
//
// The label path is percent-decoded before it is split on the first ':'.
// When an issuer query parameter is present it overrides whatever issuer the
// label path carried, even if the parameter is empty.
//
// # Usage
//
//	import "github.com/dmitrymomot/otpkit/pkg/keyuri"
//
//	// Parse a provisioning URI scanned from a QR code
//	key, err := keyuri.Parse("otpauth://totp/Acme:alice@example.com?secret=JBSWY3DPEHPK3PXP&issuer=Acme")
//	if err != nil {
//		// handle error
//	}
//	fmt.Println(key.Issuer(), key.Label(), key.Digits())
//
//	// Build a credential for a new enrollment
//	key, err = keyuri.New("Acme", "alice@example.com", secret,
//		keyuri.WithAlgorithm(keyuri.AlgorithmSHA256),
//		keyuri.WithDigits(8),
//	)
//	if err != nil {
//		// handle error
//	}
//	fmt.Println(key.String())
//
//	// Recover a credential from a legacy record
//	key, err = keyuri.Migrate([]string{"30", "S", ""}, secret)
//	if err != nil {
//		// handle error
//	}
//
// Serialization via Key.String emits query parameters in a fixed order and
// omits parameters that sit at their defaults, so the output is stable and
// minimal. Round trips preserve every field, with one caveat: ':' is not
// escaped in the path, so a colon inside the issuer shifts the label split on
// the next parse. The issuer itself still survives through the query
// parameter.
//
// # Error Handling
//
// Every rejection maps to a package-level sentinel: ErrInvalidScheme,
// ErrInvalidType, ErrMissingSecret, ErrInvalidSecretEncoding,
// ErrInvalidAlgorithm, ErrInvalidDigits, ErrInvalidPeriod,
// ErrInvalidTimeCorrectionURL, ErrMissingLabel, ErrInvalidLegacySettings,
// and ErrNilArgument. Compare with errors.Is.
package keyuri
