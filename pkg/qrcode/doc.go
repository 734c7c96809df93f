// Package qrcode renders QR code images either as raw PNG bytes or as a
// data-URI string that can be embedded directly into HTML pages, with a
// shortcut for TOTP provisioning URIs.
//
// The package is a thin wrapper around github.com/skip2/go-qrcode that adds
// sensible defaults, input validation, and convenient helpers for
// authenticator onboarding flows.
//
// # Architecture
//
// The core of the package lives in the Generate, GenerateKey, and
// GenerateBase64Image functions. All three delegate QR-code generation to
// the upstream library and post-process the result:
//
//   • Generate validates the input and returns a PNG image in a byte slice.
//   • GenerateKey serializes a keyuri.Key into its provisioning URI and
//     renders that, so enrollment code never touches the URI text itself.
//   • GenerateBase64Image builds upon Generate and returns a data-URI
//     (base64-encoded PNG) which can be used inside an <img> tag.
//
// Errors that can be returned are declared as package-level variables so they
// can be compared with errors.Is.
//
// # Usage
//
//	import "github.com/dmitrymomot/otpkit/pkg/qrcode"
//
//	// Render an enrollment QR code
//	img, err := qrcode.GenerateKey(key, 256)
//	if err != nil {
//		// handle error
//	}
//
//	// Create base64 data URI for embedding in HTML
//	dataURI, err := qrcode.GenerateBase64Image(key.String(), 256)
//	if err != nil {
//		// handle error
//	}
//
// # Error Handling
//
// The functions return well-defined sentinel errors:
//
//   • ErrEmptyContent             – the content argument was empty.
//   • ErrorFailedToGenerateQRCode – the underlying library could not
//     generate the QR code.
//
// Wrap your error handling with errors.Is for robust comparisons.
//
// See the package tests for more usage examples.
package qrcode
