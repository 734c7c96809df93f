package keyuri

import (
	"fmt"
	"net/url"
)

// Fixed values used when rebuilding a credential from a legacy record.
// The legacy format carried neither label nor issuer, so both are synthetic.
const (
	legacyLabel  = "SomeLabel"
	legacyIssuer = "SomeIssuer"

	steamFlag   = "S"
	steamIssuer = "Steam"
	steamDigits = "5"
)

// Migrate converts a legacy settings record and its secret into a Key.
//
// Legacy records store three positional values: period, digits, and a time
// correction URL. A digits value of "S" marks a Steam credential, which maps
// to issuer "Steam" with 5-digit codes; any other value is carried over
// verbatim together with the synthetic issuer. The record's time correction
// URL is kept only when it is a usable absolute http(s) URL.
//
// The rebuilt URI is passed through Parse, so malformed legacy values fail
// with the same errors as direct parsing.
func Migrate(settings []string, secret string) (Key, error) {
	if settings == nil {
		return Key{}, ErrNilArgument
	}
	if len(settings) < 3 {
		return Key{}, ErrInvalidLegacySettings
	}

	issuer, digits := legacyIssuer, settings[1]
	if settings[1] == steamFlag {
		issuer, digits = steamIssuer, steamDigits
	}

	uri := fmt.Sprintf("%s://%s/%s?secret=%s&issuer=%s&period=%s&digits=%s",
		schemeOTPAuth, typeTOTP, legacyLabel,
		url.QueryEscape(secret),
		url.QueryEscape(issuer),
		url.QueryEscape(settings[0]),
		url.QueryEscape(digits),
	)
	if validateTimeCorrectionURL(settings[2]) == nil {
		uri += "&timecorrectionurl=" + url.QueryEscape(settings[2])
	}

	return Parse(uri)
}
