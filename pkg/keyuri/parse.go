package keyuri

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/dmitrymomot/otpkit/pkg/secretkey"
)

// Parse validates raw as a TOTP key URI and returns the credential it
// describes. The scheme and type are matched case-insensitively; everything
// else is read from the query string and the label path.
//
// Parsing is deliberately tolerant of malformed query entries so that URIs
// produced by sloppy exporters still import: entries without '=' and entries
// whose value does not percent-decode are skipped rather than rejected, and
// when a key repeats the last occurrence wins. Keys are matched verbatim,
// values are percent-decoded with '+' read as space.
//
// An issuer query parameter always overrides the issuer prefix of the label
// path, even when its value is empty.
func Parse(raw string) (Key, error) {
	scheme, rest, ok := strings.Cut(raw, "://")
	if !ok || !strings.EqualFold(scheme, schemeOTPAuth) {
		return Key{}, ErrInvalidScheme
	}

	host := rest
	tail := ""
	if i := strings.IndexAny(rest, "/?"); i >= 0 {
		host, tail = rest[:i], rest[i:]
	}
	if !strings.EqualFold(host, typeTOTP) {
		return Key{}, ErrInvalidType
	}

	path := tail
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}

	query := splitQuery(raw)

	secret, err := validateSecret(query["secret"])
	if err != nil {
		return Key{}, err
	}
	algorithm, err := algorithmFromQuery(query)
	if err != nil {
		return Key{}, err
	}
	period, err := periodFromQuery(query)
	if err != nil {
		return Key{}, err
	}
	digits, err := digitsFromQuery(query)
	if err != nil {
		return Key{}, err
	}
	timeCorrectionURL, err := timeCorrectionFromQuery(query)
	if err != nil {
		return Key{}, err
	}
	label, issuer, err := resolveLabel(path, query)
	if err != nil {
		return Key{}, err
	}

	return Key{
		secret:            secret,
		algorithm:         algorithm,
		digits:            digits,
		period:            period,
		label:             label,
		issuer:            issuer,
		timeCorrectionURL: timeCorrectionURL,
	}, nil
}

// splitQuery collects key/value pairs from the text after the first '?'.
// It never fails: malformed entries are dropped instead.
func splitQuery(raw string) map[string]string {
	pairs := make(map[string]string)
	_, query, found := strings.Cut(raw, "?")
	if !found {
		return pairs
	}
	for _, entry := range strings.Split(query, "&") {
		key, rawValue, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			continue
		}
		pairs[key] = value
	}
	return pairs
}

// validateSecret checks a secret value and returns it with trailing Base32
// padding stripped. An absent or blank value is a missing secret; anything
// outside uppercase Base32, or with padding in the wrong place, is an
// encoding error.
func validateSecret(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", ErrMissingSecret
	}
	if secretkey.HasInvalidPadding(raw) || !secretkey.IsBase32(raw) {
		return "", ErrInvalidSecretEncoding
	}
	return strings.TrimRight(raw, "="), nil
}

func algorithmFromQuery(query map[string]string) (Algorithm, error) {
	raw, ok := query["algorithm"]
	if !ok {
		return DefaultAlgorithm, nil
	}
	return parseAlgorithm(raw)
}

// periodFromQuery accepts any integer, including zero and negatives.
// Whether a period is usable for code generation is the caller's concern.
func periodFromQuery(query map[string]string) (int, error) {
	raw, ok := query["period"]
	if !ok {
		return DefaultPeriod, nil
	}
	period, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ErrInvalidPeriod
	}
	return period, nil
}

func digitsFromQuery(query map[string]string) (int, error) {
	raw, ok := query["digits"]
	if !ok {
		return DefaultDigits, nil
	}
	digits, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ErrInvalidDigits
	}
	return digits, nil
}

func timeCorrectionFromQuery(query map[string]string) (string, error) {
	raw, ok := query["timecorrectionurl"]
	if !ok {
		return "", nil
	}
	if err := validateTimeCorrectionURL(raw); err != nil {
		return "", err
	}
	return raw, nil
}

func validateTimeCorrectionURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return ErrInvalidTimeCorrectionURL
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return nil
	}
	return ErrInvalidTimeCorrectionURL
}

// resolveLabel derives the label and issuer from the URI path, then applies
// the issuer query override. The path is percent-decoded before the split on
// ':', so a colon inside an escaped issuer still separates issuer from label.
// Decoding failures fall back to the raw path text.
func resolveLabel(rawPath string, query map[string]string) (label, issuer string, err error) {
	decoded, derr := url.PathUnescape(rawPath)
	if derr != nil {
		decoded = rawPath
	}
	decoded = strings.TrimPrefix(decoded, "/")
	if decoded == "" {
		return "", "", ErrMissingLabel
	}

	if before, after, found := strings.Cut(decoded, ":"); found {
		issuer, label = before, after
	} else {
		label = decoded
	}

	if v, ok := query["issuer"]; ok {
		issuer = v
	}
	if strings.TrimSpace(label) == "" {
		return "", "", ErrMissingLabel
	}
	return label, issuer, nil
}
