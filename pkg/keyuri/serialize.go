package keyuri

import (
	"net/url"
	"strconv"
	"strings"
)

// String renders the key back into otpauth URI form.
//
// Query parameters appear in a fixed order with defaulted values omitted:
// period and digits are skipped at their defaults, algorithm is skipped for
// SHA1, then secret, issuer, and timecorrectionurl (when set) follow. The
// issuer is embedded both in the label path and as a query parameter so that
// authenticator apps relying on either convention resolve it.
func (k Key) String() string {
	params := make([]string, 0, 6)
	if k.period != DefaultPeriod {
		params = append(params, "period="+strconv.Itoa(k.period))
	}
	if k.digits != DefaultDigits {
		params = append(params, "digits="+strconv.Itoa(k.digits))
	}
	if k.algorithm != DefaultAlgorithm {
		params = append(params, "algorithm="+k.algorithm.String())
	}
	params = append(params, "secret="+url.QueryEscape(k.secret))
	params = append(params, "issuer="+url.QueryEscape(k.issuer))
	if k.timeCorrectionURL != "" {
		params = append(params, "timecorrectionurl="+url.QueryEscape(k.timeCorrectionURL))
	}

	return schemeOTPAuth + "://" + typeTOTP + "/" +
		url.PathEscape(k.issuer) + ":" + url.PathEscape(k.label) +
		"?" + strings.Join(params, "&")
}
