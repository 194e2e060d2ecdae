package prodmd

import (
	"net/url"
	"regexp"
	"strings"
)

var asinRe = regexp.MustCompile(`/dp/([A-Z0-9]{10})`)

// ASIN returns the product identifier following /dp/ in address, or an
// empty string.
func ASIN(address string) string {
	m := asinRe.FindStringSubmatch(address)
	if m == nil {
		return ""
	}
	return m[1]
}

// Origin returns the scheme and host of address, or an empty string when
// address is not absolute.
func Origin(address string) string {
	u, err := url.Parse(strings.TrimSpace(address))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

// CanonicalURL reduces address to <origin>/dp/<ASIN>. It returns address
// unchanged and false when no ASIN is present or address has no origin.
func CanonicalURL(address string) (string, bool) {
	asin := ASIN(address)
	origin := Origin(address)
	if asin == "" || origin == "" {
		return address, false
	}
	return origin + "/dp/" + asin, true
}

// IsHTTPURL reports whether s is an absolute http or https URL.
func IsHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
