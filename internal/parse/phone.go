package parse

import (
	"regexp"
	"strings"
)

var nonDigitRe = regexp.MustCompile(`\D`)

// PhoneDigits strips everything but digits, for tel: links.
func PhoneDigits(raw string) string {
	return nonDigitRe.ReplaceAllString(raw, "")
}

// Hostname returns a short display form of a website URL: scheme and
// leading "www." removed, trailing slash trimmed.
func Hostname(raw string) string {
	s := strings.TrimSpace(raw)
	lower := strings.ToLower(s)
	for _, prefix := range []string{"https://", "http://"} {
		if strings.HasPrefix(lower, prefix) {
			s = s[len(prefix):]
			lower = lower[len(prefix):]
			break
		}
	}
	if strings.HasPrefix(lower, "www.") {
		s = s[4:]
	}
	return strings.TrimSuffix(s, "/")
}
