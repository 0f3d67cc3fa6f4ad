// Package visit computes the discover page's last-visit banner.
package visit

import (
	"fmt"
	"strconv"
	"time"
)

// CookieName holds the previous visit as epoch millis.
const CookieName = "lastVisitDate"

const day = 24 * time.Hour

// Message returns the banner for a visitor whose last visit was last. A
// zero last means first visit.
func Message(last, now time.Time) string {
	if last.IsZero() {
		return "Welcome! Let us know if you have any questions."
	}
	days := int(now.Sub(last) / day)
	switch {
	case days <= 0:
		return "Back so soon! Awesome!"
	case days == 1:
		return "You last visited 1 day ago."
	default:
		return fmt.Sprintf("You last visited %d days ago.", days)
	}
}

// ParseCookie decodes the cookie value. Invalid values read as a first visit.
func ParseCookie(value string) time.Time {
	ms, err := strconv.ParseInt(value, 10, 64)
	if err != nil || ms <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}

// FormatCookie encodes t for the cookie.
func FormatCookie(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}
