package visit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMessage(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		last     time.Time
		expected string
	}{
		{name: "first visit", last: time.Time{}, expected: "Welcome! Let us know if you have any questions."},
		{name: "same day", last: now.Add(-3 * time.Hour), expected: "Back so soon! Awesome!"},
		{name: "just under a day", last: now.Add(-23*time.Hour - 59*time.Minute), expected: "Back so soon! Awesome!"},
		{name: "one day", last: now.Add(-25 * time.Hour), expected: "You last visited 1 day ago."},
		{name: "several days", last: now.Add(-5*24*time.Hour - time.Hour), expected: "You last visited 5 days ago."},
		{name: "clock skew", last: now.Add(time.Hour), expected: "Back so soon! Awesome!"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Message(tc.last, now))
		})
	}
}

func TestCookieRoundTrip(t *testing.T) {
	ts := time.UnixMilli(1717243200123)
	assert.True(t, ts.Equal(ParseCookie(FormatCookie(ts))))
}

func TestParseCookie_Invalid(t *testing.T) {
	for _, v := range []string{"", "abc", "-5", "0"} {
		assert.True(t, ParseCookie(v).IsZero(), v)
	}
}
