package cachegate

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Entry is the stored form of a cached payload. Timestamp is epoch millis.
type Entry struct {
	Timestamp int64           `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// CapturedAt returns the entry's timestamp as a time.
func (e Entry) CapturedAt() time.Time {
	return time.UnixMilli(e.Timestamp)
}

// Fresh reports whether the entry is younger than window at now. An entry
// exactly window old is stale, and so is one stamped after now: a skewed or
// corrupt timestamp must not pin the entry.
func (e Entry) Fresh(now time.Time, window time.Duration) bool {
	captured := e.CapturedAt()
	if now.Before(captured) {
		return false
	}
	return now.Sub(captured) < window
}

// Encode serializes an entry.
func Encode(e Entry) ([]byte, error) {
	if len(e.Data) == 0 {
		return nil, errors.New("cachegate: empty payload")
	}
	return json.Marshal(e)
}

// Decode parses an encoded entry. A missing data field is an error.
func Decode(b []byte) (Entry, error) {
	var e Entry
	if err := json.Unmarshal(b, &e); err != nil {
		return Entry{}, fmt.Errorf("decode cache entry: %w", err)
	}
	if len(e.Data) == 0 || string(e.Data) == "null" {
		return Entry{}, errors.New("decode cache entry: missing data")
	}
	return e, nil
}
