// Package cachegate is a single-key read-through cache with a freshness
// window, backed by the persistent key-value store.
package cachegate

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"chamber-directory/internal/store"
)

// DefaultWindow is the freshness window used when none is configured.
const DefaultWindow = 10 * time.Minute

// Gate guards one well-known key. Read never fails; a broken store or a
// corrupt entry is a miss. Write is best effort.
type Gate struct {
	store  store.Store
	key    string
	window time.Duration
	now    func() time.Time
}

// Option customizes a Gate.
type Option func(*Gate)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(g *Gate) { g.now = now }
}

// New creates a gate over s for key. A non-positive window means DefaultWindow.
func New(s store.Store, key string, window time.Duration, opts ...Option) *Gate {
	if window <= 0 {
		window = DefaultWindow
	}
	g := &Gate{store: s, key: key, window: window, now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Key returns the guarded key.
func (g *Gate) Key() string { return g.key }

// Window returns the freshness window.
func (g *Gate) Window() time.Duration { return g.window }

// Read returns the cached payload if present and fresh.
func (g *Gate) Read(ctx context.Context) (json.RawMessage, bool) {
	raw, err := g.store.Get(ctx, g.key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Printf("cache read for %q failed, treating as miss: %v", g.key, err)
		}
		return nil, false
	}

	entry, err := Decode([]byte(raw))
	if err != nil {
		log.Printf("cache entry for %q is corrupt, treating as miss: %v", g.key, err)
		return nil, false
	}

	if !entry.Fresh(g.now(), g.window) {
		return nil, false
	}
	return entry.Data, true
}

// Write stores payload stamped with the current time, replacing any prior
// entry. Failures are logged and swallowed.
func (g *Gate) Write(ctx context.Context, payload json.RawMessage) {
	b, err := Encode(Entry{Timestamp: g.now().UnixMilli(), Data: payload})
	if err != nil {
		log.Printf("cache write for %q skipped: %v", g.key, err)
		return
	}
	if err := g.store.Set(ctx, g.key, string(b)); err != nil {
		log.Printf("cache write for %q failed: %v", g.key, err)
	}
}
