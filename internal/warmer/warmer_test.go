package warmer

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"chamber-directory/internal/weather"
)

type countingReporter struct{ calls atomic.Int32 }

func (c *countingReporter) Report(context.Context) weather.Report {
	c.calls.Add(1)
	return weather.Report{Cached: true}
}

func TestRun_Disabled(t *testing.T) {
	r := &countingReporter{}
	New(r, 0).Run(context.Background())
	assert.Zero(t, r.calls.Load())
}

func TestRun_WarmsUntilCancelled(t *testing.T) {
	r := &countingReporter{}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		New(r, 5*time.Millisecond).Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return r.calls.Load() >= 3 }, time.Second, time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("warmer did not stop after cancel")
	}
}

func TestWarmOnce(t *testing.T) {
	r := &countingReporter{}
	New(r, time.Minute).WarmOnce(context.Background())
	assert.Equal(t, int32(1), r.calls.Load())
}
