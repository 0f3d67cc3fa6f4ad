// Package warmer periodically reads the weather widget through its cache so
// page renders rarely pay for the upstream fetch.
package warmer

import (
	"context"
	"log"
	"time"

	"chamber-directory/internal/weather"
)

// Reporter is satisfied by *weather.Service.
type Reporter interface {
	Report(ctx context.Context) weather.Report
}

// Service runs the warm-up loop.
type Service struct {
	reporter Reporter
	interval time.Duration
}

// New creates a warmer. A non-positive interval disables it.
func New(r Reporter, interval time.Duration) *Service {
	return &Service{reporter: r, interval: interval}
}

// Run warms once, then again every interval until ctx is done. Each cycle is
// a normal read-through, so a fresh cache entry is left alone.
func (s *Service) Run(ctx context.Context) {
	if s.interval <= 0 {
		log.Println("Weather warmer is disabled. Not starting.")
		return
	}
	log.Println("Starting weather warmer...")

	s.WarmOnce(ctx)

	timer := time.NewTimer(s.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Weather warmer shutting down.")
			return
		case <-timer.C:
			s.WarmOnce(ctx)
			timer.Reset(s.interval)
		}
	}
}

// WarmOnce performs a single read-through.
func (s *Service) WarmOnce(ctx context.Context) {
	rep := s.reporter.Report(ctx)
	switch {
	case rep.Fallback:
		log.Println("Weather warm-up used fallback data")
	case rep.Cached:
		log.Println("Weather cache is fresh")
	default:
		log.Println("Weather cache refreshed")
	}
}
