// Package weather renders the home page weather widget from a cached or
// freshly fetched one-call payload, substituting fixed data on failure.
package weather

import (
	"context"
	"encoding/json"
	"log"
	"net/url"
	"strconv"
	"time"

	"chamber-directory/config"
	"chamber-directory/internal/cachegate"
	"chamber-directory/internal/loader"
	"chamber-directory/internal/model"
)

// Service composes the cache gate with the loader.
type Service struct {
	gate   *cachegate.Gate
	loader *loader.Loader
	source string
	units  string
	now    func() time.Time
}

// NewService creates the weather service.
func NewService(cfg config.WeatherConfig, gate *cachegate.Gate, l *loader.Loader) *Service {
	return &Service{
		gate:   gate,
		loader: l,
		source: SourceURL(cfg),
		units:  cfg.Units,
		now:    time.Now,
	}
}

// SourceURL builds the upstream request URL from config.
func SourceURL(cfg config.WeatherConfig) string {
	u, err := url.Parse(cfg.URL)
	if err != nil || cfg.URL == "" {
		return cfg.URL
	}
	q := u.Query()
	q.Set("lat", strconv.FormatFloat(cfg.Lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(cfg.Lon, 'f', -1, 64))
	q.Set("units", cfg.Units)
	q.Set("exclude", "minutely,hourly,alerts")
	if cfg.APIKey != "" {
		q.Set("appid", cfg.APIKey)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// Report returns the widget view model. It never fails: a cache hit is used
// as is, a fresh payload is cached before rendering, and any failure yields
// the fallback payload, which is cached too.
func (s *Service) Report(ctx context.Context) Report {
	if raw, ok := s.gate.Read(ctx); ok {
		var p payload
		if err := json.Unmarshal(raw, &p); err == nil && validate(p.WeatherPayload) == nil {
			r := s.report(p)
			r.Cached = true
			return r
		}
		log.Printf("cached weather for %q is unusable, refetching", s.gate.Key())
	}

	p, raw, err := s.fetch(ctx)
	if err != nil {
		log.Printf("weather fetch failed, using fallback data: %v", err)
		return s.fallback(ctx)
	}

	s.gate.Write(ctx, raw)
	return s.report(p)
}

func (s *Service) fetch(ctx context.Context) (payload, json.RawMessage, error) {
	var p payload
	if s.source == "" {
		return p, nil, loader.ShapeMismatch("weather", "no weather source configured")
	}

	body, err := s.loader.Load(ctx, s.source)
	if err != nil {
		return p, nil, err
	}
	if err := json.Unmarshal(body, &p); err != nil {
		return p, nil, &loader.FetchError{Kind: loader.KindDecode, Source: "weather", Err: err}
	}
	if err := validate(p.WeatherPayload); err != nil {
		return p, nil, loader.ShapeMismatch("weather", err.Error())
	}
	return p, json.RawMessage(body), nil
}

func (s *Service) fallback(ctx context.Context) Report {
	p := payload{WeatherPayload: Fallback(s.now()), Synthetic: true}
	if raw, err := json.Marshal(p); err == nil {
		s.gate.Write(ctx, raw)
	}
	return s.report(p)
}

// report builds the view model. Synthetic payloads are always metric.
func (s *Service) report(p payload) Report {
	units := s.units
	if p.Synthetic {
		units = "metric"
	}
	r := buildReport(p.WeatherPayload, units, p.location())
	r.Fallback = p.Synthetic
	return r
}

// payload adds the upstream's timezone offset, and a marker for fallback
// data, to the shared model.
type payload struct {
	model.WeatherPayload
	TimezoneOffset int  `json:"timezone_offset"`
	Synthetic      bool `json:"synthetic,omitempty"`
}

func (p payload) location() *time.Location {
	if p.TimezoneOffset == 0 {
		return time.UTC
	}
	return time.FixedZone("", p.TimezoneOffset)
}
