package weather

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chamber-directory/config"
	"chamber-directory/internal/cachegate"
	"chamber-directory/internal/loader"
	"chamber-directory/internal/store"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) // a Sunday

func dayUnix(offset int) int64 {
	return testNow.AddDate(0, 0, offset).Unix()
}

func validPayload() map[string]any {
	day := func(offset int, max, min float64, desc string) map[string]any {
		return map[string]any{
			"dt":      dayUnix(offset),
			"temp":    map[string]any{"max": max, "min": min},
			"weather": []map[string]any{{"description": desc, "icon": "01d"}},
		}
	}
	return map[string]any{
		"current": map[string]any{
			"temp":       18.6,
			"feels_like": 17.2,
			"humidity":   41,
			"weather":    []map[string]any{{"description": "few clouds", "icon": "02d"}},
		},
		"daily": []map[string]any{
			day(0, 21.4, 9.5, "few clouds"),
			day(1, 23, 10, "clear sky"),
			day(2, 19.5, 8.4, "light rain"),
			day(3, 17, 6, "overcast clouds"),
			day(4, 16, 5, "snow"),
		},
	}
}

type upstream struct {
	server *httptest.Server
	hits   atomic.Int32
}

func newUpstream(t *testing.T, status int, body any) *upstream {
	t.Helper()
	u := &upstream{}
	u.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.hits.Add(1)
		w.WriteHeader(status)
		switch b := body.(type) {
		case string:
			w.Write([]byte(b))
		default:
			json.NewEncoder(w).Encode(b)
		}
	}))
	t.Cleanup(u.server.Close)
	return u
}

type testClock struct{ t time.Time }

func (c *testClock) Now() time.Time { return c.t }

func newTestService(t *testing.T, u *upstream) (*Service, *cachegate.Gate, *testClock) {
	t.Helper()
	clock := &testClock{t: testNow}
	gate := cachegate.New(store.NewMemoryStore(), "weatherData", 10*time.Minute, cachegate.WithClock(clock.Now))
	cfg := config.WeatherConfig{URL: u.server.URL, Units: "metric", Lat: 40.2, Lon: -111.6}
	svc := NewService(cfg, gate, loader.NewWithClient(u.server.Client()))
	svc.now = clock.Now
	return svc, gate, clock
}

func TestReport_FetchesThenServesFromCache(t *testing.T) {
	u := newUpstream(t, http.StatusOK, validPayload())
	svc, gate, _ := newTestService(t, u)

	first := svc.Report(context.Background())
	assert.False(t, first.Cached)
	assert.False(t, first.Fallback)
	assert.Equal(t, 19, first.Current.Temp)
	assert.Equal(t, 17, first.Current.FeelsLike)
	assert.Equal(t, 41, first.Current.Humidity)
	assert.Equal(t, "Few Clouds", first.Current.Description)
	assert.Equal(t, "°C", first.Unit)
	require.Len(t, first.Forecast, 4)
	assert.Equal(t, []string{"Today", "Monday", "Tuesday", "Wednesday"},
		[]string{first.Forecast[0].Label, first.Forecast[1].Label, first.Forecast[2].Label, first.Forecast[3].Label})
	assert.Equal(t, 20, first.Forecast[2].High)

	_, ok := gate.Read(context.Background())
	assert.True(t, ok, "fresh payload is written to the cache")

	second := svc.Report(context.Background())
	assert.True(t, second.Cached)
	assert.Equal(t, first.Current, second.Current)
	assert.Equal(t, int32(1), u.hits.Load())
}

func TestReport_RefetchesAfterWindow(t *testing.T) {
	u := newUpstream(t, http.StatusOK, validPayload())
	svc, _, clock := newTestService(t, u)

	svc.Report(context.Background())
	clock.t = clock.t.Add(10 * time.Minute)
	r := svc.Report(context.Background())

	assert.False(t, r.Cached)
	assert.Equal(t, int32(2), u.hits.Load())
}

func TestReport_FallbackOnFailure(t *testing.T) {
	testCases := []struct {
		name   string
		status int
		body   any
	}{
		{name: "server error", status: http.StatusInternalServerError, body: "oops"},
		{name: "unauthorized demo key", status: http.StatusUnauthorized, body: `{"cod":401}`},
		{name: "malformed json", status: http.StatusOK, body: `{"current":`},
		{name: "missing current", status: http.StatusOK, body: `{"daily":[]}`},
		{name: "short forecast", status: http.StatusOK, body: map[string]any{
			"current": validPayload()["current"],
			"daily":   validPayload()["daily"].([]map[string]any)[:2],
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			u := newUpstream(t, tc.status, tc.body)
			svc, gate, _ := newTestService(t, u)

			r := svc.Report(context.Background())
			assert.True(t, r.Fallback)
			assert.Equal(t, 24, r.Current.Temp)
			assert.Equal(t, "Partly Cloudy", r.Current.Description)
			assert.Equal(t, "°C", r.Unit)
			assert.Len(t, r.Forecast, 4)

			raw, ok := gate.Read(context.Background())
			require.True(t, ok, "fallback is cached")
			assert.Contains(t, string(raw), `"synthetic":true`)

			again := svc.Report(context.Background())
			assert.True(t, again.Fallback)
			assert.True(t, again.Cached)
			assert.Equal(t, int32(1), u.hits.Load(), "cached fallback dampens retries")
		})
	}
}

func TestReport_ImperialUnits(t *testing.T) {
	u := newUpstream(t, http.StatusOK, validPayload())
	svc, _, _ := newTestService(t, u)
	svc.units = "imperial"

	assert.Equal(t, "°F", svc.Report(context.Background()).Unit)
}

func TestReport_TimezoneOffsetShiftsLabels(t *testing.T) {
	p := validPayload()
	p["timezone_offset"] = -13 * 3600 // pushes noon UTC back to the previous day
	u := newUpstream(t, http.StatusOK, p)
	svc, _, _ := newTestService(t, u)

	r := svc.Report(context.Background())
	assert.Equal(t, "Sunday", r.Forecast[1].Label)
}

func TestSourceURL(t *testing.T) {
	raw := SourceURL(config.WeatherConfig{
		URL:    "https://api.example.com/data/3.0/onecall",
		APIKey: "demo",
		Lat:    40.2338,
		Lon:    -111.6585,
		Units:  "imperial",
	})

	u, err := url.Parse(raw)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "40.2338", q.Get("lat"))
	assert.Equal(t, "-111.6585", q.Get("lon"))
	assert.Equal(t, "imperial", q.Get("units"))
	assert.Equal(t, "demo", q.Get("appid"))
	assert.Equal(t, "minutely,hourly,alerts", q.Get("exclude"))
}

func TestReport_NoSourceUsesFallback(t *testing.T) {
	gate := cachegate.New(store.NewMemoryStore(), "weatherData", time.Minute)
	svc := NewService(config.WeatherConfig{}, gate, loader.New("", time.Second))

	r := svc.Report(context.Background())
	assert.True(t, r.Fallback)
}

func TestFallback_Shape(t *testing.T) {
	assert.NoError(t, validate(Fallback(testNow)))
}
