// Package loader fetches JSON resources from a URL or a local file with a
// single attempt and classifies every failure.
package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// Loader issues one request per Load; there is no retry.
type Loader struct {
	client *http.Client
}

// New creates a loader. An empty proxy means a direct connection; an invalid
// one is logged and ignored.
func New(proxy string, timeout time.Duration) *Loader {
	var transport http.RoundTripper = &http.Transport{}
	if proxy != "" {
		proxyURL, err := url.Parse(proxy)
		if err != nil {
			log.Printf("Warning: Invalid proxy URL %q: %v. Loader will not use a proxy.", proxy, err)
		} else {
			transport = &http.Transport{Proxy: http.ProxyURL(proxyURL)}
		}
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Loader{
		client: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
	}
}

// NewWithClient wraps an existing client, mostly for tests.
func NewWithClient(client *http.Client) *Loader {
	return &Loader{client: client}
}

// Load returns the raw body of source. Sources starting with http:// or
// https:// are fetched; anything else is read from disk.
func (l *Loader) Load(ctx context.Context, source string) ([]byte, error) {
	if isRemote(source) {
		return l.fetch(ctx, source)
	}
	b, err := os.ReadFile(source)
	if err != nil {
		return nil, &FetchError{Kind: KindTransport, Source: source, Err: err}
	}
	return b, nil
}

func (l *Loader) fetch(ctx context.Context, source string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, &FetchError{Kind: KindTransport, Source: source, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, &FetchError{Kind: KindTransport, Source: source, Err: fmt.Errorf("http request failed: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{Kind: KindHTTPStatus, Source: source, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Kind: KindTransport, Source: source, Err: fmt.Errorf("failed to read response body: %w", err)}
	}
	return body, nil
}

// LoadObject loads source and decodes it into v.
func (l *Loader) LoadObject(ctx context.Context, source string, v any) error {
	body, err := l.Load(ctx, source)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return &FetchError{Kind: KindDecode, Source: source, Err: err}
	}
	return nil
}

// LoadRecords loads source as a JSON array of T. Order is preserved.
func LoadRecords[T any](ctx context.Context, l *Loader, source string) ([]T, error) {
	var records []T
	if err := l.LoadObject(ctx, source, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func isRemote(source string) bool {
	s := strings.ToLower(source)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
