// Package upstream contains the clients for the third-party HTTP APIs the
// service proxies: Google Maps Platform, OpenTripMap, Open-Meteo and Mollie.
//
// Every client is configured with a base URL, an API key and an
// *http.Client. Requests carry the caller's context, are traced through an
// otelhttp transport and are counted per provider. There are no retries.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// maxBodyBytes caps how much of an upstream response is read.
const maxBodyBytes = 4 << 20

// ErrNotConfigured is returned when a client has no API key.
var ErrNotConfigured = errors.New("upstream not configured")

// Config configures one upstream client.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Metrics    *Metrics
}

// StatusError is returned when an upstream answers with a non-2xx status.
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: unexpected status %d", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Provider, e.StatusCode, e.Body)
}

// NewHTTPClient returns an http.Client with a traced transport and the
// given overall timeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   timeout,
	}
}

// Metrics counts upstream calls by provider and outcome.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates and registers the upstream metrics on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "upstream_requests_total",
				Help: "Total number of requests sent to third-party APIs.",
			},
			[]string{"provider", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "upstream_request_duration_seconds",
				Help:    "Latency of requests sent to third-party APIs.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider"},
		),
	}
	for _, c := range []prometheus.Collector{m.requests, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observe(provider, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(provider, outcome).Inc()
	m.duration.WithLabelValues(provider).Observe(d.Seconds())
}

// client is the transport shared by the provider clients.
type client struct {
	provider string
	baseURL  string
	apiKey   string
	http     *http.Client
	metrics  *Metrics
}

func newClient(provider string, cfg Config, defaultBaseURL string) client {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = defaultBaseURL
	}
	return client{
		provider: provider,
		baseURL:  strings.TrimRight(base, "/"),
		apiKey:   strings.TrimSpace(cfg.APIKey),
		http:     cfg.HTTPClient,
		metrics:  cfg.Metrics,
	}
}

func (c client) configured() bool {
	return c.apiKey != ""
}

func (c client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", c.provider, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// do sends req and returns the response body of a 2xx answer. Any other
// status becomes a *StatusError.
func (c client) do(req *http.Request) ([]byte, error) {
	start := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		c.metrics.observe(c.provider, "error", time.Since(start))
		var uerr *url.Error
		if errors.As(err, &uerr) {
			uerr.URL = redact(uerr.URL)
		}
		return nil, fmt.Errorf("%s: request failed: %w", c.provider, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		c.metrics.observe(c.provider, "error", time.Since(start))
		return nil, fmt.Errorf("%s: read response: %w", c.provider, err)
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		c.metrics.observe(c.provider, "status_"+statusClass(res.StatusCode), time.Since(start))
		return nil, &StatusError{
			Provider:   c.provider,
			StatusCode: res.StatusCode,
			Body:       truncate(strings.TrimSpace(string(body)), 512),
		}
	}
	c.metrics.observe(c.provider, "ok", time.Since(start))
	return body, nil
}

// redact masks credentials passed as query parameters.
func redact(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	for _, k := range []string{"key", "apikey"} {
		if q.Has(k) {
			q.Set(k, "REDACTED")
		}
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func statusClass(code int) string {
	return fmt.Sprintf("%dxx", code/100)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
