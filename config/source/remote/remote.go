// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package remote provides a config source whose document is fetched over HTTP.
package remote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"path"
	"time"

	"github.com/z5labs/typedconfig/config/source"
	"github.com/z5labs/typedconfig/internal/noop"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sony/gobreaker"
)

type options struct {
	name       string
	timeout    time.Duration
	rt         http.RoundTripper
	logHandler slog.Handler

	retryMax int
	waitMin  time.Duration
	waitMax  time.Duration

	tripAfter   uint32
	openTimeout time.Duration
}

// Option configures a Client.
type Option func(*options)

// Name labels every log record of the Client.
func Name(s string) Option {
	return func(o *options) {
		o.name = s
	}
}

// Timeout bounds every single request attempt.
func Timeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// RoundTripper replaces http.DefaultTransport.
func RoundTripper(rt http.RoundTripper) Option {
	return func(o *options) {
		o.rt = rt
	}
}

// LogHandler sets the slog.Handler requests and retries are logged to.
// By default nothing is logged.
func LogHandler(h slog.Handler) Option {
	return func(o *options) {
		o.logHandler = h
	}
}

// RetryMax is the number of times a failed request is retried.
func RetryMax(n int) Option {
	return func(o *options) {
		o.retryMax = n
	}
}

// RetryWait bounds the exponential backoff between retries.
func RetryWait(waitMin, waitMax time.Duration) Option {
	return func(o *options) {
		o.waitMin = waitMin
		o.waitMax = waitMax
	}
}

// TripAfter opens a circuit breaker after n consecutive failed requests.
// While the circuit is open requests fail immediately with
// gobreaker.ErrOpenState. A zero n disables the circuit breaker.
func TripAfter(n uint32) Option {
	return func(o *options) {
		o.tripAfter = n
	}
}

// OpenStateTimeout is how long the circuit stays open before letting a
// request through again.
func OpenStateTimeout(d time.Duration) Option {
	return func(o *options) {
		o.openTimeout = d
	}
}

// StatusError occurs when the config document could not be fetched
// because the server responded with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
}

// Error implements the error interface.
func (e StatusError) Error() string {
	return fmt.Sprintf("unexpected status fetching config from %s: %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// UnsupportedContentTypeError occurs when the fetched document is
// neither JSON nor YAML.
type UnsupportedContentTypeError struct {
	URL         string
	ContentType string
}

// Error implements the error interface.
func (e UnsupportedContentTypeError) Error() string {
	return fmt.Sprintf("unsupported config content type from %s: %q", e.URL, e.ContentType)
}

// Client fetches config documents.
type Client struct {
	log *slog.Logger
	rc  *retryablehttp.Client
}

// NewClient configures a Client. By default failed requests are retried
// up to 4 times with a backoff between 100ms and 5s.
func NewClient(opts ...Option) *Client {
	o := &options{
		rt:         http.DefaultTransport,
		logHandler: noop.LogHandler{},
		retryMax:   4,
		waitMin:    100 * time.Millisecond,
		waitMax:    5 * time.Second,
	}
	for _, opt := range opts {
		opt(o)
	}

	logger := slog.New(o.logHandler)
	if o.name != "" {
		logger = logger.With(slog.String("remote_source", o.name))
	}

	var rt http.RoundTripper = &logRoundTripper{
		base: o.rt,
		log:  logger,
	}
	if o.tripAfter > 0 {
		rt = &circuitRoundTripper{
			base: rt,
			cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
				Name:    o.name,
				Timeout: o.openTimeout,
				ReadyToTrip: func(counts gobreaker.Counts) bool {
					return counts.ConsecutiveFailures >= o.tripAfter
				},
				OnStateChange: func(name string, from, to gobreaker.State) {
					switch to {
					case gobreaker.StateOpen:
						logger.Error("circuit has been opened")
					case gobreaker.StateHalfOpen:
						logger.Warn("circuit is now half open and letting a request through")
					case gobreaker.StateClosed:
						logger.Info("circuit has been closed")
					}
				},
			}),
		}
	}

	rc := &retryablehttp.Client{
		HTTPClient: &http.Client{
			Timeout:   o.timeout,
			Transport: rt,
		},
		Logger:       logger,
		RetryWaitMin: o.waitMin,
		RetryWaitMax: o.waitMax,
		RetryMax:     o.retryMax,
		CheckRetry:   checkRetry,
		Backoff:      retryablehttp.DefaultBackoff,
		ErrorHandler: retryablehttp.PassthroughErrorHandler,
	}
	return &Client{
		log: logger,
		rc:  rc,
	}
}

func checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return false, err
	}
	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

// Fetch downloads the document at url and decodes it into a source.Map.
//
// The format is chosen by the response Content-Type, falling back to the
// extension of the URL path for generic content types.
func (c *Client) Fetch(ctx context.Context, url string) (source.Map, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9, */*;q=0.1")

	resp, err := c.rc.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "failed to fetch config", slog.String("url", url), slog.Any("error", err))
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	switch format(resp.Header.Get("Content-Type"), req.URL.Path) {
	case "json":
		return source.FromJson(resp.Body)
	case "yaml":
		return source.FromYaml(resp.Body)
	default:
		resp.Body.Close()
		return nil, UnsupportedContentTypeError{URL: url, ContentType: resp.Header.Get("Content-Type")}
	}
}

// Fetch is shorthand for NewClient(opts...).Fetch(ctx, url).
func Fetch(ctx context.Context, url string, opts ...Option) (source.Map, error) {
	return NewClient(opts...).Fetch(ctx, url)
}

func format(contentType, urlPath string) string {
	mediaType, _, _ := mime.ParseMediaType(contentType)
	switch mediaType {
	case "application/json":
		return "json"
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return "yaml"
	case "", "text/plain", "application/octet-stream":
		switch path.Ext(urlPath) {
		case ".json":
			return "json"
		case ".yaml", ".yml":
			return "yaml"
		}
	}
	return ""
}

type logRoundTripper struct {
	base http.RoundTripper
	log  *slog.Logger
}

func (rt *logRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	start := time.Now()
	rt.log.DebugContext(
		ctx,
		"request sent",
		slog.String("url", req.URL.String()),
	)
	resp, err := rt.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	rt.log.DebugContext(
		ctx,
		"response received",
		slog.String("url", req.URL.String()),
		slog.Int("status_code", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)
	return resp, nil
}

type serverError struct {
	resp *http.Response
}

func (e serverError) Error() string {
	return fmt.Sprintf("server error: %d", e.resp.StatusCode)
}

type circuitRoundTripper struct {
	base http.RoundTripper
	cb   *gobreaker.CircuitBreaker
}

// RoundTrip counts transport errors and 5xx responses against the
// circuit. 5xx responses are still returned to the caller.
func (rt *circuitRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	v, err := rt.cb.Execute(func() (interface{}, error) {
		resp, err := rt.base.RoundTrip(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= 500 {
			return resp, serverError{resp: resp}
		}
		return resp, nil
	})

	var serr serverError
	if errors.As(err, &serr) {
		return serr.resp, nil
	}
	if err != nil {
		return nil, err
	}
	return v.(*http.Response), nil
}
