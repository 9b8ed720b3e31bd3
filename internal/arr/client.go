package arr

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/patrickmn/go-cache"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

const defaultTimeout = 30 * time.Second

// maxErrorBody caps how much of an error response is kept in StatusError.
const maxErrorBody = 512

// Client is an HTTP client for the Radarr/Sonarr v3 API. It is safe for
// concurrent use by batch jobs.
type Client struct {
	backend    *Backend
	httpClient *http.Client
	log        *slog.Logger

	limiter *rate.Limiter // nil: unlimited
	lookups *cache.Cache  // nil: lookups are not cached

	breakerFailures uint32
	breakerCooldown time.Duration
	breaker         *gobreaker.CircuitBreaker[struct{}] // nil: disabled
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient = &http.Client{Timeout: d}
		}
	}
}

// WithLogger sets the logger for request tracing.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithRateLimit caps requests per second across all callers of the client.
// A non-positive rate leaves requests unlimited.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *Client) {
		if perSecond <= 0 {
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// WithLookupCache keeps lookup results for ttl, so batch jobs for episodes
// of one series look it up once.
func WithLookupCache(ttl time.Duration) Option {
	return func(c *Client) {
		if ttl > 0 {
			c.lookups = cache.New(ttl, 2*ttl)
		}
	}
}

// WithCircuitBreaker stops calling the organizer after failures consecutive
// transport or 5xx errors, failing fast with ErrUnavailable until cooldown
// has passed. Zero failures disables it.
func WithCircuitBreaker(failures uint32, cooldown time.Duration) Option {
	return func(c *Client) {
		c.breakerFailures = failures
		c.breakerCooldown = cooldown
	}
}

// NewClient creates a client for the given backend.
func NewClient(b *Backend, opts ...Option) *Client {
	c := &Client{
		backend: b,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With("component", "arr", "arr", b.Kind.String())
	if c.breakerFailures > 0 {
		c.breaker = c.newBreaker()
	}
	return c
}

func (c *Client) newBreaker() *gobreaker.CircuitBreaker[struct{}] {
	failures := c.breakerFailures
	return gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "arr-" + c.backend.Kind.String(),
		MaxRequests: 1,
		Timeout:     c.breakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || !organizerDown(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.log.Warn("circuit breaker state change", "breaker", name, "from", from.String(), "to", to.String())
		},
	})
}

// organizerDown reports whether err means the organizer could not serve the
// request at all, as opposed to rejecting it.
func organizerDown(err error) bool {
	var ce *callerError
	if errors.As(err, &ce) {
		return false
	}
	if errors.Is(err, ErrUnavailable) {
		return true
	}
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode >= http.StatusInternalServerError
}

// Backend returns the profile the client was built for.
func (c *Client) Backend() *Backend {
	return c.backend
}

// Lookup searches the organizer by external id term ("tmdb:157336").
func (c *Client) Lookup(ctx context.Context, term string) ([]LookupItem, error) {
	if c.lookups != nil {
		if cached, ok := c.lookups.Get(term); ok {
			c.log.Debug("lookup cache hit", "term", term)
			return cached.([]LookupItem), nil
		}
	}

	var items []LookupItem
	err := c.do(ctx, http.MethodGet, c.backend.LookupPath(), url.Values{"term": {term}}, nil, &items)
	if err != nil {
		return nil, fmt.Errorf("lookup %s: %w", term, err)
	}
	if c.lookups != nil {
		c.lookups.Set(term, items, cache.DefaultExpiration)
	}
	return items, nil
}

// Parse asks the organizer to parse a free-text title.
func (c *Client) Parse(ctx context.Context, title string) (*ParseResult, error) {
	var result ParseResult
	err := c.do(ctx, http.MethodGet, "/api/v3/parse", url.Values{"title": {title}}, nil, &result)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", title, err)
	}
	return &result, nil
}

// PreviewRename returns the organizer's proposed names for the entity
// (and season, for series) of id.
func (c *Client) PreviewRename(ctx context.Context, id Identity) ([]RenameCandidate, error) {
	var candidates []RenameCandidate
	err := c.do(ctx, http.MethodGet, "/api/v3/rename", c.backend.RenameQuery(id), nil, &candidates)
	if err != nil {
		return nil, fmt.Errorf("preview rename: %w", err)
	}
	return candidates, nil
}

// Command queues a command. The organizer runs it asynchronously; the
// returned status only acknowledges the queueing.
func (c *Client) Command(ctx context.Context, cmd Command) (*CommandStatus, error) {
	var status CommandStatus
	if err := c.do(ctx, http.MethodPost, "/api/v3/command", nil, cmd, &status); err != nil {
		return nil, fmt.Errorf("command %s: %w", cmd.Name, err)
	}
	return &status, nil
}

// do sends a request through the rate limiter and circuit breaker.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, result any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit: %w", err)
		}
	}
	if c.breaker == nil {
		return c.send(ctx, method, path, query, body, result)
	}

	_, err := c.breaker.Execute(func() (struct{}, error) {
		err := c.send(ctx, method, path, query, body, result)
		if err != nil && ctx.Err() != nil && errors.Is(err, ctx.Err()) {
			return struct{}{}, &callerError{err: err}
		}
		return struct{}{}, err
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	var ce *callerError
	if errors.As(err, &ce) {
		return ce.err
	}
	return err
}

// callerError marks a failure caused by the caller's own context ending.
type callerError struct {
	err error
}

func (e *callerError) Error() string { return e.err.Error() }
func (e *callerError) Unwrap() error { return e.err }

// send executes a request and decodes the JSON response into result.
// Empty or undecodable bodies leave result at its zero value: missing data
// means "not found" to callers, not failure.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, body, result any) error {
	reqURL := c.backend.BaseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", c.backend.APIKey)
	req.Header.Set("Accept", "application/json")

	c.log.Debug("request", "method", method, "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(data)),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %w", ErrUnavailable, err)
	}
	if result == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, result); err != nil {
		c.log.Warn("ignoring malformed response", "method", method, "path", path, "error", err)
		resetZero(result)
	}
	return nil
}

// resetZero clears a partially decoded result.
func resetZero(result any) {
	if v := reflect.ValueOf(result); v.Kind() == reflect.Pointer && !v.IsNil() {
		v.Elem().SetZero()
	}
}
