// Package razor talks to the Razor server's read-only collections API.
package razor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// Service defines the read operations razorctl needs from a Razor server.
type Service interface {
	Collections(ctx context.Context) ([]string, error)
	List(ctx context.Context, collection string) (gjson.Result, error)
	Get(ctx context.Context, collection, name string) (gjson.Result, error)
}

// HTTPDoer abstracts the HTTP client for easier testing.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ServiceImpl implements Service over HTTP.
type ServiceImpl struct {
	baseURL string
	client  HTTPDoer
	cache   *Cache
	retry   RetryConfig
	logger  *slog.Logger
}

// Option configures a ServiceImpl.
type Option func(*ServiceImpl)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c HTTPDoer) Option {
	return func(s *ServiceImpl) { s.client = c }
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *ServiceImpl) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithCacheTTL sets how long fetched documents are reused.
func WithCacheTTL(ttl time.Duration) Option {
	return func(s *ServiceImpl) {
		s.cache.Close()
		s.cache = NewCache(ttl)
	}
}

// WithRetryConfig overrides the retry policy for reads.
func WithRetryConfig(cfg RetryConfig) Option {
	return func(s *ServiceImpl) { s.retry = cfg }
}

const defaultCacheTTL = 2 * time.Minute

// NewService creates a client for the API rooted at baseURL, for example
// http://razor:8150/api.
func NewService(baseURL string, opts ...Option) *ServiceImpl {
	s := &ServiceImpl{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 60 * time.Second},
		cache:   NewCache(defaultCacheTTL),
		retry:   DefaultRetryConfig,
		logger:  slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelWarn})),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close releases the cache sweeper.
func (s *ServiceImpl) Close() {
	s.cache.Close()
}

// BaseURL returns the API root.
func (s *ServiceImpl) BaseURL() string {
	return s.baseURL
}

// Collections returns the names of the collections the server exposes.
func (s *ServiceImpl) Collections(ctx context.Context) ([]string, error) {
	doc, err := s.fetch(ctx, s.baseURL)
	if err != nil {
		return nil, err
	}
	var names []string
	doc.Get("collections").ForEach(func(_, c gjson.Result) bool {
		if name := c.Get("name").String(); name != "" {
			names = append(names, name)
		}
		return true
	})
	return names, nil
}

// List returns a collection document with its items expanded one level.
func (s *ServiceImpl) List(ctx context.Context, collection string) (gjson.Result, error) {
	if collection == "" {
		return gjson.Result{}, errors.New("collection name is required")
	}
	u := s.baseURL + "/collections/" + url.PathEscape(collection) + "?depth=1"
	return s.fetch(ctx, u)
}

// Get returns a single item of a collection.
func (s *ServiceImpl) Get(ctx context.Context, collection, name string) (gjson.Result, error) {
	if collection == "" || name == "" {
		return gjson.Result{}, errors.New("collection and item name are required")
	}
	u := s.baseURL + "/collections/" + url.PathEscape(collection) + "/" + url.PathEscape(name)
	return s.fetch(ctx, u)
}

// fetch GETs u, reusing a cached document when one is still fresh.
func (s *ServiceImpl) fetch(ctx context.Context, u string) (gjson.Result, error) {
	if doc, ok := s.cache.Get(u); ok {
		s.logger.Debug("cache hit", "url", u)
		return doc, nil
	}

	doc, err := WithRetry(ctx, s.retry, func(ctx context.Context) (gjson.Result, error) {
		return s.get(ctx, u)
	})
	if err != nil {
		return gjson.Result{}, err
	}
	s.cache.SetDefault(u, doc)
	return doc, nil
}

func (s *ServiceImpl) get(ctx context.Context, u string) (gjson.Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Debug("request failed", "url", u, "error", err)
		return gjson.Result{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("failed to read response from %s: %w", u, err)
	}
	s.logger.Debug("request done", "url", u, "status", resp.StatusCode, "bytes", len(body), "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return gjson.Result{}, newAPIError(u, resp.StatusCode, body)
	}
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, fmt.Errorf("invalid JSON from %s", u)
	}
	return gjson.ParseBytes(body), nil
}

// MatchingCollections returns the names containing pattern. An exact match
// wins over substring matches.
func MatchingCollections(names []string, pattern string) []string {
	if pattern == "" {
		return names
	}
	matches := make([]string, 0, len(names))
	for _, n := range names {
		if n == pattern {
			return []string{n}
		}
		if strings.Contains(n, pattern) {
			matches = append(matches, n)
		}
	}
	return matches
}
