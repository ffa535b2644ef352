package orderworks

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/net/publicsuffix"
	"golang.org/x/time/rate"

	"github.com/stockworks/stockworks-api/internal/domain/model"
	errorsx "github.com/stockworks/stockworks-api/internal/errors"
)

const (
	// sessionRefreshInterval is how long a login is trusted before the next
	// caller refreshes it. Expiry is never extended by successful requests.
	sessionRefreshInterval = 6 * time.Hour

	// sessionCookieName is the cookie the admin API issues on login.
	sessionCookieName = "orderworks_admin_session"

	loginPath = "/api/auth/login"
	jobsPath  = "/api/jobs"

	defaultTimeout = 20 * time.Second
)

// ClientConfig captures the subset of OrderWorks admin API behaviour we need.
type ClientConfig struct {
	BaseURL  string
	Username string
	Password string
	// Timeout bounds every network call. Defaults to 20s.
	Timeout time.Duration
	// RateRPS optionally limits outbound requests per second. Zero disables it.
	RateRPS float64
	// HTTPClient overrides the lazily created client. Used in tests.
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client talks to the OrderWorks admin API. It owns one authenticated
// session: login happens lazily, expiry is checked lock-free before each
// request, and only the refresh body is serialized so at most one login is in
// flight per client.
type Client struct {
	baseURL  string
	username string
	password string
	timeout  time.Duration
	limiter  *rate.Limiter
	logger   *slog.Logger

	// mu serializes the login path only; validity checks read expiresAt
	// atomically without blocking.
	mu         sync.Mutex
	httpClient *http.Client
	expiresAt  atomic.Int64 // unix nanos; zero means no session
}

// NewClient builds an OrderWorks admin API client. An unconfigured client is
// valid to construct; every call will report NotConfigured.
func NewClient(cfg ClientConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	var limiter *rate.Limiter
	if cfg.RateRPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateRPS), 1)
	}

	logger := cfg.Logger
	if logger != nil {
		logger = logger.With("component", "orderworks_client")
	}

	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		username:   strings.TrimSpace(cfg.Username),
		password:   strings.TrimSpace(cfg.Password),
		timeout:    timeout,
		limiter:    limiter,
		logger:     logger,
		httpClient: cfg.HTTPClient,
	}
}

// IsConfigured reports whether base URL and credentials are all present.
func (c *Client) IsConfigured() bool {
	return c.baseURL != "" && c.username != "" && c.password != ""
}

// BaseURL returns the configured admin API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// sessionValid reports whether the current time is strictly before expiry.
func (c *Client) sessionValid() bool {
	return time.Now().UnixNano() < c.expiresAt.Load()
}

// getClientLocked returns the HTTP client, creating it on first use.
// Callers must hold mu or otherwise guarantee exclusive access during setup.
func (c *Client) getClientLocked() (*http.Client, error) {
	if c.httpClient == nil {
		if c.baseURL == "" {
			return nil, errorsx.NotConfigured("OrderWorks base URL is not configured.")
		}
		jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
		if err != nil {
			return nil, errorsx.Wrap(err, errorsx.ErrCodeInternal, "create cookie jar")
		}
		c.httpClient = &http.Client{
			Timeout: c.timeout,
			Jar:     jar,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		}
	}
	return c.httpClient, nil
}

// ensureSession makes sure a valid session exists, logging in when the
// current one is absent, expired, or force is set. Concurrent callers that
// discover an expired session at the same time produce a single login
// request.
func (c *Client) ensureSession(ctx context.Context, force bool) error {
	if !c.IsConfigured() {
		return errorsx.NotConfigured("OrderWorks integration is not configured.")
	}
	if !force && c.sessionValid() {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another caller may have refreshed while we waited for the lock.
	if !force && c.sessionValid() {
		return nil
	}

	client, err := c.getClientLocked()
	if err != nil {
		return err
	}

	// Drop any stale session cookie before logging in again.
	if jar, jarErr := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List}); jarErr == nil {
		client.Jar = jar
	}

	body, err := json.Marshal(map[string]string{
		"username": c.username,
		"password": c.password,
	})
	if err != nil {
		return errorsx.Wrap(err, errorsx.ErrCodeInternal, "encode login payload")
	}

	resp, err := c.post(ctx, client, loginPath, body)
	if err != nil {
		return errorsx.Wrap(err, errorsx.ErrCodeIntegration, "Failed to contact OrderWorks during login")
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode == http.StatusUnauthorized {
		return errorsx.Authentication("OrderWorks credentials were rejected.")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorsx.Integrationf("OrderWorks login failed with status %d", resp.StatusCode)
	}

	if !c.hasSessionCookie(client) {
		return errorsx.Integration("OrderWorks login did not return a session cookie.")
	}

	c.expiresAt.Store(time.Now().Add(sessionRefreshInterval).UnixNano())
	if c.logger != nil {
		c.logger.DebugContext(ctx, "orderworks session refreshed")
	}
	return nil
}

// hasSessionCookie checks the jar for the admin session cookie.
func (c *Client) hasSessionCookie(client *http.Client) bool {
	if client.Jar == nil {
		return false
	}
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return false
	}
	for _, cookie := range client.Jar.Cookies(u) {
		if cookie.Name == sessionCookieName {
			return true
		}
	}
	return false
}

func (c *Client) post(ctx context.Context, client *http.Client, path string, body []byte) (*http.Response, error) {
	if err := c.waitForRate(ctx); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return client.Do(req)
}

func (c *Client) get(ctx context.Context, client *http.Client, path string, params url.Values) (*http.Response, error) {
	if err := c.waitForRate(ctx); err != nil {
		return nil, err
	}
	target := c.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	return client.Do(req)
}

func (c *Client) waitForRate(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}

// request issues an authenticated request. On an authorization failure it
// forces exactly one re-login and reissues the request exactly once; a second
// failure is surfaced, never retried further.
func (c *Client) request(ctx context.Context, path string, params url.Values) (*http.Response, error) {
	if err := c.ensureSession(ctx, false); err != nil {
		return nil, err
	}

	c.mu.Lock()
	client, err := c.getClientLocked()
	c.mu.Unlock()
	if err != nil {
		return nil, err
	}

	resp, err := c.get(ctx, client, path, params)
	if err != nil {
		return nil, errorsx.Wrap(err, errorsx.ErrCodeIntegration, "Failed to contact OrderWorks")
	}

	if resp.StatusCode == http.StatusUnauthorized {
		drainAndClose(resp.Body)
		if err := c.ensureSession(ctx, true); err != nil {
			return nil, err
		}
		resp, err = c.get(ctx, client, path, params)
		if err != nil {
			return nil, errorsx.Wrap(err, errorsx.ErrCodeIntegration,
				"Failed to contact OrderWorks after refreshing the session")
		}
	}
	return resp, nil
}

// ListJobs fetches job records through the admin API and normalizes them to
// the uniform record shape.
func (c *Client) ListJobs(ctx context.Context, params url.Values) ([]model.OrderWorksJob, error) {
	resp, err := c.request(ctx, jobsPath, params)
	if err != nil {
		return nil, err
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errorsx.Integrationf("OrderWorks request failed with status %d", resp.StatusCode)
	}

	var payload struct {
		Jobs json.RawMessage `json:"jobs"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errorsx.Wrap(err, errorsx.ErrCodeIntegration, "OrderWorks returned invalid JSON")
	}
	// A missing key leaves Jobs nil; an explicit null arrives as the literal
	// bytes "null". Both mean the response has no job list.
	if len(payload.Jobs) == 0 || string(payload.Jobs) == "null" {
		return nil, errorsx.Integration("OrderWorks response did not include jobs.")
	}

	var raw []map[string]any
	if err := json.Unmarshal(payload.Jobs, &raw); err != nil {
		return nil, errorsx.Wrap(err, errorsx.ErrCodeIntegration, "OrderWorks response did not include jobs")
	}

	jobs := make([]model.OrderWorksJob, 0, len(raw))
	for _, entry := range raw {
		jobs = append(jobs, model.NormalizeOrderWorksJob(entry))
	}
	return jobs, nil
}

// drainAndClose discards any unread body so the connection can be reused.
func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
