package portal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/time/rate"

	"college-portal-client/config"
	"college-portal-client/internal/model"
)

// Client talks to the remote portal API. It owns the session cookie jar and
// throttles outbound calls so a feed reload cannot hammer the backend.
type Client struct {
	baseURL string
	headers map[string]string
	http    *http.Client
	jar     http.CookieJar
	limiter *rate.Limiter
}

// NewClient creates a portal API client from configuration.
func NewClient(cfg *config.APIConfig) (*Client, error) {
	var transport http.RoundTripper = &http.Transport{}
	if cfg.HTTPProxy != "" {
		proxyURL, err := url.Parse(cfg.HTTPProxy)
		if err != nil {
			log.Printf("Warning: Invalid proxy URL %q: %v. Client will not use a proxy.", cfg.HTTPProxy, err)
		} else {
			transport = &http.Transport{Proxy: http.ProxyURL(proxyURL)}
		}
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		headers: cfg.Headers,
		http: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
			Jar:       jar,
		},
		jar:     jar,
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst),
	}, nil
}

// Cookies returns the session cookies currently held for the portal, so the
// session store can persist them between runs.
func (c *Client) Cookies() []*http.Cookie {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil
	}
	return c.jar.Cookies(u)
}

// SetCookies restores previously persisted session cookies.
func (c *Client) SetCookies(cookies []*http.Cookie) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return
	}
	c.jar.SetCookies(u, cookies)
}

// do issues one API call and decodes the response into out (when non-nil).
// Transport failures become NetworkError; non-2xx responses become AuthError
// for 401 and ServerError otherwise, carrying the backend message verbatim.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &NetworkError{Err: err}
	}

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request payload: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := backendError(respBody)
		if resp.StatusCode == http.StatusUnauthorized {
			return &AuthError{Message: message}
		}
		return &ServerError{Status: resp.StatusCode, Message: message}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to unmarshal api response: %w", err)
		}
	}
	return nil
}

// backendError extracts the {"error": ...} message from an error body.
func backendError(body []byte) string {
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != "" {
		return envelope.Error
	}
	return "Server error"
}

// studentEnvelope wraps auth responses, which nest the student record.
type studentEnvelope struct {
	Message string         `json:"message"`
	Student *model.Student `json:"student"`
}

// Login authenticates with a student id or phone number plus password.
func (c *Client) Login(ctx context.Context, loginID, password string) (*model.Student, error) {
	payload := map[string]string{"login_id": loginID, "password": password}
	var env studentEnvelope
	if err := c.do(ctx, http.MethodPost, "/login", payload, &env); err != nil {
		return nil, err
	}
	if env.Student == nil {
		return nil, &ServerError{Status: http.StatusOK, Message: "Server error"}
	}
	return env.Student, nil
}

// Signup registers a new student account and logs it in.
func (c *Client) Signup(ctx context.Context, profile *model.SignupProfile) (*model.Student, error) {
	var env studentEnvelope
	if err := c.do(ctx, http.MethodPost, "/signup", profile, &env); err != nil {
		return nil, err
	}
	if env.Student == nil {
		return nil, &ServerError{Status: http.StatusOK, Message: "Server error"}
	}
	return env.Student, nil
}

// DemoLogin signs in with the portal's built-in demo account.
func (c *Client) DemoLogin(ctx context.Context) (*model.Student, error) {
	var env studentEnvelope
	if err := c.do(ctx, http.MethodPost, "/demo-login", nil, &env); err != nil {
		return nil, err
	}
	if env.Student == nil {
		return nil, &ServerError{Status: http.StatusOK, Message: "Server error"}
	}
	return env.Student, nil
}

// Me returns the identity behind the current session cookie.
func (c *Client) Me(ctx context.Context) (*model.Student, error) {
	var student model.Student
	if err := c.do(ctx, http.MethodGet, "/me", nil, &student); err != nil {
		return nil, err
	}
	return &student, nil
}

// Logout invalidates the backend session. The caller treats any failure as
// non-fatal; logout is always locally effective.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/logout", nil, nil)
}

// listEnvelope covers the backend's two list shapes: outing responses use
// "requests", every order kind uses "orders".
type listEnvelope struct {
	Requests []model.ServiceRequest `json:"requests"`
	Orders   []model.ServiceRequest `json:"orders"`
}

// ListRequests fetches one kind's requests for a student, newest first as the
// backend returns them. Items are not kind-tagged on the wire; the caller
// (the feed aggregator) tags them.
func (c *Client) ListRequests(ctx context.Context, kind model.ServiceKind, studentID int64) ([]model.ServiceRequest, error) {
	path := "/" + kind.Endpoint() + "?student_id=" + strconv.FormatInt(studentID, 10)
	var env listEnvelope
	if err := c.do(ctx, http.MethodGet, path, nil, &env); err != nil {
		return nil, err
	}
	if env.Requests != nil {
		return env.Requests, nil
	}
	return env.Orders, nil
}

// itemEnvelope covers the backend's two create shapes ("request"/"order").
type itemEnvelope struct {
	Message string                `json:"message"`
	Request *model.ServiceRequest `json:"request"`
	Order   *model.ServiceRequest `json:"order"`
}

// CreateRequest submits a payload to its kind's endpoint and returns the
// backend-echoed record with id, status, and created_at assigned.
func (c *Client) CreateRequest(ctx context.Context, payload model.Payload) (*model.ServiceRequest, error) {
	kind := payload.Kind()
	var env itemEnvelope
	if err := c.do(ctx, http.MethodPost, "/"+kind.Endpoint(), payload, &env); err != nil {
		return nil, err
	}
	created := env.Request
	if created == nil {
		created = env.Order
	}
	if created == nil {
		return nil, &ServerError{Status: http.StatusOK, Message: "Server error"}
	}
	created.Kind = kind
	return created, nil
}

// DashboardStats fetches the portal-wide pending counts.
func (c *Client) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	var stats model.DashboardStats
	if err := c.do(ctx, http.MethodGet, "/dashboard/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Health probes GET /api/health, distinguishing an unreachable portal from a
// failing one in diagnostics.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}
