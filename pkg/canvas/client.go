// Package canvas is a read-only client for the Canvas LMS REST API.
// It fetches the caller's courses, assignments and enrollment grades with
// bounded concurrency, rate limiting and retries, and degrades per-course
// failures to empty lists so one bad course never sinks a whole sync.
package canvas

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	userAgent = "EaseBoard-Canvas-Integration/1.0"
	perPage   = "100"

	maxRateLimitWait = 60 * time.Second
)

var (
	// ErrInvalidToken is returned on HTTP 401, the token was rejected.
	ErrInvalidToken = errors.New("canvas: invalid API token")

	// ErrForbidden is returned on HTTP 403, the token lacks permissions.
	ErrForbidden = errors.New("canvas: insufficient permissions")

	// errNotFound is internal, callers treat missing endpoints as empty.
	errNotFound = errors.New("canvas: not found")
)

// Options tunes a Client. Zero values fall back to sane defaults.
type Options struct {
	// Timeout is the per-request timeout.
	Timeout time.Duration

	// RetryAttempts is the number of tries for a failing request.
	RetryAttempts int

	// MaxConcurrent bounds parallel course fetches in FetchAll.
	MaxConcurrent int

	// RateLimit caps outbound requests per second.
	RateLimit float64

	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
}

func (o *Options) withDefaults() {
	if o.Timeout == 0 {
		o.Timeout = 30 * time.Second
	}
	if o.RetryAttempts == 0 {
		o.RetryAttempts = 3
	}
	if o.MaxConcurrent == 0 {
		o.MaxConcurrent = 10
	}
	if o.RateLimit == 0 {
		o.RateLimit = 5
	}
	if o.HTTPClient == nil {
		o.HTTPClient = &http.Client{Timeout: o.Timeout}
	}
}

// Client talks to one Canvas instance with one token.
type Client struct {
	baseURL       string
	token         string
	httpClient    *http.Client
	limiter       *rate.Limiter
	retryAttempts int
	maxConcurrent int

	// sleep is swapped out in tests to avoid real backoff waits.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewClient builds a client for the given instance URL and API token.
func NewClient(canvasURL, token string, opts Options) *Client {
	opts.withDefaults()

	return &Client{
		baseURL:       strings.TrimRight(canvasURL, "/") + "/api/v1",
		token:         token,
		httpClient:    opts.HTTPClient,
		limiter:       rate.NewLimiter(rate.Limit(opts.RateLimit), opts.MaxConcurrent),
		retryAttempts: opts.RetryAttempts,
		maxConcurrent: opts.MaxConcurrent,
		sleep:         sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// get fetches a Canvas endpoint into out with retry and backoff.
// 401 and 403 fail immediately. 404 returns errNotFound. 429 and
// transport errors back off exponentially, capped at maxRateLimitWait.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	reqURL := c.baseURL + endpoint
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	var lastErr error
	for attempt := 0; attempt < c.retryAttempts; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+c.token)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("User-Agent", userAgent)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if serr := c.sleep(ctx, backoff(attempt)); serr != nil {
				return serr
			}
			continue
		}

		switch resp.StatusCode {
		case http.StatusOK:
			err = json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			if err != nil {
				return fmt.Errorf("canvas: decode %s: %w", endpoint, err)
			}
			return nil

		case http.StatusUnauthorized:
			resp.Body.Close()
			return ErrInvalidToken

		case http.StatusForbidden:
			resp.Body.Close()
			return ErrForbidden

		case http.StatusNotFound:
			resp.Body.Close()
			return errNotFound

		case http.StatusTooManyRequests:
			resp.Body.Close()
			lastErr = fmt.Errorf("canvas: rate limited on %s", endpoint)
			if serr := c.sleep(ctx, backoff(attempt)); serr != nil {
				return serr
			}
			continue

		default:
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			resp.Body.Close()
			lastErr = fmt.Errorf("canvas: %s returned %d: %s", endpoint, resp.StatusCode, body)
			if serr := c.sleep(ctx, backoff(attempt)); serr != nil {
				return serr
			}
			continue
		}
	}

	return fmt.Errorf("canvas: %s failed after %d attempts: %w", endpoint, c.retryAttempts, lastErr)
}

func backoff(attempt int) time.Duration {
	d := time.Duration(1<<uint(attempt)) * time.Second
	if d > maxRateLimitWait {
		d = maxRateLimitWait
	}
	return d
}

// Validate checks the token by fetching the caller's own user record.
func (c *Client) Validate(ctx context.Context) *ValidationResult {
	var user User
	err := c.get(ctx, "/users/self", nil, &user)
	if err != nil {
		if errors.Is(err, errNotFound) {
			err = errors.New("canvas: user endpoint not found")
		}
		return &ValidationResult{Valid: false, ErrorMessage: err.Error()}
	}

	return &ValidationResult{Valid: true, User: &user}
}

// Courses fetches the caller's active courses.
func (c *Client) Courses(ctx context.Context) ([]Course, error) {
	params := url.Values{
		"enrollment_state": []string{"active"},
		"per_page":         []string{perPage},
		"include[]":        []string{"teachers", "term", "total_scores"},
	}

	var courses []Course
	if err := c.get(ctx, "/courses", params, &courses); err != nil {
		if errors.Is(err, errNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return courses, nil
}

// CourseAssignments fetches a course's assignments with the caller's
// submissions included.
func (c *Client) CourseAssignments(ctx context.Context, courseID int64) ([]Assignment, error) {
	params := url.Values{
		"per_page":  []string{perPage},
		"include[]": []string{"submission"},
	}

	var assignments []Assignment
	endpoint := fmt.Sprintf("/courses/%d/assignments", courseID)
	if err := c.get(ctx, endpoint, params, &assignments); err != nil {
		if errors.Is(err, errNotFound) {
			return nil, nil
		}
		return nil, err
	}

	for i := range assignments {
		assignments[i].CourseID = courseID
	}
	return assignments, nil
}

// CourseEnrollments fetches the caller's enrollments in a course with
// grades included.
func (c *Client) CourseEnrollments(ctx context.Context, courseID int64) ([]Enrollment, error) {
	params := url.Values{
		"user_id":   []string{"self"},
		"include[]": []string{"grades"},
	}

	var enrollments []Enrollment
	endpoint := fmt.Sprintf("/courses/%d/enrollments", courseID)
	if err := c.get(ctx, endpoint, params, &enrollments); err != nil {
		if errors.Is(err, errNotFound) {
			return nil, nil
		}
		return nil, err
	}

	for i := range enrollments {
		enrollments[i].CourseID = courseID
	}
	return enrollments, nil
}
