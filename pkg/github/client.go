// Package github fetches public GitHub activity for a user: profile,
// recent events, and owned repositories.
//
// The client wraps the REST v3 API via google/go-github. Responses are
// normalized into small value types so everything downstream (analysis,
// summaries, rendering) stays decoupled from the upstream schema.
//
// Failures map onto the application's coded errors: a missing user is
// NOT_FOUND, an exhausted quota is RATE_LIMITED with reset information,
// and everything else surfaces as a network or upstream error. Nothing
// is retried here; callers decide what a failure means.
package github

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"

	apperrors "github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/errors"
	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/observability"
)

const (
	// requestTimeout bounds every upstream call.
	requestTimeout = 30 * time.Second

	// userAgent identifies this service to the API.
	userAgent = "activitycard"

	// eventsPerPage is the size of the single events page fetched per user.
	eventsPerPage = 100

	// reposPerPage is the size of the single repository page fetched per user.
	reposPerPage = 100
)

// Client fetches public user data from the GitHub REST API.
type Client struct {
	api *gh.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at an alternate API root. Used by tests
// and GitHub Enterprise deployments. The path is normalized to end with
// a trailing slash as the underlying library requires.
func WithBaseURL(raw string) Option {
	return func(c *Client) {
		u, err := url.Parse(raw)
		if err != nil {
			return
		}
		if !strings.HasSuffix(u.Path, "/") {
			u.Path += "/"
		}
		c.api.BaseURL = u
	}
}

// NewClient creates a GitHub API client. With an empty token the client
// is unauthenticated and subject to the low anonymous rate limit.
func NewClient(token string, opts ...Option) *Client {
	base := http.DefaultTransport
	if token != "" {
		base = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
			Base:   base,
		}
	}
	httpClient := &http.Client{
		Transport: &hookTransport{base: base},
		Timeout:   requestTimeout,
	}

	api := gh.NewClient(httpClient)
	api.UserAgent = userAgent

	c := &Client{api: api}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// hookTransport publishes request/response events to the observability
// registry without altering the request.
type hookTransport struct {
	base http.RoundTripper
}

func (t *hookTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	start := time.Now()
	observability.HTTP().OnRequest(ctx, req.Method, req.URL.Host, req.URL.Path)

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		observability.HTTP().OnError(ctx, req.Method, req.URL.Host, req.URL.Path, err)
		return nil, err
	}
	observability.HTTP().OnResponse(ctx, req.Method, req.URL.Host, req.URL.Path, resp.StatusCode, time.Since(start))
	return resp, nil
}

// mapError converts go-github errors into coded application errors so
// callers can switch on error codes instead of transport details.
func mapError(err error, what, username string) error {
	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) {
		retry := int(time.Until(rateErr.Rate.Reset.Time).Seconds())
		if retry < 0 {
			retry = 0
		}
		return apperrors.Wrap(apperrors.ErrCodeRateLimited,
			&apperrors.RateLimitedError{RetryAfter: retry, Message: "GitHub API rate limit exceeded"},
			"rate limited fetching %s for %s", what, username)
	}

	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		retry := 0
		if abuseErr.RetryAfter != nil {
			retry = int(abuseErr.RetryAfter.Seconds())
		}
		return apperrors.Wrap(apperrors.ErrCodeRateLimited,
			&apperrors.RateLimitedError{RetryAfter: retry, Message: "GitHub API secondary rate limit hit"},
			"rate limited fetching %s for %s", what, username)
	}

	var respErr *gh.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		switch respErr.Response.StatusCode {
		case http.StatusNotFound:
			return apperrors.Wrap(apperrors.ErrCodeNotFound, err, "user %q not found", username)
		default:
			return apperrors.Wrap(apperrors.ErrCodeUpstream, err,
				"GitHub API returned %d fetching %s for %s", respErr.Response.StatusCode, what, username)
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.Wrap(apperrors.ErrCodeTimeout, err, "timed out fetching %s for %s", what, username)
	}

	return apperrors.Wrap(apperrors.ErrCodeNetwork, err, "failed to fetch %s for %s", what, username)
}
