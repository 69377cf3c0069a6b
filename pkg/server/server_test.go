package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/cache"
	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/config"
	apperrors "github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/errors"
	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/github"
	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/pipeline"
)

type stubSource struct {
	calls int
	data  *github.UserData
	err   error
}

func (s *stubSource) FetchUserData(ctx context.Context, username string) (*github.UserData, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.data, nil
}

func testUserData() *github.UserData {
	day := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	return &github.UserData{
		Profile: github.Profile{Login: "octocat", Name: "The Octocat"},
		Events: []github.Event{
			{Kind: github.KindPush, Repo: "octocat/hello-world", CreatedAt: day, CommitCount: 2},
		},
		Repositories: []github.Repository{
			{Name: "hello-world", FullName: "octocat/hello-world", Language: "Go", Size: 500, Stars: 42},
		},
	}
}

func newTestServer(src pipeline.Source, mutate func(*config.Config)) *Server {
	cfg := config.Default()
	if mutate != nil {
		mutate(&cfg)
	}
	logger := log.NewWithOptions(io.Discard, log.Options{})
	runner := pipeline.NewRunner(src, cache.NewMemoryCache(10), logger)
	return New(cfg, runner, logger)
}

func get(t *testing.T, srv *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not JSON: %v\n%s", err, rec.Body.String())
	}
	return resp
}

func TestCardEndpoint(t *testing.T) {
	src := &stubSource{data: testUserData()}
	srv := newTestServer(src, nil)

	rec := get(t, srv, "/?username=octocat")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != svgContentType {
		t.Errorf("Content-Type = %q", ct)
	}
	if cc := rec.Header().Get("Cache-Control"); cc != "public, max-age=14400" {
		t.Errorf("Cache-Control = %q", cc)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header missing")
	}
	if !strings.HasPrefix(rec.Body.String(), "<svg") {
		t.Errorf("body is not SVG: %.60s", rec.Body.String())
	}
}

func TestCardEndpointAlias(t *testing.T) {
	src := &stubSource{data: testUserData()}
	srv := newTestServer(src, nil)

	rec := get(t, srv, "/api/card?username=octocat&theme=dark")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestCardMissingUsername(t *testing.T) {
	src := &stubSource{data: testUserData()}
	srv := newTestServer(src, nil)

	rec := get(t, srv, "/")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	resp := decodeError(t, rec)
	if resp.Error == "" || resp.Usage == "" {
		t.Errorf("error body incomplete: %+v", resp)
	}
	if src.calls != 0 {
		t.Error("validation failures must not reach the source")
	}
}

func TestCardInvalidUsername(t *testing.T) {
	src := &stubSource{data: testUserData()}
	srv := newTestServer(src, nil)

	rec := get(t, srv, "/?username=-octo-")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if src.calls != 0 {
		t.Error("grammar failures must not reach the source")
	}
}

func TestCardUnknownTheme(t *testing.T) {
	src := &stubSource{data: testUserData()}
	srv := newTestServer(src, nil)

	rec := get(t, srv, "/?username=octocat&theme=neon")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	resp := decodeError(t, rec)
	if len(resp.AvailableThemes) == 0 {
		t.Error("available_themes missing from response")
	}
	if src.calls != 0 {
		t.Error("theme validation must precede the fetch")
	}
}

func TestCardUnknownType(t *testing.T) {
	src := &stubSource{data: testUserData()}
	srv := newTestServer(src, nil)

	rec := get(t, srv, "/?username=octocat&type=banner")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	resp := decodeError(t, rec)
	if len(resp.AvailableTypes) == 0 {
		t.Error("available_types missing from response")
	}
}

func TestCardNotFoundJSON(t *testing.T) {
	src := &stubSource{err: apperrors.New(apperrors.ErrCodeNotFound, "user %q not found", "ghost")}
	srv := newTestServer(src, nil)

	rec := get(t, srv, "/?username=ghost")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	resp := decodeError(t, rec)
	if !strings.Contains(resp.Error, "ghost") {
		t.Errorf("error = %q", resp.Error)
	}
}

func TestCardNotFoundSVG(t *testing.T) {
	src := &stubSource{err: apperrors.New(apperrors.ErrCodeNotFound, "user %q not found", "ghost")}
	srv := newTestServer(src, func(c *config.Config) { c.SVGErrors = true })

	rec := get(t, srv, "/?username=ghost")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != svgContentType {
		t.Errorf("Content-Type = %q", ct)
	}
	if cc := rec.Header().Get("Cache-Control"); cc != "no-cache" {
		t.Errorf("Cache-Control = %q", cc)
	}
	if !strings.Contains(rec.Body.String(), "Something went wrong") {
		t.Errorf("error card missing: %.80s", rec.Body.String())
	}
}

func TestCardRateLimited(t *testing.T) {
	src := &stubSource{err: apperrors.Wrap(apperrors.ErrCodeRateLimited,
		&apperrors.RateLimitedError{RetryAfter: 42}, "list events for octocat")}
	srv := newTestServer(src, nil)

	rec := get(t, srv, "/?username=octocat")

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d", rec.Code)
	}
	resp := decodeError(t, rec)
	if !strings.Contains(resp.Error, "rate limit") {
		t.Errorf("error = %q", resp.Error)
	}
	if resp.RetryAfter != 42 {
		t.Errorf("retry_after_seconds = %d, want 42", resp.RetryAfter)
	}
	if rec.Header().Get("Retry-After") != "42" {
		t.Errorf("Retry-After header = %q", rec.Header().Get("Retry-After"))
	}
}

func TestCardUpstreamFailure(t *testing.T) {
	src := &stubSource{err: apperrors.New(apperrors.ErrCodeUpstream, "github responded 502")}
	srv := newTestServer(src, nil)

	rec := get(t, srv, "/?username=octocat")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	resp := decodeError(t, rec)
	if strings.Contains(resp.Error, "502") {
		t.Error("internal details leaked into the response")
	}
}

func TestCardCacheSeconds(t *testing.T) {
	src := &stubSource{data: testUserData()}
	srv := newTestServer(src, nil)

	tests := []struct {
		param string
		want  string
	}{
		{"600", "public, max-age=600"},
		{"999999", "public, max-age=86400"},
		{"-5", "public, max-age=14400"},
		{"soon", "public, max-age=14400"},
	}
	for _, tt := range tests {
		rec := get(t, srv, "/?username=octocat&cache_seconds="+tt.param)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d for %q", rec.Code, tt.param)
		}
		if cc := rec.Header().Get("Cache-Control"); cc != tt.want {
			t.Errorf("cache_seconds=%s: Cache-Control = %q, want %q", tt.param, cc, tt.want)
		}
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(&stubSource{data: testUserData()}, nil)

	rec := get(t, srv, "/health")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("health is not JSON: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status = %q", body["status"])
	}
	if body["version"] == "" {
		t.Error("version missing")
	}
}

func TestRequestIDPassthrough(t *testing.T) {
	srv := newTestServer(&stubSource{data: testUserData()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "upstream-id")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "upstream-id" {
		t.Errorf("X-Request-ID = %q, want upstream-id", got)
	}
}

func TestStartShutdown(t *testing.T) {
	srv := newTestServer(&stubSource{data: testUserData()}, func(c *config.Config) {
		c.Addr = "127.0.0.1:0"
		c.ShutdownSeconds = 1
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Start returned %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRecovererConvertsPanics(t *testing.T) {
	srv := newTestServer(&stubSource{data: testUserData()}, nil)

	handler := srv.recoverer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d", rec.Code)
	}
	resp := decodeError(t, rec)
	if resp.Error != "internal error" {
		t.Errorf("error = %q", resp.Error)
	}
}
