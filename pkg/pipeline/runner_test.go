package pipeline

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/cache"
	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/errors"
	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/github"
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
		Profile: github.Profile{
			Login:       "octocat",
			Name:        "The Octocat",
			Followers:   100,
			PublicRepos: 8,
		},
		Events: []github.Event{
			{Kind: github.KindPush, Repo: "octocat/hello-world", CreatedAt: day, CommitCount: 3},
			{Kind: github.KindPush, Repo: "octocat/hello-world", CreatedAt: day.Add(time.Hour), CommitCount: 1},
			{Kind: github.KindIssue, Repo: "octocat/spoon-knife", CreatedAt: day.Add(2 * time.Hour), Title: "Fix the thing"},
		},
		Repositories: []github.Repository{
			{Name: "hello-world", FullName: "octocat/hello-world", Language: "Go", Size: 500, Stars: 42},
			{Name: "spoon-knife", FullName: "octocat/spoon-knife", Language: "Ruby", Size: 100, Stars: 7},
		},
	}
}

func testRunner(src Source) *Runner {
	return NewRunner(src, cache.NewMemoryCache(10), log.NewWithOptions(io.Discard, log.Options{}))
}

func TestExecute(t *testing.T) {
	src := &stubSource{data: testUserData()}
	r := testRunner(src)
	defer r.Close()

	result, err := r.Execute(context.Background(), Options{Username: "octocat"})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if len(result.SVG) == 0 {
		t.Error("no SVG produced")
	}
	if !strings.HasPrefix(string(result.SVG), "<svg") {
		t.Errorf("output does not look like SVG: %.40s", result.SVG)
	}
	if result.Summary.Username != "octocat" {
		t.Errorf("summary username = %q", result.Summary.Username)
	}
	if result.Summary.TotalEvents != 3 {
		t.Errorf("TotalEvents = %d, want 3", result.Summary.TotalEvents)
	}
	if result.Stats.CacheHit {
		t.Error("first run should not hit the cache")
	}
	if result.Stats.EventCount != 3 || result.Stats.RepoCount != 2 {
		t.Errorf("stats = %+v", result.Stats)
	}
	if src.calls != 1 {
		t.Errorf("source called %d times", src.calls)
	}
}

func TestExecuteUsesCache(t *testing.T) {
	src := &stubSource{data: testUserData()}
	r := testRunner(src)

	ctx := context.Background()
	if _, err := r.Execute(ctx, Options{Username: "octocat"}); err != nil {
		t.Fatal(err)
	}

	result, err := r.Execute(ctx, Options{Username: "octocat", Theme: "dark"})
	if err != nil {
		t.Fatal(err)
	}
	if !result.Stats.CacheHit {
		t.Error("second run should hit the cache")
	}
	if src.calls != 1 {
		t.Errorf("source called %d times, want 1", src.calls)
	}
	if result.Summary.TotalEvents != 3 {
		t.Errorf("cached summary lost data: %+v", result.Summary)
	}
}

func TestExecuteCacheKeyIgnoresCase(t *testing.T) {
	src := &stubSource{data: testUserData()}
	r := testRunner(src)

	ctx := context.Background()
	if _, err := r.Execute(ctx, Options{Username: "octocat"}); err != nil {
		t.Fatal(err)
	}
	result, err := r.Execute(ctx, Options{Username: "OctoCat"})
	if err != nil {
		t.Fatal(err)
	}
	if !result.Stats.CacheHit {
		t.Error("case variants of a username should share a cache entry")
	}
}

func TestExecuteRefresh(t *testing.T) {
	src := &stubSource{data: testUserData()}
	r := testRunner(src)

	ctx := context.Background()
	if _, err := r.Execute(ctx, Options{Username: "octocat"}); err != nil {
		t.Fatal(err)
	}

	result, err := r.Execute(ctx, Options{Username: "octocat", Refresh: true})
	if err != nil {
		t.Fatal(err)
	}
	if result.Stats.CacheHit {
		t.Error("refresh should bypass the cache")
	}
	if src.calls != 2 {
		t.Errorf("source called %d times, want 2", src.calls)
	}
}

func TestExecuteCorruptCacheEntry(t *testing.T) {
	src := &stubSource{data: testUserData()}
	c := cache.NewMemoryCache(10)
	r := NewRunner(src, c, log.NewWithOptions(io.Discard, log.Options{}))

	ctx := context.Background()
	_ = c.Set(ctx, cache.SummaryKey("octocat"), []byte("not json"), 0)

	result, err := r.Execute(ctx, Options{Username: "octocat"})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if result.Stats.CacheHit {
		t.Error("corrupt entry should not count as a hit")
	}
	if src.calls != 1 {
		t.Errorf("source called %d times, want 1", src.calls)
	}
}

func TestExecuteSourceError(t *testing.T) {
	src := &stubSource{err: errors.New(errors.ErrCodeNotFound, "user %q not found", "ghost")}
	r := testRunner(src)

	_, err := r.Execute(context.Background(), Options{Username: "ghost"})
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.GetCode(err) != errors.ErrCodeNotFound {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeNotFound)
	}
}

func TestExecuteInvalidOptions(t *testing.T) {
	src := &stubSource{data: testUserData()}
	r := testRunner(src)

	_, err := r.Execute(context.Background(), Options{Username: "octocat", Theme: "neon"})
	if err == nil {
		t.Fatal("expected error")
	}
	if src.calls != 0 {
		t.Error("invalid options should fail before any fetch")
	}
}

func TestExecuteNullCache(t *testing.T) {
	src := &stubSource{data: testUserData()}
	r := NewRunner(src, nil, log.NewWithOptions(io.Discard, log.Options{}))

	ctx := context.Background()
	if _, err := r.Execute(ctx, Options{Username: "octocat"}); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Execute(ctx, Options{Username: "octocat"}); err != nil {
		t.Fatal(err)
	}
	if src.calls != 2 {
		t.Errorf("without a cache every run should fetch, got %d calls", src.calls)
	}
}

func TestSummarize(t *testing.T) {
	src := &stubSource{data: testUserData()}
	r := testRunner(src)

	s, err := r.Summarize(context.Background(), "octocat")
	if err != nil {
		t.Fatalf("Summarize error: %v", err)
	}
	if s.Username != "octocat" || s.TotalEvents != 3 {
		t.Errorf("summary = %+v", s)
	}
	if s.Narrative == "" {
		t.Error("narrative missing")
	}
}
