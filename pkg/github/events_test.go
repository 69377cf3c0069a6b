package github

import (
	"encoding/json"
	"testing"
	"time"

	gh "github.com/google/go-github/v68/github"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		apiType string
		want    EventKind
	}{
		{"PushEvent", KindPush},
		{"PullRequestEvent", KindPullRequest},
		{"IssuesEvent", KindIssue},
		{"IssueCommentEvent", KindIssueComment},
		{"PullRequestReviewEvent", KindReview},
		{"PullRequestReviewCommentEvent", KindReviewComment},
		{"CommitCommentEvent", KindCommitComment},
		{"CreateEvent", KindCreate},
		{"DeleteEvent", KindDelete},
		{"ForkEvent", KindFork},
		{"WatchEvent", KindStar},
		{"ReleaseEvent", KindRelease},
		{"PublicEvent", KindPublic},
		{"MemberEvent", KindMember},
		{"GollumEvent", KindWiki},
		{"SponsorshipEvent", EventKind("SponsorshipEvent")},
	}

	for _, tt := range tests {
		t.Run(tt.apiType, func(t *testing.T) {
			if got := kindOf(tt.apiType); got != tt.want {
				t.Errorf("kindOf(%q) = %v, want %v", tt.apiType, got, tt.want)
			}
		})
	}
}

func TestEventKindLabel(t *testing.T) {
	if got := KindPush.Label(); got != "Pushed commits" {
		t.Errorf("KindPush.Label() = %q", got)
	}
	if got := KindReview.Label(); got != "Reviewed a pull request" {
		t.Errorf("KindReview.Label() = %q", got)
	}
	// Passthrough kinds label as their raw type name.
	if got := EventKind("SponsorshipEvent").Label(); got != "SponsorshipEvent" {
		t.Errorf("passthrough Label() = %q", got)
	}
}

func rawPayload(t *testing.T, s string) json.RawMessage {
	t.Helper()
	return json.RawMessage(s)
}

func TestConvertEvent(t *testing.T) {
	ts := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	t.Run("push event with commits", func(t *testing.T) {
		payload := rawPayload(t, `{"commits":[{"sha":"a"},{"sha":"b"},{"sha":"c"}]}`)
		ev := &gh.Event{
			Type:       gh.Ptr("PushEvent"),
			Repo:       &gh.Repository{Name: gh.Ptr("octocat/hello-world")},
			CreatedAt:  &gh.Timestamp{Time: ts},
			RawPayload: &payload,
		}

		got := convertEvent(ev)
		if got.Kind != KindPush {
			t.Errorf("Kind = %v, want %v", got.Kind, KindPush)
		}
		if got.Repo != "octocat/hello-world" {
			t.Errorf("Repo = %q", got.Repo)
		}
		if !got.CreatedAt.Equal(ts) {
			t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, ts)
		}
		if got.CommitCount != 3 {
			t.Errorf("CommitCount = %d, want 3", got.CommitCount)
		}
	})

	t.Run("pull request event carries title", func(t *testing.T) {
		payload := rawPayload(t, `{"action":"opened","pull_request":{"title":"Add streak support"}}`)
		ev := &gh.Event{
			Type:       gh.Ptr("PullRequestEvent"),
			Repo:       &gh.Repository{Name: gh.Ptr("octocat/hello-world")},
			CreatedAt:  &gh.Timestamp{Time: ts},
			RawPayload: &payload,
		}

		got := convertEvent(ev)
		if got.Kind != KindPullRequest {
			t.Errorf("Kind = %v", got.Kind)
		}
		if got.Title != "Add streak support" {
			t.Errorf("Title = %q", got.Title)
		}
	})

	t.Run("issues event carries title", func(t *testing.T) {
		payload := rawPayload(t, `{"action":"opened","issue":{"title":"Crash on empty input"}}`)
		ev := &gh.Event{
			Type:       gh.Ptr("IssuesEvent"),
			CreatedAt:  &gh.Timestamp{Time: ts},
			RawPayload: &payload,
		}

		got := convertEvent(ev)
		if got.Title != "Crash on empty input" {
			t.Errorf("Title = %q", got.Title)
		}
	})

	t.Run("create event carries ref type", func(t *testing.T) {
		payload := rawPayload(t, `{"ref_type":"repository"}`)
		ev := &gh.Event{
			Type:       gh.Ptr("CreateEvent"),
			CreatedAt:  &gh.Timestamp{Time: ts},
			RawPayload: &payload,
		}

		got := convertEvent(ev)
		if got.RefType != "repository" {
			t.Errorf("RefType = %q", got.RefType)
		}
	})

	t.Run("missing repo becomes unknown", func(t *testing.T) {
		ev := &gh.Event{
			Type:      gh.Ptr("PublicEvent"),
			CreatedAt: &gh.Timestamp{Time: ts},
		}

		got := convertEvent(ev)
		if got.Repo != UnknownRepo {
			t.Errorf("Repo = %q, want %q", got.Repo, UnknownRepo)
		}
	})

	t.Run("missing timestamp stays zero", func(t *testing.T) {
		ev := &gh.Event{Type: gh.Ptr("WatchEvent")}

		got := convertEvent(ev)
		if !got.CreatedAt.IsZero() {
			t.Errorf("CreatedAt = %v, want zero", got.CreatedAt)
		}
		if got.Kind != KindStar {
			t.Errorf("Kind = %v, want %v", got.Kind, KindStar)
		}
	})

	t.Run("malformed payload keeps event envelope", func(t *testing.T) {
		payload := rawPayload(t, `{"commits": "not-a-list"}`)
		ev := &gh.Event{
			Type:       gh.Ptr("PushEvent"),
			Repo:       &gh.Repository{Name: gh.Ptr("octocat/hello-world")},
			CreatedAt:  &gh.Timestamp{Time: ts},
			RawPayload: &payload,
		}

		got := convertEvent(ev)
		if got.Kind != KindPush {
			t.Errorf("Kind = %v", got.Kind)
		}
		if got.CommitCount != 0 {
			t.Errorf("CommitCount = %d, want 0", got.CommitCount)
		}
	})
}

func TestProfileDisplayName(t *testing.T) {
	p := Profile{Login: "octocat", Name: "The Octocat"}
	if got := p.DisplayName(); got != "The Octocat" {
		t.Errorf("DisplayName() = %q", got)
	}
	p.Name = ""
	if got := p.DisplayName(); got != "octocat" {
		t.Errorf("DisplayName() fallback = %q", got)
	}
}
