package github

import "time"

// UnknownRepo is the placeholder repository name for events that carry
// no repository reference.
const UnknownRepo = "unknown"

// Profile is the subset of a GitHub user profile the summarizer consumes.
type Profile struct {
	Login       string    `json:"login"`
	Name        string    `json:"name,omitempty"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	Followers   int       `json:"followers"`
	PublicRepos int       `json:"public_repos"`
	CreatedAt   time.Time `json:"created_at"`
}

// DisplayName returns the profile's display name, falling back to the login.
func (p Profile) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Login
}

// Repository is a public repository owned by the user.
// Size is in the API's native units (kilobytes).
type Repository struct {
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	Description string    `json:"description,omitempty"`
	Language    string    `json:"language,omitempty"`
	Stars       int       `json:"stars"`
	Forks       int       `json:"forks"`
	Size        int       `json:"size"`
	PushedAt    time.Time `json:"pushed_at,omitempty"`
}

// EventKind is the normalized type tag of a public activity event.
// Unrecognized API types pass through as their raw name.
type EventKind string

const (
	KindPush          EventKind = "push"
	KindPullRequest   EventKind = "pull-request"
	KindIssue         EventKind = "issue"
	KindIssueComment  EventKind = "issue-comment"
	KindReview        EventKind = "review"
	KindReviewComment EventKind = "review-comment"
	KindCommitComment EventKind = "commit-comment"
	KindCreate        EventKind = "create"
	KindDelete        EventKind = "delete"
	KindFork          EventKind = "fork"
	KindStar          EventKind = "star"
	KindRelease       EventKind = "release"
	KindPublic        EventKind = "public"
	KindMember        EventKind = "member"
	KindWiki          EventKind = "wiki"
)

// Event is the normalized form of a single public activity event.
// CreatedAt is the zero time when the upstream payload had no usable
// timestamp; such events still count toward kind totals but contribute
// nothing to hour or day statistics.
type Event struct {
	Kind      EventKind `json:"kind"`
	Repo      string    `json:"repo"`
	CreatedAt time.Time `json:"created_at,omitempty"`

	// Kind-specific payload fields.
	CommitCount int    `json:"commit_count,omitempty"` // push
	Title       string `json:"title,omitempty"`        // pull-request, issue
	RefType     string `json:"ref_type,omitempty"`     // create, delete
}

// WeeklyCommits is one week of commit activity for a repository.
type WeeklyCommits struct {
	Week  time.Time `json:"week"`
	Total int       `json:"total"`
	Days  []int     `json:"days"`
}

// UserData bundles everything a summary needs about one user.
type UserData struct {
	Profile      Profile
	Events       []Event
	Repositories []Repository
}
