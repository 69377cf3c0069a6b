package github

import (
	gh "github.com/google/go-github/v68/github"
)

// kindOf maps a raw API event type to its normalized kind.
// Types outside the known vocabulary pass through unchanged so they
// still show up in per-kind counts.
func kindOf(apiType string) EventKind {
	switch apiType {
	case "PushEvent":
		return KindPush
	case "PullRequestEvent":
		return KindPullRequest
	case "IssuesEvent":
		return KindIssue
	case "IssueCommentEvent":
		return KindIssueComment
	case "PullRequestReviewEvent":
		return KindReview
	case "PullRequestReviewCommentEvent":
		return KindReviewComment
	case "CommitCommentEvent":
		return KindCommitComment
	case "CreateEvent":
		return KindCreate
	case "DeleteEvent":
		return KindDelete
	case "ForkEvent":
		return KindFork
	case "WatchEvent":
		return KindStar
	case "ReleaseEvent":
		return KindRelease
	case "PublicEvent":
		return KindPublic
	case "MemberEvent":
		return KindMember
	case "GollumEvent":
		return KindWiki
	default:
		return EventKind(apiType)
	}
}

// Label returns a short human-readable description of the event kind,
// used when listing a project's most recent activity.
func (k EventKind) Label() string {
	switch k {
	case KindPush:
		return "Pushed commits"
	case KindPullRequest:
		return "Worked on a pull request"
	case KindIssue:
		return "Worked on an issue"
	case KindIssueComment:
		return "Commented on an issue"
	case KindReview:
		return "Reviewed a pull request"
	case KindReviewComment:
		return "Commented on a review"
	case KindCommitComment:
		return "Commented on a commit"
	case KindCreate:
		return "Created a ref"
	case KindDelete:
		return "Deleted a ref"
	case KindFork:
		return "Forked a repository"
	case KindStar:
		return "Starred a repository"
	case KindRelease:
		return "Published a release"
	case KindPublic:
		return "Made a repository public"
	case KindMember:
		return "Added a collaborator"
	case KindWiki:
		return "Updated the wiki"
	default:
		return string(k)
	}
}

// convertEvent normalizes a raw API event. Payload parse failures are
// not fatal: the event keeps its kind, repo, and timestamp and simply
// loses the kind-specific detail.
func convertEvent(ev *gh.Event) Event {
	e := Event{
		Kind:      kindOf(ev.GetType()),
		Repo:      ev.GetRepo().GetName(),
		CreatedAt: ev.GetCreatedAt().Time,
	}
	if e.Repo == "" {
		e.Repo = UnknownRepo
	}

	payload, err := ev.ParsePayload()
	if err != nil {
		return e
	}
	switch p := payload.(type) {
	case *gh.PushEvent:
		e.CommitCount = len(p.Commits)
	case *gh.PullRequestEvent:
		e.Title = p.GetPullRequest().GetTitle()
	case *gh.IssuesEvent:
		e.Title = p.GetIssue().GetTitle()
	case *gh.CreateEvent:
		e.RefType = p.GetRefType()
	case *gh.DeleteEvent:
		e.RefType = p.GetRefType()
	}
	return e
}
