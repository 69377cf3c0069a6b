package github

import (
	"context"
	"errors"

	gh "github.com/google/go-github/v68/github"
	"golang.org/x/sync/errgroup"
)

// FetchProfile returns the public profile for a user.
func (c *Client) FetchProfile(ctx context.Context, username string) (Profile, error) {
	user, _, err := c.api.Users.Get(ctx, username)
	if err != nil {
		return Profile{}, mapError(err, "profile", username)
	}
	return Profile{
		Login:       user.GetLogin(),
		Name:        user.GetName(),
		AvatarURL:   user.GetAvatarURL(),
		Followers:   user.GetFollowers(),
		PublicRepos: user.GetPublicRepos(),
		CreatedAt:   user.GetCreatedAt().Time,
	}, nil
}

// FetchEvents returns the most recent public events performed by a
// user, newest first. Only the first page is fetched; it covers the
// rolling window the summaries describe.
func (c *Client) FetchEvents(ctx context.Context, username string) ([]Event, error) {
	opts := &gh.ListOptions{PerPage: eventsPerPage}
	raw, _, err := c.api.Activity.ListEventsPerformedByUser(ctx, username, true, opts)
	if err != nil {
		return nil, mapError(err, "events", username)
	}

	events := make([]Event, 0, len(raw))
	for _, ev := range raw {
		events = append(events, convertEvent(ev))
	}
	return events, nil
}

// FetchRepositories returns up to one page of repositories owned by the
// user, ordered by most recent push.
func (c *Client) FetchRepositories(ctx context.Context, username string) ([]Repository, error) {
	opts := &gh.RepositoryListByUserOptions{
		Type:        "owner",
		Sort:        "pushed",
		Direction:   "desc",
		ListOptions: gh.ListOptions{PerPage: reposPerPage},
	}
	raw, _, err := c.api.Repositories.ListByUser(ctx, username, opts)
	if err != nil {
		return nil, mapError(err, "repositories", username)
	}

	repos := make([]Repository, 0, len(raw))
	for _, r := range raw {
		repos = append(repos, Repository{
			Name:        r.GetName(),
			FullName:    r.GetFullName(),
			Description: r.GetDescription(),
			Language:    r.GetLanguage(),
			Stars:       r.GetStargazersCount(),
			Forks:       r.GetForksCount(),
			Size:        r.GetSize(),
			PushedAt:    r.GetPushedAt().Time,
		})
	}
	return repos, nil
}

// FetchCommitActivity returns a year of weekly commit counts for a
// repository. The API answers 202 while stats are being computed; that
// is treated as an empty result rather than an error.
func (c *Client) FetchCommitActivity(ctx context.Context, owner, repo string) ([]WeeklyCommits, error) {
	weeks, _, err := c.api.Repositories.ListCommitActivity(ctx, owner, repo)
	if err != nil {
		var accepted *gh.AcceptedError
		if errors.As(err, &accepted) {
			return nil, nil
		}
		return nil, mapError(err, "commit activity", owner+"/"+repo)
	}

	out := make([]WeeklyCommits, 0, len(weeks))
	for _, w := range weeks {
		out = append(out, WeeklyCommits{
			Week:  w.GetWeek().Time,
			Total: w.GetTotal(),
			Days:  w.Days,
		})
	}
	return out, nil
}

// FetchUserData fetches profile, events, and repositories concurrently.
// The username is validated before any request goes out. The first
// failure cancels the remaining fetches and is returned as-is.
func (c *Client) FetchUserData(ctx context.Context, username string) (*UserData, error) {
	if err := ValidateUsername(username); err != nil {
		return nil, err
	}

	var data UserData
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		profile, err := c.FetchProfile(ctx, username)
		if err != nil {
			return err
		}
		data.Profile = profile
		return nil
	})
	g.Go(func() error {
		events, err := c.FetchEvents(ctx, username)
		if err != nil {
			return err
		}
		data.Events = events
		return nil
	})
	g.Go(func() error {
		repos, err := c.FetchRepositories(ctx, username)
		if err != nil {
			return err
		}
		data.Repositories = repos
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &data, nil
}
