package github

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/go-github/v57/github"
)

// ListPullRequests fetches the pull requests of the configured repository
// and resolves the commits, comments, and requested reviewers of each one.
// Results preserve the order returned by the API. Any fetch failure aborts
// the whole aggregation.
func (c *Client) ListPullRequests(ctx context.Context) ([]PullRequest, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/pulls", c.baseURL, c.owner, c.repo)

	var prs []*github.PullRequest
	if err := c.FetchJSON(ctx, url, &prs); err != nil {
		return nil, err
	}

	slog.Debug("GitHub API: Listed pull requests", "owner", c.owner, "repo", c.repo, "count", len(prs))

	var records []PullRequest
	for _, pr := range prs {
		commits, err := c.ListCommits(ctx, pr.GetCommitsURL())
		if err != nil {
			return nil, fmt.Errorf("failed to resolve commits for PR #%d: %w", pr.GetNumber(), err)
		}

		comments, err := c.ListComments(ctx, pr.GetCommentsURL())
		if err != nil {
			return nil, fmt.Errorf("failed to resolve comments for PR #%d: %w", pr.GetNumber(), err)
		}

		createdAt := pr.GetCreatedAt().Time

		records = append(records, PullRequest{
			Number:    pr.GetNumber(),
			Title:     pr.GetTitle(),
			Author:    pr.GetUser().GetLogin(),
			CreatedAt: createdAt,
			UpdatedAt: pr.GetUpdatedAt().Time,
			TimeOpen:  c.TimeOpen(createdAt),
			Commits:   commits,
			Comments:  comments,
			Reviewers: extractReviewers(pr.RequestedReviewers),
		})
	}

	return records, nil
}

// ListCommits fetches the commit list at url. The list endpoint only carries
// the sha and the commit's own resource URL, so each entry costs one more
// fetch to obtain the message and committer name.
func (c *Client) ListCommits(ctx context.Context, url string) ([]Commit, error) {
	var refs []*github.RepositoryCommit
	if err := c.FetchJSON(ctx, url, &refs); err != nil {
		return nil, err
	}

	var commits []Commit
	for _, ref := range refs {
		var detail github.RepositoryCommit
		if err := c.FetchJSON(ctx, ref.GetURL(), &detail); err != nil {
			return nil, err
		}

		commits = append(commits, Commit{
			SHA:       ref.GetSHA(),
			Message:   detail.GetCommit().GetMessage(),
			Committer: detail.GetCommit().GetCommitter().GetName(),
		})
	}

	return commits, nil
}

// ListComments fetches the comment list at url and maps each entry to its
// author login and body, in received order.
func (c *Client) ListComments(ctx context.Context, url string) ([]Comment, error) {
	var issueComments []*github.IssueComment
	if err := c.FetchJSON(ctx, url, &issueComments); err != nil {
		return nil, err
	}

	var comments []Comment
	for _, comment := range issueComments {
		comments = append(comments, Comment{
			Author: comment.GetUser().GetLogin(),
			Body:   comment.GetBody(),
		})
	}

	return comments, nil
}

// extractReviewers converts requested reviewers already inlined on the pull
// request object; no extra fetch is needed for them.
func extractReviewers(users []*github.User) []Reviewer {
	var reviewers []Reviewer
	for _, user := range users {
		reviewers = append(reviewers, Reviewer{
			Login: user.GetLogin(),
			ID:    user.GetID(),
			Type:  user.GetType(),
		})
	}
	return reviewers
}
