package github

import "time"

// PullRequest represents a pull request flattened from the GitHub API,
// enriched with its commits, comments, and requested reviewers.
type PullRequest struct {
	Number    int
	Title     string
	Author    string
	CreatedAt time.Time
	UpdatedAt time.Time
	TimeOpen  time.Duration
	Commits   []Commit
	Comments  []Comment
	Reviewers []Reviewer
}

// Commit represents a commit belonging to a pull request
type Commit struct {
	SHA       string
	Message   string
	Committer string
}

// Comment represents a comment left on a pull request
type Comment struct {
	Author string
	Body   string
}

// Reviewer represents a requested reviewer on a pull request
type Reviewer struct {
	Login string
	ID    int64
	Type  string // "User" or "Team"
}
