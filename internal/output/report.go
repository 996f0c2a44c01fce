package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/alan/pr-report/internal/github"
)

// separator closes each pull request block in the report
var separator = strings.Repeat("*", 80)

// WriteReport prints a labeled block for each pull request followed by
// indented sub-listings for its commits, comments, and reviewers.
func WriteReport(w io.Writer, prs []github.PullRequest) {
	for _, pr := range prs {
		fmt.Fprintf(w, "Number: %d\n", pr.Number)
		fmt.Fprintf(w, "Title: %s\n", pr.Title)
		fmt.Fprintf(w, "Author: %s\n", pr.Author)
		fmt.Fprintf(w, "Created at: %s\n", pr.CreatedAt.Format(github.TimeFormat))
		fmt.Fprintf(w, "Updated at: %s\n", pr.UpdatedAt.Format(github.TimeFormat))
		fmt.Fprintf(w, "Time open: %s\n", pr.TimeOpen)

		fmt.Fprintln(w, "Commits:")
		for _, commit := range pr.Commits {
			fmt.Fprintf(w, "\tSHA: %s\n", commit.SHA)
			fmt.Fprintf(w, "\tMessage: %s\n", commit.Message)
			fmt.Fprintf(w, "\tCommitter: %s\n", commit.Committer)
		}

		fmt.Fprintln(w, "Comments:")
		for _, comment := range pr.Comments {
			fmt.Fprintf(w, "\tAuthor: %s\n", comment.Author)
			fmt.Fprintf(w, "\tBody: %s\n", comment.Body)
		}

		fmt.Fprintln(w, "Reviewers:")
		for _, reviewer := range pr.Reviewers {
			fmt.Fprintf(w, "\tLogin: %s\n", reviewer.Login)
			fmt.Fprintf(w, "\tID: %d\n", reviewer.ID)
			fmt.Fprintf(w, "\tType: %s\n", reviewer.Type)
		}

		fmt.Fprintln(w, separator)
	}
}
