// Package export implements the two sinks for fetched pull request data:
// a fixed-schema CSV file and a human-readable report.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alan/pr-report/internal/github"
)

// csvHeader is the fixed 9-column schema of the CSV export
var csvHeader = []string{
	"PR №", "Title", "Author", "Created At", "Updated At",
	"Time open", "Commits", "Comments", "Reviewers",
}

// CSVFileName returns the export file name for a repository
func CSVFileName(owner, repo string) string {
	return fmt.Sprintf("%s_%s.csv", repo, owner)
}

// WriteCSV writes the header and one row per pull request to w. Nested
// commit, comment, and reviewer lists are rendered in their default
// textual form.
func WriteCSV(w io.Writer, prs []github.PullRequest) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, pr := range prs {
		row := []string{
			strconv.Itoa(pr.Number),
			pr.Title,
			pr.Author,
			pr.CreatedAt.Format(github.TimeFormat),
			pr.UpdatedAt.Format(github.TimeFormat),
			pr.TimeOpen.String(),
			fmt.Sprint(pr.Commits),
			fmt.Sprint(pr.Comments),
			fmt.Sprint(pr.Reviewers),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row for PR #%d: %w", pr.Number, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV output: %w", err)
	}

	return nil
}

// WriteCSVFile writes the CSV export to {repo}_{owner}.csv inside dir,
// overwriting any existing file, and returns the written path.
func WriteCSVFile(dir, owner, repo string, prs []github.PullRequest) (string, error) {
	path := filepath.Join(dir, CSVFileName(owner, repo))

	file, err := os.Create(path) //nolint:gosec // Path is derived from configured repository identity
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}

	if err := WriteCSV(file, prs); err != nil {
		file.Close() //nolint:errcheck,gosec // Write error takes precedence
		return "", err
	}

	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to close export file: %w", err)
	}

	return path, nil
}
