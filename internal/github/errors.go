package github

import "fmt"

// FetchError reports a failed API fetch. It carries the URL that failed and,
// when the request completed with a non-200 status, the status code;
// transport-level failures carry the underlying error instead.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("failed to fetch %s: unexpected status %d", e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
