package submit

import (
	"fmt"
)

// SubmissionError reports a failed call to the playlist service.
// StatusCode is zero when the request never got a response.
type SubmissionError struct {
	StatusCode int
	Err        error
}

func (e *SubmissionError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("create playlist failed: %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("create playlist failed: %v", e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}
