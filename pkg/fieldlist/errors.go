package fieldlist

import "errors"

// ErrNoKeywords is matched by every ValidationError raised for an empty keyword list
var ErrNoKeywords = errors.New("at least one keyword is required")

// ValidationError blocks a submission before any request is made
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is lets errors.Is(err, ErrNoKeywords) match validation failures
func (e *ValidationError) Is(target error) bool {
	return target == ErrNoKeywords
}
