package lookups

import (
	"errors"
	"fmt"
)

// ErrLookupUnavailable is returned when a decorator has nothing to delegate to.
var ErrLookupUnavailable = errors.New("lookup unavailable")

// LookupError captures a failed lookup against a named source.
type LookupError struct {
	Source    string
	SearchKey string
	Err       error
}

func (e *LookupError) Error() string {
	msg := "lookup failed"
	if e.Source != "" {
		msg = fmt.Sprintf("%s lookup failed", e.Source)
	}
	if e.SearchKey != "" {
		msg = fmt.Sprintf("%s (search_key=%s)", msg, e.SearchKey)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// AsLookupError attempts to unwrap an error into a LookupError.
func AsLookupError(err error) (*LookupError, bool) {
	var lkErr *LookupError
	if errors.As(err, &lkErr) {
		return lkErr, true
	}
	return nil, false
}
