package episode

import "errors"

var (
	// ErrQueryFailed - the listing or count query could not be executed.
	ErrQueryFailed = errors.New("episode: query failed")
)
