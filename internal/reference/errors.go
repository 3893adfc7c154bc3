package reference

import "errors"

var (
	// ErrQueryFailed - the reference listing query could not be executed.
	ErrQueryFailed = errors.New("reference: query failed")
)
