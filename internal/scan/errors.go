package scan

import "errors"

var (
	// ErrNeedMore means the view ended before the token did. Scanning the
	// same position again on an extended view may succeed.
	ErrNeedMore = errors.New("need more data")

	// ErrBadFormat means the bytes can never form a valid token, no matter
	// how much more input arrives.
	ErrBadFormat = errors.New("malformed token")

	// ErrOverflow means a numeric token does not fit a signed 64-bit integer.
	ErrOverflow = errors.New("integer overflow")
)
