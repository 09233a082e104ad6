package leave

import "errors"

var (
	ErrLeaveNotFound    = errors.New("no leave recorded for this employee and date")
	ErrInvalidLeaveCode = errors.New("invalid leave code")
)
