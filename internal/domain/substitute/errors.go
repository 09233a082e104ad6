package substitute

import "errors"

var (
	ErrSubstituteNotFound = errors.New("substitute not found")
	ErrNationalIDRequired = errors.New("substitute national id is required")
)
