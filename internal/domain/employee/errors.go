package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmptyRoster      = errors.New("project has no active employees")
)
