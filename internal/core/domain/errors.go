package domain

import "errors"

// Common domain errors
var (
	ErrNotFound        = errors.New("resource not found")
	ErrSingletonDelete = errors.New("singleton settings rows cannot be deleted")
)
