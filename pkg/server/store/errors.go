package store

import "errors"

var (
	// ErrComponentNotFound indicates the named component does not exist.
	// User-correctable; surfaced as a 404-equivalent.
	ErrComponentNotFound = errors.New("component not found")

	// ErrDuplicateElement indicates an element with the same name already
	// exists in the component. Surfaced as a 409-equivalent.
	ErrDuplicateElement = errors.New("element name already exists in component")

	// ErrConstraintViolation indicates the store rejected a write on a
	// foreign-key or uniqueness constraint. Surfaced as a 4xx-equivalent.
	ErrConstraintViolation = errors.New("store constraint violated")
)
