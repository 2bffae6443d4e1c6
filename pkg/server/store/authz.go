package store

// AuthzStore abstracts authorization checks
type AuthzStore interface {
	// HasPermission reports whether at least one grant links the user to the
	// operation on the element. Unknown user/element/operation yields false,
	// not an error: absence of permission is the default-deny posture.
	HasPermission(userID, elemID int64, operationName string) (bool, error)
}
