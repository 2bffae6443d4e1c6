package store

// ElementGrant is the result of creating an element: the new element id plus
// the full permission set created for it and the grants tying the acting user
// to every permission.
type ElementGrant struct {
	ElementID         int64
	PermissionIDs     []int64
	UserPermissionIDs []int64
}

// ElementsStore abstracts element creation
type ElementsStore interface {
	// CreateElement inserts a new element under the named component, creates
	// one permission per seeded operation and grants them all to userID.
	// The whole workflow is a single transaction: on any failure nothing is
	// visible afterwards. Returns ErrComponentNotFound when the component
	// does not exist and ErrDuplicateElement on a name collision.
	CreateElement(componentName, elemName string, userID int64) (*ElementGrant, error)
}
