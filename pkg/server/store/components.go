package store

import "github.com/blendata/cerberus/pkg/model"

// ComponentsStore abstracts component operations
type ComponentsStore interface {
	// ComponentByName retrieves a component by its unique name. Returns
	// ErrComponentNotFound when absent.
	ComponentByName(name string) (*model.Component, error)

	// CreateComponent inserts a new component
	CreateComponent(name string) (*model.Component, error)
}
