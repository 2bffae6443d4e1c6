package store

import "github.com/blendata/cerberus/pkg/model"

// UsersStore abstracts user operations
type UsersStore interface {
	// CreateUser inserts a new user
	CreateUser(name string) (*model.User, error)
}
