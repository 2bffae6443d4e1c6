// Package store provides storage abstractions for the Cerberus server.
//
// This package defines interfaces for database operations, allowing the
// server endpoints to be decoupled from the specific database implementation.
// This enables easier testing with mocks and potential support for different
// storage backends.
//
// # Available Stores
//
//   - AuthzStore: permission existence checks
//   - ElementsStore: the transactional element-plus-grants workflow
//   - ComponentsStore: component lookup and creation
//   - UsersStore: user creation
//   - HealthStore: database connectivity checks
//
// # Usage
//
//	authz := gorm.NewAuthzStore(db)
//	allowed, err := authz.HasPermission(7, 42, "edit")
//	if err != nil {
//	    // store failure: surface as unavailable, do not retry
//	}
package store
