package gorm

import (
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/blendata/cerberus/pkg/model"
	"github.com/blendata/cerberus/pkg/server/store"
)

// Ensure ElementsStore implements store.ElementsStore
var _ store.ElementsStore = (*ElementsStore)(nil)

// ElementsStore implements store.ElementsStore using GORM
type ElementsStore struct {
	db *gorm.DB
}

// NewElementsStore creates a new ElementsStore
func NewElementsStore(db *gorm.DB) *ElementsStore {
	return &ElementsStore{db: db}
}

// CreateElement runs the compound grant workflow in one transaction:
// resolve component, insert element, create the full permission set, grant
// everything to the acting user. Any failure rolls the whole thing back;
// a half-created element is never visible.
func (s *ElementsStore) CreateElement(componentName, elemName string, userID int64) (*store.ElementGrant, error) {
	grant := &store.ElementGrant{}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var componentID int64
		result := tx.Raw(`SELECT id FROM components WHERE name = ?`, componentName).Scan(&componentID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return store.ErrComponentNotFound
		}

		// RETURNING gives us exactly the generated ids; no re-query by name,
		// so duplicate rows from earlier runs can never leak into the result.
		var elementID int64
		if err := tx.Raw(`
			INSERT INTO elements (component_id, elem_name, created_by, modified_by, version)
			VALUES (?, ?, ?, ?, 1)
			RETURNING id
		`, componentID, elemName, userID, userID).Scan(&elementID).Error; err != nil {
			return translateError(err)
		}
		grant.ElementID = elementID

		var permissionIDs []int64
		if err := tx.Raw(`
			INSERT INTO permissions (elem_id, operation_id, created_by)
			SELECT ?, id, ? FROM operations WHERE name IN ?
			RETURNING id
		`, elementID, userID, model.SeededOperations).Scan(&permissionIDs).Error; err != nil {
			return translateError(err)
		}
		if len(permissionIDs) != len(model.SeededOperations) {
			// The seeded operation vocabulary is incomplete; granting a
			// partial set would under-grant silently.
			return fmt.Errorf("%w: expected %d operations, found %d",
				store.ErrConstraintViolation, len(model.SeededOperations), len(permissionIDs))
		}
		grant.PermissionIDs = permissionIDs

		var userPermissionIDs []int64
		if err := tx.Raw(`
			INSERT INTO user_permissions (user_id, permission_id, created_by)
			SELECT ?, unnest(?::bigint[]), ?
			RETURNING id
		`, userID, pq.Array(permissionIDs), userID).Scan(&userPermissionIDs).Error; err != nil {
			return translateError(err)
		}
		grant.UserPermissionIDs = userPermissionIDs

		return nil
	})
	if err != nil {
		return nil, err
	}

	return grant, nil
}
