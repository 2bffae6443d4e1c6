package gorm

import (
	"gorm.io/gorm"

	"github.com/blendata/cerberus/pkg/server/store"
)

// Ensure AuthzStore implements store.AuthzStore
var _ store.AuthzStore = (*AuthzStore)(nil)

// AuthzStore implements store.AuthzStore using GORM
type AuthzStore struct {
	db *gorm.DB
}

// NewAuthzStore creates a new AuthzStore
func NewAuthzStore(db *gorm.DB) *AuthzStore {
	return &AuthzStore{db: db}
}

// HasPermission reports whether a grant links the user to the operation on
// the element. Duplicate grants collapse to true; no matching rows anywhere
// is false, never an error.
func (s *AuthzStore) HasPermission(userID, elemID int64, operationName string) (bool, error) {
	var permitted bool
	err := s.db.Raw(`
		SELECT EXISTS (
			SELECT 1
			FROM permissions p
			INNER JOIN user_permissions up ON up.permission_id = p.id
			INNER JOIN operations op ON op.id = p.operation_id
			WHERE up.user_id = ? AND p.elem_id = ? AND op.name = ?
		)
	`, userID, elemID, operationName).Scan(&permitted).Error
	if err != nil {
		return false, err
	}
	return permitted, nil
}
