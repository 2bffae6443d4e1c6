package gorm

import (
	"gorm.io/gorm"

	"github.com/blendata/cerberus/pkg/model"
	"github.com/blendata/cerberus/pkg/server/store"
)

// Ensure UsersStore implements store.UsersStore
var _ store.UsersStore = (*UsersStore)(nil)

// UsersStore implements store.UsersStore using GORM
type UsersStore struct {
	db *gorm.DB
}

// NewUsersStore creates a new UsersStore
func NewUsersStore(db *gorm.DB) *UsersStore {
	return &UsersStore{db: db}
}

// CreateUser inserts a new user
func (s *UsersStore) CreateUser(name string) (*model.User, error) {
	user := model.User{Name: name}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}
