package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/blendata/cerberus/pkg/model"
	"github.com/blendata/cerberus/pkg/server/store"
)

// Ensure ComponentsStore implements store.ComponentsStore
var _ store.ComponentsStore = (*ComponentsStore)(nil)

// ComponentsStore implements store.ComponentsStore using GORM
type ComponentsStore struct {
	db *gorm.DB
}

// NewComponentsStore creates a new ComponentsStore
func NewComponentsStore(db *gorm.DB) *ComponentsStore {
	return &ComponentsStore{db: db}
}

// ComponentByName retrieves a component by its unique name
func (s *ComponentsStore) ComponentByName(name string) (*model.Component, error) {
	var component model.Component
	tx := s.db.Where(&model.Component{Name: name}).First(&component)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrComponentNotFound
		}
		return nil, tx.Error
	}
	return &component, nil
}

// CreateComponent inserts a new component
func (s *ComponentsStore) CreateComponent(name string) (*model.Component, error) {
	component := model.Component{Name: name}
	if err := s.db.Create(&component).Error; err != nil {
		return nil, translateError(err)
	}
	return &component, nil
}
