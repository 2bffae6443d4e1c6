package gorm

import (
	"gorm.io/gorm"

	"github.com/blendata/cerberus/pkg/server/store"
)

// Ensure HealthStore implements store.HealthStore
var _ store.HealthStore = (*HealthStore)(nil)

// HealthStore provides health check operations using GORM
type HealthStore struct {
	db *gorm.DB
}

// NewHealthStore creates a new HealthStore
func NewHealthStore(db *gorm.DB) *HealthStore {
	return &HealthStore{db: db}
}

// CheckConnectivity verifies database connectivity
func (s *HealthStore) CheckConnectivity() error {
	return s.db.Exec("SELECT 1").Error
}

// DatabaseName returns the name of the connected database
func (s *HealthStore) DatabaseName() (string, error) {
	var name string
	if err := s.db.Raw("SELECT current_database()").Scan(&name).Error; err != nil {
		return "", err
	}
	return name, nil
}
