package endpoints

import (
	"github.com/stretchr/testify/mock"

	"github.com/blendata/cerberus/pkg/model"
	"github.com/blendata/cerberus/pkg/server/store"
)

// MockAuthzStore implements store.AuthzStore for testing using testify/mock
type MockAuthzStore struct {
	mock.Mock
}

func NewMockAuthzStore() *MockAuthzStore {
	return &MockAuthzStore{}
}

func (m *MockAuthzStore) HasPermission(userID, elemID int64, operationName string) (bool, error) {
	args := m.Called(userID, elemID, operationName)
	return args.Bool(0), args.Error(1)
}

// MockElementsStore implements store.ElementsStore for testing using testify/mock
type MockElementsStore struct {
	mock.Mock
}

func NewMockElementsStore() *MockElementsStore {
	return &MockElementsStore{}
}

func (m *MockElementsStore) CreateElement(componentName, elemName string, userID int64) (*store.ElementGrant, error) {
	args := m.Called(componentName, elemName, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.ElementGrant), args.Error(1)
}

// MockComponentsStore implements store.ComponentsStore for testing using testify/mock
type MockComponentsStore struct {
	mock.Mock
}

func NewMockComponentsStore() *MockComponentsStore {
	return &MockComponentsStore{}
}

func (m *MockComponentsStore) ComponentByName(name string) (*model.Component, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Component), args.Error(1)
}

func (m *MockComponentsStore) CreateComponent(name string) (*model.Component, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Component), args.Error(1)
}

// MockHealthStore implements store.HealthStore for testing using testify/mock
type MockHealthStore struct {
	mock.Mock
}

func NewMockHealthStore() *MockHealthStore {
	return &MockHealthStore{}
}

func (m *MockHealthStore) CheckConnectivity() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockHealthStore) DatabaseName() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}
