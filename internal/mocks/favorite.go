package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/starwars-blog/api/internal/models"
	"github.com/starwars-blog/api/internal/types"
)

// MockFavoriteService is a mock implementation of the favorite service
type MockFavoriteService struct {
	mock.Mock
}

// List mocks the List method
func (m *MockFavoriteService) List(ctx context.Context, userID uint) (*types.UserFavorites, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.UserFavorites), args.Error(1)
}

// Add mocks the Add method
func (m *MockFavoriteService) Add(ctx context.Context, kind models.Kind, userID, entityID uint) (*types.Favorite, error) {
	args := m.Called(ctx, kind, userID, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Favorite), args.Error(1)
}

// Remove mocks the Remove method
func (m *MockFavoriteService) Remove(ctx context.Context, kind models.Kind, userID, entityID uint) (*types.Favorite, error) {
	args := m.Called(ctx, kind, userID, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Favorite), args.Error(1)
}
