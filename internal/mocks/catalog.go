package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/starwars-blog/api/internal/types"
)

// MockCatalogService is a mock implementation of the catalog service.
// Only the methods a test sets expectations for may be called.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListUsers(ctx context.Context) ([]types.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.User), args.Error(1)
}

func (m *MockCatalogService) GetUser(ctx context.Context, id uint) (*types.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.User), args.Error(1)
}

func (m *MockCatalogService) ListPlanets(ctx context.Context) ([]types.Planet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Planet), args.Error(1)
}

func (m *MockCatalogService) GetPlanet(ctx context.Context, id uint) (*types.Planet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Planet), args.Error(1)
}

func (m *MockCatalogService) ListStarships(ctx context.Context) ([]types.Starship, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Starship), args.Error(1)
}

func (m *MockCatalogService) GetStarship(ctx context.Context, id uint) (*types.Starship, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Starship), args.Error(1)
}

func (m *MockCatalogService) ListCharacters(ctx context.Context) ([]types.Character, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Character), args.Error(1)
}

func (m *MockCatalogService) GetCharacter(ctx context.Context, id uint) (*types.Character, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Character), args.Error(1)
}
