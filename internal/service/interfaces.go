package service

import (
	"context"

	"github.com/starwars-blog/api/internal/models"
	"github.com/starwars-blog/api/internal/types"
)

// ICatalogService defines the read-only operations on users and reference entities
type ICatalogService interface {
	ListUsers(ctx context.Context) ([]types.User, error)
	GetUser(ctx context.Context, id uint) (*types.User, error)
	ListPlanets(ctx context.Context) ([]types.Planet, error)
	GetPlanet(ctx context.Context, id uint) (*types.Planet, error)
	ListStarships(ctx context.Context) ([]types.Starship, error)
	GetStarship(ctx context.Context, id uint) (*types.Starship, error)
	ListCharacters(ctx context.Context) ([]types.Character, error)
	GetCharacter(ctx context.Context, id uint) (*types.Character, error)
}

// IFavoriteService defines the favorite link operations
type IFavoriteService interface {
	List(ctx context.Context, userID uint) (*types.UserFavorites, error)
	Add(ctx context.Context, kind models.Kind, userID, entityID uint) (*types.Favorite, error)
	Remove(ctx context.Context, kind models.Kind, userID, entityID uint) (*types.Favorite, error)
}
