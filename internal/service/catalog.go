package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/starwars-blog/api/internal/models"
	"github.com/starwars-blog/api/internal/types"
)

// CatalogService reads users and reference entities
type CatalogService struct {
	db *gorm.DB
}

// Ensure CatalogService implements ICatalogService
var _ ICatalogService = (*CatalogService)(nil)

// NewCatalogService creates a new CatalogService instance
func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// listAll returns every row of M in storage order
func listAll[M any](ctx context.Context, db *gorm.DB) ([]M, error) {
	var rows []M
	if err := db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func getByID[M any](ctx context.Context, db *gorm.DB, resource string, id uint) (*M, error) {
	var row M
	err := db.WithContext(ctx).Take(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Resource: resource, ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s %d: %w", resource, id, err)
	}
	return &row, nil
}

func toResponses[M any, R any](rows []M, convert func(*M) R) []R {
	out := make([]R, 0, len(rows))
	for i := range rows {
		out = append(out, convert(&rows[i]))
	}
	return out
}

func (s *CatalogService) ListUsers(ctx context.Context) ([]types.User, error) {
	rows, err := listAll[models.User](ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return toResponses(rows, (*models.User).ToResponse), nil
}

func (s *CatalogService) GetUser(ctx context.Context, id uint) (*types.User, error) {
	row, err := getByID[models.User](ctx, s.db, "user", id)
	if err != nil {
		return nil, err
	}
	resp := row.ToResponse()
	return &resp, nil
}

func (s *CatalogService) ListPlanets(ctx context.Context) ([]types.Planet, error) {
	rows, err := listAll[models.Planet](ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("failed to list planets: %w", err)
	}
	return toResponses(rows, (*models.Planet).ToResponse), nil
}

func (s *CatalogService) GetPlanet(ctx context.Context, id uint) (*types.Planet, error) {
	row, err := getByID[models.Planet](ctx, s.db, "planet", id)
	if err != nil {
		return nil, err
	}
	resp := row.ToResponse()
	return &resp, nil
}

func (s *CatalogService) ListStarships(ctx context.Context) ([]types.Starship, error) {
	rows, err := listAll[models.Starship](ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("failed to list starships: %w", err)
	}
	return toResponses(rows, (*models.Starship).ToResponse), nil
}

func (s *CatalogService) GetStarship(ctx context.Context, id uint) (*types.Starship, error) {
	row, err := getByID[models.Starship](ctx, s.db, "starship", id)
	if err != nil {
		return nil, err
	}
	resp := row.ToResponse()
	return &resp, nil
}

func (s *CatalogService) ListCharacters(ctx context.Context) ([]types.Character, error) {
	rows, err := listAll[models.Character](ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}
	return toResponses(rows, (*models.Character).ToResponse), nil
}

func (s *CatalogService) GetCharacter(ctx context.Context, id uint) (*types.Character, error) {
	row, err := getByID[models.Character](ctx, s.db, "character", id)
	if err != nil {
		return nil, err
	}
	resp := row.ToResponse()
	return &resp, nil
}
