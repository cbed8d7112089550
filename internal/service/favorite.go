package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/starwars-blog/api/internal/logging"
	"github.com/starwars-blog/api/internal/metrics"
	"github.com/starwars-blog/api/internal/models"
	"github.com/starwars-blog/api/internal/types"
)

// linkPtr is satisfied by *L when L is a junction model
type linkPtr[L any] interface {
	*L
	models.FavoriteLink
}

// favoriteLinks is the kind-independent view of a linkStore
type favoriteLinks interface {
	targetExists(ctx context.Context, db *gorm.DB, id uint) (bool, error)
	list(ctx context.Context, db *gorm.DB, userID uint) ([]types.Favorite, error)
	find(ctx context.Context, db *gorm.DB, userID, targetID uint) (models.FavoriteLink, bool, error)
	create(ctx context.Context, db *gorm.DB, userID, targetID uint) (models.FavoriteLink, error)
}

// linkStore implements the favorite operations for reference model T and junction model L
type linkStore[T any, L any, P linkPtr[L]] struct{}

func (linkStore[T, L, P]) targetExists(ctx context.Context, db *gorm.DB, id uint) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (linkStore[T, L, P]) list(ctx context.Context, db *gorm.DB, userID uint) ([]types.Favorite, error) {
	var links []L
	if err := db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&links).Error; err != nil {
		return nil, err
	}
	out := make([]types.Favorite, 0, len(links))
	for i := range links {
		out = append(out, P(&links[i]).ToResponse())
	}
	return out, nil
}

func (linkStore[T, L, P]) find(ctx context.Context, db *gorm.DB, userID, targetID uint) (models.FavoriteLink, bool, error) {
	var link L
	p := P(&link)
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where(p.TargetColumn()+" = ?", targetID).
		Take(p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return p, true, nil
}

func (linkStore[T, L, P]) create(ctx context.Context, db *gorm.DB, userID, targetID uint) (models.FavoriteLink, error) {
	var link L
	p := P(&link)
	p.SetKeys(userID, targetID)
	if err := db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// FavoriteService maintains the favorite links between users and reference entities
type FavoriteService struct {
	db    *gorm.DB
	links map[models.Kind]favoriteLinks
}

// Ensure FavoriteService implements IFavoriteService
var _ IFavoriteService = (*FavoriteService)(nil)

// NewFavoriteService creates a new FavoriteService instance
func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{
		db: db,
		links: map[models.Kind]favoriteLinks{
			models.KindPlanet:    linkStore[models.Planet, models.FavoritePlanet, *models.FavoritePlanet]{},
			models.KindCharacter: linkStore[models.Character, models.FavoriteCharacter, *models.FavoriteCharacter]{},
			models.KindStarship:  linkStore[models.Starship, models.FavoriteStarship, *models.FavoriteStarship]{},
		},
	}
}

func (s *FavoriteService) store(kind models.Kind) (favoriteLinks, error) {
	store, ok := s.links[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return store, nil
}

func (s *FavoriteService) requireUser(ctx context.Context, userID uint) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to look up user %d: %w", userID, err)
	}
	if count == 0 {
		return &NotFoundError{Resource: "user", ID: userID}
	}
	return nil
}

func (s *FavoriteService) requireTarget(ctx context.Context, store favoriteLinks, kind models.Kind, id uint) error {
	ok, err := store.targetExists(ctx, s.db, id)
	if err != nil {
		return fmt.Errorf("failed to look up %s %d: %w", kind, id, err)
	}
	if !ok {
		return &NotFoundError{Resource: string(kind), ID: id}
	}
	return nil
}

// List returns every favorite of the user, grouped by kind
func (s *FavoriteService) List(ctx context.Context, userID uint) (favs *types.UserFavorites, err error) {
	defer func() { observe("all", "list", err) }()

	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	favs = types.NewUserFavorites()
	for _, kind := range models.Kinds {
		links, err := s.links[kind].list(ctx, s.db, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s favorites: %w", kind, err)
		}
		switch kind {
		case models.KindPlanet:
			favs.Planets = links
		case models.KindCharacter:
			favs.Characters = links
		case models.KindStarship:
			favs.Starships = links
		}
	}
	return favs, nil
}

// Add links the entity to the user. The pair must not be linked already.
func (s *FavoriteService) Add(ctx context.Context, kind models.Kind, userID, entityID uint) (fav *types.Favorite, err error) {
	defer func() { observe(string(kind), "add", err) }()

	store, err := s.store(kind)
	if err != nil {
		return nil, err
	}
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.requireTarget(ctx, store, kind, entityID); err != nil {
		return nil, err
	}

	_, found, err := store.find(ctx, s.db, userID, entityID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up favorite %s: %w", kind, err)
	}
	if found {
		return nil, &ConflictError{Kind: kind, UserID: userID, EntityID: entityID}
	}

	// The unique index catches a concurrent insert that passed the check above
	link, err := store.create(ctx, s.db, userID, entityID)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, &ConflictError{Kind: kind, UserID: userID, EntityID: entityID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to add favorite %s: %w", kind, err)
	}

	logging.Ctx(ctx).Info().
		Str("kind", string(kind)).
		Uint("user_id", userID).
		Uint("entity_id", entityID).
		Msg("favorite added")

	resp := link.ToResponse()
	return &resp, nil
}

// Remove deletes the link between the user and the entity and returns it
func (s *FavoriteService) Remove(ctx context.Context, kind models.Kind, userID, entityID uint) (fav *types.Favorite, err error) {
	defer func() { observe(string(kind), "remove", err) }()

	store, err := s.store(kind)
	if err != nil {
		return nil, err
	}
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.requireTarget(ctx, store, kind, entityID); err != nil {
		return nil, err
	}

	link, found, err := store.find(ctx, s.db, userID, entityID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up favorite %s: %w", kind, err)
	}
	if !found {
		return nil, &LinkNotFoundError{Kind: kind, UserID: userID, EntityID: entityID}
	}

	result := s.db.WithContext(ctx).Delete(link)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to remove favorite %s: %w", kind, result.Error)
	}
	if result.RowsAffected == 0 {
		// removed concurrently
		return nil, &LinkNotFoundError{Kind: kind, UserID: userID, EntityID: entityID}
	}

	logging.Ctx(ctx).Info().
		Str("kind", string(kind)).
		Uint("user_id", userID).
		Uint("entity_id", entityID).
		Msg("favorite removed")

	resp := link.ToResponse()
	return &resp, nil
}

func observe(kind, action string, err error) {
	outcome := metrics.OutcomeOK
	switch {
	case err == nil:
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrUnknownKind):
		outcome = metrics.OutcomeNotFound
	case errors.Is(err, ErrConflict):
		outcome = metrics.OutcomeConflict
	default:
		outcome = metrics.OutcomeError
	}
	metrics.FavoriteOperations.WithLabelValues(kind, action, outcome).Inc()
}
