package models

import (
	"time"

	"github.com/starwars-blog/api/internal/types"
)

// Kind names the reference entity a favorite points at
type Kind string

const (
	KindPlanet    Kind = "planet"
	KindCharacter Kind = "character"
	KindStarship  Kind = "starship"
)

// Kinds lists every favorite kind in response order
var Kinds = []Kind{KindPlanet, KindCharacter, KindStarship}

// ParseKind maps a path segment to a Kind
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// FavoriteLink is implemented by the pointer of every junction model.
// A (user, target) pair is unique per junction table.
type FavoriteLink interface {
	Kind() Kind
	// TargetColumn is the foreign key column of the referenced entity
	TargetColumn() string
	SetKeys(userID, targetID uint)
	ToResponse() types.Favorite
}

type FavoritePlanet struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_favorite_planets_user_planet" json:"user_id"`
	PlanetID  uint      `gorm:"not null;uniqueIndex:idx_favorite_planets_user_planet;index" json:"planet_id"`
	Planet    Planet    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (f *FavoritePlanet) Kind() Kind                    { return KindPlanet }
func (f *FavoritePlanet) TargetColumn() string          { return "planet_id" }
func (f *FavoritePlanet) SetKeys(userID, targetID uint) { f.UserID, f.PlanetID = userID, targetID }

func (f *FavoritePlanet) ToResponse() types.Favorite {
	return types.Favorite{ID: f.ID, UserID: f.UserID, PlanetID: uintPtr(f.PlanetID)}
}

type FavoriteCharacter struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UserID      uint      `gorm:"not null;uniqueIndex:idx_favorite_characters_user_character" json:"user_id"`
	CharacterID uint      `gorm:"not null;uniqueIndex:idx_favorite_characters_user_character;index" json:"character_id"`
	Character   Character `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (f *FavoriteCharacter) Kind() Kind                    { return KindCharacter }
func (f *FavoriteCharacter) TargetColumn() string          { return "character_id" }
func (f *FavoriteCharacter) SetKeys(userID, targetID uint) { f.UserID, f.CharacterID = userID, targetID }

func (f *FavoriteCharacter) ToResponse() types.Favorite {
	return types.Favorite{ID: f.ID, UserID: f.UserID, CharacterID: uintPtr(f.CharacterID)}
}

type FavoriteStarship struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_favorite_starships_user_starship" json:"user_id"`
	StarshipID uint      `gorm:"not null;uniqueIndex:idx_favorite_starships_user_starship;index" json:"starship_id"`
	Starship   Starship  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (f *FavoriteStarship) Kind() Kind                    { return KindStarship }
func (f *FavoriteStarship) TargetColumn() string          { return "starship_id" }
func (f *FavoriteStarship) SetKeys(userID, targetID uint) { f.UserID, f.StarshipID = userID, targetID }

func (f *FavoriteStarship) ToResponse() types.Favorite {
	return types.Favorite{ID: f.ID, UserID: f.UserID, StarshipID: uintPtr(f.StarshipID)}
}

func uintPtr(v uint) *uint {
	return &v
}
