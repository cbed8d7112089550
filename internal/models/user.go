package models

import (
	"time"

	"github.com/starwars-blog/api/internal/types"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Username  string    `gorm:"size:80;not null;uniqueIndex" json:"username"`
	Email     string    `gorm:"size:120;not null;uniqueIndex" json:"email"`
	IsActive  bool      `gorm:"not null" json:"is_active"`

	FavoritePlanets    []FavoritePlanet    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	FavoriteCharacters []FavoriteCharacter `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	FavoriteStarships  []FavoriteStarship  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (u *User) ToResponse() types.User {
	return types.User{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		IsActive: u.IsActive,
	}
}
