// Package types holds the transport representation of every entity.
package types

type User struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

type Planet struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Climate    string `json:"climate"`
	Terrain    string `json:"terrain"`
	Population int64  `json:"population"`
	Diameter   int    `json:"diameter"`
}

type Starship struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Model        string `json:"model"`
	Manufacturer string `json:"manufacturer"`
	Crew         int    `json:"crew"`
	Passengers   int    `json:"passengers"`
}

type Character struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Species   string `json:"species"`
	Gender    string `json:"gender"`
	BirthYear string `json:"birth_year"`
	Height    int    `json:"height"`
}

// Favorite is a junction record. Only the foreign key of its own kind is set.
type Favorite struct {
	ID          uint  `json:"id"`
	UserID      uint  `json:"user_id"`
	PlanetID    *uint `json:"planet_id,omitempty"`
	CharacterID *uint `json:"character_id,omitempty"`
	StarshipID  *uint `json:"starship_id,omitempty"`
}

// UserFavorites groups a user's favorites by kind
type UserFavorites struct {
	Planets    []Favorite `json:"planets_favs"`
	Characters []Favorite `json:"characters_favs"`
	Starships  []Favorite `json:"starships_favs"`
}

// NewUserFavorites returns a value whose lists encode as [] rather than null
func NewUserFavorites() *UserFavorites {
	return &UserFavorites{
		Planets:    []Favorite{},
		Characters: []Favorite{},
		Starships:  []Favorite{},
	}
}
