package models

import "github.com/starwars-blog/api/internal/types"

// Planet, Starship and Character are reference data, seeded out of band
// and read-only through the API.

type Planet struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"size:120;not null;uniqueIndex" json:"name"`
	Climate    string `gorm:"size:120" json:"climate"`
	Terrain    string `gorm:"size:120" json:"terrain"`
	Population int64  `json:"population"`
	Diameter   int    `json:"diameter"`
}

func (p *Planet) ToResponse() types.Planet {
	return types.Planet{
		ID:         p.ID,
		Name:       p.Name,
		Climate:    p.Climate,
		Terrain:    p.Terrain,
		Population: p.Population,
		Diameter:   p.Diameter,
	}
}

type Starship struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:120;not null;uniqueIndex" json:"name"`
	Model        string `gorm:"size:120" json:"model"`
	Manufacturer string `gorm:"size:250" json:"manufacturer"`
	Crew         int    `json:"crew"`
	Passengers   int    `json:"passengers"`
}

func (s *Starship) ToResponse() types.Starship {
	return types.Starship{
		ID:           s.ID,
		Name:         s.Name,
		Model:        s.Model,
		Manufacturer: s.Manufacturer,
		Crew:         s.Crew,
		Passengers:   s.Passengers,
	}
}

type Character struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"size:120;not null;uniqueIndex" json:"name"`
	Species   string `gorm:"size:80" json:"species"`
	Gender    string `gorm:"size:40" json:"gender"`
	BirthYear string `gorm:"size:20" json:"birth_year"`
	Height    int    `json:"height"`
}

func (c *Character) ToResponse() types.Character {
	return types.Character{
		ID:        c.ID,
		Name:      c.Name,
		Species:   c.Species,
		Gender:    c.Gender,
		BirthYear: c.BirthYear,
		Height:    c.Height,
	}
}
