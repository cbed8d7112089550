package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/starwars-blog/api/internal/models"
)

// Fixture data loaded by cmd/seed and the test helpers
var (
	SeedUsers = []models.User{
		{Username: "luke", Email: "luke@rebellion.org", IsActive: true},
		{Username: "leia", Email: "leia@alderaan.gov", IsActive: true},
		{Username: "han", Email: "han@falcon.space", IsActive: false},
	}

	SeedPlanets = []models.Planet{
		{Name: "Tatooine", Climate: "arid", Terrain: "desert", Population: 200000, Diameter: 10465},
		{Name: "Alderaan", Climate: "temperate", Terrain: "grasslands, mountains", Population: 2000000000, Diameter: 12500},
		{Name: "Yavin IV", Climate: "temperate, tropical", Terrain: "jungle, rainforests", Population: 1000, Diameter: 10200},
		{Name: "Hoth", Climate: "frozen", Terrain: "tundra, ice caves, mountain ranges", Population: 0, Diameter: 7200},
		{Name: "Dagobah", Climate: "murky", Terrain: "swamp, jungles", Population: 0, Diameter: 8900},
	}

	SeedStarships = []models.Starship{
		{Name: "X-wing", Model: "T-65 X-wing", Manufacturer: "Incom Corporation", Crew: 1, Passengers: 0},
		{Name: "Millennium Falcon", Model: "YT-1300 light freighter", Manufacturer: "Corellian Engineering Corporation", Crew: 4, Passengers: 6},
		{Name: "Death Star", Model: "DS-1 Orbital Battle Station", Manufacturer: "Imperial Department of Military Research", Crew: 342953, Passengers: 843342},
	}

	SeedCharacters = []models.Character{
		{Name: "Luke Skywalker", Species: "Human", Gender: "male", BirthYear: "19BBY", Height: 172},
		{Name: "Leia Organa", Species: "Human", Gender: "female", BirthYear: "19BBY", Height: 150},
		{Name: "Yoda", Species: "Yoda's species", Gender: "male", BirthYear: "896BBY", Height: 66},
		{Name: "R2-D2", Species: "Droid", Gender: "n/a", BirthYear: "33BBY", Height: 96},
	}
)

// Seed inserts the fixture rows that are not present yet, matching on their natural keys
func Seed(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, u := range SeedUsers {
			u := u
			if err := tx.Where(models.User{Username: u.Username}).Attrs(u).FirstOrCreate(&u).Error; err != nil {
				return fmt.Errorf("failed to seed user %s: %w", u.Username, err)
			}
		}
		for _, p := range SeedPlanets {
			p := p
			if err := tx.Where(models.Planet{Name: p.Name}).Attrs(p).FirstOrCreate(&p).Error; err != nil {
				return fmt.Errorf("failed to seed planet %s: %w", p.Name, err)
			}
		}
		for _, s := range SeedStarships {
			s := s
			if err := tx.Where(models.Starship{Name: s.Name}).Attrs(s).FirstOrCreate(&s).Error; err != nil {
				return fmt.Errorf("failed to seed starship %s: %w", s.Name, err)
			}
		}
		for _, c := range SeedCharacters {
			c := c
			if err := tx.Where(models.Character{Name: c.Name}).Attrs(c).FirstOrCreate(&c).Error; err != nil {
				return fmt.Errorf("failed to seed character %s: %w", c.Name, err)
			}
		}
		return nil
	})
}
