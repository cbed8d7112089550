package service

import (
	"context"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starwars-blog/api/internal/metrics"
	"github.com/starwars-blog/api/internal/models"
	"github.com/starwars-blog/api/internal/testhelpers"
)

func setupFavorites(t *testing.T) (*FavoriteService, context.Context) {
	t.Helper()
	db := testhelpers.SetupSeededSQLite(t)
	return NewFavoriteService(db.DB), context.Background()
}

func TestFavoriteAddThenList(t *testing.T) {
	svc, ctx := setupFavorites(t)

	for _, kind := range models.Kinds {
		t.Run(string(kind), func(t *testing.T) {
			fav, err := svc.Add(ctx, kind, 1, 2)
			require.NoError(t, err)
			assert.NotZero(t, fav.ID)
			assert.Equal(t, uint(1), fav.UserID)

			favs, err := svc.List(ctx, 1)
			require.NoError(t, err)

			var links = map[models.Kind]int{
				models.KindPlanet:    len(favs.Planets),
				models.KindCharacter: len(favs.Characters),
				models.KindStarship:  len(favs.Starships),
			}
			assert.Equal(t, 1, links[kind])
		})
	}
}

func TestFavoriteAddSetsOwnForeignKey(t *testing.T) {
	svc, ctx := setupFavorites(t)

	fav, err := svc.Add(ctx, models.KindPlanet, 1, 5)
	require.NoError(t, err)
	require.NotNil(t, fav.PlanetID)
	assert.Equal(t, uint(5), *fav.PlanetID)
	assert.Nil(t, fav.CharacterID)
	assert.Nil(t, fav.StarshipID)

	fav, err = svc.Add(ctx, models.KindStarship, 1, 3)
	require.NoError(t, err)
	require.NotNil(t, fav.StarshipID)
	assert.Equal(t, uint(3), *fav.StarshipID)
	assert.Nil(t, fav.PlanetID)
}

func TestFavoriteAddTwiceConflicts(t *testing.T) {
	svc, ctx := setupFavorites(t)

	_, err := svc.Add(ctx, models.KindCharacter, 2, 3)
	require.NoError(t, err)

	_, err = svc.Add(ctx, models.KindCharacter, 2, 3)
	assert.ErrorIs(t, err, ErrConflict)
	assert.EqualError(t, err, "character 3 is already a favorite of user 2")

	favs, err := svc.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, favs.Characters, 1)
}

func TestFavoriteConcurrentAddKeepsOneLink(t *testing.T) {
	svc, ctx := setupFavorites(t)

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		created   int
		conflicts int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Add(ctx, models.KindPlanet, 1, 1)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case assert.ErrorIs(t, err, ErrConflict):
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, workers-1, conflicts)

	favs, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, favs.Planets, 1)
}

func TestFavoriteSameEntityDifferentUsers(t *testing.T) {
	svc, ctx := setupFavorites(t)

	_, err := svc.Add(ctx, models.KindStarship, 1, 2)
	require.NoError(t, err)
	_, err = svc.Add(ctx, models.KindStarship, 2, 2)
	require.NoError(t, err)

	favs, err := svc.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, favs.Starships, 1)
	assert.Equal(t, uint(2), favs.Starships[0].UserID)
}

func TestFavoriteRemove(t *testing.T) {
	svc, ctx := setupFavorites(t)

	added, err := svc.Add(ctx, models.KindPlanet, 1, 5)
	require.NoError(t, err)

	removed, err := svc.Remove(ctx, models.KindPlanet, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, added.ID, removed.ID)
	require.NotNil(t, removed.PlanetID)
	assert.Equal(t, uint(5), *removed.PlanetID)

	favs, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, favs.Planets)

	_, err = svc.Remove(ctx, models.KindPlanet, 1, 5)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "planet 5 is not a favorite of user 1")
}

func TestFavoriteRemoveLeavesOtherKinds(t *testing.T) {
	svc, ctx := setupFavorites(t)

	_, err := svc.Add(ctx, models.KindPlanet, 1, 1)
	require.NoError(t, err)
	_, err = svc.Add(ctx, models.KindCharacter, 1, 1)
	require.NoError(t, err)

	_, err = svc.Remove(ctx, models.KindPlanet, 1, 1)
	require.NoError(t, err)

	favs, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, favs.Planets)
	assert.Len(t, favs.Characters, 1)
}

func TestFavoriteMissingReferences(t *testing.T) {
	svc, ctx := setupFavorites(t)

	for _, kind := range models.Kinds {
		t.Run(string(kind), func(t *testing.T) {
			_, err := svc.Add(ctx, kind, 999, 1)
			assert.ErrorIs(t, err, ErrNotFound)
			assert.EqualError(t, err, "user 999 not found")

			_, err = svc.Add(ctx, kind, 1, 999)
			assert.ErrorIs(t, err, ErrNotFound)
			assert.EqualError(t, err, string(kind)+" 999 not found")

			_, err = svc.Remove(ctx, kind, 999, 1)
			assert.ErrorIs(t, err, ErrNotFound)

			_, err = svc.Remove(ctx, kind, 1, 999)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}

	_, err := svc.List(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFavoriteUnknownKind(t *testing.T) {
	svc, ctx := setupFavorites(t)

	_, err := svc.Add(ctx, models.Kind("vehicle"), 1, 1)
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, err = svc.Remove(ctx, models.Kind("vehicle"), 1, 1)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestFavoriteListCombined(t *testing.T) {
	svc, ctx := setupFavorites(t)

	empty, err := svc.List(ctx, 2)
	require.NoError(t, err)
	assert.NotNil(t, empty.Planets)
	assert.NotNil(t, empty.Characters)
	assert.NotNil(t, empty.Starships)

	_, err = svc.Add(ctx, models.KindPlanet, 2, 1)
	require.NoError(t, err)
	_, err = svc.Add(ctx, models.KindPlanet, 2, 2)
	require.NoError(t, err)
	_, err = svc.Add(ctx, models.KindCharacter, 2, 4)
	require.NoError(t, err)
	_, err = svc.Add(ctx, models.KindStarship, 1, 1)
	require.NoError(t, err)

	favs, err := svc.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, favs.Planets, 2)
	assert.Len(t, favs.Characters, 1)
	assert.Empty(t, favs.Starships)
	assert.Equal(t, uint(1), *favs.Planets[0].PlanetID)
	assert.Equal(t, uint(2), *favs.Planets[1].PlanetID)
}

func TestFavoriteOperationsAreCounted(t *testing.T) {
	svc, ctx := setupFavorites(t)

	ok := metrics.FavoriteOperations.WithLabelValues("starship", "add", metrics.OutcomeOK)
	conflict := metrics.FavoriteOperations.WithLabelValues("starship", "add", metrics.OutcomeConflict)
	okBefore, conflictBefore := testutil.ToFloat64(ok), testutil.ToFloat64(conflict)

	_, err := svc.Add(ctx, models.KindStarship, 2, 1)
	require.NoError(t, err)
	_, err = svc.Add(ctx, models.KindStarship, 2, 1)
	require.Error(t, err)

	assert.Equal(t, okBefore+1, testutil.ToFloat64(ok))
	assert.Equal(t, conflictBefore+1, testutil.ToFloat64(conflict))
}
