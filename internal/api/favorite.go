package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/starwars-blog/api/internal/models"
	"github.com/starwars-blog/api/internal/service"
	"github.com/starwars-blog/api/internal/types"
)

// FavoriteResponse is returned by add and remove
type FavoriteResponse struct {
	Msg      string          `json:"msg"`
	Favorite *types.Favorite `json:"favorite"`
}

// FavoriteHandler serves /user/:id/favorites
type FavoriteHandler struct {
	favorites service.IFavoriteService
}

func NewFavoriteHandler(favorites service.IFavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites}
}

// RegisterRoutes mounts the favorite routes. mutate wraps POST and DELETE.
func (h *FavoriteHandler) RegisterRoutes(router gin.IRouter, mutate ...gin.HandlerFunc) {
	chain := func(handler gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, mutate...), handler)
	}

	router.GET("/user/:id/favorites", h.ListFavorites)
	router.POST("/user/:id/favorites/:kind/:entity_id", chain(h.AddFavorite)...)
	router.DELETE("/user/:id/favorites/:kind/:entity_id", chain(h.RemoveFavorite)...)
}

func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	var params types.IDParam
	if err := c.ShouldBindUri(&params); err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	favs, err := h.favorites.List(c.Request.Context(), params.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, favs)
}

func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	params, kind, ok := bindFavorite(c)
	if !ok {
		return
	}

	fav, err := h.favorites.Add(c.Request.Context(), kind, params.UserID, params.EntityID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, FavoriteResponse{
		Msg:      fmt.Sprintf("%s %d added to the favorites of user %d", kind, params.EntityID, params.UserID),
		Favorite: fav,
	})
}

func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	params, kind, ok := bindFavorite(c)
	if !ok {
		return
	}

	fav, err := h.favorites.Remove(c.Request.Context(), kind, params.UserID, params.EntityID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, FavoriteResponse{
		Msg:      fmt.Sprintf("%s %d removed from the favorites of user %d", kind, params.EntityID, params.UserID),
		Favorite: fav,
	})
}

// bindFavorite reads the path parameters. An unknown kind is reported as 404.
func bindFavorite(c *gin.Context) (types.FavoriteParams, models.Kind, bool) {
	var params types.FavoriteParams
	if err := c.ShouldBindUri(&params); err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		return params, "", false
	}

	kind, ok := models.ParseKind(params.Kind)
	if !ok {
		_ = c.Error(fmt.Errorf("%w: %q", service.ErrUnknownKind, params.Kind))
		return params, "", false
	}
	return params, kind, true
}
