package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/starwars-blog/api/internal/service"
	"github.com/starwars-blog/api/internal/types"
)

// CatalogHandler serves the read-only user and reference entity endpoints
type CatalogHandler struct {
	catalog service.ICatalogService
}

func NewCatalogHandler(catalog service.ICatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/user", h.ListUsers)
	router.GET("/user/:id", h.GetUser)
	router.GET("/planet", h.ListPlanets)
	router.GET("/planet/:id", h.GetPlanet)
	router.GET("/starship", h.ListStarships)
	router.GET("/starship/:id", h.GetStarship)
	router.GET("/character", h.ListCharacters)
	router.GET("/character/:id", h.GetCharacter)
}

// respondList writes {key: [...]}
func respondList[R any](c *gin.Context, key string, list func(context.Context) ([]R, error)) {
	rows, err := list(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{key: rows})
}

// respondOne binds :id and writes {key: {...}}
func respondOne[R any](c *gin.Context, key string, get func(context.Context, uint) (*R, error)) {
	var params types.IDParam
	if err := c.ShouldBindUri(&params); err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	row, err := get(c.Request.Context(), params.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{key: row})
}

func (h *CatalogHandler) ListUsers(c *gin.Context) {
	respondList(c, "users", h.catalog.ListUsers)
}

func (h *CatalogHandler) GetUser(c *gin.Context) {
	respondOne(c, "user", h.catalog.GetUser)
}

func (h *CatalogHandler) ListPlanets(c *gin.Context) {
	respondList(c, "planets", h.catalog.ListPlanets)
}

func (h *CatalogHandler) GetPlanet(c *gin.Context) {
	respondOne(c, "planet", h.catalog.GetPlanet)
}

func (h *CatalogHandler) ListStarships(c *gin.Context) {
	respondList(c, "starships", h.catalog.ListStarships)
}

func (h *CatalogHandler) GetStarship(c *gin.Context) {
	respondOne(c, "starship", h.catalog.GetStarship)
}

func (h *CatalogHandler) ListCharacters(c *gin.Context) {
	respondList(c, "characters", h.catalog.ListCharacters)
}

func (h *CatalogHandler) GetCharacter(c *gin.Context) {
	respondOne(c, "character", h.catalog.GetCharacter)
}
