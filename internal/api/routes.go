package api

import (
	"github.com/gin-gonic/gin"

	"github.com/starwars-blog/api/internal/service"
)

// Handlers groups every handler of the API
type Handlers struct {
	Catalog   *CatalogHandler
	Favorites *FavoriteHandler
	System    *SystemHandler
}

// NewHandlers wires the handlers to their services
func NewHandlers(engine *gin.Engine, db HealthChecker, catalog service.ICatalogService, favorites service.IFavoriteService) *Handlers {
	return &Handlers{
		Catalog:   NewCatalogHandler(catalog),
		Favorites: NewFavoriteHandler(favorites),
		System:    NewSystemHandler(db, engine.Routes),
	}
}

// RegisterRoutes mounts every route on the engine. mutate wraps favorite mutations.
func (h *Handlers) RegisterRoutes(router gin.IRouter, mutate ...gin.HandlerFunc) {
	h.System.RegisterRoutes(router)
	h.Catalog.RegisterRoutes(router)
	h.Favorites.RegisterRoutes(router, mutate...)
}
