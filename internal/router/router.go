package router

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/starwars-blog/api/config"
	"github.com/starwars-blog/api/internal/api"
	"github.com/starwars-blog/api/internal/database"
	"github.com/starwars-blog/api/internal/middleware"
	"github.com/starwars-blog/api/internal/service"
)

// SetupRouter configures the middleware chain and every route.
// Favorite mutations are rate limited only when redisClient is non-nil.
func SetupRouter(cfg *config.Config, db *database.DB, redisClient *redis.Client) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.AccessLog(),
		middleware.Metrics(),
		middleware.CORS(cfg.CORSOrigins),
		middleware.ErrorHandler(),
	)

	var mutate []gin.HandlerFunc
	if redisClient != nil {
		limiter := middleware.NewFavoritesRateLimiter(redisClient, cfg.FavoritesRateLimit)
		mutate = append(mutate, limiter.Middleware())
	}

	handlers := api.NewHandlers(router, db,
		service.NewCatalogService(db.DB),
		service.NewFavoriteService(db.DB),
	)
	handlers.RegisterRoutes(router, mutate...)

	return router
}
