package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/starwars-blog/api/config"
	"github.com/starwars-blog/api/internal/database"
	"github.com/starwars-blog/api/internal/logging"
	"github.com/starwars-blog/api/internal/router"
)

// Server represents the HTTP server
type Server struct {
	cfg    *config.Config
	router *gin.Engine
	http   *http.Server
	db     *database.DB
	redis  *redis.Client
}

// New creates a server with every route registered. redisClient may be nil,
// in which case favorite mutations are not rate limited.
func New(cfg *config.Config, db *database.DB, redisClient *redis.Client) *Server {
	gin.SetMode(ginMode(cfg.Environment))

	engine := router.SetupRouter(cfg, db, redisClient)

	return &Server{
		cfg:    cfg,
		router: engine,
		db:     db,
		redis:  redisClient,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func ginMode(env config.Environment) string {
	switch {
	case env.IsProduction():
		return gin.ReleaseMode
	case env.IsTesting():
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

// Router returns the HTTP handler of the server
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start listens until Shutdown is called
func (s *Server) Start() error {
	logging.Info().
		Str("addr", s.http.Addr).
		Str("environment", string(s.cfg.Environment)).
		Bool("rate_limit", s.redis != nil).
		Msg("HTTP server listening")

	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and closes Redis and the database
func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error
	if err := s.http.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http server: %w", err))
	}
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("redis: %w", err))
		}
	}
	if err := s.db.Close(); err != nil {
		errs = append(errs, fmt.Errorf("database: %w", err))
	}
	return errors.Join(errs...)
}
