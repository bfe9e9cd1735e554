package setup

import (
	"time"

	"github.com/itchan-dev/forum-api/internal/config"
	"github.com/itchan-dev/forum-api/internal/handler"
	"github.com/itchan-dev/forum-api/internal/jwt"
	"github.com/itchan-dev/forum-api/internal/middleware"
	"github.com/itchan-dev/forum-api/internal/service"
	"github.com/itchan-dev/forum-api/internal/storage/pg"
	"github.com/itchan-dev/forum-api/internal/utils"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config         *config.Config
	Storage        *pg.Storage
	Handler        *handler.Handler
	AuthMiddleware *middleware.Auth
	// UserLimiter is nil when rate limiting is disabled
	UserLimiter *middleware.RateLimiter
	IPLimiter   *middleware.RateLimiter
}

// SetupDependencies connects to postgres and builds every service on top of it.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg, utils.IdGenerator{})
	if err != nil {
		return nil, err
	}

	deps := Build(cfg, storage)
	deps.Storage = storage
	return deps, nil
}

// Store is everything the services need from persistence.
type Store interface {
	service.AuthStorage
	service.ThreadStorage
	service.CommentStorage
	service.ReplyStorage
	handler.HealthChecker
}

// Build wires services, handler and middleware on top of store.
func Build(cfg *config.Config, store Store) *Dependencies {
	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())
	markup := utils.NewMarkupGuard()

	auth := service.NewAuth(store, jwtService)
	thread := service.NewThread(store, markup)
	comment := service.NewComment(store, markup)
	reply := service.NewReply(store, markup)

	deps := &Dependencies{
		Config:         cfg,
		Handler:        handler.New(auth, thread, comment, reply, store, cfg),
		AuthMiddleware: middleware.NewAuth(jwtService),
		// Registration and login are limited by client address
		IPLimiter: middleware.NewRateLimiter(1, 5, time.Hour),
	}
	if rl := cfg.Public.RateLimit; rl.Rps > 0 {
		deps.UserLimiter = middleware.NewRateLimiter(rl.Rps, rl.Burst, time.Hour)
	}
	return deps
}
