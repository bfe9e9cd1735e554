package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	mw "github.com/itchan-dev/forum-api/internal/middleware"
	"github.com/itchan-dev/forum-api/internal/middleware/metrics"
	"github.com/itchan-dev/forum-api/internal/setup"
)

// New creates the chi router with every forum route.
func New(deps *setup.Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.Config.Public.CorsAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         300,
	}))
	r.Use(mw.SecurityHeaders(deps.Config.Public.Https))

	h := deps.Handler

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)

	r.Group(func(r chi.Router) {
		r.Use(mw.RateLimit(deps.IPLimiter, mw.GetIP))
		r.Post("/users", h.RegisterUser)
		r.Post("/authentications", h.Login)
	})

	r.Get("/threads/{threadId}", h.GetThread)

	r.Group(func(r chi.Router) {
		r.Use(deps.AuthMiddleware.NeedAuth())
		if deps.UserLimiter != nil {
			r.Use(mw.RateLimit(deps.UserLimiter, mw.GetUsernameFromContext))
		}

		r.Post("/threads", h.CreateThread)
		r.Post("/threads/{threadId}/comments", h.AddComment)
		r.Delete("/threads/{threadId}/comments/{commentId}", h.DeleteComment)
		r.Post("/threads/{threadId}/comments/{commentId}/replies", h.AddReply)
		r.Delete("/threads/{threadId}/comments/{commentId}/replies/{replyId}", h.DeleteReply)
	})

	return r
}
