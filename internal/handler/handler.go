package handler

import (
	"context"
	"net/http"

	"github.com/itchan-dev/forum-api/internal/config"
	"github.com/itchan-dev/forum-api/internal/domain"
	"github.com/itchan-dev/forum-api/internal/errors"
	"github.com/itchan-dev/forum-api/internal/middleware"
	"github.com/itchan-dev/forum-api/internal/service"
	"github.com/itchan-dev/forum-api/internal/utils"
)

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	auth    service.AuthService
	thread  service.ThreadService
	comment service.CommentService
	reply   service.ReplyService
	health  HealthChecker
	cfg     *config.Config
}

func New(auth service.AuthService, thread service.ThreadService, comment service.CommentService, reply service.ReplyService, health HealthChecker, cfg *config.Config) *Handler {
	return &Handler{
		auth:    auth,
		thread:  thread,
		comment: comment,
		reply:   reply,
		health:  health,
		cfg:     cfg,
	}
}

// decodeBody reads a size-limited JSON body into body and validates it.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, body any) error {
	return utils.DecodeValidate(http.MaxBytesReader(w, r.Body, h.cfg.Public.MaxBodyBytes), body)
}

// currentUser returns the user attached by middleware.NeedAuth.
func currentUser(r *http.Request) (*domain.User, error) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		return nil, errors.Authentication("Missing authentication")
	}
	return user, nil
}
