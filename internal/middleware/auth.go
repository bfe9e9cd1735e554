package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/itchan-dev/forum-api/internal/domain"
	"github.com/itchan-dev/forum-api/internal/errors"
	"github.com/itchan-dev/forum-api/internal/jwt"
	"github.com/itchan-dev/forum-api/internal/utils"
)

// Key to store the authenticated user in the request context
type key int

const UserClaimsKey key = 0

type TokenDecoder interface {
	DecodeToken(jwtStr string) (*jwt.Claims, error)
}

// Auth holds dependencies for authentication middleware
type Auth struct {
	jwt TokenDecoder
}

func NewAuth(jwt TokenDecoder) *Auth {
	return &Auth{jwt: jwt}
}

// NeedAuth rejects requests without a valid "Authorization: Bearer <token>" header.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !found || tokenString == "" {
				utils.WriteErrorAndStatusCode(w, errors.Authentication("Missing authentication"))
				return
			}

			claims, err := a.jwt.DecodeToken(tokenString)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}

			user := &domain.User{Id: claims.UserId, Username: claims.Username}
			ctx := context.WithValue(r.Context(), UserClaimsKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserFromContext retrieves the user stored by NeedAuth, or nil.
func GetUserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(UserClaimsKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}

// WithUser returns a copy of r carrying user, as NeedAuth would.
func WithUser(r *http.Request, user *domain.User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), UserClaimsKey, user))
}
