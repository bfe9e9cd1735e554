package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/forum-api/internal/domain"
	internal_errors "github.com/itchan-dev/forum-api/internal/errors"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

func (s *Storage) SaveUser(ctx context.Context, reg domain.UserRegistration, passHash string) (domain.RegisteredUser, error) {
	id := s.ids.NewId(domain.UserIdPrefix)

	var user domain.RegisteredUser
	err := s.db.QueryRowContext(ctx, `
        INSERT INTO users (id, username, password, fullname)
        VALUES ($1, $2, $3, $4)
        RETURNING id, username, fullname
    `, id, reg.Username, passHash, reg.Fullname).Scan(&user.Id, &user.Username, &user.Fullname)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.RegisteredUser{}, internal_errors.Validation("username tidak tersedia")
		}
		return domain.RegisteredUser{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return user, nil
}

func (s *Storage) User(ctx context.Context, username domain.Username) (domain.User, error) {
	var user domain.User
	err := s.db.QueryRowContext(ctx, `
        SELECT id, username, fullname, password
        FROM users
        WHERE username = $1
    `, username).Scan(&user.Id, &user.Username, &user.Fullname, &user.PassHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, internal_errors.NotFound("username tidak ditemukan")
		}
		return domain.User{}, fmt.Errorf("failed to fetch user: %w", err)
	}
	return user, nil
}
