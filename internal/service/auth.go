package service

import (
	"context"
	stderrors "errors"

	"github.com/itchan-dev/forum-api/internal/domain"
	"github.com/itchan-dev/forum-api/internal/errors"
	"github.com/itchan-dev/forum-api/internal/logger"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(ctx context.Context, username, password, fullname string) (domain.RegisteredUser, error)
	Login(ctx context.Context, creds domain.Credentials) (string, error)
}

type Auth struct {
	storage AuthStorage
	jwt     Jwt
}

type AuthStorage interface {
	SaveUser(ctx context.Context, reg domain.UserRegistration, passHash string) (domain.RegisteredUser, error)
	User(ctx context.Context, username domain.Username) (domain.User, error)
}

type Jwt interface {
	NewToken(user domain.User) (string, error)
}

func NewAuth(storage AuthStorage, jwt Jwt) *Auth {
	return &Auth{storage: storage, jwt: jwt}
}

func (a *Auth) Register(ctx context.Context, username, password, fullname string) (domain.RegisteredUser, error) {
	reg, err := domain.NewUserRegistration(username, password, fullname)
	if err != nil {
		return domain.RegisteredUser{}, err
	}
	passHash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if stderrors.Is(err, bcrypt.ErrPasswordTooLong) {
		return domain.RegisteredUser{}, errors.Validation("tidak dapat membuat user baru karena password terlalu panjang")
	}
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return domain.RegisteredUser{}, err
	}
	return a.storage.SaveUser(ctx, reg, string(passHash))
}

// Login returns an access token for valid credentials.
// Unknown usernames and wrong passwords produce the same error to not leak existing users.
func (a *Auth) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	if creds.Username == "" || creds.Password == "" {
		return "", errors.Validation("harus mengirimkan username dan password")
	}

	user, err := a.storage.User(ctx, creds.Username)
	if err != nil {
		if errors.IsNotFound(err) {
			return "", errors.Authentication("kredensial yang anda masukkan salah")
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(creds.Password)); err != nil {
		logger.Log.Debug("password verification failed", "username", user.Username)
		return "", errors.Authentication("kredensial yang anda masukkan salah")
	}

	token, err := a.jwt.NewToken(user)
	if err != nil {
		logger.Log.Error("failed to create jwt token", "user_id", user.Id, "error", err)
		return "", err
	}
	return token, nil
}
