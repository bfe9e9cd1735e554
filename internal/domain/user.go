package domain

import (
	"regexp"
	"strings"

	"github.com/itchan-dev/forum-api/internal/errors"
)

const MaxUsernameLen = 50

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

type User struct {
	Id       UserId
	Username Username
	Fullname string
	PassHash string
}

type Credentials struct {
	Username Username
	Password string
}

// to iterate thru layers: handler -> service -> storage
type UserRegistration struct {
	Username Username
	Password string
	Fullname string
}

func NewUserRegistration(username, password, fullname string) (UserRegistration, error) {
	username = strings.TrimSpace(username)
	fullname = strings.TrimSpace(fullname)
	if username == "" || password == "" || fullname == "" {
		return UserRegistration{}, errors.Validation("tidak dapat membuat user baru karena properti yang dibutuhkan tidak ada")
	}
	if len(username) > MaxUsernameLen {
		return UserRegistration{}, errors.Validation("tidak dapat membuat user baru karena karakter username melebihi batas limit")
	}
	if !usernamePattern.MatchString(username) {
		return UserRegistration{}, errors.Validation("tidak dapat membuat user baru karena username mengandung karakter terlarang")
	}
	return UserRegistration{Username: username, Password: password, Fullname: fullname}, nil
}

type RegisteredUser struct {
	Id       UserId   `json:"id"`
	Username Username `json:"username"`
	Fullname string   `json:"fullname"`
}
