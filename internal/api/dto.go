package api

import "github.com/itchan-dev/forum-api/internal/domain"

// Request DTOs

type RegisterUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Fullname string `json:"fullname" validate:"required"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type CreateThreadRequest struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// Replies are posted with the same body as comments.
type CreateReplyRequest = CreateCommentRequest

// Response DTOs

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type AddedUserData struct {
	AddedUser domain.RegisteredUser `json:"addedUser"`
}

type AccessTokenData struct {
	AccessToken string `json:"accessToken"`
}

type AddedThreadData struct {
	AddedThread domain.AddedThread `json:"addedThread"`
}

type AddedCommentData struct {
	AddedComment domain.AddedComment `json:"addedComment"`
}

type AddedReplyData struct {
	AddedReply domain.AddedReply `json:"addedReply"`
}

type ThreadData struct {
	Thread domain.ThreadDetails `json:"thread"`
}
