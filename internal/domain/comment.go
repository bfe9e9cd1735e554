package domain

import (
	"fmt"
	"time"

	"github.com/itchan-dev/forum-api/internal/errors"
)

type CommentCreationData struct {
	ThreadId ThreadId
	Content  string
	Owner    Username
}

func NewCommentCreationData(threadId, content, owner string) (CommentCreationData, error) {
	if threadId == "" || content == "" || owner == "" {
		return CommentCreationData{}, errors.Validation("tidak dapat membuat komentar baru karena properti yang dibutuhkan tidak ada")
	}
	return CommentCreationData{ThreadId: threadId, Content: content, Owner: owner}, nil
}

type AddedComment struct {
	Id      CommentId `json:"id"`
	Content string    `json:"content"`
	Owner   Username  `json:"owner"`
}

type CommentDeletion struct {
	ThreadId  ThreadId
	CommentId CommentId
	Owner     Username
}

func NewCommentDeletion(threadId, commentId, owner string) (CommentDeletion, error) {
	if threadId == "" || commentId == "" || owner == "" {
		return CommentDeletion{}, errors.Validation("tidak dapat menghapus komentar karena properti yang dibutuhkan tidak ada")
	}
	return CommentDeletion{ThreadId: threadId, CommentId: commentId, Owner: owner}, nil
}

// Comment is a row of the comments_thread table.
type Comment struct {
	Id        CommentId
	ThreadId  ThreadId
	Username  Username
	Content   string
	CreatedAt time.Time
	IsDelete  bool
}

type CommentDetails struct {
	Id       CommentId      `json:"id"`
	Username Username       `json:"username"`
	Date     string         `json:"date"`
	Content  string         `json:"content"`
	Replies  []ReplyDetails `json:"replies"`
}

// NewCommentDetails hides the content of a deleted comment behind CommentTombstone.
func NewCommentDetails(c Comment, replies []ReplyDetails) (CommentDetails, error) {
	if c.Id == "" || c.Username == "" || c.Content == "" || c.CreatedAt.IsZero() {
		return CommentDetails{}, fmt.Errorf("comment details: missing required property of comment %q", c.Id)
	}
	content := c.Content
	if c.IsDelete {
		content = CommentTombstone
	}
	if replies == nil {
		replies = []ReplyDetails{}
	}
	return CommentDetails{
		Id:       c.Id,
		Username: c.Username,
		Date:     FormatDate(c.CreatedAt),
		Content:  content,
		Replies:  replies,
	}, nil
}
