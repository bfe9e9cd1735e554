package domain

import (
	"fmt"
	"time"

	"github.com/itchan-dev/forum-api/internal/errors"
)

type ReplyCreationData struct {
	ThreadId  ThreadId
	CommentId CommentId
	Content   string
	Owner     Username
}

func NewReplyCreationData(threadId, commentId, content, owner string) (ReplyCreationData, error) {
	if threadId == "" || commentId == "" || content == "" || owner == "" {
		return ReplyCreationData{}, errors.Validation("tidak dapat membuat balasan baru karena properti yang dibutuhkan tidak ada")
	}
	return ReplyCreationData{ThreadId: threadId, CommentId: commentId, Content: content, Owner: owner}, nil
}

type AddedReply struct {
	Id      ReplyId  `json:"id"`
	Content string   `json:"content"`
	Owner   Username `json:"owner"`
}

type ReplyDeletion struct {
	ThreadId  ThreadId
	CommentId CommentId
	ReplyId   ReplyId
	Owner     Username
}

func NewReplyDeletion(threadId, commentId, replyId, owner string) (ReplyDeletion, error) {
	if threadId == "" || commentId == "" || replyId == "" || owner == "" {
		return ReplyDeletion{}, errors.Validation("tidak dapat menghapus balasan karena properti yang dibutuhkan tidak ada")
	}
	return ReplyDeletion{ThreadId: threadId, CommentId: commentId, ReplyId: replyId, Owner: owner}, nil
}

// Reply is a row of the replies table.
type Reply struct {
	Id        ReplyId
	ThreadId  ThreadId
	CommentId CommentId
	Username  Username
	Content   string
	CreatedAt time.Time
	IsDelete  bool
}

type ReplyDetails struct {
	Id       ReplyId  `json:"id"`
	Username Username `json:"username"`
	Date     string   `json:"date"`
	Content  string   `json:"content"`
}

func NewReplyDetails(r Reply) (ReplyDetails, error) {
	if r.Id == "" || r.Username == "" || r.Content == "" || r.CreatedAt.IsZero() {
		return ReplyDetails{}, fmt.Errorf("reply details: missing required property of reply %q", r.Id)
	}
	content := r.Content
	if r.IsDelete {
		content = ReplyTombstone
	}
	return ReplyDetails{
		Id:       r.Id,
		Username: r.Username,
		Date:     FormatDate(r.CreatedAt),
		Content:  content,
	}, nil
}
