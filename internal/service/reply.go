package service

import (
	"context"

	"github.com/itchan-dev/forum-api/internal/domain"
)

type ReplyService interface {
	Add(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, content string, owner domain.Username) (domain.AddedReply, error)
	Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, owner domain.Username) error
}

type Reply struct {
	storage   ReplyStorage
	markup    MarkupChecker
}

type ReplyStorage interface {
	VerifyThreadExists(ctx context.Context, threadId domain.ThreadId) error
	VerifyCommentExists(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId) error
	CreateReply(ctx context.Context, data domain.ReplyCreationData) (domain.AddedReply, error)
	VerifyReplyExists(ctx context.Context, commentId domain.CommentId, replyId domain.ReplyId) error
	VerifyReplyOwner(ctx context.Context, replyId domain.ReplyId, owner domain.Username) error
	SoftDeleteReply(ctx context.Context, replyId domain.ReplyId) error
}

func NewReply(storage ReplyStorage, markup MarkupChecker) *Reply {
	return &Reply{storage: storage, markup: markup}
}

func (s *Reply) Add(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, content string, owner domain.Username) (domain.AddedReply, error) {
	data, err := domain.NewReplyCreationData(threadId, commentId, content, owner)
	if err != nil {
		return domain.AddedReply{}, err
	}
	if err := checkMarkup(s.markup, data.Content); err != nil {
		return domain.AddedReply{}, err
	}
	if err := s.storage.VerifyThreadExists(ctx, data.ThreadId); err != nil {
		return domain.AddedReply{}, err
	}
	if err := s.storage.VerifyCommentExists(ctx, data.ThreadId, data.CommentId); err != nil {
		return domain.AddedReply{}, err
	}
	return s.storage.CreateReply(ctx, data)
}

func (s *Reply) Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, owner domain.Username) error {
	data, err := domain.NewReplyDeletion(threadId, commentId, replyId, owner)
	if err != nil {
		return err
	}
	if err := s.storage.VerifyThreadExists(ctx, data.ThreadId); err != nil {
		return err
	}
	if err := s.storage.VerifyCommentExists(ctx, data.ThreadId, data.CommentId); err != nil {
		return err
	}
	if err := s.storage.VerifyReplyExists(ctx, data.CommentId, data.ReplyId); err != nil {
		return err
	}
	if err := s.storage.VerifyReplyOwner(ctx, data.ReplyId, data.Owner); err != nil {
		return err
	}
	return s.storage.SoftDeleteReply(ctx, data.ReplyId)
}
