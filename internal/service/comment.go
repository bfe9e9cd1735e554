package service

import (
	"context"

	"github.com/itchan-dev/forum-api/internal/domain"
)

type CommentService interface {
	Add(ctx context.Context, threadId domain.ThreadId, content string, owner domain.Username) (domain.AddedComment, error)
	Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, owner domain.Username) error
}

type Comment struct {
	storage   CommentStorage
	markup    MarkupChecker
}

type CommentStorage interface {
	VerifyThreadExists(ctx context.Context, threadId domain.ThreadId) error
	CreateComment(ctx context.Context, data domain.CommentCreationData) (domain.AddedComment, error)
	VerifyCommentExists(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId) error
	VerifyCommentOwner(ctx context.Context, commentId domain.CommentId, owner domain.Username) error
	SoftDeleteComment(ctx context.Context, commentId domain.CommentId) error
}

func NewComment(storage CommentStorage, markup MarkupChecker) *Comment {
	return &Comment{storage: storage, markup: markup}
}

func (s *Comment) Add(ctx context.Context, threadId domain.ThreadId, content string, owner domain.Username) (domain.AddedComment, error) {
	data, err := domain.NewCommentCreationData(threadId, content, owner)
	if err != nil {
		return domain.AddedComment{}, err
	}
	if err := checkMarkup(s.markup, data.Content); err != nil {
		return domain.AddedComment{}, err
	}
	if err := s.storage.VerifyThreadExists(ctx, data.ThreadId); err != nil {
		return domain.AddedComment{}, err
	}
	return s.storage.CreateComment(ctx, data)
}

func (s *Comment) Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, owner domain.Username) error {
	data, err := domain.NewCommentDeletion(threadId, commentId, owner)
	if err != nil {
		return err
	}
	if err := s.storage.VerifyThreadExists(ctx, data.ThreadId); err != nil {
		return err
	}
	if err := s.storage.VerifyCommentExists(ctx, data.ThreadId, data.CommentId); err != nil {
		return err
	}
	if err := s.storage.VerifyCommentOwner(ctx, data.CommentId, data.Owner); err != nil {
		return err
	}
	return s.storage.SoftDeleteComment(ctx, data.CommentId)
}
