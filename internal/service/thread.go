package service

import (
	"context"

	"github.com/itchan-dev/forum-api/internal/domain"
	"github.com/itchan-dev/forum-api/internal/errors"
	"github.com/itchan-dev/forum-api/internal/logger"
)

type ThreadService interface {
	Add(ctx context.Context, title, body string, owner domain.Username) (domain.AddedThread, error)
	Detail(ctx context.Context, threadId domain.ThreadId) (domain.ThreadDetails, error)
}

type Thread struct {
	storage   ThreadStorage
	markup    MarkupChecker
}

type ThreadStorage interface {
	CreateThread(ctx context.Context, data domain.ThreadCreationData) (domain.AddedThread, error)
	ThreadById(ctx context.Context, threadId domain.ThreadId) (domain.Thread, error)
	CommentsByThreadId(ctx context.Context, threadId domain.ThreadId) ([]domain.Comment, error)
	RepliesByThreadId(ctx context.Context, threadId domain.ThreadId) ([]domain.Reply, error)
}

// MarkupChecker rejects user text carrying HTML markup.
type MarkupChecker interface {
	Check(s string) error
}

func NewThread(storage ThreadStorage, markup MarkupChecker) *Thread {
	return &Thread{storage: storage, markup: markup}
}

func (s *Thread) Add(ctx context.Context, title, body string, owner domain.Username) (domain.AddedThread, error) {
	data, err := domain.NewThreadCreationData(title, body, owner)
	if err != nil {
		return domain.AddedThread{}, err
	}
	if err := checkMarkup(s.markup, data.Title, data.Body); err != nil {
		return domain.AddedThread{}, err
	}
	return s.storage.CreateThread(ctx, data)
}

// Detail assembles a thread with its comments and their replies, oldest first.
// Replies are fetched with a single query and grouped by comment in memory.
func (s *Thread) Detail(ctx context.Context, threadId domain.ThreadId) (domain.ThreadDetails, error) {
	if threadId == "" {
		return domain.ThreadDetails{}, errors.Validation("tidak dapat menampilkan thread karena properti yang dibutuhkan tidak ada")
	}

	thread, err := s.storage.ThreadById(ctx, threadId)
	if err != nil {
		return domain.ThreadDetails{}, err
	}
	comments, err := s.storage.CommentsByThreadId(ctx, threadId)
	if err != nil {
		return domain.ThreadDetails{}, err
	}
	replies, err := s.storage.RepliesByThreadId(ctx, threadId)
	if err != nil {
		return domain.ThreadDetails{}, err
	}

	repliesByComment := make(map[domain.CommentId][]domain.ReplyDetails, len(comments))
	for _, r := range replies {
		details, err := domain.NewReplyDetails(r)
		if err != nil {
			logger.Log.Error("broken reply row", "thread_id", threadId, "reply_id", r.Id, "error", err)
			return domain.ThreadDetails{}, err
		}
		repliesByComment[r.CommentId] = append(repliesByComment[r.CommentId], details)
	}

	commentDetails := make([]domain.CommentDetails, 0, len(comments))
	for _, c := range comments {
		details, err := domain.NewCommentDetails(c, repliesByComment[c.Id])
		if err != nil {
			logger.Log.Error("broken comment row", "thread_id", threadId, "comment_id", c.Id, "error", err)
			return domain.ThreadDetails{}, err
		}
		commentDetails = append(commentDetails, details)
	}

	return domain.NewThreadDetails(thread, commentDetails)
}

func checkMarkup(markup MarkupChecker, texts ...string) error {
	for _, text := range texts {
		if err := markup.Check(text); err != nil {
			return err
		}
	}
	return nil
}
