package handler

import (
	"context"

	"github.com/itchan-dev/forum-api/internal/domain"
)

type MockAuthService struct {
	RegisterFunc func(username, password, fullname string) (domain.RegisteredUser, error)
	LoginFunc    func(creds domain.Credentials) (string, error)
}

func (m *MockAuthService) Register(ctx context.Context, username, password, fullname string) (domain.RegisteredUser, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(username, password, fullname)
	}
	return domain.RegisteredUser{Id: "user-123", Username: username, Fullname: fullname}, nil
}

func (m *MockAuthService) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(creds)
	}
	return "token", nil
}

type MockThreadService struct {
	AddFunc    func(title, body string, owner domain.Username) (domain.AddedThread, error)
	DetailFunc func(threadId domain.ThreadId) (domain.ThreadDetails, error)
}

func (m *MockThreadService) Add(ctx context.Context, title, body string, owner domain.Username) (domain.AddedThread, error) {
	if m.AddFunc != nil {
		return m.AddFunc(title, body, owner)
	}
	return domain.AddedThread{Id: "thread-123", Title: title, Owner: owner}, nil
}

func (m *MockThreadService) Detail(ctx context.Context, threadId domain.ThreadId) (domain.ThreadDetails, error) {
	if m.DetailFunc != nil {
		return m.DetailFunc(threadId)
	}
	return domain.ThreadDetails{Id: threadId, Comments: []domain.CommentDetails{}}, nil
}

type MockCommentService struct {
	AddFunc    func(threadId domain.ThreadId, content string, owner domain.Username) (domain.AddedComment, error)
	DeleteFunc func(threadId domain.ThreadId, commentId domain.CommentId, owner domain.Username) error
}

func (m *MockCommentService) Add(ctx context.Context, threadId domain.ThreadId, content string, owner domain.Username) (domain.AddedComment, error) {
	if m.AddFunc != nil {
		return m.AddFunc(threadId, content, owner)
	}
	return domain.AddedComment{Id: "comment-123", Content: content, Owner: owner}, nil
}

func (m *MockCommentService) Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, owner domain.Username) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(threadId, commentId, owner)
	}
	return nil
}

type MockReplyService struct {
	AddFunc    func(threadId domain.ThreadId, commentId domain.CommentId, content string, owner domain.Username) (domain.AddedReply, error)
	DeleteFunc func(threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, owner domain.Username) error
}

func (m *MockReplyService) Add(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, content string, owner domain.Username) (domain.AddedReply, error) {
	if m.AddFunc != nil {
		return m.AddFunc(threadId, commentId, content, owner)
	}
	return domain.AddedReply{Id: "reply-123", Content: content, Owner: owner}, nil
}

func (m *MockReplyService) Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, owner domain.Username) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(threadId, commentId, replyId, owner)
	}
	return nil
}

type MockHealthChecker struct {
	PingFunc func(ctx context.Context) error
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}
