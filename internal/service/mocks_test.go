package service

import (
	"context"
	"sync"

	"github.com/itchan-dev/forum-api/internal/domain"
)

// --- Mocks ---

// MockStorage mocks ThreadStorage, CommentStorage, ReplyStorage and AuthStorage.
// Every method falls back to success when its func field is nil.
type MockStorage struct {
	createThreadFunc        func(data domain.ThreadCreationData) (domain.AddedThread, error)
	threadByIdFunc          func(threadId domain.ThreadId) (domain.Thread, error)
	commentsByThreadIdFunc  func(threadId domain.ThreadId) ([]domain.Comment, error)
	repliesByThreadIdFunc   func(threadId domain.ThreadId) ([]domain.Reply, error)
	verifyThreadExistsFunc  func(threadId domain.ThreadId) error
	createCommentFunc       func(data domain.CommentCreationData) (domain.AddedComment, error)
	verifyCommentExistsFunc func(threadId domain.ThreadId, commentId domain.CommentId) error
	verifyCommentOwnerFunc  func(commentId domain.CommentId, owner domain.Username) error
	softDeleteCommentFunc   func(commentId domain.CommentId) error
	createReplyFunc         func(data domain.ReplyCreationData) (domain.AddedReply, error)
	verifyReplyExistsFunc   func(commentId domain.CommentId, replyId domain.ReplyId) error
	verifyReplyOwnerFunc    func(replyId domain.ReplyId, owner domain.Username) error
	softDeleteReplyFunc     func(replyId domain.ReplyId) error
	saveUserFunc            func(reg domain.UserRegistration, passHash string) (domain.RegisteredUser, error)
	userFunc                func(username domain.Username) (domain.User, error)

	mu    sync.Mutex
	calls []string
}

func (m *MockStorage) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
}

func (m *MockStorage) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

func (m *MockStorage) CreateThread(_ context.Context, data domain.ThreadCreationData) (domain.AddedThread, error) {
	m.record("CreateThread")
	if m.createThreadFunc != nil {
		return m.createThreadFunc(data)
	}
	return domain.AddedThread{Id: "thread-123", Title: data.Title, Owner: data.Owner}, nil
}

func (m *MockStorage) ThreadById(_ context.Context, threadId domain.ThreadId) (domain.Thread, error) {
	m.record("ThreadById")
	if m.threadByIdFunc != nil {
		return m.threadByIdFunc(threadId)
	}
	return domain.Thread{Id: threadId, Title: "sebuah thread", Body: "sebuah body thread", Username: "dicoding", CreatedAt: created}, nil
}

func (m *MockStorage) CommentsByThreadId(_ context.Context, threadId domain.ThreadId) ([]domain.Comment, error) {
	m.record("CommentsByThreadId")
	if m.commentsByThreadIdFunc != nil {
		return m.commentsByThreadIdFunc(threadId)
	}
	return nil, nil
}

func (m *MockStorage) RepliesByThreadId(_ context.Context, threadId domain.ThreadId) ([]domain.Reply, error) {
	m.record("RepliesByThreadId")
	if m.repliesByThreadIdFunc != nil {
		return m.repliesByThreadIdFunc(threadId)
	}
	return nil, nil
}

func (m *MockStorage) VerifyThreadExists(_ context.Context, threadId domain.ThreadId) error {
	m.record("VerifyThreadExists")
	if m.verifyThreadExistsFunc != nil {
		return m.verifyThreadExistsFunc(threadId)
	}
	return nil
}

func (m *MockStorage) CreateComment(_ context.Context, data domain.CommentCreationData) (domain.AddedComment, error) {
	m.record("CreateComment")
	if m.createCommentFunc != nil {
		return m.createCommentFunc(data)
	}
	return domain.AddedComment{Id: "comment-123", Content: data.Content, Owner: data.Owner}, nil
}

func (m *MockStorage) VerifyCommentExists(_ context.Context, threadId domain.ThreadId, commentId domain.CommentId) error {
	m.record("VerifyCommentExists")
	if m.verifyCommentExistsFunc != nil {
		return m.verifyCommentExistsFunc(threadId, commentId)
	}
	return nil
}

func (m *MockStorage) VerifyCommentOwner(_ context.Context, commentId domain.CommentId, owner domain.Username) error {
	m.record("VerifyCommentOwner")
	if m.verifyCommentOwnerFunc != nil {
		return m.verifyCommentOwnerFunc(commentId, owner)
	}
	return nil
}

func (m *MockStorage) SoftDeleteComment(_ context.Context, commentId domain.CommentId) error {
	m.record("SoftDeleteComment")
	if m.softDeleteCommentFunc != nil {
		return m.softDeleteCommentFunc(commentId)
	}
	return nil
}

func (m *MockStorage) CreateReply(_ context.Context, data domain.ReplyCreationData) (domain.AddedReply, error) {
	m.record("CreateReply")
	if m.createReplyFunc != nil {
		return m.createReplyFunc(data)
	}
	return domain.AddedReply{Id: "reply-123", Content: data.Content, Owner: data.Owner}, nil
}

func (m *MockStorage) VerifyReplyExists(_ context.Context, commentId domain.CommentId, replyId domain.ReplyId) error {
	m.record("VerifyReplyExists")
	if m.verifyReplyExistsFunc != nil {
		return m.verifyReplyExistsFunc(commentId, replyId)
	}
	return nil
}

func (m *MockStorage) VerifyReplyOwner(_ context.Context, replyId domain.ReplyId, owner domain.Username) error {
	m.record("VerifyReplyOwner")
	if m.verifyReplyOwnerFunc != nil {
		return m.verifyReplyOwnerFunc(replyId, owner)
	}
	return nil
}

func (m *MockStorage) SoftDeleteReply(_ context.Context, replyId domain.ReplyId) error {
	m.record("SoftDeleteReply")
	if m.softDeleteReplyFunc != nil {
		return m.softDeleteReplyFunc(replyId)
	}
	return nil
}

func (m *MockStorage) SaveUser(_ context.Context, reg domain.UserRegistration, passHash string) (domain.RegisteredUser, error) {
	m.record("SaveUser")
	if m.saveUserFunc != nil {
		return m.saveUserFunc(reg, passHash)
	}
	return domain.RegisteredUser{Id: "user-123", Username: reg.Username, Fullname: reg.Fullname}, nil
}

func (m *MockStorage) User(_ context.Context, username domain.Username) (domain.User, error) {
	m.record("User")
	if m.userFunc != nil {
		return m.userFunc(username)
	}
	return domain.User{Id: "user-123", Username: username}, nil
}

// allowMarkup accepts any text.
type allowMarkup struct{}

func (allowMarkup) Check(string) error { return nil }

type MockJwt struct {
	newTokenFunc func(user domain.User) (string, error)
}

func (m *MockJwt) NewToken(user domain.User) (string, error) {
	if m.newTokenFunc != nil {
		return m.newTokenFunc(user)
	}
	return "token-" + user.Username, nil
}
