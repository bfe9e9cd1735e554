package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/forum-api/internal/config"
	"github.com/itchan-dev/forum-api/internal/domain"
	"github.com/itchan-dev/forum-api/internal/middleware"
)

var dicoding = &domain.User{Id: "user-123", Username: "dicoding"}

// testHandler builds a Handler with default mocks; callers override the ones they care about.
func testHandler() (*Handler, *MockAuthService, *MockThreadService, *MockCommentService, *MockReplyService) {
	auth := &MockAuthService{}
	thread := &MockThreadService{}
	comment := &MockCommentService{}
	reply := &MockReplyService{}
	cfg := &config.Config{}
	cfg.Public.MaxBodyBytes = 1 << 10
	return New(auth, thread, comment, reply, &MockHealthChecker{}, cfg), auth, thread, comment, reply
}

// testRouter mounts the handlers on the same paths the production router uses,
// without the auth middleware so tests can attach users directly.
func testRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Post("/users", h.RegisterUser)
	r.Post("/authentications", h.Login)
	r.Post("/threads", h.CreateThread)
	r.Get("/threads/{threadId}", h.GetThread)
	r.Post("/threads/{threadId}/comments", h.AddComment)
	r.Delete("/threads/{threadId}/comments/{commentId}", h.DeleteComment)
	r.Post("/threads/{threadId}/comments/{commentId}/replies", h.AddReply)
	r.Delete("/threads/{threadId}/comments/{commentId}/replies/{replyId}", h.DeleteReply)
	return r
}

func createRequest(t *testing.T, method, url string, body []byte, user *domain.User) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, url, bytes.NewBuffer(body))
	if user != nil {
		req = middleware.WithUser(req, user)
	}
	return req
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	testRouter(h).ServeHTTP(rr, req)
	return rr
}
