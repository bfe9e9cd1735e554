package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/itchan-dev/forum-api/internal/domain"
	"github.com/itchan-dev/forum-api/internal/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeedAuth(t *testing.T) {
	jwtService := jwt.New("test_secret", time.Hour)
	user := domain.User{Id: "user-123", Username: "dicoding"}
	token, err := jwtService.NewToken(user)
	require.NoError(t, err)
	otherToken, err := jwt.New("other_secret", time.Hour).NewToken(user)
	require.NoError(t, err)

	tests := []struct {
		name           string
		header         string
		expectedStatus int
		expectedUser   *domain.User
		expectedError  string
	}{
		{
			name:           "Valid token",
			header:         "Bearer " + token,
			expectedStatus: http.StatusOK,
			expectedUser:   &domain.User{Id: "user-123", Username: "dicoding"},
		},
		{
			name:           "No header",
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Missing authentication",
		},
		{
			name:           "Wrong scheme",
			header:         "Basic " + token,
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Missing authentication",
		},
		{
			name:           "Empty bearer",
			header:         "Bearer ",
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Missing authentication",
		},
		{
			name:           "Invalid token",
			header:         "Bearer invalid_token",
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "access token tidak valid",
		},
		{
			name:           "Signed with another key",
			header:         "Bearer " + otherToken,
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "access token tidak valid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUser *domain.User
			handler := NewAuth(jwtService).NeedAuth()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser = GetUserFromContext(r)
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodPost, "/threads", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedUser, gotUser)
			if tt.expectedError != "" {
				assert.JSONEq(t, `{"status":"fail","message":"`+tt.expectedError+`"}`, rr.Body.String())
			}
		})
	}
}

func TestGetUserFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, GetUserFromContext(req))

	user := &domain.User{Id: "user-123", Username: "dicoding"}
	assert.Equal(t, user, GetUserFromContext(WithUser(req, user)))
}
