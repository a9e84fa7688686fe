package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"agenda/internal/auth"
	"agenda/internal/handler"
	"agenda/internal/model"
)

func TestAuthHandler_Signup(t *testing.T) {
	payload := map[string]string{
		"first_name": "A",
		"last_name":  "B",
		"email":      "a@b.com",
		"birthday":   "2000-01-01",
		"password":   "password123",
	}

	t.Run("registered", func(t *testing.T) {
		e, mocks := newTestServer()
		mocks.accountRepo.On("FindByEmail", mock.Anything, "a@b.com").Return(nil, gorm.ErrRecordNotFound)
		mocks.accountRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Account")).Return(nil)

		resp := doJSON(e, http.MethodPost, "/signup", payload)
		require.Equal(t, http.StatusCreated, resp.Code)
		mocks.accountRepo.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		e, mocks := newTestServer()
		mocks.accountRepo.On("FindByEmail", mock.Anything, "a@b.com").Return(&model.Account{Email: "a@b.com"}, nil)

		resp := doJSON(e, http.MethodPost, "/signup", payload)
		require.Equal(t, http.StatusBadRequest, resp.Code)
		require.Contains(t, resp.Body.String(), "DUPLICATE_ACCOUNT")
		mocks.accountRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("bad birthday format", func(t *testing.T) {
		e, mocks := newTestServer()

		bad := map[string]string{}
		for k, v := range payload {
			bad[k] = v
		}
		bad["birthday"] = "01/01/2000"

		resp := doJSON(e, http.MethodPost, "/signup", bad)
		require.Equal(t, http.StatusBadRequest, resp.Code)
		mocks.accountRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)

	t.Run("token issued", func(t *testing.T) {
		e, mocks := newTestServer()
		mocks.accountRepo.On("FindByEmail", mock.Anything, "a@b.com").Return(&model.Account{
			ID:           7,
			Email:        "a@b.com",
			PasswordHash: string(hashedPassword),
		}, nil)

		resp := doJSON(e, http.MethodPost, "/login", map[string]string{
			"email":    "a@b.com",
			"password": "password123",
		})
		require.Equal(t, http.StatusOK, resp.Code)

		var body handler.TokenResponse
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		require.NotEmpty(t, body.Token)

		claims, err := mocks.jwt.ValidateToken(body.Token)
		require.NoError(t, err)
		require.Equal(t, uint(7), claims.UserID)
	})

	t.Run("failure bodies are bit-identical", func(t *testing.T) {
		e, mocks := newTestServer()
		mocks.accountRepo.On("FindByEmail", mock.Anything, "nobody@b.com").Return(nil, gorm.ErrRecordNotFound)
		mocks.accountRepo.On("FindByEmail", mock.Anything, "a@b.com").Return(&model.Account{
			ID:           7,
			Email:        "a@b.com",
			PasswordHash: string(hashedPassword),
		}, nil)

		unknown := doJSON(e, http.MethodPost, "/login", map[string]string{
			"email":    "nobody@b.com",
			"password": "password123",
		})
		wrong := doJSON(e, http.MethodPost, "/login", map[string]string{
			"email":    "a@b.com",
			"password": "wrong-password",
		})

		require.Equal(t, http.StatusBadRequest, unknown.Code)
		require.Equal(t, unknown.Code, wrong.Code)
		require.Equal(t, unknown.Body.String(), wrong.Body.String())
	})
}

func TestAuthHandler_Protected(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		e, _ := newTestServer()

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		resp := httptest.NewRecorder()
		e.ServeHTTP(resp, req)

		require.Equal(t, http.StatusUnauthorized, resp.Code)
		require.Contains(t, resp.Body.String(), "NO_TOKEN")
	})

	t.Run("garbage token", func(t *testing.T) {
		e, _ := newTestServer()

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		resp := httptest.NewRecorder()
		e.ServeHTTP(resp, req)

		require.Equal(t, http.StatusForbidden, resp.Code)
		require.Contains(t, resp.Body.String(), "INVALID_TOKEN")
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		e, _ := newTestServer()

		foreign, err := auth.NewJWTService("other-secret").GenerateToken(7)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+foreign)
		resp := httptest.NewRecorder()
		e.ServeHTTP(resp, req)

		require.Equal(t, http.StatusForbidden, resp.Code)
		require.Contains(t, resp.Body.String(), "INVALID_TOKEN")
	})

	t.Run("expired token", func(t *testing.T) {
		e, _ := newTestServer()

		now := time.Now()
		claims := &auth.Claims{
			UserID: 7,
			RegisteredClaims: jwt.RegisteredClaims{
				IssuedAt:  jwt.NewNumericDate(now.Add(-2 * auth.TokenTTL)),
				ExpiresAt: jwt.NewNumericDate(now.Add(-auth.TokenTTL)),
			},
		}
		expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+expired)
		resp := httptest.NewRecorder()
		e.ServeHTTP(resp, req)

		require.Equal(t, http.StatusForbidden, resp.Code)
	})

	t.Run("valid token echoes the claim", func(t *testing.T) {
		e, mocks := newTestServer()

		token, err := mocks.jwt.GenerateToken(7)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp := httptest.NewRecorder()
		e.ServeHTTP(resp, req)

		require.Equal(t, http.StatusOK, resp.Code)

		var body handler.ProtectedResponse
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		require.Equal(t, uint(7), body.UserID)
	})
}
