package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-clinic-management/config"
	"go-clinic-management/pkg/jwt"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authTestEnv struct {
	middleware *AuthMiddleware
	jwtService *jwt.JWTService
	redis      *miniredis.Miniredis
}

func newAuthTestEnv(t *testing.T) *authTestEnv {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 24 * time.Hour,
	})

	return &authTestEnv{
		middleware: NewAuthMiddleware(jwtService, client),
		jwtService: jwtService,
		redis:      mr,
	}
}

func (e *authTestEnv) issueAccessToken(t *testing.T, userID uuid.UUID, roleID int) string {
	t.Helper()

	token, tokenID, err := e.jwtService.GenerateAccessToken(userID, "ada@example.com", "Ada Brown", roleID)
	require.NoError(t, err)
	e.redis.Set(fmt.Sprintf("access_token:%s:%s", userID.String(), tokenID), "1")
	return token
}

func TestAuthenticate(t *testing.T) {
	t.Run("valid token reaches the handler with identity in context", func(t *testing.T) {
		env := newAuthTestEnv(t)
		userID := uuid.New()
		token := env.issueAccessToken(t, userID, 2)

		var gotUserID uuid.UUID
		var gotRoleID int
		var gotEmail, gotName, gotTokenID string
		handler := env.middleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUserID, _ = GetUserIDFromContext(r.Context())
			gotRoleID, _ = GetRoleIDFromContext(r.Context())
			gotEmail, _ = GetUserEmailFromContext(r.Context())
			gotName, _ = GetUserFullNameFromContext(r.Context())
			gotTokenID, _ = GetTokenIDFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, userID, gotUserID)
		assert.Equal(t, 2, gotRoleID)
		assert.Equal(t, "ada@example.com", gotEmail)
		assert.Equal(t, "Ada Brown", gotName)
		assert.NotEmpty(t, gotTokenID)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		env := newAuthTestEnv(t)
		handler := env.middleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not be reached")
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header is rejected", func(t *testing.T) {
		env := newAuthTestEnv(t)
		handler := env.middleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not be reached")
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Token abc")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("revoked token is rejected", func(t *testing.T) {
		env := newAuthTestEnv(t)
		userID := uuid.New()
		token := env.issueAccessToken(t, userID, 3)
		env.redis.FlushAll()

		handler := env.middleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not be reached")
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("refresh token cannot be used as access token", func(t *testing.T) {
		env := newAuthTestEnv(t)
		userID := uuid.New()
		refresh, tokenID, err := env.jwtService.GenerateRefreshToken(userID, "ada@example.com", "Ada Brown", 3)
		require.NoError(t, err)
		env.redis.Set(fmt.Sprintf("access_token:%s:%s", userID.String(), tokenID), "1")

		handler := env.middleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not be reached")
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+refresh)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRole(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	withRole := func(req *http.Request, roleID int) context.Context {
		return context.WithValue(req.Context(), RoleIDKey, roleID)
	}

	t.Run("allows a listed role", func(t *testing.T) {
		handler := RequireAdminOrDoctor(okHandler)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(withRole(req, 2))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("forbids an unlisted role", func(t *testing.T) {
		handler := RequireAdmin(okHandler)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(withRole(req, 3))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("rejects requests with no role in context", func(t *testing.T) {
		handler := RequireDoctor(okHandler)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
