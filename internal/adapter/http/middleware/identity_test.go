package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signedToken(t *testing.T, secret, sub string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": sub})
	raw, err := tok.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return raw
}

func identityRouter() (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)
	var actor string
	r := gin.New()
	r.Use(Identity(testSecret))
	r.GET("/probe", func(c *gin.Context) {
		actor = Actor(c)
		c.Status(http.StatusOK)
	})
	return r, &actor
}

func TestIdentity(t *testing.T) {
	t.Run("no token passes through anonymously", func(t *testing.T) {
		r, actor := identityRouter()

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if *actor != "" {
			t.Fatalf("expected anonymous actor, got %q", *actor)
		}
	})

	t.Run("valid token stamps subject", func(t *testing.T) {
		r, actor := identityRouter()

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, testSecret, "user-1"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if *actor != "user-1" {
			t.Fatalf("expected user-1, got %q", *actor)
		}
	})

	t.Run("token with wrong signature is ignored", func(t *testing.T) {
		r, actor := identityRouter()

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, "other-secret", "user-1"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if *actor != "" {
			t.Fatalf("expected anonymous actor, got %q", *actor)
		}
	})

	t.Run("malformed token is ignored", func(t *testing.T) {
		r, actor := identityRouter()

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if *actor != "" {
			t.Fatalf("expected anonymous actor, got %q", *actor)
		}
	})
}
