package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func jwtTestConfig() JWTConfig {
	return JWTConfig{
		SigningKey: []byte("0123456789abcdef0123456789abcdef"),
		Issuer:     "dir-steward-test",
		ExpiresIn:  time.Hour,
	}
}

func jwtTestRouter(signingKey []byte) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(JWTAuth(signingKey))
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"actor": GetActorID(c.Request.Context())})
	})
	return r
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	cfg := jwtTestConfig()
	token, _, err := GenerateToken(cfg, "admin@example.com", []string{"admin"})
	require.NoError(t, err)

	r := jwtTestRouter(cfg.SigningKey)
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "admin@example.com")
}

func TestJWTAuthRejectsBadRequests(t *testing.T) {
	cfg := jwtTestConfig()
	expired := cfg
	expired.ExpiresIn = -time.Hour
	expiredToken, _, err := GenerateToken(expired, "admin@example.com", nil)
	require.NoError(t, err)

	wrongKey := cfg
	wrongKey.SigningKey = []byte("ffffffffffffffffffffffffffffffff")
	forgedToken, _, err := GenerateToken(wrongKey, "admin@example.com", nil)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"expired token", "Bearer " + expiredToken},
		{"wrong signing key", "Bearer " + forgedToken},
		{"garbage token", "Bearer not.a.jwt"},
	}

	r := jwtTestRouter(cfg.SigningKey)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			require.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestRequestIDGeneratedAndEchoed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c.Request.Context()))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotEmpty(t, w.Header().Get(RequestIDHeader))
	require.Equal(t, w.Header().Get(RequestIDHeader), w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "rid-42")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, "rid-42", w.Body.String())
}
