package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bookshelf-be/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedRouter(extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers := append([]gin.HandlerFunc{Auth()}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		id, _ := UserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id, "is_admin": IsAdmin(c)})
	})
	r.GET("/protected", handlers...)
	return r
}

func TestAuth_MissingHeader(t *testing.T) {
	r := protectedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_InvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := protectedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_ValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := user.GenerateJWT(7, "alice", false)
	require.NoError(t, err)

	r := protectedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":7`)
}

func TestRequireAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("regular user is forbidden", func(t *testing.T) {
		token, err := user.GenerateJWT(7, "alice", false)
		require.NoError(t, err)

		r := protectedRouter(RequireAdmin())
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin passes", func(t *testing.T) {
		token, err := user.GenerateJWT(1, "admin", true)
		require.NoError(t, err)

		r := protectedRouter(RequireAdmin())
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRateLimitKeysAuthenticatedUsersSeparately(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	r := gin.New()
	r.Use(RateLimit())
	r.POST("/api/users/login", func(c *gin.Context) { c.Status(http.StatusOK) })

	tokenA, err := user.GenerateJWT(501, "rate-a", false)
	require.NoError(t, err)
	tokenB, err := user.GenerateJWT(502, "rate-b", false)
	require.NoError(t, err)

	send := func(token, addr string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/users/login", nil)
		req.RemoteAddr = addr
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		r.ServeHTTP(w, req)
		return w.Code
	}

	// Drain the first user's strict bucket.
	for i := 0; i < burstStrict; i++ {
		require.Equal(t, http.StatusOK, send(tokenA, "10.8.0.1:40000"))
	}
	assert.Equal(t, http.StatusTooManyRequests, send(tokenA, "10.8.0.1:40000"))

	// A different user behind the same address still has a full bucket,
	// as does an anonymous caller on its own address.
	assert.Equal(t, http.StatusOK, send(tokenB, "10.8.0.1:40000"))
	assert.Equal(t, http.StatusOK, send("", "10.8.0.2:40000"))
}

func TestRequestIDEchoedAndGenerated(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("incoming id is preserved", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "given-id")
		r.ServeHTTP(w, req)

		assert.Equal(t, "given-id", w.Header().Get("X-Request-ID"))
	})

	t.Run("missing id is generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		r.ServeHTTP(w, req)

		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})
}
