package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediexplain/internal/auth"
	"mediexplain/internal/models"
	"mediexplain/internal/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var asha = models.User{Name: "Asha", Email: "asha@example.com"}

func newAuthRouter(t *testing.T) (*gin.Engine, *storage.SessionStore) {
	store := storage.NewMemoryStore()
	t.Cleanup(func() { store.Close() })
	sessions := storage.NewSessionStore(store)
	auth.Init("middleware-test", time.Hour)

	r := gin.New()
	r.GET("/me", AuthMiddleware(sessions), func(c *gin.Context) {
		user, ok := CurrentUser(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, user)
	})
	return r, sessions
}

func get(r http.Handler, target string, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r, sessions := newAuthRouter(t)
	ctx := context.Background()
	require.NoError(t, sessions.Save(ctx, asha))
	token, err := auth.GenerateToken(asha)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", "Token "+token).Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", "Bearer junk").Code)

	w := get(r, "/me", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "asha@example.com")

	assert.Equal(t, http.StatusOK, get(r, "/me?token="+token, "").Code)
}

func TestAuthMiddlewareRequiresLiveSession(t *testing.T) {
	r, sessions := newAuthRouter(t)
	ctx := context.Background()
	token, err := auth.GenerateToken(asha)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", "Bearer "+token).Code)

	require.NoError(t, sessions.Save(ctx, models.User{Name: "Other", Email: "other@example.com"}))
	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", "Bearer "+token).Code)

	require.NoError(t, sessions.Save(ctx, asha))
	assert.Equal(t, http.StatusOK, get(r, "/me", "Bearer "+token).Code)

	require.NoError(t, sessions.Clear(ctx))
	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", "Bearer "+token).Code)
}

func TestSingleSubmit(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})

	r := gin.New()
	r.POST("/analyze", SingleSubmit(func(*gin.Context) string { return "one" }), func(c *gin.Context) {
		entered <- struct{}{}
		<-release
		c.Status(http.StatusOK)
	})

	var wg sync.WaitGroup
	first := httptest.NewRecorder()
	wg.Add(1)
	go func() {
		defer wg.Done()
		r.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/analyze", nil))
	}()
	<-entered

	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/analyze", nil))
	assert.Equal(t, http.StatusConflict, second.Code)

	close(release)
	wg.Wait()
	assert.Equal(t, http.StatusOK, first.Code)

	go func() { <-entered }()
	third := httptest.NewRecorder()
	r.ServeHTTP(third, httptest.NewRequest(http.MethodPost, "/analyze", nil))
	assert.Equal(t, http.StatusOK, third.Code)
}

func TestRateLimit(t *testing.T) {
	r := gin.New()
	r.GET("/x", RateLimit(0.001, 2), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		codes = append(codes, get(r, "/x", "").Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}
