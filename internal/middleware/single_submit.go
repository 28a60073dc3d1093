package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
)

// SingleSubmit rejects a request with 409 while another request with the
// same key is still in flight. Requests are never queued.
func SingleSubmit(key func(*gin.Context) string) gin.HandlerFunc {
	var (
		mu       sync.Mutex
		inFlight = make(map[string]struct{})
	)
	return func(c *gin.Context) {
		k := key(c)

		mu.Lock()
		if _, busy := inFlight[k]; busy {
			mu.Unlock()
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "An analysis is already in progress."})
			return
		}
		inFlight[k] = struct{}{}
		mu.Unlock()

		defer func() {
			mu.Lock()
			delete(inFlight, k)
			mu.Unlock()
		}()
		c.Next()
	}
}

// SessionKey keys requests by the authenticated user's email, falling back
// to the client address.
func SessionKey(c *gin.Context) string {
	if user, ok := CurrentUser(c); ok {
		return user.Email
	}
	return c.ClientIP()
}
