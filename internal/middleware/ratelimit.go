package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	limit "github.com/yangxikun/gin-limit-by-key"
	"golang.org/x/time/rate"
)

// limiterTTL is how long an idle client's bucket is kept.
const limiterTTL = time.Hour

// RateLimit is a token bucket per client IP.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	return limit.NewRateLimiter(func(c *gin.Context) string {
		return c.ClientIP()
	}, func(c *gin.Context) (*rate.Limiter, time.Duration) {
		return rate.NewLimiter(rate.Limit(rps), burst), limiterTTL
	}, func(c *gin.Context) {
		log.Printf("RateLimit(): %s exceeded %.2f req/s", c.ClientIP(), rps)
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests. Please wait a moment."})
	})
}
