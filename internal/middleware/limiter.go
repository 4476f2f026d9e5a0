package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"bookshelf-be/internal/user"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Rate limit tiers. Auth endpoints get the strict bucket; browsing gets the
// general one.
const (
	limitStrict = rate.Limit(2)
	burstStrict = 5

	limitGeneral = rate.Limit(10)
	burstGeneral = 20
)

// visitor holds the rate limiter and the last time it was seen.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	visitors = make(map[string]*visitor)
	mu       sync.Mutex
)

func init() {
	go cleanupVisitors()
}

func getVisitor(key string, r rate.Limit, b int) *rate.Limiter {
	mu.Lock()
	defer mu.Unlock()

	v, exists := visitors[key]
	if !exists {
		limiter := rate.NewLimiter(r, b)
		visitors[key] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// cleanupVisitors removes stale entries so the map cannot grow without bound.
func cleanupVisitors() {
	for {
		time.Sleep(time.Minute)

		mu.Lock()
		for key, v := range visitors {
			if time.Since(v.lastSeen) > 3*time.Minute {
				delete(visitors, key)
			}
		}
		mu.Unlock()
	}
}

// RateLimit enforces per-identity token buckets: authenticated users get a
// bucket per user id, anonymous callers one per IP.
func RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, burst, tier := resolveRateTier(c)

		var identity string
		if userID, ok := UserID(c); ok {
			identity = fmt.Sprintf("user:%d", userID)
		} else if claims := bearerClaims(c); claims != nil {
			identity = fmt.Sprintf("user:%d", claims.UserID)
		} else {
			ip, _, err := net.SplitHostPort(c.Request.RemoteAddr)
			if err != nil {
				ip = c.Request.RemoteAddr
			}
			identity = "ip:" + ip
		}

		key := fmt.Sprintf("%s:%s", identity, tier)
		if !getVisitor(key, limit, burst).Allow() {
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}

		c.Next()
	}
}

// bearerClaims parses the Authorization header without enforcing it. The
// limiter runs before Auth, so keying authenticated traffic per user means
// reading the token here; absent or invalid tokens fall back to the IP key
// and are rejected later by Auth where it is mounted.
func bearerClaims(c *gin.Context) *user.CustomClaims {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil
	}
	claims, err := user.ParseJWT(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return nil
	}
	return claims
}

func resolveRateTier(c *gin.Context) (rate.Limit, int, string) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/users/") {
		return limitStrict, burstStrict, "strict"
	}
	return limitGeneral, burstGeneral, "general"
}
