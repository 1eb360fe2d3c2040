package middleware

import (
	"net/http"
	"sync"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-gonic/gin"
	"github.com/towoju5/bridge-verification-system-sub001/config"
	u "github.com/towoju5/bridge-verification-system-sub001/utils"
)

var (
	anonymousLimiter gin.HandlerFunc
	sessionLimiter   gin.HandlerFunc
	initOnce         sync.Once
	blacklistedIPs   = make(map[string]time.Time)
	blacklistMutex   = sync.RWMutex{}
)

// addToBlacklist adds an IP to the blacklist with timestamp
func addToBlacklist(ip string) {
	blacklistMutex.Lock()
	defer blacklistMutex.Unlock()
	blacklistedIPs[ip] = time.Now()
}

// isBlacklisted checks if an IP is blacklisted
func isBlacklisted(ip string) bool {
	blacklistMutex.RLock()
	defer blacklistMutex.RUnlock()
	_, exists := blacklistedIPs[ip]
	return exists
}

// RateLimitMiddleware applies rate limiting keyed by session token when
// one is presented, otherwise by client IP.
func RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		if isBlacklisted(clientIP) {
			u.APIResponse(
				c,
				http.StatusForbidden,
				"error",
				"IP address is temporarily blocked due to rate limit violations",
				map[string]interface{}{
					"blocked_until": "server restart",
				},
			)
			c.Abort()
			return
		}

		initOnce.Do(func() {
			conf := config.ServerConfig()

			anonymousStore := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
				Rate:  time.Second,
				Limit: uint(conf.RateLimitUnauthenticated),
			})
			anonymousLimiter = ratelimit.RateLimiter(anonymousStore, &ratelimit.Options{
				ErrorHandler: func(c *gin.Context, info ratelimit.Info) {
					addToBlacklist(c.ClientIP())

					u.APIResponse(
						c,
						http.StatusTooManyRequests,
						"error",
						"Too many requests from this IP address. IP has been temporarily blocked.",
						map[string]interface{}{
							"retry_after":   time.Until(info.ResetTime).Seconds(),
							"limit":         info.Limit,
							"blocked_until": "server restart",
						},
					)
					c.Abort()
				},
				KeyFunc: func(c *gin.Context) string {
					return "ip:" + c.ClientIP()
				},
			})

			sessionStore := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
				Rate:  time.Second,
				Limit: uint(conf.RateLimitAuthenticated),
			})
			sessionLimiter = ratelimit.RateLimiter(sessionStore, &ratelimit.Options{
				ErrorHandler: func(c *gin.Context, info ratelimit.Info) {
					addToBlacklist(c.ClientIP())

					u.APIResponse(
						c,
						http.StatusTooManyRequests,
						"error",
						"Too many requests for this session. IP has been temporarily blocked.",
						map[string]interface{}{
							"retry_after":   time.Until(info.ResetTime).Seconds(),
							"limit":         info.Limit,
							"blocked_until": "server restart",
						},
					)
					c.Abort()
				},
				KeyFunc: func(c *gin.Context) string {
					return "session:" + c.GetHeader("Authorization")
				},
			})
		})

		if token := c.GetHeader("Authorization"); token != "" {
			sessionLimiter(c)
		} else {
			anonymousLimiter(c)
		}

		c.Next()
	}
}
