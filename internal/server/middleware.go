package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	account "lot-market/internal/accountService"
	"lot-market/internal/marketerrors"
	"lot-market/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// TokenVerifier validates a session token and returns its claims.
type TokenVerifier interface {
	VerifyToken(token string) (account.SessionClaims, error)
}

// AdminAuthMiddleware gates the operator surface. The minimum viable contract
// is a bearer comparison on X-Admin-Secret; a session token with the admin
// claim is accepted as the upgraded path.
func AdminAuthMiddleware(secret string, verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret != "" && c.GetHeader("X-Admin-Secret") == secret {
			c.Next()
			return
		}

		if auth := c.GetHeader("Authorization"); verifier != nil && strings.HasPrefix(auth, "Bearer ") {
			claims, err := verifier.VerifyToken(strings.TrimPrefix(auth, "Bearer "))
			if err == nil && claims.IsAdmin {
				c.Set("user_id", claims.UserID)
				c.Next()
				return
			}
		}

		err := fmt.Errorf("%w - admin credential required", marketerrors.ErrForbidden)
		utils.JSONError(c, http.StatusForbidden, err, "forbidden")
		c.Abort()
	}
}

// SecretAuthMiddleware gates a route group behind a shared-secret header.
func SecretAuthMiddleware(header, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" || c.GetHeader(header) != secret {
			err := fmt.Errorf("%w - missing or incorrect %s", marketerrors.ErrForbidden, header)
			utils.JSONError(c, http.StatusForbidden, err, "forbidden")
			c.Abort()
			return
		}
		c.Next()
	}
}

const (
	rateLimitWindow = time.Minute
	rateLimitMax    = 60
)

// RateLimitMiddleware caps requests per client IP using a Redis counter with
// a one-minute TTL. Fails open: a nil client or a Redis error skips the check.
func RateLimitMiddleware(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:%s", c.ClientIP())
		ctx := context.Background()

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			c.Next()
			return
		}
		if count == 1 {
			rdb.Expire(ctx, key, rateLimitWindow)
		}

		if count > rateLimitMax {
			utils.JSONError(c, http.StatusTooManyRequests,
				fmt.Errorf("rate limit exceeded for %s", c.ClientIP()), "rate limit exceeded")
			c.Abort()
			return
		}
		c.Next()
	}
}
