package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	userRepo "fixify/database/repository/user"
	"fixify/models"
	"fixify/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const authCacheTTL = time.Hour

// JWTAuthMiddleware validates the bearer token and sets userID and role in
// the gin context. The role always reflects the stored user document, never
// the token claim, so a promotion takes effect on the next request. Validated
// token hashes are cached in Redis with the document role as the value and a
// sliding TTL; a cache miss falls back to a user lookup.
func JWTAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := zap.L()
		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, _, err := utils.ExtractIdentityFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + computedHash

		authCache := utils.GetAuthCacheClient()
		if cachedRole, err := authCache.Get(ctx, cacheKey).Result(); err == nil && cachedRole != "" {
			// Refresh TTL (sliding expiration) and proceed.
			if err := authCache.Expire(ctx, cacheKey, authCacheTTL).Err(); err != nil {
				logger.Error("Failed to refresh auth cache TTL", zap.Error(err))
			}
			c.Set("userID", userID)
			c.Set("role", cachedRole)
			c.Next()
			return
		} else if err != nil && err != redis.Nil {
			logger.Error("Error checking auth cache", zap.Error(err))
		}

		// Cache miss: confirm the account still exists and read its role.
		usr, err := users.GetByID(models.UserID(userID))
		if err != nil || usr == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication error"})
			return
		}

		if err := authCache.Set(ctx, cacheKey, usr.Role, authCacheTTL).Err(); err != nil {
			logger.Error("Failed to set auth cache", zap.Error(err))
		}

		c.Set("userID", userID)
		c.Set("role", usr.Role)
		c.Next()
	}
}

// CallerID returns the authenticated user id from the gin context.
func CallerID(c *gin.Context) models.UserID {
	return models.UserID(c.GetString("userID"))
}

// CallerRole returns the authenticated role from the gin context.
func CallerRole(c *gin.Context) string {
	return c.GetString("role")
}
