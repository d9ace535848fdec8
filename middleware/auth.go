package middleware

import (
	"context"
	"net/http"
	"strings"

	facultyRepo "slotify/database/repository/faculty"
	"slotify/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// JWTAuthFacultyMiddleware validates the bearer token, checks its hash
// against the auth cache (falling back to the faculty record on a cache
// miss), and stores the faculty ID in the request context.
func JWTAuthFacultyMiddleware(repo facultyRepo.FacultyRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
			}
		}()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		facultyID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || facultyID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		ctx := context.Background()
		cache := utils.GetAuthCacheClient()

		storedHash, err := cache.Get(ctx, utils.AuthCachePrefix+facultyID).Result()
		if err == redis.Nil {
			// Cache miss: fall back to the persisted hash and re-prime.
			f, err := repo.GetByID(ctx, facultyID)
			if err != nil || f.TokenHash == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
				return
			}
			storedHash = f.TokenHash
			cache.Set(ctx, utils.AuthCachePrefix+facultyID, storedHash, utils.AuthCacheTTL)
		} else if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Authorization check failed"})
			return
		}

		if storedHash != computedHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		c.Set("facultyID", facultyID)
		c.Next()
	}
}
