package middleware

import (
	"context"
	"net/http"
	"time"

	userRepo "github.com/Codekiller51/brandconnect-server/database/repository/user"
	"github.com/Codekiller51/brandconnect-server/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// JWTAuthUserMiddleware authenticates client accounts. The token hash is
// checked against the auth cache first; a cache miss falls back to the stored
// hash on the account document.
func JWTAuthUserMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			return
		}

		userID, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || userID == "" || role != utils.RoleClient {
			abortUnauthorized(c, "Invalid token")
			return
		}

		computedHash := utils.HashToken(tokenString)
		ctx := context.Background()
		cacheKey := utils.AuthCachePrefix + userID

		authCache := utils.GetAuthCacheClient()
		if authCache != nil {
			cachedHash, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil {
				if cachedHash != computedHash {
					abortUnauthorized(c, "Token mismatch")
					return
				}
				_ = authCache.Expire(ctx, cacheKey, time.Hour).Err()
				setIdentity(c, userID, utils.RoleClient)
				c.Next()
				return
			}
			if err != redis.Nil {
				zap.L().Warn("auth cache lookup failed, falling back to DB", zap.Error(err))
			}
		}

		u, err := repo.GetByIDWithProjection(ctx, userID, bson.M{"id": 1, "tokenHash": 1, "suspended": 1})
		if err != nil || u == nil {
			abortUnauthorized(c, "Authentication error")
			return
		}
		if u.Suspended || u.TokenHash == "" || u.TokenHash != computedHash {
			abortUnauthorized(c, "Token mismatch")
			return
		}

		if authCache != nil {
			_ = authCache.Set(ctx, cacheKey, computedHash, time.Hour).Err()
		}
		setIdentity(c, userID, utils.RoleClient)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}
