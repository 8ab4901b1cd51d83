package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	creativeRepo "github.com/Codekiller51/brandconnect-server/database/repository/creative"
	"github.com/Codekiller51/brandconnect-server/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// bearerToken pulls the token from the Authorization header, aborting with 401
// when it is missing.
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
		return "", false
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
		return "", false
	}
	return tokenString, true
}

func setIdentity(c *gin.Context, accountID, role string) {
	c.Set("accountID", accountID)
	c.Set("role", role)
}

// JWTAuthCreativeMiddleware authenticates creative accounts, same shape as
// the client variant.
func JWTAuthCreativeMiddleware(repo creativeRepo.CreativeRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			return
		}

		creativeID, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || creativeID == "" || role != utils.RoleCreative {
			abortUnauthorized(c, "Invalid token")
			return
		}

		computedHash := utils.HashToken(tokenString)
		ctx := context.Background()
		cacheKey := utils.AuthCachePrefix + creativeID

		authCache := utils.GetAuthCacheClient()
		if authCache != nil {
			cachedHash, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil {
				if cachedHash != computedHash {
					abortUnauthorized(c, "Token mismatch")
					return
				}
				_ = authCache.Expire(ctx, cacheKey, time.Hour).Err()
				setIdentity(c, creativeID, utils.RoleCreative)
				c.Next()
				return
			}
			if err != redis.Nil {
				zap.L().Warn("auth cache lookup failed, falling back to DB", zap.Error(err))
			}
		}

		cr, err := repo.GetByIDWithProjection(ctx, creativeID, bson.M{"id": 1, "tokenHash": 1, "suspended": 1})
		if err != nil || cr == nil {
			abortUnauthorized(c, "Authentication error")
			return
		}
		if cr.Suspended || cr.TokenHash == "" || cr.TokenHash != computedHash {
			abortUnauthorized(c, "Token mismatch")
			return
		}

		if authCache != nil {
			_ = authCache.Set(ctx, cacheKey, computedHash, time.Hour).Err()
		}
		setIdentity(c, creativeID, utils.RoleCreative)
		c.Next()
	}
}
