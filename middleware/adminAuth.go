package middleware

import (
	"github.com/Codekiller51/brandconnect-server/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthAdminMiddleware authenticates operators. Admin tokens are minted out
// of band with the shared signing secret and an "admin" role claim; there is
// no admin collection to cross-check.
func JWTAuthAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			return
		}

		adminID, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || role != utils.RoleAdmin {
			abortUnauthorized(c, "Unauthorized admin access")
			return
		}

		setIdentity(c, adminID, utils.RoleAdmin)
		c.Next()
	}
}
