package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// identity returns the authenticated account ID and role set by the auth
// middleware.
func identity(c *gin.Context) (string, string) {
	accountID := c.GetString("accountID")
	role := c.GetString("role")
	return accountID, role
}

// pageParams reads ?page= and ?pageSize= with sane defaults.
func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	return page, pageSize
}
