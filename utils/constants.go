package utils

// AuthCachePrefix namespaces cached auth token hashes in Redis.
const AuthCachePrefix = "auth:"

// Roles recognised by the auth middleware.
const (
	RoleClient   = "client"
	RoleCreative = "creative"
	RoleAdmin    = "admin"
)
