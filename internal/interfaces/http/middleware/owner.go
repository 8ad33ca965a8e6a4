package middleware

import (
	"net/http"
	"strings"

	"github.com/bizflow/backend/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Context keys and headers for the owner account and acting user.
// Authentication lives outside this service; the gateway forwards the
// resolved identifiers in these headers.
const (
	OwnerIDKey     = "owner_id"
	UserIDKey      = "user_id"
	OwnerHeaderKey = "X-Owner-ID"
	UserHeaderKey  = "X-User-ID"
)

// OwnerMiddlewareConfig holds configuration for owner extraction
type OwnerMiddlewareConfig struct {
	// SkipPaths are paths that don't require an owner account (e.g., health check)
	SkipPaths []string
	// Required determines if the owner header is mandatory
	Required bool
	// Logger for middleware logging
	Logger *zap.Logger
}

// DefaultOwnerConfig returns default owner middleware configuration
func DefaultOwnerConfig() OwnerMiddlewareConfig {
	return OwnerMiddlewareConfig{
		SkipPaths: []string{"/health", "/healthz", "/ready", "/api/v1/health"},
		Required:  true,
		Logger:    nil,
	}
}

// OwnerMiddleware extracts the owner account from the X-Owner-ID header
func OwnerMiddleware() gin.HandlerFunc {
	return OwnerMiddlewareWithConfig(DefaultOwnerConfig())
}

// OwnerMiddlewareWithConfig returns owner middleware with custom configuration
func OwnerMiddlewareWithConfig(cfg OwnerMiddlewareConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, skipPath := range cfg.SkipPaths {
			if path == skipPath || strings.HasPrefix(path, skipPath+"/") {
				c.Next()
				return
			}
		}

		ownerID := c.GetHeader(OwnerHeaderKey)

		if ownerID != "" {
			if _, err := uuid.Parse(ownerID); err != nil {
				respondUnauthorized(c, "Invalid owner ID format")
				return
			}
		}

		if ownerID == "" && cfg.Required {
			respondUnauthorized(c, "Owner identification required")
			return
		}

		if ownerID != "" {
			c.Set(OwnerIDKey, ownerID)

			// Propagate to the request context so the service layer logs
			// carry the owner id
			ctx := c.Request.Context()
			log := logger.FromContext(ctx)
			ctx, _ = logger.WithOwnerID(ctx, log, ownerID)
			c.Request = c.Request.WithContext(ctx)

			if cfg.Logger != nil {
				cfg.Logger.Debug("owner identified",
					zap.String("owner_id", ownerID),
				)
			}
		}

		// The acting user is optional; it only feeds audit fields
		if userID := c.GetHeader(UserHeaderKey); userID != "" {
			if _, err := uuid.Parse(userID); err == nil {
				c.Set(UserIDKey, userID)
			}
		}

		c.Next()
	}
}

// respondUnauthorized sends an unauthorized response
func respondUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
	})
}

// GetOwnerID retrieves the owner ID from gin.Context
func GetOwnerID(c *gin.Context) string {
	if ownerID, exists := c.Get(OwnerIDKey); exists {
		if oid, ok := ownerID.(string); ok {
			return oid
		}
	}
	return ""
}

// GetOwnerUUID retrieves the owner ID as UUID from gin.Context
func GetOwnerUUID(c *gin.Context) (uuid.UUID, error) {
	ownerID := GetOwnerID(c)
	if ownerID == "" {
		return uuid.Nil, nil
	}
	return uuid.Parse(ownerID)
}

// GetUserID retrieves the acting user ID from gin.Context
func GetUserID(c *gin.Context) string {
	if userID, exists := c.Get(UserIDKey); exists {
		if uid, ok := userID.(string); ok {
			return uid
		}
	}
	return ""
}

// GetUserUUID retrieves the acting user ID as a UUID pointer, nil when absent
func GetUserUUID(c *gin.Context) *uuid.UUID {
	userID := GetUserID(c)
	if userID == "" {
		return nil
	}
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil
	}
	return &id
}

// MustGetOwnerUUID retrieves the owner ID as UUID or panics if not found.
// Use this only in handlers behind OwnerMiddleware with Required set.
func MustGetOwnerUUID(c *gin.Context) uuid.UUID {
	ownerUUID, err := GetOwnerUUID(c)
	if err != nil || ownerUUID == uuid.Nil {
		panic("valid owner_id not found in context")
	}
	return ownerUUID
}

// OptionalOwnerMiddleware creates middleware that doesn't require an owner
func OptionalOwnerMiddleware() gin.HandlerFunc {
	cfg := DefaultOwnerConfig()
	cfg.Required = false
	return OwnerMiddlewareWithConfig(cfg)
}
