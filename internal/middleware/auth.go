package middleware

import (
	"errors"
	"strings"

	"github.com/findelmundo/core/internal/models"
	"github.com/findelmundo/core/internal/pkg/jwt"
	"github.com/findelmundo/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const ContextKeyAdminID = "admin_id"

// Auth returns a middleware that enforces JWT bearer authentication.
func Auth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID, err := ValidateToken(db, extractToken(c))
		if err != nil {
			response.Unauthorized(c)
			return
		}
		c.Set(ContextKeyAdminID, adminID)
		c.Next()
	}
}

// OptionalAuth sets the admin ID if a valid token is present, but never blocks.
func OptionalAuth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if adminID, err := ValidateToken(db, extractToken(c)); err == nil && adminID != "" {
			c.Set(ContextKeyAdminID, adminID)
		}
		c.Next()
	}
}

// ValidateToken validates a JWT and returns the authenticated admin id.
// The admin row must still exist; a token outliving its account is rejected.
func ValidateToken(db *gorm.DB, rawToken string) (string, error) {
	token := NormalizeToken(rawToken)
	if token == "" {
		return "", errors.New("token is required")
	}

	claims, err := jwt.Parse(token)
	if err != nil {
		return "", err
	}

	var count int64
	if err := db.Model(&models.AdminModel{}).Where("id = ?", claims.AdminID).Count(&count).Error; err != nil {
		return "", err
	}
	if count == 0 {
		return "", errors.New("admin not found")
	}
	return claims.AdminID, nil
}

// CurrentAdminID extracts the authenticated admin ID from context.
func CurrentAdminID(c *gin.Context) string {
	v, _ := c.Get(ContextKeyAdminID)
	id, _ := v.(string)
	return id
}

// IsAuthenticated returns true if the request has a valid auth token.
func IsAuthenticated(c *gin.Context) bool {
	return CurrentAdminID(c) != ""
}

func extractToken(c *gin.Context) string {
	return NormalizeToken(c.GetHeader("Authorization"))
}

// NormalizeToken trims spaces and strips an optional Bearer prefix.
func NormalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if token == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}
