package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"recruit-reminders/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxEmployerIDKey = "employer_id"

// AuthMiddleware validates platform-issued employer tokens. This service does
// not issue tokens of its own (outside of tests).
type AuthMiddleware struct {
	jwtService *jwt.Service
}

func NewAuthMiddleware(jwtService *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.jwtService.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxEmployerIDKey, claims.EmployerID)
		c.Next()
	}
}

func GetEmployerID(c *gin.Context) (uuid.UUID, bool) {
	employerID, exists := c.Get(ctxEmployerIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := employerID.(uuid.UUID)
	return id, ok
}

func GetEmployerIDString(c *gin.Context) string {
	if id, ok := GetEmployerID(c); ok {
		return id.String()
	}
	return ""
}
