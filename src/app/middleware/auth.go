package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"forumapi/src/app/http/response"
)

// UserIDKey is the context key for the authenticated user's id.
const UserIDKey = "user_id"

// userIDClaim is the claim carrying the user id in access tokens.
const userIDClaim = "id"

// Auth verifies the Bearer access token issued by the identity service.
// Tokens are HS256-signed with accessTokenKey and carry the user id in the
// "id" claim. On success the id is stored in the context under UserIDKey.
func Auth(accessTokenKey string) gin.HandlerFunc {
	key := []byte(accessTokenKey)

	return func(c *gin.Context) {
		requestID := GetRequestID(c)

		raw, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found || strings.TrimSpace(raw) == "" {
			response.Unauthorized(c, "Missing authentication", requestID)
			c.Abort()
			return
		}

		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return key, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			response.Unauthorized(c, "Invalid token", requestID)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Unauthorized(c, "Invalid token", requestID)
			c.Abort()
			return
		}
		userID, ok := claims[userIDClaim].(string)
		if !ok || userID == "" {
			response.Unauthorized(c, "Invalid token", requestID)
			c.Abort()
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// GetUserID retrieves the authenticated user's id from the Gin context.
// Returns empty string if not set.
func GetUserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
