package middleware

import (
	"fmt"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenMiddleware validates the bearer token and stores the caller's
// identity on the context. Every attachment operation is scoped to the
// "activeOrgId" claim, the caller's current active tenant; a token without
// one is rejected before any handler runs.
func AccessTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.Request.Header.Get("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "Authorization header is missing"})
			return
		}

		tokenString := strings.Replace(header, "Bearer ", "", 1)
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(os.Getenv("JWT_SECRET_KEY")), nil
		})
		if err != nil {
			c.AbortWithStatusJSON(403, gin.H{"error": "Token is expired or invalid: " + err.Error()})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || !token.Valid {
			c.AbortWithStatusJSON(401, gin.H{"error": "Invalid token claims"})
			return
		}
		c.Set("claims", claims)

		if userIDFloat, ok := claims["userId"].(float64); ok {
			c.Set("userId", uint(userIDFloat))
		} else {
			c.AbortWithStatusJSON(401, gin.H{"error": "Invalid userId in token claims"})
			return
		}

		orgID, ok := claims["activeOrgId"].(string)
		if !ok || orgID == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "Not authorized - no organization found"})
			return
		}
		c.Set("orgId", orgID)

		c.Next()
	}
}
