package main

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/moraputalapraveen/hireme4u-backend/internal/auth"
	"github.com/moraputalapraveen/hireme4u-backend/pkg/response"
)

// AdminAuthMiddleware verifies the bearer token and requires the admin
// role. Missing or invalid tokens yield 401, a non-admin role 403, both
// with the uniform failure envelope.
func (app *application) AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := verifyClaimsFromAuthHeader(c, app.TokenMaker)
		if err != nil {
			response.AbortUnauthorized(c, "Not authorized")
			return
		}

		if claims.Role != auth.RoleAdmin {
			response.AbortForbidden(c, "Access denied. Admin only.")
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}

func verifyClaimsFromAuthHeader(c *gin.Context, tokenMaker *auth.JWTMaker) (*auth.AdminClaims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, fmt.Errorf("authorization header is missing")
	}

	fields := strings.Fields(authHeader)
	if len(fields) != 2 || fields[0] != "Bearer" {
		return nil, fmt.Errorf("invalid authorization header")
	}

	claims, err := tokenMaker.VerifyToken(fields[1])
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	return claims, nil
}
