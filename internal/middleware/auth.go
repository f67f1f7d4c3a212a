package middleware

import (
	"net/http"
	"strings"

	"agronat/internal/apierror"
	"agronat/internal/auth"

	"github.com/gin-gonic/gin"
)

// ClaimsKey is where JWTAuth stores the verified claims in the gin context.
const ClaimsKey = "authClaims"

// JWTAuth rejects requests without a valid Bearer token.
func JWTAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("token requerido"))
			return
		}
		claims, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("token invalido o expirado"))
			return
		}
		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// GetClaims returns the claims stored by JWTAuth.
func GetClaims(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}
