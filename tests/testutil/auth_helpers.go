package testutil

import (
	"strconv"

	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/gin-gonic/gin"
)

// MockValidatedClaims creates a mock ValidatedClaims for testing
func MockValidatedClaims(userID uint, issuer string) *validator.ValidatedClaims {
	return &validator.ValidatedClaims{
		RegisteredClaims: validator.RegisteredClaims{
			Issuer:  issuer,
			Subject: strconv.FormatUint(uint64(userID), 10),
		},
	}
}

// SetMockAuthContext puts the values AuthGate would set on a request.
func SetMockAuthContext(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("validated_claims", MockValidatedClaims(userID, "tailorshop-test"))
		c.Next()
	}
}
