package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TokenChecker confirms that a signed token is still the one stored for the user.
type TokenChecker interface {
	VerifyStoredToken(ctx context.Context, userID uint, token string) error
}

// AuthConfig describes the tokens AuthGate accepts.
type AuthConfig struct {
	Secret   string
	Issuer   string
	Audience string
}

// AuthGate rejects requests without a valid bearer token. The token must be
// correctly signed and unexpired and must also be the user's current stored
// token, so logging out or logging in again revokes it.
func AuthGate(cfg AuthConfig, checker TokenChecker, log *zap.Logger) (gin.HandlerFunc, error) {
	jwtValidator, err := validator.New(
		func(context.Context) (interface{}, error) {
			return []byte(cfg.Secret), nil
		},
		validator.HS256,
		cfg.Issuer,
		[]string{cfg.Audience},
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, err
	}

	errorHandler := func(w http.ResponseWriter, r *http.Request, err error) {
		log.Debug("rejected token", zap.String("path", r.URL.Path), zap.Error(err))
		writeUnauthorized(w, "INVALID_TOKEN", "Failed to validate JWT.", err)
	}

	mw := jwtmiddleware.New(
		jwtValidator.ValidateToken,
		jwtmiddleware.WithErrorHandler(errorHandler),
	)

	return func(c *gin.Context) {
		passed := false
		var handler http.HandlerFunc = func(w http.ResponseWriter, r *http.Request) {
			claims, ok := r.Context().Value(jwtmiddleware.ContextKey{}).(*validator.ValidatedClaims)
			if !ok {
				writeUnauthorized(w, "INVALID_TOKEN", "Failed to validate JWT.", nil)
				return
			}

			userID, err := strconv.ParseUint(claims.RegisteredClaims.Subject, 10, 64)
			if err != nil {
				writeUnauthorized(w, "INVALID_TOKEN", "Token subject is not a user.", err)
				return
			}

			token, err := jwtmiddleware.AuthHeaderTokenExtractor(r)
			if err != nil {
				writeUnauthorized(w, "INVALID_TOKEN", "Failed to read token.", err)
				return
			}
			if err := checker.VerifyStoredToken(r.Context(), uint(userID), token); err != nil {
				log.Debug("token not current", zap.Uint64("user_id", userID), zap.Error(err))
				writeUnauthorized(w, "TOKEN_REVOKED", "Token is no longer valid. Please log in again.", err)
				return
			}

			passed = true
			c.Request = r
			c.Set("user_id", uint(userID))
			c.Set("validated_claims", claims)
			c.Next()
		}

		mw.CheckJWT(handler).ServeHTTP(c.Writer, c.Request)
		if !passed {
			c.Abort()
		}
	}, nil
}

func writeUnauthorized(w http.ResponseWriter, code, message string, err error) {
	body := gin.H{"success": false, "code": code, "message": message}
	if err != nil {
		body["error"] = err.Error()
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(body)
}

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) (uint, error) {
	userID, exists := c.Get("user_id")
	if !exists {
		return 0, &AuthError{Code: "MISSING_USER_ID", Message: "User ID not found in context"}
	}

	id, ok := userID.(uint)
	if !ok {
		return 0, &AuthError{Code: "INVALID_USER_ID", Message: "User ID is not a user id"}
	}

	return id, nil
}

// GetClaims extracts the validated JWT claims from the Gin context
func GetClaims(c *gin.Context) (*validator.ValidatedClaims, error) {
	claims, exists := c.Get("validated_claims")
	if !exists {
		return nil, &AuthError{Code: "MISSING_CLAIMS", Message: "Claims not found in context"}
	}

	validatedClaims, ok := claims.(*validator.ValidatedClaims)
	if !ok {
		return nil, &AuthError{Code: "INVALID_CLAIMS", Message: "Claims are not in the expected format"}
	}

	return validatedClaims, nil
}

// AuthError represents an authentication error
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}
