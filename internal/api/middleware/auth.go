// internal/api/middleware/auth.go
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"jobboard-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const (
	authorizationHeader = "Authorization"
	tokenCookie         = "token"  // Set by the job board front end after login
	userCtx             = "userID" // Key to store user ID in context
)

// Client messages for rejected requests.
const (
	MessageNotAuthenticated = "User not authenticated"
	MessageInvalidToken     = "Invalid token"
	MessageTokenRevoked     = "Token has been revoked"
)

// Claims are the JWT claims issued by the job board's user service. The
// user id travels in userId; sub is accepted as a fallback.
type Claims struct {
	UserID string `json:"userId,omitempty"`
	jwt.RegisteredClaims
}

// TokenDenylist reports whether a token id (jti) has been revoked.
type TokenDenylist interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// JWTAuthMiddleware creates a Gin middleware for JWT authentication. The
// token is read from the Authorization header or the token cookie. denylist
// may be nil.
func JWTAuthMiddleware(jwtSecret string, denylist TokenDenylist, logger *zap.Logger) gin.HandlerFunc {
	logger = logger.Named("auth")
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		return []byte(jwtSecret), nil
	}

	return func(c *gin.Context) {
		tokenString, ok := tokenFromRequest(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Failure(MessageNotAuthenticated))
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, keyFunc,
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			if errors.Is(err, jwt.ErrTokenExpired) {
				logger.Debug("Expired token", zap.String("path", c.FullPath()))
			} else {
				logger.Info("Rejected token", zap.String("path", c.FullPath()), zap.Error(err))
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Failure(MessageInvalidToken))
			return
		}

		userID := claims.UserID
		if userID == "" {
			userID = claims.Subject
		}
		if userID == "" {
			logger.Info("Token carries no user id")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Failure(MessageInvalidToken))
			return
		}

		if denylist != nil && claims.ID != "" {
			revoked, err := denylist.IsRevoked(c.Request.Context(), claims.ID)
			if err != nil {
				logger.Error("Error checking token denylist", zap.String("jti", claims.ID), zap.Error(err))
				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.InternalFailure(err))
				return
			}
			if revoked {
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Failure(MessageTokenRevoked))
				return
			}
		}

		SetUserIDInContext(c, userID)
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) (string, bool) {
	if authHeader := c.GetHeader(authorizationHeader); authHeader != "" {
		headerParts := strings.SplitN(authHeader, " ", 2)
		if len(headerParts) == 2 && strings.EqualFold(headerParts[0], "bearer") && headerParts[1] != "" {
			return headerParts[1], true
		}
	}
	if cookie, err := c.Cookie(tokenCookie); err == nil && cookie != "" {
		return cookie, true
	}
	return "", false
}

// SetUserIDInContext stores the authenticated caller id.
func SetUserIDInContext(c *gin.Context, userID string) {
	c.Set(userCtx, userID)
}

// GetUserIDFromContext returns the caller id set by JWTAuthMiddleware.
func GetUserIDFromContext(c *gin.Context) (string, error) {
	userIDAny, exists := c.Get(userCtx)
	if !exists {
		return "", errors.New("user ID not found in context")
	}

	userID, ok := userIDAny.(string)
	if !ok || userID == "" {
		return "", errors.New("user ID in context is of invalid type")
	}

	return userID, nil
}
