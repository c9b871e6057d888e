package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"warbak/trainer-app/internal/repository"
	"warbak/trainer-app/internal/service"
)

// ContextTrainerIDKey is where AuthMiddleware stores the authenticated
// trainer's id for downstream handlers.
const ContextTrainerIDKey = "trainerID"

// AuthMiddleware creates a Gin middleware that requires a valid Bearer token
// issued by the auth service.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, http.StatusUnauthorized, "Authorization header is missing")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			abortWithError(c, http.StatusUnauthorized, "Authorization header format must be Bearer {token}")
			return
		}

		claims := &service.TrainerClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortWithError(c, http.StatusUnauthorized, "Token has expired")
			} else {
				abortWithError(c, http.StatusUnauthorized, "Invalid token")
			}
			return
		}
		if !token.Valid || claims.TrainerID == "" {
			abortWithError(c, http.StatusUnauthorized, "Invalid token or missing claims")
			return
		}

		c.Set(ContextTrainerIDKey, claims.TrainerID)
		c.Next()
	}
}

// abortWithError returns a JSON error response and stops the handler chain.
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// abortWithServiceError maps repository and service errors onto HTTP status
// codes: unknown ids to 404, rejected empty updates to 400, anything else to
// 500 with the propagated message.
func abortWithServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, repository.ErrEmptyUpdate):
		abortWithError(c, http.StatusBadRequest, "Workout update must keep at least one set")
	default:
		abortWithError(c, http.StatusInternalServerError, err.Error())
	}
}

func trainerIDFromContext(c *gin.Context) (string, error) {
	raw, exists := c.Get(ContextTrainerIDKey)
	if !exists {
		return "", errors.New("trainer ID not found in context")
	}
	id, ok := raw.(string)
	if !ok {
		return "", errors.New("invalid trainer ID type in context")
	}
	return id, nil
}
