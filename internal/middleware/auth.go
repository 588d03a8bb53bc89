package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/farmergpt/internal/httperr"
	"github.com/BruksfildServices01/farmergpt/internal/token"
)

const (
	ContextUserID   = "userID"
	ContextUsername = "username"
	ContextTokenID  = "tokenID"
)

func AuthMiddleware(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Respond(c, httperr.Authentication(
				"not_authenticated",
				"Authentication credentials were not provided.",
			))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Respond(c, httperr.Authentication(
				"invalid_authorization_header",
				"Authorization header must contain two space-delimited values.",
			))
			return
		}

		claims, err := tokens.ParseAccess(strings.TrimSpace(parts[1]))
		if err != nil {
			httperr.Respond(c, httperr.Authentication(
				"token_not_valid",
				"Given token not valid for any token type",
			).Wrap(err))
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			httperr.Respond(c, httperr.Authentication(
				"token_not_valid",
				"Token contained no recognizable user identification",
			).Wrap(err))
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextTokenID, claims.ID)

		c.Next()
	}
}

// UserID reads the authenticated user set by AuthMiddleware.
func UserID(c *gin.Context) uint {
	return c.MustGet(ContextUserID).(uint)
}
