package auth

import (
	"errors"

	"github.com/BruksfildServices01/farmergpt/internal/httperr"
	"github.com/BruksfildServices01/farmergpt/internal/token"
)

const (
	passwordMismatchMessage = "Password fields didn't match."
	blankFieldMessage       = "This field may not be blank."
)

func errInvalidCredentials() *httperr.Error {
	return httperr.Authentication("invalid_credentials", "No active account found with the given credentials")
}

// tokenError maps token parse failures onto a 401.
func tokenError(err error) *httperr.Error {
	msg := "Token is invalid or expired"
	if errors.Is(err, token.ErrRevokedToken) {
		msg = "Token is blacklisted"
	}
	return httperr.Authentication("token_not_valid", msg).Wrap(err)
}
