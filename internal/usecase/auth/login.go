package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/farmergpt/internal/domain"
	"github.com/BruksfildServices01/farmergpt/internal/domain/user"
	"github.com/BruksfildServices01/farmergpt/internal/token"
)

type Login struct {
	users  user.Repository
	tokens *token.Service
}

func NewLogin(
	users user.Repository,
	tokens *token.Service,
) *Login {
	return &Login{
		users:  users,
		tokens: tokens,
	}
}

// Execute returns the same error for an unknown user and a wrong password.
func (uc *Login) Execute(
	ctx context.Context,
	username string,
	password string,
) (*token.Pair, error) {

	u, err := uc.users.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errInvalidCredentials()
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, errInvalidCredentials()
	}

	return uc.tokens.Issue(u.ID, u.Username)
}
