package auth

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/farmergpt/internal/domain"
	"github.com/BruksfildServices01/farmergpt/internal/domain/user"
	"github.com/BruksfildServices01/farmergpt/internal/token"
)

type Refresh struct {
	users    user.Repository
	tokens   *token.Service
	denylist token.Denylist
}

func NewRefresh(
	users user.Repository,
	tokens *token.Service,
	denylist token.Denylist,
) *Refresh {
	return &Refresh{
		users:    users,
		tokens:   tokens,
		denylist: denylist,
	}
}

// Execute trades a refresh token for a new access token.
func (uc *Refresh) Execute(
	ctx context.Context,
	refreshToken string,
) (string, error) {

	claims, err := uc.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return "", tokenError(err)
	}

	revoked, err := uc.denylist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return "", err
	}
	if revoked {
		return "", tokenError(token.ErrRevokedToken)
	}

	userID, err := claims.UserID()
	if err != nil {
		return "", tokenError(err)
	}

	u, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", tokenError(token.ErrInvalidToken)
		}
		return "", err
	}

	return uc.tokens.IssueAccess(u.ID, u.Username)
}
