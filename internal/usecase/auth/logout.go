package auth

import (
	"context"

	"github.com/BruksfildServices01/farmergpt/internal/audit"
	"github.com/BruksfildServices01/farmergpt/internal/token"
)

type Logout struct {
	tokens   *token.Service
	denylist token.Denylist
	audit    *audit.Dispatcher
}

func NewLogout(
	tokens *token.Service,
	denylist token.Denylist,
	audit *audit.Dispatcher,
) *Logout {
	return &Logout{
		tokens:   tokens,
		denylist: denylist,
		audit:    audit,
	}
}

// Execute revokes the caller's refresh token until it would have expired.
func (uc *Logout) Execute(
	ctx context.Context,
	userID uint,
	refreshToken string,
) error {

	claims, err := uc.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return tokenError(err)
	}

	owner, err := claims.UserID()
	if err != nil || owner != userID {
		return tokenError(token.ErrInvalidToken)
	}

	if err := uc.denylist.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID: userID,
		Action: "user_logged_out",
		Entity: "user",
	})

	return nil
}
