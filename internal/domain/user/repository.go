package user

import (
	"context"

	"github.com/BruksfildServices01/farmergpt/internal/models"
)

type Repository interface {
	// CreateWithProfile inserts the user and its profile in one transaction.
	CreateWithProfile(
		ctx context.Context,
		u *models.User,
		p *models.FarmerProfile,
	) error

	FindByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	FindByUsername(
		ctx context.Context,
		username string,
	) (*models.User, error)

	UsernameTaken(
		ctx context.Context,
		username string,
	) (bool, error)

	EmailTaken(
		ctx context.Context,
		email string,
	) (bool, error)
}
