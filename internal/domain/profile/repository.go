package profile

import (
	"context"

	"github.com/BruksfildServices01/farmergpt/internal/models"
)

type Repository interface {
	// GetOrCreate returns the user's profile, inserting an empty one if
	// missing. Safe under concurrent calls for the same user.
	GetOrCreate(
		ctx context.Context,
		userID uint,
	) (*models.FarmerProfile, error)

	FindByUserID(
		ctx context.Context,
		userID uint,
	) (*models.FarmerProfile, error)

	Update(
		ctx context.Context,
		p *models.FarmerProfile,
	) error
}
