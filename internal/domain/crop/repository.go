package crop

import (
	"context"

	"github.com/BruksfildServices01/farmergpt/internal/models"
)

// Repository scopes every crop query by the owning farmer profile.
type Repository interface {
	ListForFarmer(
		ctx context.Context,
		farmerID uint,
	) ([]models.Crop, error)

	GetForFarmer(
		ctx context.Context,
		cropID uint,
		farmerID uint,
	) (*models.Crop, error)

	Create(
		ctx context.Context,
		c *models.Crop,
	) error

	Update(
		ctx context.Context,
		c *models.Crop,
	) error

	Delete(
		ctx context.Context,
		c *models.Crop,
	) error
}
