package crop

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/farmergpt/internal/domain"
	cropdomain "github.com/BruksfildServices01/farmergpt/internal/domain/crop"
	"github.com/BruksfildServices01/farmergpt/internal/domain/profile"
	"github.com/BruksfildServices01/farmergpt/internal/models"
)

type GetCrop struct {
	crops    cropdomain.Repository
	profiles profile.Repository
}

func NewGetCrop(
	crops cropdomain.Repository,
	profiles profile.Repository,
) *GetCrop {
	return &GetCrop{
		crops:    crops,
		profiles: profiles,
	}
}

func (uc *GetCrop) Execute(
	ctx context.Context,
	userID uint,
	cropID uint,
) (*models.Crop, error) {
	return findOwned(ctx, uc.crops, uc.profiles, userID, cropID)
}

// findOwned resolves a crop through the caller's profile. A crop owned by
// someone else is reported exactly like a missing one.
func findOwned(
	ctx context.Context,
	crops cropdomain.Repository,
	profiles profile.Repository,
	userID uint,
	cropID uint,
) (*models.Crop, error) {

	farmer, err := profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errCropNotFound().Wrap(err)
		}
		return nil, err
	}

	c, err := crops.GetForFarmer(ctx, cropID, farmer.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errCropNotFound().Wrap(err)
		}
		return nil, err
	}

	c.Farmer = *farmer
	return c, nil
}
