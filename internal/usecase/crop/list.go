package crop

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/farmergpt/internal/domain"
	cropdomain "github.com/BruksfildServices01/farmergpt/internal/domain/crop"
	"github.com/BruksfildServices01/farmergpt/internal/domain/profile"
	"github.com/BruksfildServices01/farmergpt/internal/models"
)

type ListCrops struct {
	crops    cropdomain.Repository
	profiles profile.Repository
}

func NewListCrops(
	crops cropdomain.Repository,
	profiles profile.Repository,
) *ListCrops {
	return &ListCrops{
		crops:    crops,
		profiles: profiles,
	}
}

// Execute returns an empty list for a caller without a profile.
func (uc *ListCrops) Execute(
	ctx context.Context,
	userID uint,
) ([]models.Crop, error) {

	farmer, err := uc.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return []models.Crop{}, nil
		}
		return nil, err
	}

	list, err := uc.crops.ListForFarmer(ctx, farmer.ID)
	if err != nil {
		return nil, err
	}

	for i := range list {
		list[i].Farmer = *farmer
	}
	return list, nil
}
