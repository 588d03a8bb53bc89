package crop

import (
	"context"

	"github.com/BruksfildServices01/farmergpt/internal/audit"
	domain "github.com/BruksfildServices01/farmergpt/internal/domain/crop"
	"github.com/BruksfildServices01/farmergpt/internal/domain/profile"
	"github.com/BruksfildServices01/farmergpt/internal/models"
)

type CreateCrop struct {
	crops    domain.Repository
	profiles profile.Repository
	audit    *audit.Dispatcher
}

func NewCreateCrop(
	crops domain.Repository,
	profiles profile.Repository,
	audit *audit.Dispatcher,
) *CreateCrop {
	return &CreateCrop{
		crops:    crops,
		profiles: profiles,
		audit:    audit,
	}
}

// Execute always files the crop under the caller's own profile.
func (uc *CreateCrop) Execute(
	ctx context.Context,
	userID uint,
	in Fields,
) (*models.Crop, error) {

	if err := in.requireFull(); err != nil {
		return nil, err
	}

	c := &models.Crop{Status: string(domain.InitialStatus())}
	if err := in.apply(c); err != nil {
		return nil, err
	}

	farmer, err := uc.profiles.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	c.FarmerID = farmer.ID

	if err := uc.crops.Create(ctx, c); err != nil {
		return nil, err
	}
	c.Farmer = *farmer

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "crop_created",
		Entity:   "crop",
		EntityID: &c.ID,
		Metadata: map[string]any{"name": c.Name, "status": c.Status},
	})

	return c, nil
}
