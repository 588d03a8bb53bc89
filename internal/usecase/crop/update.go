package crop

import (
	"context"

	"github.com/BruksfildServices01/farmergpt/internal/audit"
	domain "github.com/BruksfildServices01/farmergpt/internal/domain/crop"
	"github.com/BruksfildServices01/farmergpt/internal/domain/profile"
	"github.com/BruksfildServices01/farmergpt/internal/models"
)

type UpdateCrop struct {
	crops    domain.Repository
	profiles profile.Repository
	audit    *audit.Dispatcher
}

func NewUpdateCrop(
	crops domain.Repository,
	profiles profile.Repository,
	audit *audit.Dispatcher,
) *UpdateCrop {
	return &UpdateCrop{
		crops:    crops,
		profiles: profiles,
		audit:    audit,
	}
}

// Execute applies the sent fields; full additionally requires the fields a
// create would.
func (uc *UpdateCrop) Execute(
	ctx context.Context,
	userID uint,
	cropID uint,
	in Fields,
	full bool,
) (*models.Crop, error) {

	if full {
		if err := in.requireFull(); err != nil {
			return nil, err
		}
	}

	c, err := findOwned(ctx, uc.crops, uc.profiles, userID, cropID)
	if err != nil {
		return nil, err
	}

	from := c.Status
	if err := in.apply(c); err != nil {
		return nil, err
	}

	if err := uc.crops.Update(ctx, c); err != nil {
		return nil, err
	}

	meta := map[string]any{"fields": in.changed()}
	if c.Status != from {
		meta["status_from"] = from
		meta["status_to"] = c.Status
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "crop_updated",
		Entity:   "crop",
		EntityID: &c.ID,
		Metadata: meta,
	})

	return c, nil
}
