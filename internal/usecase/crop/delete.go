package crop

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/farmergpt/internal/audit"
	"github.com/BruksfildServices01/farmergpt/internal/domain"
	cropdomain "github.com/BruksfildServices01/farmergpt/internal/domain/crop"
	"github.com/BruksfildServices01/farmergpt/internal/domain/profile"
)

type DeleteCrop struct {
	crops    cropdomain.Repository
	profiles profile.Repository
	audit    *audit.Dispatcher
}

func NewDeleteCrop(
	crops cropdomain.Repository,
	profiles profile.Repository,
	audit *audit.Dispatcher,
) *DeleteCrop {
	return &DeleteCrop{
		crops:    crops,
		profiles: profiles,
		audit:    audit,
	}
}

func (uc *DeleteCrop) Execute(
	ctx context.Context,
	userID uint,
	cropID uint,
) error {

	c, err := findOwned(ctx, uc.crops, uc.profiles, userID, cropID)
	if err != nil {
		return err
	}

	if err := uc.crops.Delete(ctx, c); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errCropNotFound().Wrap(err)
		}
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "crop_deleted",
		Entity:   "crop",
		EntityID: &c.ID,
		Metadata: map[string]any{"name": c.Name},
	})

	return nil
}
