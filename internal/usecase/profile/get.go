package profile

import (
	"context"

	domain "github.com/BruksfildServices01/farmergpt/internal/domain/profile"
	"github.com/BruksfildServices01/farmergpt/internal/models"
)

type GetProfile struct {
	repo domain.Repository
}

func NewGetProfile(repo domain.Repository) *GetProfile {
	return &GetProfile{repo: repo}
}

// Execute never reports a missing profile; one is created on first access.
func (uc *GetProfile) Execute(
	ctx context.Context,
	userID uint,
) (*models.FarmerProfile, error) {
	return uc.repo.GetOrCreate(ctx, userID)
}
