package profile

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/farmergpt/internal/audit"
	domain "github.com/BruksfildServices01/farmergpt/internal/domain/profile"
	"github.com/BruksfildServices01/farmergpt/internal/httperr"
	"github.com/BruksfildServices01/farmergpt/internal/models"
	"github.com/BruksfildServices01/farmergpt/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

// UpdateInput carries only the fields present in the request. LandSize with
// Valid=false clears the stored value.
type UpdateInput struct {
	UserID uint

	Phone           *string
	Location        *string
	LandSize        *decimal.NullDecimal
	ExperienceYears *int

	// Read-only keys the client sent.
	ReadOnly []string
}

// ======================================================
// USE CASE
// ======================================================

type UpdateProfile struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	strict bool
}

func NewUpdateProfile(
	repo domain.Repository,
	audit *audit.Dispatcher,
	strict bool,
) *UpdateProfile {
	return &UpdateProfile{
		repo:   repo,
		audit:  audit,
		strict: strict,
	}
}

func (uc *UpdateProfile) Execute(
	ctx context.Context,
	in UpdateInput,
) (*models.FarmerProfile, error) {

	if uc.strict && len(in.ReadOnly) > 0 {
		details := map[string][]string{}
		for _, f := range in.ReadOnly {
			details[f] = []string{"This field is read-only."}
		}
		return nil, httperr.Validation("read_only_field", "Read-only fields cannot be updated.", details)
	}

	if in.LandSize != nil && in.LandSize.Valid && !validators.IsAcreage(in.LandSize.Decimal) {
		return nil, httperr.Validation(
			"invalid_land_size",
			"Land size must be a non-negative number with at most 2 decimal places.",
			map[string][]string{"land_size": {"Ensure that there are no more than 10 digits in total and 2 decimal places."}},
		)
	}

	if in.ExperienceYears != nil && *in.ExperienceYears < 0 {
		return nil, httperr.Validation(
			"invalid_experience_years",
			"Experience years must be zero or more.",
			map[string][]string{"experience_years": {"Ensure this value is greater than or equal to 0."}},
		)
	}

	p, err := uc.repo.GetOrCreate(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	changed := []string{}

	if in.Phone != nil {
		p.Phone = blankToNil(*in.Phone)
		changed = append(changed, "phone")
	}
	if in.Location != nil {
		p.Location = blankToNil(*in.Location)
		changed = append(changed, "location")
	}
	if in.LandSize != nil {
		p.LandSize = *in.LandSize
		changed = append(changed, "land_size")
	}
	if in.ExperienceYears != nil {
		p.ExperienceYears = in.ExperienceYears
		changed = append(changed, "experience_years")
	}

	if len(changed) == 0 {
		return p, nil
	}

	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   "profile_updated",
		Entity:   "profile",
		EntityID: &p.ID,
		Metadata: map[string]any{"fields": changed},
	})

	return p, nil
}

func blankToNil(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
