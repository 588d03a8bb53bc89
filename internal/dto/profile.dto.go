package dto

import (
	"time"

	"github.com/BruksfildServices01/farmergpt/internal/models"
)

type ProfileDTO struct {
	ID              uint      `json:"id"`
	User            UserDTO   `json:"user"`
	Phone           *string   `json:"phone"`
	Location        *string   `json:"location"`
	LandSize        *string   `json:"land_size"`
	ExperienceYears *int      `json:"experience_years"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Profile expects p.User to be loaded.
func Profile(p *models.FarmerProfile) ProfileDTO {
	out := ProfileDTO{
		ID:              p.ID,
		User:            User(&p.User),
		Phone:           p.Phone,
		Location:        p.Location,
		ExperienceYears: p.ExperienceYears,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}

	if p.LandSize.Valid {
		s := p.LandSize.Decimal.StringFixed(2)
		out.LandSize = &s
	}

	return out
}
