package dto

import (
	"time"

	"github.com/BruksfildServices01/farmergpt/internal/models"
)

const DateLayout = "2006-01-02"

type CropDTO struct {
	ID                  uint      `json:"id"`
	Farmer              uint      `json:"farmer"`
	FarmerName          string    `json:"farmer_name"`
	Name                string    `json:"name"`
	Variety             *string   `json:"variety"`
	Area                string    `json:"area"`
	PlantingDate        string    `json:"planting_date"`
	ExpectedHarvestDate string    `json:"expected_harvest_date"`
	Status              string    `json:"status"`
	Notes               *string   `json:"notes"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// Crop maps a stored crop. c.Farmer.User must be loaded for farmer_name.
func Crop(c *models.Crop) CropDTO {
	return CropDTO{
		ID:                  c.ID,
		Farmer:              c.FarmerID,
		FarmerName:          c.Farmer.User.Username,
		Name:                c.Name,
		Variety:             c.Variety,
		Area:                c.Area.StringFixed(2),
		PlantingDate:        time.Time(c.PlantingDate).Format(DateLayout),
		ExpectedHarvestDate: time.Time(c.ExpectedHarvestDate).Format(DateLayout),
		Status:              c.Status,
		Notes:               c.Notes,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

func Crops(list []models.Crop) []CropDTO {
	out := make([]CropDTO, 0, len(list))
	for i := range list {
		out = append(out, Crop(&list[i]))
	}
	return out
}
