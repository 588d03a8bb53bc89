package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Crop struct {
	ID       uint          `gorm:"primaryKey" json:"id"`
	FarmerID uint          `gorm:"index;not null" json:"farmer"`
	Farmer   FarmerProfile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name                string          `gorm:"size:100;not null" json:"name"`
	Variety             *string         `gorm:"size:100" json:"variety"`
	Area                decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"area"` // acres
	PlantingDate        datatypes.Date  `gorm:"not null" json:"planting_date"`
	ExpectedHarvestDate datatypes.Date  `gorm:"not null" json:"expected_harvest_date"`
	Status              string          `gorm:"size:20;not null;default:'planning'" json:"status"`
	Notes               *string         `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
