package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FarmerProfile is one-to-one with User; the unique index on user_id is what
// keeps concurrent get-or-create calls from producing two rows.
type FarmerProfile struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	Phone           *string             `gorm:"size:15" json:"phone"`
	Location        *string             `gorm:"size:255" json:"location"`
	LandSize        decimal.NullDecimal `gorm:"type:numeric(10,2)" json:"land_size"` // acres
	ExperienceYears *int                `json:"experience_years"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
