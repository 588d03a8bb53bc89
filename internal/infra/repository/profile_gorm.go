package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/farmergpt/internal/domain/profile"
	"github.com/BruksfildServices01/farmergpt/internal/models"
)

type ProfileGormRepository struct {
	db *gorm.DB
}

func NewProfileGormRepository(db *gorm.DB) *ProfileGormRepository {
	return &ProfileGormRepository{db: db}
}

// GetOrCreate inserts with ON CONFLICT DO NOTHING and then reads the row back,
// so racing callers converge on the single row the unique index allows.
func (r *ProfileGormRepository) GetOrCreate(
	ctx context.Context,
	userID uint,
) (*models.FarmerProfile, error) {

	p := models.FarmerProfile{UserID: userID}
	if err := r.db.WithContext(ctx).
		Omit("User").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).
		Create(&p).Error; err != nil {
		return nil, translate("create profile", err)
	}

	return r.FindByUserID(ctx, userID)
}

func (r *ProfileGormRepository) FindByUserID(
	ctx context.Context,
	userID uint,
) (*models.FarmerProfile, error) {

	var p models.FarmerProfile
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		First(&p).Error; err != nil {
		return nil, translate("find profile", err)
	}
	return &p, nil
}

func (r *ProfileGormRepository) Update(
	ctx context.Context,
	p *models.FarmerProfile,
) error {
	return translate("update profile", r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(p).Error)
}

// Compile-time check
var _ domain.Repository = (*ProfileGormRepository)(nil)
