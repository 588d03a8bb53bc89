package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/farmergpt/internal/domain/crop"
	"github.com/BruksfildServices01/farmergpt/internal/models"
)

type CropGormRepository struct {
	db *gorm.DB
}

func NewCropGormRepository(db *gorm.DB) *CropGormRepository {
	return &CropGormRepository{db: db}
}

func (r *CropGormRepository) ListForFarmer(
	ctx context.Context,
	farmerID uint,
) ([]models.Crop, error) {

	var crops []models.Crop
	if err := r.db.WithContext(ctx).
		Where("farmer_id = ?", farmerID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&crops).Error; err != nil {
		return nil, translate("list crops", err)
	}
	return crops, nil
}

func (r *CropGormRepository) GetForFarmer(
	ctx context.Context,
	cropID uint,
	farmerID uint,
) (*models.Crop, error) {

	var c models.Crop
	if err := r.db.WithContext(ctx).
		Where("id = ? AND farmer_id = ?", cropID, farmerID).
		First(&c).Error; err != nil {
		return nil, translate("get crop", err)
	}
	return &c, nil
}

func (r *CropGormRepository) Create(
	ctx context.Context,
	c *models.Crop,
) error {
	return translate("create crop", r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(c).Error)
}

func (r *CropGormRepository) Update(
	ctx context.Context,
	c *models.Crop,
) error {
	return translate("update crop", r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(c).Error)
}

func (r *CropGormRepository) Delete(
	ctx context.Context,
	c *models.Crop,
) error {
	res := r.db.WithContext(ctx).
		Where("farmer_id = ?", c.FarmerID).
		Delete(&models.Crop{}, c.ID)
	if res.Error != nil {
		return translate("delete crop", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("delete crop", gorm.ErrRecordNotFound)
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*CropGormRepository)(nil)
