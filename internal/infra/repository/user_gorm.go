package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/farmergpt/internal/domain/user"
	"github.com/BruksfildServices01/farmergpt/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) CreateWithProfile(
	ctx context.Context,
	u *models.User,
	p *models.FarmerProfile,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(u).Error; err != nil {
			return err
		}

		p.UserID = u.ID
		if err := tx.Omit("User").Create(p).Error; err != nil {
			return err
		}

		p.User = *u
		return nil
	})

	return translate("create user", err)
}

func (r *UserGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, translate("find user", err)
	}
	return &u, nil
}

func (r *UserGormRepository) FindByUsername(
	ctx context.Context,
	username string,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&u).Error; err != nil {
		return nil, translate("find user", err)
	}
	return &u, nil
}

func (r *UserGormRepository) UsernameTaken(
	ctx context.Context,
	username string,
) (bool, error) {
	return r.exists(ctx, "username = ?", username)
}

func (r *UserGormRepository) EmailTaken(
	ctx context.Context,
	email string,
) (bool, error) {
	return r.exists(ctx, "LOWER(email) = LOWER(?)", email)
}

func (r *UserGormRepository) exists(ctx context.Context, query string, arg any) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where(query, arg).
		Count(&count).Error; err != nil {
		return false, translate("count users", err)
	}
	return count > 0, nil
}

// Compile-time check
var _ domain.Repository = (*UserGormRepository)(nil)
