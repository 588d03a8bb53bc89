package token

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/farmergpt/internal/models"
)

// Denylist remembers revoked refresh token IDs until they would have expired
// anyway.
type Denylist interface {
	Revoke(ctx context.Context, jti string, until time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// --------- Redis ---------

type RedisDenylist struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisDenylist(rdb *redis.Client) *RedisDenylist {
	return &RedisDenylist{rdb: rdb, prefix: "farmergpt:revoked:"}
}

func (d *RedisDenylist) Revoke(ctx context.Context, jti string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	return d.rdb.Set(ctx, d.prefix+jti, 1, ttl).Err()
}

func (d *RedisDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := d.rdb.Exists(ctx, d.prefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// --------- SQL ---------

type GormDenylist struct {
	db *gorm.DB
}

func NewGormDenylist(db *gorm.DB) *GormDenylist {
	return &GormDenylist{db: db}
}

func (d *GormDenylist) Revoke(ctx context.Context, jti string, until time.Time) error {
	if !until.After(time.Now()) {
		return nil
	}

	return d.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "jti"}}, DoNothing: true}).
		Create(&models.RevokedToken{JTI: jti, ExpiresAt: until}).Error
}

func (d *GormDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	var count int64
	if err := d.db.WithContext(ctx).
		Model(&models.RevokedToken{}).
		Where("jti = ? AND expires_at > ?", jti, time.Now()).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Purge drops entries whose tokens have expired on their own.
func (d *GormDenylist) Purge(ctx context.Context) (int64, error) {
	res := d.db.WithContext(ctx).
		Where("expires_at <= ?", time.Now()).
		Delete(&models.RevokedToken{})
	return res.RowsAffected, res.Error
}

var (
	_ Denylist = (*RedisDenylist)(nil)
	_ Denylist = (*GormDenylist)(nil)
)
