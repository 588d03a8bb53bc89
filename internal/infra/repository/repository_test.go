package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/farmergpt/internal/dbtest"
	"github.com/BruksfildServices01/farmergpt/internal/domain"
	"github.com/BruksfildServices01/farmergpt/internal/models"
)

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	u := &models.User{Username: username, Email: username + "@example.com", PasswordHash: "x"}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func newCrop(farmerID uint, name string) *models.Crop {
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return &models.Crop{
		FarmerID:            farmerID,
		Name:                name,
		Area:                decimal.RequireFromString("2.50"),
		PlantingDate:        datatypes.Date(day),
		ExpectedHarvestDate: datatypes.Date(day.AddDate(0, 4, 0)),
		Status:              "planning",
	}
}

func TestProfileGetOrCreateIsIdempotent(t *testing.T) {
	db := dbtest.New(t)
	repo := NewProfileGormRepository(db)
	u := createUser(t, db, "asha")
	ctx := context.Background()

	first, err := repo.GetOrCreate(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetOrCreate returned error: %v", err)
	}
	second, err := repo.GetOrCreate(ctx, u.ID)
	if err != nil {
		t.Fatalf("second GetOrCreate returned error: %v", err)
	}

	if first.ID != second.ID {
		t.Fatalf("expected same profile, got %d and %d", first.ID, second.ID)
	}
	if second.User.Username != "asha" {
		t.Fatalf("expected preloaded user, got %q", second.User.Username)
	}
}

// SQLite serializes the callers on its single connection, so this pins the
// insert-if-absent path under many callers rather than a true write race;
// Postgres relies on the same unique index and ON CONFLICT clause.
func TestProfileGetOrCreateConcurrent(t *testing.T) {
	db := dbtest.New(t)
	repo := NewProfileGormRepository(db)
	u := createUser(t, db, "ravi")

	const workers = 16
	var wg sync.WaitGroup
	ids := make([]uint, workers)
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p, err := repo.GetOrCreate(context.Background(), u.ID)
			errs[i] = err
			if err == nil {
				ids[i] = p.ID
			}
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("worker %d: %v", i, err)
		}
		if ids[i] != ids[0] {
			t.Fatalf("worker %d saw profile %d, want %d", i, ids[i], ids[0])
		}
	}

	var count int64
	db.Model(&models.FarmerProfile{}).Where("user_id = ?", u.ID).Count(&count)
	if count != 1 {
		t.Fatalf("expected exactly one profile, got %d", count)
	}
}

func TestProfileFindMissing(t *testing.T) {
	db := dbtest.New(t)
	repo := NewProfileGormRepository(db)

	_, err := repo.FindByUserID(context.Background(), 999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateWithProfileRejectsDuplicateUsername(t *testing.T) {
	db := dbtest.New(t)
	repo := NewUserGormRepository(db)
	ctx := context.Background()

	first := &models.User{Username: "meena", Email: "meena@example.com", PasswordHash: "x"}
	if err := repo.CreateWithProfile(ctx, first, &models.FarmerProfile{}); err != nil {
		t.Fatalf("first create: %v", err)
	}

	dup := &models.User{Username: "meena", Email: "other@example.com", PasswordHash: "x"}
	err := repo.CreateWithProfile(ctx, dup, &models.FarmerProfile{})
	if !errors.Is(err, domain.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	var users, profiles int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.FarmerProfile{}).Count(&profiles)
	if users != 1 || profiles != 1 {
		t.Fatalf("expected 1 user and 1 profile, got %d and %d", users, profiles)
	}
}

func TestCreateWithProfileRollsBackUser(t *testing.T) {
	db := dbtest.New(t)
	repo := NewUserGormRepository(db)

	u := &models.User{Username: "kiran", Email: "kiran@example.com", PasswordHash: "x"}

	// Reusing an existing profile id collides on the primary key.
	existing := createUser(t, db, "seed")
	seedProfile := &models.FarmerProfile{UserID: existing.ID}
	if err := db.Omit("User").Create(seedProfile).Error; err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	err := repo.CreateWithProfile(context.Background(), u, &models.FarmerProfile{ID: seedProfile.ID})
	if err == nil {
		t.Fatal("expected profile insert to fail")
	}

	var count int64
	db.Model(&models.User{}).Where("username = ?", "kiran").Count(&count)
	if count != 0 {
		t.Fatalf("user row survived a failed profile insert")
	}
}

func TestCropScopedByFarmer(t *testing.T) {
	db := dbtest.New(t)
	profiles := NewProfileGormRepository(db)
	crops := NewCropGormRepository(db)
	ctx := context.Background()

	a, _ := profiles.GetOrCreate(ctx, createUser(t, db, "a").ID)
	b, _ := profiles.GetOrCreate(ctx, createUser(t, db, "b").ID)

	cropA := newCrop(a.ID, "Wheat")
	if err := crops.Create(ctx, cropA); err != nil {
		t.Fatalf("create crop: %v", err)
	}

	listB, err := crops.ListForFarmer(ctx, b.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listB) != 0 {
		t.Fatalf("farmer b sees %d crops", len(listB))
	}

	if _, err := crops.GetForFarmer(ctx, cropA.ID, b.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign crop, got %v", err)
	}

	foreign := *cropA
	foreign.FarmerID = b.ID
	if err := crops.Delete(ctx, &foreign); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound deleting foreign crop, got %v", err)
	}

	got, err := crops.GetForFarmer(ctx, cropA.ID, a.ID)
	if err != nil {
		t.Fatalf("owner get: %v", err)
	}
	if got.Name != "Wheat" || !got.Area.Equal(decimal.RequireFromString("2.5")) {
		t.Fatalf("unexpected crop %+v", got)
	}
}

func TestCropListNewestFirst(t *testing.T) {
	db := dbtest.New(t)
	profiles := NewProfileGormRepository(db)
	crops := NewCropGormRepository(db)
	ctx := context.Background()

	p, _ := profiles.GetOrCreate(ctx, createUser(t, db, "farmer").ID)

	for _, name := range []string{"Rice", "Corn", "Cotton"} {
		if err := crops.Create(ctx, newCrop(p.ID, name)); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	list, err := crops.ListForFarmer(ctx, p.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 crops, got %d", len(list))
	}
	if list[0].Name != "Cotton" || list[2].Name != "Rice" {
		t.Fatalf("unexpected order: %s, %s, %s", list[0].Name, list[1].Name, list[2].Name)
	}
}
